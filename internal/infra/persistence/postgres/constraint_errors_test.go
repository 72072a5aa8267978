package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domainerrors "bloodlink/internal/domain/errors"
)

func TestConstraintViolations(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "idx_users_email"}, "insert")
	foreignKey := &pgconn.PgError{Code: pgForeignKeyViolation}
	notNull := &pgconn.PgError{Code: pgNotNullViolation}
	check := &pgconn.PgError{Code: pgCheckViolation}
	tooLong := errors.Wrap(&pgconn.PgError{Code: pgValueTooLong, Message: "value too long for type character varying(100)"}, "insert")

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(foreignKey))

	assert.True(t, isForeignKeyConstraintViolation(foreignKey))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(unique))

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.False(t, isNotNullConstraintViolation(errors.New("value is required")))

	assert.True(t, isCheckConstraintViolation(check))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckConstraintViolation(nil))

	assert.True(t, isValueTooLong(tooLong))
	assert.False(t, isValueTooLong(notNull))
}

func TestValueTooLongError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgValueTooLong, Message: "value too long for type character varying(32)"}

	err := valueTooLongError(pgErr)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	var appErr domainerrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())
	assert.Equal(t, "Input exceeds the maximum field length", appErr.Message())
	assert.False(t, domainerrors.IsServerError(err))
}
