package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"bloodlink/internal/domain/entity"
	domainerrors "bloodlink/internal/domain/errors"
	"bloodlink/internal/domain/repository"
	"bloodlink/internal/infra/persistence/model"
	"bloodlink/internal/infra/persistence/postgres/query"
)

// userRepository implements the domain.UserRepository interface using the GORM Gen query builder.
type userRepository struct {
	q *query.Query
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		q: query.Use(db),
	}
}

// FindByEmail looks the user up by exact email, digest included. It reads from
// the primary so a login right after registration never misses on replica lag.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := repo.q.UserModel
	userM, err := u.WithContext(ctx).WriteDB().
		Where(u.Email.Eq(email)).
		First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(userM), nil
}

// Create inserts the user. The unique index on users.email turns a concurrent
// duplicate registration into ErrEmailAlreadyRegistered.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if userM.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate user id")
		}
		userM.ID = id
	}

	if err := repo.q.UserModel.WithContext(ctx).Create(userM); err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "users.email unique index")
		case isValueTooLong(err):
			return valueTooLongError(err)
		case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
			return errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("All required fields must be provided"), err.Error())
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
		}
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		BloodType:    entity.BloodType(data.BloodType),
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		BloodType:    data.BloodType.String(),
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
	}
}
