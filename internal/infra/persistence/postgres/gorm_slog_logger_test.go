package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bloodlink/config"
	deliverycontext "bloodlink/internal/delivery/context"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return &buf, newGormSlogLogger(base, cfg)
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_QueryFailure(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))

	assert.Contains(t, buf.String(), "db query failed")
	assert.Contains(t, buf.String(), "connection reset")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "db slow query")
}

func TestGormSlogLogger_QueriesOnlyInDebug(t *testing.T) {
	quiet, l := newBufferedGormLogger(false)
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, quiet.String())

	verbose, l := newBufferedGormLogger(true)
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, verbose.String(), "SELECT 1")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	_, l := newBufferedGormLogger(false)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Error(ctx, "boom %d", 42)

	assert.Contains(t, reqBuf.String(), "request_id=req-1")
	assert.Contains(t, reqBuf.String(), "boom 42")
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	buf, l := newBufferedGormLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, buf.String())
}
