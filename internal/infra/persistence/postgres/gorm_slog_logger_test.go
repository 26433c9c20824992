package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"addressbook/config"
	deliverycontext "addressbook/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &buf, newGormSlogLogger(base, cfg)
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_TraceLevels(t *testing.T) {
	ctx := context.Background()

	t.Run("plain queries are quiet outside debug", func(t *testing.T) {
		buf, l := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), nil)
		assert.Empty(t, buf.String())
	})

	t.Run("plain queries are logged in debug", func(t *testing.T) {
		buf, l := newBufferedGormLogger(true)
		l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), nil)
		assert.Contains(t, buf.String(), "SELECT 1")
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		buf, l := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn("SELECT 2"), gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("failures are logged", func(t *testing.T) {
		buf, l := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn("SELECT 3"), assert.AnError)
		assert.Contains(t, buf.String(), "GORM query failed")
	})

	t.Run("slow queries are logged", func(t *testing.T) {
		buf, l := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn("SELECT 4"), nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("silent mode drops everything", func(t *testing.T) {
		buf, l := newBufferedGormLogger(true)
		l.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn("SELECT 5"), assert.AnError)
		assert.Empty(t, buf.String())
	})
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	_, l := newBufferedGormLogger(false)

	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn("SELECT 6"), assert.AnError)
	assert.Contains(t, reqBuf.String(), "request_id=req-1")
}
