package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"reportsys/config"
	deliverycontext "reportsys/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_SkipsRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn(`SELECT * FROM "students"`), gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn(`INSERT INTO "admins"`), assert.AnError)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GORM query failed", entry["msg"])
	assert.Equal(t, `INSERT INTO "admins"`, entry["sql"])
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn(`SELECT 1`), nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_InfoOnlyInDebug(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&buf), &config.Config{})
	l.Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`), nil)
	assert.Empty(t, buf.String())

	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true
	l = newGormSlogLogger(newBufferedLogger(&buf), debugCfg)
	l.Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`), nil)
	assert.Contains(t, buf.String(), `"msg":"GORM query"`)

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`), nil)
	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_PrefersRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferedLogger(&base), &config.Config{})
	ctx := deliverycontext.WithLogger(context.Background(), newBufferedLogger(&scoped).With(slog.String("request_id", "req-1")))

	l.Warn(ctx, "slow %s", "thing")

	assert.Empty(t, base.String())
	assert.True(t, strings.Contains(scoped.String(), `"request_id":"req-1"`))
}
