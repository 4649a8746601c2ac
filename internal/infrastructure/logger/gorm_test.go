package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel, opts ...GormLoggerOption) (*GormLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level, opts...), recorded
}

func TestNewGormLogger(t *testing.T) {
	gormLog, _ := newObservedGormLogger(gormlogger.Info)

	assert.Equal(t, gormlogger.Info, gormLog.level)
	assert.Equal(t, 200*time.Millisecond, gormLog.slowThreshold)
	assert.True(t, gormLog.ignoreNotFoundErr)
}

func TestNewGormLogger_Options(t *testing.T) {
	gormLog, _ := newObservedGormLogger(gormlogger.Info,
		WithSlowThreshold(500*time.Millisecond),
		WithIgnoreRecordNotFoundError(false),
	)

	assert.Equal(t, 500*time.Millisecond, gormLog.slowThreshold)
	assert.False(t, gormLog.ignoreNotFoundErr)
}

func TestGormLogger_LogMode(t *testing.T) {
	gormLog, _ := newObservedGormLogger(gormlogger.Info)

	clone := gormLog.LogMode(gormlogger.Warn)

	cloned, ok := clone.(*GormLogger)
	require.True(t, ok)
	assert.Equal(t, gormlogger.Warn, cloned.level)
	// The original is untouched
	assert.Equal(t, gormlogger.Info, gormLog.level)
}

func TestGormLogger_Levels(t *testing.T) {
	t.Run("info formats and logs", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Info)
		gormLog.Info(context.Background(), "migrated %s", "donations")

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Contains(t, logs[0].Message, "migrated donations")
	})

	t.Run("silent suppresses everything", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Silent)
		gormLog.Info(context.Background(), "ignored")
		gormLog.Warn(context.Background(), "ignored")
		gormLog.Error(context.Background(), "ignored")

		assert.Empty(t, recorded.All())
	})

	t.Run("warn and error map onto zap levels", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Info)
		gormLog.Warn(context.Background(), "pool saturated")
		gormLog.Error(context.Background(), "connection lost")

		logs := recorded.All()
		require.Len(t, logs, 2)
		assert.Equal(t, zapcore.WarnLevel, logs[0].Level)
		assert.Equal(t, zapcore.ErrorLevel, logs[1].Level)
	})
}

func TestGormLogger_Trace(t *testing.T) {
	query := func() (string, int64) {
		return "SELECT * FROM campaigns WHERE status = 'active'", 3
	}

	t.Run("failed statements log as SQL Error", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Error)
		gormLog.Trace(context.Background(), time.Now(), query, errors.New("relation missing"))

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Contains(t, logs[0].Message, "SQL Error")
	})

	t.Run("record-not-found is suppressed by default", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Error)
		gormLog.Trace(context.Background(), time.Now(), query, gormlogger.ErrRecordNotFound)

		assert.Empty(t, recorded.All())
	})

	t.Run("record-not-found logs when suppression is off", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Error, WithIgnoreRecordNotFoundError(false))
		gormLog.Trace(context.Background(), time.Now(), query, gormlogger.ErrRecordNotFound)

		require.Len(t, recorded.All(), 1)
	})

	t.Run("slow statements log as warnings", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Warn, WithSlowThreshold(time.Nanosecond))
		gormLog.Trace(context.Background(), time.Now().Add(-time.Millisecond), query, nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Contains(t, logs[0].Message, "SLOW SQL")
		assert.Equal(t, zapcore.WarnLevel, logs[0].Level)
	})

	t.Run("normal statements log at debug", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Info)
		gormLog.Trace(context.Background(), time.Now(), query, nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, zapcore.DebugLevel, logs[0].Level)
		assert.Contains(t, logs[0].Message, "SQL Query")
	})

	t.Run("silent level skips tracing", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Silent)
		gormLog.Trace(context.Background(), time.Now(), query, nil)

		assert.Empty(t, recorded.All())
	})

	t.Run("request id from context is attached", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Info)
		ctx := context.WithValue(context.Background(), RequestIDKey, "req-42")
		gormLog.Trace(ctx, time.Now(), query, nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		found := false
		for _, field := range logs[0].Context {
			if field.Key == "request_id" {
				found = true
				assert.Equal(t, "req-42", field.String)
			}
		}
		assert.True(t, found, "request_id should be in trace fields")
	})
}

func TestMapGormLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"info", gormlogger.Info},
		{"debug", gormlogger.Info},
		{"unknown", gormlogger.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapGormLogLevel(tt.level))
		})
	}
}

var _ gormlogger.Interface = (*GormLogger)(nil)
