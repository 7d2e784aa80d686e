package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLog(t *testing.T) {
	l, err := NewLogger(slog.LevelError)
	assert.NoError(t, err)
	l.Close()
	l, err = NewLogger(slog.LevelInfo)
	assert.NoError(t, err)
	l.Close()
	l, err = NewLogger(slog.LevelWarn)
	assert.NoError(t, err)
	l.Close()
	l, err = NewLogger(slog.LevelDebug)
	assert.NoError(t, err)
	l.Close()
}

func TestLevelFromString(t *testing.T) {
	assert.EqualValues(t, slog.LevelDebug, LevelFromString("debug"))
	assert.EqualValues(t, slog.LevelWarn, LevelFromString(" WARN "))
	assert.EqualValues(t, slog.LevelError, LevelFromString("error"))
	assert.EqualValues(t, slog.LevelInfo, LevelFromString("info"))
	// неизвестный уровень считаем info
	assert.EqualValues(t, slog.LevelInfo, LevelFromString("какой-то"))
}
