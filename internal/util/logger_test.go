// internal/util/logger_test.go
package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLogLevel(in), "level %q", in)
	}
}

func TestNewLogger_JSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, LoggerOptions{Level: "info"})

	l.Info("user created", "id_usuario", 7)
	l.Debug("hidden")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "user created", entry["msg"])
	assert.Equal(t, float64(7), entry["id_usuario"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, LoggerOptions{Level: "debug", Format: "text"})

	l.Debug("acquired connection", "path", "/api/usuarios")

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "msg=\"acquired connection\"")
	assert.Contains(t, out, "path=/api/usuarios")
}

func TestIsError_Wrapped(t *testing.T) {
	err := fmt.Errorf("create user: %w", ErrDuplicateEmail)
	assert.True(t, IsError(err, ErrDuplicateEmail))
	assert.False(t, IsError(err, ErrQuery))
	assert.True(t, IsError(fmt.Errorf("%w: dial tcp", ErrConnection), ErrConnection))
	assert.False(t, IsError(errors.New("other"), ErrInvalidInput))
}
