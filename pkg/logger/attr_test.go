package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbon-eel/eel/pkg/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()

	attr := logger.Group("call", slog.String("helper", "Carbon.String"), slog.Int("args", 2))
	require.Equal(t, "call", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "helper", g[0].Key)
	assert.Equal(t, "args", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		attr  slog.Attr
		key   string
		value string
	}{
		{attr: logger.Helper("Carbon.Array"), key: "helper", value: "Carbon.Array"},
		{attr: logger.Method("chunk"), key: "method", value: "chunk"},
		{attr: logger.Locale("de_CH"), key: "locale", value: "de_CH"},
		{attr: logger.Path("resource://a.css"), key: "path", value: "resource://a.css"},
		{attr: logger.Expression("1 + 1"), key: "expr", value: "1 + 1"},
		{attr: logger.Component("i18n"), key: "component", value: "i18n"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.attr.Key)
		assert.Equal(t, tt.value, tt.attr.Value.String())
	}

	assert.True(t, logger.Locale("").Equal(slog.Attr{}))
}
