package eel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carbon-eel/eel"
	"github.com/carbon-eel/eel/pkg/version"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	t.Run("default framework version", func(t *testing.T) {
		t.Parallel()
		h := eel.New().Version
		assert.Equal(t, eel.DefaultFrameworkVersion, h.FrameworkVersion())
		assert.False(t, h.LowerThanNine())
	})

	t.Run("older framework", func(t *testing.T) {
		t.Parallel()
		h := eel.New(eel.WithFrameworkVersion("8.3")).Version
		assert.True(t, h.LowerThanNine())

		lower, err := h.LowerThan("8.3.1")
		require.NoError(t, err)
		assert.True(t, lower)

		cmp, err := h.Compare("9.0")
		require.NoError(t, err)
		assert.Equal(t, -1, cmp)

		eq, err := h.Compare("8.3", "==")
		require.NoError(t, err)
		assert.Equal(t, true, eq)

		ge, err := h.Compare("8", "ge")
		require.NoError(t, err)
		assert.Equal(t, true, ge)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()
		h := eel.New().Version

		_, err := h.Compare("9.0", "~=")
		require.ErrorIs(t, err, version.ErrInvalidOperator)
		assert.Contains(t, err.Error(), "Invalid operator: ~=")

		_, err = h.Compare("nine")
		assert.ErrorIs(t, err, version.ErrInvalidVersion)

		assert.False(t, eel.New(eel.WithFrameworkVersion("dev-main")).Version.LowerThanNine())
	})
}
