package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carbon-eel/eel/pkg/i18n"
)

func TestNormalizeLocale(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "de_CH", i18n.NormalizeLocale("de-ch"))
	assert.Equal(t, "de_CH", i18n.NormalizeLocale("DE_CH"))
	assert.Equal(t, "en", i18n.NormalizeLocale(" EN "))
	assert.Equal(t, "", i18n.NormalizeLocale(""))
}

func TestLocaleChain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"de_CH", "de", "en"}, i18n.LocaleChain("de-CH", "en"))
	assert.Equal(t, []string{"en"}, i18n.LocaleChain("en", "en"))
	assert.Equal(t, []string{"en"}, i18n.LocaleChain("", "en"))
	assert.Equal(t, []string{"en_US", "en"}, i18n.LocaleChain("en_US", "en"))
}

func TestNegotiate(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "fr", "de_CH"}

	tests := []struct {
		name        string
		preferences string
		expected    string
	}{
		{name: "empty returns default", preferences: "", expected: "en"},
		{name: "exact match", preferences: "fr", expected: "fr"},
		{name: "region matches language", preferences: "fr-CA", expected: "fr"},
		{name: "region exact match", preferences: "de-ch", expected: "de_CH"},
		{name: "quality respected", preferences: "en;q=0.5,fr;q=0.9", expected: "fr"},
		{name: "exact beats language match", preferences: "fr-CA,de-CH;q=0.8", expected: "de_CH"},
		{name: "unsupported", preferences: "ja,ko", expected: "en"},
		{name: "wildcard ignored", preferences: "*", expected: "en"},
		{name: "invalid quality treated as 1", preferences: "ja;q=2,fr;q=0.1", expected: "fr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, i18n.Negotiate(tt.preferences, supported, "en"))
		})
	}
}
