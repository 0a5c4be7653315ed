package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carbon-eel/eel/pkg/i18n"
)

func TestParseShorthand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		label  string
		pkg    string
		source string
		id     string
		ok     bool
	}{
		{label: "Vendor.Site:Main:button.save", pkg: "Vendor.Site", source: "Main", id: "button.save", ok: true},
		{label: "Neos.Neos:Modules:users.label", pkg: "Neos.Neos", source: "Modules", id: "users.label", ok: true},
		{label: "Vendor.Site:NodeTypes.Teaser:a:b", pkg: "Vendor.Site", source: "NodeTypes.Teaser", id: "a:b", ok: true},
		{label: "Vendor:Main:id"},
		{label: "plain label"},
		{label: "Vendor.Site:Main"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			t.Parallel()
			pkg, source, id, ok := i18n.ParseShorthand(tt.label)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.pkg, pkg)
			assert.Equal(t, tt.source, source)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.ok, i18n.IsShorthand(tt.label))
		})
	}
}
