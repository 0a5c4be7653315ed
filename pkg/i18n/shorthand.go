package i18n

import (
	"regexp"
	"strings"
)

// shorthandPattern matches "Vendor.Package:Source:id".
var shorthandPattern = regexp.MustCompile(`(?i)^[a-z0-9]+\.(?:[a-z0-9][\.a-z0-9]*)+:[a-z0-9.]+:.+$`)

// IsShorthand reports whether id is a "Vendor.Package:Source:id" label.
func IsShorthand(id string) bool {
	return shorthandPattern.MatchString(id)
}

// ParseShorthand splits a shorthand label into its package, source and id.
// The id part may itself contain colons.
func ParseShorthand(label string) (pkg, source, id string, ok bool) {
	if !IsShorthand(label) {
		return "", "", "", false
	}
	parts := strings.SplitN(label, ":", 3)
	return parts[0], parts[1], parts[2], true
}
