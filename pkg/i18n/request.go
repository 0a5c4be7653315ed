package i18n

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/carbon-eel/eel/pkg/value"
)

// Request describes a single translation lookup.
type Request struct {
	ID       string
	Fallback string         // returned when no message is found
	Args     map[string]any // placeholder values; positional ones use "0", "1", ...
	Source   string         // defaults to "Main"
	Package  string         // defaults to the catalog default package
	Quantity *int           // selects the plural form when set
	Locale   string         // defaults to the catalog default locale
}

// Quantity returns a pointer to n for Request.Quantity.
func Quantity(n int) *int {
	return &n
}

// arguments returns Args with "count" added from Quantity when missing.
func (r Request) arguments() map[string]any {
	if r.Quantity == nil {
		return r.Args
	}
	if _, ok := r.Args["count"]; ok {
		return r.Args
	}
	args := make(map[string]any, len(r.Args)+1)
	for k, v := range r.Args {
		args[k] = v
	}
	args["count"] = strconv.Itoa(*r.Quantity)
	return args
}

// ArgsFromList turns positional arguments into "0", "1", ... keys.
func ArgsFromList(list []any) map[string]any {
	args := make(map[string]any, len(list))
	for i, v := range list {
		args[strconv.Itoa(i)] = v
	}
	return args
}

// placeholderRegex matches %{name} and {name}. A formatter suffix such as
// "{0,number}" is ignored.
var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}|\{([^}]+)\}`)

// format replaces placeholders with argument values. Unknown placeholders
// are kept as they are.
func format(tmpl string, args map[string]any) string {
	if len(args) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}

	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		sub := placeholderRegex.FindStringSubmatch(match)
		name := sub[1]
		if name == "" {
			name = sub[2]
		}
		name, _, _ = strings.Cut(name, ",")
		if v, ok := args[strings.TrimSpace(name)]; ok {
			return value.String(v)
		}
		return match
	})
}
