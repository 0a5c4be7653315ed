package eel_test

import (
	"context"
	htmltemplate "html/template"
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/carbon-eel/eel"
	"github.com/carbon-eel/eel/pkg/expr"
	"github.com/carbon-eel/eel/pkg/value"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mapKeys returns the keys of an ordered map in order.
func mapKeys(t *testing.T, v any) []string {
	t.Helper()
	m, ok := v.(*value.Map)
	require.True(t, ok, "expected *value.Map, got %T", v)
	keys := make([]string, 0, m.Len())
	for p := m.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

func render(t *testing.T, h *eel.Helpers, tmpl string, data any) string {
	t.Helper()
	parsed, err := template.New("test").Funcs(h.FuncMap()).Parse(tmpl)
	require.NoError(t, err)
	var b strings.Builder
	require.NoError(t, parsed.Execute(&b, data))
	return b.String()
}

func TestFuncMap(t *testing.T) {
	t.Parallel()

	h := eel.New()

	tests := []struct {
		name     string
		tmpl     string
		data     any
		expected string
	}{
		{name: "namespaced method", tmpl: `{{ Carbon.String.ConvertCamelCase "HelloWorld" }}`, expected: "hello-world"},
		{name: "optional argument", tmpl: `{{ Carbon.String.ConvertCamelCase "HelloWorld" "_" }}`, expected: "hello_world"},
		{name: "flat shortcut", tmpl: `{{ bem "card" "title" "active" }}`, expected: "card__title card__title--active"},
		{name: "bem namespace", tmpl: `{{ Carbon.BEM.Modifier "btn" .mods }}`, data: map[string]any{"mods": []string{"primary"}}, expected: "btn btn--primary"},
		{name: "tailwind namespace", tmpl: `{{ Tailwind.Merge "p-2" "p-4" }}`, expected: "p-4"},
		{name: "alpine namespace", tmpl: `{{ AlpineJS.Magic "dispatch" "open" }}`, expected: "$dispatch('open')"},
		{name: "array helper with data", tmpl: `{{ Carbon.Array.Join .items "-" }}`, data: map[string]any{"items": []any{"a", []any{"b", "c"}}}, expected: "a-b-c"},
		{name: "range over chunks", tmpl: `{{ range Carbon.Array.Chunk .items 2 }}[{{ len . }}]{{ end }}`, data: map[string]any{"items": []int{1, 2, 3}}, expected: "[2][1]"},
		{name: "class names", tmpl: `{{ classNames "a b" .extra }}`, data: map[string]any{"extra": map[string]any{"c": true, "d": false}}, expected: "a b c"},
		{name: "number", tmpl: `{{ Carbon.Number.Format 1234.567 2 "," "." }}`, expected: "1.234,57"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, render(t, h, tt.tmpl, tt.data))
		})
	}
}

func TestFuncMap_TemplateErrors(t *testing.T) {
	t.Parallel()

	h := eel.New()
	parsed, err := template.New("test").Funcs(h.FuncMap()).Parse(`{{ Carbon.Version.Compare "9.0" "~" }}`)
	require.NoError(t, err)

	err = parsed.Execute(&strings.Builder{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid operator: ~")
}

func TestFuncMap_HTMLTemplate(t *testing.T) {
	t.Parallel()

	h := eel.New()
	parsed, err := htmltemplate.New("test").
		Funcs(htmltemplate.FuncMap(h.FuncMap())).
		Parse(`<div class="{{ Carbon.BEM.String "card" "" "wide" }}"></div>`)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, parsed.Execute(&b, nil))
	assert.Equal(t, `<div class="card card--wide"></div>`, b.String())
}

func TestAllowsCallOfMethod(t *testing.T) {
	t.Parallel()

	h := eel.New()
	helpers := []interface{ AllowsCallOfMethod(string) bool }{
		h.Array, h.String, h.BEM, h.Date, h.FileContent,
		h.Number, h.Version, h.AlpineJS, h.Tailwind, h.Backend,
	}
	for _, helper := range helpers {
		assert.True(t, helper.AllowsCallOfMethod("anything"))
	}
}

func TestFunctions(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for _, fn := range eel.New().Functions() {
		assert.False(t, seen[fn.Name], "duplicate function %s", fn.Name)
		seen[fn.Name] = true
		assert.LessOrEqual(t, fn.MinArgs, fn.MaxArgs, fn.Name)
	}

	for _, name := range []string{
		"Carbon.Array.chunk", "Carbon.String.convertCamelCase", "Carbon.BEM.string",
		"Carbon.Date.secondsUntil", "Carbon.FileContent.pathHash", "Carbon.Number.format",
		"Carbon.Version.compare", "Carbon.Backend.translate", "AlpineJS.call", "Tailwind.merge",
	} {
		assert.True(t, seen[name], "missing function %s", name)
	}
}

func TestEnvironment(t *testing.T) {
	t.Parallel()

	env, err := eel.New().Environment()
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name     string
		expr     string
		vars     map[string]any
		expected any
	}{
		{name: "string", expr: `Carbon.String.convertCamelCase("HelloWorld")`, expected: "hello-world"},
		{name: "string with separator", expr: `Carbon.String.convertCamelCase("fontSize", "_")`, expected: "font_size"},
		{name: "variable", expr: `Carbon.String.urlize(title)`, vars: map[string]any{"title": "Ä Straße"}, expected: "a-strasse"},
		{name: "bem", expr: `Carbon.BEM.string("block", "elem", ["mod"])`, expected: "block__elem block__elem--mod"},
		{name: "bem array", expr: `Carbon.Array.BEM("block", "", "mod")`, expected: []any{"block", "block--mod"}},
		{name: "chunk", expr: `Carbon.Array.chunk([1, 2, 3], 2)`, expected: []any{[]any{1, 2}, []any{3}}},
		{name: "join", expr: `Carbon.Array.join(["a", "b", "c"], "-")`, expected: "a-b-c"},
		{name: "alpine", expr: `AlpineJS.call("dropdown", {"open": false})`, expected: "dropdown({open:false})"},
		{name: "alpine magic", expr: `AlpineJS.magic("dispatch", "close")`, expected: "$dispatch('close')"},
		{name: "version operator", expr: `Carbon.Version.compare("10.0", "<")`, expected: true},
		{name: "version order", expr: `Carbon.Version.compare("10.0")`, expected: -1},
		{name: "tailwind", expr: `Tailwind.merge("p-2", "p-4")`, expected: "p-4"},
		{name: "merge", expr: `Carbon.String.merge(["a", "b"], "b c")`, expected: "a b c"},
		{name: "time interval", expr: `Carbon.Date.timeToDateInterval("1:30")`, expected: "PT1H30M"},
		{name: "heading default", expr: `Carbon.String.heading("h2")`, expected: "h3"},
		{name: "number", expr: `Carbon.Number.format(1234.5)`, expected: "1,235"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := env.Eval(ctx, tt.expr, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestEnvironment_KeyedResultsKeepOrder(t *testing.T) {
	t.Parallel()

	env, err := eel.New().Environment()
	require.NoError(t, err)
	ctx := context.Background()

	out, err := env.Eval(ctx, `Carbon.Array.ksort({"10": "a", "9": "b", "b": "c"})`, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"9", "10", "b"}, mapKeys(t, out))

	out, err = env.Eval(ctx, `Carbon.Array.join(Carbon.Array.ksort({"10": "a", "9": "b", "b": "c"}), "")`, nil)
	require.NoError(t, err)
	assert.Equal(t, "bac", out, "order survives between helper calls")

	out, err = env.Eval(ctx, `Carbon.Array.ksort({"10": "a", "9": "b"}).map(k, k)`, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{"9", "10"}, out)
}

func TestEnvironment_Errors(t *testing.T) {
	t.Parallel()

	env, err := eel.New().Environment()
	require.NoError(t, err)
	ctx := context.Background()

	_, err = env.Eval(ctx, `Carbon.Version.compare("9.0", "~")`, nil)
	require.ErrorIs(t, err, expr.ErrEval)
	assert.Contains(t, err.Error(), "Invalid operator: ~")

	_, err = env.Eval(ctx, `Carbon.Date.secondsUntil("not an interval")`, nil)
	assert.ErrorIs(t, err, expr.ErrEval)

	_, err = env.Eval(ctx, `Carbon.String.toCamelCase()`, nil)
	assert.ErrorIs(t, err, expr.ErrCompile)
}
