// Package expr evaluates CEL expressions against the template helpers.
//
// A Registry lists helper functions under qualified names such as
// "Carbon.String.convertCamelCase". NewEnvironment declares each of them as a
// CEL function with dynamically typed overloads for every accepted arity, so
// expressions call helpers the same way templates do:
//
//	env, err := expr.NewEnvironment(helpers)
//	if err != nil {
//		return err
//	}
//	out, err := env.Eval(ctx, `Carbon.String.convertCamelCase(title, "-")`, map[string]any{
//		"title": "fooBar",
//	})
//	// out == "foo-bar"
//
// Arguments reach Go as plain values: CEL lists become []any and maps become
// *value.Map with sorted keys. Results are converted back with
// ConvertToCELValue.
//
// Compiled programs are memoized per expression and variable set.
package expr
