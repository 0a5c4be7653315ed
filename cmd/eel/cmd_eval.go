package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/carbon-eel/eel"
)

var evalVars []string

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate a CEL expression with the helpers",
	Long: `Evaluates an expression and prints the result. Strings are printed
as is, everything else as JSON. Variable values are parsed as YAML scalars,
so numbers, booleans and inline lists keep their type.

Example:
  eel eval 'Carbon.String.convertCamelCase(name)' --var name=fooBar`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		vars, err := parseVars(evalVars)
		if err != nil {
			return err
		}
		return eval(cmd, helpers, args[0], vars)
	},
}

func init() {
	evalCmd.Flags().StringArrayVar(&evalVars, "var", nil, "variable as key=value, may be repeated")
}

func parseVars(pairs []string) (map[string]any, error) {
	vars := make(map[string]any, len(pairs))
	for _, p := range pairs {
		k, raw, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid variable %q: expected key=value", p)
		}
		var v any
		if err := yaml.Unmarshal([]byte(raw), &v); err != nil || v == nil {
			v = raw
		}
		vars[k] = v
	}
	return vars, nil
}

func eval(cmd *cobra.Command, h *eel.Helpers, expression string, vars map[string]any) error {
	env, err := h.Environment()
	if err != nil {
		return fmt.Errorf("failed to build expression environment: %w", err)
	}
	out, err := env.Eval(cmd.Context(), expression, vars)
	if err != nil {
		return err
	}
	return printResult(cmd.OutOrStdout(), out)
}

func printResult(w io.Writer, v any) error {
	if s, ok := v.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}
