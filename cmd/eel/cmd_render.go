package main

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/carbon-eel/eel"
)

var (
	renderData string
	renderHTML bool
)

var renderCmd = &cobra.Command{
	Use:   "render [template]",
	Short: "Render a Go template with the helpers",
	Long: `Renders a template file to stdout. The helpers are available as
Carbon, AlpineJS and Tailwind plus the short function aliases.

Example:
  eel render page.tmpl --data page.yaml --html`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderData, "data", "", "YAML or JSON file passed as the template data")
	renderCmd.Flags().BoolVar(&renderHTML, "html", false, "use html/template with contextual escaping")
}

func runRender(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read template: %w", err)
	}

	var data any
	if renderData != "" {
		data, err = loadData(renderData)
		if err != nil {
			return err
		}
	}

	return render(cmd.OutOrStdout(), helpers, filepath.Base(args[0]), string(src), data, renderHTML)
}

// loadData decodes a YAML document. JSON is valid YAML, so both formats work.
func loadData(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data: %w", err)
	}
	var data any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode data %s: %w", path, err)
	}
	return data, nil
}

func render(w io.Writer, h *eel.Helpers, name, src string, data any, html bool) error {
	var buf bytes.Buffer
	if html {
		tmpl, err := htmltemplate.New(name).Funcs(htmltemplate.FuncMap(h.FuncMap())).Parse(src)
		if err != nil {
			return fmt.Errorf("failed to parse template: %w", err)
		}
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("failed to render template: %w", err)
		}
	} else {
		tmpl, err := template.New(name).Funcs(h.FuncMap()).Parse(src)
		if err != nil {
			return fmt.Errorf("failed to parse template: %w", err)
		}
		if err := tmpl.Execute(&buf, data); err != nil {
			return fmt.Errorf("failed to render template: %w", err)
		}
	}
	_, err := buf.WriteTo(w)
	return err
}
