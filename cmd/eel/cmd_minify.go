package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carbon-eel/eel/pkg/minify"
)

var minifyType string

var minifyCmd = &cobra.Command{
	Use:   "minify [file]",
	Short: "Minify a CSS or JavaScript file",
	Long: `Minifies a stylesheet or script and prints the result. The type is
taken from the file extension unless --type is given. Use "-" to read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runMinify,
}

func init() {
	minifyCmd.Flags().StringVar(&minifyType, "type", "", "css or js")
}

func runMinify(cmd *cobra.Command, args []string) error {
	var (
		src []byte
		err error
	)
	if args[0] == "-" {
		src, err = io.ReadAll(cmd.InOrStdin())
	} else {
		src, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	kind := minifyType
	if kind == "" {
		kind = strings.TrimPrefix(filepath.Ext(args[0]), ".")
	}

	out, err := minifySource(minify.Default(), kind, string(src))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

func minifySource(m *minify.Minifier, kind, src string) (string, error) {
	switch strings.ToLower(kind) {
	case "css":
		return m.CSS(src)
	case "js", "mjs":
		return m.JS(src)
	default:
		return "", fmt.Errorf("unsupported type %q: use --type css or --type js", kind)
	}
}
