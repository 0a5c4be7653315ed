package i18n

import (
	"path"
	"strings"
)

// Parser decodes one translation source file into a message tree.
type Parser interface {
	Parse(content []byte) (map[string]any, error)

	// SupportsFileExtension accepts extensions with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

var parsers = []Parser{NewYAMLParser(), NewJSONParser()}

// NewParserForFile returns a parser based on the file extension, or nil.
func NewParserForFile(filename string) Parser {
	ext := path.Ext(filename)
	for _, p := range parsers {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// sourceName strips the extension from a file name: "Main.yaml" -> "Main".
func sourceName(filename string) string {
	return strings.TrimSuffix(filename, path.Ext(filename))
}
