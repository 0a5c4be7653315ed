package tailwind

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"gopkg.in/yaml.v3"
)

// Config extends the default tailwind-merge configuration. It is read from
// YAML or JSON files:
//
//	prefix: tw-
//	classGroups:
//	  font-size:
//	    - text: [huge, LENGTH_VALIDATOR]
//	  shadow:
//	    - shadow: [ANY_VALUE_VALIDATOR]
//	conflictingClassGroups:
//	  font-size: [leading]
//
// A class group definition is a list of class names (split on "-"),
// validator names, or objects mapping a class prefix to nested definitions.
// Definitions are added to the default groups of the same name. A prefix
// must end with "-"; only prefixed classes are then resolved.
type Config struct {
	Prefix                 string              `yaml:"prefix"`
	Separator              string              `yaml:"separator"`
	ClassGroups            map[string][]any    `yaml:"classGroups"`
	ConflictingClassGroups map[string][]string `yaml:"conflictingClassGroups"`
}

var validators = map[string]func(string) bool{
	"ANY_VALUE_VALIDATOR":          twmerge.IsAny,
	"ARBITRARY_IMAGE_VALIDATOR":    twmerge.IsArbitraryImage,
	"ARBITRARY_LENGTH_VALIDATOR":   twmerge.IsArbitraryLength,
	"ARBITRARY_NUMBER_VALIDATOR":   twmerge.IsArbitraryNumber,
	"ARBITRARY_POSITION_VALIDATOR": twmerge.IsArbitraryPosition,
	"ARBITRARY_SHADOW_VALIDATOR":   twmerge.IsArbitraryShadow,
	"ARBITRARY_SIZE_VALIDATOR":     twmerge.IsArbitrarySize,
	"ARBITRARY_VALUE_VALIDATOR":    twmerge.IsArbitraryValue,
	"INTEGER_VALIDATOR":            twmerge.IsInteger,
	"LENGTH_VALIDATOR":             twmerge.IsLength,
	"NUMBER_VALIDATOR":             twmerge.IsNumber,
	"PERCENT_VALIDATOR":            twmerge.IsPercent,
	"TSHIRT_SIZE_VALIDATOR":        twmerge.IsTshirtSize,
}

// ParseConfig decodes a YAML or JSON document.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// LoadConfig reads the .yaml, .yml and .json files among paths. Directories
// contribute their config files in name order. Other files are skipped: they
// may be watched for changes without carrying merge configuration.
// It returns nil when no config file was found.
func LoadConfig(paths ...string) (*Config, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, p, err)
		}
		if !info.IsDir() {
			if isConfigFile(p) {
				files = append(files, p)
			}
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, p, err)
		}
		for _, e := range entries {
			if !e.IsDir() && isConfigFile(e.Name()) {
				files = append(files, filepath.Join(p, e.Name()))
			}
		}
	}

	var merged *Config
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, f, err)
		}
		cfg, err := ParseConfig(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
		merged = merged.extend(cfg)
	}
	return merged, nil
}

func isConfigFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// extend returns c with next applied on top. c may be nil.
func (c *Config) extend(next *Config) *Config {
	if c == nil {
		return next
	}
	if next.Prefix != "" {
		c.Prefix = next.Prefix
	}
	if next.Separator != "" {
		c.Separator = next.Separator
	}
	for id, defs := range next.ClassGroups {
		if c.ClassGroups == nil {
			c.ClassGroups = make(map[string][]any)
		}
		c.ClassGroups[id] = append(c.ClassGroups[id], defs...)
	}
	for id, groups := range next.ConflictingClassGroups {
		if c.ConflictingClassGroups == nil {
			c.ConflictingClassGroups = make(map[string][]string)
		}
		c.ConflictingClassGroups[id] = append(c.ConflictingClassGroups[id], groups...)
	}
	return c
}

// Build returns the default tailwind-merge configuration extended by c.
// A nil Config builds the defaults.
func (c *Config) Build() (*twmerge.TwMergeConfig, error) {
	conf := twmerge.MakeDefaultConfig()
	if c == nil {
		return conf, nil
	}

	if c.Separator != "" {
		sep := []rune(c.Separator)
		if len(sep) != 1 {
			return nil, fmt.Errorf("%w: separator %q must be a single character", ErrInvalidConfig, c.Separator)
		}
		conf.ModifierSeparator = sep[0]
	}

	ids := make([]string, 0, len(c.ClassGroups))
	for id := range c.ClassGroups {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		part, err := addDefinitions(conf.ClassGroups, c.ClassGroups[id], id, conf.ClassSeparator)
		if err != nil {
			return nil, fmt.Errorf("class group %q: %w", id, err)
		}
		conf.ClassGroups = part
	}

	for id, groups := range c.ConflictingClassGroups {
		conf.ConflictingClassGroups[id] = append(conf.ConflictingClassGroups[id], groups...)
	}

	if c.Prefix != "" {
		sep := string(conf.ClassSeparator)
		if !strings.HasSuffix(c.Prefix, sep) || strings.Trim(c.Prefix, sep) == "" {
			return nil, fmt.Errorf("%w: prefix %q must end with %q", ErrInvalidConfig, c.Prefix, sep)
		}
		conf.Prefix = c.Prefix
		segments := strings.Split(strings.TrimSuffix(c.Prefix, sep), sep)
		for i := len(segments) - 1; i >= 0; i-- {
			conf.ClassGroups = twmerge.ClassPart{
				NextPart: map[string]twmerge.ClassPart{segments[i]: conf.ClassGroups},
			}
		}
	}
	return conf, nil
}

// addDefinitions registers defs for the class group id below part.
func addDefinitions(part twmerge.ClassPart, defs []any, id string, sep rune) (twmerge.ClassPart, error) {
	for _, def := range defs {
		var err error
		switch d := def.(type) {
		case string:
			if fn, ok := validators[d]; ok {
				part.Validators = append(part.Validators, twmerge.ClassGroupValidator{Fn: fn, ClassGroupId: id})
				continue
			}
			if strings.HasSuffix(d, "_VALIDATOR") {
				return part, fmt.Errorf("%w: %s", ErrUnknownValidator, d)
			}
			part, err = updatePart(part, d, sep, func(p twmerge.ClassPart) (twmerge.ClassPart, error) {
				p.ClassGroupId = id
				return p, nil
			})
		case int, float64, bool:
			part, err = updatePart(part, fmt.Sprint(d), sep, func(p twmerge.ClassPart) (twmerge.ClassPart, error) {
				p.ClassGroupId = id
				return p, nil
			})
		case map[string]any:
			keys := make([]string, 0, len(d))
			for k := range d {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				nested := d[k]
				part, err = updatePart(part, k, sep, func(p twmerge.ClassPart) (twmerge.ClassPart, error) {
					return addDefinitions(p, definitionList(nested), id, sep)
				})
				if err != nil {
					break
				}
			}
		case []any:
			part, err = addDefinitions(part, d, id, sep)
		default:
			err = fmt.Errorf("%w: unsupported definition %v", ErrInvalidConfig, def)
		}
		if err != nil {
			return part, err
		}
	}
	return part, nil
}

func definitionList(v any) []any {
	if l, ok := v.([]any); ok {
		return l
	}
	return []any{v}
}

// updatePart applies fn to the class part at path, creating missing parts.
// An empty path is part itself.
func updatePart(part twmerge.ClassPart, path string, sep rune, fn func(twmerge.ClassPart) (twmerge.ClassPart, error)) (twmerge.ClassPart, error) {
	if path == "" {
		return fn(part)
	}
	head, rest, _ := strings.Cut(path, string(sep))

	if part.NextPart == nil {
		part.NextPart = make(map[string]twmerge.ClassPart)
	}
	child, err := updatePart(part.NextPart[head], rest, sep, fn)
	if err != nil {
		return part, err
	}
	part.NextPart[head] = child
	return part, nil
}
