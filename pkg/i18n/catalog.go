package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/carbon-eel/eel/pkg/logger"
)

// DefaultSource is the translation source used when a request names none.
const DefaultSource = "Main"

// Catalog stores translations per package, source and locale.
// It is safe for concurrent use.
type Catalog struct {
	mu             sync.RWMutex
	messages       map[string]map[string]map[string]map[string]any // package -> source -> locale -> tree
	defaultLocale  string
	defaultPackage string
	logMissing     bool
	logger         *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLocale sets the last locale tried during lookup.
func WithDefaultLocale(locale string) Option {
	return func(c *Catalog) {
		if locale != "" {
			c.defaultLocale = NormalizeLocale(locale)
		}
	}
}

// WithDefaultPackage sets the package used for requests without one.
func WithDefaultPackage(pkg string) Option {
	return func(c *Catalog) {
		c.defaultPackage = pkg
	}
}

// WithLogger sets the logger. A discard logger is used by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every missing message.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(c *Catalog) {
		c.logMissing = enabled
	}
}

// NewCatalog creates an empty catalog.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		messages:      make(map[string]map[string]map[string]map[string]any),
		defaultLocale: DefaultLocale,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultLocale returns the fallback locale of the catalog.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Add merges a message tree into the catalog. Top-level ids of a later call
// replace those of an earlier one.
func (c *Catalog) Add(pkg, source, locale string, tree map[string]any) {
	if source == "" {
		source = DefaultSource
	}
	locale = NormalizeLocale(locale)

	c.mu.Lock()
	defer c.mu.Unlock()

	sources, ok := c.messages[pkg]
	if !ok {
		sources = make(map[string]map[string]map[string]any)
		c.messages[pkg] = sources
	}
	locales, ok := sources[source]
	if !ok {
		locales = make(map[string]map[string]any)
		sources[source] = locales
	}
	existing, ok := locales[locale]
	if !ok {
		existing = make(map[string]any, len(tree))
		locales[locale] = existing
	}
	maps.Copy(existing, tree)
}

// LoadDir loads every translation file below dir.
func (c *Catalog) LoadDir(ctx context.Context, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Join(ErrFailedToReadDirectory, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrFailedToReadDirectory, dir)
	}
	return c.LoadFS(ctx, os.DirFS(dir))
}

// LoadFS loads translation files laid out as <Package>/<locale>/<Source>.<ext>.
// Files at other depths and files without a known extension are ignored.
func (c *Catalog) LoadFS(ctx context.Context, fsys fs.FS) error {
	loaded := 0
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Join(ErrFailedToReadDirectory, err)
		}
		if err := ctx.Err(); err != nil {
			return errors.Join(ErrLoadingCancelled, err)
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}

		parts := strings.Split(p, "/")
		if len(parts) != 3 {
			return nil
		}
		parser := NewParserForFile(parts[2])
		if parser == nil {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFailedToReadFile, p, err)
		}
		tree, err := parser.Parse(content)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}

		c.Add(parts[0], sourceName(parts[2]), parts[1], tree)
		loaded++
		return nil
	})
	if err != nil {
		return err
	}

	c.logger.DebugContext(ctx, "translations loaded",
		logger.Component("i18n"),
		slog.Int("files", loaded),
		slog.Any("packages", c.Packages()),
	)
	return nil
}

// Packages returns the sorted package names known to the catalog.
func (c *Catalog) Packages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.messages))
}

// Locales returns the sorted locales available for a package.
func (c *Catalog) Locales(pkg string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, locales := range c.messages[pkg] {
		for l := range locales {
			seen[l] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Lookup returns the formatted message for a request and whether one was found.
func (c *Catalog) Lookup(req Request) (string, bool) {
	pkg := req.Package
	if pkg == "" {
		pkg = c.defaultPackage
	}
	source := req.Source
	if source == "" {
		source = DefaultSource
	}
	args := req.arguments()

	c.mu.RLock()
	defer c.mu.RUnlock()

	locales := c.messages[pkg][source]
	if len(locales) == 0 {
		return "", false
	}

	for _, locale := range LocaleChain(req.Locale, c.defaultLocale) {
		tree, ok := locales[locale]
		if !ok {
			continue
		}
		if msg, found := lookupMessage(tree, req.ID, req.Quantity); found {
			return format(msg, args), true
		}
	}
	return "", false
}

// Translate returns the translated message. Missing messages fall back to
// the request fallback, then to the id.
func (c *Catalog) Translate(req Request) string {
	if msg, ok := c.Lookup(req); ok {
		return msg
	}

	if c.logMissing {
		c.logger.Warn("translation not found",
			logger.Component("i18n"),
			logger.Locale(req.Locale),
			slog.String("package", req.Package),
			slog.String("source", req.Source),
			slog.String("id", req.ID),
		)
	}

	if req.Fallback != "" {
		return format(req.Fallback, req.arguments())
	}
	return req.ID
}

// lookupMessage resolves id in tree, trying plural forms first when
// quantity is set.
func lookupMessage(tree map[string]any, id string, quantity *int) (string, bool) {
	var keys []string
	if quantity != nil {
		switch *quantity {
		case 0:
			keys = append(keys, id+".zero", id+".other")
		case 1:
			keys = append(keys, id+".one")
		default:
			keys = append(keys, id+".other")
		}
	}
	keys = append(keys, id)

	for _, key := range keys {
		if v, ok := getTranslation(tree, key); ok {
			if s, ok := v.(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

// getTranslation traverses a nested map using dot-separated keys.
// A literal key containing dots takes precedence over traversal.
func getTranslation(m map[string]any, key string) (any, bool) {
	if v, ok := m[key]; ok {
		return v, true
	}

	head, rest, ok := strings.Cut(key, ".")
	if !ok {
		return nil, false
	}

	next, ok := m[head]
	if !ok {
		return nil, false
	}

	switch child := next.(type) {
	case map[string]any:
		return getTranslation(child, rest)
	case map[any]any:
		converted := make(map[string]any, len(child))
		for k, v := range child {
			if ks, ok := k.(string); ok {
				converted[ks] = v
			}
		}
		return getTranslation(converted, rest)
	}
	return nil, false
}
