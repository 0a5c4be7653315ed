package eel

import (
	"log/slog"
	"strings"
	"time"

	"github.com/carbon-eel/eel/pkg/file"
	"github.com/carbon-eel/eel/pkg/i18n"
	"github.com/carbon-eel/eel/pkg/logger"
	"github.com/carbon-eel/eel/pkg/minify"
	"github.com/carbon-eel/eel/pkg/tailwind"
)

// DefaultFrameworkVersion is the version the Version helper compares against.
const DefaultFrameworkVersion = "9.0"

// options is shared by all helpers of one Helpers value.
type options struct {
	logger            *slog.Logger
	clock             func() time.Time
	hmacSecret        []byte
	storage           file.Storage
	merger            *tailwind.Merger
	minifier          *minify.Minifier
	catalog           *i18n.Catalog
	interfaceLanguage string
	frameworkVersion  string
	locale            string
	location          *time.Location
}

func defaultOptions() *options {
	return &options{
		logger:            logger.Discard(),
		clock:             time.Now,
		minifier:          minify.Default(),
		merger:            tailwind.NewMerger(),
		interfaceLanguage: i18n.DefaultLocale,
		frameworkVersion:  DefaultFrameworkVersion,
		locale:            i18n.DefaultLocale,
		location:          time.UTC,
	}
}

// now returns the clock time in the configured location.
func (o *options) now() time.Time {
	return o.clock().In(o.location)
}

// Option configures Helpers.
type Option func(*options)

// WithLogger sets the logger used to report recoverable helper failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithHMACSecret sets the key used by String.GenerateHmac and String.ValidateHmac.
func WithHMACSecret(secret string) Option {
	return func(o *options) {
		o.hmacSecret = []byte(secret)
	}
}

// WithResourceStorage sets where FileContent reads resources from.
func WithResourceStorage(s file.Storage) Option {
	return func(o *options) {
		o.storage = s
	}
}

// WithTailwindMerger sets the merger behind Tailwind.Merge.
func WithTailwindMerger(m *tailwind.Merger) Option {
	return func(o *options) {
		o.merger = m
	}
}

// WithCatalog sets the translations used by Backend.Translate.
func WithCatalog(c *i18n.Catalog) Option {
	return func(o *options) {
		o.catalog = c
	}
}

// WithInterfaceLanguage sets the backend user interface language.
func WithInterfaceLanguage(lang string) Option {
	return func(o *options) {
		if lang = strings.TrimSpace(lang); lang != "" {
			o.interfaceLanguage = lang
		}
	}
}

// WithFrameworkVersion sets the version Version.Compare and Version.LowerThan test against.
func WithFrameworkVersion(v string) Option {
	return func(o *options) {
		if v = strings.TrimSpace(v); v != "" {
			o.frameworkVersion = v
		}
	}
}

// WithLocale sets the default locale of Number.FormatLocale.
func WithLocale(locale string) Option {
	return func(o *options) {
		if locale = strings.TrimSpace(locale); locale != "" {
			o.locale = locale
		}
	}
}

// WithLocation sets the time zone Date helpers compute in.
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		if loc != nil {
			o.location = loc
		}
	}
}
