package eel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carbon-eel/eel/pkg/environment"
	"github.com/carbon-eel/eel/pkg/file"
	"github.com/carbon-eel/eel/pkg/i18n"
	"github.com/carbon-eel/eel/pkg/logger"
	"github.com/carbon-eel/eel/pkg/tailwind"
)

// Config holds the environment driven settings of the helpers.
type Config struct {
	Env      environment.Environment `env:"APP_ENV" envDefault:"development"`
	LogLevel string                  `env:"EEL_LOG_LEVEL"`

	HMACSecret string `env:"EEL_HMAC_SECRET"`

	// Resources are read from S3 when ResourceBucket is set, otherwise from ResourceDir.
	ResourceDir      string `env:"EEL_RESOURCE_DIR" envDefault:"Resources"`
	ResourceBucket   string `env:"EEL_RESOURCE_S3_BUCKET"`
	ResourceRegion   string `env:"EEL_RESOURCE_S3_REGION" envDefault:"us-east-1"`
	ResourceEndpoint string `env:"EEL_RESOURCE_S3_ENDPOINT"`
	ResourcePrefix   string `env:"EEL_RESOURCE_S3_PREFIX"`
	ResourceKeyID    string `env:"EEL_RESOURCE_S3_ACCESS_KEY_ID"`
	ResourceSecret   string `env:"EEL_RESOURCE_S3_SECRET_KEY"`

	FrameworkVersion  string `env:"EEL_FRAMEWORK_VERSION" envDefault:"9.0"`
	Locale            string `env:"EEL_LOCALE" envDefault:"en"`
	InterfaceLanguage string `env:"EEL_INTERFACE_LANGUAGE" envDefault:"en"`
	TranslationsDir   string `env:"EEL_TRANSLATIONS_DIR"`

	// TailwindConfig lists watched files and directories. Its .yaml, .yml and
	// .json files extend the merge configuration, see tailwind.Config.
	TailwindConfig    []string `env:"EEL_TAILWIND_CONFIG" envSeparator:","`
	TailwindCacheSize int      `env:"EEL_TAILWIND_CACHE_SIZE" envDefault:"512"`

	Timezone string `env:"EEL_TIMEZONE" envDefault:"UTC"`
}

// NewFromConfig builds Helpers from cfg. Options are applied after the
// configuration and take precedence.
//
// A missing local resource directory only disables FileContent; an S3,
// translation or tailwind configuration failure is returned.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Helpers, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, cfg.Timezone, err)
	}

	merger := tailwind.NewMerger(
		tailwind.WithCacheSize(cfg.TailwindCacheSize),
		tailwind.WithConfigFiles(cfg.TailwindConfig...),
	)
	base := []Option{
		WithHMACSecret(cfg.HMACSecret),
		WithFrameworkVersion(cfg.FrameworkVersion),
		WithLocale(cfg.Locale),
		WithInterfaceLanguage(cfg.InterfaceLanguage),
		WithLocation(loc),
		WithTailwindMerger(merger),
	}
	h := New(append(base, opts...)...)
	log := h.opts.logger

	if h.opts.storage == nil {
		storage, err := resourceStorage(ctx, cfg)
		switch {
		case errors.Is(err, file.ErrInvalidConfig) && cfg.ResourceBucket == "":
			log.WarnContext(ctx, "resource directory unavailable, file content helpers disabled",
				logger.Path(cfg.ResourceDir), logger.Error(err))
		case err != nil:
			return nil, errors.Join(ErrStorageSetup, err)
		default:
			h.opts.storage = storage
		}
	}

	if h.opts.catalog == nil && cfg.TranslationsDir != "" {
		catalog := i18n.NewCatalog(
			i18n.WithDefaultLocale(cfg.Locale),
			i18n.WithLogger(log),
			i18n.WithMissingTranslationsLogging(cfg.Env.IsDevelopment()),
		)
		if err := catalog.LoadDir(ctx, cfg.TranslationsDir); err != nil {
			return nil, errors.Join(ErrTranslationSetup, err)
		}
		h.opts.catalog = catalog
	}

	if h.opts.merger == merger {
		if err := merger.Load(); err != nil {
			return nil, errors.Join(ErrTailwindSetup, err)
		}
	}

	if len(cfg.TailwindConfig) > 0 && h.opts.merger != nil {
		h.watcher = tailwind.NewWatcher(h.opts.merger, cfg.TailwindConfig,
			tailwind.WithLogger(log.With(logger.Component("tailwind"))),
		)
	}

	return h, nil
}

func resourceStorage(ctx context.Context, cfg Config) (file.Storage, error) {
	if cfg.ResourceBucket != "" {
		return file.NewS3Storage(ctx, file.S3Config{
			Bucket:         cfg.ResourceBucket,
			Region:         cfg.ResourceRegion,
			Endpoint:       cfg.ResourceEndpoint,
			Prefix:         cfg.ResourcePrefix,
			AccessKeyID:    cfg.ResourceKeyID,
			SecretKey:      cfg.ResourceSecret,
			ForcePathStyle: cfg.ResourceEndpoint != "",
		})
	}
	return file.NewLocalStorage(cfg.ResourceDir)
}

// WatchTailwindConfig starts flushing the tailwind merge cache whenever one
// of the configured tailwind files changes. It returns immediately; the
// watcher runs until ctx is done or Close is called.
func (h *Helpers) WatchTailwindConfig(ctx context.Context) error {
	if h.watcher == nil {
		return ErrWatcherUnavailable
	}
	return h.watcher.Start(ctx)
}

// Close stops the tailwind configuration watcher, if any.
func (h *Helpers) Close() {
	if h.watcher != nil {
		h.watcher.Stop()
	}
}
