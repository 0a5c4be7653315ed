// Package config loads typed configuration from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for struct tag parsing and
// github.com/joho/godotenv for .env files.
//
//	type Settings struct {
//		ResourceDir string `env:"EEL_RESOURCE_DIR" envDefault:"Resources"`
//		Locale      string `env:"EEL_LOCALE" envDefault:"en"`
//	}
//
// Load parses the process environment once per type and caches the result,
// which suits long running processes:
//
//	var s Settings
//	if err := config.Load(&s); err != nil {
//		return err
//	}
//
// Parse does the same work without caching and without touching the process
// environment. Dotenv files given with WithEnvFiles are read first and
// overridden by real environment variables:
//
//	err := config.Parse(&s, config.WithEnvFiles(".env.local"))
package config
