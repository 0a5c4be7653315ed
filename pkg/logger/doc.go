// Package logger builds slog loggers and shared attribute constructors.
//
// New creates a *slog.Logger configured with functional options:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "eel"),
//		logger.WithOutput(os.Stderr),
//	)
//	log.Warn("resource missing",
//		logger.Helper("Carbon.FileContent"),
//		logger.Path("resource://Vendor.Site/Public/app.css"),
//		logger.Error(err),
//	)
//
// Helpers log nothing unless a logger is injected; Discard returns the no-op
// logger they start with.
//
// Error and Errors return an empty attribute for nil errors so they can be
// passed unconditionally.
package logger
