// Package environment names the deployment environment an application runs in.
//
// Parse accepts the usual APP_ENV spellings:
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//	if env.IsProduction() {
//		// JSON logs, info level
//	}
//
// Environment implements encoding.TextUnmarshaler so it can be used directly
// as a field type in structs loaded by pkg/config.
package environment
