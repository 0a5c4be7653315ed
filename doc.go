// Package eel provides template helpers for a content management system:
// array and string manipulation, BEM class names, class merging, date
// offsets, resource content, number formatting, version checks, Alpine.js
// directive values, Tailwind class merging and backend translations.
//
// The helpers are grouped in namespaces and can be used from Go templates
// through FuncMap, from CEL expressions through Functions, or directly.
//
// Basic Usage:
//
//	h := eel.New(
//		eel.WithHMACSecret(secret),
//		eel.WithLogger(log),
//	)
//
//	tmpl := template.Must(template.New("page").Funcs(h.FuncMap()).Parse(
//		`<div class="{{ Carbon.BEM.String "card" "title" .Modifiers }}">`,
//	))
//
// Expressions:
//
//	env, err := h.Environment()
//	if err != nil {
//		return err
//	}
//	out, err := env.Eval(ctx, `Carbon.String.convertCamelCase(name)`, map[string]any{"name": "fontSize"})
//	// out == "font-size"
//
// Configuration:
//
// Config is read from the environment (see pkg/config) and turned into fully
// wired helpers by NewFromConfig, which picks local or S3 resource storage,
// loads translations and watches the Tailwind configuration:
//
//	var cfg eel.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	h, err := eel.NewFromConfig(ctx, cfg, eel.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	defer h.Close()
//
// Helpers never panic on unexpected template input. Where no meaningful
// result exists they return an empty string, false or nil and log the
// reason at debug or warn level. Only Date.SecondsUntil,
// Date.TimeToDateInterval, Version.LowerThan, Version.Compare and
// String.NanoID return errors.
package eel
