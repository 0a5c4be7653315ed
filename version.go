package eel

import (
	"github.com/carbon-eel/eel/pkg/expr"
	"github.com/carbon-eel/eel/pkg/logger"
	"github.com/carbon-eel/eel/pkg/value"
	"github.com/carbon-eel/eel/pkg/version"
)

// VersionHelper compares versions against the configured framework version.
type VersionHelper struct {
	opts *options
}

// FrameworkVersion returns the version comparisons are made against.
func (h *VersionHelper) FrameworkVersion() string {
	return h.opts.frameworkVersion
}

// LowerThan reports whether the framework version is lower than v.
func (h *VersionHelper) LowerThan(v string) (bool, error) {
	return version.CompareWith(h.opts.frameworkVersion, v, "lt")
}

// LowerThanNine reports whether the framework version is lower than 9.0.
// An unparsable framework version counts as not lower.
func (h *VersionHelper) LowerThanNine() bool {
	lower, err := h.LowerThan("9.0")
	if err != nil {
		h.opts.logger.Warn("framework version is not comparable",
			logger.Helper("Carbon.Version"), logger.Method("lowerThanNine"), logger.Error(err))
		return false
	}
	return lower
}

// Compare compares the framework version with v. Without an operator it
// returns -1, 0 or 1; with one it returns whether "framework op v" holds.
func (h *VersionHelper) Compare(v string, op ...string) (any, error) {
	if len(op) == 0 || op[0] == "" {
		return version.Compare(h.opts.frameworkVersion, v)
	}
	return version.CompareWith(h.opts.frameworkVersion, v, op[0])
}

// AllowsCallOfMethod reports that every method may be called from expressions.
func (h *VersionHelper) AllowsCallOfMethod(string) bool {
	return true
}

func (h *VersionHelper) functions() []expr.Function {
	return []expr.Function{
		function("Carbon.Version.lowerThanNine", 0, 0, pure(func([]any) any { return h.LowerThanNine() })),
		function("Carbon.Version.lowerThan", 1, 1, func(a []any) (any, error) {
			return h.LowerThan(value.String(a[0]))
		}),
		function("Carbon.Version.compare", 1, 2, func(a []any) (any, error) {
			return h.Compare(value.String(a[0]), stringArg(a, 1, ""))
		}),
	}
}
