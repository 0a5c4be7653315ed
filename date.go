package eel

import (
	"fmt"
	"time"

	"github.com/carbon-eel/eel/pkg/expr"
	"github.com/carbon-eel/eel/pkg/interval"
)

// DateHelper computes date offsets relative to the configured clock.
type DateHelper struct {
	opts *options
}

// SecondsUntil returns the seconds from now until input.
//
// input is a time.Time, an ISO-8601 duration added to today's midnight
// (isInterval, the default) or a date time string. An interval target that
// already passed today refers to tomorrow.
func (h *DateHelper) SecondsUntil(input any, isInterval ...bool) (int64, error) {
	now := h.opts.now()
	switch t := input.(type) {
	case time.Time:
		return t.Unix() - now.Unix(), nil
	case *time.Time:
		if t == nil {
			return 0, fmt.Errorf("%w: nil time", interval.ErrInvalidDateTime)
		}
		return t.Unix() - now.Unix(), nil
	case string:
		return interval.SecondsUntil(now, t, optional(isInterval, true))
	}
	return 0, fmt.Errorf("%w: unsupported input %T", ErrInvalidArgument, input)
}

// TimeToDateInterval converts a clock time such as "1:30" to an ISO-8601
// duration ("PT1H30M").
func (h *DateHelper) TimeToDateInterval(clock string) (string, error) {
	return interval.FromClock(clock)
}

// AllowsCallOfMethod reports that every method may be called from expressions.
func (h *DateHelper) AllowsCallOfMethod(string) bool {
	return true
}

func (h *DateHelper) functions() []expr.Function {
	return []expr.Function{
		function("Carbon.Date.secondsUntil", 1, 2, func(a []any) (any, error) {
			return h.SecondsUntil(a[0], boolArg(a, 1, true))
		}),
		function("Carbon.Date.timeToDateInterval", 1, 1, func(a []any) (any, error) {
			s, ok := a[0].(string)
			if !ok {
				return nil, fmt.Errorf("%w: expected a clock time string", ErrInvalidArgument)
			}
			return h.TimeToDateInterval(s)
		}),
	}
}
