// Package interval computes offsets from ISO-8601 durations and date strings.
package interval

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/sosodev/duration"
)

var (
	ErrInvalidInterval = errors.New("invalid interval")
	ErrInvalidDateTime = errors.New("invalid date time")
	ErrInvalidClock    = errors.New("invalid clock time")
)

// AddTo adds an ISO-8601 duration to t. Years, months, weeks and days are
// calendar units, the rest is added as elapsed time.
func AddTo(t time.Time, iso string) (time.Time, error) {
	d, err := duration.Parse(strings.TrimSpace(iso))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: Error while converting offset to DateInterval object: %w", ErrInvalidInterval, err)
	}

	sign := 1
	if d.Negative {
		sign = -1
	}

	t = t.AddDate(
		sign*int(d.Years),
		sign*int(d.Months),
		sign*(int(d.Weeks)*7+int(d.Days)),
	)
	clock := d.Hours*float64(time.Hour) + d.Minutes*float64(time.Minute) + d.Seconds*float64(time.Second)
	return t.Add(time.Duration(float64(sign) * math.Round(clock))), nil
}

// SecondsUntil returns the number of whole seconds from now until the moment described by input.
//
// With isInterval the input is an ISO-8601 duration counted from midnight of
// now's day: "PT18H" is today at 18:00. A moment already in the past moves to
// the following day. Otherwise input is parsed as a date and time in now's
// location, and the result is negative for past dates.
func SecondsUntil(now time.Time, input string, isInterval bool) (int64, error) {
	if !isInterval {
		then, err := dateparse.ParseIn(strings.TrimSpace(input), now.Location())
		if err != nil {
			return 0, errors.Join(ErrInvalidDateTime, err)
		}
		return then.Unix() - now.Unix(), nil
	}

	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	then, err := AddTo(midnight, input)
	if err != nil {
		return 0, err
	}
	if then.Before(now) {
		then = then.AddDate(0, 0, 1)
	}
	return then.Unix() - now.Unix(), nil
}

// FromClock converts a "H:M" clock time to an ISO-8601 duration: "1:30" is "PT1H30M".
// A seconds part, as in "01:30:00", is accepted and ignored.
func FromClock(clock string) (string, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	fields := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return "", fmt.Errorf("%w: %q", ErrInvalidClock, clock)
		}
		fields[i] = n
	}
	hours, minutes := fields[0], fields[1]

	var b strings.Builder
	b.WriteString("PT")
	if hours > 0 {
		b.WriteString(strconv.Itoa(hours) + "H")
	}
	if minutes > 0 || hours == 0 {
		b.WriteString(strconv.Itoa(minutes) + "M")
	}
	return b.String(), nil
}
