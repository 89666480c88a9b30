// Package clock provides wall-clock time arithmetic on "HH:mm" values.
// All operations treat the day as a 1440-minute loop, so results wrap
// correctly across midnight in both directions.
package clock

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MinutesPerDay is the length of the clock loop.
const MinutesPerDay = 24 * 60

// ErrInvalidFormat indicates a malformed clock-time string.
var ErrInvalidFormat = errors.New("invalid clock time format")

// Time is a wall-clock time of day with minute resolution.
type Time struct {
	Hour   int
	Minute int
}

// Parse parses an "HH:mm" string. It fails with ErrInvalidFormat unless
// the input has exactly two numeric components separated by a colon.
func Parse(s string) (Time, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Time{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	return FromMinutes(hour*60 + minute), nil
}

// FromMinutes builds a Time from minutes after midnight, normalized into
// [0, MinutesPerDay).
func FromMinutes(minutes int) Time {
	minutes = ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return Time{Hour: minutes / 60, Minute: minutes % 60}
}

// Minutes returns the time as minutes after midnight.
func (t Time) Minutes() int {
	return t.Hour*60 + t.Minute
}

// String formats the time as "HH:mm".
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Add returns the time shifted forward by delta minutes, wrapping at
// midnight. Negative deltas shift backward.
func (t Time) Add(delta int) Time {
	return FromMinutes(t.Minutes() + delta)
}

// Sub returns the time shifted backward by delta minutes, wrapping at
// midnight.
func (t Time) Sub(delta int) Time {
	return FromMinutes(t.Minutes() - delta)
}

// ElapsedHours computes the duration from bedtime to wake in hours,
// rounded to 2 decimal places. A wake time numerically at or before the
// bedtime is interpreted as occurring on the following day.
func ElapsedHours(bedtime, wake Time) float64 {
	minutes := wake.Minutes() - bedtime.Minutes()
	if minutes <= 0 {
		minutes += MinutesPerDay
	}
	return math.Round(float64(minutes)/60.0*100) / 100
}

// CircularMean computes the average of clock times treating the day as a
// loop: each time maps to an angle in [0, 2π), unit vectors are summed
// and the mean angle maps back to a minute of day. A naive arithmetic
// mean of 23:30 and 00:30 lands at 12:00; the circular mean correctly
// yields 00:00. An empty input returns midnight.
func CircularMean(times []Time) Time {
	if len(times) == 0 {
		return Time{}
	}

	var sinSum, cosSum float64
	for _, t := range times {
		angle := float64(t.Minutes()) / MinutesPerDay * 2 * math.Pi
		sinSum += math.Sin(angle)
		cosSum += math.Cos(angle)
	}

	n := float64(len(times))
	mean := math.Atan2(sinSum/n, cosSum/n)
	if mean < 0 {
		mean += 2 * math.Pi
	}

	minutes := int(math.Round(mean / (2 * math.Pi) * MinutesPerDay))
	return FromMinutes(minutes)
}
