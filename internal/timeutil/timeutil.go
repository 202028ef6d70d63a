// Package timeutil provides utility functions for working with workout
// durations expressed in seconds.
package timeutil

import (
	"fmt"
	"math"
)

const secondsInAMinute = 60

// Round rounds a duration in seconds to the nearest whole second. Ties round
// away from zero, so 30.5 becomes 31 and 29.5 becomes 30.
func Round(t float64) int {
	return int(math.Round(t))
}

// SecsToMinsAndSecs expresses a seconds value in minutes and seconds.
func SecsToMinsAndSecs(val int) (mins, secs int) {
	mins = val / secondsInAMinute
	secs = val % secondsInAMinute

	return
}

// Human returns a readable representation of a duration in seconds such as
// "45 secs", "5 mins" or "3 mins 20 secs". Durations of up to a minute are
// always expressed in seconds.
func Human(seconds int) string {
	if seconds <= secondsInAMinute {
		return fmt.Sprintf("%d secs", seconds)
	}

	mins, secs := SecsToMinsAndSecs(seconds)
	if secs == 0 {
		return fmt.Sprintf("%d mins", mins)
	}

	return fmt.Sprintf("%d mins %d secs", mins, secs)
}

// Clock formats an offset in seconds as m:ss, or h:mm:ss from an hour on.
func Clock(seconds int) string {
	h := seconds / 3600
	mins, secs := SecsToMinsAndSecs(seconds % 3600)

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, mins, secs)
	}

	return fmt.Sprintf("%d:%02d", mins, secs)
}
