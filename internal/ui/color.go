package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/zwoparse/internal/workout"
)

var DarkTheme = true

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Cyan(a any) string {
	if DarkTheme {
		return pterm.LightCyan(a)
	}

	return pterm.Cyan(a)
}

func Magenta(a any) string {
	if DarkTheme {
		return pterm.LightMagenta(a)
	}

	return pterm.Magenta(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

// Zone colours a value by the training zone of a power fraction.
func Zone(fraction float64, a any) string {
	switch {
	case fraction == 0:
		return Highlight(a)
	case fraction < 0.56:
		return Blue(a)
	case fraction < 0.76:
		return Green(a)
	case fraction < 0.91:
		return Yellow(a)
	case fraction < 1.06:
		return Magenta(a)
	default:
		return Red(a)
	}
}

// Kind colours a segment kind label.
func Kind(k workout.Kind) string {
	switch k {
	case workout.KindWarmup, workout.KindCooldown:
		return Cyan(k)
	case workout.KindIntervalWork:
		return Red(k)
	case workout.KindIntervalRest, workout.KindFreeRide:
		return Blue(k)
	case workout.KindCombined:
		return Magenta(k)
	default:
		return Green(k)
	}
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}
