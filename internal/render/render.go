// Package render writes an expanded workout in one of the supported output
// formats.
package render

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"github.com/ayoisaiah/zwoparse/internal/apperr"
	"github.com/ayoisaiah/zwoparse/internal/workout"
)

// Supported output formats.
const (
	FormatTxt     = "txt"
	FormatCSV     = "csv"
	FormatJSON    = "json"
	FormatParquet = "parquet"
)

// Formats lists every supported output format.
var Formats = []string{FormatTxt, FormatCSV, FormatJSON, FormatParquet}

var ErrUnknownFormat = &apperr.Error{
	Message: "unknown output type %q, expected one of: %s",
}

// Athlete holds the rider values used to turn power fractions into
// absolute numbers.
type Athlete struct {
	FTP    int
	Weight float64
}

// Renderer writes a workout to w.
type Renderer interface {
	Render(w io.Writer, wo *workout.Workout, athlete Athlete) error
}

// For returns the renderer for the given format.
func For(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case FormatTxt:
		return txtRenderer{}, nil
	case FormatCSV:
		return csvRenderer{}, nil
	case FormatJSON:
		return jsonRenderer{}, nil
	case FormatParquet:
		return parquetRenderer{}, nil
	}

	return nil, ErrUnknownFormat.Fmt(format, strings.Join(Formats, ", "))
}

// IsSupported reports whether format names a known renderer.
func IsSupported(format string) bool {
	return slices.Contains(Formats, strings.ToLower(format))
}

// ContentType returns the media type of the given format.
func ContentType(format string) string {
	switch strings.ToLower(format) {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatJSON:
		return "application/json"
	case FormatParquet:
		return "application/vnd.apache.parquet"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Percent converts a power fraction to a whole percentage of FTP.
func Percent(fraction float64) int {
	return int(math.Round(100 * fraction))
}

// Watts converts a power fraction to absolute watts, truncated toward zero.
func Watts(fraction float64, ftp int) int {
	return int(fraction * float64(ftp))
}

// WattsPerKilo converts a power fraction to watts per kilogram, rounded to
// one decimal place.
func WattsPerKilo(fraction float64, ftp int, kg float64) float64 {
	if kg == 0 {
		return 0
	}

	return math.Round(fraction*float64(ftp)/kg*10) / 10
}

// FormatWattsPerKilo formats a watts per kilogram value with one decimal.
func FormatWattsPerKilo(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// Intensity describes a power range the way the text output shows it: a
// single value when the range has no lower bound, otherwise a range.
func Intensity(p workout.PowerRange, a Athlete) string {
	if p.Min == 0 {
		return fmt.Sprintf(
			"%d%% (%dW, %s W/kg)",
			Percent(p.Max),
			Watts(p.Max, a.FTP),
			FormatWattsPerKilo(WattsPerKilo(p.Max, a.FTP, a.Weight)),
		)
	}

	return fmt.Sprintf(
		"%d%%-%d%% (%d-%dW, %s-%s W/kg)",
		Percent(p.Min),
		Percent(p.Max),
		Watts(p.Min, a.FTP),
		Watts(p.Max, a.FTP),
		FormatWattsPerKilo(WattsPerKilo(p.Min, a.FTP, a.Weight)),
		FormatWattsPerKilo(WattsPerKilo(p.Max, a.FTP, a.Weight)),
	)
}
