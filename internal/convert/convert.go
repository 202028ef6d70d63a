// Package convert runs the full pipeline from workout file to rendered
// output: parse, expand, merge and render.
package convert

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ayoisaiah/zwoparse/internal/render"
	"github.com/ayoisaiah/zwoparse/internal/workout"
	"github.com/ayoisaiah/zwoparse/internal/zwo"
)

// Options controls a single conversion.
type Options struct {
	// Date is used in the workout title. Defaults to the current date.
	Date        time.Time
	Format      string
	Athlete     render.Athlete
	MinDuration int
}

// Result is the outcome of a successful conversion.
type Result struct {
	Workout *workout.Workout
	Output  []byte
}

// Convert reads a workout file from r and renders it in memory, so that
// nothing is written anywhere when any step fails.
func Convert(r io.Reader, opts Options) (*Result, error) {
	renderer, err := render.For(opts.Format)
	if err != nil {
		return nil, err
	}

	doc, err := zwo.Parse(r)
	if err != nil {
		return nil, err
	}

	wo := workout.Build(doc, workout.BuildOptions{Date: opts.Date})

	slog.Debug(
		"expanded workout",
		slog.String("title", wo.Title),
		slog.Int("blocks", len(doc.Blocks)),
		slog.Int("segments", len(wo.Segments)),
	)

	if opts.MinDuration > 0 {
		wo = wo.Merged(opts.MinDuration)

		slog.Debug(
			"merged short segments",
			slog.Int("min_duration", opts.MinDuration),
			slog.Int("segments", len(wo.Segments)),
		)
	}

	var buf bytes.Buffer

	if err := renderer.Render(&buf, wo, opts.Athlete); err != nil {
		return nil, fmt.Errorf("rendering %s output: %w", opts.Format, err)
	}

	return &Result{
		Workout: wo,
		Output:  buf.Bytes(),
	}, nil
}
