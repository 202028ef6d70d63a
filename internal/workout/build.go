package workout

import (
	"log/slog"
	"time"

	"github.com/ayoisaiah/zwoparse/internal/timeutil"
	"github.com/ayoisaiah/zwoparse/internal/zwo"
)

// BuildOptions configures Build.
type BuildOptions struct {
	// Date is appended to the workout name to form the title. Defaults to
	// the current date.
	Date time.Time
}

// Build expands the blocks of doc into contiguous segments starting at 0.
//
// Steady blocks produce one segment and interval blocks produce a work and
// a rest segment per repetition. Every text event of a block is attached to
// every segment generated from it, since the file does not say which
// repetition an event belongs to. Unknown blocks are skipped.
func Build(doc *zwo.Document, opts BuildOptions) *Workout {
	date := opts.Date
	if date.IsZero() {
		date = time.Now()
	}

	b := &builder{}

	for _, block := range doc.Blocks {
		switch blk := block.(type) {
		case *zwo.SteadyBlock:
			b.steady(blk)
		case *zwo.IntervalBlock:
			b.interval(blk)
		default:
			slog.Debug(
				"skipping unsupported workout block",
				slog.Int("position", block.Position()),
				slog.String("tag", block.Tag()),
			)
		}
	}

	return &Workout{
		Title:       doc.Name + " - " + date.Format(time.DateOnly),
		Description: doc.Description,
		Segments:    b.segments,
	}
}

type builder struct {
	segments []Segment
	cursor   int
}

func (b *builder) steady(blk *zwo.SteadyBlock) {
	kind := Kind(blk.Kind)

	if blk.Kind == zwo.FreeRide {
		b.add(kind, blk.Duration, PowerRange{}, nil, false, blk.TextEvents)
		return
	}

	b.add(kind, blk.Duration, powerRange(blk.Power), blk.Cadence, true, blk.TextEvents)
}

func (b *builder) interval(blk *zwo.IntervalBlock) {
	on := powerRange(blk.OnPower)
	off := powerRange(blk.OffPower)

	for range blk.Repeat {
		b.add(KindIntervalWork, blk.OnDuration, on, blk.Cadence, true, blk.TextEvents)
		b.add(KindIntervalRest, blk.OffDuration, off, blk.CadenceResting, false, blk.TextEvents)
	}
}

// add appends a segment starting at the cursor. The duration is rounded
// before it is accumulated, so rounding error is carried forward.
func (b *builder) add(
	kind Kind,
	seconds float64,
	power PowerRange,
	cadence *int,
	working bool,
	events []zwo.TextEvent,
) {
	start := b.cursor
	end := start + timeutil.Round(seconds)

	seg := Segment{
		StartTime:   start,
		EndTime:     end,
		Kind:        kind,
		Power:       power,
		Working:     working,
		Annotations: make([]TextAnnotation, 0, len(events)),
	}

	if cadence != nil {
		rpm := *cadence
		seg.Cadence = &rpm
	}

	for _, ev := range events {
		seg.Annotations = append(seg.Annotations, TextAnnotation{
			Offset:         ev.Offset,
			RelativeOffset: ev.Offset - start,
			Message:        ev.Message,
		})
	}

	b.segments = append(b.segments, seg)
	b.cursor = end
}

// powerRange resolves a power target: the low bound defaults to 0 and the
// high bound falls back to the single target value, then to 0.
func powerRange(p zwo.PowerTarget) PowerRange {
	var r PowerRange

	if p.Low != nil {
		r.Min = *p.Low
	}

	switch {
	case p.High != nil:
		r.Max = *p.High
	case p.Target != nil:
		r.Max = *p.Target
	}

	return r
}
