// Package workout expands a parsed workout file into a flat, time-ordered
// sequence of segments and merges segments that are too short.
package workout

// Kind identifies what produced a segment.
type Kind string

const (
	KindWarmup       Kind = "warmup"
	KindCooldown     Kind = "cooldown"
	KindFreeRide     Kind = "freeride"
	KindSteadyState  Kind = "steadystate"
	KindIntervalWork Kind = "interval-work"
	KindIntervalRest Kind = "interval-rest"
	KindCombined     Kind = "combined"
)

// PowerRange is a power target expressed as fractions of threshold power.
// Min is not guaranteed to be lower than Max: ramps are kept as written.
// A range of (0, 0) means there is no power target.
type PowerRange struct {
	Min float64
	Max float64
}

// TextAnnotation is a message displayed during a segment.
type TextAnnotation struct {
	Message string
	// Offset is measured in seconds from the start of the workout.
	Offset int
	// RelativeOffset is Offset minus the start time of the owning segment.
	RelativeOffset int
}

// Segment is one concrete, time-bounded part of a workout.
type Segment struct {
	// Cadence is the target RPM, nil when the block does not specify one.
	Cadence     *int
	Kind        Kind
	Annotations []TextAnnotation
	Power       PowerRange
	StartTime   int
	EndTime     int
	Working     bool
}

// Duration returns the length of the segment in seconds.
func (s Segment) Duration() int {
	return s.EndTime - s.StartTime
}

// DurationMS returns the length of the segment in milliseconds.
func (s Segment) DurationMS() int {
	return s.Duration() * 1000
}

// Workout is the expanded form of a workout file.
type Workout struct {
	Title       string
	Description string
	Segments    []Segment
}

// TotalDuration returns the length of the whole workout in seconds.
func (w *Workout) TotalDuration() int {
	if len(w.Segments) == 0 {
		return 0
	}

	return w.Segments[len(w.Segments)-1].EndTime - w.Segments[0].StartTime
}

// Merged returns a copy of the workout whose segments have been passed
// through Merge.
func (w *Workout) Merged(minDurationSeconds int) *Workout {
	return &Workout{
		Title:       w.Title,
		Description: w.Description,
		Segments:    Merge(w.Segments, minDurationSeconds),
	}
}
