package render

import (
	"encoding/json"
	"io"

	"github.com/ayoisaiah/zwoparse/internal/workout"
)

// JSONWorkout is the document written by the json renderer.
type JSONWorkout struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Segments    []JSONSegment `json:"segments"`
}

// JSONSegment is a single segment in the json output.
type JSONSegment struct {
	StartTime       int              `json:"start_time"`
	EndTime         int              `json:"end_time"`
	Kind            string           `json:"kind"`
	DurationSeconds int              `json:"duration_seconds"`
	DurationMS      int              `json:"duration_ms"`
	Power           JSONPower        `json:"power"`
	Cadence         *int             `json:"cadence"`
	Working         bool             `json:"working"`
	Annotations     []JSONAnnotation `json:"annotations"`
}

// JSONPower is a power range as fractions of FTP.
type JSONPower struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// JSONAnnotation is a text annotation in the json output.
type JSONAnnotation struct {
	Offset         int    `json:"offset"`
	RelativeOffset int    `json:"relative_offset"`
	Message        string `json:"message"`
}

type jsonRenderer struct{}

func (jsonRenderer) Render(w io.Writer, wo *workout.Workout, _ Athlete) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(NewJSONWorkout(wo))
}

// NewJSONWorkout converts wo to its json representation.
func NewJSONWorkout(wo *workout.Workout) JSONWorkout {
	out := JSONWorkout{
		Name:        wo.Title,
		Description: wo.Description,
		Segments:    make([]JSONSegment, 0, len(wo.Segments)),
	}

	for _, s := range wo.Segments {
		seg := JSONSegment{
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			Kind:            string(s.Kind),
			DurationSeconds: s.Duration(),
			DurationMS:      s.DurationMS(),
			Power:           JSONPower{Min: s.Power.Min, Max: s.Power.Max},
			Cadence:         s.Cadence,
			Working:         s.Working,
			Annotations:     make([]JSONAnnotation, 0, len(s.Annotations)),
		}

		for _, a := range s.Annotations {
			seg.Annotations = append(seg.Annotations, JSONAnnotation{
				Offset:         a.Offset,
				RelativeOffset: a.RelativeOffset,
				Message:        a.Message,
			})
		}

		out.Segments = append(out.Segments, seg)
	}

	return out
}
