package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ayoisaiah/zwoparse/internal/timeutil"
	"github.com/ayoisaiah/zwoparse/internal/workout"
)

const annotationIndent = "    "

type txtRenderer struct{}

func (txtRenderer) Render(w io.Writer, wo *workout.Workout, a Athlete) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\n\n%s\n\n", wo.Title, wo.Description)

	for i := range wo.Segments {
		fmt.Fprintln(bw, SegmentLine(&wo.Segments[i], a))

		for _, ann := range wo.Segments[i].Annotations {
			fmt.Fprintln(bw, annotationIndent+ann.Message)
		}
	}

	return bw.Flush()
}

// SegmentLine describes a single segment in one line of text, for example
// "steadystate 88% (234W, 3.3 W/kg) @ 90rpm for 10 mins".
func SegmentLine(s *workout.Segment, a Athlete) string {
	line := string(s.Kind) + " " + Intensity(s.Power, a)

	if s.Cadence != nil {
		line += fmt.Sprintf(" @ %drpm", *s.Cadence)
	}

	return line + " for " + timeutil.Human(s.Duration())
}
