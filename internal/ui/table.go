package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/zwoparse/internal/render"
	"github.com/ayoisaiah/zwoparse/internal/timeutil"
	"github.com/ayoisaiah/zwoparse/internal/workout"
)

var segmentTableHeader = []string{
	"#",
	"Type",
	"Start",
	"Duration",
	"Target",
	"Cadence",
}

// PrintTable writes data as a boxed table whose first row is the header.
func PrintTable(data [][]string, writer io.Writer) error {
	table := pterm.DefaultTable
	table.Boxed = true

	str, err := table.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(writer, str)

	return err
}

// SegmentTable builds the rows of the segment summary table.
func SegmentTable(wo *workout.Workout, a render.Athlete) [][]string {
	data := make([][]string, 0, len(wo.Segments)+2)
	data = append(data, segmentTableHeader)

	for i := range wo.Segments {
		s := &wo.Segments[i]

		cadence := "-"
		if s.Cadence != nil {
			cadence = strconv.Itoa(*s.Cadence) + "rpm"
		}

		data = append(data, []string{
			strconv.Itoa(i + 1),
			Kind(s.Kind),
			timeutil.Clock(s.StartTime),
			timeutil.Human(s.Duration()),
			Zone(max(s.Power.Min, s.Power.Max), render.Intensity(s.Power, a)),
			cadence,
		})
	}

	data = append(data, []string{
		"",
		Highlight("total"),
		"",
		Highlight(timeutil.Human(wo.TotalDuration())),
		"",
		"",
	})

	return data
}

// PrintSummary prints the title of the workout followed by its segment
// table.
func PrintSummary(wo *workout.Workout, a render.Athlete, writer io.Writer) error {
	_, err := fmt.Fprintln(writer, Green(wo.Title))
	if err != nil {
		return err
	}

	return PrintTable(SegmentTable(wo, a), writer)
}
