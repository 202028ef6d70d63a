package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/ayoisaiah/zwoparse/internal/timeutil"
	"github.com/ayoisaiah/zwoparse/internal/workout"
)

var csvHeader = []string{
	"Type",
	"StartTime",
	"EndTime",
	"Duration",
	"Duration Formatted",
	"Min Power (% FTP)",
	"Min Power (W)",
	"Min Power (W/Kg)",
	"Max Power (% FTP)",
	"Max Power (W)",
	"Max Power (W/Kg)",
	"Cadence",
	"Work",
}

type csvRenderer struct{}

func (csvRenderer) Render(w io.Writer, wo *workout.Workout, a Athlete) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for i := range wo.Segments {
		if err := cw.Write(csvRecord(&wo.Segments[i], a)); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

func csvRecord(s *workout.Segment, a Athlete) []string {
	var cadence string
	if s.Cadence != nil {
		cadence = strconv.Itoa(*s.Cadence)
	}

	return []string{
		string(s.Kind),
		strconv.Itoa(s.StartTime),
		strconv.Itoa(s.EndTime),
		strconv.Itoa(s.Duration()),
		humanDuration(s),
		strconv.Itoa(Percent(s.Power.Min)),
		strconv.Itoa(Watts(s.Power.Min, a.FTP)),
		FormatWattsPerKilo(WattsPerKilo(s.Power.Min, a.FTP, a.Weight)),
		strconv.Itoa(Percent(s.Power.Max)),
		strconv.Itoa(Watts(s.Power.Max, a.FTP)),
		FormatWattsPerKilo(WattsPerKilo(s.Power.Max, a.FTP, a.Weight)),
		cadence,
		strconv.FormatBool(s.Working),
	}
}

func humanDuration(s *workout.Segment) string {
	return timeutil.Human(s.Duration())
}
