package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/reader"

	"github.com/ayoisaiah/zwoparse/internal/static"
	"github.com/ayoisaiah/zwoparse/internal/testutil"
	"github.com/ayoisaiah/zwoparse/internal/workout"
	"github.com/ayoisaiah/zwoparse/internal/zwo"
)

var testAthlete = Athlete{FTP: 266, Weight: 71}

func sampleWorkout(t *testing.T) *workout.Workout {
	t.Helper()

	doc, err := zwo.Parse(bytes.NewReader(static.Sample()))
	require.NoError(t, err)

	return workout.Build(doc, workout.BuildOptions{
		Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
}

func renderString(t *testing.T, format string, wo *workout.Workout) []byte {
	t.Helper()

	r, err := For(format)
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, r.Render(&buf, wo, testAthlete))

	return buf.Bytes()
}

func TestRenderGolden(t *testing.T) {
	wo := sampleWorkout(t)

	testCases := []struct {
		name   string
		format string
		wo     *workout.Workout
	}{
		{name: "sample_txt", format: FormatTxt, wo: wo},
		{name: "sample_csv", format: FormatCSV, wo: wo},
		{name: "sample_json", format: FormatJSON, wo: wo},
		{name: "sample_merged_txt", format: FormatTxt, wo: wo.Merged(40)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			testutil.CompareGoldenFile(t, testutil.Golden{
				Name: tc.name,
				Data: renderString(t, tc.format, tc.wo),
			})
		})
	}
}

func TestDerivedValues(t *testing.T) {
	testCases := []struct {
		fraction float64
		percent  int
		watts    int
		wkg      string
	}{
		{fraction: 0.75, percent: 75, watts: 199, wkg: "2.8"},
		{fraction: 0.25, percent: 25, watts: 66, wkg: "0.9"},
		{fraction: 1.05, percent: 105, watts: 279, wkg: "3.9"},
		{fraction: 0, percent: 0, watts: 0, wkg: "0.0"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.percent, Percent(tc.fraction), "Percent(%v)", tc.fraction)
		assert.Equal(t, tc.watts, Watts(tc.fraction, 266), "Watts(%v)", tc.fraction)
		assert.Equal(
			t,
			tc.wkg,
			FormatWattsPerKilo(WattsPerKilo(tc.fraction, 266, 71)),
			"WattsPerKilo(%v)",
			tc.fraction,
		)
	}
}

func TestIntensity(t *testing.T) {
	assert.Equal(
		t,
		"75% (199W, 2.8 W/kg)",
		Intensity(workout.PowerRange{Max: 0.75}, testAthlete),
	)

	assert.Equal(
		t,
		"25%-75% (66-199W, 0.9-2.8 W/kg)",
		Intensity(workout.PowerRange{Min: 0.25, Max: 0.75}, testAthlete),
	)
}

func TestSegmentLineWithoutCadence(t *testing.T) {
	s := workout.Segment{
		StartTime: 10,
		EndTime:   210,
		Kind:      workout.KindSteadyState,
		Power:     workout.PowerRange{Max: 0.5},
	}

	assert.Equal(
		t,
		"steadystate 50% (133W, 1.9 W/kg) for 3 mins 20 secs",
		SegmentLine(&s, testAthlete),
	)
}

func TestForUnknownFormat(t *testing.T) {
	_, err := For("xml")
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("For(xml) error = %v, want %v", err, ErrUnknownFormat)
	}

	assert.False(t, IsSupported("xml"))
	assert.True(t, IsSupported("JSON"))
}

func TestJSONRoundTrip(t *testing.T) {
	wo := sampleWorkout(t)

	var got JSONWorkout

	require.NoError(t, json.Unmarshal(renderString(t, FormatJSON, wo), &got))

	assert.Equal(t, wo.Title, got.Name)
	assert.Equal(t, wo.Description, got.Description)
	require.Len(t, got.Segments, len(wo.Segments))

	for i, s := range wo.Segments {
		assert.Equal(t, string(s.Kind), got.Segments[i].Kind)
		assert.Equal(t, s.StartTime, got.Segments[i].StartTime)
		assert.Equal(t, s.EndTime, got.Segments[i].EndTime)
		assert.Equal(t, s.DurationMS(), got.Segments[i].DurationMS)
	}
}

func TestCSVShape(t *testing.T) {
	wo := sampleWorkout(t).Merged(40)

	records, err := csv.NewReader(
		bytes.NewReader(renderString(t, FormatCSV, wo)),
	).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, len(wo.Segments)+1)

	for _, rec := range records {
		assert.Len(t, rec, 13)
	}

	assert.Equal(t, "combined", records[2][0])
	assert.Equal(t, "300", records[2][1])
	assert.Equal(t, "361", records[2][2])
}

func TestParquetRoundTrip(t *testing.T) {
	wo := sampleWorkout(t)

	path := filepath.Join(t.TempDir(), "workout.parquet")
	require.NoError(t, os.WriteFile(path, renderString(t, FormatParquet, wo), 0o600))

	fr, err := local.NewLocalFileReader(path)
	require.NoError(t, err)

	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, new(parquetRow), 1)
	require.NoError(t, err)

	defer pr.ReadStop()

	rows := make([]parquetRow, pr.GetNumRows())
	require.NoError(t, pr.Read(&rows))
	require.Len(t, rows, len(wo.Segments))

	for i, s := range wo.Segments {
		assert.Equal(t, string(s.Kind), rows[i].Kind)
		assert.EqualValues(t, s.StartTime, rows[i].StartTime)
		assert.EqualValues(t, s.EndTime, rows[i].EndTime)
		assert.Equal(t, s.Working, rows[i].Working)

		if s.Cadence == nil {
			assert.Nil(t, rows[i].Cadence)
		} else if assert.NotNil(t, rows[i].Cadence) {
			assert.EqualValues(t, *s.Cadence, *rows[i].Cadence)
		}
	}

	assert.EqualValues(t, 199, rows[0].MaxPowerWatts)
	assert.InDelta(t, 2.8, rows[0].MaxPowerWkg, 1e-9)
}
