package workout

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ayoisaiah/zwoparse/internal/zwo"
)

var testDate = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

func intPtr(v int) *int {
	return &v
}

func parseDoc(t *testing.T, blocks string) *zwo.Document {
	t.Helper()

	src := `<workout_file>
	<name>Test</name>
	<description>desc</description>
	<workout>` + blocks + `</workout>
</workout_file>`

	doc, err := zwo.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("zwo.Parse() error = %v", err)
	}

	return doc
}

type buildTest struct {
	name   string
	blocks string
	want   []Segment
}

var buildTestCases = []buildTest{
	{
		name:   "steady state with a single power target",
		blocks: `<SteadyState Duration="600" Power="0.88" Cadence="90"/>`,
		want: []Segment{
			{
				StartTime: 0,
				EndTime:   600,
				Kind:      KindSteadyState,
				Power:     PowerRange{Min: 0, Max: 0.88},
				Cadence:   intPtr(90),
				Working:   true,
			},
		},
	},
	{
		name:   "warmup ramp keeps low and high as written",
		blocks: `<Warmup Duration="300" PowerLow="0.25" PowerHigh="0.75"/>`,
		want: []Segment{
			{
				EndTime: 300,
				Kind:    KindWarmup,
				Power:   PowerRange{Min: 0.25, Max: 0.75},
				Working: true,
			},
		},
	},
	{
		name:   "cooldown ramp may be descending",
		blocks: `<Cooldown Duration="120" PowerLow="0.6" PowerHigh="0.3"/>`,
		want: []Segment{
			{
				EndTime: 120,
				Kind:    KindCooldown,
				Power:   PowerRange{Min: 0.6, Max: 0.3},
				Working: true,
			},
		},
	},
	{
		name:   "power high takes precedence over power",
		blocks: `<SteadyState Duration="60" Power="0.5" PowerHigh="0.9"/>`,
		want: []Segment{
			{
				EndTime: 60,
				Kind:    KindSteadyState,
				Power:   PowerRange{Max: 0.9},
				Working: true,
			},
		},
	},
	{
		name:   "free ride has no target and is not working",
		blocks: `<FreeRide Duration="120" Power="0.7" Cadence="80"/>`,
		want: []Segment{
			{
				EndTime: 120,
				Kind:    KindFreeRide,
			},
		},
	},
	{
		name: "fractional intervals stay contiguous",
		blocks: `<IntervalsT Repeat="3" OnDuration="30.5" OffDuration="29.5"
			OnPower="1.05" OffPower="0.5" Cadence="100" CadenceResting="85"/>`,
		want: []Segment{
			{StartTime: 0, EndTime: 31, Kind: KindIntervalWork, Power: PowerRange{Max: 1.05}, Cadence: intPtr(100), Working: true},
			{StartTime: 31, EndTime: 61, Kind: KindIntervalRest, Power: PowerRange{Max: 0.5}, Cadence: intPtr(85)},
			{StartTime: 61, EndTime: 92, Kind: KindIntervalWork, Power: PowerRange{Max: 1.05}, Cadence: intPtr(100), Working: true},
			{StartTime: 92, EndTime: 122, Kind: KindIntervalRest, Power: PowerRange{Max: 0.5}, Cadence: intPtr(85)},
			{StartTime: 122, EndTime: 153, Kind: KindIntervalWork, Power: PowerRange{Max: 1.05}, Cadence: intPtr(100), Working: true},
			{StartTime: 153, EndTime: 183, Kind: KindIntervalRest, Power: PowerRange{Max: 0.5}, Cadence: intPtr(85)},
		},
	},
	{
		name: "interval ranges use the on and off low and high attributes",
		blocks: `<IntervalsT Repeat="1" OnDuration="60" OffDuration="60"
			PowerOnLow="0.9" PowerOnHigh="1.1" PowerOffLow="0.4" PowerOffHigh="0.6"/>`,
		want: []Segment{
			{EndTime: 60, Kind: KindIntervalWork, Power: PowerRange{Min: 0.9, Max: 1.1}, Working: true},
			{StartTime: 60, EndTime: 120, Kind: KindIntervalRest, Power: PowerRange{Min: 0.4, Max: 0.6}},
		},
	},
	{
		name:   "zero repeats produce no segments",
		blocks: `<IntervalsT Repeat="0" OnDuration="60" OffDuration="60" OnPower="1" OffPower="0.5"/>`,
		want:   nil,
	},
	{
		name: "unknown blocks are skipped without advancing time",
		blocks: `<SteadyState Duration="60" Power="0.8"/>
			<MaxEffort Duration="30"/>
			<SteadyState Duration="60" Power="0.9"/>`,
		want: []Segment{
			{EndTime: 60, Kind: KindSteadyState, Power: PowerRange{Max: 0.8}, Working: true},
			{StartTime: 60, EndTime: 120, Kind: KindSteadyState, Power: PowerRange{Max: 0.9}, Working: true},
		},
	},
	{
		name: "text events are attached relative to each segment",
		blocks: `<SteadyState Duration="60" Power="0.5"/>
			<SteadyState Duration="600" Power="0.88">
				<textevent timeoffset="425" message="Settle in"/>
			</SteadyState>`,
		want: []Segment{
			{EndTime: 60, Kind: KindSteadyState, Power: PowerRange{Max: 0.5}, Working: true},
			{
				StartTime: 60,
				EndTime:   660,
				Kind:      KindSteadyState,
				Power:     PowerRange{Max: 0.88},
				Working:   true,
				Annotations: []TextAnnotation{
					{Offset: 425, RelativeOffset: 365, Message: "Settle in"},
				},
			},
		},
	},
	{
		name: "interval text events are copied to every generated segment",
		blocks: `<IntervalsT Repeat="2" OnDuration="10" OffDuration="10" OnPower="1" OffPower="0.5">
				<textevent timeoffset="5" message="Go"/>
			</IntervalsT>`,
		want: []Segment{
			{EndTime: 10, Kind: KindIntervalWork, Power: PowerRange{Max: 1}, Working: true,
				Annotations: []TextAnnotation{{Offset: 5, RelativeOffset: 5, Message: "Go"}}},
			{StartTime: 10, EndTime: 20, Kind: KindIntervalRest, Power: PowerRange{Max: 0.5},
				Annotations: []TextAnnotation{{Offset: 5, RelativeOffset: -5, Message: "Go"}}},
			{StartTime: 20, EndTime: 30, Kind: KindIntervalWork, Power: PowerRange{Max: 1}, Working: true,
				Annotations: []TextAnnotation{{Offset: 5, RelativeOffset: -15, Message: "Go"}}},
			{StartTime: 30, EndTime: 40, Kind: KindIntervalRest, Power: PowerRange{Max: 0.5},
				Annotations: []TextAnnotation{{Offset: 5, RelativeOffset: -25, Message: "Go"}}},
		},
	},
}

func TestBuild(t *testing.T) {
	for _, tc := range buildTestCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Build(parseDoc(t, tc.blocks), BuildOptions{Date: testDate})

			if diff := cmp.Diff(tc.want, got.Segments, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Build() segments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildTitle(t *testing.T) {
	got := Build(parseDoc(t, ""), BuildOptions{Date: testDate})

	if got.Title != "Test - 2024-03-01" {
		t.Errorf("Title = %q, want %q", got.Title, "Test - 2024-03-01")
	}

	if got.Description != "desc" {
		t.Errorf("Description = %q, want %q", got.Description, "desc")
	}

	if len(got.Segments) != 0 {
		t.Errorf("len(Segments) = %d, want 0", len(got.Segments))
	}
}

func TestBuildSegmentsAreContiguous(t *testing.T) {
	doc := parseDoc(t, `<Warmup Duration="300.4" PowerLow="0.25" PowerHigh="0.75"/>
		<IntervalsT Repeat="4" OnDuration="40.5" OffDuration="19.5" OnPower="1.1" OffPower="0.5"/>
		<FreeRide Duration="90.6"/>
		<Cooldown Duration="299.5" PowerLow="0.6" PowerHigh="0.3"/>`)

	got := Build(doc, BuildOptions{Date: testDate}).Segments

	if len(got) != 11 {
		t.Fatalf("len(Segments) = %d, want 11", len(got))
	}

	if got[0].StartTime != 0 {
		t.Errorf("Segments[0].StartTime = %d, want 0", got[0].StartTime)
	}

	for i := 1; i < len(got); i++ {
		if got[i].StartTime != got[i-1].EndTime {
			t.Errorf(
				"Segments[%d].StartTime = %d, want %d",
				i,
				got[i].StartTime,
				got[i-1].EndTime,
			)
		}
	}
}

func TestBuildDoesNotShareCadence(t *testing.T) {
	doc := parseDoc(t, `<IntervalsT Repeat="2" OnDuration="10" OffDuration="10" OnPower="1" OffPower="0.5" Cadence="100"/>`)

	got := Build(doc, BuildOptions{Date: testDate}).Segments

	*got[0].Cadence = 50

	if *got[2].Cadence != 100 {
		t.Errorf("Segments[2].Cadence = %d, want 100", *got[2].Cadence)
	}
}

func TestSegmentDuration(t *testing.T) {
	s := Segment{StartTime: 31, EndTime: 61}

	if s.Duration() != 30 {
		t.Errorf("Duration() = %d, want 30", s.Duration())
	}

	if s.DurationMS() != 30000 {
		t.Errorf("DurationMS() = %d, want 30000", s.DurationMS())
	}
}
