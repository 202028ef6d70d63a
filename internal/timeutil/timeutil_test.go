package timeutil

import "testing"

func TestRound(t *testing.T) {
	cases := map[float64]int{
		0:     0,
		29.4:  29,
		29.5:  30,
		30.5:  31,
		31.49: 31,
		59.99: 60,
		-0.5:  -1,
	}

	for in, want := range cases {
		if got := Round(in); got != want {
			t.Errorf("Round(%v): expected %d, but got %d", in, want, got)
		}
	}
}

func TestHuman(t *testing.T) {
	type test struct {
		seconds int
		want    string
	}

	cases := []test{
		{0, "0 secs"},
		{45, "45 secs"},
		{60, "60 secs"},
		{61, "1 mins 1 secs"},
		{200, "3 mins 20 secs"},
		{300, "5 mins"},
		{3600, "60 mins"},
	}

	for _, tc := range cases {
		if got := Human(tc.seconds); got != tc.want {
			t.Errorf("Human(%d): expected %q, but got %q", tc.seconds, tc.want, got)
		}
	}
}

func TestClock(t *testing.T) {
	cases := map[int]string{
		0:    "0:00",
		65:   "1:05",
		1442: "24:02",
		3725: "1:02:05",
	}

	for in, want := range cases {
		if got := Clock(in); got != want {
			t.Errorf("Clock(%d): expected %q, but got %q", in, want, got)
		}
	}
}
