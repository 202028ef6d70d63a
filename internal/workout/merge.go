package workout

import "slices"

// Merge folds every segment shorter than minDurationSeconds into the
// segment before it. A threshold of zero or less returns segments as is.
//
// The scan runs once from the last segment to the second. A folded segment
// widens its predecessor's power range to the pairwise maximum, keeps the
// higher cadence (a missing cadence always loses), drops the predecessor's
// annotations and relabels it as combined. The first segment has nothing
// to fold into, so it may stay below the threshold.
func Merge(segments []Segment, minDurationSeconds int) []Segment {
	if minDurationSeconds <= 0 {
		return segments
	}

	threshold := minDurationSeconds * 1000
	out := slices.Clone(segments)

	for i := len(out) - 1; i > 0; i-- {
		cur := out[i]
		if cur.DurationMS() >= threshold {
			continue
		}

		prev := &out[i-1]
		prev.EndTime += cur.Duration()
		prev.Annotations = []TextAnnotation{}
		prev.Power = PowerRange{
			Min: max(prev.Power.Min, cur.Power.Min),
			Max: max(prev.Power.Max, cur.Power.Max),
		}
		prev.Cadence = maxCadence(prev.Cadence, cur.Cadence)
		prev.Kind = KindCombined

		out = slices.Delete(out, i, i+1)
	}

	return out
}

func maxCadence(a, b *int) *int {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		v := *b
		return &v
	case b == nil:
		v := *a
		return &v
	}

	v := max(*a, *b)

	return &v
}
