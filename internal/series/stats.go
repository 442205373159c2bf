package series

import "time"

// Current returns the point in effect at ref: the latest point at or before
// ref, falling back to the final point when every timestamp is still ahead.
func (s Series) Current(ref time.Time) (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	all := s.Timestamps()
	for i := len(all) - 1; i >= 0; i-- {
		if !all[i].After(ref) {
			return Point{Time: all[i], Value: s[all[i]]}, true
		}
	}
	last := all[len(all)-1]
	return Point{Time: last, Value: s[last]}, true
}

// Next returns the earliest point strictly after ref.
func (s Series) Next(ref time.Time) (Point, bool) {
	for _, ts := range s.Timestamps() {
		if ts.After(ref) {
			return Point{Time: ts, Value: s[ts]}, true
		}
	}
	return Point{}, false
}

// Min returns the point with the smallest value. The earliest timestamp
// wins when several points share it.
func (s Series) Min() (Point, bool) {
	return s.pick(func(candidate, best float64) bool { return candidate < best })
}

// Max returns the point with the largest value. The earliest timestamp wins
// when several points share it.
func (s Series) Max() (Point, bool) {
	return s.pick(func(candidate, best float64) bool { return candidate > best })
}

func (s Series) pick(better func(candidate, best float64) bool) (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	all := s.Timestamps()
	best := Point{Time: all[0], Value: s[all[0]]}
	for _, ts := range all[1:] {
		if better(s[ts], best.Value) {
			best = Point{Time: ts, Value: s[ts]}
		}
	}
	return best, true
}

// Average returns the arithmetic mean of all values.
func (s Series) Average() (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s)), true
}

// Timeline renders the series as an ISO 8601 keyed map. Keys of equal
// offset sort chronologically, so a JSON encoding lists points in order.
func (s Series) Timeline() map[string]float64 {
	out := make(map[string]float64, len(s))
	for ts, v := range s {
		out[ts.Format(time.RFC3339)] = v
	}
	return out
}
