package series

import (
	"sort"
	"time"
)

// CategorySeries groups hourly series by production category.
type CategorySeries map[string]Series

// NewCategories returns an empty category series.
func NewCategories() CategorySeries {
	return make(CategorySeries)
}

// Set stores value for category at ts, creating the category as needed.
func (cs CategorySeries) Set(category string, ts time.Time, value float64) {
	inner, ok := cs[category]
	if !ok {
		inner = New()
		cs[category] = inner
	}
	inner.Set(ts, value)
}

// Accumulate adds other into cs, summing values where a category and
// timestamp collide.
func (cs CategorySeries) Accumulate(other CategorySeries) {
	for category, inner := range other {
		for ts, v := range inner {
			existing, ok := cs[category]
			if !ok {
				existing = New()
				cs[category] = existing
			}
			existing[ts.UTC()] += v
		}
	}
}

// Categories returns the category names in sorted order.
func (cs CategorySeries) Categories() []string {
	out := make([]string, 0, len(cs))
	for category := range cs {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// Timestamps returns the union of all period starts in chronological order.
func (cs CategorySeries) Timestamps() []time.Time {
	seen := make(map[time.Time]struct{})
	for _, inner := range cs {
		for ts := range inner {
			seen[ts] = struct{}{}
		}
	}
	out := make([]time.Time, 0, len(seen))
	for ts := range seen {
		out = append(out, ts)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Len returns the number of distinct period starts.
func (cs CategorySeries) Len() int {
	return len(cs.Timestamps())
}

// Current returns the value of category at the timestamp in effect at ref.
// The timestamp is selected over the union of all categories, so a category
// missing that hour yields no point even when it has data elsewhere.
func (cs CategorySeries) Current(category string, ref time.Time) (Point, bool) {
	ts, ok := cs.currentTimestamp(ref)
	if !ok {
		return Point{}, false
	}
	v, ok := cs[category][ts]
	if !ok {
		return Point{}, false
	}
	return Point{Time: ts, Value: v}, true
}

// Next returns the value of category at the earliest shared timestamp
// strictly after ref.
func (cs CategorySeries) Next(category string, ref time.Time) (Point, bool) {
	for _, ts := range cs.Timestamps() {
		if !ts.After(ref) {
			continue
		}
		if v, ok := cs[category][ts]; ok {
			return Point{Time: ts, Value: v}, true
		}
		return Point{}, false
	}
	return Point{}, false
}

func (cs CategorySeries) currentTimestamp(ref time.Time) (time.Time, bool) {
	all := cs.Timestamps()
	if len(all) == 0 {
		return time.Time{}, false
	}
	for i := len(all) - 1; i >= 0; i-- {
		if !all[i].After(ref) {
			return all[i], true
		}
	}
	return all[len(all)-1], true
}

// Timeline renders one category as an ISO 8601 keyed map, skipping hours
// the category has no value for.
func (cs CategorySeries) Timeline(category string) map[string]float64 {
	inner, ok := cs[category]
	if !ok {
		return map[string]float64{}
	}
	return inner.Timeline()
}

// Total returns the per-timestamp sum across every category.
func (cs CategorySeries) Total() Series {
	out := New()
	for _, inner := range cs {
		out.Accumulate(inner)
	}
	return out
}

// Window returns the points of every category with start <= ts < end,
// dropping categories left empty.
func (cs CategorySeries) Window(start, end time.Time) CategorySeries {
	out := NewCategories()
	for category, inner := range cs {
		trimmed := inner.Window(start, end)
		if len(trimmed) > 0 {
			out[category] = trimmed
		}
	}
	return out
}

// AllZero reports whether there is data and every value of every category
// is zero.
func (cs CategorySeries) AllZero() bool {
	seen := false
	for _, inner := range cs {
		for _, v := range inner {
			seen = true
			if v != 0 {
				return false
			}
		}
	}
	return seen
}

// Clone returns an independent copy.
func (cs CategorySeries) Clone() CategorySeries {
	out := make(CategorySeries, len(cs))
	for category, inner := range cs {
		out[category] = inner.Clone()
	}
	return out
}
