// Package series holds the in-memory hourly time series the collector
// builds from transparency-platform documents, together with the derived
// statistics exposed over the API.
package series

import (
	"sort"
	"time"
)

// Series maps period starts to values. Keys are normalized to UTC so that
// timestamps produced by parsing and by window arithmetic compare equal.
type Series map[time.Time]float64

// Point is a single observation.
type Point struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// New returns an empty series.
func New() Series {
	return make(Series)
}

// Set stores value at ts.
func (s Series) Set(ts time.Time, value float64) {
	s[ts.UTC()] = value
}

// Get returns the value stored at ts.
func (s Series) Get(ts time.Time) (float64, bool) {
	v, ok := s[ts.UTC()]
	return v, ok
}

// Has reports whether a value is stored at ts.
func (s Series) Has(ts time.Time) bool {
	_, ok := s[ts.UTC()]
	return ok
}

// Timestamps returns every period start in chronological order.
func (s Series) Timestamps() []time.Time {
	out := make([]time.Time, 0, len(s))
	for ts := range s {
		out = append(out, ts)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// First returns the earliest point.
func (s Series) First() (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	ts := s.Timestamps()[0]
	return Point{Time: ts, Value: s[ts]}, true
}

// Last returns the latest point.
func (s Series) Last() (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	all := s.Timestamps()
	ts := all[len(all)-1]
	return Point{Time: ts, Value: s[ts]}, true
}

// Clone returns an independent copy of the series.
func (s Series) Clone() Series {
	out := make(Series, len(s))
	for ts, v := range s {
		out[ts] = v
	}
	return out
}

// Merge copies every point of other into s, overwriting collisions.
func (s Series) Merge(other Series) {
	for ts, v := range other {
		s[ts.UTC()] = v
	}
}

// Accumulate adds other into s, summing values where timestamps collide.
func (s Series) Accumulate(other Series) {
	for ts, v := range other {
		s[ts.UTC()] += v
	}
}

// Window returns the points with start <= ts < end.
func (s Series) Window(start, end time.Time) Series {
	out := make(Series)
	for ts, v := range s {
		if !ts.Before(start) && ts.Before(end) {
			out[ts] = v
		}
	}
	return out
}

// AllZero reports whether the series is non-empty and every value is zero.
func (s Series) AllZero() bool {
	if len(s) == 0 {
		return false
	}
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}
