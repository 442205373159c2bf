package coordinator

import (
	"sort"
	"time"
)

// aggregateHealth tracks per-area miss counters and suppression windows for
// a Total-Europe target. The owning coordinator serializes access.
type aggregateHealth struct {
	states map[string]*areaHealth
}

type areaHealth struct {
	misses          int
	suppressedUntil time.Time
}

func newAggregateHealth() *aggregateHealth {
	return &aggregateHealth{states: make(map[string]*areaHealth)}
}

func (h *aggregateHealth) suppressed(key string, now time.Time) bool {
	s := h.states[key]
	return s != nil && now.Before(s.suppressedUntil)
}

// miss records a failed or empty constituent query. When the counter reaches
// the threshold the area enters a cooldown window and the counter resets;
// the returned bool reports that transition.
func (h *aggregateHealth) miss(key string, now time.Time, threshold int, cooldown time.Duration) (time.Time, bool) {
	s := h.states[key]
	if s == nil {
		s = &areaHealth{}
		h.states[key] = s
	}
	s.misses++
	if s.misses < threshold {
		return time.Time{}, false
	}
	s.misses = 0
	s.suppressedUntil = now.Add(cooldown)
	return s.suppressedUntil, true
}

// clear drops all failure state for an area, reporting whether the area had
// ever been suppressed. Plain miss counters are discarded silently.
func (h *aggregateHealth) clear(key string) bool {
	s := h.states[key]
	if s == nil {
		return false
	}
	delete(h.states, key)
	return !s.suppressedUntil.IsZero()
}

func (h *aggregateHealth) countSuppressed(now time.Time) int {
	var n int
	for _, s := range h.states {
		if now.Before(s.suppressedUntil) {
			n++
		}
	}
	return n
}

func (h *aggregateHealth) suppressedKeys(now time.Time) []string {
	var keys []string
	for key, s := range h.states {
		if now.Before(s.suppressedUntil) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}
