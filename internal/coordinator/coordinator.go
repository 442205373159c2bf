// Package coordinator keeps per-target series caches fresh. A target is one
// metric for one area on one forecast horizon; the synthetic TOTAL_EUROPE
// area aggregates every market with per-area failure suppression.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jorik41/entsoe-collector/internal/area"
	"github.com/jorik41/entsoe-collector/internal/entsoe"
	"github.com/jorik41/entsoe-collector/internal/series"
)

//go:generate mockgen -source=coordinator.go -destination=mocks/querier_mock.go -package=mocks

// A target reports "data unavailable" once its last success is older than
// stalenessMultiplier refresh intervals.
const stalenessMultiplier = 3

const day = 24 * time.Hour

// ErrNoFreshData is returned when an aggregate refresh obtains nothing from
// any constituent area and there is no cache to fall back to.
var ErrNoFreshData = errors.New("no constituent area returned data")

// Querier is the slice of the platform client the coordinators consume.
type Querier interface {
	DayAheadPrices(ctx context.Context, a area.Area, start, end time.Time) (series.Series, error)
	GenerationPerType(ctx context.Context, a area.Area, start, end time.Time, process string) (series.CategorySeries, error)
	TotalLoadForecast(ctx context.Context, a area.Area, start, end time.Time, process string) (series.Series, error)
	GenerationForecast(ctx context.Context, a area.Area, start, end time.Time) (series.Series, error)
	WindSolarForecast(ctx context.Context, a area.Area, start, end time.Time) (series.CategorySeries, error)
}

var _ Querier = (*entsoe.Client)(nil)

// Target is the surface the scheduler and the HTTP API work against.
type Target interface {
	Key() string
	Describe() Description
	Refresh(ctx context.Context) error
	Stale() bool
	LastSuccess() (time.Time, bool)
}

// Description identifies a target to consumers.
type Description struct {
	Key      string        `json:"key"`
	Kind     string        `json:"kind"`
	Area     string        `json:"area"`
	Horizon  string        `json:"horizon"`
	Interval time.Duration `json:"-"`
}

// Config carries the shared dependencies of every coordinator.
type Config struct {
	Querier Querier
	Area    area.Area
	Logger  logrus.FieldLogger
	Metrics *Metrics

	// Now overrides the reference clock, mainly for tests.
	Now func() time.Time
}

// base holds the bookkeeping common to scalar and category coordinators.
type base struct {
	key     string
	kind    string
	area    area.Area
	horizon Horizon
	log     logrus.FieldLogger
	metrics *Metrics
	nowFn   func() time.Time

	mu          sync.RWMutex
	lastSuccess time.Time
	zeroOnly    []string
	health      *aggregateHealth

	refreshMu sync.Mutex
}

func newBase(kind string, cfg Config, h Horizon) base {
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	nowFn := cfg.Now
	if nowFn == nil {
		nowFn = time.Now
	}

	var health *aggregateHealth
	if cfg.Area.IsTotalEurope() {
		health = newAggregateHealth()
	}

	return base{
		key:     targetKey(kind, h, cfg.Area),
		kind:    kind,
		area:    cfg.Area,
		horizon: h,
		log:     log,
		metrics: cfg.Metrics,
		nowFn:   nowFn,
		health:  health,
	}
}

// targetKey builds the stable identifier a target is addressed by. The
// horizon is omitted for single-horizon kinds.
func targetKey(kind string, h Horizon, a area.Area) string {
	key := kind
	if h.Named {
		key += "_" + h.Name
	}
	return key + "_" + strings.ToLower(a.Key)
}

func (b *base) Key() string { return b.key }

func (b *base) Describe() Description {
	return Description{
		Key:      b.key,
		Kind:     b.kind,
		Area:     b.area.Key,
		Horizon:  b.horizon.Name,
		Interval: b.horizon.Interval,
	}
}

// Interval is the refresh cadence the scheduler should run this target at.
func (b *base) Interval() time.Duration { return b.horizon.Interval }

// Stale reports whether consumers must treat the target as unavailable:
// never refreshed, or last refreshed too long ago.
func (b *base) Stale() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.lastSuccess.IsZero() {
		return true
	}
	return b.nowFn().Sub(b.lastSuccess) > stalenessMultiplier*b.horizon.Interval
}

// LastSuccess returns the time of the last successful refresh, false if
// none has completed yet.
func (b *base) LastSuccess() (time.Time, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastSuccess, !b.lastSuccess.IsZero()
}

// ZeroOnlyAreas lists constituents whose last contribution was entirely
// zero-valued. Empty for single-area targets.
func (b *base) ZeroOnlyAreas() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]string(nil), b.zeroOnly...)
}

// SuppressedAreas lists constituents currently inside a suppression window.
func (b *base) SuppressedAreas() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.health == nil {
		return nil
	}
	return b.health.suppressedKeys(b.nowFn())
}

// window computes the refresh request window [now-1d, now+lookAhead),
// hour-aligned.
func (b *base) window() (time.Time, time.Time) {
	now := b.nowFn().UTC().Truncate(time.Hour)
	return now.Add(-day), now.Add(b.horizon.LookAhead)
}

// covers reports whether cached bounds span the window with an hour of
// slack at the end.
func covers(first, last series.Point, start, end time.Time) bool {
	return !first.Time.After(start) && !last.Time.Before(end.Add(-time.Hour))
}

func (b *base) touch() {
	now := b.nowFn()
	b.mu.Lock()
	b.lastSuccess = now
	b.mu.Unlock()
	b.metrics.success(b.key, now)
}

func (b *base) setZeroOnly(areas []string) {
	b.mu.Lock()
	b.zeroOnly = areas
	b.mu.Unlock()
}

// aggregate walks every deduplicated constituent market, skipping areas
// under suppression and maintaining miss counters, and calls visit for the
// rest. visit reports whether the area contributed data and whether that
// data was entirely zero. Unauthorized and context errors abort the walk.
func (b *base) aggregate(ctx context.Context, visit func(area.Area) (bool, bool, error)) (int, int, error) {
	now := b.nowFn()
	var freshCount, missCount int
	var zeroOnly []string

	seen := make(map[string]struct{})
	for _, m := range area.Markets() {
		if m.Key == area.TotalEuropeKey {
			continue
		}
		constituent, err := area.Resolve(m.Code)
		if err != nil {
			continue
		}
		if _, dup := seen[constituent.Code]; dup {
			continue
		}
		seen[constituent.Code] = struct{}{}

		if b.isSuppressed(m.Key, now) {
			b.log.WithFields(logrus.Fields{"target": b.key, "area": m.Key}).Debug("Area suppressed, skipping")
			continue
		}

		contributed, zero, err := visit(constituent)
		if err != nil {
			if errors.Is(err, entsoe.ErrUnauthorized) || ctx.Err() != nil {
				return 0, 0, err
			}
			if !entsoe.IsNotPublished(err) {
				b.log.WithFields(logrus.Fields{"target": b.key, "area": m.Key}).WithError(err).Warn("Constituent area query failed")
			}
			b.noteMiss(m.Key, now)
			missCount++
			continue
		}
		if !contributed {
			b.noteMiss(m.Key, now)
			missCount++
			continue
		}

		if b.clearHealth(m.Key) {
			b.log.WithFields(logrus.Fields{"target": b.key, "area": m.Key}).Info("Area recovered, suppression state cleared")
		}
		if zero {
			zeroOnly = append(zeroOnly, m.Key)
		}
		freshCount++
	}

	if len(zeroOnly) > 0 {
		b.log.WithFields(logrus.Fields{
			"target": b.key,
			"areas":  strings.Join(zeroOnly, ","),
		}).Warn("Areas returned only zero values, summing anyway")
	}
	b.setZeroOnly(zeroOnly)
	b.metrics.suppressedAreas(b.key, b.countSuppressed(now))

	return freshCount, missCount, nil
}

func (b *base) isSuppressed(key string, now time.Time) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.health.suppressed(key, now)
}

func (b *base) noteMiss(key string, now time.Time) {
	b.mu.Lock()
	until, suppressed := b.health.miss(key, now, b.horizon.MissThreshold, b.horizon.Cooldown)
	b.mu.Unlock()
	if suppressed {
		b.log.WithFields(logrus.Fields{
			"target": b.key,
			"area":   key,
			"until":  until.UTC().Format(time.RFC3339),
		}).Warn("Suppressing area after repeated misses")
	}
}

func (b *base) clearHealth(key string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.health.clear(key)
}

func (b *base) countSuppressed(now time.Time) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.health.countSuppressed(now)
}

// refreshError wraps fatal refresh failures with the target key.
func (b *base) refreshError(err error) error {
	b.metrics.refresh(b.key, "error")
	return fmt.Errorf("refresh %s: %w", b.key, err)
}
