package coordinator

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jorik41/entsoe-collector/internal/area"
	"github.com/jorik41/entsoe-collector/internal/entsoe"
	"github.com/jorik41/entsoe-collector/internal/series"
)

// Coordinator caches a single-valued series such as day-ahead prices or a
// load forecast.
type Coordinator struct {
	base
	fetch func(ctx context.Context, a area.Area, start, end time.Time) (series.Series, error)

	data series.Series // guarded by mu
}

func newScalar(kind string, cfg Config, h Horizon, fetch func(ctx context.Context, a area.Area, start, end time.Time) (series.Series, error)) *Coordinator {
	return &Coordinator{
		base:  newBase(kind, cfg, h),
		fetch: fetch,
		data:  series.New(),
	}
}

// NewLoadCoordinator builds a total load forecast target on the given
// horizon.
func NewLoadCoordinator(cfg Config, h Horizon) *Coordinator {
	q := cfg.Querier
	return newScalar("load", cfg, h, func(ctx context.Context, a area.Area, start, end time.Time) (series.Series, error) {
		return q.TotalLoadForecast(ctx, a, start, end, h.Process)
	})
}

// NewGenerationForecastCoordinator builds the aggregated day-ahead
// generation forecast target.
func NewGenerationForecastCoordinator(cfg Config) *Coordinator {
	h := HorizonDayAhead
	h.Named = false
	q := cfg.Querier
	return newScalar("generation_forecast", cfg, h, func(ctx context.Context, a area.Area, start, end time.Time) (series.Series, error) {
		return q.GenerationForecast(ctx, a, start, end)
	})
}

// Refresh brings the cached series up to date. Transient failures keep the
// previous data once an initial refresh has succeeded; unauthorized and
// first-refresh failures surface as errors.
func (c *Coordinator) Refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	start, end := c.window()

	if c.cachedCovers(start, end) {
		c.touch()
		c.metrics.refresh(c.key, "cached")
		c.log.WithField("target", c.key).Debug("Cached series still covers the window, skipping fetch")
		return nil
	}

	if c.area.IsTotalEurope() {
		return c.refreshEurope(ctx, start, end)
	}
	return c.refreshSingle(ctx, start, end)
}

func (c *Coordinator) refreshSingle(ctx context.Context, start, end time.Time) error {
	fresh, err := c.fetch(ctx, c.area, start, end)
	if err != nil {
		if entsoe.IsNotPublished(err) {
			c.log.WithFields(logrus.Fields{"target": c.key, "area": c.area.Key}).Warn("Dataset not published for the window, storing empty series")
			c.store(series.New())
			c.metrics.refresh(c.key, "empty")
			return nil
		}
		if errors.Is(err, entsoe.ErrUnauthorized) || ctx.Err() != nil {
			return c.refreshError(err)
		}
		if c.hasRefreshed() {
			c.metrics.refresh(c.key, "fallback")
			c.log.WithField("target", c.key).WithError(err).Warn("Refresh failed, keeping cached series")
			return nil
		}
		return c.refreshError(err)
	}

	c.store(fresh)
	if len(fresh) == 0 {
		c.metrics.refresh(c.key, "empty")
	} else {
		c.metrics.refresh(c.key, "success")
	}
	return nil
}

func (c *Coordinator) refreshEurope(ctx context.Context, start, end time.Time) error {
	agg := series.New()
	freshCount, missCount, err := c.aggregate(ctx, func(constituent area.Area) (bool, bool, error) {
		part, err := c.fetch(ctx, constituent, start, end)
		if err != nil {
			return false, false, err
		}
		if len(part) == 0 {
			return false, false, nil
		}
		agg.Accumulate(part)
		return true, part.AllZero(), nil
	})
	if err != nil {
		return c.refreshError(err)
	}

	if freshCount == 0 {
		if c.hasRefreshed() {
			c.metrics.refresh(c.key, "fallback")
			c.log.WithField("target", c.key).Warn("No constituent area returned data, keeping cached sum")
			return nil
		}
		return c.refreshError(ErrNoFreshData)
	}

	c.store(agg)
	if missCount > 0 {
		c.metrics.refresh(c.key, "partial")
		c.log.WithFields(logrus.Fields{
			"target":  c.key,
			"fresh":   freshCount,
			"missing": missCount,
		}).Warn("Aggregate refresh completed with missing areas")
	} else {
		c.metrics.refresh(c.key, "success")
	}
	return nil
}

func (c *Coordinator) cachedCovers(start, end time.Time) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	first, ok := c.data.First()
	if !ok {
		return false
	}
	last, _ := c.data.Last()
	return covers(first, last, start, end)
}

func (c *Coordinator) hasRefreshed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.lastSuccess.IsZero()
}

func (c *Coordinator) store(fresh series.Series) {
	now := c.nowFn()
	c.mu.Lock()
	c.data = fresh
	c.lastSuccess = now
	c.mu.Unlock()
	c.metrics.success(c.key, now)
}

// Snapshot returns an independent copy of the cached series.
func (c *Coordinator) Snapshot() series.Series {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Clone()
}

// Current returns the value whose hour covers the reference clock.
func (c *Coordinator) Current() (series.Point, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Current(c.nowFn())
}

// Next returns the first value strictly after the current hour.
func (c *Coordinator) Next() (series.Point, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Next(c.nowFn())
}

func (c *Coordinator) Min() (series.Point, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Min()
}

func (c *Coordinator) Max() (series.Point, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Max()
}

func (c *Coordinator) Average() (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Average()
}

// Timeline renders the cached series keyed by RFC 3339 timestamp.
func (c *Coordinator) Timeline() map[string]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Timeline()
}
