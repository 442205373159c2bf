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

// TotalGenerationCategory is the synthetic category holding the per-hour
// sum across all production types.
const TotalGenerationCategory = "total_generation"

// CategoryCoordinator caches a per-category series such as the generation
// mix or the wind and solar forecast.
type CategoryCoordinator struct {
	base
	fetch       func(ctx context.Context, a area.Area, start, end time.Time) (series.CategorySeries, error)
	injectTotal bool

	data       series.CategorySeries // guarded by mu
	categories []string              // guarded by mu
}

func newCategory(kind string, cfg Config, h Horizon, fetch func(ctx context.Context, a area.Area, start, end time.Time) (series.CategorySeries, error)) *CategoryCoordinator {
	return &CategoryCoordinator{
		base:  newBase(kind, cfg, h),
		fetch: fetch,
		data:  series.NewCategories(),
	}
}

// NewGenerationCoordinator builds the realised generation mix target. The
// per-hour sum over all production types is injected as its own category
// after aggregation.
func NewGenerationCoordinator(cfg Config) *CategoryCoordinator {
	q := cfg.Querier
	c := newCategory("generation", cfg, horizonRealised, func(ctx context.Context, a area.Area, start, end time.Time) (series.CategorySeries, error) {
		return q.GenerationPerType(ctx, a, start, end, horizonRealised.Process)
	})
	c.injectTotal = true
	return c
}

// NewWindSolarCoordinator builds the day-ahead wind and solar forecast
// target.
func NewWindSolarCoordinator(cfg Config) *CategoryCoordinator {
	h := HorizonDayAhead
	h.Named = false
	q := cfg.Querier
	return newCategory("wind_solar", cfg, h, func(ctx context.Context, a area.Area, start, end time.Time) (series.CategorySeries, error) {
		return q.WindSolarForecast(ctx, a, start, end)
	})
}

// Refresh brings the cached categories up to date under the same fallback
// rules as the scalar coordinator.
func (c *CategoryCoordinator) Refresh(ctx context.Context) error {
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

func (c *CategoryCoordinator) refreshSingle(ctx context.Context, start, end time.Time) error {
	fresh, err := c.fetch(ctx, c.area, start, end)
	if err != nil {
		if entsoe.IsNotPublished(err) {
			c.log.WithFields(logrus.Fields{"target": c.key, "area": c.area.Key}).Warn("Dataset not published for the window, storing empty series")
			c.store(series.NewCategories())
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
	if fresh.Len() == 0 {
		c.metrics.refresh(c.key, "empty")
	} else {
		c.metrics.refresh(c.key, "success")
	}
	return nil
}

func (c *CategoryCoordinator) refreshEurope(ctx context.Context, start, end time.Time) error {
	agg := series.NewCategories()
	freshCount, missCount, err := c.aggregate(ctx, func(constituent area.Area) (bool, bool, error) {
		part, err := c.fetch(ctx, constituent, start, end)
		if err != nil {
			return false, false, err
		}
		if part.Len() == 0 {
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

func (c *CategoryCoordinator) cachedCovers(start, end time.Time) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	stamps := c.data.Timestamps()
	if len(stamps) == 0 {
		return false
	}
	first := series.Point{Time: stamps[0]}
	last := series.Point{Time: stamps[len(stamps)-1]}
	return covers(first, last, start, end)
}

func (c *CategoryCoordinator) hasRefreshed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.lastSuccess.IsZero()
}

// store installs a freshly aggregated result, injecting the total category
// when configured, and rebuilds the available category list.
func (c *CategoryCoordinator) store(fresh series.CategorySeries) {
	if c.injectTotal {
		for ts, value := range fresh.Total() {
			fresh.Set(TotalGenerationCategory, ts, value)
		}
	}
	now := c.nowFn()
	c.mu.Lock()
	c.data = fresh
	c.categories = fresh.Categories()
	c.lastSuccess = now
	c.mu.Unlock()
	c.metrics.success(c.key, now)
}

// Categories lists the categories available after the last refresh,
// including the injected total when present.
func (c *CategoryCoordinator) Categories() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.categories...)
}

// HasCategory reports whether the cached data carries the category.
func (c *CategoryCoordinator) HasCategory(category string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.data[category]
	return ok
}

// Current returns the category's value at the timestamp covering the
// reference clock. The timestamp is chosen over all categories combined, so
// a category without a value at that instant reports none.
func (c *CategoryCoordinator) Current(category string) (series.Point, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Current(category, c.nowFn())
}

// Next returns the category's value at the first timestamp after the
// current one.
func (c *CategoryCoordinator) Next(category string) (series.Point, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Next(category, c.nowFn())
}

// Timeline renders one category keyed by RFC 3339 timestamp, skipping
// timestamps the category has no value for.
func (c *CategoryCoordinator) Timeline(category string) map[string]float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Timeline(category)
}

// Snapshot returns an independent copy of the cached categories.
func (c *CategoryCoordinator) Snapshot() series.CategorySeries {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data.Clone()
}
