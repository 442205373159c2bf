package coordinator

import (
	"context"
	"math"
	"time"

	"github.com/jorik41/entsoe-collector/internal/area"
	"github.com/jorik41/entsoe-collector/internal/series"
)

// PriceCoordinator layers day-ahead price statistics on top of the scalar
// coordinator. Prices are only collected per bidding zone, never for the
// Total-Europe aggregate.
type PriceCoordinator struct {
	*Coordinator
	market area.Market
}

// NewPriceCoordinator builds the day-ahead price target for a single
// bidding zone.
func NewPriceCoordinator(cfg Config) *PriceCoordinator {
	h := HorizonDayAhead
	h.Named = false
	q := cfg.Querier
	c := newScalar("prices", cfg, h, func(ctx context.Context, a area.Area, start, end time.Time) (series.Series, error) {
		return q.DayAheadPrices(ctx, a, start, end)
	})

	market, ok := area.MarketFor(cfg.Area.Key)
	if !ok {
		market = area.Market{Key: cfg.Area.Key, Code: cfg.Area.Key, Name: cfg.Area.Meaning, VAT: 0.21, Currency: "EUR"}
	}
	return &PriceCoordinator{Coordinator: c, market: market}
}

// Market returns the retail metadata attached to this zone's prices.
func (p *PriceCoordinator) Market() area.Market { return p.market }

// PercentageOfMax relates the current price to the series maximum on a 0 to
// 100 scale, rounded to one decimal.
func (p *PriceCoordinator) PercentageOfMax() (float64, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	current, ok := p.data.Current(p.nowFn())
	if !ok {
		return 0, false
	}
	max, ok := p.data.Max()
	if !ok || max.Value == 0 {
		return 0, false
	}
	return round1(current.Value / max.Value * 100), true
}

// PercentageOfRange places the current price inside the min-to-max spread
// on a 0 to 100 scale, rounded to one decimal. A flat series reports 0.
func (p *PriceCoordinator) PercentageOfRange() (float64, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	current, ok := p.data.Current(p.nowFn())
	if !ok {
		return 0, false
	}
	min, ok := p.data.Min()
	if !ok {
		return 0, false
	}
	max, _ := p.data.Max()
	spread := max.Value - min.Value
	if spread == 0 {
		return 0, true
	}
	return round1((current.Value - min.Value) / spread * 100), true
}

// MinTime returns the timestamp of the cheapest cached hour.
func (p *PriceCoordinator) MinTime() (time.Time, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	pt, ok := p.data.Min()
	return pt.Time, ok
}

// MaxTime returns the timestamp of the most expensive cached hour.
func (p *PriceCoordinator) MaxTime() (time.Time, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	pt, ok := p.data.Max()
	return pt.Time, ok
}

// Today returns the cached prices falling on the zone's current local day.
func (p *PriceCoordinator) Today() series.Series { return p.localDay(0) }

// Tomorrow returns the cached prices falling on the zone's next local day.
// Empty until the day-ahead auction results are published.
func (p *PriceCoordinator) Tomorrow() series.Series { return p.localDay(1) }

func (p *PriceCoordinator) localDay(offset int) series.Series {
	loc, err := p.area.Location()
	if err != nil {
		loc = time.UTC
	}
	local := p.nowFn().In(loc)
	y, m, d := local.Date()
	dayStart := time.Date(y, m, d+offset, 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.data.Window(dayStart, dayEnd)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
