package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jorik41/entsoe-collector/internal/coordinator"
	"github.com/jorik41/entsoe-collector/internal/series"
)

type targetSummary struct {
	Key         string     `json:"key"`
	Kind        string     `json:"kind"`
	Area        string     `json:"area"`
	Horizon     string     `json:"horizon"`
	Stale       bool       `json:"stale"`
	LastSuccess *time.Time `json:"last_success,omitempty"`
}

func summarize(target coordinator.Target) targetSummary {
	d := target.Describe()
	out := targetSummary{
		Key:     d.Key,
		Kind:    d.Kind,
		Area:    d.Area,
		Horizon: d.Horizon,
		Stale:   target.Stale(),
	}
	if last, ok := target.LastSuccess(); ok {
		utc := last.UTC()
		out.LastSuccess = &utc
	}
	return out
}

type pointJSON struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

func pointOf(pt series.Point, ok bool) *pointJSON {
	if !ok {
		return nil
	}
	return &pointJSON{Time: pt.Time.UTC(), Value: pt.Value}
}

type scalarStats struct {
	Target  targetSummary `json:"target"`
	Current *pointJSON    `json:"current,omitempty"`
	Next    *pointJSON    `json:"next,omitempty"`
	Min     *pointJSON    `json:"min,omitempty"`
	Max     *pointJSON    `json:"max,omitempty"`
	Average *float64      `json:"average,omitempty"`

	ZeroOnlyAreas   []string `json:"zero_only_areas,omitempty"`
	SuppressedAreas []string `json:"suppressed_areas,omitempty"`
}

type marketJSON struct {
	Name     string  `json:"name"`
	VAT      float64 `json:"vat"`
	Currency string  `json:"currency"`
}

type priceStats struct {
	scalarStats
	Market         marketJSON         `json:"market"`
	PercentOfMax   *float64           `json:"percentage_of_max,omitempty"`
	PercentOfRange *float64           `json:"percentage_of_range,omitempty"`
	MinTime        *time.Time         `json:"min_time,omitempty"`
	MaxTime        *time.Time         `json:"max_time,omitempty"`
	Today          map[string]float64 `json:"today"`
	Tomorrow       map[string]float64 `json:"tomorrow"`
}

type categoryStats struct {
	Target     targetSummary      `json:"target"`
	Categories []string           `json:"categories"`
	Current    map[string]float64 `json:"current"`

	ZeroOnlyAreas   []string `json:"zero_only_areas,omitempty"`
	SuppressedAreas []string `json:"suppressed_areas,omitempty"`
}

func (s *Server) listTargets(c *gin.Context) {
	out := make([]targetSummary, 0, len(s.keys))
	for _, key := range s.keys {
		out = append(out, summarize(s.targets[key]))
	}
	c.JSON(http.StatusOK, gin.H{"targets": out})
}

func (s *Server) lookup(c *gin.Context) (coordinator.Target, bool) {
	target, ok := s.targets[c.Param("key")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown target"})
		return nil, false
	}
	return target, true
}

// guardFresh rejects requests for data the collector cannot vouch for,
// distinguishing a target that never refreshed from one whose data aged out.
func guardFresh(c *gin.Context, target coordinator.Target) bool {
	if !target.Stale() {
		return true
	}
	body := gin.H{"error": "data unavailable"}
	if last, ok := target.LastSuccess(); ok {
		body["reason"] = "stale"
		body["last_success"] = last.UTC()
	} else {
		body["reason"] = "never_refreshed"
	}
	c.JSON(http.StatusServiceUnavailable, body)
	return false
}

func (s *Server) getTarget(c *gin.Context) {
	target, ok := s.lookup(c)
	if !ok {
		return
	}
	if !guardFresh(c, target) {
		return
	}

	switch t := target.(type) {
	case *coordinator.PriceCoordinator:
		c.JSON(http.StatusOK, priceDetail(t))
	case *coordinator.CategoryCoordinator:
		c.JSON(http.StatusOK, categoryDetail(t))
	case *coordinator.Coordinator:
		c.JSON(http.StatusOK, scalarDetail(t))
	default:
		c.JSON(http.StatusOK, gin.H{"target": summarize(target)})
	}
}

func scalarDetail(t *coordinator.Coordinator) scalarStats {
	out := scalarStats{
		Target:          summarize(t),
		Current:         pointOf(t.Current()),
		Next:            pointOf(t.Next()),
		Min:             pointOf(t.Min()),
		Max:             pointOf(t.Max()),
		ZeroOnlyAreas:   t.ZeroOnlyAreas(),
		SuppressedAreas: t.SuppressedAreas(),
	}
	if avg, ok := t.Average(); ok {
		out.Average = &avg
	}
	return out
}

func priceDetail(t *coordinator.PriceCoordinator) priceStats {
	m := t.Market()
	out := priceStats{
		scalarStats: scalarDetail(t.Coordinator),
		Market:      marketJSON{Name: m.Name, VAT: m.VAT, Currency: m.Currency},
		Today:       t.Today().Timeline(),
		Tomorrow:    t.Tomorrow().Timeline(),
	}
	if v, ok := t.PercentageOfMax(); ok {
		out.PercentOfMax = &v
	}
	if v, ok := t.PercentageOfRange(); ok {
		out.PercentOfRange = &v
	}
	if ts, ok := t.MinTime(); ok {
		utc := ts.UTC()
		out.MinTime = &utc
	}
	if ts, ok := t.MaxTime(); ok {
		utc := ts.UTC()
		out.MaxTime = &utc
	}
	return out
}

func categoryDetail(t *coordinator.CategoryCoordinator) categoryStats {
	out := categoryStats{
		Target:          summarize(t),
		Categories:      t.Categories(),
		Current:         make(map[string]float64),
		ZeroOnlyAreas:   t.ZeroOnlyAreas(),
		SuppressedAreas: t.SuppressedAreas(),
	}
	for _, category := range out.Categories {
		if pt, ok := t.Current(category); ok {
			out.Current[category] = pt.Value
		}
	}
	return out
}

func (s *Server) getTimeline(c *gin.Context) {
	target, ok := s.lookup(c)
	if !ok {
		return
	}
	if !guardFresh(c, target) {
		return
	}

	category := c.Query("category")
	switch t := target.(type) {
	case *coordinator.CategoryCoordinator:
		if category == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      "category parameter required",
				"categories": t.Categories(),
			})
			return
		}
		if !t.HasCategory(category) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"key":      t.Key(),
			"category": category,
			"points":   t.Timeline(category),
		})
	case *coordinator.PriceCoordinator:
		scalarTimeline(c, t.Coordinator, category)
	case *coordinator.Coordinator:
		scalarTimeline(c, t, category)
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "target has no timeline"})
	}
}

func scalarTimeline(c *gin.Context, t *coordinator.Coordinator, category string) {
	if category != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target has no categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": t.Key(), "points": t.Timeline()})
}

func (s *Server) getCategories(c *gin.Context) {
	target, ok := s.lookup(c)
	if !ok {
		return
	}
	if !guardFresh(c, target) {
		return
	}

	t, ok := target.(*coordinator.CategoryCoordinator)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "target has no categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": t.Key(), "categories": t.Categories()})
}

func (s *Server) health(c *gin.Context) {
	var stale []string
	for _, key := range s.keys {
		if s.targets[key].Stale() {
			stale = append(stale, key)
		}
	}

	status := http.StatusOK
	state := "ok"
	if len(s.keys) > 0 && len(stale) == len(s.keys) {
		status = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(status, gin.H{
		"status":  state,
		"targets": len(s.keys),
		"stale":   stale,
	})
}
