package entsoe

import (
	"context"
	"net/url"
	"time"

	"github.com/jorik41/entsoe-collector/internal/area"
	"github.com/jorik41/entsoe-collector/internal/series"
)

// DayAheadPrices returns hourly day-ahead prices for the area over
// [start, end). Later publications for the same hour win.
func (c *Client) DayAheadPrices(ctx context.Context, a area.Area, start, end time.Time) (series.Series, error) {
	docs, err := c.fetch(ctx, url.Values{
		"documentType": {DocumentTypePrices},
		"in_Domain":    {a.Code},
		"out_Domain":   {a.Code},
	}, start, end)
	if err != nil {
		return nil, err
	}

	out := series.New()
	for _, doc := range docs {
		prices, err := c.parser.Prices(doc)
		if err != nil {
			c.metrics.parseFailure()
			return nil, err
		}
		out.Merge(prices)
	}
	return out, nil
}

// GenerationPerType returns generation split by technology. The process
// argument accepts platform codes and human synonyms ("realised",
// "day_ahead", "intraday"); values for colliding timestamps are summed.
func (c *Client) GenerationPerType(ctx context.Context, a area.Area, start, end time.Time, process string) (series.CategorySeries, error) {
	docs, err := c.fetch(ctx, url.Values{
		"documentType": {DocumentTypeGenerationPerType},
		"processType":  {NormalizeProcessType(process)},
		"in_Domain":    {a.Code},
		"out_Domain":   {a.Code},
	}, start, end)
	if err != nil {
		return nil, err
	}
	return c.categoryDocuments(docs)
}

// TotalLoadForecast returns the total load forecast for the given process
// type (day, week, month or year ahead). Overlapping publications are
// summed per timestamp.
func (c *Client) TotalLoadForecast(ctx context.Context, a area.Area, start, end time.Time, process string) (series.Series, error) {
	docs, err := c.fetch(ctx, url.Values{
		"documentType":          {DocumentTypeTotalLoad},
		"processType":           {process},
		"outBiddingZone_Domain": {a.Code},
	}, start, end)
	if err != nil {
		return nil, err
	}
	return c.quantityDocuments(docs)
}

// GenerationForecast returns the day-ahead forecast of total scheduled
// generation.
func (c *Client) GenerationForecast(ctx context.Context, a area.Area, start, end time.Time) (series.Series, error) {
	docs, err := c.fetch(ctx, url.Values{
		"documentType": {DocumentTypeGenerationForecast},
		"processType":  {ProcessTypeDayAhead},
		"in_Domain":    {a.Code},
		"out_Domain":   {a.Code},
	}, start, end)
	if err != nil {
		return nil, err
	}
	return c.quantityDocuments(docs)
}

// WindSolarForecast returns the day-ahead wind and solar forecast split by
// technology.
func (c *Client) WindSolarForecast(ctx context.Context, a area.Area, start, end time.Time) (series.CategorySeries, error) {
	docs, err := c.fetch(ctx, url.Values{
		"documentType": {DocumentTypeWindSolarForecast},
		"processType":  {ProcessTypeDayAhead},
		"in_Domain":    {a.Code},
		"out_Domain":   {a.Code},
	}, start, end)
	if err != nil {
		return nil, err
	}
	return c.categoryDocuments(docs)
}

func (c *Client) quantityDocuments(docs [][]byte) (series.Series, error) {
	out := series.New()
	for _, doc := range docs {
		parsed, err := c.parser.Quantities(doc)
		if err != nil {
			c.metrics.parseFailure()
			return nil, err
		}
		out.Accumulate(parsed)
	}
	return out, nil
}

func (c *Client) categoryDocuments(docs [][]byte) (series.CategorySeries, error) {
	out := series.NewCategories()
	for _, doc := range docs {
		parsed, err := c.parser.QuantitiesByCategory(doc)
		if err != nil {
			c.metrics.parseFailure()
			return nil, err
		}
		out.Accumulate(parsed)
	}
	return out, nil
}
