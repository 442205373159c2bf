package entsoe

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jorik41/entsoe-collector/internal/series"
)

// timestampLayout is the minute-precision UTC format used inside market
// documents. The literal Z carries no offset, so Parse yields UTC.
const timestampLayout = "2006-01-02T15:04Z"

const (
	resolutionHourly  = "PT60M"
	resolutionQuarter = "PT15M"
)

// marketDocument is the namespace-oblivious shape shared by every document
// type we consume. The root element name differs per type and is ignored.
type marketDocument struct {
	TimeSeries []timeSeriesNode `xml:"TimeSeries"`
}

type timeSeriesNode struct {
	PSRType string       `xml:"MktPSRType>psrType"`
	Periods []periodNode `xml:"Period"`
}

type periodNode struct {
	Start      string      `xml:"timeInterval>start"`
	End        string      `xml:"timeInterval>end"`
	Resolution string      `xml:"resolution"`
	Points     []pointNode `xml:"Point"`
}

// pointNode keeps values as raw text so a single bad point is skipped
// instead of failing the whole document decode.
type pointNode struct {
	Position string `xml:"position"`
	Price    string `xml:"price.amount"`
	Quantity string `xml:"quantity"`
}

// Parser turns market documents into hourly series.
type Parser struct {
	log logrus.FieldLogger
}

// NewParser returns a parser logging skipped periods through log.
func NewParser(log logrus.FieldLogger) *Parser {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Parser{log: log}
}

// Prices parses a day-ahead price document. Values are rounded to two
// decimals. A period starting at an hour that is already populated is
// skipped entirely: republished periods of another resolution would
// otherwise clobber the first publication.
func (p *Parser) Prices(doc []byte) (series.Series, error) {
	md, err := decodeDocument(doc)
	if err != nil {
		return nil, err
	}

	out := series.New()
	for _, ts := range md.TimeSeries {
		for _, period := range ts.Periods {
			resolution, ok := p.resolution(period)
			if !ok {
				continue
			}
			start, end, ok := p.bounds(period)
			if !ok {
				continue
			}
			if out.Has(start) {
				p.log.WithField("start", start).Debug("Duplicate period start, skipping period")
				continue
			}

			if resolution == resolutionHourly {
				out.Merge(p.hourlyPoints(period, start, priceOf, true))
			} else {
				out.Merge(p.quarterPoints(period, start, priceOf, true))
			}
			fillForward(out, start, end)
		}
	}
	return out, nil
}

// Quantities parses a document carrying a single unlabelled quantity per
// point (total load, generation forecast). Overlapping publications are
// summed per timestamp.
func (p *Parser) Quantities(doc []byte) (series.Series, error) {
	md, err := decodeDocument(doc)
	if err != nil {
		return nil, err
	}

	out := series.New()
	for _, ts := range md.TimeSeries {
		for _, period := range ts.Periods {
			out.Accumulate(p.quantityPeriod(period))
		}
	}
	return out, nil
}

// QuantitiesByCategory parses a document whose series carry a production
// source code (generation per type, wind/solar forecast). Values are
// summed per timestamp and category; unmapped codes land in "other".
func (p *Parser) QuantitiesByCategory(doc []byte) (series.CategorySeries, error) {
	md, err := decodeDocument(doc)
	if err != nil {
		return nil, err
	}

	out := series.NewCategories()
	for _, ts := range md.TimeSeries {
		category := CategoryFor(ts.PSRType)
		for _, period := range ts.Periods {
			points := p.quantityPeriod(period)
			if len(points) == 0 {
				continue
			}
			out.Accumulate(series.CategorySeries{category: points})
		}
	}
	return out, nil
}

// quantityPeriod extracts one period's unrounded values and fills gaps up
// to the period end.
func (p *Parser) quantityPeriod(period periodNode) series.Series {
	resolution, ok := p.resolution(period)
	if !ok {
		return series.New()
	}
	start, end, ok := p.bounds(period)
	if !ok {
		return series.New()
	}

	var points series.Series
	if resolution == resolutionHourly {
		points = p.hourlyPoints(period, start, quantityOf, false)
	} else {
		points = p.quarterPoints(period, start, quantityOf, false)
	}
	fillForward(points, start, end)
	return points
}

func (p *Parser) resolution(period periodNode) (string, bool) {
	switch period.Resolution {
	case "PT60M", "PT1H":
		return resolutionHourly, true
	case "PT15M":
		return resolutionQuarter, true
	}
	p.log.WithField("resolution", period.Resolution).Debug("Unsupported period resolution, skipping period")
	return "", false
}

// bounds parses the period interval, truncating the start to the hour.
func (p *Parser) bounds(period periodNode) (time.Time, time.Time, bool) {
	start, err := time.Parse(timestampLayout, strings.TrimSpace(period.Start))
	if err != nil {
		p.log.WithField("start", period.Start).Debug("Malformed period start, skipping period")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(timestampLayout, strings.TrimSpace(period.End))
	if err != nil {
		p.log.WithField("end", period.End).Debug("Malformed period end, skipping period")
		return time.Time{}, time.Time{}, false
	}
	return start.Truncate(time.Hour), end, true
}

// hourlyPoints maps 1-based hourly positions onto timestamps.
func (p *Parser) hourlyPoints(period periodNode, start time.Time, value func(pointNode) string, round bool) series.Series {
	out := series.New()
	for _, pt := range period.Points {
		pos, v, ok := pointValue(pt, value)
		if !ok {
			continue
		}
		if round {
			v = round2(v)
		}
		out.Set(start.Add(time.Duration(pos-1)*time.Hour), v)
	}
	return out
}

// quarterPoints averages 1-based quarter-hour positions into hourly
// values. Missing quarters repeat the nearest earlier known value, seeded
// with the first value present so leading gaps are covered too. Hours are
// emitted up to ceil(maxPosition/4).
func (p *Parser) quarterPoints(period periodNode, start time.Time, value func(pointNode) string, round bool) series.Series {
	positions := make(map[int]float64)
	minPos, maxPos := 0, 0
	for _, pt := range period.Points {
		pos, v, ok := pointValue(pt, value)
		if !ok {
			continue
		}
		positions[pos] = v
		if len(positions) == 1 || pos < minPos {
			minPos = pos
		}
		if pos > maxPos {
			maxPos = pos
		}
	}
	if len(positions) == 0 {
		return series.New()
	}

	out := series.New()
	lastHour := (maxPos + 3) / 4
	carry := positions[minPos]
	for hour := 0; hour < lastHour; hour++ {
		sum := 0.0
		for idx := hour*4 + 1; idx <= hour*4+4; idx++ {
			if v, ok := positions[idx]; ok {
				carry = v
			}
			sum += carry
		}
		avg := sum / 4
		if round {
			avg = round2(avg)
		}
		out.Set(start.Add(time.Duration(hour)*time.Hour), avg)
	}
	return out
}

// fillForward populates every missing hour in [start, end) with the most
// recent known value. Hours before the first known value stay empty.
func fillForward(s series.Series, start, end time.Time) {
	var last float64
	have := false
	for t := start; t.Before(end); t = t.Add(time.Hour) {
		if v, ok := s.Get(t); ok {
			last, have = v, true
		} else if have {
			s.Set(t, last)
		}
	}
}

func decodeDocument(doc []byte) (*marketDocument, error) {
	var md marketDocument
	if err := xml.Unmarshal(doc, &md); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &md, nil
}

func pointValue(pt pointNode, value func(pointNode) string) (int, float64, bool) {
	pos, err := strconv.Atoi(strings.TrimSpace(pt.Position))
	if err != nil {
		return 0, 0, false
	}
	raw := strings.TrimSpace(value(pt))
	if raw == "" {
		return 0, 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, 0, false
	}
	return pos, v, true
}

func priceOf(pt pointNode) string    { return pt.Price }
func quantityOf(pt pointNode) string { return pt.Quantity }

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
