package entsoe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorik41/entsoe-collector/internal/series"
)

const hourlyPriceDoc = `<?xml version="1.0" encoding="UTF-8"?>
<Publication_MarketDocument xmlns="urn:iec62325.351:tc57wg16:451-3:publicationdocument:7:3">
  <TimeSeries>
    <Period>
      <timeInterval>
        <start>2024-10-01T22:00Z</start>
        <end>2024-10-02T01:00Z</end>
      </timeInterval>
      <resolution>PT60M</resolution>
      <Point><position>1</position><price.amount>50.5</price.amount></Point>
      <Point><position>2</position><price.amount>48.337</price.amount></Point>
      <Point><position>3</position><price.amount>52</price.amount></Point>
    </Period>
  </TimeSeries>
</Publication_MarketDocument>`

const quarterHourPriceDoc = `<?xml version="1.0" encoding="UTF-8"?>
<Publication_MarketDocument xmlns="urn:iec62325.351:tc57wg16:451-3:publicationdocument:7:3">
  <TimeSeries>
    <Period>
      <timeInterval>
        <start>2024-10-01T22:00Z</start>
        <end>2024-10-02T00:00Z</end>
      </timeInterval>
      <resolution>PT15M</resolution>
      <Point><position>1</position><price.amount>40</price.amount></Point>
      <Point><position>3</position><price.amount>28</price.amount></Point>
      <Point><position>5</position><price.amount>10</price.amount></Point>
      <Point><position>6</position><price.amount>20</price.amount></Point>
      <Point><position>7</position><price.amount>30</price.amount></Point>
      <Point><position>8</position><price.amount>40</price.amount></Point>
    </Period>
  </TimeSeries>
</Publication_MarketDocument>`

const duplicateStartPriceDoc = `<?xml version="1.0" encoding="UTF-8"?>
<Publication_MarketDocument xmlns="urn:iec62325.351:tc57wg16:451-3:publicationdocument:7:3">
  <TimeSeries>
    <Period>
      <timeInterval>
        <start>2024-10-01T22:00Z</start>
        <end>2024-10-01T23:00Z</end>
      </timeInterval>
      <resolution>PT60M</resolution>
      <Point><position>1</position><price.amount>100</price.amount></Point>
    </Period>
  </TimeSeries>
  <TimeSeries>
    <Period>
      <timeInterval>
        <start>2024-10-01T22:00Z</start>
        <end>2024-10-01T23:00Z</end>
      </timeInterval>
      <resolution>PT15M</resolution>
      <Point><position>1</position><price.amount>999</price.amount></Point>
    </Period>
    <Period>
      <timeInterval>
        <start>2024-10-01T23:00Z</start>
        <end>2024-10-02T00:00Z</end>
      </timeInterval>
      <resolution>PT15M</resolution>
      <Point><position>1</position><price.amount>20</price.amount></Point>
    </Period>
  </TimeSeries>
</Publication_MarketDocument>`

const gapPriceDoc = `<?xml version="1.0" encoding="UTF-8"?>
<Publication_MarketDocument xmlns="urn:iec62325.351:tc57wg16:451-3:publicationdocument:7:3">
  <TimeSeries>
    <Period>
      <timeInterval>
        <start>2024-10-01T22:00Z</start>
        <end>2024-10-02T02:00Z</end>
      </timeInterval>
      <resolution>PT60M</resolution>
      <Point><position>1</position><price.amount>10</price.amount></Point>
      <Point><position>3</position><price.amount>30</price.amount></Point>
    </Period>
  </TimeSeries>
</Publication_MarketDocument>`

const skewedStartPriceDoc = `<?xml version="1.0" encoding="UTF-8"?>
<Publication_MarketDocument>
  <TimeSeries>
    <Period>
      <timeInterval>
        <start>2024-10-01T22:15Z</start>
        <end>2024-10-01T23:00Z</end>
      </timeInterval>
      <resolution>PT60M</resolution>
      <Point><position>1</position><price.amount>75</price.amount></Point>
    </Period>
  </TimeSeries>
</Publication_MarketDocument>`

const partlyBrokenPriceDoc = `<?xml version="1.0" encoding="UTF-8"?>
<Publication_MarketDocument>
  <TimeSeries>
    <Period>
      <timeInterval>
        <start>not-a-timestamp</start>
        <end>2024-10-01T23:00Z</end>
      </timeInterval>
      <resolution>PT60M</resolution>
      <Point><position>1</position><price.amount>1</price.amount></Point>
    </Period>
    <Period>
      <timeInterval>
        <start>2024-10-01T20:00Z</start>
        <end>2024-10-01T22:00Z</end>
      </timeInterval>
      <resolution>PT30M</resolution>
      <Point><position>1</position><price.amount>2</price.amount></Point>
    </Period>
    <Period>
      <timeInterval>
        <start>2024-10-01T22:00Z</start>
        <end>2024-10-01T23:00Z</end>
      </timeInterval>
      <resolution>PT60M</resolution>
      <Point><position>one</position><price.amount>3</price.amount></Point>
      <Point><position>2</position><price.amount></price.amount></Point>
      <Point><position>1</position><price.amount>42</price.amount></Point>
    </Period>
  </TimeSeries>
</Publication_MarketDocument>`

const totalLoadDoc = `<?xml version="1.0" encoding="UTF-8"?>
<GL_MarketDocument xmlns="urn:iec62325.351:tc57wg16:451-6:generationloaddocument:3:0">
  <TimeSeries>
    <Period>
      <timeInterval>
        <start>2024-10-01T00:00Z</start>
        <end>2024-10-01T04:00Z</end>
      </timeInterval>
      <resolution>PT60M</resolution>
      <Point><position>1</position><quantity>1000</quantity></Point>
      <Point><position>2</position><quantity>1126</quantity></Point>
      <Point><position>3</position><quantity>1195</quantity></Point>
      <Point><position>4</position><quantity>1246</quantity></Point>
    </Period>
  </TimeSeries>
  <TimeSeries>
    <Period>
      <timeInterval>
        <start>2024-10-01T00:00Z</start>
        <end>2024-10-01T04:00Z</end>
      </timeInterval>
      <resolution>PT60M</resolution>
      <Point><position>1</position><quantity>40</quantity></Point>
      <Point><position>2</position><quantity>4</quantity></Point>
      <Point><position>3</position><quantity>5</quantity></Point>
      <Point><position>4</position><quantity>4</quantity></Point>
    </Period>
  </TimeSeries>
</GL_MarketDocument>`

const generationForecastDoc = `<?xml version="1.0" encoding="UTF-8"?>
<GL_MarketDocument xmlns="urn:iec62325.351:tc57wg16:451-6:generationloaddocument:3:0">
  <TimeSeries>
    <Period>
      <timeInterval>
        <start>2024-10-02T00:00Z</start>
        <end>2024-10-02T02:00Z</end>
      </timeInterval>
      <resolution>PT60M</resolution>
      <Point><position>1</position><quantity>120</quantity></Point>
      <Point><position>2</position><quantity>175</quantity></Point>
    </Period>
    <Period>
      <timeInterval>
        <start>2024-10-02T02:00Z</start>
        <end>2024-10-02T03:00Z</end>
      </timeInterval>
      <resolution>PT60M</resolution>
      <Point><position>1</position><quantity>180</quantity></Point>
    </Period>
  </TimeSeries>
</GL_MarketDocument>`

const windSolarForecastDoc = `<?xml version="1.0" encoding="UTF-8"?>
<GL_MarketDocument xmlns="urn:iec62325.351:tc57wg16:451-6:generationloaddocument:3:0">
  <TimeSeries>
    <MktPSRType><psrType>B16</psrType></MktPSRType>
    <Period>
      <timeInterval>
        <start>2024-10-02T00:00Z</start>
        <end>2024-10-02T03:00Z</end>
      </timeInterval>
      <resolution>PT60M</resolution>
      <Point><position>1</position><quantity>50</quantity></Point>
      <Point><position>2</position><quantity>60</quantity></Point>
      <Point><position>3</position><quantity>70</quantity></Point>
    </Period>
  </TimeSeries>
  <TimeSeries>
    <MktPSRType><psrType>B19</psrType></MktPSRType>
    <Period>
      <timeInterval>
        <start>2024-10-02T00:00Z</start>
        <end>2024-10-02T02:00Z</end>
      </timeInterval>
      <resolution>PT60M</resolution>
      <Point><position>1</position><quantity>80</quantity></Point>
      <Point><position>2</position><quantity>90</quantity></Point>
    </Period>
  </TimeSeries>
</GL_MarketDocument>`

const generationPerTypeDoc = `<?xml version="1.0" encoding="UTF-8"?>
<GL_MarketDocument xmlns="urn:iec62325.351:tc57wg16:451-6:generationloaddocument:3:0">
  <TimeSeries>
    <MktPSRType><psrType>B16</psrType></MktPSRType>
    <Period>
      <timeInterval>
        <start>2024-10-01T22:00Z</start>
        <end>2024-10-02T00:00Z</end>
      </timeInterval>
      <resolution>PT60M</resolution>
      <Point><position>1</position><quantity>10</quantity></Point>
      <Point><position>2</position><quantity>20</quantity></Point>
    </Period>
  </TimeSeries>
  <TimeSeries>
    <MktPSRType><psrType>B16</psrType></MktPSRType>
    <Period>
      <timeInterval>
        <start>2024-10-01T22:00Z</start>
        <end>2024-10-02T00:00Z</end>
      </timeInterval>
      <resolution>PT60M</resolution>
      <Point><position>1</position><quantity>5</quantity></Point>
      <Point><position>2</position><quantity>5</quantity></Point>
    </Period>
  </TimeSeries>
  <TimeSeries>
    <MktPSRType><psrType>B19</psrType></MktPSRType>
    <Period>
      <timeInterval>
        <start>2024-10-01T22:00Z</start>
        <end>2024-10-02T00:00Z</end>
      </timeInterval>
      <resolution>PT60M</resolution>
      <Point><position>1</position><quantity>100</quantity></Point>
    </Period>
  </TimeSeries>
  <TimeSeries>
    <Period>
      <timeInterval>
        <start>2024-10-01T22:00Z</start>
        <end>2024-10-02T00:00Z</end>
      </timeInterval>
      <resolution>PT60M</resolution>
      <Point><position>1</position><quantity>1</quantity></Point>
      <Point><position>2</position><quantity>2</quantity></Point>
    </Period>
  </TimeSeries>
</GL_MarketDocument>`

func TestPricesHourly(t *testing.T) {
	p := NewParser(nil)
	got, err := p.Prices([]byte(hourlyPriceDoc))
	require.NoError(t, err)

	base := time.Date(2024, 10, 1, 22, 0, 0, 0, time.UTC)
	want := series.Series{
		base:                    50.5,
		base.Add(time.Hour):     48.34,
		base.Add(2 * time.Hour): 52.0,
	}
	assert.Equal(t, want, got)
}

func TestPricesQuarterHourAveraging(t *testing.T) {
	p := NewParser(nil)
	got, err := p.Prices([]byte(quarterHourPriceDoc))
	require.NoError(t, err)

	base := time.Date(2024, 10, 1, 22, 0, 0, 0, time.UTC)
	require.Len(t, got, 2)

	// Positions 2 and 4 are missing: the carried values make the first
	// hour (40+40+28+28)/4.
	first, ok := got.Get(base)
	require.True(t, ok)
	assert.InDelta(t, 34.0, first, 1e-9)

	second, ok := got.Get(base.Add(time.Hour))
	require.True(t, ok)
	assert.InDelta(t, 25.0, second, 1e-9)
}

func TestPricesSkipDuplicatePeriodStart(t *testing.T) {
	p := NewParser(nil)
	got, err := p.Prices([]byte(duplicateStartPriceDoc))
	require.NoError(t, err)

	// The quarter-hour republication of 22:00 is dropped wholesale; the
	// second period of that series is new and survives.
	base := time.Date(2024, 10, 1, 22, 0, 0, 0, time.UTC)
	want := series.Series{
		base:                100.0,
		base.Add(time.Hour): 20.0,
	}
	assert.Equal(t, want, got)
}

func TestPricesFillForward(t *testing.T) {
	p := NewParser(nil)
	got, err := p.Prices([]byte(gapPriceDoc))
	require.NoError(t, err)

	base := time.Date(2024, 10, 1, 22, 0, 0, 0, time.UTC)
	want := series.Series{
		base:                    10.0,
		base.Add(time.Hour):     10.0,
		base.Add(2 * time.Hour): 30.0,
		base.Add(3 * time.Hour): 30.0,
	}
	assert.Equal(t, want, got)
}

func TestPricesTruncateStartToHour(t *testing.T) {
	p := NewParser(nil)
	got, err := p.Prices([]byte(skewedStartPriceDoc))
	require.NoError(t, err)

	v, ok := got.Get(time.Date(2024, 10, 1, 22, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, 75.0, v)
}

func TestPricesSkipMalformedPeriodsAndPoints(t *testing.T) {
	p := NewParser(nil)
	got, err := p.Prices([]byte(partlyBrokenPriceDoc))
	require.NoError(t, err)

	// Only the last period is usable, and only its well-formed point.
	want := series.Series{
		time.Date(2024, 10, 1, 22, 0, 0, 0, time.UTC): 42.0,
	}
	assert.Equal(t, want, got)
}

func TestPricesMalformedDocument(t *testing.T) {
	p := NewParser(nil)

	tests := []struct {
		name string
		doc  string
	}{
		{name: "truncated xml", doc: "<Publication_MarketDocument><TimeSeries>"},
		{name: "empty payload", doc: ""},
		{name: "not xml at all", doc: "no data for you"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Prices([]byte(tt.doc))
			assert.ErrorIs(t, err, ErrMalformedDocument)
		})
	}
}

func TestQuantitiesSumOverlappingSeries(t *testing.T) {
	p := NewParser(nil)
	got, err := p.Quantities([]byte(totalLoadDoc))
	require.NoError(t, err)

	base := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	want := series.Series{
		base:                    1040.0,
		base.Add(time.Hour):     1130.0,
		base.Add(2 * time.Hour): 1200.0,
		base.Add(3 * time.Hour): 1250.0,
	}
	assert.Equal(t, want, got)
}

func TestQuantitiesMultiplePeriods(t *testing.T) {
	p := NewParser(nil)
	got, err := p.Quantities([]byte(generationForecastDoc))
	require.NoError(t, err)

	base := time.Date(2024, 10, 2, 0, 0, 0, 0, time.UTC)
	want := series.Series{
		base:                    120.0,
		base.Add(time.Hour):     175.0,
		base.Add(2 * time.Hour): 180.0,
	}
	assert.Equal(t, want, got)
}

func TestQuantitiesByCategoryPeriodEndCapsFill(t *testing.T) {
	p := NewParser(nil)
	got, err := p.QuantitiesByCategory([]byte(windSolarForecastDoc))
	require.NoError(t, err)

	base := time.Date(2024, 10, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"solar", "wind_onshore"}, got.Categories())

	want := series.Series{
		base:                    50.0,
		base.Add(time.Hour):     60.0,
		base.Add(2 * time.Hour): 70.0,
	}
	assert.Equal(t, want, got["solar"])

	// The wind period ends an hour earlier, so its series stops there
	// instead of being padded to match solar.
	want = series.Series{
		base:                80.0,
		base.Add(time.Hour): 90.0,
	}
	assert.Equal(t, want, got["wind_onshore"])
	assert.False(t, got["wind_onshore"].Has(base.Add(2*time.Hour)))
}

func TestQuantitiesByCategory(t *testing.T) {
	p := NewParser(nil)
	got, err := p.QuantitiesByCategory([]byte(generationPerTypeDoc))
	require.NoError(t, err)

	base := time.Date(2024, 10, 1, 22, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"other", "solar", "wind_onshore"}, got.Categories())

	solar := got["solar"]
	require.NotNil(t, solar)
	v, _ := solar.Get(base)
	assert.Equal(t, 15.0, v)
	v, _ = solar.Get(base.Add(time.Hour))
	assert.Equal(t, 25.0, v)

	// Single point at position 1 is carried to the end of the period.
	wind := got["wind_onshore"]
	require.NotNil(t, wind)
	v, _ = wind.Get(base.Add(time.Hour))
	assert.Equal(t, 100.0, v)

	// Series without a psrType land in the catch-all bucket.
	other := got["other"]
	require.NotNil(t, other)
	v, _ = other.Get(base.Add(time.Hour))
	assert.Equal(t, 2.0, v)
}

func TestQuantitiesMalformedDocument(t *testing.T) {
	p := NewParser(nil)

	_, err := p.Quantities([]byte("<GL_MarketDocument"))
	assert.ErrorIs(t, err, ErrMalformedDocument)

	_, err = p.QuantitiesByCategory([]byte("<GL_MarketDocument"))
	assert.ErrorIs(t, err, ErrMalformedDocument)
}
