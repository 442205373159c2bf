package coordinator_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorik41/entsoe-collector/internal/area"
	"github.com/jorik41/entsoe-collector/internal/coordinator"
	"github.com/jorik41/entsoe-collector/internal/coordinator/mocks"
	"github.com/jorik41/entsoe-collector/internal/entsoe"
	"github.com/jorik41/entsoe-collector/internal/series"
)

const day = 24 * time.Hour

// europeHarness scripts per-area responses for Total-Europe refreshes. Area
// keys are the resolved zone keys, so the shared German-Luxembourg zone
// shows up as DE_LU.
type europeHarness struct {
	visits     []string
	fail       map[string]error
	empty      map[string]bool
	zero       map[string]bool
	failAll    bool
	failExcept map[string]bool
}

func (h *europeHarness) serve(_ context.Context, a area.Area, start, _ time.Time, _ string) (series.Series, error) {
	h.visits = append(h.visits, a.Key)
	if h.failAll {
		return nil, entsoe.ErrAllEndpointsFailed
	}
	if h.failExcept != nil && !h.failExcept[a.Key] {
		return nil, entsoe.ErrAllEndpointsFailed
	}
	if err := h.fail[a.Key]; err != nil {
		return nil, err
	}
	if h.empty[a.Key] {
		return series.New(), nil
	}
	value := 1.0
	if h.zero[a.Key] {
		value = 0
	}
	return series.Series{start.Add(day): value}, nil
}

func (h *europeHarness) reset() { h.visits = nil }

func countOf(values []string, want string) int {
	var n int
	for _, v := range values {
		if v == want {
			n++
		}
	}
	return n
}

func newEuropeLoad(t *testing.T, ctrl *gomock.Controller, h *europeHarness, clk *clock, horizon coordinator.Horizon) *coordinator.Coordinator {
	t.Helper()
	q := mocks.NewMockQuerier(ctrl)
	q.EXPECT().
		TotalLoadForecast(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(h.serve).
		AnyTimes()
	return coordinator.NewLoadCoordinator(testConfig(q, mustArea(t, "TOTAL_EUROPE"), clk), horizon)
}

func TestEuropeAggregationDedupesZones(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clk := &clock{now: time.Date(2024, 10, 5, 14, 30, 0, 0, time.UTC)}
	h := &europeHarness{}
	c := newEuropeLoad(t, ctrl, h, clk, coordinator.HorizonDayAhead)

	assert.Equal(t, "load_day_ahead_total_europe", c.Key())
	require.NoError(t, c.Refresh(context.Background()))

	// 42 markets minus the aggregate itself, minus Luxembourg collapsing
	// onto the German zone.
	assert.Len(t, h.visits, 40)
	assert.Equal(t, 1, countOf(h.visits, "DE_LU"))
	assert.NotContains(t, h.visits, "TOTAL_EUROPE")

	got := c.Snapshot()
	require.Len(t, got, 1)
	ts := time.Date(2024, 10, 5, 14, 0, 0, 0, time.UTC)
	value, ok := got.Get(ts)
	require.True(t, ok)
	assert.Equal(t, 40.0, value)
}

func TestEuropeSuppressionAndRecovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clk := &clock{now: time.Date(2024, 10, 5, 14, 30, 0, 0, time.UTC)}
	h := &europeHarness{fail: map[string]error{"FI": entsoe.ErrAllEndpointsFailed}}
	c := newEuropeLoad(t, ctrl, h, clk, coordinator.HorizonDayAhead)

	// Three consecutive misses push the area into a cooldown window.
	for i := 0; i < 3; i++ {
		h.reset()
		require.NoError(t, c.Refresh(context.Background()))
		assert.Contains(t, h.visits, "FI")
		clk.now = clk.now.Add(time.Hour)
	}
	assert.Equal(t, []string{"FI"}, c.SuppressedAreas())

	h.reset()
	require.NoError(t, c.Refresh(context.Background()))
	assert.NotContains(t, h.visits, "FI")

	// Once the cooldown has passed the area is queried again, and a
	// successful answer clears its failure state.
	clk.now = clk.now.Add(7 * time.Hour)
	delete(h.fail, "FI")
	h.reset()
	require.NoError(t, c.Refresh(context.Background()))
	assert.Contains(t, h.visits, "FI")
	assert.Empty(t, c.SuppressedAreas())
}

func TestEuropeLongHorizonSuppressesAfterOneMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clk := &clock{now: time.Date(2024, 10, 5, 14, 30, 0, 0, time.UTC)}
	h := &europeHarness{fail: map[string]error{"FI": entsoe.ErrAllEndpointsFailed}}
	c := newEuropeLoad(t, ctrl, h, clk, coordinator.HorizonWeekAhead)

	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, []string{"FI"}, c.SuppressedAreas())

	clk.now = clk.now.Add(6 * time.Hour)
	h.reset()
	require.NoError(t, c.Refresh(context.Background()))
	assert.NotContains(t, h.visits, "FI")
}

func TestEuropeEmptyAnswerCountsAsMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clk := &clock{now: time.Date(2024, 10, 5, 14, 30, 0, 0, time.UTC)}
	h := &europeHarness{empty: map[string]bool{"EE": true}}
	c := newEuropeLoad(t, ctrl, h, clk, coordinator.HorizonWeekAhead)

	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, []string{"EE"}, c.SuppressedAreas())
}

func TestEuropeZeroOnlyAreaIsSummedButFlagged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clk := &clock{now: time.Date(2024, 10, 5, 14, 30, 0, 0, time.UTC)}
	h := &europeHarness{zero: map[string]bool{"EE": true}}
	c := newEuropeLoad(t, ctrl, h, clk, coordinator.HorizonDayAhead)

	require.NoError(t, c.Refresh(context.Background()))

	assert.Equal(t, []string{"EE"}, c.ZeroOnlyAreas())
	assert.Empty(t, c.SuppressedAreas())

	ts := time.Date(2024, 10, 5, 14, 0, 0, 0, time.UTC)
	value, ok := c.Snapshot().Get(ts)
	require.True(t, ok)
	assert.Equal(t, 39.0, value)
}

func TestEuropePartialFailureStoresFreshPartialSum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clk := &clock{now: time.Date(2024, 10, 5, 14, 30, 0, 0, time.UTC)}
	h := &europeHarness{}
	c := newEuropeLoad(t, ctrl, h, clk, coordinator.HorizonDayAhead)

	require.NoError(t, c.Refresh(context.Background()))
	firstSuccess, _ := c.LastSuccess()

	// Only Belgium answers on the second round. The partial sum replaces
	// the cached full aggregate instead of being mixed with it.
	h.failExcept = map[string]bool{"BE": true}
	clk.now = clk.now.Add(time.Hour)
	require.NoError(t, c.Refresh(context.Background()))

	got := c.Snapshot()
	require.Len(t, got, 1)
	value, ok := got.Get(time.Date(2024, 10, 5, 15, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, 1.0, value)

	last, ok := c.LastSuccess()
	require.True(t, ok)
	assert.True(t, last.After(firstSuccess))
}

func TestEuropeAllFailuresKeepCachedSum(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clk := &clock{now: time.Date(2024, 10, 5, 14, 30, 0, 0, time.UTC)}
	h := &europeHarness{}
	c := newEuropeLoad(t, ctrl, h, clk, coordinator.HorizonDayAhead)

	require.NoError(t, c.Refresh(context.Background()))
	firstSuccess, _ := c.LastSuccess()
	ts := time.Date(2024, 10, 5, 14, 0, 0, 0, time.UTC)

	h.failAll = true
	clk.now = clk.now.Add(time.Hour)
	require.NoError(t, c.Refresh(context.Background()))

	value, ok := c.Snapshot().Get(ts)
	require.True(t, ok)
	assert.Equal(t, 40.0, value)

	last, _ := c.LastSuccess()
	assert.Equal(t, firstSuccess, last)
}

func TestEuropeFirstRefreshWithoutDataFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clk := &clock{now: time.Date(2024, 10, 5, 14, 30, 0, 0, time.UTC)}
	h := &europeHarness{failAll: true}
	c := newEuropeLoad(t, ctrl, h, clk, coordinator.HorizonDayAhead)

	err := c.Refresh(context.Background())
	assert.ErrorIs(t, err, coordinator.ErrNoFreshData)
}

func TestEuropeUnauthorizedAbortsWalk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clk := &clock{now: time.Date(2024, 10, 5, 14, 30, 0, 0, time.UTC)}
	h := &europeHarness{fail: map[string]error{"AT": entsoe.ErrUnauthorized}}
	c := newEuropeLoad(t, ctrl, h, clk, coordinator.HorizonDayAhead)

	err := c.Refresh(context.Background())
	assert.ErrorIs(t, err, entsoe.ErrUnauthorized)

	// Austria sorts first, so the walk stops before any other area.
	assert.Equal(t, []string{"AT"}, h.visits)
}
