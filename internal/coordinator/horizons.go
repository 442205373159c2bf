package coordinator

import (
	"time"

	"github.com/jorik41/entsoe-collector/internal/entsoe"
)

// Horizon bundles the forecast window, refresh cadence and aggregate
// failure policy of a target. Long horizons refresh rarely, look far ahead
// and suppress a constituent area after a single miss.
type Horizon struct {
	Name          string
	Process       string
	Interval      time.Duration
	LookAhead     time.Duration
	MissThreshold int
	Cooldown      time.Duration

	// Named horizons appear in the target key; kinds with a single fixed
	// horizon leave it out.
	Named bool
}

var (
	// HorizonDayAhead drives the hourly day-ahead targets.
	HorizonDayAhead = Horizon{
		Name:          "day_ahead",
		Process:       entsoe.ProcessTypeDayAhead,
		Interval:      time.Hour,
		LookAhead:     3 * day,
		MissThreshold: 3,
		Cooldown:      6 * time.Hour,
		Named:         true,
	}

	// HorizonWeekAhead covers the two-week load outlook.
	HorizonWeekAhead = Horizon{
		Name:          "week_ahead",
		Process:       entsoe.ProcessTypeWeekAhead,
		Interval:      6 * time.Hour,
		LookAhead:     14 * day,
		MissThreshold: 1,
		Cooldown:      24 * time.Hour,
		Named:         true,
	}

	// HorizonMonthAhead covers the two-month load outlook.
	HorizonMonthAhead = Horizon{
		Name:          "month_ahead",
		Process:       entsoe.ProcessTypeMonthAhead,
		Interval:      12 * time.Hour,
		LookAhead:     62 * day,
		MissThreshold: 1,
		Cooldown:      48 * time.Hour,
		Named:         true,
	}

	// HorizonYearAhead covers the year-plus load outlook.
	HorizonYearAhead = Horizon{
		Name:          "year_ahead",
		Process:       entsoe.ProcessTypeYearAhead,
		Interval:      24 * time.Hour,
		LookAhead:     370 * day,
		MissThreshold: 1,
		Cooldown:      72 * time.Hour,
		Named:         true,
	}

	// horizonRealised is the fixed cadence of the realised generation mix.
	horizonRealised = Horizon{
		Name:          "realised",
		Process:       entsoe.ProcessTypeRealised,
		Interval:      time.Hour,
		LookAhead:     3 * day,
		MissThreshold: 3,
		Cooldown:      6 * time.Hour,
	}
)

// LoadHorizons lists the selectable load forecast horizons in ascending
// reach.
func LoadHorizons() []Horizon {
	return []Horizon{HorizonDayAhead, HorizonWeekAhead, HorizonMonthAhead, HorizonYearAhead}
}
