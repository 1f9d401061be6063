package services

import (
	"eld-trip-planner/internal/domain"
	"math"
)

// AverageSpeedMPH is the assumed truck speed for mileage estimates.
const AverageSpeedMPH = 55.0

// Aggregate sums closed interval durations per duty status.
// Open or malformed intervals contribute 0; buckets never carry NaN.
func Aggregate(intervals []domain.DutyInterval) domain.StatusTotals {
	var offDuty, sleeper, driving, onDuty float64

	for _, iv := range intervals {
		h := iv.Hours()
		if !finite(h) {
			continue
		}

		switch iv.Type {
		case domain.OffDuty:
			offDuty += h
		case domain.Sleeper:
			sleeper += h
		case domain.Driving:
			driving += h
		case domain.OnDuty:
			onDuty += h
		}
	}

	return domain.StatusTotals{
		OffDutyHours: bucket(offDuty),
		SleeperHours: bucket(sleeper),
		DrivingHours: bucket(driving),
		OnDutyHours:  bucket(onDuty),
	}
}

// EstimateMiles converts completed driving time into miles at
// AverageSpeedMPH, rounded to the nearest mile.
func EstimateMiles(intervals []domain.DutyInterval) float64 {
	var hours float64
	for _, iv := range intervals {
		if iv.Type != domain.Driving || iv.Open() {
			continue
		}
		if h := iv.Hours(); finite(h) {
			hours += h
		}
	}
	return math.Round(hours * AverageSpeedMPH)
}

func bucket(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return roundTo(v, 2)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
