package services

import "eld-trip-planner/internal/domain"

// Simplified property-carrying driver HOS limits.
const (
	MaxDrivingHours    = 11.0
	MaxDutyWindowHours = 14.0
	MaxCycleHours      = 70.0
)

const (
	RuleDriving    = "driving_11h"
	RuleDutyWindow = "duty_window_14h"
	RuleCycle      = "cycle_70h"
)

// CheckLimits reports the limits exceeded by a day of intervals. It never
// alters the intervals. cycleUsed is the on-duty time accrued before the day.
func CheckLimits(intervals []domain.DutyInterval, cycleUsed float64) []domain.Violation {
	totals := Aggregate(intervals)
	var out []domain.Violation

	if totals.DrivingHours > MaxDrivingHours {
		out = append(out, domain.Violation{
			Rule:        RuleDriving,
			LimitHours:  MaxDrivingHours,
			ActualHours: totals.DrivingHours,
		})
	}

	if window := dutyWindowHours(intervals); window > MaxDutyWindowHours {
		out = append(out, domain.Violation{
			Rule:        RuleDutyWindow,
			LimitHours:  MaxDutyWindowHours,
			ActualHours: roundTo(window, 2),
		})
	}

	if cycle := cycleUsed + totals.DrivingHours + totals.OnDutyHours; cycle > MaxCycleHours {
		out = append(out, domain.Violation{
			Rule:        RuleCycle,
			LimitHours:  MaxCycleHours,
			ActualHours: roundTo(cycle, 2),
		})
	}

	return out
}

// dutyWindowHours is the elapsed time from the start of the first
// driving/on-duty interval to the end of the last closed one.
func dutyWindowHours(intervals []domain.DutyInterval) float64 {
	var elapsed, first, last float64
	seen := false

	for _, iv := range intervals {
		h := iv.Hours()
		if iv.Type == domain.Driving || iv.Type == domain.OnDuty {
			if !seen {
				first = elapsed
				seen = true
			}
			if !iv.Open() {
				last = elapsed + h
			}
		}
		elapsed += h
	}

	if !seen || last < first {
		return 0
	}
	return last - first
}
