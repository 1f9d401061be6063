package services

import (
	"eld-trip-planner/internal/domain"
	"fmt"
	"math"
	"time"
)

const (
	DefaultDrivingHours = 8.0
	DefaultDayStartHour = 8

	preTripRestHours = 1.5
	loadingHours     = 1.5
	unloadingHours   = 1.0

	// Share of total driving before and after the pickup.
	firstLegShare  = 0.45
	secondLegShare = 0.55
)

// Synthesis is a generated day of duty intervals.
type Synthesis struct {
	Intervals []domain.DutyInterval
	Remarks   []domain.Remark

	// DrivingHours is the total that was split across the two legs,
	// after the default was applied.
	DrivingHours float64

	// ElapsedHours runs from midnight to the end of unloading.
	ElapsedHours float64

	// Overflow is set when the on-duty part of the template ends past
	// 23:59. Boundary times then wrap for display only.
	Overflow bool
}

// DayStartHour is the default anchor for a generated log: the current
// wall-clock hour.
func DayStartHour(now time.Time) int {
	return now.Hour()
}

// SynthesizeLog lays a trip onto a fixed single-day template:
//
//	off-duty 00:00 -> day start
//	sleeper 1.5h pre-trip rest
//	driving 45% of total, current location -> pickup
//	on-duty 1.5h loading at pickup
//	driving 55% of total, pickup -> dropoff
//	on-duty 1h unloading at dropoff
//	off-duty until 23:59
//
// It is a fixed-ratio split, not a constraint solver: the 11-hour driving
// and 14-hour window limits are not applied here (see CheckLimits).
// A nil, NaN or non-positive drivingHours uses DefaultDrivingHours.
func SynthesizeLog(trip domain.Trip, drivingHours *float64, dayStartHour int) Synthesis {
	total := DefaultDrivingHours
	if drivingHours != nil && *drivingHours > 0 && !math.IsNaN(*drivingHours) && !math.IsInf(*drivingHours, 0) {
		total = *drivingHours
	}

	if dayStartHour < 0 || dayStartHour > 23 {
		dayStartHour = DefaultDayStartHour
	}

	startLocation := orDefault(trip.CurrentLocation, "Starting Location")
	pickupLocation := orDefault(trip.PickupLocation, "Pickup Location")
	dropoffLocation := orDefault(trip.DropoffLocation, "Dropoff Location")

	firstDriving := roundTo(total*firstLegShare, 1)
	secondDriving := roundTo(total*secondLegShare, 1)

	// Accumulate in whole minutes so boundaries never format as HH:60.
	offDutyEnd := dayStartHour * 60
	restEnd := offDutyEnd + hoursToMinutes(preTripRestHours)
	firstDrivingEnd := restEnd + hoursToMinutes(firstDriving)
	loadingEnd := firstDrivingEnd + hoursToMinutes(loadingHours)
	secondDrivingEnd := loadingEnd + hoursToMinutes(secondDriving)
	unloadingEnd := secondDrivingEnd + hoursToMinutes(unloadingHours)

	type step struct {
		typ         domain.DutyType
		location    string
		description string
		start, end  int
	}

	steps := []step{
		{domain.OffDuty, startLocation, "Off duty", 0, offDutyEnd},
		{domain.Sleeper, startLocation, "Rest period", offDutyEnd, restEnd},
		{domain.Driving, startLocation, "Driving to pickup", restEnd, firstDrivingEnd},
		{domain.OnDuty, pickupLocation, "Loading cargo", firstDrivingEnd, loadingEnd},
		{domain.Driving, pickupLocation, "Driving to destination", loadingEnd, secondDrivingEnd},
		{domain.OnDuty, dropoffLocation, "Unloading cargo", secondDrivingEnd, unloadingEnd},
		{domain.OffDuty, dropoffLocation, "Off duty", unloadingEnd, int(domain.EndOfDay)},
	}

	out := Synthesis{
		Intervals:    make([]domain.DutyInterval, 0, len(steps)),
		DrivingHours: total,
		ElapsedHours: float64(unloadingEnd) / 60,
		Overflow:     unloadingEnd > int(domain.EndOfDay),
	}

	for _, s := range steps {
		out.Intervals = append(out.Intervals, domain.DutyInterval{
			Type:        s.typ,
			Location:    s.location,
			Description: s.description,
			Start:       domain.ClockFromMinutes(s.start),
			End:         domain.ClockPtr(domain.ClockFromMinutes(s.end)),
		})
	}
	out.Remarks = RemarksFor(out.Intervals)

	return out
}

// OverflowWarning describes a synthesis that does not fit in one day.
func (s Synthesis) OverflowWarning() string {
	if !s.Overflow {
		return ""
	}
	return fmt.Sprintf(
		"log exceeds a single day: on-duty activity ends %.1f hours after midnight; times past 23:59 are wrapped",
		s.ElapsedHours,
	)
}

// RemarksFor derives one remark per interval, stamped at its start.
func RemarksFor(intervals []domain.DutyInterval) []domain.Remark {
	out := make([]domain.Remark, 0, len(intervals))
	for _, iv := range intervals {
		out = append(out, domain.Remark{
			Time:        iv.Start,
			Location:    iv.Location,
			Description: iv.Description,
		})
	}
	return out
}

func hoursToMinutes(h float64) int {
	return int(math.Round(h * 60))
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
