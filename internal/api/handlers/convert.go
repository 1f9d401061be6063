package handlers

import (
	"eld-trip-planner/internal/api/dto"
	"eld-trip-planner/internal/domain"
	"eld-trip-planner/internal/services"
	"math"
)

func toTripResponse(rec domain.TripRecord) dto.TripResponse {
	return dto.TripResponse{
		ID:               rec.ID.String(),
		CurrentLocation:  rec.Trip.CurrentLocation,
		PickupLocation:   rec.Trip.PickupLocation,
		DropoffLocation:  rec.Trip.DropoffLocation,
		CurrentCycleUsed: rec.Trip.CurrentCycleUsed,
		CreatedAt:        rec.CreatedAt,
	}
}

func toCoordinate(c domain.Coordinates) dto.CoordinateResponse {
	return dto.CoordinateResponse{Latitude: c.Lat, Longitude: c.Lon}
}

func toFuelStops(stops []domain.FuelStop) []dto.FuelStopResponse {
	out := make([]dto.FuelStopResponse, 0, len(stops))
	for _, s := range stops {
		out = append(out, dto.FuelStopResponse{Position: toCoordinate(s.Position), Miles: s.Miles})
	}
	return out
}

func toPlanResponse(p *services.TripPlan) dto.PlanResponse {
	res := dto.PlanResponse{
		Trip: toTripResponse(p.Trip),
		Markers: dto.MarkersResponse{
			Current: toCoordinate(p.Markers.Current),
			Pickup:  toCoordinate(p.Markers.Pickup),
			Dropoff: toCoordinate(p.Markers.Dropoff),
		},
		Legs:         make([]dto.LegResponse, 0, len(p.Legs)),
		FuelStops:    toFuelStops(p.FuelStops()),
		DrivingHours: p.DrivingHours,
		RouteMiles:   p.RouteMiles,
		RouteError:   p.RouteError,
		Log:          toLogResponse(p.Log),
	}

	for _, leg := range p.Legs {
		poly := make([]dto.CoordinateResponse, 0, len(leg.Route.Polyline))
		for _, c := range leg.Route.Polyline {
			poly = append(poly, toCoordinate(c))
		}
		res.Legs = append(res.Legs, dto.LegResponse{
			Name:            leg.Name,
			Label:           leg.Label,
			Color:           leg.Color,
			DistanceMeters:  leg.Route.DistanceMeters,
			DurationSeconds: leg.Route.DurationSeconds,
			DrivingHours:    leg.DrivingHours,
			Miles:           leg.Miles,
			Polyline:        poly,
			FuelStops:       toFuelStops(leg.FuelStops),
		})
	}

	return res
}

func toLogResponse(l domain.LogSheet) dto.LogResponse {
	res := dto.LogResponse{
		TripID: l.TripID.String(),
		Mode:   string(l.Mode),
		Header: dto.HeaderResponse{
			DriverName:       l.Header.DriverName,
			Date:             l.Header.Date,
			Company:          l.Header.Company,
			MainOffice:       l.Header.MainOffice,
			VehicleNumbers:   l.Header.VehicleNumbers,
			ShippingDocument: l.Header.ShippingDocument,
		},
		CurrentStatus: string(l.CurrentStatus),
		Intervals:     make([]dto.IntervalResponse, 0, len(l.Intervals)),
		Remarks:       make([]dto.RemarkResponse, 0, len(l.Remarks)),
		Totals: dto.TotalsResponse{
			OffDutyHours: l.Totals.OffDutyHours,
			SleeperHours: l.Totals.SleeperHours,
			DrivingHours: l.Totals.DrivingHours,
			OnDutyHours:  l.Totals.OnDutyHours,
			TotalHours:   math.Round(l.Totals.Total()*100) / 100,
		},
		EstimatedMiles: l.EstimatedMiles,
		RouteMiles:     l.RouteMiles,
		TotalMiles:     l.TotalMiles(),
		Violations:     make([]dto.ViolationResponse, 0, len(l.Violations)),
		Warnings:       append([]string{}, l.Warnings...),
		UpdatedAt:      l.UpdatedAt,
	}

	for _, iv := range l.Intervals {
		end := ""
		if iv.End != nil {
			end = iv.End.String()
		}
		res.Intervals = append(res.Intervals, dto.IntervalResponse{
			Type:        string(iv.Type),
			Status:      iv.Type.Label(),
			Location:    iv.Location,
			Description: iv.Description,
			StartTime:   iv.Start.String(),
			EndTime:     end,
			Hours:       math.Round(iv.Hours()*100) / 100,
		})
	}
	for _, r := range l.Remarks {
		res.Remarks = append(res.Remarks, dto.RemarkResponse{
			Time:        r.Time.String(),
			Location:    r.Location,
			Description: r.Description,
		})
	}
	for _, v := range l.Violations {
		res.Violations = append(res.Violations, dto.ViolationResponse{
			Rule:        v.Rule,
			LimitHours:  v.LimitHours,
			ActualHours: v.ActualHours,
			Message:     v.String(),
		})
	}

	return res
}

func toSceneResponse(s services.Scene) dto.SceneResponse {
	res := dto.SceneResponse{
		Width:       s.Width,
		Height:      s.Height,
		Labels:      make([]dto.SceneTextResponse, 0, len(s.Labels)),
		Grid:        make([]dto.SceneLineResponse, 0, len(s.Grid)),
		Segments:    make([]dto.SegmentResponse, 0, len(s.Segments)),
		Transitions: make([]dto.TransitionResponse, 0, len(s.Transitions)),
		Remarks:     make([]dto.RemarkLineResponse, 0, len(s.Remarks)),
	}
	for _, t := range s.Labels {
		res.Labels = append(res.Labels, dto.SceneTextResponse{X: t.X, Y: t.Y, Text: t.Text, Size: t.Size, Anchor: t.Anchor})
	}
	for _, l := range s.Grid {
		res.Grid = append(res.Grid, dto.SceneLineResponse{X1: l.X1, Y1: l.Y1, X2: l.X2, Y2: l.Y2, Dashed: l.Dashed})
	}
	for _, seg := range s.Segments {
		res.Segments = append(res.Segments, dto.SegmentResponse{
			Row:    string(seg.Type),
			StartX: seg.StartX,
			EndX:   seg.EndX,
			Y:      seg.Y,
			Color:  seg.Color,
			Open:   seg.Open,
		})
	}
	for _, tr := range s.Transitions {
		res.Transitions = append(res.Transitions, dto.TransitionResponse{X: tr.X, FromY: tr.FromY, ToY: tr.ToY, Color: tr.Color})
	}
	for _, r := range s.Remarks {
		res.Remarks = append(res.Remarks, dto.RemarkLineResponse{Y: r.Y, Text: r.Text})
	}
	return res
}
