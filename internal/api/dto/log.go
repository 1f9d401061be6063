package dto

import "time"

type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=off-duty sleeper driving on-duty"`
}

type RemarkRequest struct {
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required,max=200"`
	Description string `json:"description" validate:"required,max=500"`
}

type HeaderRequest struct {
	DriverName       string `json:"driver_name" validate:"max=100"`
	Date             string `json:"date" validate:"omitempty,datetime=01/02/2006"`
	Company          string `json:"company" validate:"max=100"`
	MainOffice       string `json:"main_office" validate:"max=200"`
	VehicleNumbers   string `json:"vehicle_numbers" validate:"max=100"`
	ShippingDocument string `json:"shipping_document" validate:"max=100"`
}

type HeaderResponse struct {
	DriverName       string `json:"driver_name"`
	Date             string `json:"date"`
	Company          string `json:"company"`
	MainOffice       string `json:"main_office"`
	VehicleNumbers   string `json:"vehicle_numbers"`
	ShippingDocument string `json:"shipping_document"`
}

// IntervalResponse keeps the text form of a duty interval; an open
// interval has an empty endTime.
type IntervalResponse struct {
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Hours       float64 `json:"hours"`
}

type RemarkResponse struct {
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type TotalsResponse struct {
	OffDutyHours float64 `json:"offDutyHours"`
	SleeperHours float64 `json:"sleeperHours"`
	DrivingHours float64 `json:"drivingHours"`
	OnDutyHours  float64 `json:"onDutyHours"`
	TotalHours   float64 `json:"totalHours"`
}

type ViolationResponse struct {
	Rule        string  `json:"rule"`
	LimitHours  float64 `json:"limit_hours"`
	ActualHours float64 `json:"actual_hours"`
	Message     string  `json:"message"`
}

type LogResponse struct {
	TripID         string              `json:"trip_id"`
	Mode           string              `json:"mode"`
	Header         HeaderResponse      `json:"header"`
	CurrentStatus  string              `json:"current_status"`
	Intervals      []IntervalResponse  `json:"intervals"`
	Remarks        []RemarkResponse    `json:"remarks"`
	Totals         TotalsResponse      `json:"totals"`
	EstimatedMiles float64             `json:"estimated_miles"`
	RouteMiles     float64             `json:"route_miles"`
	TotalMiles     float64             `json:"total_miles"`
	Violations     []ViolationResponse `json:"violations"`
	Warnings       []string            `json:"warnings"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type SceneResponse struct {
	Width       int                  `json:"width"`
	Height      int                  `json:"height"`
	Labels      []SceneTextResponse  `json:"labels"`
	Grid        []SceneLineResponse  `json:"grid"`
	Segments    []SegmentResponse    `json:"segments"`
	Transitions []TransitionResponse `json:"transitions"`
	Remarks     []RemarkLineResponse `json:"remarks"`
}

type SceneTextResponse struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Text   string  `json:"text"`
	Size   int     `json:"size"`
	Anchor string  `json:"anchor"`
}

type SceneLineResponse struct {
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
	Dashed bool    `json:"dashed,omitempty"`
}

type SegmentResponse struct {
	Row    string  `json:"row"`
	StartX float64 `json:"startX"`
	EndX   float64 `json:"endX"`
	Y      float64 `json:"y"`
	Color  string  `json:"color"`
	Open   bool    `json:"open,omitempty"`
}

type TransitionResponse struct {
	X     float64 `json:"x"`
	FromY float64 `json:"fromY"`
	ToY   float64 `json:"toY"`
	Color string  `json:"color"`
}

type RemarkLineResponse struct {
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}
