package services

import (
	"eld-trip-planner/internal/domain"
	"fmt"
)

const (
	DefaultGridWidth = 800
	MinGridWidth     = 240

	SegmentColor = "#0066cc"

	gridLeft      = 100
	gridRightPad  = 20
	gridTop       = 20
	gridBottom    = 140
	rowSpacing    = 30
	labelX        = 90
	remarksLineY  = 180
	remarksStartY = 200
	remarksStep   = 20
	remarksX      = 110
)

// rowY is the vertical position of each duty status row.
var rowY = map[domain.DutyType]float64{
	domain.OffDuty: 40,
	domain.Sleeper: 70,
	domain.Driving: 100,
	domain.OnDuty:  130,
}

// SceneOptions controls the projection. AsOf is the clock time an open
// interval is drawn up to.
type SceneOptions struct {
	Width int
	AsOf  domain.ClockTime
}

type SceneLine struct {
	X1, Y1, X2, Y2 float64
	Dashed         bool
}

type SceneText struct {
	X, Y   float64
	Text   string
	Size   int
	Anchor string // start, middle or end
}

// Segment is one horizontal status line on the grid.
type Segment struct {
	Type   domain.DutyType
	StartX float64
	EndX   float64
	Y      float64
	Color  string
	Open   bool
}

// Transition is the vertical connector drawn where the status changes.
type Transition struct {
	X     float64
	FromY float64
	ToY   float64
	Color string
}

type RemarkLine struct {
	Y    float64
	Text string
}

// Scene is a declarative description of a log grid, rebuilt from scratch
// for every change. Renderers draw it in slice order.
type Scene struct {
	Width       int
	Height      int
	Labels      []SceneText
	Grid        []SceneLine
	Segments    []Segment
	Transitions []Transition
	Remarks     []RemarkLine
}

// MinuteX maps minutes since midnight onto the horizontal axis.
func MinuteX(minutes int, width int) float64 {
	return gridLeft + float64(minutes)/domain.MinutesPerDay*float64(width-gridLeft-gridRightPad)
}

// BuildScene projects the log's intervals and remarks onto a 24-hour grid.
func BuildScene(l domain.LogSheet, opts SceneOptions) Scene {
	width := opts.Width
	if width < MinGridWidth {
		width = DefaultGridWidth
	}

	s := Scene{
		Width:  width,
		Height: sceneHeight(len(l.Remarks)),
	}
	s.Labels, s.Grid = gridFor(width)

	for i, iv := range l.Intervals {
		if !iv.Start.Valid() {
			continue
		}
		end := opts.AsOf
		if iv.End != nil {
			end = *iv.End
		}
		if !end.Valid() {
			continue
		}

		y := rowFor(iv.Type)
		start := int(iv.Start)
		stop := int(end)

		if stop < start {
			// Crosses midnight: draw to the right edge, then from the left edge.
			s.Segments = append(s.Segments, segment(iv, start, domain.MinutesPerDay, y, width))
			s.Segments = append(s.Segments, segment(iv, 0, stop, y, width))
		} else {
			s.Segments = append(s.Segments, segment(iv, start, stop, y, width))
		}

		if i > 0 {
			s.Transitions = append(s.Transitions, Transition{
				X:     MinuteX(start, width),
				FromY: rowFor(l.Intervals[i-1].Type),
				ToY:   y,
				Color: SegmentColor,
			})
		}
	}

	for i, r := range l.Remarks {
		s.Remarks = append(s.Remarks, RemarkLine{
			Y:    float64(remarksStartY + i*remarksStep),
			Text: RemarkText(r),
		})
	}

	return s
}

// RemarkText is the one-line form a remark takes under the grid.
func RemarkText(r domain.Remark) string {
	return fmt.Sprintf("%s - %s: %s", r.Time, r.Location, r.Description)
}

func rowFor(t domain.DutyType) float64 {
	if y, ok := rowY[t]; ok {
		return y
	}
	return rowY[domain.OffDuty]
}

func segment(iv domain.DutyInterval, start, end int, y float64, width int) Segment {
	return Segment{
		Type:   iv.Type,
		StartX: MinuteX(start, width),
		EndX:   MinuteX(end, width),
		Y:      y,
		Color:  SegmentColor,
		Open:   iv.Open(),
	}
}

func sceneHeight(remarks int) int {
	h := remarksStartY + remarks*remarksStep
	if h < MinGridWidth {
		return MinGridWidth
	}
	return h
}

func gridFor(width int) ([]SceneText, []SceneLine) {
	right := float64(width - gridRightPad)
	hourWidth := (right - gridLeft) / 24

	labels := make([]SceneText, 0, 32)
	for _, t := range domain.DutyTypes {
		labels = append(labels, SceneText{X: labelX, Y: rowY[t], Text: t.Label(), Size: 10, Anchor: "end"})
	}

	lines := make([]SceneLine, 0, 5+25+24*3+1)
	for i := 0; i <= 4; i++ {
		y := float64(gridTop + i*rowSpacing)
		lines = append(lines, SceneLine{X1: gridLeft, Y1: y, X2: right, Y2: y})
	}

	for i := 0; i <= 24; i++ {
		x := gridLeft + float64(i)*hourWidth
		lines = append(lines, SceneLine{X1: x, Y1: gridTop, X2: x, Y2: gridBottom})
		if i == 24 {
			break
		}

		labels = append(labels, SceneText{X: x + hourWidth/2, Y: 15, Text: fmt.Sprint(i), Size: 8, Anchor: "middle"})
		for q := 1; q < 4; q++ {
			xq := x + float64(q)*hourWidth/4
			lines = append(lines, SceneLine{X1: xq, Y1: gridTop, X2: xq, Y2: gridBottom, Dashed: true})
		}
	}

	labels = append(labels,
		SceneText{X: gridLeft, Y: 10, Text: "Midnight", Size: 10, Anchor: "middle"},
		SceneText{X: gridLeft + 12*hourWidth, Y: 10, Text: "Noon", Size: 10, Anchor: "middle"},
		SceneText{X: right, Y: 10, Text: "Midnight", Size: 10, Anchor: "middle"},
		SceneText{X: labelX, Y: remarksLineY, Text: "REMARKS", Size: 10, Anchor: "end"},
	)
	lines = append(lines, SceneLine{X1: gridLeft, Y1: remarksLineY, X2: right, Y2: remarksLineY})

	return labels, lines
}
