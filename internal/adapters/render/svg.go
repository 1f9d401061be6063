package render

import (
	"bufio"
	"eld-trip-planner/internal/services"
	"encoding/xml"
	"fmt"
	"io"
)

const (
	gridStroke    = "#000000"
	quarterStroke = "#cccccc"
	fontFamily    = "Arial, sans-serif"
)

// SVG draws a log grid scene as a standalone SVG document. Elements are
// written in scene order: grid, labels, segments, transitions, remarks.
func SVG(w io.Writer, s services.Scene) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		s.Width, s.Height, s.Width, s.Height,
	)
	fmt.Fprintf(bw, `<rect x="0" y="0" width="%d" height="%d" fill="#ffffff"/>`+"\n", s.Width, s.Height)

	bw.WriteString(`<g id="grid" fill="none">` + "\n")
	for _, l := range s.Grid {
		if l.Dashed {
			fmt.Fprintf(bw,
				`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="0.5" stroke-dasharray="2,2"/>`+"\n",
				num(l.X1), num(l.Y1), num(l.X2), num(l.Y2), quarterStroke,
			)
			continue
		}
		fmt.Fprintf(bw,
			`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1"/>`+"\n",
			num(l.X1), num(l.Y1), num(l.X2), num(l.Y2), gridStroke,
		)
	}
	bw.WriteString("</g>\n")

	bw.WriteString(`<g id="labels">` + "\n")
	for _, t := range s.Labels {
		writeText(bw, t.X, t.Y, t.Size, t.Anchor, t.Text)
	}
	bw.WriteString("</g>\n")

	bw.WriteString(`<g id="segments" fill="none">` + "\n")
	for _, seg := range s.Segments {
		fmt.Fprintf(bw,
			`<path class="segment %s" d="M %s %s H %s" stroke="%s" stroke-width="3"/>`+"\n",
			seg.Type, num(seg.StartX), num(seg.Y), num(seg.EndX), seg.Color,
		)
	}
	for _, tr := range s.Transitions {
		fmt.Fprintf(bw,
			`<line class="transition" x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="2"/>`+"\n",
			num(tr.X), num(tr.FromY), num(tr.X), num(tr.ToY), tr.Color,
		)
	}
	bw.WriteString("</g>\n")

	bw.WriteString(`<g id="remarks">` + "\n")
	for _, r := range s.Remarks {
		writeText(bw, remarksX, r.Y, 10, "start", r.Text)
	}
	bw.WriteString("</g>\n")

	bw.WriteString("</svg>\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("render svg: %w", err)
	}
	return nil
}

// remarksX matches the indent of the remark lines in the scene.
const remarksX = 110

func writeText(w *bufio.Writer, x, y float64, size int, anchor, text string) {
	if anchor == "" {
		anchor = "start"
	}
	fmt.Fprintf(w,
		`<text x="%s" y="%s" font-family="%s" font-size="%d" text-anchor="%s">`,
		num(x), num(y), fontFamily, size, anchor,
	)
	_ = xml.EscapeText(w, []byte(text))
	w.WriteString("</text>\n")
}

func num(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
