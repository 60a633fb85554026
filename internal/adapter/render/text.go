package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"posfit/internal/domain"
)

const (
	barRune  = "█"
	cellYes  = "■"
	cellNo   = "·"
	defWidth = 40
)

// Renderer writes plain-text charts and reports.
type Renderer struct {
	w     io.Writer
	width int
}

// NewRenderer creates a renderer whose bars span at most width cells.
func NewRenderer(w io.Writer, width int) *Renderer {
	if width <= 0 {
		width = defWidth
	}
	return &Renderer{w: w, width: width}
}

// Ranking draws a horizontal bar chart on a 0–100 axis, or on the weight
// total when a scenario's weights sum past 100.
func (r *Renderer) Ranking(rk domain.Ranking) {
	fmt.Fprintf(r.w, "Effectiveness index (scenario %d: %s)\n", rk.Scenario.ID, rk.Scenario.Name)

	axis := max(100, rk.Scenario.Total())
	label := 0
	for _, s := range rk.Scores {
		label = max(label, runewidth.StringWidth(s.System))
	}

	for _, s := range rk.Scores {
		n := s.Score * r.width / axis
		fmt.Fprintf(r.w, "  %s │%s %d (%.1f%%)\n",
			padRight(s.System, label), strings.Repeat(barRune, n), s.Score, s.Percent)
	}
	fmt.Fprintf(r.w, "  %s └%s\n", strings.Repeat(" ", label), strings.Repeat("─", r.width))
	fmt.Fprintf(r.w, "  %s  0%s%d\n", strings.Repeat(" ", label), strings.Repeat(" ", max(0, r.width-1-len(fmt.Sprint(axis)))), axis)
}

// Heatmap draws the system × feature support matrix.
func (r *Renderer) Heatmap(features []domain.Feature, systems []domain.System) {
	fmt.Fprintln(r.w, "Feature support by system")

	label := 0
	for _, s := range systems {
		label = max(label, runewidth.StringWidth(s.Name))
	}
	cols := make([]int, len(features))
	header := make([]string, len(features))
	for i, f := range features {
		cols[i] = runewidth.StringWidth(f.Key)
		header[i] = f.Key
	}

	fmt.Fprintf(r.w, "  %s  %s\n", padRight("", label), strings.Join(header, "  "))
	for _, s := range systems {
		cells := make([]string, len(features))
		for i := range features {
			mark := cellNo
			if s.Supports(i) {
				mark = cellYes
			}
			cells[i] = padCenter(mark, cols[i])
		}
		fmt.Fprintf(r.w, "  %s  %s\n", padRight(s.Name, label), strings.Join(cells, "  "))
	}
}

// Histogram draws binned scores followed by their summary.
func (r *Renderer) Histogram(title string, scores []int, bins int) {
	fmt.Fprintln(r.w, title)

	buckets := Bin(scores, bins)
	peak := 0
	for _, b := range buckets {
		peak = max(peak, b.Count)
	}
	for _, b := range buckets {
		n := 0
		if peak > 0 {
			n = b.Count * r.width / peak
		}
		fmt.Fprintf(r.w, "  %6.1f–%-6.1f │%s %d\n", b.Lo, b.Hi, strings.Repeat(barRune, n), b.Count)
	}

	s := Summarize(scores)
	fmt.Fprintf(r.w, "  n=%d min=%d max=%d mean=%.2f stddev=%.2f\n", s.N, s.Min, s.Max, s.Mean, s.StdDev)
}

// MatchReport lists qualifying systems with what they include and what else
// they support. venue may be nil.
func (r *Renderer) MatchReport(venue *domain.Venue, required []domain.Feature, results []domain.MatchResult) {
	if venue != nil {
		fmt.Fprintf(r.w, "Venue type: %s\n\n", venue.Name)
	}

	names := featureNames(required)
	for _, m := range results {
		fmt.Fprintf(r.w, "* %s\n", m.System)
		desc := m.Description
		if desc == "" {
			desc = "-"
		}
		fmt.Fprintf(r.w, "    %s\n", desc)
		fmt.Fprintf(r.w, "    includes: %s\n", strings.Join(names, ", "))
		if len(m.Extras) > 0 {
			fmt.Fprintf(r.w, "    also supports: %s\n", strings.Join(featureNames(m.Extras), ", "))
		}
		fmt.Fprintln(r.w)
	}
}

func featureNames(features []domain.Feature) []string {
	names := make([]string, len(features))
	for i, f := range features {
		names[i] = f.Name
	}
	return names
}

// padRight pads s with spaces so its display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

func padCenter(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	left := (width - sw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-sw-left)
}
