package report

import (
	"fmt"
	"strings"

	"flexShop/internal/flexshop"
)

// SVG geometry.
const (
	svgChartWidth  = 640
	svgRowHeight   = 26
	svgBarHeight   = 18
	svgLeftMargin  = 48
	svgTopMargin   = 40
	svgPanelGap    = 28
	svgLegendWidth = 90
)

// SVG draws the schedule as a Gantt chart: one panel per factory, one row
// per machine, one black-edged job-colored rectangle per slot, a makespan
// title and a job legend. Colors must hold one entry per job index.
func SVG(s flexshop.Schedule, colors []string) string {
	makespan := s.Makespan()
	scale := 1.0
	if makespan > 0 {
		scale = float64(svgChartWidth) / float64(makespan)
	}

	machines := 0
	for _, fs := range s {
		if len(fs) > machines {
			machines = len(fs)
		}
	}

	panelHeight := machines * svgRowHeight
	width := svgLeftMargin + svgChartWidth + svgLegendWidth + 20
	height := svgTopMargin + len(s)*(panelHeight+svgPanelGap)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+"\n", width, height)
	fmt.Fprintf(&b, `<text x="%d" y="22" font-family="sans-serif" font-size="15" font-weight="bold">Makespan = %d</text>`+"\n",
		svgLeftMargin, makespan)

	for f, fs := range s {
		top := svgTopMargin + f*(panelHeight+svgPanelGap)
		fmt.Fprintf(&b, `<text x="4" y="%d" font-family="sans-serif" font-size="12">Factory %d</text>`+"\n",
			top-6, f)
		for m, ms := range fs {
			y := top + m*svgRowHeight
			fmt.Fprintf(&b, `<text x="%d" y="%d" font-family="sans-serif" font-size="11">M%d</text>`+"\n",
				svgLeftMargin-26, y+svgBarHeight-4, m)
			for _, slot := range ms {
				x := svgLeftMargin + int(float64(slot.Start)*scale)
				w := int(float64(slot.End-slot.Start) * scale)
				if w < 1 {
					w = 1
				}
				fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="black"/>`+"\n",
					x, y, w, svgBarHeight, svgColor(slot.Job, colors))
			}
		}
	}

	// legend
	lx := svgLeftMargin + svgChartWidth + 16
	for j, color := range colors {
		y := svgTopMargin + j*20
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="12" height="12" fill="%s" stroke="black"/>`+"\n",
			lx, y, color)
		fmt.Fprintf(&b, `<text x="%d" y="%d" font-family="sans-serif" font-size="11">job %d</text>`+"\n",
			lx+18, y+10, j)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func svgColor(job int, colors []string) string {
	if job < len(colors) {
		return colors[job]
	}
	return "#808080"
}
