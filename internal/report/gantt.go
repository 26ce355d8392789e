package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flexShop/internal/flexshop"
)

var (
	ganttTitleStyle   = lipgloss.NewStyle().Bold(true)
	ganttFactoryStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	ganttAxisStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// GanttOptions configures the terminal chart. Colors must hold one hex
// color per job index appearing in the schedule (see Palette).
type GanttOptions struct {
	Width  int // bar area width in cells; <= 0 picks a default
	Colors []string
}

// Gantt renders the schedule as a terminal chart: one bar row per machine,
// slots drawn as job-colored block runs scaled to Width, one section per
// factory, a makespan title and a job legend.
func Gantt(s flexshop.Schedule, opts GanttOptions) string {
	width := opts.Width
	if width <= 0 {
		width = 72
	}
	makespan := s.Makespan()

	var b strings.Builder
	b.WriteString(ganttTitleStyle.Render(fmt.Sprintf("Makespan = %d", makespan)))
	b.WriteByte('\n')

	for f, fs := range s {
		b.WriteString(ganttFactoryStyle.Render(fmt.Sprintf("Factory %d", f)))
		b.WriteByte('\n')
		for m, ms := range fs {
			b.WriteString(ganttAxisStyle.Render(fmt.Sprintf("M%d ", m)))
			b.WriteString(renderRow(ms, makespan, width, opts.Colors))
			b.WriteByte('\n')
		}
	}

	b.WriteString(legend(s, opts.Colors))
	return b.String()
}

// renderRow rasterizes one machine schedule into width cells; cell value
// is the occupying job or -1 when idle.
func renderRow(ms flexshop.MachineSchedule, makespan, width int, colors []string) string {
	cells := make([]int, width)
	for i := range cells {
		cells[i] = -1
	}
	if makespan > 0 {
		for _, slot := range ms {
			from := slot.Start * width / makespan
			to := slot.End * width / makespan
			if to == from {
				to = from + 1 // never drop a short slot entirely
			}
			for x := from; x < to && x < width; x++ {
				cells[x] = slot.Job
			}
		}
	}

	var b strings.Builder
	for i := 0; i < width; {
		job := cells[i]
		run := i
		for run < width && cells[run] == job {
			run++
		}
		if job < 0 {
			b.WriteString(strings.Repeat(" ", run-i))
		} else {
			b.WriteString(jobStyle(job, colors).Render(strings.Repeat("█", run-i)))
		}
		i = run
	}
	return b.String()
}

func legend(s flexshop.Schedule, colors []string) string {
	jobs := map[int]bool{}
	maxJob := -1
	for _, fs := range s {
		for _, ms := range fs {
			for _, slot := range ms {
				jobs[slot.Job] = true
				if slot.Job > maxJob {
					maxJob = slot.Job
				}
			}
		}
	}
	if maxJob < 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(ganttAxisStyle.Render("Jobs:"))
	for j := 0; j <= maxJob; j++ {
		if !jobs[j] {
			continue
		}
		b.WriteString(" ")
		b.WriteString(jobStyle(j, colors).Render("■"))
		fmt.Fprintf(&b, " %d", j)
	}
	b.WriteByte('\n')
	return b.String()
}

func jobStyle(job int, colors []string) lipgloss.Style {
	if job < len(colors) {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colors[job]))
	}
	return lipgloss.NewStyle()
}
