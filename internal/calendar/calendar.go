// Package calendar turns an anchor date into the fixed grid of day cells the
// schedule views render. A week grid is always 7 cells; a month grid is
// always 6 rows of 7, padded with the neighboring months' days so the layout
// never jumps between months.
package calendar

import (
	"time"

	"github.com/jinzhu/now"

	"github.com/shiftdesk/shiftdesk/internal/model"
)

// ViewMode selects between the week and month grid
type ViewMode string

const (
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// Cells per row, and rows in a month grid
const (
	daysPerWeek = 7
	monthRows   = 6
)

// Cell is one day in the grid with the shifts starting on that day
type Cell struct {
	Date      time.Time
	InMonth   bool
	IsToday   bool
	Schedules []model.Schedule
}

// Grid is the rendered period: 7 cells in week mode, 42 in month mode
type Grid struct {
	Anchor time.Time
	Mode   ViewMode
	Cells  []Cell
}

// Build creates the grid containing the anchor date. weekStart controls
// which weekday begins each row, and schedules are bucketed into cells by
// their start date.
func Build(anchor time.Time, mode ViewMode, weekStart time.Weekday, schedules []model.Schedule) Grid {
	return build(anchor, mode, weekStart, time.Now(), schedules)
}

func build(anchor time.Time, mode ViewMode, weekStart time.Weekday, today time.Time, schedules []model.Schedule) Grid {
	cfg := &now.Config{WeekStartDay: weekStart, TimeLocation: anchor.Location()}

	var first time.Time
	var count int
	switch mode {
	case ViewWeek:
		first = cfg.With(anchor).BeginningOfWeek()
		count = daysPerWeek
	default:
		monthStart := cfg.With(anchor).BeginningOfMonth()
		first = cfg.With(monthStart).BeginningOfWeek()
		count = daysPerWeek * monthRows
	}

	anchorMonth := anchor.Month()
	cells := make([]Cell, count)
	for i := range cells {
		day := first.AddDate(0, 0, i)
		cells[i] = Cell{
			Date:      day,
			InMonth:   mode == ViewWeek || day.Month() == anchorMonth,
			IsToday:   sameDate(day, today),
			Schedules: onDay(schedules, day),
		}
	}

	return Grid{Anchor: anchor, Mode: mode, Cells: cells}
}

// Next returns the anchor advanced by one period of the view mode
func Next(anchor time.Time, mode ViewMode) time.Time {
	if mode == ViewWeek {
		return anchor.AddDate(0, 0, daysPerWeek)
	}
	return anchor.AddDate(0, 1, 0)
}

// Prev returns the anchor moved back by one period of the view mode
func Prev(anchor time.Time, mode ViewMode) time.Time {
	if mode == ViewWeek {
		return anchor.AddDate(0, 0, -daysPerWeek)
	}
	return anchor.AddDate(0, -1, 0)
}

// Title returns the heading for the grid's period
func (g Grid) Title() string {
	if g.Mode == ViewWeek {
		start := g.Cells[0].Date
		end := g.Cells[len(g.Cells)-1].Date
		if start.Month() == end.Month() {
			return start.Format("Jan 2") + " - " + end.Format("2, 2006")
		}
		return start.Format("Jan 2") + " - " + end.Format("Jan 2, 2006")
	}
	return g.Anchor.Format("January 2006")
}

func sameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func onDay(schedules []model.Schedule, day time.Time) []model.Schedule {
	var matched []model.Schedule
	for i := range schedules {
		if schedules[i].OnDate(day) {
			matched = append(matched, schedules[i])
		}
	}
	return matched
}
