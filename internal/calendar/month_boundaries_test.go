package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonthBoundaries(t *testing.T) {
	cases := []struct {
		name      string
		anchor    time.Time
		weekStart time.Weekday
		firstCell time.Time
		lastCell  time.Time
	}{
		{
			name:      "february leap year",
			anchor:    date(2024, time.February, 15),
			weekStart: time.Monday,
			firstCell: date(2024, time.January, 29),
			lastCell:  date(2024, time.March, 10),
		},
		{
			name:      "month starting on week start",
			anchor:    date(2026, time.June, 10), // Jun 1 2026 is a Monday
			weekStart: time.Monday,
			firstCell: date(2026, time.June, 1),
			lastCell:  date(2026, time.July, 12),
		},
		{
			name:      "december year rollover",
			anchor:    date(2026, time.December, 25),
			weekStart: time.Monday,
			firstCell: date(2026, time.November, 30),
			lastCell:  date(2027, time.January, 10),
		},
		{
			name:      "sunday week start",
			anchor:    date(2026, time.August, 10),
			weekStart: time.Sunday,
			firstCell: date(2026, time.July, 26), // Aug 1 2026 is a Saturday
			lastCell:  date(2026, time.September, 5),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid := build(tc.anchor, ViewMonth, tc.weekStart, tc.anchor, nil)
			require.Len(t, grid.Cells, 42)
			require.True(t, sameDate(grid.Cells[0].Date, tc.firstCell),
				"first cell %s, want %s", grid.Cells[0].Date.Format("2006-01-02"), tc.firstCell.Format("2006-01-02"))
			require.True(t, sameDate(grid.Cells[41].Date, tc.lastCell),
				"last cell %s, want %s", grid.Cells[41].Date.Format("2006-01-02"), tc.lastCell.Format("2006-01-02"))
		})
	}
}
