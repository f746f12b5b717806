// Package calendar derives day-level marker cells for the journal's
// week strip and month grid views. It holds no state of its own; cells
// are recomputed from the entry set on every call.
package calendar

import "time"

// HasEntryFunc reports whether a check-in exists on the given day.
type HasEntryFunc func(day time.Time) bool

// DayCell is one renderable day marker.
type DayCell struct {
	Date     time.Time
	Day      int
	Padding  bool
	Today    bool
	Selected bool
	HasEntry bool
}

// weekStripDays is the size of the rolling week-strip window.
const weekStripDays = 21

// WeekStrip returns 21 consecutive day cells centered one week before
// the anchor, so the strip keeps recent history visible with a few
// days of lookahead.
func WeekStrip(anchor, selected, now time.Time, has HasEntryFunc) []DayCell {
	center := startOfDay(anchor).AddDate(0, 0, -7)
	start := center.AddDate(0, 0, -weekStripDays/2)

	cells := make([]DayCell, 0, weekStripDays)
	for i := 0; i < weekStripDays; i++ {
		d := start.AddDate(0, 0, i)
		cells = append(cells, newCell(d, selected, now, has))
	}
	return cells
}

// MonthGrid returns cells for the anchor's calendar month, left-padded
// with empty placeholder cells up to the weekday of the 1st (Sunday
// first). No trailing padding is emitted.
func MonthGrid(anchor, selected, now time.Time, has HasEntryFunc) []DayCell {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := int(first.Weekday())

	cells := make([]DayCell, 0, offset+daysInMonth)
	for i := 0; i < offset; i++ {
		cells = append(cells, DayCell{Padding: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		d := first.AddDate(0, 0, day-1)
		cells = append(cells, newCell(d, selected, now, has))
	}
	return cells
}

func newCell(d, selected, now time.Time, has HasEntryFunc) DayCell {
	return DayCell{
		Date:     d,
		Day:      d.Day(),
		Today:    sameDay(d, now),
		Selected: sameDay(d, selected),
		HasEntry: has != nil && has(d),
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
