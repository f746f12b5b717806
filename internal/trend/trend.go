// Package trend computes summary statistics over a snapshot of the
// check-in log. All functions are pure; callers pass the snapshot they
// want aggregated and may cache results keyed by the store version.
package trend

import (
	"math"
	"sort"

	"lumina/internal/journal"
)

// SeriesSize is the window charted by the stats view.
const SeriesSize = 14

// Point is one charted check-in.
type Point struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// Stats summarizes the whole log. Average is nil when the log is empty.
type Stats struct {
	Count   int      `json:"count"`
	Average *float64 `json:"average"`
}

// Summary returns the entry count and the mean score rounded to one
// decimal. An empty snapshot yields a nil average, never a division by
// zero.
func Summary(entries []journal.Entry) Stats {
	if len(entries) == 0 {
		return Stats{}
	}
	sum := 0
	for _, e := range entries {
		sum += e.Score
	}
	avg := math.Round(float64(sum)/float64(len(entries))*10) / 10
	return Stats{Count: len(entries), Average: &avg}
}

// RecentSeries returns the last n entries by attributed timestamp,
// ascending, each labeled with a short date for the chart axis.
func RecentSeries(entries []journal.Entry, n int) []Point {
	sorted := make([]journal.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp < sorted[j].Timestamp
	})
	if n > 0 && len(sorted) > n {
		sorted = sorted[len(sorted)-n:]
	}

	points := make([]Point, 0, len(sorted))
	for _, e := range sorted {
		points = append(points, Point{
			Date:  e.Time().Format("Jan 2"),
			Score: e.Score,
		})
	}
	return points
}
