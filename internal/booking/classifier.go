package booking

import (
	"time"

	"fyyur/internal/models"
)

// Partition splits items into past and upcoming relative to reference.
// An item is upcoming only when it starts strictly after reference; an item
// starting exactly at reference has already begun and is past. Relative order
// inside each partition is preserved.
func Partition[T any](items []T, startOf func(T) time.Time, reference time.Time) (past, upcoming []T) {
	for _, item := range items {
		if startOf(item).After(reference) {
			upcoming = append(upcoming, item)
		} else {
			past = append(past, item)
		}
	}
	return past, upcoming
}

// CountUpcoming returns how many items start strictly after reference.
func CountUpcoming[T any](items []T, startOf func(T) time.Time, reference time.Time) int {
	_, upcoming := Partition(items, startOf, reference)
	return len(upcoming)
}

// PartitionShows is Partition for stored shows.
func PartitionShows(shows []models.Show, reference time.Time) (past, upcoming []models.Show) {
	return Partition(shows, showStart, reference)
}

func showStart(s models.Show) time.Time { return s.StartTime }

func showDetailStart(s models.ShowDetail) time.Time { return s.StartTime }
