package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/models"
)

var reference = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func show(id int, start time.Time) models.Show {
	return models.Show{ID: id, ArtistID: 1, VenueID: 1, StartTime: start}
}

func TestPartitionShows(t *testing.T) {
	shows := []models.Show{
		show(1, reference.Add(-48*time.Hour)),
		show(2, reference.Add(time.Hour)),
		show(3, reference.Add(-time.Minute)),
		show(4, reference.Add(72*time.Hour)),
	}

	past, upcoming := PartitionShows(shows, reference)

	require.Len(t, past, 2)
	require.Len(t, upcoming, 2)
	assert.Equal(t, []int{1, 3}, ids(past))
	assert.Equal(t, []int{2, 4}, ids(upcoming))
}

func TestPartitionShowsAtReferenceIsPast(t *testing.T) {
	past, upcoming := PartitionShows([]models.Show{show(7, reference)}, reference)

	assert.Equal(t, []int{7}, ids(past))
	assert.Empty(t, upcoming)
}

func TestPartitionIsTotal(t *testing.T) {
	var shows []models.Show
	for i := -10; i <= 10; i++ {
		shows = append(shows, show(i+100, reference.Add(time.Duration(i)*time.Minute)))
	}

	past, upcoming := PartitionShows(shows, reference)

	assert.Equal(t, len(shows), len(past)+len(upcoming))
	seen := map[int]int{}
	for _, s := range append(past, upcoming...) {
		seen[s.ID]++
	}
	for _, s := range shows {
		assert.Equal(t, 1, seen[s.ID], "show %d", s.ID)
	}
}

func TestPartitionEmpty(t *testing.T) {
	past, upcoming := PartitionShows(nil, reference)
	assert.Empty(t, past)
	assert.Empty(t, upcoming)
}

func TestCountUpcoming(t *testing.T) {
	shows := []models.Show{
		show(1, reference.Add(time.Second)),
		show(2, reference),
		show(3, reference.Add(-time.Second)),
	}
	assert.Equal(t, 1, CountUpcoming(shows, showStart, reference))
}

func ids(shows []models.Show) []int {
	out := make([]int, 0, len(shows))
	for _, s := range shows {
		out = append(out, s.ID)
	}
	return out
}
