package booking

import (
	"time"

	"fyyur/internal/models"
)

// Summary is the short form of a venue or artist used by listings and search.
type Summary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area is one (city, state) group of the venue listing.
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

type location struct {
	city  string
	state string
}

// GroupByLocation builds one Area per distinct (city, state) pair and places
// every venue in the area matching its own pair exactly. Matching is
// case-sensitive with no normalization. Areas come out in the order their
// first venue appears; callers must not rely on any particular order.
func GroupByLocation(venues []models.Venue, shows []models.Show, reference time.Time) []Area {
	upcoming := upcomingByOwner(shows, func(s models.Show) int { return s.VenueID }, reference)

	index := make(map[location]int, len(venues))
	areas := make([]Area, 0)
	for _, v := range venues {
		key := location{city: v.City, state: v.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, Area{City: v.City, State: v.State, Venues: []Summary{}})
		}
		areas[i].Venues = append(areas[i].Venues, Summary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: upcoming[v.ID],
		})
	}
	return areas
}

// upcomingByOwner counts upcoming shows per owner id, where owner is the venue
// or the artist depending on ownerOf.
func upcomingByOwner(shows []models.Show, ownerOf func(models.Show) int, reference time.Time) map[int]int {
	byOwner := make(map[int][]models.Show)
	for _, s := range shows {
		id := ownerOf(s)
		byOwner[id] = append(byOwner[id], s)
	}
	counts := make(map[int]int, len(byOwner))
	for id, owned := range byOwner {
		counts[id] = CountUpcoming(owned, showStart, reference)
	}
	return counts
}
