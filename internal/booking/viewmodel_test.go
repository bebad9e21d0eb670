package booking

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/models"
)

func detail(id, artistID, venueID int, start time.Time) models.ShowDetail {
	return models.ShowDetail{
		Show:            models.Show{ID: id, ArtistID: artistID, VenueID: venueID, StartTime: start},
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "https://img.example/artist.jpg",
		VenueName:       "The Musical Hop",
		VenueImageLink:  "https://img.example/venue.jpg",
	}
}

func TestVenueDetail(t *testing.T) {
	a := NewAssembler(NewFormatter(time.UTC))
	v := models.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", Genres: []string{"Jazz"}}
	shows := []models.ShowDetail{
		detail(1, 4, 1, time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)),
		detail(2, 5, 1, reference.Add(24*time.Hour)),
	}

	d := a.VenueDetail(v, shows, reference)

	assert.Equal(t, 1, d.PastShowsCount)
	assert.Equal(t, 1, d.UpcomingShowsCount)
	require.Len(t, d.PastShows, 1)
	assert.Equal(t, ArtistShow{
		ArtistID:        4,
		ArtistName:      "Guns N Petals",
		ArtistImageLink: "https://img.example/artist.jpg",
		StartTime:       "Tu 05, 21, 2019 9:30PM",
	}, d.PastShows[0])
	assert.Equal(t, 5, d.UpcomingShows[0].ArtistID)
}

func TestVenueDetailJSONShape(t *testing.T) {
	a := NewAssembler(NewFormatter(time.UTC))
	d := a.VenueDetail(models.Venue{ID: 9, Name: "Empty"}, nil, reference)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	for _, key := range []string{
		"id", "name", "genres", "address", "city", "state", "phone", "website",
		"facebook_link", "seeking_talent", "seeking_description", "image_link",
		"past_shows", "upcoming_shows", "past_shows_count", "upcoming_shows_count",
	} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, []any{}, m["past_shows"])
	assert.Equal(t, []any{}, m["genres"])
}

func TestArtistDetailUsesVenueKeysForPastShows(t *testing.T) {
	a := NewAssembler(NewFormatter(time.UTC))
	ar := models.Artist{ID: 4, Name: "Guns N Petals", Genres: []string{"Rock n Roll"}}
	shows := []models.ShowDetail{
		detail(1, 4, 1, reference.Add(-time.Hour)),
		detail(2, 4, 3, reference.Add(time.Hour)),
	}

	d := a.ArtistDetail(ar, shows, reference)

	require.Len(t, d.PastShows, 1)
	require.Len(t, d.UpcomingShows, 1)
	assert.Equal(t, 1, d.PastShows[0].VenueID)
	assert.Equal(t, "The Musical Hop", d.PastShows[0].VenueName)
	assert.Equal(t, 3, d.UpcomingShows[0].VenueID)

	b, err := json.Marshal(d.PastShows[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"venue_id":1,"venue_name":"The Musical Hop","venue_image_link":"https://img.example/venue.jpg","start_time":"Fr 03, 15, 2024 11:00AM"}`, string(b))
}

func TestShowsNewestFirst(t *testing.T) {
	a := NewAssembler(NewFormatter(time.UTC))
	shows := []models.ShowDetail{
		detail(1, 1, 1, reference.Add(-time.Hour)),
		detail(2, 1, 1, reference.Add(2*time.Hour)),
		detail(3, 1, 1, reference.Add(time.Hour)),
	}

	out := a.Shows(shows)

	require.Len(t, out, 3)
	assert.Equal(t, "Fr 03, 15, 2024 2:00PM", out[0].StartTime)
	assert.Equal(t, "Fr 03, 15, 2024 1:00PM", out[1].StartTime)
	assert.Equal(t, "Fr 03, 15, 2024 11:00AM", out[2].StartTime)
	assert.Equal(t, "The Musical Hop", out[0].VenueName)
	// input is left untouched
	assert.Equal(t, 1, shows[0].ID)
}

func TestArtists(t *testing.T) {
	a := NewAssembler(NewFormatter(time.UTC))
	out := a.Artists([]models.Artist{{ID: 4, Name: "Guns N Petals", City: "San Francisco"}, {ID: 5, Name: "Matt Quevedo"}})
	assert.Equal(t, []ArtistListing{{ID: 4, Name: "Guns N Petals"}, {ID: 5, Name: "Matt Quevedo"}}, out)
}

func TestVenueSearch(t *testing.T) {
	a := NewAssembler(NewFormatter(time.UTC))
	venues := []models.Venue{{ID: 1, Name: "Venue A"}, {ID: 2, Name: "MY VENUE"}}
	shows := []models.Show{
		{ID: 1, VenueID: 2, StartTime: reference.Add(time.Hour)},
		{ID: 2, VenueID: 2, StartTime: reference.Add(-time.Hour)},
	}

	res := a.VenueSearch(venues, shows, reference)

	assert.Equal(t, 2, res.Count)
	assert.Equal(t, []Summary{{ID: 1, Name: "Venue A"}, {ID: 2, Name: "MY VENUE", NumUpcomingShows: 1}}, res.Data)
}

func TestArtistSearchEmpty(t *testing.T) {
	a := NewAssembler(NewFormatter(time.UTC))
	res := a.ArtistSearch(nil, nil, reference)
	assert.Equal(t, 0, res.Count)
	assert.NotNil(t, res.Data)
}
