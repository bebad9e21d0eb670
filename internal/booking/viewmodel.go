package booking

import (
	"sort"
	"time"

	"fyyur/internal/models"
)

// ArtistShow is a show entry on a venue page.
type ArtistShow struct {
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueShow is a show entry on an artist page. Past and upcoming entries use
// the same venue_* keys.
type VenueShow struct {
	VenueID        int    `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

type VenueDetail struct {
	models.Venue
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	models.Artist
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// ShowListing is one row of the all-shows page.
type ShowListing struct {
	VenueID         int    `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

type ArtistListing struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type SearchResult struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

// Assembler turns rows into view-models, formatting times with Formatter.
type Assembler struct {
	Formatter Formatter
}

func NewAssembler(f Formatter) *Assembler {
	return &Assembler{Formatter: f}
}

// VenueDetail builds the venue page for v from the shows held at v.
func (a *Assembler) VenueDetail(v models.Venue, shows []models.ShowDetail, reference time.Time) VenueDetail {
	past, upcoming := Partition(shows, showDetailStart, reference)
	d := VenueDetail{
		Venue:         v,
		PastShows:     make([]ArtistShow, 0, len(past)),
		UpcomingShows: make([]ArtistShow, 0, len(upcoming)),
	}
	for _, s := range past {
		d.PastShows = append(d.PastShows, a.artistShow(s))
	}
	for _, s := range upcoming {
		d.UpcomingShows = append(d.UpcomingShows, a.artistShow(s))
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	if d.Genres == nil {
		d.Genres = []string{}
	}
	return d
}

// ArtistDetail builds the artist page for ar from the shows ar plays.
func (a *Assembler) ArtistDetail(ar models.Artist, shows []models.ShowDetail, reference time.Time) ArtistDetail {
	past, upcoming := Partition(shows, showDetailStart, reference)
	d := ArtistDetail{
		Artist:        ar,
		PastShows:     make([]VenueShow, 0, len(past)),
		UpcomingShows: make([]VenueShow, 0, len(upcoming)),
	}
	for _, s := range past {
		d.PastShows = append(d.PastShows, a.venueShow(s))
	}
	for _, s := range upcoming {
		d.UpcomingShows = append(d.UpcomingShows, a.venueShow(s))
	}
	d.PastShowsCount = len(d.PastShows)
	d.UpcomingShowsCount = len(d.UpcomingShows)
	if d.Genres == nil {
		d.Genres = []string{}
	}
	return d
}

// Shows lists every show, newest first. Shows with equal start times keep
// their input order.
func (a *Assembler) Shows(shows []models.ShowDetail) []ShowListing {
	sorted := append([]models.ShowDetail(nil), shows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.After(sorted[j].StartTime)
	})
	out := make([]ShowListing, 0, len(sorted))
	for _, s := range sorted {
		out = append(out, ShowListing{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       a.Formatter.Format(s.StartTime, PresetMedium),
		})
	}
	return out
}

func (a *Assembler) Artists(artists []models.Artist) []ArtistListing {
	out := make([]ArtistListing, 0, len(artists))
	for _, ar := range artists {
		out = append(out, ArtistListing{ID: ar.ID, Name: ar.Name})
	}
	return out
}

// VenueSearch wraps matching venues, counting upcoming shows from shows.
func (a *Assembler) VenueSearch(venues []models.Venue, shows []models.Show, reference time.Time) SearchResult {
	upcoming := upcomingByOwner(shows, func(s models.Show) int { return s.VenueID }, reference)
	data := make([]Summary, 0, len(venues))
	for _, v := range venues {
		data = append(data, Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: upcoming[v.ID]})
	}
	return SearchResult{Count: len(data), Data: data}
}

// ArtistSearch wraps matching artists, counting upcoming shows from shows.
func (a *Assembler) ArtistSearch(artists []models.Artist, shows []models.Show, reference time.Time) SearchResult {
	upcoming := upcomingByOwner(shows, func(s models.Show) int { return s.ArtistID }, reference)
	data := make([]Summary, 0, len(artists))
	for _, ar := range artists {
		data = append(data, Summary{ID: ar.ID, Name: ar.Name, NumUpcomingShows: upcoming[ar.ID]})
	}
	return SearchResult{Count: len(data), Data: data}
}

func (a *Assembler) artistShow(s models.ShowDetail) ArtistShow {
	return ArtistShow{
		ArtistID:        s.ArtistID,
		ArtistName:      s.ArtistName,
		ArtistImageLink: s.ArtistImageLink,
		StartTime:       a.Formatter.Format(s.StartTime, PresetMedium),
	}
}

func (a *Assembler) venueShow(s models.ShowDetail) VenueShow {
	return VenueShow{
		VenueID:        s.VenueID,
		VenueName:      s.VenueName,
		VenueImageLink: s.VenueImageLink,
		StartTime:      a.Formatter.Format(s.StartTime, PresetMedium),
	}
}
