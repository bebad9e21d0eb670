package interfaces

import (
	"context"
	"io"

	"fyyur/internal/booking"
	"fyyur/internal/models"
)

// VenueService is the venue side of the booking use cases.
type VenueService interface {
	VenueAreas(ctx context.Context) ([]booking.Area, error)
	SearchVenues(ctx context.Context, term string) (booking.SearchResult, error)
	VenueDetail(ctx context.Context, id int) (booking.VenueDetail, error)
	GetVenue(ctx context.Context, id int) (*models.Venue, error)
	CreateVenue(ctx context.Context, form models.VenueForm) (*models.Venue, error)
	UpdateVenue(ctx context.Context, id int, form models.VenueForm) (*models.Venue, error)
	DeleteVenue(ctx context.Context, id int) (*models.Venue, error)
}

type ArtistService interface {
	ListArtists(ctx context.Context) ([]booking.ArtistListing, error)
	SearchArtists(ctx context.Context, term string) (booking.SearchResult, error)
	ArtistDetail(ctx context.Context, id int) (booking.ArtistDetail, error)
	GetArtist(ctx context.Context, id int) (*models.Artist, error)
	CreateArtist(ctx context.Context, form models.ArtistForm) (*models.Artist, error)
	UpdateArtist(ctx context.Context, id int, form models.ArtistForm) (*models.Artist, error)
	DeleteArtist(ctx context.Context, id int) (*models.Artist, error)
}

type ShowService interface {
	ListShows(ctx context.Context) ([]booking.ShowListing, error)
	CreateShow(ctx context.Context, form models.ShowForm) (*models.Show, error)
	// DefaultStartTime is the value the new show form starts with.
	DefaultStartTime() string
}

// ImageStore persists an uploaded image and returns its public URL.
type ImageStore interface {
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error)
}
