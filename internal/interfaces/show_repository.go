package interfaces

import (
	"context"

	"fyyur/internal/models"
)

// ShowRepository defines the interface for show data operations. Listing
// methods join the artist and venue rows instead of loading object graphs.
type ShowRepository interface {
	Create(ctx context.Context, show *models.Show) error
	GetByID(ctx context.Context, id int) (*models.Show, error)
	List(ctx context.Context) ([]models.Show, error)
	ListDetailed(ctx context.Context) ([]models.ShowDetail, error)
	ListByVenue(ctx context.Context, venueID int) ([]models.ShowDetail, error)
	ListByArtist(ctx context.Context, artistID int) ([]models.ShowDetail, error)
}
