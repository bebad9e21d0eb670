package interfaces

import (
	"context"

	"fyyur/internal/models"
)

// VenueRepository defines the interface for venue data operations
type VenueRepository interface {
	Create(ctx context.Context, venue *models.Venue) error
	GetByID(ctx context.Context, id int) (*models.Venue, error)
	List(ctx context.Context) ([]models.Venue, error)
	SearchByName(ctx context.Context, term string, caseInsensitive bool) ([]models.Venue, error)
	Update(ctx context.Context, venue *models.Venue) error
	Delete(ctx context.Context, id int) error
}
