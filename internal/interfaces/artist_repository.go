package interfaces

import (
	"context"

	"fyyur/internal/models"
)

// ArtistRepository defines the interface for artist data operations
type ArtistRepository interface {
	Create(ctx context.Context, artist *models.Artist) error
	GetByID(ctx context.Context, id int) (*models.Artist, error)
	List(ctx context.Context) ([]models.Artist, error)
	SearchByName(ctx context.Context, term string, caseInsensitive bool) ([]models.Artist, error)
	Update(ctx context.Context, artist *models.Artist) error
	Delete(ctx context.Context, id int) error
}
