package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

const showDetailSelect = `SELECT s.id, s.artist_id, s.venue_id, s.start_time,
	a.name, COALESCE(a.image_link, ''), v.name, COALESCE(v.image_link, '')
	FROM shows s
	JOIN artists a ON a.id = s.artist_id
	JOIN venues v ON v.id = s.venue_id`

type showRepository struct {
	db DBTX
}

func NewShowRepository(db DBTX) interfaces.ShowRepository {
	return &showRepository{db: db}
}

// Create inserts a show after checking that its artist and venue exist. A
// zero StartTime is left to the column default.
func (r *showRepository) Create(ctx context.Context, show *models.Show) error {
	if err := r.requireExists(ctx, "artists", "artist", show.ArtistID); err != nil {
		return err
	}
	if err := r.requireExists(ctx, "venues", "venue", show.VenueID); err != nil {
		return err
	}

	var err error
	if show.StartTime.IsZero() {
		err = r.db.QueryRowContext(ctx,
			`INSERT INTO shows (artist_id, venue_id) VALUES ($1, $2) RETURNING id, start_time`,
			show.ArtistID, show.VenueID,
		).Scan(&show.ID, &show.StartTime)
	} else {
		err = r.db.QueryRowContext(ctx,
			`INSERT INTO shows (artist_id, venue_id, start_time) VALUES ($1, $2, $3) RETURNING id, start_time`,
			show.ArtistID, show.VenueID, show.StartTime,
		).Scan(&show.ID, &show.StartTime)
	}
	if err != nil {
		log.Printf("Error creating show: %v", err)
		if refErr := asReferentialError(err, artistVenueRef{show.ArtistID, show.VenueID}); refErr != err {
			return refErr
		}
		return fmt.Errorf("create show: %w", err)
	}
	return nil
}

func (r *showRepository) requireExists(ctx context.Context, table, resource string, id int) error {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM "+table+" WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check %s exists: %w", resource, err)
	}
	if !exists {
		return &interfaces.ReferentialError{Resource: resource, ID: id}
	}
	return nil
}

func (r *showRepository) GetByID(ctx context.Context, id int) (*models.Show, error) {
	var show models.Show
	err := r.db.QueryRowContext(ctx,
		`SELECT id, artist_id, venue_id, start_time FROM shows WHERE id = $1`, id,
	).Scan(&show.ID, &show.ArtistID, &show.VenueID, &show.StartTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrShowNotFound
		}
		return nil, fmt.Errorf("get show by id: %w", err)
	}
	return &show, nil
}

func (r *showRepository) List(ctx context.Context) ([]models.Show, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, artist_id, venue_id, start_time FROM shows ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	defer rows.Close()

	shows := []models.Show{}
	for rows.Next() {
		var show models.Show
		if err := rows.Scan(&show.ID, &show.ArtistID, &show.VenueID, &show.StartTime); err != nil {
			return nil, fmt.Errorf("scan show: %w", err)
		}
		shows = append(shows, show)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shows: %w", err)
	}
	return shows, nil
}

func (r *showRepository) ListDetailed(ctx context.Context) ([]models.ShowDetail, error) {
	return r.listDetails(ctx, showDetailSelect+` ORDER BY s.start_time DESC, s.id`)
}

func (r *showRepository) ListByVenue(ctx context.Context, venueID int) ([]models.ShowDetail, error) {
	return r.listDetails(ctx, showDetailSelect+` WHERE s.venue_id = $1 ORDER BY s.start_time, s.id`, venueID)
}

func (r *showRepository) ListByArtist(ctx context.Context, artistID int) ([]models.ShowDetail, error) {
	return r.listDetails(ctx, showDetailSelect+` WHERE s.artist_id = $1 ORDER BY s.start_time, s.id`, artistID)
}

func (r *showRepository) listDetails(ctx context.Context, query string, args ...any) ([]models.ShowDetail, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list show details: %w", err)
	}
	defer rows.Close()

	shows := []models.ShowDetail{}
	for rows.Next() {
		var s models.ShowDetail
		if err := rows.Scan(
			&s.ID, &s.ArtistID, &s.VenueID, &s.StartTime,
			&s.ArtistName, &s.ArtistImageLink, &s.VenueName, &s.VenueImageLink,
		); err != nil {
			return nil, fmt.Errorf("scan show detail: %w", err)
		}
		shows = append(shows, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate show details: %w", err)
	}
	return shows, nil
}
