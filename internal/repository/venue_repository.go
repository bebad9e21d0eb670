package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/lib/pq"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

const venueColumns = `id, name, city, state, address, phone, image_link, genres,
	facebook_link, website, seeking_talent, seeking_description`

type venueRepository struct {
	db DBTX
}

func NewVenueRepository(db DBTX) interfaces.VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) Create(ctx context.Context, venue *models.Venue) error {
	query := `INSERT INTO venues (name, city, state, address, phone, image_link, genres,
			  facebook_link, website, seeking_talent, seeking_description)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		venue.Name, venue.City, venue.State, venue.Address,
		nullString(venue.Phone), nullString(venue.ImageLink), pq.Array(venue.Genres),
		nullString(venue.FacebookLink), nullString(venue.Website),
		venue.SeekingTalent, nullString(venue.SeekingDescription),
	).Scan(&venue.ID)
	if err != nil {
		log.Printf("Error creating venue: %v", err)
		return fmt.Errorf("create venue: %w", err)
	}
	return nil
}

func (r *venueRepository) GetByID(ctx context.Context, id int) (*models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	venue, err := scanVenue(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, fmt.Errorf("get venue by id: %w", err)
	}
	return venue, nil
}

func (r *venueRepository) List(ctx context.Context) ([]models.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list venues: %w", err)
	}
	defer rows.Close()
	return collectVenues(rows)
}

func (r *venueRepository) SearchByName(ctx context.Context, term string, caseInsensitive bool) ([]models.Venue, error) {
	op := "LIKE"
	if caseInsensitive {
		op = "ILIKE"
	}
	query := `SELECT ` + venueColumns + ` FROM venues WHERE name ` + op + ` $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, likePattern(term))
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	defer rows.Close()
	return collectVenues(rows)
}

func (r *venueRepository) Update(ctx context.Context, venue *models.Venue) error {
	query := `UPDATE venues SET name = $1, city = $2, state = $3, address = $4, phone = $5,
			  image_link = $6, genres = $7, facebook_link = $8, website = $9,
			  seeking_talent = $10, seeking_description = $11
			  WHERE id = $12`

	result, err := r.db.ExecContext(ctx, query,
		venue.Name, venue.City, venue.State, venue.Address,
		nullString(venue.Phone), nullString(venue.ImageLink), pq.Array(venue.Genres),
		nullString(venue.FacebookLink), nullString(venue.Website),
		venue.SeekingTalent, nullString(venue.SeekingDescription),
		venue.ID,
	)
	if err != nil {
		log.Printf("Error updating venue %d: %v", venue.ID, err)
		return fmt.Errorf("update venue: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrVenueNotFound
	}
	return nil
}

// Delete removes a venue that no show references. A venue with shows is left
// in place and a *interfaces.DeletionBlockedError is returned.
func (r *venueRepository) Delete(ctx context.Context, id int) error {
	var showCount int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE venue_id = $1`, id).Scan(&showCount); err != nil {
		log.Printf("Error checking venue references: %v", err)
		return fmt.Errorf("delete venue: %w", err)
	}
	if showCount > 0 {
		return &interfaces.DeletionBlockedError{
			Resource:   "venue",
			References: map[string]int64{"shows": showCount},
		}
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting venue %d: %v", id, err)
		return fmt.Errorf("delete venue: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrVenueNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenue(row rowScanner) (*models.Venue, error) {
	var venue models.Venue
	var phone, imageLink, facebookLink, website, desc sql.NullString
	var seekingTalent sql.NullBool
	err := row.Scan(
		&venue.ID, &venue.Name, &venue.City, &venue.State, &venue.Address,
		&phone, &imageLink, pq.Array(&venue.Genres),
		&facebookLink, &website, &seekingTalent, &desc,
	)
	if err != nil {
		return nil, err
	}
	venue.Phone = phone.String
	venue.ImageLink = imageLink.String
	venue.FacebookLink = facebookLink.String
	venue.Website = website.String
	venue.SeekingDescription = desc.String
	// a NULL seeking_talent keeps the column default
	venue.SeekingTalent = !seekingTalent.Valid || seekingTalent.Bool
	return &venue, nil
}

func collectVenues(rows *sql.Rows) ([]models.Venue, error) {
	venues := []models.Venue{}
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venue: %w", err)
		}
		venues = append(venues, *venue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate venues: %w", err)
	}
	return venues, nil
}
