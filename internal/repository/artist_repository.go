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

const artistColumns = `id, name, city, state, phone, genres, image_link, facebook_link`

type artistRepository struct {
	db DBTX
}

func NewArtistRepository(db DBTX) interfaces.ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) Create(ctx context.Context, artist *models.Artist) error {
	query := `INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link)
			  VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		artist.Name, artist.City, artist.State, nullString(artist.Phone),
		pq.Array(artist.Genres), nullString(artist.ImageLink), nullString(artist.FacebookLink),
	).Scan(&artist.ID)
	if err != nil {
		log.Printf("Error creating artist: %v", err)
		return fmt.Errorf("create artist: %w", err)
	}
	return nil
}

func (r *artistRepository) GetByID(ctx context.Context, id int) (*models.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`

	artist, err := scanArtist(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, fmt.Errorf("get artist by id: %w", err)
	}
	return artist, nil
}

func (r *artistRepository) List(ctx context.Context) ([]models.Artist, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+artistColumns+` FROM artists ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()
	return collectArtists(rows)
}

func (r *artistRepository) SearchByName(ctx context.Context, term string, caseInsensitive bool) ([]models.Artist, error) {
	op := "LIKE"
	if caseInsensitive {
		op = "ILIKE"
	}
	query := `SELECT ` + artistColumns + ` FROM artists WHERE name ` + op + ` $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, likePattern(term))
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	defer rows.Close()
	return collectArtists(rows)
}

func (r *artistRepository) Update(ctx context.Context, artist *models.Artist) error {
	query := `UPDATE artists SET name = $1, city = $2, state = $3, phone = $4, genres = $5,
			  image_link = $6, facebook_link = $7
			  WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		artist.Name, artist.City, artist.State, nullString(artist.Phone),
		pq.Array(artist.Genres), nullString(artist.ImageLink), nullString(artist.FacebookLink),
		artist.ID,
	)
	if err != nil {
		log.Printf("Error updating artist %d: %v", artist.ID, err)
		return fmt.Errorf("update artist: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrArtistNotFound
	}
	return nil
}

// Delete removes an artist that has no shows. An artist with shows is left in
// place and a *interfaces.DeletionBlockedError is returned.
func (r *artistRepository) Delete(ctx context.Context, id int) error {
	var showCount int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM shows WHERE artist_id = $1`, id).Scan(&showCount); err != nil {
		log.Printf("Error checking artist references: %v", err)
		return fmt.Errorf("delete artist: %w", err)
	}
	if showCount > 0 {
		return &interfaces.DeletionBlockedError{
			Resource:   "artist",
			References: map[string]int64{"shows": showCount},
		}
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		log.Printf("Error deleting artist %d: %v", id, err)
		return fmt.Errorf("delete artist: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrArtistNotFound
	}
	return nil
}

func scanArtist(row rowScanner) (*models.Artist, error) {
	var artist models.Artist
	var phone, imageLink, facebookLink sql.NullString
	err := row.Scan(
		&artist.ID, &artist.Name, &artist.City, &artist.State, &phone,
		pq.Array(&artist.Genres), &imageLink, &facebookLink,
	)
	if err != nil {
		return nil, err
	}
	artist.Phone = phone.String
	artist.ImageLink = imageLink.String
	artist.FacebookLink = facebookLink.String
	return &artist, nil
}

func collectArtists(rows *sql.Rows) ([]models.Artist, error) {
	artists := []models.Artist{}
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan artist: %w", err)
		}
		artists = append(artists, *artist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artists: %w", err)
	}
	return artists, nil
}
