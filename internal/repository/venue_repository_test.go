package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"fyyur/internal/interfaces"
	"fyyur/internal/models"
)

var venueCols = []string{
	"id", "name", "city", "state", "address", "phone", "image_link", "genres",
	"facebook_link", "website", "seeking_talent", "seeking_description",
}

func TestVenueCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("INSERT INTO venues").
		WithArgs("The Musical Hop", "San Francisco", "CA", "1015 Folsom Street",
			"123-123-1234", nil, sqlmock.AnyArg(), nil, nil, true, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	venue := &models.Venue{
		Name: "The Musical Hop", City: "San Francisco", State: "CA", Address: "1015 Folsom Street",
		Phone: "123-123-1234", Genres: []string{"Jazz"}, SeekingTalent: true,
	}
	if err := NewVenueRepository(db).Create(context.Background(), venue); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if venue.ID != 7 {
		t.Fatalf("expected id 7, got %d", venue.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestVenueGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM venues WHERE id = \$1`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(venueCols).AddRow(
			1, "The Musical Hop", "San Francisco", "CA", "1015 Folsom Street", "123-123-1234",
			nil, "{Jazz,Reggae,\"Rock n Roll\"}", nil, "https://www.themusicalhop.com", nil, nil,
		))

	venue, err := NewVenueRepository(db).GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if venue.Name != "The Musical Hop" || venue.Phone != "123-123-1234" || venue.ImageLink != "" {
		t.Fatalf("unexpected venue %+v", venue)
	}
	if len(venue.Genres) != 3 || venue.Genres[2] != "Rock n Roll" {
		t.Fatalf("unexpected genres %q", venue.Genres)
	}
	if !venue.SeekingTalent {
		t.Fatalf("expected NULL seeking_talent to read as true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestVenueGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM venues WHERE id").WithArgs(99).WillReturnRows(sqlmock.NewRows(venueCols))

	_, err = NewVenueRepository(db).GetByID(context.Background(), 99)
	if !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}
}

func TestVenueSearchByName(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`WHERE name ILIKE \$1`).
		WithArgs("%venue%").
		WillReturnRows(sqlmock.NewRows(venueCols).
			AddRow(1, "Venue A", "Austin", "TX", "1 Main", nil, nil, "{Jazz}", nil, nil, true, nil).
			AddRow(2, "MY VENUE", "Austin", "TX", "2 Main", nil, nil, "{Pop}", nil, nil, false, nil))

	venues, err := NewVenueRepository(db).SearchByName(context.Background(), "venue", true)
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(venues) != 2 || venues[1].Name != "MY VENUE" || venues[1].SeekingTalent {
		t.Fatalf("unexpected venues %+v", venues)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestVenueSearchCaseSensitive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`WHERE name LIKE \$1`).
		WithArgs(`%50\%\_off%`).
		WillReturnRows(sqlmock.NewRows(venueCols))

	venues, err := NewVenueRepository(db).SearchByName(context.Background(), "50%_off", false)
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if venues == nil || len(venues) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", venues)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestVenueUpdateNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE venues SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewVenueRepository(db).Update(context.Background(), &models.Venue{ID: 3, Name: "x"})
	if !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}
}

func TestVenueDeleteBlockedByShows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM shows WHERE venue_id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	err = NewVenueRepository(db).Delete(context.Background(), 1)

	var blocked *interfaces.DeletionBlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("expected DeletionBlockedError, got %v", err)
	}
	if blocked.References["shows"] != 2 {
		t.Fatalf("expected 2 show references, got %v", blocked.References)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestVenueDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM shows WHERE venue_id = $1")).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM venues WHERE id = $1")).
		WithArgs(4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := NewVenueRepository(db).Delete(context.Background(), 4); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestVenueDeleteMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("DELETE FROM venues").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := NewVenueRepository(db).Delete(context.Background(), 5); !errors.Is(err, ErrVenueNotFound) {
		t.Fatalf("expected ErrVenueNotFound, got %v", err)
	}
}
