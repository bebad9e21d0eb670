package services

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	"fyyur/internal/booking"
	"fyyur/internal/db"
	"fyyur/internal/interfaces"
	"fyyur/internal/repository"
	"fyyur/internal/validation"
)

// BookingService implements the venue, artist and show use cases. Every call
// runs in its own transaction: reads share one snapshot, writes commit once
// or not at all.
type BookingService struct {
	db        *sql.DB
	validate  *validator.Validate
	assembler *booking.Assembler
	now       func() time.Time
}

var (
	_ interfaces.VenueService  = (*BookingService)(nil)
	_ interfaces.ArtistService = (*BookingService)(nil)
	_ interfaces.ShowService   = (*BookingService)(nil)
)

func NewBookingService(conn *sql.DB, loc *time.Location) *BookingService {
	return &BookingService{
		db:        conn,
		validate:  validation.New(),
		assembler: booking.NewAssembler(booking.NewFormatter(loc)),
		now:       time.Now,
	}
}

// SetClock replaces the source of the reference instant used to split past
// and upcoming shows.
func (s *BookingService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// repos is the set of repositories bound to one transaction.
type repos struct {
	venues  interfaces.VenueRepository
	artists interfaces.ArtistRepository
	shows   interfaces.ShowRepository
}

func bind(tx *sql.Tx) repos {
	return repos{
		venues:  repository.NewVenueRepository(tx),
		artists: repository.NewArtistRepository(tx),
		shows:   repository.NewShowRepository(tx),
	}
}

func (s *BookingService) read(ctx context.Context, op string, fn func(r repos) error) error {
	err := db.WithTx(ctx, s.db, &sql.TxOptions{ReadOnly: true}, func(tx *sql.Tx) error {
		return fn(bind(tx))
	})
	return classify(op, err)
}

func (s *BookingService) write(ctx context.Context, op string, fn func(r repos) error) error {
	err := db.WithTx(ctx, s.db, nil, func(tx *sql.Tx) error {
		return fn(bind(tx))
	})
	return classify(op, err)
}

// classify passes the error taxonomy through and wraps anything else in a
// StorageError for op.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var (
		verr *interfaces.ValidationError
		rerr *interfaces.ReferentialError
		derr *interfaces.DeletionBlockedError
	)
	switch {
	case errors.Is(err, interfaces.ErrNotFound):
		return err
	case errors.As(err, &verr), errors.As(err, &rerr), errors.As(err, &derr):
		log.Printf("%s rejected: %v", op, err)
		return err
	}
	log.Printf("%s failed: %v", op, err)
	return &interfaces.StorageError{Op: op, Err: err}
}
