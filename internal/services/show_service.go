package services

import (
	"context"
	"strings"
	"time"

	"fyyur/internal/booking"
	"fyyur/internal/interfaces"
	"fyyur/internal/models"
	"fyyur/internal/validation"
)

// startTimeLayout is the form representation of a show start time.
const startTimeLayout = "2006-01-02 15:04:05"

// DefaultStartTime renders the current instant in the display location.
func (s *BookingService) DefaultStartTime() string {
	return s.assembler.Formatter.Format(s.now(), startTimeLayout)
}

// ListShows returns every show, newest first.
func (s *BookingService) ListShows(ctx context.Context) ([]booking.ShowListing, error) {
	var listing []booking.ShowListing
	err := s.read(ctx, "list shows", func(r repos) error {
		shows, err := r.shows.ListDetailed(ctx)
		if err != nil {
			return err
		}
		listing = s.assembler.Shows(shows)
		return nil
	})
	return listing, err
}

// CreateShow books an artist at a venue. A blank start time leaves the
// database default (the insert instant) in place.
func (s *BookingService) CreateShow(ctx context.Context, form models.ShowForm) (*models.Show, error) {
	if err := validation.Struct(s.validate, form); err != nil {
		return nil, classify("create show", err)
	}

	var start time.Time
	if raw := strings.TrimSpace(form.StartTime); raw != "" {
		t, err := s.assembler.Formatter.Parse(raw)
		if err != nil {
			return nil, classify("create show", &interfaces.ValidationError{
				Fields: map[string]string{"start_time": "is not a valid date and time"},
			})
		}
		start = t
	}

	show := &models.Show{ArtistID: form.ArtistID, VenueID: form.VenueID, StartTime: start}
	err := s.write(ctx, "create show", func(r repos) error {
		return r.shows.Create(ctx, show)
	})
	if err != nil {
		return nil, err
	}
	return show, nil
}
