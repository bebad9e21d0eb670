package services

import (
	"context"

	"fyyur/internal/booking"
	"fyyur/internal/models"
	"fyyur/internal/validation"
)

// VenueAreas groups every venue by city and state.
func (s *BookingService) VenueAreas(ctx context.Context) ([]booking.Area, error) {
	var areas []booking.Area
	err := s.read(ctx, "list venues", func(r repos) error {
		venues, err := r.venues.List(ctx)
		if err != nil {
			return err
		}
		shows, err := r.shows.List(ctx)
		if err != nil {
			return err
		}
		areas = booking.GroupByLocation(venues, shows, s.now())
		return nil
	})
	return areas, err
}

// SearchVenues matches term case-insensitively anywhere in the venue name.
func (s *BookingService) SearchVenues(ctx context.Context, term string) (booking.SearchResult, error) {
	var result booking.SearchResult
	err := s.read(ctx, "search venues", func(r repos) error {
		venues, err := r.venues.SearchByName(ctx, term, true)
		if err != nil {
			return err
		}
		shows, err := r.shows.List(ctx)
		if err != nil {
			return err
		}
		result = s.assembler.VenueSearch(venues, shows, s.now())
		return nil
	})
	return result, err
}

func (s *BookingService) VenueDetail(ctx context.Context, id int) (booking.VenueDetail, error) {
	var detail booking.VenueDetail
	err := s.read(ctx, "get venue", func(r repos) error {
		venue, err := r.venues.GetByID(ctx, id)
		if err != nil {
			return err
		}
		shows, err := r.shows.ListByVenue(ctx, id)
		if err != nil {
			return err
		}
		detail = s.assembler.VenueDetail(*venue, shows, s.now())
		return nil
	})
	return detail, err
}

func (s *BookingService) GetVenue(ctx context.Context, id int) (*models.Venue, error) {
	var venue *models.Venue
	err := s.read(ctx, "get venue", func(r repos) error {
		var err error
		venue, err = r.venues.GetByID(ctx, id)
		return err
	})
	return venue, err
}

func (s *BookingService) CreateVenue(ctx context.Context, form models.VenueForm) (*models.Venue, error) {
	if err := validation.Struct(s.validate, form); err != nil {
		return nil, classify("create venue", err)
	}
	venue := &models.Venue{}
	form.Apply(venue)
	err := s.write(ctx, "create venue", func(r repos) error {
		return r.venues.Create(ctx, venue)
	})
	if err != nil {
		return nil, err
	}
	return venue, nil
}

// UpdateVenue replaces every mutable column of venue id with the form values.
func (s *BookingService) UpdateVenue(ctx context.Context, id int, form models.VenueForm) (*models.Venue, error) {
	if err := validation.Struct(s.validate, form); err != nil {
		return nil, classify("update venue", err)
	}
	var venue *models.Venue
	err := s.write(ctx, "update venue", func(r repos) error {
		current, err := r.venues.GetByID(ctx, id)
		if err != nil {
			return err
		}
		form.Apply(current)
		if err := r.venues.Update(ctx, current); err != nil {
			return err
		}
		venue = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return venue, nil
}

// DeleteVenue removes venue id and returns the row as it was. It fails with a
// DeletionBlockedError while shows still reference the venue; the loaded row
// is still returned then, so callers can name it.
func (s *BookingService) DeleteVenue(ctx context.Context, id int) (*models.Venue, error) {
	var venue *models.Venue
	err := s.write(ctx, "delete venue", func(r repos) error {
		current, err := r.venues.GetByID(ctx, id)
		if err != nil {
			return err
		}
		venue = current
		return r.venues.Delete(ctx, id)
	})
	return venue, err
}
