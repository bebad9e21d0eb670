package services

import (
	"context"

	"fyyur/internal/booking"
	"fyyur/internal/models"
	"fyyur/internal/validation"
)

func (s *BookingService) ListArtists(ctx context.Context) ([]booking.ArtistListing, error) {
	var listing []booking.ArtistListing
	err := s.read(ctx, "list artists", func(r repos) error {
		artists, err := r.artists.List(ctx)
		if err != nil {
			return err
		}
		listing = s.assembler.Artists(artists)
		return nil
	})
	return listing, err
}

func (s *BookingService) SearchArtists(ctx context.Context, term string) (booking.SearchResult, error) {
	var result booking.SearchResult
	err := s.read(ctx, "search artists", func(r repos) error {
		artists, err := r.artists.SearchByName(ctx, term, true)
		if err != nil {
			return err
		}
		shows, err := r.shows.List(ctx)
		if err != nil {
			return err
		}
		result = s.assembler.ArtistSearch(artists, shows, s.now())
		return nil
	})
	return result, err
}

func (s *BookingService) ArtistDetail(ctx context.Context, id int) (booking.ArtistDetail, error) {
	var detail booking.ArtistDetail
	err := s.read(ctx, "get artist", func(r repos) error {
		artist, err := r.artists.GetByID(ctx, id)
		if err != nil {
			return err
		}
		shows, err := r.shows.ListByArtist(ctx, id)
		if err != nil {
			return err
		}
		detail = s.assembler.ArtistDetail(*artist, shows, s.now())
		return nil
	})
	return detail, err
}

func (s *BookingService) GetArtist(ctx context.Context, id int) (*models.Artist, error) {
	var artist *models.Artist
	err := s.read(ctx, "get artist", func(r repos) error {
		var err error
		artist, err = r.artists.GetByID(ctx, id)
		return err
	})
	return artist, err
}

func (s *BookingService) CreateArtist(ctx context.Context, form models.ArtistForm) (*models.Artist, error) {
	if err := validation.Struct(s.validate, form); err != nil {
		return nil, classify("create artist", err)
	}
	artist := &models.Artist{}
	form.Apply(artist)
	err := s.write(ctx, "create artist", func(r repos) error {
		return r.artists.Create(ctx, artist)
	})
	if err != nil {
		return nil, err
	}
	return artist, nil
}

func (s *BookingService) UpdateArtist(ctx context.Context, id int, form models.ArtistForm) (*models.Artist, error) {
	if err := validation.Struct(s.validate, form); err != nil {
		return nil, classify("update artist", err)
	}
	var artist *models.Artist
	err := s.write(ctx, "update artist", func(r repos) error {
		current, err := r.artists.GetByID(ctx, id)
		if err != nil {
			return err
		}
		form.Apply(current)
		if err := r.artists.Update(ctx, current); err != nil {
			return err
		}
		artist = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return artist, nil
}

func (s *BookingService) DeleteArtist(ctx context.Context, id int) (*models.Artist, error) {
	var artist *models.Artist
	err := s.write(ctx, "delete artist", func(r repos) error {
		current, err := r.artists.GetByID(ctx, id)
		if err != nil {
			return err
		}
		artist = current
		return r.artists.Delete(ctx, id)
	})
	return artist, err
}
