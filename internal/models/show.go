package models

import "time"

// Show links one artist to one venue at a start time.
type Show struct {
	ID        int       `json:"id" db:"id"`
	ArtistID  int       `json:"artist_id" db:"artist_id"`
	VenueID   int       `json:"venue_id" db:"venue_id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
}

// ShowDetail is a show joined with the names and images of its artist and venue.
type ShowDetail struct {
	Show
	ArtistName      string `json:"artist_name" db:"artist_name"`
	ArtistImageLink string `json:"artist_image_link" db:"artist_image_link"`
	VenueName       string `json:"venue_name" db:"venue_name"`
	VenueImageLink  string `json:"venue_image_link" db:"venue_image_link"`
}

// ShowForm is the create-show submission. An empty StartTime means "now".
type ShowForm struct {
	ArtistID  int    `json:"artist_id" validate:"required,gt=0"`
	VenueID   int    `json:"venue_id" validate:"required,gt=0"`
	StartTime string `json:"start_time" validate:"omitempty,max=64"`
}
