package models

// Venue is a physical location that can host shows.
type Venue struct {
	ID                 int      `json:"id" db:"id"`
	Name               string   `json:"name" db:"name"`
	City               string   `json:"city" db:"city"`
	State              string   `json:"state" db:"state"`
	Address            string   `json:"address" db:"address"`
	Phone              string   `json:"phone" db:"phone"`
	ImageLink          string   `json:"image_link" db:"image_link"`
	Genres             []string `json:"genres" db:"genres"`
	FacebookLink       string   `json:"facebook_link" db:"facebook_link"`
	Website            string   `json:"website" db:"website"`
	SeekingTalent      bool     `json:"seeking_talent" db:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" db:"seeking_description"`
}

// VenueForm carries a create or edit submission. Every mutable column is
// replaced on edit.
type VenueForm struct {
	Name               string   `json:"name" validate:"required,max=255"`
	City               string   `json:"city" validate:"required,max=120"`
	State              string   `json:"state" validate:"required,state"`
	Address            string   `json:"address" validate:"required,max=120"`
	Phone              string   `json:"phone" validate:"omitempty,max=120,phone"`
	ImageLink          string   `json:"image_link" validate:"omitempty,max=500,url"`
	Genres             []string `json:"genres" validate:"required,min=1,dive,genre"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,max=120,url"`
	Website            string   `json:"website" validate:"omitempty,max=250,url"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" validate:"omitempty,max=250"`
}

// Apply copies the form onto v, leaving the identity untouched.
func (f VenueForm) Apply(v *Venue) {
	v.Name = f.Name
	v.City = f.City
	v.State = f.State
	v.Address = f.Address
	v.Phone = f.Phone
	v.ImageLink = f.ImageLink
	v.Genres = append([]string(nil), f.Genres...)
	v.FacebookLink = f.FacebookLink
	v.Website = f.Website
	v.SeekingTalent = f.SeekingTalent
	v.SeekingDescription = f.SeekingDescription
}
