package models

// Artist is a performer who can be booked into shows.
type Artist struct {
	ID           int      `json:"id" db:"id"`
	Name         string   `json:"name" db:"name"`
	City         string   `json:"city" db:"city"`
	State        string   `json:"state" db:"state"`
	Phone        string   `json:"phone" db:"phone"`
	Genres       []string `json:"genres" db:"genres"`
	ImageLink    string   `json:"image_link" db:"image_link"`
	FacebookLink string   `json:"facebook_link" db:"facebook_link"`
}

type ArtistForm struct {
	Name         string   `json:"name" validate:"required,max=255"`
	City         string   `json:"city" validate:"required,max=120"`
	State        string   `json:"state" validate:"required,state"`
	Phone        string   `json:"phone" validate:"omitempty,max=120,phone"`
	Genres       []string `json:"genres" validate:"required,min=1,dive,genre"`
	ImageLink    string   `json:"image_link" validate:"omitempty,max=500,url"`
	FacebookLink string   `json:"facebook_link" validate:"omitempty,max=120,url"`
}

// Apply copies the form onto a, leaving the identity untouched.
func (f ArtistForm) Apply(a *Artist) {
	a.Name = f.Name
	a.City = f.City
	a.State = f.State
	a.Phone = f.Phone
	a.Genres = append([]string(nil), f.Genres...)
	a.ImageLink = f.ImageLink
	a.FacebookLink = f.FacebookLink
}
