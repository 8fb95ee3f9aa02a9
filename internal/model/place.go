package model

import "slices"

// Place is a rentable property listed by its owner.
type Place struct {
	Base
	title       string
	description string
	price       float64
	latitude    float64
	longitude   float64
	owner       *User
	reviews     []*Review
	amenities   []*Amenity
}

// PlaceUpdate lists the place fields an update may change.
// Owner and amenities are handled by the facade.
type PlaceUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
}

// NewPlace validates every field before building the place. Only the owner's
// presence is checked here; whether it is stored anywhere is the facade's concern.
func NewPlace(title, description string, price, latitude, longitude float64, owner *User) (*Place, error) {
	if err := firstError(
		validateTitle(title),
		validateDescription(description),
		validatePrice(price),
		validateLatitude(latitude),
		validateLongitude(longitude),
		validateOwner(owner),
	); err != nil {
		return nil, err
	}
	return &Place{
		Base:        newBase(),
		title:       title,
		description: description,
		price:       price,
		latitude:    latitude,
		longitude:   longitude,
		owner:       owner,
	}, nil
}

func validateOwner(owner *User) error {
	if owner == nil {
		return Validation("Owner must be a User")
	}
	return nil
}

// Title returns the listing title.
func (p *Place) Title() string { return p.title }

// Description returns the free-text description, possibly empty.
func (p *Place) Description() string { return p.description }

// Price returns the nightly price.
func (p *Place) Price() float64 { return p.price }

// Latitude returns the latitude in degrees.
func (p *Place) Latitude() float64 { return p.latitude }

// Longitude returns the longitude in degrees.
func (p *Place) Longitude() float64 { return p.longitude }

// Owner returns the user who listed the place.
func (p *Place) Owner() *User { return p.owner }

// Reviews returns the reviews attached to the place, oldest first.
func (p *Place) Reviews() []*Review { return slices.Clone(p.reviews) }

// Amenities returns the attached amenities in the order they were added.
// Duplicates are kept.
func (p *Place) Amenities() []*Amenity { return slices.Clone(p.amenities) }

// SetTitle validates and replaces the title.
func (p *Place) SetTitle(v string) error {
	if err := validateTitle(v); err != nil {
		return err
	}
	p.title = v
	p.Touch()
	return nil
}

// SetDescription validates and replaces the description.
func (p *Place) SetDescription(v string) error {
	if err := validateDescription(v); err != nil {
		return err
	}
	p.description = v
	p.Touch()
	return nil
}

// SetPrice validates and replaces the price.
func (p *Place) SetPrice(v float64) error {
	if err := validatePrice(v); err != nil {
		return err
	}
	p.price = v
	p.Touch()
	return nil
}

// SetLatitude validates and replaces the latitude.
func (p *Place) SetLatitude(v float64) error {
	if err := validateLatitude(v); err != nil {
		return err
	}
	p.latitude = v
	p.Touch()
	return nil
}

// SetLongitude validates and replaces the longitude.
func (p *Place) SetLongitude(v float64) error {
	if err := validateLongitude(v); err != nil {
		return err
	}
	p.longitude = v
	p.Touch()
	return nil
}

// AddReview attaches a review. The caller guarantees the review exists.
func (p *Place) AddReview(r *Review) {
	p.reviews = append(p.reviews, r)
	p.Touch()
}

// AddAmenity attaches an amenity. The caller guarantees the amenity exists.
func (p *Place) AddAmenity(a *Amenity) {
	p.amenities = append(p.amenities, a)
	p.Touch()
}

// Apply validates all present fields and then commits them together.
func (p *Place) Apply(upd PlaceUpdate) error {
	var errs []error
	if upd.Title != nil {
		errs = append(errs, validateTitle(*upd.Title))
	}
	if upd.Description != nil {
		errs = append(errs, validateDescription(*upd.Description))
	}
	if upd.Price != nil {
		errs = append(errs, validatePrice(*upd.Price))
	}
	if upd.Latitude != nil {
		errs = append(errs, validateLatitude(*upd.Latitude))
	}
	if upd.Longitude != nil {
		errs = append(errs, validateLongitude(*upd.Longitude))
	}
	if err := firstError(errs...); err != nil {
		return err
	}

	if upd.Title != nil {
		p.title = *upd.Title
	}
	if upd.Description != nil {
		p.description = *upd.Description
	}
	if upd.Price != nil {
		p.price = *upd.Price
	}
	if upd.Latitude != nil {
		p.latitude = *upd.Latitude
	}
	if upd.Longitude != nil {
		p.longitude = *upd.Longitude
	}
	p.Touch()
	return nil
}
