package model

// Amenity is a named feature a place can offer, such as "wifi".
type Amenity struct {
	Base
	name string
}

// AmenityUpdate lists the amenity fields an update may change.
type AmenityUpdate struct {
	Name *string
}

// NewAmenity validates name and builds the amenity.
func NewAmenity(name string) (*Amenity, error) {
	if err := validateAmenityName(name); err != nil {
		return nil, err
	}
	return &Amenity{Base: newBase(), name: name}, nil
}

// Name returns the amenity name.
func (a *Amenity) Name() string { return a.name }

// SetName validates the name; uniqueness is checked by the facade.
func (a *Amenity) SetName(v string) error {
	if err := validateAmenityName(v); err != nil {
		return err
	}
	a.name = v
	a.Touch()
	return nil
}

// Apply validates and commits an update.
func (a *Amenity) Apply(upd AmenityUpdate) error {
	if upd.Name == nil {
		a.Touch()
		return nil
	}
	return a.SetName(*upd.Name)
}
