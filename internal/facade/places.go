package facade

import (
	"github.com/evcraddock/hbnb/internal/model"
)

const (
	msgPlaceNotFound  = "Place not found"
	msgUnknownPlace   = "This place does not exist!"
	msgOwnerImmutable = "Owner cannot be changed"
)

// CreatePlaceInput holds the fields needed to list a place. OwnerID and
// AmenityIDs are resolved against their stores before the place is built.
type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
	AmenityIDs  []string
}

// UpdatePlaceInput is a partial place update. AmenityIDs are appended to the
// place's amenities, never replacing them. OwnerID may only repeat the
// current owner.
type UpdatePlaceInput struct {
	model.PlaceUpdate
	OwnerID    *string
	AmenityIDs []string
}

// CreatePlace resolves the owner and amenities, stores the place and adds it
// to the owner's places. Nothing is stored when any step fails.
func (f *Facade) CreatePlace(in CreatePlaceInput) (*model.Place, error) {
	const op = "create place"

	f.mu.Lock()
	defer f.mu.Unlock()

	owner, err := f.resolveUser(op, in.OwnerID)
	if err != nil {
		return nil, err
	}
	amenities, err := f.resolveAmenities(op, in.AmenityIDs)
	if err != nil {
		return nil, err
	}

	p, err := model.NewPlace(in.Title, in.Description, in.Price, in.Latitude, in.Longitude, owner)
	if err != nil {
		return nil, err
	}
	for _, a := range amenities {
		p.AddAmenity(a)
	}

	if err := f.places.Add(p); err != nil {
		return nil, storeError(op, msgPlaceNotFound, err)
	}
	owner.AddPlace(p)

	logCreated("place", p.ID())
	return p, nil
}

// GetPlace returns the place with the given id.
func (f *Facade) GetPlace(id string) (*model.Place, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	p, ok := f.places.Get(id)
	if !ok {
		return nil, model.NotFound("get place", msgPlaceNotFound)
	}
	return p, nil
}

// GetAllPlaces returns every place in creation order.
func (f *Facade) GetAllPlaces() []*model.Place {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.places.GetAll()
}

// UpdatePlace validates and applies the field changes, then appends any
// listed amenities. Unknown amenity ids reject the whole update.
func (f *Facade) UpdatePlace(id string, in UpdatePlaceInput) (*model.Place, error) {
	const op = "update place"

	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.places.Get(id)
	if !ok {
		return nil, model.NotFound(op, msgPlaceNotFound)
	}
	if in.OwnerID != nil && *in.OwnerID != p.Owner().ID() {
		return nil, model.Validation(msgOwnerImmutable)
	}

	amenities, err := f.resolveAmenities(op, in.AmenityIDs)
	if err != nil {
		return nil, err
	}

	err = f.places.Update(id, func(p *model.Place) error {
		if err := p.Apply(in.PlaceUpdate); err != nil {
			return err
		}
		for _, a := range amenities {
			p.AddAmenity(a)
		}
		return nil
	})
	if err != nil {
		return nil, storeError(op, msgPlaceNotFound, err)
	}
	return p, nil
}

// resolvePlace looks up a referenced place; callers hold f.mu.
func (f *Facade) resolvePlace(op, id string) (*model.Place, error) {
	p, ok := f.places.Get(id)
	if !ok {
		return nil, model.InvalidReference(op, msgUnknownPlace)
	}
	return p, nil
}
