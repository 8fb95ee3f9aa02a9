package facade

import (
	"errors"

	"github.com/evcraddock/hbnb/internal/model"
	"github.com/evcraddock/hbnb/internal/repository"
)

const (
	msgAmenityNotFound = "Amenity not found"
	msgAmenityExists   = "Amenity already exists"
	msgUnknownAmenity  = "One of the amenities does not exist!"
)

// CreateAmenityInput holds the fields needed to create an amenity.
type CreateAmenityInput struct {
	Name string
}

func sameName(name string) func(*model.Amenity) bool {
	return func(a *model.Amenity) bool { return a.Name() == name }
}

// CreateAmenity validates and stores a new amenity. Names are unique.
func (f *Facade) CreateAmenity(in CreateAmenityInput) (*model.Amenity, error) {
	const op = "create amenity"

	a, err := model.NewAmenity(in.Name)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.amenities.AddUnique(a, sameName(a.Name())); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, model.Conflict(op, msgAmenityExists)
		}
		return nil, storeError(op, msgAmenityNotFound, err)
	}
	logCreated("amenity", a.ID())
	return a, nil
}

// GetAmenity returns the amenity with the given id.
func (f *Facade) GetAmenity(id string) (*model.Amenity, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	a, ok := f.amenities.Get(id)
	if !ok {
		return nil, model.NotFound("get amenity", msgAmenityNotFound)
	}
	return a, nil
}

// GetAmenityByName looks an amenity up by its exact name.
func (f *Facade) GetAmenityByName(name string) (*model.Amenity, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	a, ok := f.amenities.GetBy(sameName(name))
	if !ok {
		return nil, model.NotFound("get amenity by name", msgAmenityNotFound)
	}
	return a, nil
}

// GetAllAmenities returns every amenity in creation order.
func (f *Facade) GetAllAmenities() []*model.Amenity {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.amenities.GetAll()
}

// UpdateAmenity applies upd; renaming onto another amenity's name is a conflict.
func (f *Facade) UpdateAmenity(id string, upd model.AmenityUpdate) (*model.Amenity, error) {
	const op = "update amenity"

	f.mu.Lock()
	defer f.mu.Unlock()

	a, ok := f.amenities.Get(id)
	if !ok {
		return nil, model.NotFound(op, msgAmenityNotFound)
	}

	if upd.Name != nil {
		if other, taken := f.amenities.GetBy(sameName(*upd.Name)); taken && other.ID() != id {
			return nil, model.Conflict(op, msgAmenityExists)
		}
	}

	if err := f.amenities.Update(id, func(a *model.Amenity) error { return a.Apply(upd) }); err != nil {
		return nil, storeError(op, msgAmenityNotFound, err)
	}
	return a, nil
}

// resolveAmenities looks up every id, failing on the first unknown one.
// Callers hold f.mu.
func (f *Facade) resolveAmenities(op string, ids []string) ([]*model.Amenity, error) {
	out := make([]*model.Amenity, 0, len(ids))
	for _, id := range ids {
		a, ok := f.amenities.Get(id)
		if !ok {
			return nil, model.InvalidReference(op, msgUnknownAmenity)
		}
		out = append(out, a)
	}
	return out, nil
}
