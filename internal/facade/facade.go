// Package facade orchestrates catalog workflows that span more than one
// entity kind: resolving foreign keys, enforcing uniqueness and maintaining
// back-references between users, places, amenities and reviews.
package facade

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/evcraddock/hbnb/internal/model"
	"github.com/evcraddock/hbnb/internal/repository"
)

// Store is the keyed storage the facade needs for one entity kind.
type Store[T repository.Entity] interface {
	Add(e T) error
	AddUnique(e T, conflicts func(T) bool) error
	Get(id string) (T, bool)
	GetBy(match func(T) bool) (T, bool)
	GetAll() []T
	Filter(match func(T) bool) []T
	Update(id string, apply func(T) error) error
	Delete(id string) error
}

// Stores groups the per-kind stores injected into a Facade.
type Stores struct {
	Users     Store[*model.User]
	Amenities Store[*model.Amenity]
	Places    Store[*model.Place]
	Reviews   Store[*model.Review]
}

// Facade is the single entry point the transport layer uses.
type Facade struct {
	// mu serializes workflows that read one store and write another, so
	// reference checks, inserts and back-reference appends happen together.
	mu sync.RWMutex

	users     Store[*model.User]
	amenities Store[*model.Amenity]
	places    Store[*model.Place]
	reviews   Store[*model.Review]
}

// New creates a facade over the given stores.
func New(s Stores) *Facade {
	return &Facade{
		users:     s.Users,
		amenities: s.Amenities,
		places:    s.Places,
		reviews:   s.Reviews,
	}
}

// View runs fn under the facade's read lock. Entities returned by the
// facade are shared with concurrent writers, so callers that may race with
// updates read their fields inside View.
func (f *Facade) View(fn func()) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	fn()
}

// NewInMemory creates a facade backed by fresh in-memory repositories.
func NewInMemory() *Facade {
	return New(Stores{
		Users:     repository.New[*model.User](),
		Amenities: repository.New[*model.Amenity](),
		Places:    repository.New[*model.Place](),
		Reviews:   repository.New[*model.Review](),
	})
}

// storeError translates repository sentinels into the model taxonomy.
func storeError(op, notFoundMsg string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return &model.Error{Op: op, Kind: model.KindNotFound, Msg: notFoundMsg, Err: err}
	case model.KindOf(err) != "":
		return err
	default:
		return &model.Error{Op: op, Msg: "storage failure", Err: err}
	}
}

func logCreated(kind, id string) {
	slog.Debug("entity created", "kind", kind, "id", id)
}
