package facade

import (
	"log/slog"

	"github.com/evcraddock/hbnb/internal/model"
)

const msgReviewNotFound = "Review not found"

// CreateReviewInput holds the fields needed to review a place.
type CreateReviewInput struct {
	Text    string
	Rating  int
	UserID  string
	PlaceID string
}

// CreateReview resolves the author and place, stores the review and appends
// it to both the user's and the place's reviews.
func (f *Facade) CreateReview(in CreateReviewInput) (*model.Review, error) {
	const op = "create review"

	f.mu.Lock()
	defer f.mu.Unlock()

	user, err := f.resolveUser(op, in.UserID)
	if err != nil {
		return nil, err
	}
	place, err := f.resolvePlace(op, in.PlaceID)
	if err != nil {
		return nil, err
	}

	r, err := model.NewReview(in.Text, in.Rating, place, user)
	if err != nil {
		return nil, err
	}
	if err := f.reviews.Add(r); err != nil {
		return nil, storeError(op, msgReviewNotFound, err)
	}
	user.AddReview(r)
	place.AddReview(r)

	logCreated("review", r.ID())
	return r, nil
}

// GetReview returns the review with the given id.
func (f *Facade) GetReview(id string) (*model.Review, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	r, ok := f.reviews.Get(id)
	if !ok {
		return nil, model.NotFound("get review", msgReviewNotFound)
	}
	return r, nil
}

// GetAllReviews returns every stored review in creation order.
func (f *Facade) GetAllReviews() []*model.Review {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.reviews.GetAll()
}

// GetReviewsByPlace returns the stored reviews of a place. It scans every
// review, so cost grows with the total review count.
func (f *Facade) GetReviewsByPlace(placeID string) ([]*model.Review, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if _, ok := f.places.Get(placeID); !ok {
		return nil, model.NotFound("get reviews by place", msgPlaceNotFound)
	}
	reviews := f.reviews.Filter(func(r *model.Review) bool {
		return r.Place().ID() == placeID
	})
	if reviews == nil {
		reviews = []*model.Review{}
	}
	return reviews, nil
}

// UpdateReview applies upd to the review's text and rating.
func (f *Facade) UpdateReview(id string, upd model.ReviewUpdate) (*model.Review, error) {
	const op = "update review"

	f.mu.Lock()
	defer f.mu.Unlock()

	r, ok := f.reviews.Get(id)
	if !ok {
		return nil, model.NotFound(op, msgReviewNotFound)
	}
	if err := f.reviews.Update(id, func(r *model.Review) error { return r.Apply(upd) }); err != nil {
		return nil, storeError(op, msgReviewNotFound, err)
	}
	return r, nil
}

// DeleteReview removes the review from the store. The user's and place's
// review lists keep their reference to it.
func (f *Facade) DeleteReview(id string) error {
	const op = "delete review"

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.reviews.Delete(id); err != nil {
		return storeError(op, msgReviewNotFound, err)
	}
	slog.Debug("entity deleted", "kind", "review", "id", id)
	return nil
}
