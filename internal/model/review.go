package model

// Review is a user's rated comment on a place.
type Review struct {
	Base
	text   string
	rating int
	place  *Place
	user   *User
}

// ReviewUpdate lists the review fields an update may change.
type ReviewUpdate struct {
	Text   *string
	Rating *int
}

// NewReview validates every field before building the review.
func NewReview(text string, rating int, place *Place, user *User) (*Review, error) {
	if err := firstError(
		validateText(text),
		validateRating(rating),
		validateReviewPlace(place),
		validateReviewUser(user),
	); err != nil {
		return nil, err
	}
	return &Review{
		Base:   newBase(),
		text:   text,
		rating: rating,
		place:  place,
		user:   user,
	}, nil
}

func validateReviewPlace(p *Place) error {
	if p == nil {
		return Validation("Place must be a Place")
	}
	return nil
}

func validateReviewUser(u *User) error {
	if u == nil {
		return Validation("User must be a User")
	}
	return nil
}

// Text returns the review body.
func (r *Review) Text() string { return r.text }

// Rating returns the 1 to 5 star rating.
func (r *Review) Rating() int { return r.rating }

// Place returns the reviewed place.
func (r *Review) Place() *Place { return r.place }

// User returns the author.
func (r *Review) User() *User { return r.user }

// SetText validates and replaces the review body.
func (r *Review) SetText(v string) error {
	if err := validateText(v); err != nil {
		return err
	}
	r.text = v
	r.Touch()
	return nil
}

// SetRating validates and replaces the rating.
func (r *Review) SetRating(v int) error {
	if err := validateRating(v); err != nil {
		return err
	}
	r.rating = v
	r.Touch()
	return nil
}

// Apply validates all present fields and then commits them together.
func (r *Review) Apply(upd ReviewUpdate) error {
	var errs []error
	if upd.Text != nil {
		errs = append(errs, validateText(*upd.Text))
	}
	if upd.Rating != nil {
		errs = append(errs, validateRating(*upd.Rating))
	}
	if err := firstError(errs...); err != nil {
		return err
	}

	if upd.Text != nil {
		r.text = *upd.Text
	}
	if upd.Rating != nil {
		r.rating = *upd.Rating
	}
	r.Touch()
	return nil
}
