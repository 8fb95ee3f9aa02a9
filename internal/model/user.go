package model

import "slices"

// User is a registered account that can own places and write reviews.
type User struct {
	Base
	firstName string
	lastName  string
	email     string
	isAdmin   bool
	places    []*Place
	reviews   []*Review
}

// UserUpdate lists the user fields an update may change. Nil fields are left alone.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	IsAdmin   *bool
}

// NewUser validates every field before building the user.
func NewUser(firstName, lastName, email string, isAdmin bool) (*User, error) {
	if err := firstError(
		validateFirstName(firstName),
		validateLastName(lastName),
		validateEmail(email),
	); err != nil {
		return nil, err
	}
	return &User{
		Base:      newBase(),
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		isAdmin:   isAdmin,
	}, nil
}

// FirstName returns the given name.
func (u *User) FirstName() string { return u.firstName }

// LastName returns the family name.
func (u *User) LastName() string { return u.lastName }

// Email returns the address as registered.
func (u *User) Email() string { return u.email }

// IsAdmin reports whether the user has the admin flag.
func (u *User) IsAdmin() bool { return u.isAdmin }

// Places returns the places owned by the user in creation order.
func (u *User) Places() []*Place { return slices.Clone(u.places) }

// Reviews returns the reviews written by the user in creation order.
func (u *User) Reviews() []*Review { return slices.Clone(u.reviews) }

// SetFirstName validates and replaces the given name.
func (u *User) SetFirstName(v string) error {
	if err := validateFirstName(v); err != nil {
		return err
	}
	u.firstName = v
	u.Touch()
	return nil
}

// SetLastName validates and replaces the family name.
func (u *User) SetLastName(v string) error {
	if err := validateLastName(v); err != nil {
		return err
	}
	u.lastName = v
	u.Touch()
	return nil
}

// SetEmail validates the format only; uniqueness is checked by the facade.
func (u *User) SetEmail(v string) error {
	if err := validateEmail(v); err != nil {
		return err
	}
	u.email = v
	u.Touch()
	return nil
}

// SetAdmin sets the admin flag.
func (u *User) SetAdmin(v bool) {
	u.isAdmin = v
	u.Touch()
}

// AddPlace records a place owned by the user. The caller guarantees the place exists.
func (u *User) AddPlace(p *Place) {
	u.places = append(u.places, p)
	u.Touch()
}

// AddReview records a review written by the user.
func (u *User) AddReview(r *Review) {
	u.reviews = append(u.reviews, r)
	u.Touch()
}

// Apply validates all present fields and then commits them together.
func (u *User) Apply(upd UserUpdate) error {
	var errs []error
	if upd.FirstName != nil {
		errs = append(errs, validateFirstName(*upd.FirstName))
	}
	if upd.LastName != nil {
		errs = append(errs, validateLastName(*upd.LastName))
	}
	if upd.Email != nil {
		errs = append(errs, validateEmail(*upd.Email))
	}
	if err := firstError(errs...); err != nil {
		return err
	}

	if upd.FirstName != nil {
		u.firstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.lastName = *upd.LastName
	}
	if upd.Email != nil {
		u.email = *upd.Email
	}
	if upd.IsAdmin != nil {
		u.isAdmin = *upd.IsAdmin
	}
	u.Touch()
	return nil
}
