// Package api defines the JSON records exchanged over the HTTP API and the
// projections from catalog entities into them.
package api

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/evcraddock/hbnb/internal/facade"
	"github.com/evcraddock/hbnb/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the presence rules declared on a request record and
// reports the first missing field as a validation error.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return model.Validation("Missing required field: " + verrs[0].Field())
	}
	return model.Validation(err.Error())
}

// CreateUserRequest is the body of POST /api/v1/users.
type CreateUserRequest struct {
	FirstName *string `json:"first_name" validate:"required"`
	LastName  *string `json:"last_name" validate:"required"`
	Email     *string `json:"email" validate:"required"`
	IsAdmin   bool    `json:"is_admin"`
}

// Input converts the request to a facade input. Call Validate first.
func (r CreateUserRequest) Input() facade.CreateUserInput {
	return facade.CreateUserInput{
		FirstName: *r.FirstName,
		LastName:  *r.LastName,
		Email:     *r.Email,
		IsAdmin:   r.IsAdmin,
	}
}

// UpdateUserRequest is the body of PUT /api/v1/users/{id}.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	IsAdmin   *bool   `json:"is_admin"`
}

// Update converts the request to a user update.
func (r UpdateUserRequest) Update() model.UserUpdate {
	return model.UserUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		IsAdmin:   r.IsAdmin,
	}
}

// AmenityRequest is the body of POST and PUT /api/v1/amenities.
type AmenityRequest struct {
	Name *string `json:"name" validate:"required"`
}

// Input converts the request to a facade input. Call Validate first.
func (r AmenityRequest) Input() facade.CreateAmenityInput {
	return facade.CreateAmenityInput{Name: *r.Name}
}

// Update converts the request to an amenity update.
func (r AmenityRequest) Update() model.AmenityUpdate {
	return model.AmenityUpdate{Name: r.Name}
}

// CreatePlaceRequest is the body of POST /api/v1/places.
type CreatePlaceRequest struct {
	Title       *string  `json:"title" validate:"required"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"required"`
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	OwnerID     *string  `json:"owner_id" validate:"required"`
	Amenities   []string `json:"amenities" validate:"required"`
}

// Input converts the request to a facade input. Call Validate first.
func (r CreatePlaceRequest) Input() facade.CreatePlaceInput {
	in := facade.CreatePlaceInput{
		Title:      *r.Title,
		Price:      *r.Price,
		Latitude:   *r.Latitude,
		Longitude:  *r.Longitude,
		OwnerID:    *r.OwnerID,
		AmenityIDs: r.Amenities,
	}
	if r.Description != nil {
		in.Description = *r.Description
	}
	return in
}

// UpdatePlaceRequest is the body of PUT /api/v1/places/{id}. Listed
// amenities are added to the place; existing ones are kept.
type UpdatePlaceRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	OwnerID     *string  `json:"owner_id"`
	Amenities   []string `json:"amenities"`
}

// Input converts the request to a facade place update.
func (r UpdatePlaceRequest) Input() facade.UpdatePlaceInput {
	return facade.UpdatePlaceInput{
		PlaceUpdate: model.PlaceUpdate{
			Title:       r.Title,
			Description: r.Description,
			Price:       r.Price,
			Latitude:    r.Latitude,
			Longitude:   r.Longitude,
		},
		OwnerID:    r.OwnerID,
		AmenityIDs: r.Amenities,
	}
}

// CreateReviewRequest is the body of POST /api/v1/reviews. Rating is decoded
// as a number so fractional values can be reported as validation errors.
type CreateReviewRequest struct {
	Text    *string  `json:"text" validate:"required"`
	Rating  *float64 `json:"rating" validate:"required"`
	UserID  *string  `json:"user_id" validate:"required"`
	PlaceID *string  `json:"place_id" validate:"required"`
}

// Input converts the request to a facade input, rejecting fractional ratings.
func (r CreateReviewRequest) Input() (facade.CreateReviewInput, error) {
	rating, err := model.RatingFromNumber(*r.Rating)
	if err != nil {
		return facade.CreateReviewInput{}, err
	}
	return facade.CreateReviewInput{
		Text:    *r.Text,
		Rating:  rating,
		UserID:  *r.UserID,
		PlaceID: *r.PlaceID,
	}, nil
}

// UpdateReviewRequest is the body of PUT /api/v1/reviews/{id}. Only the text
// and rating of a review can change.
type UpdateReviewRequest struct {
	Text   *string  `json:"text"`
	Rating *float64 `json:"rating"`
}

// Update converts the request to a review update, rejecting fractional ratings.
func (r UpdateReviewRequest) Update() (model.ReviewUpdate, error) {
	upd := model.ReviewUpdate{Text: r.Text}
	if r.Rating != nil {
		rating, err := model.RatingFromNumber(*r.Rating)
		if err != nil {
			return model.ReviewUpdate{}, err
		}
		upd.Rating = &rating
	}
	return upd, nil
}
