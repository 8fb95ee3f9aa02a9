package api

import "github.com/evcraddock/hbnb/internal/model"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse acknowledges an operation that returns no record.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse is the public projection of a user.
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
}

// NewUserResponse projects u.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Email:     u.Email(),
		IsAdmin:   u.IsAdmin(),
	}
}

// AmenityResponse is the public projection of an amenity.
type AmenityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewAmenityResponse projects a.
func NewAmenityResponse(a *model.Amenity) AmenityResponse {
	return AmenityResponse{ID: a.ID(), Name: a.Name()}
}

// OwnerSummary is the owner as nested in a place's details.
type OwnerSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// PlaceResponse is returned when a place is created.
type PlaceResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	OwnerID     string  `json:"owner_id"`
}

// NewPlaceResponse projects a newly created place.
func NewPlaceResponse(p *model.Place) PlaceResponse {
	return PlaceResponse{
		ID:          p.ID(),
		Title:       p.Title(),
		Description: p.Description(),
		Price:       p.Price(),
		Latitude:    p.Latitude(),
		Longitude:   p.Longitude(),
		OwnerID:     p.Owner().ID(),
	}
}

// PlaceSummary is the abbreviated place used by list endpoints.
type PlaceSummary struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewPlaceSummary projects p for list endpoints.
func NewPlaceSummary(p *model.Place) PlaceSummary {
	return PlaceSummary{ID: p.ID(), Title: p.Title(), Latitude: p.Latitude(), Longitude: p.Longitude()}
}

// PlaceDetail expands the owner and amenities of a single place.
type PlaceDetail struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	Owner       OwnerSummary      `json:"owner"`
	Amenities   []AmenityResponse `json:"amenities"`
}

// NewPlaceDetail projects p with its owner and amenities expanded.
func NewPlaceDetail(p *model.Place) PlaceDetail {
	owner := p.Owner()
	amenities := make([]AmenityResponse, 0, len(p.Amenities()))
	for _, a := range p.Amenities() {
		amenities = append(amenities, NewAmenityResponse(a))
	}
	return PlaceDetail{
		ID:          p.ID(),
		Title:       p.Title(),
		Description: p.Description(),
		Price:       p.Price(),
		Latitude:    p.Latitude(),
		Longitude:   p.Longitude(),
		Owner: OwnerSummary{
			ID:        owner.ID(),
			FirstName: owner.FirstName(),
			LastName:  owner.LastName(),
			Email:     owner.Email(),
		},
		Amenities: amenities,
	}
}

// ReviewResponse is a single review with its references as ids.
type ReviewResponse struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	UserID  string `json:"user_id"`
	PlaceID string `json:"place_id"`
}

// NewReviewResponse projects r with its references as ids.
func NewReviewResponse(r *model.Review) ReviewResponse {
	return ReviewResponse{
		ID:      r.ID(),
		Text:    r.Text(),
		Rating:  r.Rating(),
		UserID:  r.User().ID(),
		PlaceID: r.Place().ID(),
	}
}

// ReviewSummary is the abbreviated review used by list endpoints.
type ReviewSummary struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// NewReviewSummary projects r for list endpoints.
func NewReviewSummary(r *model.Review) ReviewSummary {
	return ReviewSummary{ID: r.ID(), Text: r.Text(), Rating: r.Rating()}
}

// mapSlice projects every element of in; the result is never nil.
func mapSlice[E, R any](in []E, fn func(E) R) []R {
	out := make([]R, 0, len(in))
	for _, e := range in {
		out = append(out, fn(e))
	}
	return out
}

// UserList projects users for GET /api/v1/users.
func UserList(users []*model.User) []UserResponse {
	return mapSlice(users, NewUserResponse)
}

// AmenityList projects amenities for GET /api/v1/amenities.
func AmenityList(amenities []*model.Amenity) []AmenityResponse {
	return mapSlice(amenities, NewAmenityResponse)
}

// PlaceList projects places for GET /api/v1/places.
func PlaceList(places []*model.Place) []PlaceSummary {
	return mapSlice(places, NewPlaceSummary)
}

// ReviewList projects reviews for the review list endpoints.
func ReviewList(reviews []*model.Review) []ReviewSummary {
	return mapSlice(reviews, NewReviewSummary)
}
