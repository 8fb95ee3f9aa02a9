package web

import (
	"net/http"

	"github.com/evcraddock/hbnb/internal/api"
)

// handleAPIPlaces routes /api/v1/places requests.
func (s *Server) handleAPIPlaces(w http.ResponseWriter, r *http.Request) {
	parts := splitPath(r.URL.Path, apiPrefix+"/places")

	switch {
	case len(parts) == 0:
		switch r.Method {
		case http.MethodGet:
			apiJSON(w, snapshot(s.facade, s.facade.GetAllPlaces(), api.PlaceList), http.StatusOK)
		case http.MethodPost:
			s.apiCreatePlace(w, r)
		default:
			methodNotAllowed(w)
		}
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			s.apiGetPlace(w, parts[0])
		case http.MethodPut:
			s.apiUpdatePlace(w, r, parts[0])
		default:
			methodNotAllowed(w)
		}
	// /api/v1/places/{id}/reviews
	case len(parts) == 2 && parts[1] == "reviews":
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		s.apiListPlaceReviews(w, parts[0])
	default:
		apiError(w, "not found", http.StatusNotFound)
	}
}

func (s *Server) apiCreatePlace(w http.ResponseWriter, r *http.Request) {
	var req api.CreatePlaceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		apiFailure(w, err)
		return
	}
	p, err := s.facade.CreatePlace(req.Input())
	if err != nil {
		apiFailure(w, err)
		return
	}
	apiJSON(w, snapshot(s.facade, p, api.NewPlaceResponse), http.StatusCreated)
}

func (s *Server) apiGetPlace(w http.ResponseWriter, id string) {
	p, err := s.facade.GetPlace(id)
	if err != nil {
		apiFailure(w, err)
		return
	}
	apiJSON(w, snapshot(s.facade, p, api.NewPlaceDetail), http.StatusOK)
}

func (s *Server) apiUpdatePlace(w http.ResponseWriter, r *http.Request, id string) {
	var req api.UpdatePlaceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		apiFailure(w, err)
		return
	}
	if _, err := s.facade.UpdatePlace(id, req.Input()); err != nil {
		apiFailure(w, err)
		return
	}
	apiMessage(w, "Place updated successfully")
}

func (s *Server) apiListPlaceReviews(w http.ResponseWriter, placeID string) {
	reviews, err := s.facade.GetReviewsByPlace(placeID)
	if err != nil {
		apiFailure(w, err)
		return
	}
	apiJSON(w, snapshot(s.facade, reviews, api.ReviewList), http.StatusOK)
}
