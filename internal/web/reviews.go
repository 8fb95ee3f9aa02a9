package web

import (
	"net/http"

	"github.com/evcraddock/hbnb/internal/api"
)

// handleAPIReviews routes /api/v1/reviews requests.
func (s *Server) handleAPIReviews(w http.ResponseWriter, r *http.Request) {
	parts := splitPath(r.URL.Path, apiPrefix+"/reviews")

	switch {
	case len(parts) == 0:
		switch r.Method {
		case http.MethodGet:
			apiJSON(w, snapshot(s.facade, s.facade.GetAllReviews(), api.ReviewList), http.StatusOK)
		case http.MethodPost:
			s.apiCreateReview(w, r)
		default:
			methodNotAllowed(w)
		}
	case len(parts) == 1:
		switch r.Method {
		case http.MethodGet:
			s.apiGetReview(w, parts[0])
		case http.MethodPut:
			s.apiUpdateReview(w, r, parts[0])
		case http.MethodDelete:
			s.apiDeleteReview(w, parts[0])
		default:
			methodNotAllowed(w)
		}
	// /api/v1/reviews/places/{id}/reviews
	case len(parts) == 3 && parts[0] == "places" && parts[2] == "reviews":
		if r.Method != http.MethodGet {
			methodNotAllowed(w)
			return
		}
		s.apiListPlaceReviews(w, parts[1])
	default:
		apiError(w, "not found", http.StatusNotFound)
	}
}

func (s *Server) apiCreateReview(w http.ResponseWriter, r *http.Request) {
	var req api.CreateReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		apiFailure(w, err)
		return
	}
	in, err := req.Input()
	if err != nil {
		apiFailure(w, err)
		return
	}
	rev, err := s.facade.CreateReview(in)
	if err != nil {
		apiFailure(w, err)
		return
	}
	apiJSON(w, snapshot(s.facade, rev, api.NewReviewResponse), http.StatusCreated)
}

func (s *Server) apiGetReview(w http.ResponseWriter, id string) {
	rev, err := s.facade.GetReview(id)
	if err != nil {
		apiFailure(w, err)
		return
	}
	apiJSON(w, snapshot(s.facade, rev, api.NewReviewResponse), http.StatusOK)
}

func (s *Server) apiUpdateReview(w http.ResponseWriter, r *http.Request, id string) {
	var req api.UpdateReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		apiFailure(w, err)
		return
	}
	upd, err := req.Update()
	if err != nil {
		apiFailure(w, err)
		return
	}
	if _, err := s.facade.UpdateReview(id, upd); err != nil {
		apiFailure(w, err)
		return
	}
	apiMessage(w, "Review updated successfully")
}

func (s *Server) apiDeleteReview(w http.ResponseWriter, id string) {
	if err := s.facade.DeleteReview(id); err != nil {
		apiFailure(w, err)
		return
	}
	apiMessage(w, "Review deleted successfully")
}
