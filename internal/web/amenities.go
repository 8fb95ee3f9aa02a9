package web

import (
	"net/http"

	"github.com/evcraddock/hbnb/internal/api"
)

// handleAPIAmenities routes /api/v1/amenities requests.
func (s *Server) handleAPIAmenities(w http.ResponseWriter, r *http.Request) {
	parts := splitPath(r.URL.Path, apiPrefix+"/amenities")

	switch len(parts) {
	case 0:
		switch r.Method {
		case http.MethodGet:
			apiJSON(w, snapshot(s.facade, s.facade.GetAllAmenities(), api.AmenityList), http.StatusOK)
		case http.MethodPost:
			s.apiCreateAmenity(w, r)
		default:
			methodNotAllowed(w)
		}
	case 1:
		switch r.Method {
		case http.MethodGet:
			s.apiGetAmenity(w, parts[0])
		case http.MethodPut:
			s.apiUpdateAmenity(w, r, parts[0])
		default:
			methodNotAllowed(w)
		}
	default:
		apiError(w, "not found", http.StatusNotFound)
	}
}

func (s *Server) apiCreateAmenity(w http.ResponseWriter, r *http.Request) {
	var req api.AmenityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		apiFailure(w, err)
		return
	}
	a, err := s.facade.CreateAmenity(req.Input())
	if err != nil {
		apiFailure(w, err)
		return
	}
	apiJSON(w, snapshot(s.facade, a, api.NewAmenityResponse), http.StatusCreated)
}

func (s *Server) apiGetAmenity(w http.ResponseWriter, id string) {
	a, err := s.facade.GetAmenity(id)
	if err != nil {
		apiFailure(w, err)
		return
	}
	apiJSON(w, snapshot(s.facade, a, api.NewAmenityResponse), http.StatusOK)
}

func (s *Server) apiUpdateAmenity(w http.ResponseWriter, r *http.Request, id string) {
	var req api.AmenityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		apiFailure(w, err)
		return
	}
	a, err := s.facade.UpdateAmenity(id, req.Update())
	if err != nil {
		apiFailure(w, err)
		return
	}
	apiJSON(w, snapshot(s.facade, a, api.NewAmenityResponse), http.StatusOK)
}
