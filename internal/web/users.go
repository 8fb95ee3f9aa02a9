package web

import (
	"net/http"

	"github.com/evcraddock/hbnb/internal/api"
)

// handleAPIUsers routes /api/v1/users requests.
func (s *Server) handleAPIUsers(w http.ResponseWriter, r *http.Request) {
	parts := splitPath(r.URL.Path, apiPrefix+"/users")

	switch len(parts) {
	case 0:
		switch r.Method {
		case http.MethodGet:
			apiJSON(w, snapshot(s.facade, s.facade.GetAllUsers(), api.UserList), http.StatusOK)
		case http.MethodPost:
			s.apiCreateUser(w, r)
		default:
			methodNotAllowed(w)
		}
	case 1:
		switch r.Method {
		case http.MethodGet:
			s.apiGetUser(w, parts[0])
		case http.MethodPut:
			s.apiUpdateUser(w, r, parts[0])
		default:
			methodNotAllowed(w)
		}
	default:
		apiError(w, "not found", http.StatusNotFound)
	}
}

func (s *Server) apiCreateUser(w http.ResponseWriter, r *http.Request) {
	var req api.CreateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		apiFailure(w, err)
		return
	}
	u, err := s.facade.CreateUser(req.Input())
	if err != nil {
		apiFailure(w, err)
		return
	}
	apiJSON(w, snapshot(s.facade, u, api.NewUserResponse), http.StatusCreated)
}

func (s *Server) apiGetUser(w http.ResponseWriter, id string) {
	u, err := s.facade.GetUser(id)
	if err != nil {
		apiFailure(w, err)
		return
	}
	apiJSON(w, snapshot(s.facade, u, api.NewUserResponse), http.StatusOK)
}

func (s *Server) apiUpdateUser(w http.ResponseWriter, r *http.Request, id string) {
	var req api.UpdateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		apiFailure(w, err)
		return
	}
	u, err := s.facade.UpdateUser(id, req.Update())
	if err != nil {
		apiFailure(w, err)
		return
	}
	apiJSON(w, snapshot(s.facade, u, api.NewUserResponse), http.StatusOK)
}
