package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type updateUserRequest struct {
	Username string `json:"username"`
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context(), identityFrom(r.Context()))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, users)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Get(r.Context(), identityFrom(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	user, err := s.users.UpdateUsername(r.Context(), identityFrom(r.Context()), mux.Vars(r)["id"], req.Username)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Delete(r.Context(), identityFrom(r.Context()), mux.Vars(r)["id"]); err != nil {
		s.renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
