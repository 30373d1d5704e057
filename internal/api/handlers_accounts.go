package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/punchamoorthee/bankapi/internal/domain"
)

type createAccountRequest struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Currency string `json:"currency"`
}

// updateAccountRequest carries only the owner-mutable fields; a balance or
// account number in the body is simply not part of the contract.
type updateAccountRequest struct {
	Name     *string `json:"name"`
	Type     *string `json:"type"`
	Currency *string `json:"currency"`
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	account, err := s.accounts.Create(r.Context(), identityFrom(r.Context()),
		req.Name, domain.AccountType(req.Type), req.Currency)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, newAccountResponse(account))
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.accounts.List(r.Context(), identityFrom(r.Context()))
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newAccountResponses(accounts))
}

func (s *Server) handleGetAccount(w http.ResponseWriter, r *http.Request) {
	account, err := s.accounts.Get(r.Context(), identityFrom(r.Context()), mux.Vars(r)["accountNumber"])
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newAccountResponse(account))
}

func (s *Server) handleUpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req updateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	patch := domain.AccountPatch{Name: req.Name, Currency: req.Currency}
	if req.Type != nil {
		t := domain.AccountType(*req.Type)
		patch.Type = &t
	}

	account, err := s.accounts.Update(r.Context(), identityFrom(r.Context()), mux.Vars(r)["accountNumber"], patch)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newAccountResponse(account))
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := s.accounts.Delete(r.Context(), identityFrom(r.Context()), mux.Vars(r)["accountNumber"]); err != nil {
		s.renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
