package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/punchamoorthee/bankapi/internal/domain"
	"github.com/punchamoorthee/bankapi/internal/money"
)

// createTransactionRequest accepts the amount as either a JSON number or a
// decimal string; both render to a json.Number.
type createTransactionRequest struct {
	Amount    json.Number `json:"amount"`
	Currency  string      `json:"currency"`
	Type      string      `json:"type"`
	Reference string      `json:"reference"`
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	if req.Amount == "" {
		respondWithError(w, http.StatusBadRequest, "missing amount")
		return
	}
	amount, err := money.Parse(req.Amount.String())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	tx, err := s.transactions.Create(r.Context(), identityFrom(r.Context()),
		mux.Vars(r)["accountNumber"], amount, req.Currency, domain.TransactionType(req.Type), req.Reference)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, newTransactionResponse(tx))
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.transactions.List(r.Context(), identityFrom(r.Context()), mux.Vars(r)["accountNumber"])
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": newTransactionResponses(txs),
	})
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tx, err := s.transactions.Get(r.Context(), identityFrom(r.Context()),
		vars["accountNumber"], vars["transactionId"])
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, newTransactionResponse(tx))
}
