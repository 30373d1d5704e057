package api

import (
	"encoding/json"
	"net/http"

	"github.com/punchamoorthee/bankapi/internal/domain"
	"github.com/punchamoorthee/bankapi/internal/money"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// renderError maps the domain error taxonomy onto the status contract.
// Store-kind failures are logged with their cause and rendered generically;
// driver error text never reaches the client.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	status := statusFor(kind)
	if kind == domain.KindStore {
		s.log.Error().Err(err).Str("path", r.URL.Path).Msg("store failure")
		respondWithError(w, status, "internal server error")
		return
	}
	respondWithError(w, status, err.Error())
}

func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// accountResponse renders balances as two-decimal strings on the wire while
// the domain keeps minor units.
type accountResponse struct {
	domain.Account
	Balance string `json:"balance"`
}

func newAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{Account: *a, Balance: money.Format(a.Balance)}
}

func newAccountResponses(accounts []*domain.Account) []accountResponse {
	out := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, newAccountResponse(a))
	}
	return out
}

type transactionResponse struct {
	domain.Transaction
	Amount string `json:"amount"`
}

func newTransactionResponse(t *domain.Transaction) transactionResponse {
	return transactionResponse{Transaction: *t, Amount: money.Format(t.Amount)}
}

func newTransactionResponses(txs []*domain.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, newTransactionResponse(t))
	}
	return out
}
