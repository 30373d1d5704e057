// Package api wires the domain services to HTTP: routing, the request
// body contracts, the authentication middleware, and the status-code mapping
// for the error taxonomy.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/punchamoorthee/bankapi/internal/service"
)

type Server struct {
	log          zerolog.Logger
	auth         *service.AuthService
	users        *service.UserService
	accounts     *service.AccountService
	transactions *service.TransactionService
}

func NewServer(log zerolog.Logger, auth *service.AuthService, users *service.UserService,
	accounts *service.AccountService, transactions *service.TransactionService) *Server {
	return &Server{
		log:          log,
		auth:         auth,
		users:        users,
		accounts:     accounts,
		transactions: transactions,
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.instrument)

	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	r.HandleFunc("/register", s.handleRegister).Methods("POST")
	r.HandleFunc("/login", s.handleLogin).Methods("POST")

	protected := r.PathPrefix("/").Subrouter()
	protected.Use(s.authenticate)

	protected.HandleFunc("/logout", s.handleLogout).Methods("POST")

	v1 := protected.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/users", s.handleListUsers).Methods("GET")
	v1.HandleFunc("/users/{id}", s.handleGetUser).Methods("GET")
	v1.HandleFunc("/users/{id}", s.handleUpdateUser).Methods("PATCH")
	v1.HandleFunc("/users/{id}", s.handleDeleteUser).Methods("DELETE")

	v1.HandleFunc("/accounts", s.handleCreateAccount).Methods("POST")
	v1.HandleFunc("/accounts", s.handleListAccounts).Methods("GET")
	v1.HandleFunc("/accounts/{accountNumber}", s.handleGetAccount).Methods("GET")
	v1.HandleFunc("/accounts/{accountNumber}", s.handleUpdateAccount).Methods("PATCH")
	v1.HandleFunc("/accounts/{accountNumber}", s.handleDeleteAccount).Methods("DELETE")

	v1.HandleFunc("/accounts/{accountNumber}/transactions", s.handleCreateTransaction).Methods("POST")
	v1.HandleFunc("/accounts/{accountNumber}/transactions", s.handleListTransactions).Methods("GET")
	v1.HandleFunc("/accounts/{accountNumber}/transactions/{transactionId}", s.handleGetTransaction).Methods("GET")

	// Legacy unversioned user routes kept as compatibility aliases.
	protected.HandleFunc("/users", s.handleListUsers).Methods("GET")
	protected.HandleFunc("/users/{id}", s.handleGetUser).Methods("GET")
	protected.HandleFunc("/users/{id}", s.handleUpdateUser).Methods("PATCH")
	protected.HandleFunc("/users/{id}", s.handleDeleteUser).Methods("DELETE")

	return r
}
