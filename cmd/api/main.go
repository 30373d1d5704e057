package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/punchamoorthee/bankapi/internal/api"
	"github.com/punchamoorthee/bankapi/internal/config"
	"github.com/punchamoorthee/bankapi/internal/service"
	"github.com/punchamoorthee/bankapi/internal/store"
	"github.com/punchamoorthee/bankapi/internal/store/memory"
	"github.com/punchamoorthee/bankapi/internal/store/postgres"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}

	ctx := context.Background()

	var (
		users        store.UserStore
		accounts     store.AccountStore
		transactions store.TransactionStore
	)

	if cfg.DBSource != "" {
		if err := postgres.RunMigrations(ctx, cfg.DBSource); err != nil {
			logger.Fatal().Err(err).Msg("migrations failed")
		}
		st, err := postgres.NewStore(ctx, cfg.DBSource, cfg.BalanceCeiling)
		if err != nil {
			logger.Fatal().Err(err).Msg("unable to connect to database")
		}
		defer st.Close()
		users, accounts, transactions = st.Users(), st.Accounts(), st.Transactions()
	} else {
		logger.Warn().Msg("DB_SOURCE not set, using in-memory store")
		st := memory.NewStore(cfg.BalanceCeiling)
		users, accounts, transactions = st.Users(), st.Accounts(), st.Transactions()
	}

	authz := service.NewAuthorizer(accounts, transactions)
	authSvc := service.NewAuthService(users, cfg)
	userSvc := service.NewUserService(users, authz)
	accountSvc := service.NewAccountService(accounts, authz, cfg)
	txSvc := service.NewTransactionService(transactions, authz, cfg.BalanceCeiling)

	server := api.NewServer(logger, authSvc, userSvc, accountSvc, txSvc)

	logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, server.Router()); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
