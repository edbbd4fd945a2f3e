package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/lmachado/billfold/internal/account"
	accountStore "github.com/lmachado/billfold/internal/account/store"
	"github.com/lmachado/billfold/internal/client"
	clientStore "github.com/lmachado/billfold/internal/client/store"
	"github.com/lmachado/billfold/internal/config"
	"github.com/lmachado/billfold/internal/database"
	"github.com/lmachado/billfold/internal/export"
	billfoldHttp "github.com/lmachado/billfold/internal/http"
	accountHandler "github.com/lmachado/billfold/internal/http/account"
	clientHandler "github.com/lmachado/billfold/internal/http/client"
	exportHandler "github.com/lmachado/billfold/internal/http/export"
	ledgerHandler "github.com/lmachado/billfold/internal/http/ledger"
	"github.com/lmachado/billfold/internal/ledger"
	ledgerStore "github.com/lmachado/billfold/internal/ledger/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		slog.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	var (
		accountService = account.NewService(accountStore.New(db), cfg.Auth.BcryptCost)
		clientService  = client.NewService(clientStore.New(db))
		ledgerService  = ledger.NewService(ledgerStore.New(db))
		exportService  = export.NewService(clientService, ledgerService)
	)

	secret := []byte(cfg.Auth.Secret)

	var (
		accountH = accountHandler.NewHandler(accountService, secret, cfg.Auth.TokenTTL)
		clientH  = clientHandler.NewHandler(clientService, ledgerService)
		ledgerH  = ledgerHandler.NewHandler(ledgerService)
		exportH  = exportHandler.NewHandler(exportService)
	)

	router := billfoldHttp.New(secret, accountH, clientH, ledgerH, exportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
