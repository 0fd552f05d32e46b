package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/account"
	accountStore "github.com/jorge-ld8/budget-tracking-sub001/internal/account/store"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/budget"
	budgetStore "github.com/jorge-ld8/budget-tracking-sub001/internal/budget/store"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/category"
	categoryStore "github.com/jorge-ld8/budget-tracking-sub001/internal/category/store"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/config"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/database"
	apiHttp "github.com/jorge-ld8/budget-tracking-sub001/internal/http"
	accountHandler "github.com/jorge-ld8/budget-tracking-sub001/internal/http/account"
	budgetHandler "github.com/jorge-ld8/budget-tracking-sub001/internal/http/budget"
	categoryHandler "github.com/jorge-ld8/budget-tracking-sub001/internal/http/category"
	txHandler "github.com/jorge-ld8/budget-tracking-sub001/internal/http/transaction"
	userHandler "github.com/jorge-ld8/budget-tracking-sub001/internal/http/user"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/transaction"
	txStore "github.com/jorge-ld8/budget-tracking-sub001/internal/transaction/store"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/user"
	userStore "github.com/jorge-ld8/budget-tracking-sub001/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if cfg.Auth.Secret == "" {
		slog.Error("JWT_SECRET must be set")
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		userService        = user.NewService(userStore.New(db))
		accountService     = account.NewService(accountStore.New(db))
		categoryService    = category.NewService(categoryStore.New(db))
		budgetService      = budget.NewService(budgetStore.New(db))
		transactionService = transaction.NewService(txStore.New(db))
	)

	var (
		userH        = userHandler.NewHandler(userService, cfg.Auth.Secret, cfg.Auth.TokenTTL)
		accountH     = accountHandler.NewHandler(accountService)
		categoryH    = categoryHandler.NewHandler(categoryService)
		budgetH      = budgetHandler.NewHandler(budgetService)
		transactionH = txHandler.NewHandler(transactionService)
	)

	router := apiHttp.New(cfg.Auth.Secret, userH, accountH, categoryH, budgetH, transactionH)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
