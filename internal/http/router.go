package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	accountHandler "github.com/lmachado/billfold/internal/http/account"
	clientHandler "github.com/lmachado/billfold/internal/http/client"
	exportHandler "github.com/lmachado/billfold/internal/http/export"
	ledgerHandler "github.com/lmachado/billfold/internal/http/ledger"
	"github.com/lmachado/billfold/internal/http/middleware"
)

func New(
	authSecret []byte,
	accountsV1 *accountHandler.Handler,
	clientsV1 *clientHandler.Handler,
	ledgerV1 *ledgerHandler.Handler,
	exportV1 *exportHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/accounts", func(r chi.Router) {
			r.Use(chimiddleware.AllowContentType("application/json"))
			accountsV1.Routes(r)
		})

		// Everything below requires an authenticated account.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticator(authSecret))

			r.Route("/clients", func(r chi.Router) {
				clientsV1.Routes(r)
				ledgerV1.ClientRoutes(r)
				exportV1.ClientRoutes(r)
			})

			r.Route("/summary", ledgerV1.SummaryRoutes)

			r.Route("/export", exportV1.Routes)
		})
	})

	return router
}
