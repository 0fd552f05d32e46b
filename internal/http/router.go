package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jorge-ld8/budget-tracking-sub001/internal/auth"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/http/account"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/http/budget"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/http/category"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/http/httpx"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/http/transaction"
	"github.com/jorge-ld8/budget-tracking-sub001/internal/http/user"
)

func New(
	jwtSecret string,
	users *user.Handler,
	accounts *account.Handler,
	categories *category.Handler,
	budgets *budget.Handler,
	transactions *transaction.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))

		r.Route("/users", func(r chi.Router) {
			users.PublicRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(authenticator(jwtSecret))
				users.Routes(r)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticator(jwtSecret))

			r.Route("/accounts", accounts.Routes)
			r.Route("/categories", categories.Routes)
			r.Route("/budgets", budgets.Routes)
			r.Route("/transactions", transactions.Routes)
		})
	})

	return router
}

// authenticator rejects requests without a valid bearer token and stashes
// the token's user ID in the request context.
func authenticator(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.BearerToken(r.Header)
			if err != nil {
				httpx.Error(w, http.StatusUnauthorized, err.Error())
				return
			}

			userID, err := auth.ValidateJWT(token, secret)
			if err != nil {
				httpx.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(httpx.WithUserID(r.Context(), userID)))
		})
	}
}
