package rest

import (
	"net/http"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth        *AuthHandler
	Logs        *LogsHandler
	Preferences *PreferencesHandler
	Health      *HealthHandler
}

// NewRouter mounts all REST routes on a ServeMux. Auth resolution and
// the rest of the middleware chain wrap the returned handler in app.Run.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register/", h.Auth.Register)
	mux.HandleFunc("POST /auth/login/", h.Auth.Login)
	mux.HandleFunc("POST /auth/refresh/", h.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout/", h.Auth.Logout)
	mux.HandleFunc("GET /auth/me/", h.Auth.Me)

	mux.HandleFunc("GET /logs/raw", h.Logs.Raw)
	mux.HandleFunc("GET /logs/aggregated", h.Logs.Aggregated)
	mux.HandleFunc("GET /logs/export_csv", h.Logs.ExportCSV)

	mux.HandleFunc("GET /logs/", h.Logs.ListCollection)
	mux.HandleFunc("POST /logs/", h.Logs.Create)
	mux.HandleFunc("GET /logs/{id}", h.Logs.Get)
	mux.HandleFunc("PUT /logs/{id}", h.Logs.Update)
	mux.HandleFunc("DELETE /logs/{id}", h.Logs.Delete)

	mux.HandleFunc("GET /filter-preferences/", h.Preferences.List)
	mux.HandleFunc("POST /filter-preferences/", h.Preferences.Create)
	mux.HandleFunc("GET /filter-preferences/{id}", h.Preferences.Get)
	mux.HandleFunc("PUT /filter-preferences/{id}", h.Preferences.Update)
	mux.HandleFunc("DELETE /filter-preferences/{id}", h.Preferences.Delete)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /health/live", h.Health.Live)
	mux.HandleFunc("GET /health/ready", h.Health.Ready)

	return mux
}
