package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Tanmay1202/macnmanage/internal/buildinfo"
	"github.com/Tanmay1202/macnmanage/internal/config"
	"github.com/Tanmay1202/macnmanage/internal/database"
	"github.com/Tanmay1202/macnmanage/internal/events"
	"github.com/Tanmay1202/macnmanage/internal/middleware"
	"github.com/Tanmay1202/macnmanage/internal/utils"
	"github.com/gorilla/mux"
)

// Router wraps the mux router with the database, config and event hub
type Router struct {
	*mux.Router
	db  *database.DB
	cfg *config.Config
	hub *events.Hub
}

// NewRouter creates a new HTTP router with all routes
func NewRouter(db *database.DB, cfg *config.Config, hub *events.Hub) *Router {
	r := &Router{
		Router: mux.NewRouter(),
		db:     db,
		cfg:    cfg,
		hub:    hub,
	}

	// Health check endpoint
	r.HandleFunc("/health", r.healthCheck).Methods("GET")

	// Change-event stream (token-gated, scoped to the caller)
	r.HandleFunc("/ws", r.serveEvents).Methods("GET")

	// Auth routes (public). Registered before the guarded /api
	// subrouter so login and register skip the token check.
	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/register", r.register).Methods("POST")
	auth.HandleFunc("/login", r.login).Methods("POST")

	// Everything else under /api requires a valid bearer token
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Auth(cfg.JWTSecret))

	api.HandleFunc("/auth/me", r.me).Methods("GET")

	// Resource routes
	api.HandleFunc("/resources", r.listResources).Methods("GET")
	api.HandleFunc("/resources", r.createResource).Methods("POST")
	api.HandleFunc("/resources/{id}", r.updateResource).Methods("PUT")
	api.HandleFunc("/resources/{id}", r.deleteResource).Methods("DELETE")

	// Production ledger routes. Append and read only, the ledger has
	// no update or delete surface.
	api.HandleFunc("/production", r.listProduction).Methods("GET")
	api.HandleFunc("/production", r.appendProduction).Methods("POST")

	// Dashboard summary
	api.HandleFunc("/dashboard", r.getDashboard).Methods("GET")

	// Labels and reports
	api.HandleFunc("/print/resources/{id}/label", r.printResourceLabel).Methods("GET")
	api.HandleFunc("/print/report", r.printInventoryReport).Methods("GET")

	return r
}

// serveEvents upgrades to the websocket event stream. Browsers cannot
// set headers on websocket requests, so the bearer token is accepted
// either as an Authorization header or a token query parameter. The
// listener only receives events for the authenticated user's records.
func (r *Router) serveEvents(w http.ResponseWriter, req *http.Request) {
	token := req.URL.Query().Get("token")
	if token == "" {
		parts := strings.Split(req.Header.Get("Authorization"), " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			token = parts[1]
		}
	}
	if token == "" {
		respondError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	claims, err := utils.ValidateToken(token, r.cfg.JWTSecret)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}
	userID, _ := claims["id"].(string)
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	events.ServeWs(r.hub, w, req, userID)
}

// healthCheck returns the health status of the API
func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"commit":    buildinfo.CommitHash,
		"startedAt": buildinfo.StartTime,
	})
}

// caller returns the authenticated user id attached by the middleware
func (r *Router) caller(req *http.Request) string {
	id, _ := middleware.UserID(req.Context())
	return id
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// serverError reports an unexpected failure. The underlying error is
// only exposed outside production.
func (r *Router) serverError(w http.ResponseWriter, message string, err error) {
	body := map[string]string{"error": message}
	if err != nil && !r.cfg.IsProduction() {
		body["detail"] = err.Error()
	}
	respondJSON(w, http.StatusInternalServerError, body)
}
