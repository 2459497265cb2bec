package handlers

import (
	"errors"
	"net/http"

	"github.com/Tanmay1202/macnmanage/internal/models"
	"gorm.io/gorm"
)

// Guard failures. NotFound and Forbidden are deliberately distinct so
// "no such record" and "someone else's record" stay distinguishable in
// responses, mirroring the upstream API contract.
var (
	errNotFound  = errors.New("resource not found")
	errForbidden = errors.New("user not authorized")
)

// loadOwnedResource fetches a resource and authorizes the caller as its
// owner. Every mutation goes through this single check.
func (r *Router) loadOwnedResource(id, userID string) (*models.Resource, error) {
	var res models.Resource
	if err := r.db.First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound
		}
		return nil, err
	}
	if res.UserID != userID {
		return nil, errForbidden
	}
	return &res, nil
}

// respondGuardError maps guard failures onto the API's status contract:
// missing record -> 400, owner mismatch -> 401, anything else -> 500.
func (r *Router) respondGuardError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errNotFound):
		respondError(w, http.StatusBadRequest, "Resource not found")
	case errors.Is(err, errForbidden):
		respondError(w, http.StatusUnauthorized, "User not authorized")
	default:
		r.serverError(w, "Failed to fetch resource", err)
	}
}
