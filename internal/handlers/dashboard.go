package handlers

import (
	"net/http"

	"github.com/Tanmay1202/macnmanage/internal/dashboard"
	"github.com/Tanmay1202/macnmanage/internal/models"
)

// How many recent log entries ride along with the summary
const recentLogLimit = 20

// getDashboard computes the summary for the caller's current snapshot.
// Nothing is cached, every read recomputes from live data.
func (r *Router) getDashboard(w http.ResponseWriter, req *http.Request) {
	userID := r.caller(req)

	resources := []models.Resource{}
	if err := r.db.Where("user_id = ?", userID).Find(&resources).Error; err != nil {
		r.serverError(w, "Failed to fetch resources", err)
		return
	}

	var logs []models.ProductionLog
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Limit(recentLogLimit).Find(&logs).Error; err != nil {
		r.serverError(w, "Failed to fetch production logs", err)
		return
	}

	entries, err := r.resolveLogs(logs)
	if err != nil {
		r.serverError(w, "Failed to fetch production logs", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"summary":    dashboard.Summarize(resources),
		"recentLogs": entries,
	})
}
