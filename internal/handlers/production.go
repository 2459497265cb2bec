package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Tanmay1202/macnmanage/internal/events"
	"github.com/Tanmay1202/macnmanage/internal/models"
)

// resourceRef is the resolved display form of a log's resource reference
type resourceRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// productionEntry is a log entry with its resource reference resolved
// for display. A dangling reference resolves to name "Unknown".
type productionEntry struct {
	models.ProductionLog
	Resource resourceRef `json:"resource"`
}

// productionInput carries the caller-settable fields of a log entry
type productionInput struct {
	Resource         string   `json:"resource"`
	Action           string   `json:"action"`
	QuantityProduced *float64 `json:"quantityProduced"`
	Efficiency       *float64 `json:"efficiency"`
	Notes            string   `json:"notes"`
}

// resolveLogs attaches {id, name, type} of each referenced resource.
// References are weak: a deleted resource shows up as "Unknown".
func (r *Router) resolveLogs(logs []models.ProductionLog) ([]productionEntry, error) {
	ids := make([]string, 0, len(logs))
	seen := map[string]bool{}
	for _, l := range logs {
		if !seen[l.ResourceID] {
			seen[l.ResourceID] = true
			ids = append(ids, l.ResourceID)
		}
	}

	byID := map[string]models.Resource{}
	if len(ids) > 0 {
		var resources []models.Resource
		if err := r.db.Where("id IN ?", ids).Find(&resources).Error; err != nil {
			return nil, err
		}
		for _, res := range resources {
			byID[res.ID] = res
		}
	}

	entries := make([]productionEntry, 0, len(logs))
	for _, l := range logs {
		ref := resourceRef{ID: l.ResourceID, Name: "Unknown"}
		if res, ok := byID[l.ResourceID]; ok {
			ref.Name = res.Name
			ref.Type = res.Type
		}
		entries = append(entries, productionEntry{ProductionLog: l, Resource: ref})
	}
	return entries, nil
}

// listProduction returns the caller's log entries, most recent first
func (r *Router) listProduction(w http.ResponseWriter, req *http.Request) {
	var logs []models.ProductionLog
	if err := r.db.Where("user_id = ?", r.caller(req)).Order("created_at DESC").Find(&logs).Error; err != nil {
		r.serverError(w, "Failed to fetch production logs", err)
		return
	}

	entries, err := r.resolveLogs(logs)
	if err != nil {
		r.serverError(w, "Failed to fetch production logs", err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// appendProduction records a new log entry. The resource reference is
// not checked for existence or ownership; the ledger accepts appends
// against ids the caller cannot even see.
func (r *Router) appendProduction(w http.ResponseWriter, req *http.Request) {
	var input productionInput
	if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if input.Resource == "" || input.Action == "" {
		respondError(w, http.StatusBadRequest, "Please add resource and action")
		return
	}
	if !models.ValidProductionAction(input.Action) {
		respondError(w, http.StatusBadRequest, "Invalid action value")
		return
	}

	log := models.ProductionLog{
		UserID:     r.caller(req),
		ResourceID: input.Resource,
		Action:     input.Action,
		Efficiency: 100,
		Notes:      input.Notes,
	}
	if input.QuantityProduced != nil {
		log.QuantityProduced = *input.QuantityProduced
	}
	if input.Efficiency != nil {
		log.Efficiency = *input.Efficiency
	}

	if err := r.db.Create(&log).Error; err != nil {
		r.serverError(w, "Failed to create production log", err)
		return
	}

	r.hub.Publish(log.UserID, events.ProductionAppended, log)
	respondJSON(w, http.StatusCreated, log)
}
