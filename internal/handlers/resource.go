package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Tanmay1202/macnmanage/internal/events"
	"github.com/Tanmay1202/macnmanage/internal/models"
	"github.com/gorilla/mux"
	"gorm.io/datatypes"
)

// resourceInput carries the caller-settable fields of a resource.
// Owner is never read from the body: it always comes from the token.
type resourceInput struct {
	Name         string                 `json:"name"`
	Type         string                 `json:"type"`
	Quantity     *float64               `json:"quantity"`
	Unit         string                 `json:"unit"`
	PricePerUnit *float64               `json:"pricePerUnit"`
	Location     string                 `json:"location"`
	Status       string                 `json:"status"`
	CustomFields map[string]interface{} `json:"customFields"`
}

// resourcePatch is the partial-update payload. Pointer fields
// distinguish "absent" from "set to zero value" so an update only
// touches the columns the caller actually sent.
type resourcePatch struct {
	Name         *string                 `json:"name"`
	Type         *string                 `json:"type"`
	Quantity     *float64                `json:"quantity"`
	Unit         *string                 `json:"unit"`
	PricePerUnit *float64                `json:"pricePerUnit"`
	Location     *string                 `json:"location"`
	Status       *string                 `json:"status"`
	CustomFields *map[string]interface{} `json:"customFields"`
}

// listResources returns all resources owned by the caller
func (r *Router) listResources(w http.ResponseWriter, req *http.Request) {
	resources := []models.Resource{}
	if err := r.db.Where("user_id = ?", r.caller(req)).Find(&resources).Error; err != nil {
		r.serverError(w, "Failed to fetch resources", err)
		return
	}
	respondJSON(w, http.StatusOK, resources)
}

// createResource creates a new resource owned by the caller
func (r *Router) createResource(w http.ResponseWriter, req *http.Request) {
	var input resourceInput
	if err := json.NewDecoder(req.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if strings.TrimSpace(input.Name) == "" {
		respondError(w, http.StatusBadRequest, "Please add a name field")
		return
	}

	status := models.StatusAvailable
	if input.Status != "" {
		if !models.ValidResourceStatus(input.Status) {
			respondError(w, http.StatusBadRequest, "Invalid status value")
			return
		}
		status = input.Status
	}

	resource := models.Resource{
		UserID:       r.caller(req),
		Name:         input.Name,
		Type:         input.Type,
		Unit:         input.Unit,
		Location:     input.Location,
		Status:       status,
		CustomFields: datatypes.JSONMap(input.CustomFields),
	}
	if input.Quantity != nil {
		resource.Quantity = *input.Quantity
	}
	if input.PricePerUnit != nil {
		resource.PricePerUnit = *input.PricePerUnit
	}

	if err := r.db.Create(&resource).Error; err != nil {
		r.serverError(w, "Failed to create resource", err)
		return
	}

	r.hub.Publish(resource.UserID, events.ResourceCreated, resource)
	respondJSON(w, http.StatusCreated, resource)
}

// updateResource merges the provided fields into an existing resource.
// Columns the caller did not send stay untouched, so two concurrent
// updates to disjoint fields do not clobber each other.
func (r *Router) updateResource(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	resource, err := r.loadOwnedResource(id, r.caller(req))
	if err != nil {
		r.respondGuardError(w, err)
		return
	}

	var patch resourcePatch
	if err := json.NewDecoder(req.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			respondError(w, http.StatusBadRequest, "Please add a name field")
			return
		}
		updates["name"] = *patch.Name
	}
	if patch.Type != nil {
		updates["type"] = *patch.Type
	}
	if patch.Quantity != nil {
		updates["quantity"] = *patch.Quantity
	}
	if patch.Unit != nil {
		updates["unit"] = *patch.Unit
	}
	if patch.PricePerUnit != nil {
		updates["price_per_unit"] = *patch.PricePerUnit
	}
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}
	if patch.Status != nil {
		if !models.ValidResourceStatus(*patch.Status) {
			respondError(w, http.StatusBadRequest, "Invalid status value")
			return
		}
		updates["status"] = *patch.Status
	}
	if patch.CustomFields != nil {
		updates["custom_fields"] = datatypes.JSONMap(*patch.CustomFields)
	}

	if len(updates) > 0 {
		if err := r.db.Model(resource).Updates(updates).Error; err != nil {
			r.serverError(w, "Failed to update resource", err)
			return
		}
		// Reload so the response carries canonical values
		if err := r.db.First(resource, "id = ?", id).Error; err != nil {
			r.serverError(w, "Failed to fetch resource", err)
			return
		}
	}

	r.hub.Publish(resource.UserID, events.ResourceUpdated, resource)
	respondJSON(w, http.StatusOK, resource)
}

// deleteResource permanently removes a resource. Production log
// entries referencing it are left in place and dangle.
func (r *Router) deleteResource(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	if _, err := r.loadOwnedResource(id, r.caller(req)); err != nil {
		r.respondGuardError(w, err)
		return
	}

	if err := r.db.Delete(&models.Resource{}, "id = ?", id).Error; err != nil {
		r.serverError(w, "Failed to delete resource", err)
		return
	}

	r.hub.Publish(r.caller(req), events.ResourceDeleted, map[string]string{"id": id})
	respondJSON(w, http.StatusOK, map[string]string{"id": id})
}
