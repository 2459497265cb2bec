package handlers

import (
	"fmt"
	"net/http"

	"github.com/Tanmay1202/macnmanage/internal/models"
	"github.com/Tanmay1202/macnmanage/internal/services/printer"
	"github.com/gorilla/mux"
)

// printResourceLabel returns a PDF label with a QR code for one resource
func (r *Router) printResourceLabel(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["id"]

	resource, err := r.loadOwnedResource(id, r.caller(req))
	if err != nil {
		r.respondGuardError(w, err)
		return
	}

	pdf, err := printer.GenerateResourceLabel(*resource)
	if err != nil {
		r.serverError(w, "Failed to generate label", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=label-%s.pdf", resource.ID))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

// printInventoryReport returns a PDF report of the caller's resources
func (r *Router) printInventoryReport(w http.ResponseWriter, req *http.Request) {
	resources := []models.Resource{}
	if err := r.db.Where("user_id = ?", r.caller(req)).Find(&resources).Error; err != nil {
		r.serverError(w, "Failed to fetch resources", err)
		return
	}

	pdf, err := printer.GenerateInventoryReport(resources)
	if err != nil {
		r.serverError(w, "Failed to generate report", err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=inventory-report.pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
