package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Recognized resource types. The column is an open string, these four
// are the values the dashboard rules care about.
const (
	TypeRawMaterial  = "Raw Material"
	TypeMachine      = "Machine"
	TypeTool         = "Tool"
	TypeFinishedGood = "Finished Good"
)

// Resource status values. Status is set explicitly by the client and is
// never derived from quantity.
const (
	StatusAvailable   = "Available"
	StatusLowStock    = "Low Stock"
	StatusOutOfStock  = "Out of Stock"
	StatusMaintenance = "Maintenance"
	StatusOperational = "Operational"
	StatusWarning     = "Warning"
	StatusCritical    = "Critical"
)

var resourceStatuses = map[string]bool{
	StatusAvailable:   true,
	StatusLowStock:    true,
	StatusOutOfStock:  true,
	StatusMaintenance: true,
	StatusOperational: true,
	StatusWarning:     true,
	StatusCritical:    true,
}

// ValidResourceStatus reports whether s is one of the recognized status values
func ValidResourceStatus(s string) bool {
	return resourceStatuses[s]
}

// Resource represents a tracked inventory item: a raw material, machine,
// tool or finished good. Visible and mutable only by its owner.
type Resource struct {
	ID           string            `gorm:"primaryKey;type:uuid" json:"id"`
	UserID       string            `gorm:"not null;index" json:"user"`
	Name         string            `gorm:"not null" json:"name"`
	Type         string            `json:"type"`
	Quantity     float64           `json:"quantity"`
	Unit         string            `json:"unit"`
	PricePerUnit float64           `json:"pricePerUnit"`
	Location     string            `json:"location,omitempty"`
	Status       string            `gorm:"default:'Available'" json:"status"`
	CustomFields datatypes.JSONMap `json:"customFields,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for Resource model
func (Resource) TableName() string {
	return "resources"
}

// BeforeCreate assigns a UUID so IDs behave the same on every dialect
func (r *Resource) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// Value returns the position value of the resource. Derived, never stored.
func (r *Resource) Value() float64 {
	return r.Quantity * r.PricePerUnit
}
