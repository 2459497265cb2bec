package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Production actions. Closed enum, unlike resource type/status.
const (
	ActionStart       = "Start"
	ActionStop        = "Stop"
	ActionOutput      = "Output"
	ActionMaintenance = "Maintenance"
	ActionIssue       = "Issue"
)

var productionActions = map[string]bool{
	ActionStart:       true,
	ActionStop:        true,
	ActionOutput:      true,
	ActionMaintenance: true,
	ActionIssue:       true,
}

// ValidProductionAction reports whether a is one of the closed action values
func ValidProductionAction(a string) bool {
	return productionActions[a]
}

// ProductionLog is an append-only event recorded against a resource.
// Entries are never updated or deleted once written; the resource
// reference is weak and may dangle after the resource is removed.
type ProductionLog struct {
	ID               string  `gorm:"primaryKey;type:uuid" json:"id"`
	UserID           string  `gorm:"not null;index" json:"user"`
	ResourceID       string  `gorm:"not null;index" json:"resource"`
	Action           string  `gorm:"not null" json:"action"`
	QuantityProduced float64 `json:"quantityProduced"`
	Efficiency       float64 `json:"efficiency"`
	Notes            string  `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName specifies the table name for ProductionLog model
func (ProductionLog) TableName() string {
	return "production_logs"
}

// BeforeCreate assigns a UUID so IDs behave the same on every dialect
func (p *ProductionLog) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
