// Package dashboard computes summary figures from the current resource
// snapshot. It is a pure function of its input, recomputed on every
// read, with no persisted state of its own.
package dashboard

import (
	"github.com/Tanmay1202/macnmanage/internal/models"
)

// System status values, ordered by severity
const (
	StatusNominal  = "Nominal"
	StatusWarning  = "Warning"
	StatusCritical = "Critical"
)

// Summary holds the figures shown on the dashboard
type Summary struct {
	TotalResources   int    `json:"totalResources"`
	LowStock         int    `json:"lowStock"`
	ActiveProduction int    `json:"activeProduction"`
	SystemStatus     string `json:"systemStatus"`
}

// lowStockStatuses are the resource statuses counted as low stock
var lowStockStatuses = map[string]bool{
	models.StatusLowStock:   true,
	models.StatusWarning:    true,
	models.StatusCritical:   true,
	models.StatusOutOfStock: true,
}

// Summarize computes dashboard figures from a resource snapshot.
// A single Critical resource forces the system status to Critical no
// matter how many other resources are healthy.
func Summarize(resources []models.Resource) Summary {
	s := Summary{
		TotalResources: len(resources),
		SystemStatus:   StatusNominal,
	}

	hasCritical := false
	for _, r := range resources {
		if lowStockStatuses[r.Status] {
			s.LowStock++
		}
		if r.Type == models.TypeMachine && r.Status == models.StatusOperational {
			s.ActiveProduction++
		}
		if r.Status == models.StatusCritical {
			hasCritical = true
		}
	}

	switch {
	case hasCritical:
		s.SystemStatus = StatusCritical
	case s.LowStock > 0:
		s.SystemStatus = StatusWarning
	}

	return s
}
