package dashboard

import (
	"testing"

	"github.com/Tanmay1202/macnmanage/internal/models"
)

func res(typ, status string) models.Resource {
	return models.Resource{Type: typ, Status: status}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		resources []models.Resource
		want      Summary
	}{
		{
			name:      "empty snapshot",
			resources: nil,
			want:      Summary{TotalResources: 0, LowStock: 0, ActiveProduction: 0, SystemStatus: StatusNominal},
		},
		{
			name: "all healthy",
			resources: []models.Resource{
				res(models.TypeRawMaterial, models.StatusAvailable),
				res(models.TypeTool, models.StatusAvailable),
			},
			want: Summary{TotalResources: 2, LowStock: 0, ActiveProduction: 0, SystemStatus: StatusNominal},
		},
		{
			name: "low stock raises warning",
			resources: []models.Resource{
				res(models.TypeRawMaterial, models.StatusAvailable),
				res(models.TypeRawMaterial, models.StatusLowStock),
				res(models.TypeRawMaterial, models.StatusOutOfStock),
			},
			want: Summary{TotalResources: 3, LowStock: 2, ActiveProduction: 0, SystemStatus: StatusWarning},
		},
		{
			name: "single critical dominates everything",
			resources: []models.Resource{
				res(models.TypeRawMaterial, models.StatusAvailable),
				res(models.TypeRawMaterial, models.StatusCritical),
			},
			want: Summary{TotalResources: 2, LowStock: 1, ActiveProduction: 0, SystemStatus: StatusCritical},
		},
		{
			name: "operational machines count as active production",
			resources: []models.Resource{
				res(models.TypeMachine, models.StatusOperational),
				res(models.TypeMachine, models.StatusMaintenance),
				// Operational non-machines do not count
				res(models.TypeTool, models.StatusOperational),
			},
			want: Summary{TotalResources: 3, LowStock: 0, ActiveProduction: 1, SystemStatus: StatusNominal},
		},
		{
			name: "warning statuses count toward low stock",
			resources: []models.Resource{
				res(models.TypeMachine, models.StatusWarning),
			},
			want: Summary{TotalResources: 1, LowStock: 1, ActiveProduction: 0, SystemStatus: StatusWarning},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.resources)
			if got != tt.want {
				t.Errorf("Summarize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSummarizeIsPure(t *testing.T) {
	input := []models.Resource{
		res(models.TypeMachine, models.StatusOperational),
		res(models.TypeRawMaterial, models.StatusCritical),
	}

	first := Summarize(input)
	second := Summarize(input)
	if first != second {
		t.Errorf("Summarize should be deterministic: %+v != %+v", first, second)
	}

	if input[0].Status != models.StatusOperational || input[1].Status != models.StatusCritical {
		t.Error("Summarize should not mutate its input")
	}
}
