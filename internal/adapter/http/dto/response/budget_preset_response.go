package response

import (
	"time"

	"construtora_api/internal/domain/entities"
)

type PresetMaterialResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	PricePerM2 float64 `json:"pricePerM2"`
	M2         float64 `json:"m2"`
}

type PresetLaborResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type BudgetPresetResponse struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	Materials []PresetMaterialResponse `json:"materials"`
	Labor     []PresetLaborResponse    `json:"labor"`
	Discount  float64                  `json:"discount"`
	Total     float64                  `json:"total"`
	CreatedAt time.Time                `json:"createdAt"`
	UpdatedAt time.Time                `json:"updatedAt"`
}

func FromBudgetPreset(p entities.BudgetPreset) BudgetPresetResponse {
	res := BudgetPresetResponse{
		ID:        p.ID,
		Name:      p.Name,
		Materials: make([]PresetMaterialResponse, 0, len(p.Materials)),
		Labor:     make([]PresetLaborResponse, 0, len(p.Labor)),
		Discount:  p.Discount,
		Total:     p.Total(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	for _, m := range p.Materials {
		res.Materials = append(res.Materials, PresetMaterialResponse{ID: m.ID, Name: m.Name, PricePerM2: m.PricePerM2, M2: m.M2})
	}
	for _, l := range p.Labor {
		res.Labor = append(res.Labor, PresetLaborResponse{ID: l.ID, Name: l.Name, Value: l.Value})
	}
	return res
}

func FromBudgetPresets(presets []entities.BudgetPreset) []BudgetPresetResponse {
	res := make([]BudgetPresetResponse, 0, len(presets))
	for _, p := range presets {
		res = append(res, FromBudgetPreset(p))
	}
	return res
}
