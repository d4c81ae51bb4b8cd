package request

import (
	"construtora_api/internal/domain/entities"
	"construtora_api/internal/usecase"
)

type PresetMaterialRequest struct {
	Name       string  `json:"name" binding:"required"`
	PricePerM2 float64 `json:"pricePerM2"`
	M2         float64 `json:"m2"`
}

type PresetLaborRequest struct {
	Name  string  `json:"name" binding:"required"`
	Value float64 `json:"value"`
}

type BudgetPresetRequest struct {
	Name      *string                 `json:"name"`
	Materials []PresetMaterialRequest `json:"materials"`
	Labor     []PresetLaborRequest    `json:"labor"`
	Discount  *float64                `json:"discount"`
}

func (r BudgetPresetRequest) ToWrite() usecase.BudgetPresetWrite {
	write := usecase.BudgetPresetWrite{
		Name:     r.Name,
		Discount: r.Discount,
	}
	if r.Materials != nil {
		write.Materials = make([]entities.PresetMaterial, 0, len(r.Materials))
		for _, m := range r.Materials {
			write.Materials = append(write.Materials, entities.PresetMaterial{Name: m.Name, PricePerM2: m.PricePerM2, M2: m.M2})
		}
	}
	if r.Labor != nil {
		write.Labor = make([]entities.PresetLabor, 0, len(r.Labor))
		for _, l := range r.Labor {
			write.Labor = append(write.Labor, entities.PresetLabor{Name: l.Name, Value: l.Value})
		}
	}
	return write
}
