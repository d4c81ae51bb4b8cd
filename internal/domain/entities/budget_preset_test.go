package entities

import "testing"

func TestBudgetPresetTotal(t *testing.T) {
	p := BudgetPreset{
		Materials: []PresetMaterial{
			{Name: "Piso", PricePerM2: 40, M2: 25},
			{Name: "Azulejo", PricePerM2: 30, M2: 10},
		},
		Labor:    []PresetLabor{{Name: "Instalação", Value: 500}},
		Discount: 200,
	}
	// 1000 + 300 + 500 - 200
	if got := p.Total(); got != 1600 {
		t.Fatalf("expected total 1600, got %v", got)
	}
}
