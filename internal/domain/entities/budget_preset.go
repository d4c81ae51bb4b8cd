package entities

import "time"

// BudgetPreset is a reusable budget template referenced by works.
//
// Storage model (DynamoDB):
//   - PK: id
type BudgetPreset struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Materials []PresetMaterial `json:"materials"`
	Labor     []PresetLabor    `json:"labor"`
	Discount  float64          `json:"discount"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type PresetMaterial struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	PricePerM2 float64 `json:"pricePerM2"`
	M2         float64 `json:"m2"`
}

type PresetLabor struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

func (p BudgetPreset) Total() float64 {
	total := 0.0
	for _, m := range p.Materials {
		total += m.PricePerM2 * m.M2
	}
	for _, l := range p.Labor {
		total += l.Value
	}
	return total - p.Discount
}
