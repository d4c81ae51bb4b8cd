package request

import (
	"construtora_api/internal/domain/entities"
	"construtora_api/internal/usecase"
)

type ChecklistItemRequest struct {
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

type ManualMaterialRequest struct {
	Name       string  `json:"name" binding:"required"`
	PricePerM2 float64 `json:"pricePerM2"`
	AreaM2     float64 `json:"areaM2"`
}

type ManualLaborRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
}

type BudgetManualRequest struct {
	Materials []ManualMaterialRequest `json:"materials"`
	Labor     []ManualLaborRequest    `json:"labor"`
	Discount  float64                 `json:"discount"`
}

// WorkRequest is the create/update payload for works. Pointer fields express
// "not provided" so PUT keeps partial-merge semantics; budgetPreset and
// budgetManual follow the manual-wins precedence rule downstream.
type WorkRequest struct {
	Title           *string                `json:"title"`
	ResponsibleName *string                `json:"responsibleName"`
	Client          *string                `json:"client"`
	ClientSnapshot  *ClientSnapshotRequest `json:"clientSnapshot"`
	Status          *string                `json:"status"`
	BudgetPreset    *string                `json:"budgetPreset"`
	BudgetManual    *BudgetManualRequest   `json:"budgetManual"`
	Checklist       []ChecklistItemRequest `json:"checklist"`
}

type ClientSnapshotRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
}

func (r WorkRequest) ToWrite() usecase.WorkWrite {
	write := usecase.WorkWrite{
		Title:           r.Title,
		ResponsibleName: r.ResponsibleName,
		ClientID:        r.Client,
		Status:          r.Status,
		BudgetPresetID:  r.BudgetPreset,
	}
	if r.ClientSnapshot != nil {
		write.ClientSnapshot = &entities.ClientSnapshot{
			Name:    r.ClientSnapshot.Name,
			Email:   r.ClientSnapshot.Email,
			Phone:   r.ClientSnapshot.Phone,
			Company: r.ClientSnapshot.Company,
		}
	}
	if r.BudgetManual != nil {
		manual := entities.BudgetManual{
			Materials: make([]entities.ManualMaterial, 0, len(r.BudgetManual.Materials)),
			Labor:     make([]entities.ManualLabor, 0, len(r.BudgetManual.Labor)),
			Discount:  r.BudgetManual.Discount,
		}
		for _, m := range r.BudgetManual.Materials {
			manual.Materials = append(manual.Materials, entities.ManualMaterial{Name: m.Name, PricePerM2: m.PricePerM2, AreaM2: m.AreaM2})
		}
		for _, l := range r.BudgetManual.Labor {
			manual.Labor = append(manual.Labor, entities.ManualLabor{Name: l.Name, Price: l.Price})
		}
		write.BudgetManual = &manual
	}
	for _, item := range r.Checklist {
		write.Checklist = append(write.Checklist, entities.ChecklistItem{Title: item.Title, Done: item.Done})
	}
	return write
}

// ChecklistAddRequest is the body of PATCH /works/:id/checklist.
type ChecklistAddRequest struct {
	Title string `json:"title"`
}
