package response

import (
	"time"

	"construtora_api/internal/domain/entities"
	"construtora_api/internal/usecase"
)

type ChecklistItemResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ManualMaterialResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	PricePerM2 float64 `json:"pricePerM2"`
	AreaM2     float64 `json:"areaM2"`
	LineTotal  float64 `json:"lineTotal"`
}

type ManualLaborResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type BudgetManualResponse struct {
	Materials []ManualMaterialResponse `json:"materials"`
	Labor     []ManualLaborResponse    `json:"labor"`
	Discount  float64                  `json:"discount"`
	Total     float64                  `json:"total"`
}

type ClientSnapshotResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
}

// WorkResponse is the back-office work view. The stored budget variant is
// flattened back into the mutually exclusive budgetPreset/budgetManual pair;
// progressPercent and the manual line totals are derived on the way out.
type WorkResponse struct {
	ID              string                  `json:"id"`
	Title           string                  `json:"title"`
	ResponsibleName string                  `json:"responsibleName"`
	Client          string                  `json:"client,omitempty"`
	ClientSnapshot  *ClientSnapshotResponse `json:"clientSnapshot,omitempty"`
	Status          string                  `json:"status"`
	BudgetPreset    *string                 `json:"budgetPreset"`
	BudgetManual    *BudgetManualResponse   `json:"budgetManual"`
	Checklist       []ChecklistItemResponse `json:"checklist"`
	ProgressPercent int                     `json:"progressPercent"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

func FromWork(w entities.Work) WorkResponse {
	res := WorkResponse{
		ID:              w.ID,
		Title:           w.Title,
		ResponsibleName: w.ResponsibleName,
		Client:          w.ClientID,
		Status:          w.Status,
		Checklist:       fromChecklist(w.Checklist),
		ProgressPercent: w.ProgressPercent(),
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
	if w.ClientSnapshot != nil {
		res.ClientSnapshot = &ClientSnapshotResponse{
			Name:    w.ClientSnapshot.Name,
			Email:   w.ClientSnapshot.Email,
			Phone:   w.ClientSnapshot.Phone,
			Company: w.ClientSnapshot.Company,
		}
	}
	switch w.Budget.Kind {
	case entities.BudgetKindPreset:
		presetID := w.Budget.PresetID
		res.BudgetPreset = &presetID
	case entities.BudgetKindManual:
		manual := fromBudgetManual(*w.Budget.Manual)
		res.BudgetManual = &manual
	}
	return res
}

func FromWorks(works []entities.Work) []WorkResponse {
	res := make([]WorkResponse, 0, len(works))
	for _, w := range works {
		res = append(res, FromWork(w))
	}
	return res
}

func fromChecklist(items []entities.ChecklistItem) []ChecklistItemResponse {
	res := make([]ChecklistItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, ChecklistItemResponse{
			ID:        item.ID,
			Title:     item.Title,
			Done:      item.Done,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		})
	}
	return res
}

func fromBudgetManual(b entities.BudgetManual) BudgetManualResponse {
	res := BudgetManualResponse{
		Materials: make([]ManualMaterialResponse, 0, len(b.Materials)),
		Labor:     make([]ManualLaborResponse, 0, len(b.Labor)),
		Discount:  b.Discount,
		Total:     b.Total(),
	}
	for _, m := range b.Materials {
		res.Materials = append(res.Materials, ManualMaterialResponse{
			ID:         m.ID,
			Name:       m.Name,
			PricePerM2: m.PricePerM2,
			AreaM2:     m.AreaM2,
			LineTotal:  m.LineTotal(),
		})
	}
	for _, l := range b.Labor {
		res.Labor = append(res.Labor, ManualLaborResponse{ID: l.ID, Name: l.Name, Price: l.Price})
	}
	return res
}

// WorkDetailResponse resolves the client and preset references for the
// back-office detail view.
type WorkDetailResponse struct {
	WorkResponse
	ClientDetail *ClientResponse       `json:"clientDetail,omitempty"`
	PresetDetail *BudgetPresetResponse `json:"budgetPresetDetail,omitempty"`
}

func FromWorkDetail(d usecase.WorkDetail) WorkDetailResponse {
	res := WorkDetailResponse{WorkResponse: FromWork(d.Work)}
	if d.Client != nil {
		client := FromClient(*d.Client)
		res.ClientDetail = &client
	}
	if d.Preset != nil {
		preset := FromBudgetPreset(*d.Preset)
		res.PresetDetail = &preset
	}
	return res
}

// WorkPageResponse is the paginated list envelope.
type WorkPageResponse struct {
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
	Total int            `json:"total"`
	Data  []WorkResponse `json:"data"`
}

func FromWorkPage(p usecase.WorkPage) WorkPageResponse {
	return WorkPageResponse{
		Page:  p.Page,
		Limit: p.Limit,
		Total: p.Total,
		Data:  FromWorks(p.Works),
	}
}
