package response

import (
	"time"

	"construtora_api/internal/domain/entities"
	"construtora_api/internal/usecase"
)

// Public (client-portal) projections. These views never expose internal
// references (client id, snapshot contacts) or raw budget identifiers beyond
// what the portal renders.

type PublicChecklistItemResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Done      bool       `json:"done"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type PublicWorkSummaryResponse struct {
	ID              string                        `json:"id"`
	Title           string                        `json:"title"`
	ResponsibleName string                        `json:"responsibleName"`
	Status          string                        `json:"status"`
	ProgressPercent int                           `json:"progressPercent"`
	Checklist       []PublicChecklistItemResponse `json:"checklist"`
	CreatedAt       time.Time                     `json:"createdAt"`
}

// FromPublicWork builds the portal list entry. The title falls back to a
// label derived from the client snapshot when the work is untitled.
func FromPublicWork(w entities.Work) PublicWorkSummaryResponse {
	return PublicWorkSummaryResponse{
		ID:              w.ID,
		Title:           w.DisplayTitle(),
		ResponsibleName: w.ResponsibleName,
		Status:          w.Status,
		ProgressPercent: w.ProgressPercent(),
		Checklist:       publicChecklist(w.Checklist, false),
		CreatedAt:       w.CreatedAt,
	}
}

func FromPublicWorks(works []entities.Work) []PublicWorkSummaryResponse {
	res := make([]PublicWorkSummaryResponse, 0, len(works))
	for _, w := range works {
		res = append(res, FromPublicWork(w))
	}
	return res
}

type PublicPresetBudgetResponse struct {
	Type     string `json:"type"`
	PresetID string `json:"presetId"`
	Name     string `json:"name"`
}

type PublicManualBudgetResponse struct {
	Type      string                   `json:"type"`
	Materials []ManualMaterialResponse `json:"materials"`
	Labor     []ManualLaborResponse    `json:"labor"`
	Discount  float64                  `json:"discount"`
}

type PublicWorkDetailResponse struct {
	ID              string                        `json:"id"`
	Title           string                        `json:"title"`
	ResponsibleName string                        `json:"responsibleName"`
	Status          string                        `json:"status"`
	ProgressPercent int                           `json:"progressPercent"`
	Checklist       []PublicChecklistItemResponse `json:"checklist"`
	Budget          any                           `json:"budget"`
	CreatedAt       time.Time                     `json:"createdAt"`
	UpdatedAt       time.Time                     `json:"updatedAt"`
}

// FromPublicWorkDetail builds the portal detail view. A preset budget is
// reduced to its name and id; anything else renders in the manual shape, an
// empty one when the work has no budget at all.
func FromPublicWorkDetail(d usecase.PublicWorkDetail) PublicWorkDetailResponse {
	w := d.Work
	res := PublicWorkDetailResponse{
		ID:              w.ID,
		Title:           w.DisplayTitle(),
		ResponsibleName: w.ResponsibleName,
		Status:          w.Status,
		ProgressPercent: w.ProgressPercent(),
		Checklist:       publicChecklist(w.Checklist, true),
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
	switch {
	case w.Budget.Kind == entities.BudgetKindPreset && d.Preset != nil:
		name := d.Preset.Name
		if name == "" {
			name = "Preset"
		}
		res.Budget = PublicPresetBudgetResponse{
			Type:     "preset",
			PresetID: d.Preset.ID,
			Name:     name,
		}
	case w.Budget.Kind == entities.BudgetKindManual:
		manual := fromBudgetManual(*w.Budget.Manual)
		res.Budget = PublicManualBudgetResponse{
			Type:      "manual",
			Materials: manual.Materials,
			Labor:     manual.Labor,
			Discount:  manual.Discount,
		}
	default:
		res.Budget = PublicManualBudgetResponse{
			Type:      "manual",
			Materials: []ManualMaterialResponse{},
			Labor:     []ManualLaborResponse{},
		}
	}
	return res
}

func publicChecklist(items []entities.ChecklistItem, withUpdatedAt bool) []PublicChecklistItemResponse {
	res := make([]PublicChecklistItemResponse, 0, len(items))
	for _, item := range items {
		entry := PublicChecklistItemResponse{ID: item.ID, Title: item.Title, Done: item.Done, CreatedAt: item.CreatedAt}
		if withUpdatedAt {
			updatedAt := item.UpdatedAt
			entry.UpdatedAt = &updatedAt
		}
		res = append(res, entry)
	}
	return res
}
