package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"construtora_api/internal/domain/entities"
	"construtora_api/internal/usecase"
)

func TestFromWork(t *testing.T) {
	t.Run("preset budget flattens to its id", func(t *testing.T) {
		w := entities.Work{
			ID:     "w-1",
			Title:  "Reforma",
			Status: entities.WorkStatusDefault,
			Budget: entities.Budget{Kind: entities.BudgetKindPreset, PresetID: "p-1"},
		}
		res := FromWork(w)
		if res.BudgetPreset == nil || *res.BudgetPreset != "p-1" {
			t.Fatalf("unexpected budgetPreset: %+v", res.BudgetPreset)
		}
		if res.BudgetManual != nil {
			t.Fatalf("expected nil budgetManual, got %+v", res.BudgetManual)
		}
	})

	t.Run("manual budget derives line totals", func(t *testing.T) {
		w := entities.Work{
			ID: "w-1",
			Budget: entities.Budget{
				Kind: entities.BudgetKindManual,
				Manual: &entities.BudgetManual{
					Materials: []entities.ManualMaterial{{ID: "m1", Name: "Piso", PricePerM2: 50, AreaM2: 10}},
					Labor:     []entities.ManualLabor{{ID: "l1", Name: "Assentamento", Price: 300}},
					Discount:  100,
				},
			},
		}
		res := FromWork(w)
		if res.BudgetManual == nil {
			t.Fatalf("expected budgetManual")
		}
		if res.BudgetManual.Materials[0].LineTotal != 500 {
			t.Fatalf("unexpected lineTotal: %v", res.BudgetManual.Materials[0].LineTotal)
		}
		if res.BudgetManual.Total != 700 {
			t.Fatalf("unexpected total: %v", res.BudgetManual.Total)
		}
	})

	t.Run("budget fields serialize as null when absent", func(t *testing.T) {
		raw, err := json.Marshal(FromWork(entities.Work{ID: "w-1"}))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		body := string(raw)
		if !strings.Contains(body, `"budgetPreset":null`) || !strings.Contains(body, `"budgetManual":null`) {
			t.Fatalf("unexpected body: %s", body)
		}
	})
}

func TestFromPublicWork(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	w := entities.Work{
		ID:       "w-1",
		ClientID: "c-1",
		ClientSnapshot: &entities.ClientSnapshot{
			Name:  "Maria",
			Email: "maria@example.com",
			Phone: "119999",
		},
		Checklist: []entities.ChecklistItem{{ID: "i1", Title: "Pintura", Done: true, CreatedAt: created}},
	}

	res := FromPublicWork(w)
	if res.Title != "Obra – Maria" {
		t.Fatalf("unexpected title: %s", res.Title)
	}
	if !res.Checklist[0].CreatedAt.Equal(created) {
		t.Fatalf("expected checklist createdAt, got %v", res.Checklist[0].CreatedAt)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	for _, leak := range []string{"client", "c-1", "maria@example.com", "119999"} {
		if strings.Contains(body, leak) {
			t.Fatalf("portal payload leaks %q: %s", leak, body)
		}
	}
	if strings.Contains(body, "updatedAt") {
		t.Fatalf("summary checklist should omit updatedAt: %s", body)
	}
}

func TestFromPublicWorkDetail(t *testing.T) {
	t.Run("preset budget reduces to name and id", func(t *testing.T) {
		res := FromPublicWorkDetail(usecase.PublicWorkDetail{
			Work:   entities.Work{ID: "w-1", Budget: entities.Budget{Kind: entities.BudgetKindPreset, PresetID: "p-1"}},
			Preset: &entities.BudgetPreset{ID: "p-1", Name: "Banheiro básico"},
		})
		budget, ok := res.Budget.(PublicPresetBudgetResponse)
		if !ok {
			t.Fatalf("unexpected budget type: %T", res.Budget)
		}
		if budget.Type != "preset" || budget.PresetID != "p-1" || budget.Name != "Banheiro básico" {
			t.Fatalf("unexpected budget: %+v", budget)
		}
	})

	t.Run("no budget renders the empty manual shape", func(t *testing.T) {
		res := FromPublicWorkDetail(usecase.PublicWorkDetail{Work: entities.Work{ID: "w-1"}})
		budget, ok := res.Budget.(PublicManualBudgetResponse)
		if !ok {
			t.Fatalf("unexpected budget type: %T", res.Budget)
		}
		if budget.Type != "manual" || budget.Materials == nil || budget.Labor == nil {
			t.Fatalf("unexpected budget: %+v", budget)
		}
		raw, err := json.Marshal(res)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !strings.Contains(string(raw), `"materials":[]`) {
			t.Fatalf("unexpected body: %s", raw)
		}
	})

	t.Run("unnamed preset falls back to a label", func(t *testing.T) {
		res := FromPublicWorkDetail(usecase.PublicWorkDetail{
			Work:   entities.Work{ID: "w-1", Budget: entities.Budget{Kind: entities.BudgetKindPreset, PresetID: "p-1"}},
			Preset: &entities.BudgetPreset{ID: "p-1"},
		})
		budget, ok := res.Budget.(PublicPresetBudgetResponse)
		if !ok {
			t.Fatalf("unexpected budget type: %T", res.Budget)
		}
		if budget.Name != "Preset" {
			t.Fatalf("unexpected name: %q", budget.Name)
		}
	})

	t.Run("detail checklist keeps both timestamps", func(t *testing.T) {
		created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		res := FromPublicWorkDetail(usecase.PublicWorkDetail{
			Work: entities.Work{ID: "w-1", Checklist: []entities.ChecklistItem{{ID: "i1", Title: "Pintura", CreatedAt: created, UpdatedAt: created.Add(time.Hour)}}},
		})
		if res.Checklist[0].UpdatedAt == nil {
			t.Fatalf("expected updatedAt on detail checklist")
		}
		if !res.Checklist[0].CreatedAt.Equal(created) {
			t.Fatalf("expected checklist createdAt, got %v", res.Checklist[0].CreatedAt)
		}
	})
}
