package entities

import (
	"testing"
	"time"
)

func TestWorkProgressPercent(t *testing.T) {
	t.Run("empty checklist is zero", func(t *testing.T) {
		w := Work{}
		if got := w.ProgressPercent(); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})

	t.Run("two of three done rounds to 67", func(t *testing.T) {
		w := Work{Checklist: []ChecklistItem{
			{ID: "a", Done: true},
			{ID: "b", Done: true},
			{ID: "c", Done: false},
		}}
		if got := w.ProgressPercent(); got != 67 {
			t.Fatalf("expected 67, got %d", got)
		}
	})

	t.Run("half rounds away from zero", func(t *testing.T) {
		w := Work{Checklist: []ChecklistItem{
			{ID: "a", Done: true},
			{ID: "b"}, {ID: "c"}, {ID: "d"},
			{ID: "e"}, {ID: "f"}, {ID: "g"}, {ID: "h"},
		}}
		// 1/8 = 12.5
		if got := w.ProgressPercent(); got != 13 {
			t.Fatalf("expected 13, got %d", got)
		}
	})

	t.Run("all done is 100", func(t *testing.T) {
		w := Work{Checklist: []ChecklistItem{{ID: "a", Done: true}, {ID: "b", Done: true}}}
		if got := w.ProgressPercent(); got != 100 {
			t.Fatalf("expected 100, got %d", got)
		}
	})
}

func TestBudgetManualTotal(t *testing.T) {
	b := BudgetManual{
		Materials: []ManualMaterial{
			{Name: "Piso", PricePerM2: 50, AreaM2: 10},
			{Name: "Tinta", PricePerM2: 20, AreaM2: 5},
		},
		Labor:    []ManualLabor{{Name: "Pedreiro", Price: 300}},
		Discount: 100,
	}

	if got := b.Materials[0].LineTotal(); got != 500 {
		t.Fatalf("expected line total 500, got %v", got)
	}
	// 500 + 100 + 300 - 100
	if got := b.Total(); got != 800 {
		t.Fatalf("expected total 800, got %v", got)
	}
}

func TestResolveBudget(t *testing.T) {
	manual := &BudgetManual{Labor: []ManualLabor{{Name: "Pedreiro", Price: 100}}}
	presetID := "preset-1"
	empty := ""

	t.Run("manual wins over preset", func(t *testing.T) {
		got := ResolveBudget(Budget{Kind: BudgetKindNone}, &presetID, manual)
		if got.Kind != BudgetKindManual || got.PresetID != "" || got.Manual == nil {
			t.Fatalf("unexpected budget: %+v", got)
		}
	})

	t.Run("preset replaces stored manual", func(t *testing.T) {
		got := ResolveBudget(ManualBudget(*manual), &presetID, nil)
		if got.Kind != BudgetKindPreset || got.PresetID != presetID || got.Manual != nil {
			t.Fatalf("unexpected budget: %+v", got)
		}
	})

	t.Run("empty preset id clears the budget", func(t *testing.T) {
		got := ResolveBudget(PresetBudget(presetID), &empty, nil)
		if got.Kind != BudgetKindNone || got.PresetID != "" || got.Manual != nil {
			t.Fatalf("unexpected budget: %+v", got)
		}
	})

	t.Run("neither provided keeps current", func(t *testing.T) {
		current := PresetBudget(presetID)
		got := ResolveBudget(current, nil, nil)
		if got != current {
			t.Fatalf("unexpected budget: %+v", got)
		}
	})
}

func TestWorkDisplayTitle(t *testing.T) {
	if got := (Work{Title: "Reforma"}).DisplayTitle(); got != "Reforma" {
		t.Fatalf("unexpected title: %s", got)
	}
	w := Work{ClientSnapshot: &ClientSnapshot{Name: "Maria"}}
	if got := w.DisplayTitle(); got != "Obra – Maria" {
		t.Fatalf("unexpected fallback title: %s", got)
	}
	if got := (Work{}).DisplayTitle(); got != "Obra" {
		t.Fatalf("unexpected default title: %s", got)
	}
}

func TestWorkChecklistItemIndex(t *testing.T) {
	now := time.Now().UTC()
	w := Work{Checklist: []ChecklistItem{
		{ID: "a", CreatedAt: now},
		{ID: "b", CreatedAt: now},
	}}
	if got := w.ChecklistItemIndex("b"); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	if got := w.ChecklistItemIndex("missing"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
}
