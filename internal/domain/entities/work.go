package entities

import (
	"math"
	"time"
)

// BudgetKind tags the budget representation attached to a work.
//
// A work carries at most one representation: a reference to a reusable
// BudgetPreset or an inline manual budget. The tagged form makes the
// "both fields set" state unrepresentable.

type BudgetKind string

const (
	BudgetKindNone   BudgetKind = "none"
	BudgetKindPreset BudgetKind = "preset"
	BudgetKindManual BudgetKind = "manual"
)

const WorkStatusDefault = "Em andamento"

// ChecklistItem is a titled, completable task owned by a work. Items only
// exist inside their work's checklist; order is insertion order.
type ChecklistItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ManualMaterial struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	PricePerM2 float64 `json:"pricePerM2"`
	AreaM2     float64 `json:"areaM2"`
}

// LineTotal is always derived, never stored.
func (m ManualMaterial) LineTotal() float64 {
	return m.PricePerM2 * m.AreaM2
}

type ManualLabor struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type BudgetManual struct {
	Materials []ManualMaterial `json:"materials"`
	Labor     []ManualLabor    `json:"labor"`
	Discount  float64          `json:"discount"`
}

func (b BudgetManual) Total() float64 {
	total := 0.0
	for _, m := range b.Materials {
		total += m.LineTotal()
	}
	for _, l := range b.Labor {
		total += l.Price
	}
	return total - b.Discount
}

// Budget is the tagged budget variant held by a work.
//
// Invariants:
//   - Kind == BudgetKindPreset implies PresetID != "" and Manual == nil
//   - Kind == BudgetKindManual implies Manual != nil and PresetID == ""
//   - Kind == BudgetKindNone implies both empty
type Budget struct {
	Kind     BudgetKind    `json:"kind"`
	PresetID string        `json:"presetId,omitempty"`
	Manual   *BudgetManual `json:"manual,omitempty"`
}

func PresetBudget(presetID string) Budget {
	return Budget{Kind: BudgetKindPreset, PresetID: presetID}
}

func ManualBudget(manual BudgetManual) Budget {
	return Budget{Kind: BudgetKindManual, Manual: &manual}
}

// ResolveBudget applies the budget precedence rule shared by the create and
// update paths: an inline manual budget always wins over a preset reference,
// and providing either one clears the other. When the payload carries
// neither, the stored value is kept.
func ResolveBudget(current Budget, presetID *string, manual *BudgetManual) Budget {
	if manual != nil {
		return ManualBudget(*manual)
	}
	if presetID != nil {
		if *presetID == "" {
			return Budget{Kind: BudgetKindNone}
		}
		return PresetBudget(*presetID)
	}
	return current
}

// ClientSnapshot is the point-in-time copy of client display fields kept on
// the work so the back office survives client edits/removal.
type ClientSnapshot struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
}

// Work is the construction project aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// Version backs optimistic concurrency: every write conditions on the stored
// version, so concurrent checklist mutations never lose updates.
type Work struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	ResponsibleName string          `json:"responsibleName"`
	ClientID        string          `json:"client,omitempty"`
	ClientSnapshot  *ClientSnapshot `json:"clientSnapshot,omitempty"`
	Status          string          `json:"status"`
	Budget          Budget          `json:"budget"`
	Checklist       []ChecklistItem `json:"checklist"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	Version         int64           `json:"-"`
}

// ProgressPercent derives the share of completed checklist items, rounded
// half away from zero. It is recomputed on every read path and never stored.
func (w Work) ProgressPercent() int {
	total := len(w.Checklist)
	if total == 0 {
		return 0
	}
	done := 0
	for _, item := range w.Checklist {
		if item.Done {
			done++
		}
	}
	return int(math.Round(float64(done) * 100 / float64(total)))
}

// DisplayTitle falls back to a label built from the client snapshot when the
// work has no title, for client-portal views.
func (w Work) DisplayTitle() string {
	if w.Title != "" {
		return w.Title
	}
	if w.ClientSnapshot != nil && w.ClientSnapshot.Name != "" {
		return "Obra – " + w.ClientSnapshot.Name
	}
	return "Obra"
}

// ChecklistItemIndex returns the position of the item in the checklist, or -1.
func (w Work) ChecklistItemIndex(itemID string) int {
	for i, item := range w.Checklist {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}
