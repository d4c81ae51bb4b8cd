package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"construtora_api/internal/domain/entities"
	"construtora_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrWorkNotFound          = errors.New("work not found")
	ErrInvalidWorkID         = errors.New("invalid work id")
	ErrInvalidClientID       = errors.New("invalid client id")
	ErrInvalidPresetID       = errors.New("invalid budget preset id")
	ErrInvalidItemID         = errors.New("invalid checklist item id")
	ErrInvalidChecklistTitle = errors.New("invalid checklist item title")
	ErrChecklistItemNotFound = errors.New("checklist item not found")
)

// checklist mutations retry on CAS conflicts so two concurrent toggles of
// different items both land.
const workWriteAttempts = 3

const (
	listDefaultLimit = 50
	listMaxLimit     = 200
)

// WorkWrite carries the mutable work fields of a create/update payload.
// Nil pointers mean "not provided" and are skipped by the update merge.
type WorkWrite struct {
	Title           *string
	ResponsibleName *string
	ClientID        *string
	ClientSnapshot  *entities.ClientSnapshot
	Status          *string
	BudgetPresetID  *string
	BudgetManual    *entities.BudgetManual
	Checklist       []entities.ChecklistItem
}

type WorkListQuery struct {
	Search string
	Status string
	Page   int
	Limit  int
}

// WorkPage is the paginated list envelope; Total counts every match,
// ignoring pagination.
type WorkPage struct {
	Page  int
	Limit int
	Total int
	Works []entities.Work
}

// WorkDetail is a work with its references resolved for the back office.
type WorkDetail struct {
	Work   entities.Work
	Client *entities.Client
	Preset *entities.BudgetPreset
}

// PublicWorkDetail feeds the sanitized client-portal detail view.
type PublicWorkDetail struct {
	Work   entities.Work
	Preset *entities.BudgetPreset
}

// IWorkUseCase exposes the work (obra) operations, including the checklist
// lifecycle and the sanitized client-portal reads.
type IWorkUseCase interface {
	Create(ctx context.Context, write WorkWrite) (entities.Work, error)
	Update(ctx context.Context, id string, write WorkWrite) (entities.Work, error)
	GetByID(ctx context.Context, id string) (WorkDetail, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q WorkListQuery) (WorkPage, error)
	AddChecklistItem(ctx context.Context, workID, title string) (entities.Work, error)
	ToggleChecklistItem(ctx context.Context, workID, itemID string) (entities.Work, error)
	RemoveChecklistItem(ctx context.Context, workID, itemID string) (entities.Work, error)
	PublicListByClient(ctx context.Context, clientID string) ([]entities.Work, error)
	PublicDetail(ctx context.Context, workID string) (PublicWorkDetail, error)
}

type WorkUseCase struct {
	repo       interfaces.IWorkRepository
	clientRepo interfaces.IClientRepository
	presetRepo interfaces.IBudgetPresetRepository
}

var _ IWorkUseCase = (*WorkUseCase)(nil)

func NewWorkUseCase(repo interfaces.IWorkRepository, clientRepo interfaces.IClientRepository, presetRepo interfaces.IBudgetPresetRepository) *WorkUseCase {
	return &WorkUseCase{repo: repo, clientRepo: clientRepo, presetRepo: presetRepo}
}

func (u *WorkUseCase) Create(ctx context.Context, write WorkWrite) (entities.Work, error) {
	now := time.Now().UTC()
	w := entities.Work{
		ID:        uuid.NewString(),
		Status:    entities.WorkStatusDefault,
		Checklist: []entities.ChecklistItem{},
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
	if err := u.applyWrite(ctx, &w, write); err != nil {
		return entities.Work{}, err
	}
	for _, item := range write.Checklist {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			return entities.Work{}, ErrInvalidChecklistTitle
		}
		w.Checklist = append(w.Checklist, entities.ChecklistItem{
			ID:        uuid.NewString(),
			Title:     title,
			Done:      item.Done,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return u.repo.Create(ctx, w)
}

func (u *WorkUseCase) Update(ctx context.Context, id string, write WorkWrite) (entities.Work, error) {
	if err := validateID(id, ErrInvalidWorkID); err != nil {
		return entities.Work{}, err
	}

	var lastErr error
	for attempt := 0; attempt < workWriteAttempts; attempt++ {
		w, err := u.repo.GetByID(ctx, id)
		if err != nil {
			return entities.Work{}, err
		}
		if w.ID == "" {
			return entities.Work{}, ErrWorkNotFound
		}
		if err := u.applyWrite(ctx, &w, write); err != nil {
			return entities.Work{}, err
		}
		updated, err := u.repo.Update(ctx, w)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			lastErr = err
			continue
		}
		if err != nil {
			return entities.Work{}, err
		}
		return updated, nil
	}
	return entities.Work{}, lastErr
}

// applyWrite merges the provided fields into the work, enforcing the budget
// precedence rule (manual wins, either clears the other).
func (u *WorkUseCase) applyWrite(ctx context.Context, w *entities.Work, write WorkWrite) error {
	if write.Title != nil {
		w.Title = strings.TrimSpace(*write.Title)
	}
	if write.ResponsibleName != nil {
		w.ResponsibleName = strings.TrimSpace(*write.ResponsibleName)
	}
	if write.Status != nil && strings.TrimSpace(*write.Status) != "" {
		w.Status = strings.TrimSpace(*write.Status)
	}
	if write.ClientID != nil {
		clientID := strings.TrimSpace(*write.ClientID)
		if clientID == "" {
			w.ClientID = ""
		} else {
			if uuid.Validate(clientID) != nil {
				return ErrInvalidClientID
			}
			w.ClientID = clientID
			if write.ClientSnapshot == nil && w.ClientSnapshot == nil {
				// Capture display fields at link time; ignore a missing client,
				// the reference alone is allowed.
				if client, err := u.clientRepo.GetByID(ctx, clientID); err == nil && client.ID != "" {
					snap := client.Snapshot()
					w.ClientSnapshot = &snap
				}
			}
		}
	}
	if write.ClientSnapshot != nil {
		snap := *write.ClientSnapshot
		w.ClientSnapshot = &snap
	}

	if write.BudgetPresetID != nil {
		presetID := strings.TrimSpace(*write.BudgetPresetID)
		if presetID != "" && uuid.Validate(presetID) != nil {
			return ErrInvalidPresetID
		}
		write.BudgetPresetID = &presetID
	}
	w.Budget = entities.ResolveBudget(w.Budget, write.BudgetPresetID, write.BudgetManual)
	if w.Budget.Kind == entities.BudgetKindManual {
		normalizeManualBudget(w.Budget.Manual)
	}
	return nil
}

func normalizeManualBudget(b *entities.BudgetManual) {
	if b.Materials == nil {
		b.Materials = []entities.ManualMaterial{}
	}
	if b.Labor == nil {
		b.Labor = []entities.ManualLabor{}
	}
	for i := range b.Materials {
		if b.Materials[i].ID == "" {
			b.Materials[i].ID = uuid.NewString()
		}
	}
	for i := range b.Labor {
		if b.Labor[i].ID == "" {
			b.Labor[i].ID = uuid.NewString()
		}
	}
}

func (u *WorkUseCase) GetByID(ctx context.Context, id string) (WorkDetail, error) {
	if err := validateID(id, ErrInvalidWorkID); err != nil {
		return WorkDetail{}, err
	}
	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return WorkDetail{}, err
	}
	if w.ID == "" {
		return WorkDetail{}, ErrWorkNotFound
	}

	detail := WorkDetail{Work: w}
	if w.ClientID != "" {
		if client, err := u.clientRepo.GetByID(ctx, w.ClientID); err == nil && client.ID != "" {
			detail.Client = &client
		}
	}
	if w.Budget.Kind == entities.BudgetKindPreset {
		if preset, err := u.presetRepo.GetByID(ctx, w.Budget.PresetID); err == nil && preset.ID != "" {
			detail.Preset = &preset
		}
	}
	return detail, nil
}

func (u *WorkUseCase) Delete(ctx context.Context, id string) error {
	if err := validateID(id, ErrInvalidWorkID); err != nil {
		return err
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrWorkNotFound
	}
	return nil
}

func (u *WorkUseCase) List(ctx context.Context, q WorkListQuery) (WorkPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	// Absent limit falls back to the default; an explicit negative clamps to 1.
	limit := q.Limit
	if limit == 0 {
		limit = listDefaultLimit
	} else if limit < 1 {
		limit = 1
	}
	if limit > listMaxLimit {
		limit = listMaxLimit
	}

	works, err := u.repo.ListAll(ctx)
	if err != nil {
		return WorkPage{}, err
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	status := strings.TrimSpace(q.Status)

	matched := works[:0:0]
	for _, w := range works {
		if status != "" && w.Status != status {
			continue
		}
		if search != "" && !workMatchesSearch(w, search) {
			continue
		}
		matched = append(matched, w)
	}
	sortWorksNewestFirst(matched)

	total := len(matched)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return WorkPage{Page: page, Limit: limit, Total: total, Works: matched[start:end]}, nil
}

// workMatchesSearch matches the lowercased needle as a substring against
// title, responsible name, client snapshot name and status (logical OR).
func workMatchesSearch(w entities.Work, needle string) bool {
	if strings.Contains(strings.ToLower(w.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(w.ResponsibleName), needle) {
		return true
	}
	if w.ClientSnapshot != nil && strings.Contains(strings.ToLower(w.ClientSnapshot.Name), needle) {
		return true
	}
	return strings.Contains(strings.ToLower(w.Status), needle)
}

// sortWorksNewestFirst orders by creation timestamp descending with a stable
// id tie-break so equal timestamps keep a deterministic order.
func sortWorksNewestFirst(works []entities.Work) {
	sort.SliceStable(works, func(i, j int) bool {
		if !works[i].CreatedAt.Equal(works[j].CreatedAt) {
			return works[i].CreatedAt.After(works[j].CreatedAt)
		}
		return works[i].ID < works[j].ID
	})
}

func (u *WorkUseCase) AddChecklistItem(ctx context.Context, workID, title string) (entities.Work, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Work{}, ErrInvalidChecklistTitle
	}
	return u.mutateChecklist(ctx, workID, func(w *entities.Work) error {
		now := time.Now().UTC()
		w.Checklist = append(w.Checklist, entities.ChecklistItem{
			ID:        uuid.NewString(),
			Title:     title,
			Done:      false,
			CreatedAt: now,
			UpdatedAt: now,
		})
		return nil
	})
}

func (u *WorkUseCase) ToggleChecklistItem(ctx context.Context, workID, itemID string) (entities.Work, error) {
	if err := validateID(itemID, ErrInvalidItemID); err != nil {
		return entities.Work{}, err
	}
	return u.mutateChecklist(ctx, workID, func(w *entities.Work) error {
		i := w.ChecklistItemIndex(itemID)
		if i < 0 {
			return ErrChecklistItemNotFound
		}
		w.Checklist[i].Done = !w.Checklist[i].Done
		w.Checklist[i].UpdatedAt = time.Now().UTC()
		return nil
	})
}

// RemoveChecklistItem removes the item when present; a missing item is a
// no-op that still returns the work.
func (u *WorkUseCase) RemoveChecklistItem(ctx context.Context, workID, itemID string) (entities.Work, error) {
	if err := validateID(itemID, ErrInvalidItemID); err != nil {
		return entities.Work{}, err
	}
	return u.mutateChecklist(ctx, workID, func(w *entities.Work) error {
		i := w.ChecklistItemIndex(itemID)
		if i < 0 {
			return nil
		}
		w.Checklist = append(w.Checklist[:i], w.Checklist[i+1:]...)
		return nil
	})
}

// mutateChecklist reloads, mutates and conditionally writes the work,
// retrying on version conflicts so concurrent mutations are never lost.
func (u *WorkUseCase) mutateChecklist(ctx context.Context, workID string, mutate func(w *entities.Work) error) (entities.Work, error) {
	if err := validateID(workID, ErrInvalidWorkID); err != nil {
		return entities.Work{}, err
	}

	var lastErr error
	for attempt := 0; attempt < workWriteAttempts; attempt++ {
		w, err := u.repo.GetByID(ctx, workID)
		if err != nil {
			return entities.Work{}, err
		}
		if w.ID == "" {
			return entities.Work{}, ErrWorkNotFound
		}
		if err := mutate(&w); err != nil {
			return entities.Work{}, err
		}
		updated, err := u.repo.Update(ctx, w)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			lastErr = err
			continue
		}
		if err != nil {
			return entities.Work{}, err
		}
		return updated, nil
	}
	return entities.Work{}, lastErr
}

func (u *WorkUseCase) PublicListByClient(ctx context.Context, clientID string) ([]entities.Work, error) {
	if err := validateID(clientID, ErrInvalidClientID); err != nil {
		return nil, err
	}
	works, err := u.repo.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	sortWorksNewestFirst(works)
	return works, nil
}

func (u *WorkUseCase) PublicDetail(ctx context.Context, workID string) (PublicWorkDetail, error) {
	if err := validateID(workID, ErrInvalidWorkID); err != nil {
		return PublicWorkDetail{}, err
	}
	w, err := u.repo.GetByID(ctx, workID)
	if err != nil {
		return PublicWorkDetail{}, err
	}
	if w.ID == "" {
		return PublicWorkDetail{}, ErrWorkNotFound
	}

	detail := PublicWorkDetail{Work: w}
	if w.Budget.Kind == entities.BudgetKindPreset {
		if preset, err := u.presetRepo.GetByID(ctx, w.Budget.PresetID); err == nil && preset.ID != "" {
			detail.Preset = &preset
		}
	}
	return detail, nil
}

// validateID checks structural validity only (not existence); malformed ids
// map to a 400, never a 404.
func validateID(id string, invalid error) error {
	if uuid.Validate(strings.TrimSpace(id)) != nil {
		return invalid
	}
	return nil
}
