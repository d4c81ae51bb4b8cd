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
	ErrPresetNotFound    = errors.New("budget preset not found")
	ErrInvalidPresetName = errors.New("invalid budget preset name")
)

// BudgetPresetWrite carries the mutable preset fields; the materials/labor
// lists are replaced wholesale when provided.
type BudgetPresetWrite struct {
	Name      *string
	Materials []entities.PresetMaterial
	Labor     []entities.PresetLabor
	Discount  *float64
}

// IBudgetPresetUseCase exposes reusable budget template management.
type IBudgetPresetUseCase interface {
	Create(ctx context.Context, write BudgetPresetWrite) (entities.BudgetPreset, error)
	Update(ctx context.Context, id string, write BudgetPresetWrite) (entities.BudgetPreset, error)
	GetByID(ctx context.Context, id string) (entities.BudgetPreset, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, search string) ([]entities.BudgetPreset, error)
}

type BudgetPresetUseCase struct {
	repo interfaces.IBudgetPresetRepository
}

var _ IBudgetPresetUseCase = (*BudgetPresetUseCase)(nil)

func NewBudgetPresetUseCase(repo interfaces.IBudgetPresetRepository) *BudgetPresetUseCase {
	return &BudgetPresetUseCase{repo: repo}
}

func (u *BudgetPresetUseCase) Create(ctx context.Context, write BudgetPresetWrite) (entities.BudgetPreset, error) {
	now := time.Now().UTC()
	p := entities.BudgetPreset{
		ID:        uuid.NewString(),
		Materials: []entities.PresetMaterial{},
		Labor:     []entities.PresetLabor{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyPresetWrite(&p, write)
	if p.Name == "" {
		return entities.BudgetPreset{}, ErrInvalidPresetName
	}
	return u.repo.Create(ctx, p)
}

func (u *BudgetPresetUseCase) Update(ctx context.Context, id string, write BudgetPresetWrite) (entities.BudgetPreset, error) {
	if err := validateID(id, ErrInvalidPresetID); err != nil {
		return entities.BudgetPreset{}, err
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetPreset{}, err
	}
	if p.ID == "" {
		return entities.BudgetPreset{}, ErrPresetNotFound
	}
	applyPresetWrite(&p, write)
	if p.Name == "" {
		return entities.BudgetPreset{}, ErrInvalidPresetName
	}
	return u.repo.Update(ctx, p)
}

func applyPresetWrite(p *entities.BudgetPreset, write BudgetPresetWrite) {
	if write.Name != nil {
		p.Name = strings.TrimSpace(*write.Name)
	}
	if write.Materials != nil {
		p.Materials = write.Materials
		for i := range p.Materials {
			if p.Materials[i].ID == "" {
				p.Materials[i].ID = uuid.NewString()
			}
		}
	}
	if write.Labor != nil {
		p.Labor = write.Labor
		for i := range p.Labor {
			if p.Labor[i].ID == "" {
				p.Labor[i].ID = uuid.NewString()
			}
		}
	}
	if write.Discount != nil {
		p.Discount = *write.Discount
	}
}

func (u *BudgetPresetUseCase) GetByID(ctx context.Context, id string) (entities.BudgetPreset, error) {
	if err := validateID(id, ErrInvalidPresetID); err != nil {
		return entities.BudgetPreset{}, err
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BudgetPreset{}, err
	}
	if p.ID == "" {
		return entities.BudgetPreset{}, ErrPresetNotFound
	}
	return p, nil
}

func (u *BudgetPresetUseCase) Delete(ctx context.Context, id string) error {
	if err := validateID(id, ErrInvalidPresetID); err != nil {
		return err
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrPresetNotFound
	}
	return nil
}

func (u *BudgetPresetUseCase) List(ctx context.Context, search string) ([]entities.BudgetPreset, error) {
	presets, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	matched := presets[:0:0]
	for _, p := range presets {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		matched = append(matched, p)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})
	return matched, nil
}
