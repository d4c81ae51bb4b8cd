package interfaces

import (
	"context"

	"construtora_api/internal/domain/entities"
)

// IBudgetPresetRepository abstracts DynamoDB persistence for BudgetPreset.
type IBudgetPresetRepository interface {
	Create(ctx context.Context, p entities.BudgetPreset) (entities.BudgetPreset, error)
	GetByID(ctx context.Context, id string) (entities.BudgetPreset, error)
	ListAll(ctx context.Context) ([]entities.BudgetPreset, error)
	Update(ctx context.Context, p entities.BudgetPreset) (entities.BudgetPreset, error)
	Delete(ctx context.Context, id string) (bool, error)
}
