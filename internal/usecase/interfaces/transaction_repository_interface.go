package interfaces

import (
	"context"

	"construtora_api/internal/domain/entities"
)

// ITransactionRepository abstracts DynamoDB persistence for Transaction.
type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	ListAll(ctx context.Context) ([]entities.Transaction, error)
	ListByWorkID(ctx context.Context, workID string) ([]entities.Transaction, error)
	Update(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	Delete(ctx context.Context, id string) (bool, error)
}
