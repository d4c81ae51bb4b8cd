package interfaces

import (
	"context"

	"construtora_api/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client.
//
// GetByUsername resolves through the username GSI; uniqueness is enforced at
// the use case level with a bounded generate-and-check loop.
type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	GetByUsername(ctx context.Context, username string) (entities.Client, error)
	ListAll(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) (bool, error)
}
