package interfaces

import (
	"context"
	"errors"

	"construtora_api/internal/domain/entities"
)

// ErrVersionConflict is returned by Update when the stored document changed
// since it was read. Callers reload and retry.
var ErrVersionConflict = errors.New("version conflict")

// IWorkRepository abstracts DynamoDB persistence for Work.
//
// Lookup methods return a zero-value entity (ID == "") when nothing matches.
// Update writes the whole document conditioned on the version read, bumping
// it on success; this is what keeps concurrent checklist mutations safe.
type IWorkRepository interface {
	Create(ctx context.Context, w entities.Work) (entities.Work, error)
	GetByID(ctx context.Context, id string) (entities.Work, error)
	ListAll(ctx context.Context) ([]entities.Work, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.Work, error)
	Update(ctx context.Context, w entities.Work) (entities.Work, error)
	Delete(ctx context.Context, id string) (bool, error)
}
