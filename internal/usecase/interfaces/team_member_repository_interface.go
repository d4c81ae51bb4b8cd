package interfaces

import (
	"context"

	"construtora_api/internal/domain/entities"
)

// ITeamMemberRepository abstracts DynamoDB persistence for TeamMember.
type ITeamMemberRepository interface {
	Create(ctx context.Context, m entities.TeamMember) (entities.TeamMember, error)
	GetByID(ctx context.Context, id string) (entities.TeamMember, error)
	ListAll(ctx context.Context) ([]entities.TeamMember, error)
	Update(ctx context.Context, m entities.TeamMember) (entities.TeamMember, error)
	Delete(ctx context.Context, id string) (bool, error)
}
