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
	ErrTeamMemberNotFound  = errors.New("team member not found")
	ErrInvalidTeamMemberID = errors.New("invalid team member id")
	ErrInvalidMemberName   = errors.New("invalid team member name")
)

type TeamMemberWrite struct {
	FirstName    *string
	LastName     *string
	BirthDate    *time.Time
	Role         *string
	Phone        *string
	Email        *string
	ContactPhone *string
	Status       *string
}

type TeamMemberListQuery struct {
	Search string
	Status string
}

// ITeamMemberUseCase exposes team member management for the back office.
type ITeamMemberUseCase interface {
	Create(ctx context.Context, write TeamMemberWrite) (entities.TeamMember, error)
	Update(ctx context.Context, id string, write TeamMemberWrite) (entities.TeamMember, error)
	GetByID(ctx context.Context, id string) (entities.TeamMember, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q TeamMemberListQuery) ([]entities.TeamMember, error)
}

type TeamMemberUseCase struct {
	repo interfaces.ITeamMemberRepository
}

var _ ITeamMemberUseCase = (*TeamMemberUseCase)(nil)

func NewTeamMemberUseCase(repo interfaces.ITeamMemberRepository) *TeamMemberUseCase {
	return &TeamMemberUseCase{repo: repo}
}

func (u *TeamMemberUseCase) Create(ctx context.Context, write TeamMemberWrite) (entities.TeamMember, error) {
	now := time.Now().UTC()
	m := entities.TeamMember{
		ID:        uuid.NewString(),
		Status:    entities.TeamMemberStatusAtivo,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyTeamMemberWrite(&m, write)
	if m.FirstName == "" || m.LastName == "" {
		return entities.TeamMember{}, ErrInvalidMemberName
	}
	return u.repo.Create(ctx, m)
}

func (u *TeamMemberUseCase) Update(ctx context.Context, id string, write TeamMemberWrite) (entities.TeamMember, error) {
	if err := validateID(id, ErrInvalidTeamMemberID); err != nil {
		return entities.TeamMember{}, err
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.TeamMember{}, err
	}
	if m.ID == "" {
		return entities.TeamMember{}, ErrTeamMemberNotFound
	}
	applyTeamMemberWrite(&m, write)
	if m.FirstName == "" || m.LastName == "" {
		return entities.TeamMember{}, ErrInvalidMemberName
	}
	return u.repo.Update(ctx, m)
}

func applyTeamMemberWrite(m *entities.TeamMember, write TeamMemberWrite) {
	if write.FirstName != nil {
		m.FirstName = strings.TrimSpace(*write.FirstName)
	}
	if write.LastName != nil {
		m.LastName = strings.TrimSpace(*write.LastName)
	}
	if write.BirthDate != nil {
		d := *write.BirthDate
		m.BirthDate = &d
	}
	if write.Role != nil {
		m.Role = strings.TrimSpace(*write.Role)
	}
	if write.Phone != nil {
		m.Phone = strings.TrimSpace(*write.Phone)
	}
	if write.Email != nil {
		m.Email = strings.ToLower(strings.TrimSpace(*write.Email))
	}
	if write.ContactPhone != nil {
		m.ContactPhone = strings.TrimSpace(*write.ContactPhone)
	}
	if write.Status != nil {
		status := entities.TeamMemberStatus(strings.TrimSpace(*write.Status))
		if status == entities.TeamMemberStatusAtivo || status == entities.TeamMemberStatusInativo {
			m.Status = status
		}
	}
}

func (u *TeamMemberUseCase) GetByID(ctx context.Context, id string) (entities.TeamMember, error) {
	if err := validateID(id, ErrInvalidTeamMemberID); err != nil {
		return entities.TeamMember{}, err
	}
	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.TeamMember{}, err
	}
	if m.ID == "" {
		return entities.TeamMember{}, ErrTeamMemberNotFound
	}
	return m, nil
}

func (u *TeamMemberUseCase) Delete(ctx context.Context, id string) error {
	if err := validateID(id, ErrInvalidTeamMemberID); err != nil {
		return err
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTeamMemberNotFound
	}
	return nil
}

func (u *TeamMemberUseCase) List(ctx context.Context, q TeamMemberListQuery) ([]entities.TeamMember, error) {
	members, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	status := strings.TrimSpace(q.Status)
	statusFilter := status == string(entities.TeamMemberStatusAtivo) || status == string(entities.TeamMemberStatusInativo)

	matched := members[:0:0]
	for _, m := range members {
		if statusFilter && string(m.Status) != status {
			continue
		}
		if search != "" && !teamMemberMatchesSearch(m, search) {
			continue
		}
		matched = append(matched, m)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})
	return matched, nil
}

func teamMemberMatchesSearch(m entities.TeamMember, needle string) bool {
	for _, field := range []string{m.FirstName, m.LastName, m.Email, m.Role} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
