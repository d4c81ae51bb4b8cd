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
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrInvalidTransactionID     = errors.New("invalid transaction id")
	ErrInvalidTransactionKind   = errors.New("invalid transaction kind")
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")
)

type TransactionWrite struct {
	Kind            *string
	Status          *string
	Category        *string
	Description     *string
	Method          *string
	Amount          *float64
	Date            *time.Time
	RelatedClientID *string
	RelatedWorkID   *string
}

// TransactionListQuery filters the finance listing. Kind/Status are ignored
// unless they name a valid enum value; DateTo is inclusive end-of-day.
type TransactionListQuery struct {
	Search   string
	Kind     string
	Status   string
	Category string
	DateFrom *time.Time
	DateTo   *time.Time
}

// ITransactionUseCase exposes finance transaction management.
type ITransactionUseCase interface {
	Create(ctx context.Context, write TransactionWrite) (entities.Transaction, error)
	Update(ctx context.Context, id string, write TransactionWrite) (entities.Transaction, error)
	GetByID(ctx context.Context, id string) (entities.Transaction, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q TransactionListQuery) ([]entities.Transaction, error)
}

type TransactionUseCase struct {
	repo interfaces.ITransactionRepository
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(repo interfaces.ITransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

func (u *TransactionUseCase) Create(ctx context.Context, write TransactionWrite) (entities.Transaction, error) {
	now := time.Now().UTC()
	t := entities.Transaction{
		ID:        uuid.NewString(),
		Status:    entities.TransactionStatusPago,
		Date:      now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := applyTransactionWrite(&t, write); err != nil {
		return entities.Transaction{}, err
	}
	if !t.Kind.Valid() {
		return entities.Transaction{}, ErrInvalidTransactionKind
	}
	if write.Amount == nil || t.Amount < 0 {
		return entities.Transaction{}, ErrInvalidTransactionAmount
	}
	return u.repo.Create(ctx, t)
}

func (u *TransactionUseCase) Update(ctx context.Context, id string, write TransactionWrite) (entities.Transaction, error) {
	if err := validateID(id, ErrInvalidTransactionID); err != nil {
		return entities.Transaction{}, err
	}
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	if err := applyTransactionWrite(&t, write); err != nil {
		return entities.Transaction{}, err
	}
	if t.Amount < 0 {
		return entities.Transaction{}, ErrInvalidTransactionAmount
	}
	return u.repo.Update(ctx, t)
}

func applyTransactionWrite(t *entities.Transaction, write TransactionWrite) error {
	if write.Kind != nil {
		kind := entities.TransactionKind(strings.TrimSpace(*write.Kind))
		if !kind.Valid() {
			return ErrInvalidTransactionKind
		}
		t.Kind = kind
	}
	if write.Status != nil {
		status := entities.TransactionStatus(strings.TrimSpace(*write.Status))
		if status.Valid() {
			t.Status = status
		}
	}
	if write.Category != nil {
		t.Category = strings.TrimSpace(*write.Category)
	}
	if write.Description != nil {
		t.Description = strings.TrimSpace(*write.Description)
	}
	if write.Method != nil {
		t.Method = strings.TrimSpace(*write.Method)
	}
	if write.Amount != nil {
		t.Amount = *write.Amount
	}
	if write.Date != nil {
		t.Date = write.Date.UTC()
	}
	if write.RelatedClientID != nil {
		clientID := strings.TrimSpace(*write.RelatedClientID)
		if clientID != "" && uuid.Validate(clientID) != nil {
			return ErrInvalidClientID
		}
		t.RelatedClientID = clientID
	}
	if write.RelatedWorkID != nil {
		workID := strings.TrimSpace(*write.RelatedWorkID)
		if workID != "" && uuid.Validate(workID) != nil {
			return ErrInvalidWorkID
		}
		t.RelatedWorkID = workID
	}
	return nil
}

func (u *TransactionUseCase) GetByID(ctx context.Context, id string) (entities.Transaction, error) {
	if err := validateID(id, ErrInvalidTransactionID); err != nil {
		return entities.Transaction{}, err
	}
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if t.ID == "" {
		return entities.Transaction{}, ErrTransactionNotFound
	}
	return t, nil
}

func (u *TransactionUseCase) Delete(ctx context.Context, id string) error {
	if err := validateID(id, ErrInvalidTransactionID); err != nil {
		return err
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTransactionNotFound
	}
	return nil
}

func (u *TransactionUseCase) List(ctx context.Context, q TransactionListQuery) ([]entities.Transaction, error) {
	transactions, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	kind := entities.TransactionKind(strings.TrimSpace(q.Kind))
	status := entities.TransactionStatus(strings.TrimSpace(q.Status))
	category := strings.ToLower(strings.TrimSpace(q.Category))
	search := strings.ToLower(strings.TrimSpace(q.Search))

	var dateTo time.Time
	if q.DateTo != nil {
		// inclusive end of day
		y, m, d := q.DateTo.UTC().Date()
		dateTo = time.Date(y, m, d, 23, 59, 59, 999_999_999, time.UTC)
	}

	matched := transactions[:0:0]
	for _, t := range transactions {
		if kind.Valid() && t.Kind != kind {
			continue
		}
		if status.Valid() && t.Status != status {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(t.Category), category) {
			continue
		}
		if q.DateFrom != nil && t.Date.Before(q.DateFrom.UTC()) {
			continue
		}
		if q.DateTo != nil && t.Date.After(dateTo) {
			continue
		}
		if search != "" && !transactionMatchesSearch(t, search) {
			continue
		}
		matched = append(matched, t)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.After(matched[j].Date)
		}
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})
	return matched, nil
}

func transactionMatchesSearch(t entities.Transaction, needle string) bool {
	for _, field := range []string{t.Description, t.Category, t.Method} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
