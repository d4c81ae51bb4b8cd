package usecase

import (
	"context"
	"errors"
	"math/rand/v2"
	"sort"
	"strings"
	"time"
	"unicode"

	"construtora_api/internal/domain/entities"
	"construtora_api/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrClientNotFound     = errors.New("client not found")
	ErrInvalidClientName  = errors.New("invalid client name")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUsernameGeneration = errors.New("could not generate a unique username")
)

const (
	usernameAttempts   = 5
	tempPasswordLength = 10
	bcryptCost         = 10
)

// tempPasswordAlphabet drops ambiguous characters (0/O, 1/l/I).
const tempPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// ClientWrite carries the mutable client fields of an update payload.
// PasswordHash is never settable through this path.
type ClientWrite struct {
	Name     *string
	Email    *string
	Phone    *string
	Company  *string
	Status   *string
	Username *string
}

type ClientListQuery struct {
	Search string
	Status string
	Page   int
	Limit  int
}

type ClientPage struct {
	Page    int
	Limit   int
	Total   int
	Clients []entities.Client
}

// IClientUseCase exposes client management. Create and ResetPassword return
// the generated temporary password, which is surfaced exactly once.
type IClientUseCase interface {
	Create(ctx context.Context, name, email, phone, company, status string) (entities.Client, string, error)
	Update(ctx context.Context, id string, write ClientWrite) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, q ClientListQuery) (ClientPage, error)
	ResetPassword(ctx context.Context, id string) (entities.Client, string, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func (u *ClientUseCase) Create(ctx context.Context, name, email, phone, company, status string) (entities.Client, string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Client{}, "", ErrInvalidClientName
	}

	username, err := u.uniqueUsername(ctx, name)
	if err != nil {
		return entities.Client{}, "", err
	}

	tempPassword := generateTempPassword()
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcryptCost)
	if err != nil {
		return entities.Client{}, "", err
	}

	clientStatus := entities.ClientStatus(strings.TrimSpace(status))
	if clientStatus != entities.ClientStatusAtivo && clientStatus != entities.ClientStatusInativo {
		clientStatus = entities.ClientStatusAtivo
	}

	now := time.Now().UTC()
	c := entities.Client{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Phone:        strings.TrimSpace(phone),
		Company:      strings.TrimSpace(company),
		Status:       clientStatus,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Client{}, "", err
	}
	return created, tempPassword, nil
}

// uniqueUsername generates slug-based candidates and checks the username
// index a bounded number of times.
func (u *ClientUseCase) uniqueUsername(ctx context.Context, name string) (string, error) {
	for i := 0; i < usernameAttempts; i++ {
		candidate := generateUsername(name)
		existing, err := u.repo.GetByUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if existing.ID == "" {
			return candidate, nil
		}
	}
	return "", ErrUsernameGeneration
}

func (u *ClientUseCase) Update(ctx context.Context, id string, write ClientWrite) (entities.Client, error) {
	if err := validateID(id, ErrInvalidClientID); err != nil {
		return entities.Client{}, err
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}

	if write.Name != nil {
		c.Name = strings.TrimSpace(*write.Name)
	}
	if write.Email != nil {
		c.Email = strings.ToLower(strings.TrimSpace(*write.Email))
	}
	if write.Phone != nil {
		c.Phone = strings.TrimSpace(*write.Phone)
	}
	if write.Company != nil {
		c.Company = strings.TrimSpace(*write.Company)
	}
	if write.Status != nil {
		status := entities.ClientStatus(strings.TrimSpace(*write.Status))
		if status == entities.ClientStatusAtivo || status == entities.ClientStatusInativo {
			c.Status = status
		}
	}
	if write.Username != nil {
		username := strings.ToLower(strings.TrimSpace(*write.Username))
		if username != "" && username != c.Username {
			existing, err := u.repo.GetByUsername(ctx, username)
			if err != nil {
				return entities.Client{}, err
			}
			if existing.ID != "" && existing.ID != c.ID {
				return entities.Client{}, ErrUsernameTaken
			}
			c.Username = username
		}
	}

	return u.repo.Update(ctx, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	if err := validateID(id, ErrInvalidClientID); err != nil {
		return entities.Client{}, err
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	if err := validateID(id, ErrInvalidClientID); err != nil {
		return err
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrClientNotFound
	}
	return nil
}

func (u *ClientUseCase) List(ctx context.Context, q ClientListQuery) (ClientPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit == 0 {
		limit = listDefaultLimit
	} else if limit < 1 {
		limit = 1
	}
	if limit > listMaxLimit {
		limit = listMaxLimit
	}

	clients, err := u.repo.ListAll(ctx)
	if err != nil {
		return ClientPage{}, err
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	status := strings.TrimSpace(q.Status)

	matched := clients[:0:0]
	for _, c := range clients {
		if status != "" && string(c.Status) != status {
			continue
		}
		if search != "" && !clientMatchesSearch(c, search) {
			continue
		}
		matched = append(matched, c)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	total := len(matched)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	return ClientPage{Page: page, Limit: limit, Total: total, Clients: matched[start:end]}, nil
}

func clientMatchesSearch(c entities.Client, needle string) bool {
	for _, field := range []string{c.Name, c.Email, c.Phone, c.Company, c.Username} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func (u *ClientUseCase) ResetPassword(ctx context.Context, id string) (entities.Client, string, error) {
	if err := validateID(id, ErrInvalidClientID); err != nil {
		return entities.Client{}, "", err
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, "", err
	}
	if c.ID == "" {
		return entities.Client{}, "", ErrClientNotFound
	}

	tempPassword := generateTempPassword()
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcryptCost)
	if err != nil {
		return entities.Client{}, "", err
	}
	c.PasswordHash = string(hash)

	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		return entities.Client{}, "", err
	}
	return updated, tempPassword, nil
}

// generateUsername builds "slug.NNN" from the client name, e.g.
// "João da Silva" -> "joao.da.silva.421".
func generateUsername(name string) string {
	base := slugifyBase(name)
	return base + "." + randomDigits(3)
}

// slugifyBase lowercases, strips diacritics and collapses everything else
// into dots, capped at 20 characters.
func slugifyBase(name string) string {
	decomposed := norm.NFD.String(strings.ToLower(name))
	var b strings.Builder
	lastDot := true
	for _, r := range decomposed {
		switch {
		case unicode.Is(unicode.Mn, r):
			// combining mark from the decomposition, drop it
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDot = false
		default:
			if !lastDot {
				b.WriteByte('.')
				lastDot = true
			}
		}
	}
	slug := strings.Trim(b.String(), ".")
	if len(slug) > 20 {
		slug = strings.Trim(slug[:20], ".")
	}
	if slug == "" {
		return "cliente"
	}
	return slug
}

func randomDigits(n int) string {
	digits := make([]byte, n)
	for i := range digits {
		digits[i] = byte('0' + rand.IntN(10))
	}
	return string(digits)
}

func generateTempPassword() string {
	pw := make([]byte, tempPasswordLength)
	for i := range pw {
		pw[i] = tempPasswordAlphabet[rand.IntN(len(tempPasswordAlphabet))]
	}
	return string(pw)
}
