package entities

import (
	"strings"
	"time"
)

type TeamMemberStatus string

const (
	TeamMemberStatusAtivo   TeamMemberStatus = "Ativo"
	TeamMemberStatusInativo TeamMemberStatus = "Inativo"
)

// TeamMember is an employee/collaborator of the business.
//
// Storage model (DynamoDB):
//   - PK: id
type TeamMember struct {
	ID           string           `json:"id"`
	FirstName    string           `json:"firstName"`
	LastName     string           `json:"lastName"`
	BirthDate    *time.Time       `json:"birthDate,omitempty"`
	Role         string           `json:"role"`
	Phone        string           `json:"phone"`
	Email        string           `json:"email"`
	ContactPhone string           `json:"contactPhone"`
	Status       TeamMemberStatus `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// FullName is derived, never stored.
func (m TeamMember) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}
