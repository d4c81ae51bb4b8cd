package response

import (
	"time"

	"construtora_api/internal/domain/entities"
)

type TeamMemberResponse struct {
	ID           string     `json:"id"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	FullName     string     `json:"fullName"`
	BirthDate    *time.Time `json:"birthDate,omitempty"`
	Role         string     `json:"role"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	ContactPhone string     `json:"contactPhone"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func FromTeamMember(m entities.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		FullName:     m.FullName(),
		BirthDate:    m.BirthDate,
		Role:         m.Role,
		Phone:        m.Phone,
		Email:        m.Email,
		ContactPhone: m.ContactPhone,
		Status:       string(m.Status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func FromTeamMembers(members []entities.TeamMember) []TeamMemberResponse {
	res := make([]TeamMemberResponse, 0, len(members))
	for _, m := range members {
		res = append(res, FromTeamMember(m))
	}
	return res
}
