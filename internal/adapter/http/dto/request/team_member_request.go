package request

import (
	"time"

	"construtora_api/internal/usecase"
)

type TeamMemberRequest struct {
	FirstName    *string    `json:"firstName"`
	LastName     *string    `json:"lastName"`
	BirthDate    *time.Time `json:"birthDate"`
	Role         *string    `json:"role"`
	Phone        *string    `json:"phone"`
	Email        *string    `json:"email"`
	ContactPhone *string    `json:"contactPhone"`
	Status       *string    `json:"status"`
}

func (r TeamMemberRequest) ToWrite() usecase.TeamMemberWrite {
	return usecase.TeamMemberWrite{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		BirthDate:    r.BirthDate,
		Role:         r.Role,
		Phone:        r.Phone,
		Email:        r.Email,
		ContactPhone: r.ContactPhone,
		Status:       r.Status,
	}
}
