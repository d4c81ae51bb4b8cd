package request

import "construtora_api/internal/usecase"

type ClientCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Status  string `json:"status"`
}

// ClientUpdateRequest never accepts a password hash; credentials only change
// through the reset-password endpoint.
type ClientUpdateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Company  *string `json:"company"`
	Status   *string `json:"status"`
	Username *string `json:"username"`
}

func (r ClientUpdateRequest) ToWrite() usecase.ClientWrite {
	return usecase.ClientWrite{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Company:  r.Company,
		Status:   r.Status,
		Username: r.Username,
	}
}
