package response

import (
	"time"

	"construtora_api/internal/domain/entities"
	"construtora_api/internal/usecase"
)

// ClientResponse never carries the password hash.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Status    string    `json:"status"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromClient(c entities.Client) ClientResponse {
	return ClientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		Status:    string(c.Status),
		Username:  c.Username,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ClientCredentialsResponse surfaces the generated temporary password exactly
// once, on create and on password reset.
type ClientCredentialsResponse struct {
	Client       ClientResponse `json:"client"`
	TempPassword string         `json:"tempPassword"`
}

func FromClientWithPassword(c entities.Client, tempPassword string) ClientCredentialsResponse {
	return ClientCredentialsResponse{Client: FromClient(c), TempPassword: tempPassword}
}

type ClientPageResponse struct {
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
	Total int              `json:"total"`
	Data  []ClientResponse `json:"data"`
}

func FromClientPage(p usecase.ClientPage) ClientPageResponse {
	data := make([]ClientResponse, 0, len(p.Clients))
	for _, c := range p.Clients {
		data = append(data, FromClient(c))
	}
	return ClientPageResponse{Page: p.Page, Limit: p.Limit, Total: p.Total, Data: data}
}
