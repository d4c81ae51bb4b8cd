package entities

import "time"

type ClientStatus string

const (
	ClientStatusAtivo   ClientStatus = "Ativo"
	ClientStatusInativo ClientStatus = "Inativo"
)

// Client is a customer of the construction business. Username/PasswordHash
// back the client portal; the hash never leaves the API.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (username-index): username
type Client struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Company      string       `json:"company"`
	Status       ClientStatus `json:"status"`
	Username     string       `json:"username"`
	PasswordHash string       `json:"-"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (c Client) Snapshot() ClientSnapshot {
	return ClientSnapshot{Name: c.Name, Email: c.Email, Phone: c.Phone, Company: c.Company}
}
