package response

import (
	"time"

	"construtora_api/internal/domain/entities"
)

type TransactionResponse struct {
	ID                string    `json:"id"`
	Kind              string    `json:"kind"`
	Status            string    `json:"status"`
	Category          string    `json:"category"`
	Description       string    `json:"description"`
	Method            string    `json:"method"`
	Amount            float64   `json:"amount"`
	Date              time.Time `json:"date"`
	RelatedClient     string    `json:"relatedClient,omitempty"`
	RelatedWork       string    `json:"relatedWork,omitempty"`
	ProviderPaymentID string    `json:"providerPaymentId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                t.ID,
		Kind:              string(t.Kind),
		Status:            string(t.Status),
		Category:          t.Category,
		Description:       t.Description,
		Method:            t.Method,
		Amount:            t.Amount,
		Date:              t.Date,
		RelatedClient:     t.RelatedClientID,
		RelatedWork:       t.RelatedWorkID,
		ProviderPaymentID: t.ProviderPaymentID,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func FromTransactions(transactions []entities.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		res = append(res, FromTransaction(t))
	}
	return res
}
