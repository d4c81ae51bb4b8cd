package request

import (
	"time"

	"construtora_api/internal/usecase"
)

type TransactionRequest struct {
	Kind          *string    `json:"kind"`
	Status        *string    `json:"status"`
	Category      *string    `json:"category"`
	Description   *string    `json:"description"`
	Method        *string    `json:"method"`
	Amount        *float64   `json:"amount"`
	Date          *time.Time `json:"date"`
	RelatedClient *string    `json:"relatedClient"`
	RelatedWork   *string    `json:"relatedWork"`
}

func (r TransactionRequest) ToWrite() usecase.TransactionWrite {
	return usecase.TransactionWrite{
		Kind:            r.Kind,
		Status:          r.Status,
		Category:        r.Category,
		Description:     r.Description,
		Method:          r.Method,
		Amount:          r.Amount,
		Date:            r.Date,
		RelatedClientID: r.RelatedClient,
		RelatedWorkID:   r.RelatedWork,
	}
}
