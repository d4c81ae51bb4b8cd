package entities

import (
	"encoding/json"
	"time"
)

type TransactionKind string

const (
	TransactionKindEntrada TransactionKind = "Entrada"
	TransactionKindSaida   TransactionKind = "Saida"
)

func (k TransactionKind) Valid() bool {
	return k == TransactionKindEntrada || k == TransactionKindSaida
}

type TransactionStatus string

const (
	TransactionStatusPago     TransactionStatus = "Pago"
	TransactionStatusPendente TransactionStatus = "Pendente"
)

func (s TransactionStatus) Valid() bool {
	return s == TransactionStatusPago || s == TransactionStatusPendente
}

// Transaction is a financial movement (income/expense), optionally linked to
// a client and/or a work.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (related_work_id-index): related_work_id
//
// Gateway-originated transactions keep the provider payment id and raw
// response payload for reconciliation.
type Transaction struct {
	ID              string            `json:"id"`
	Kind            TransactionKind   `json:"kind"`
	Status          TransactionStatus `json:"status"`
	Category        string            `json:"category"`
	Description     string            `json:"description"`
	Method          string            `json:"method"`
	Amount          float64           `json:"amount"`
	Date            time.Time         `json:"date"`
	RelatedClientID string            `json:"relatedClient,omitempty"`
	RelatedWorkID   string            `json:"relatedWork,omitempty"`

	ProviderPaymentID  string          `json:"providerPaymentId,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
