package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"construtora_api/internal/domain/entities"
	"construtora_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidChargeAmount         = errors.New("invalid charge amount")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)

const paymentMethodLabel = "Mercado Pago"

// IWorkPaymentUseCase charges a work's budget total through the payment
// gateway and records the result as an approved income transaction.
type IWorkPaymentUseCase interface {
	ChargeWork(ctx context.Context, workID string) (entities.Transaction, error)
	ListByWorkID(ctx context.Context, workID string) ([]entities.Transaction, error)
}

type WorkPaymentUseCase struct {
	txRepo     interfaces.ITransactionRepository
	workRepo   interfaces.IWorkRepository
	presetRepo interfaces.IBudgetPresetRepository
	gateway    interfaces.IPaymentGateway
}

var _ IWorkPaymentUseCase = (*WorkPaymentUseCase)(nil)

func NewWorkPaymentUseCase(
	txRepo interfaces.ITransactionRepository,
	workRepo interfaces.IWorkRepository,
	presetRepo interfaces.IBudgetPresetRepository,
	gateway interfaces.IPaymentGateway,
) *WorkPaymentUseCase {
	return &WorkPaymentUseCase{txRepo: txRepo, workRepo: workRepo, presetRepo: presetRepo, gateway: gateway}
}

func (u *WorkPaymentUseCase) ChargeWork(ctx context.Context, workID string) (entities.Transaction, error) {
	if err := validateID(workID, ErrInvalidWorkID); err != nil {
		return entities.Transaction{}, err
	}
	if u.gateway == nil {
		return entities.Transaction{}, ErrPaymentGatewayNotConfigured
	}

	w, err := u.workRepo.GetByID(ctx, workID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if w.ID == "" {
		return entities.Transaction{}, ErrWorkNotFound
	}

	amount, err := u.budgetTotal(ctx, w)
	if err != nil {
		return entities.Transaction{}, err
	}
	if amount <= 0 {
		return entities.Transaction{}, ErrInvalidChargeAmount
	}

	payload, err := json.Marshal(map[string]any{
		"transaction_amount": amount,
		"description":        fmt.Sprintf("Obra %s", w.DisplayTitle()),
		"external_reference": w.ID,
	})
	if err != nil {
		return entities.Transaction{}, err
	}

	log.Printf("[payment][usecase] charging work work_id=%s amount=%.2f", w.ID, amount)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[payment][usecase] gateway failed work_id=%s err=%v", w.ID, err)
		if isGatewayUnauthorized(err) {
			return entities.Transaction{}, ErrPaymentGatewayUnauthorized
		}
		if isGatewayBadRequest(err) {
			return entities.Transaction{}, ErrPaymentGatewayBadRequest
		}
		return entities.Transaction{}, err
	}
	log.Printf("[payment][usecase] gateway success work_id=%s provider_payment_id=%s provider_status=%s", w.ID, providerPaymentID, providerStatus)

	now := time.Now().UTC()
	t := entities.Transaction{
		ID:                 uuid.NewString(),
		Kind:               entities.TransactionKindEntrada,
		Status:             entities.TransactionStatusPago,
		Category:           "Recebimento de obra",
		Description:        fmt.Sprintf("Pagamento da obra %s", w.DisplayTitle()),
		Method:             paymentMethodLabel,
		Amount:             amount,
		Date:               now,
		RelatedClientID:    w.ClientID,
		RelatedWorkID:      w.ID,
		ProviderPaymentID:  providerPaymentID,
		ProviderPayloadRaw: providerResp,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	return u.txRepo.Create(ctx, t)
}

// budgetTotal resolves the chargeable total from the work's budget variant.
func (u *WorkPaymentUseCase) budgetTotal(ctx context.Context, w entities.Work) (float64, error) {
	switch w.Budget.Kind {
	case entities.BudgetKindManual:
		return w.Budget.Manual.Total(), nil
	case entities.BudgetKindPreset:
		preset, err := u.presetRepo.GetByID(ctx, w.Budget.PresetID)
		if err != nil {
			return 0, err
		}
		if preset.ID == "" {
			return 0, ErrPresetNotFound
		}
		return preset.Total(), nil
	default:
		return 0, nil
	}
}

// ListByWorkID returns the gateway-recorded transactions for a work.
func (u *WorkPaymentUseCase) ListByWorkID(ctx context.Context, workID string) ([]entities.Transaction, error) {
	if err := validateID(workID, ErrInvalidWorkID); err != nil {
		return nil, err
	}
	transactions, err := u.txRepo.ListByWorkID(ctx, workID)
	if err != nil {
		return nil, err
	}
	payments := transactions[:0:0]
	for _, t := range transactions {
		if t.ProviderPaymentID != "" {
			payments = append(payments, t)
		}
	}
	return payments, nil
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
