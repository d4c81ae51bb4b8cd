package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"construtora_api/internal/adapter/http/handlers/mocks"
	"construtora_api/internal/domain/entities"
	"construtora_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTransactionHandler(t *testing.T) (*TransactionHandler, *mocks.MockITransactionUseCase, *mocks.MockIWorkPaymentUseCase) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockITransactionUseCase(ctrl)
	paymentUC := mocks.NewMockIWorkPaymentUseCase(ctrl)
	return NewTransactionHandler(uc, paymentUC), uc, paymentUC
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		h, _, _ := newTransactionHandler(t)
		r := gin.New()
		r.POST("/v1/finance/transactions", h.CreateTransaction)

		req := httptest.NewRequest(http.MethodPost, "/v1/finance/transactions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		h, uc, _ := newTransactionHandler(t)
		r := gin.New()
		r.POST("/v1/finance/transactions", h.CreateTransaction)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Transaction{}, usecase.ErrInvalidTransactionKind)

		req := httptest.NewRequest(http.MethodPost, "/v1/finance/transactions", bytes.NewBufferString(`{"kind":"Transferencia","amount":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		h, uc, _ := newTransactionHandler(t)
		r := gin.New()
		r.POST("/v1/finance/transactions", h.CreateTransaction)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Transaction{
			ID: "t1", Kind: entities.TransactionKindEntrada, Status: entities.TransactionStatusPago, Amount: 1500,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/finance/transactions", bytes.NewBufferString(`{"kind":"Entrada","amount":1500}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "t1" || body["amount"] != float64(1500) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestTransactionHandler_ListTransactions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h, uc, _ := newTransactionHandler(t)
	r := gin.New()
	r.GET("/v1/finance/transactions", h.ListTransactions)

	uc.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q usecase.TransactionListQuery) ([]entities.Transaction, error) {
			if q.Kind != "Saida" || q.DateFrom == nil || q.DateFrom.Format("2006-01-02") != "2024-06-01" {
				t.Fatalf("unexpected query: %+v", q)
			}
			return []entities.Transaction{}, nil
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/finance/transactions?kind=Saida&dateFrom=2024-06-01", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestTransactionHandler_ChargeWork(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		h, _, paymentUC := newTransactionHandler(t)
		r := gin.New()
		r.POST("/v1/finance/payments/:work_id", h.ChargeWork)

		paymentUC.EXPECT().ChargeWork(gomock.Any(), handlerWorkID).Return(entities.Transaction{
			ID: "t1", ProviderPaymentID: "mp-123", Amount: 700,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/finance/payments/"+handlerWorkID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["providerPaymentId"] != "mp-123" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("provider unauthorized", func(t *testing.T) {
		h, _, paymentUC := newTransactionHandler(t)
		r := gin.New()
		r.POST("/v1/finance/payments/:work_id", h.ChargeWork)

		paymentUC.EXPECT().ChargeWork(gomock.Any(), handlerWorkID).
			Return(entities.Transaction{}, usecase.ErrPaymentGatewayUnauthorized)

		req := httptest.NewRequest(http.MethodPost, "/v1/finance/payments/"+handlerWorkID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("provider not configured", func(t *testing.T) {
		h, _, paymentUC := newTransactionHandler(t)
		r := gin.New()
		r.POST("/v1/finance/payments/:work_id", h.ChargeWork)

		paymentUC.EXPECT().ChargeWork(gomock.Any(), handlerWorkID).
			Return(entities.Transaction{}, usecase.ErrPaymentGatewayNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/finance/payments/"+handlerWorkID, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestMapWorkPaymentError(t *testing.T) {
	if got := mapWorkPaymentError(usecase.ErrInvalidChargeAmount); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapWorkPaymentError(usecase.ErrPaymentGatewayBadRequest); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapWorkPaymentError(usecase.ErrWorkNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapWorkPaymentError(usecase.ErrPresetNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapWorkPaymentError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
