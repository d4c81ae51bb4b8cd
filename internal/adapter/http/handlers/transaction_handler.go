package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	request "construtora_api/internal/adapter/http/dto/request"
	response "construtora_api/internal/adapter/http/dto/response"
	"construtora_api/internal/usecase"
	"construtora_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidTransactionPayload = pkg.NewDomainErrorSimple("INVALID_TRANSACTION_INPUT", "Invalid transaction payload", http.StatusBadRequest)

// TransactionHandler handles HTTP requests for finance transactions and the
// work payment flow backed by the payment gateway.

type TransactionHandler struct {
	usecase        usecase.ITransactionUseCase
	paymentUsecase usecase.IWorkPaymentUseCase
}

func NewTransactionHandler(uc usecase.ITransactionUseCase, paymentUC usecase.IWorkPaymentUseCase) *TransactionHandler {
	return &TransactionHandler{usecase: uc, paymentUsecase: paymentUC}
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var payload request.TransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}

	transaction, err := h.usecase.Create(c.Request.Context(), payload.ToWrite())
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTransaction(transaction))
}

func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var payload request.TransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}

	transaction, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToWrite())
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(transaction))
}

func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	transaction, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(transaction))
}

func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListTransactions filters by kind, status, category, free text and an
// inclusive date window.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	q := usecase.TransactionListQuery{
		Search:   c.Query("search"),
		Kind:     c.Query("kind"),
		Status:   c.Query("status"),
		Category: c.Query("category"),
		DateFrom: dateQuery(c, "dateFrom"),
		DateTo:   dateQuery(c, "dateTo"),
	}

	transactions, err := h.usecase.List(c.Request.Context(), q)
	if err != nil {
		appErr := mapTransactionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactions(transactions))
}

// ChargeWork charges the work's budget total through the payment gateway and
// records the approved income transaction.
func (h *TransactionHandler) ChargeWork(c *gin.Context) {
	workID := c.Param("work_id")
	log.Printf("[payment][handler] charge start work_id=%s", workID)

	transaction, err := h.paymentUsecase.ChargeWork(c.Request.Context(), workID)
	if err != nil {
		log.Printf("[payment][handler] charge failed work_id=%s err=%v", workID, err)
		appErr := mapWorkPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] charge success work_id=%s transaction_id=%s provider_payment_id=%s", workID, transaction.ID, transaction.ProviderPaymentID)

	c.JSON(http.StatusCreated, response.FromTransaction(transaction))
}

// GetPaymentsByWork returns the gateway-recorded payments of a work.
func (h *TransactionHandler) GetPaymentsByWork(c *gin.Context) {
	workID := c.Param("work_id")

	payments, err := h.paymentUsecase.ListByWorkID(c.Request.Context(), workID)
	if err != nil {
		appErr := mapWorkPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactions(payments))
}

func mapTransactionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTransactionID),
		errors.Is(err, usecase.ErrInvalidTransactionKind),
		errors.Is(err, usecase.ErrInvalidTransactionAmount),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidWorkID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapWorkPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkID),
		errors.Is(err, usecase.ErrInvalidChargeAmount),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrWorkNotFound):
		return pkg.NewDomainErrorSimple("WORK_NOT_FOUND", "Work not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPresetNotFound):
		return pkg.NewDomainErrorSimple("PRESET_NOT_FOUND", "Budget preset not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// dateQuery accepts RFC3339 timestamps or plain dates (2006-01-02).
func dateQuery(c *gin.Context, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	return nil
}
