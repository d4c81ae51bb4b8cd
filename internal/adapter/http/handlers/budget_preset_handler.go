package handlers

import (
	"errors"
	"net/http"

	request "construtora_api/internal/adapter/http/dto/request"
	response "construtora_api/internal/adapter/http/dto/response"
	"construtora_api/internal/usecase"
	"construtora_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPresetPayload = pkg.NewDomainErrorSimple("INVALID_PRESET_INPUT", "Invalid budget preset payload", http.StatusBadRequest)

// BudgetPresetHandler handles HTTP requests for reusable budget templates.

type BudgetPresetHandler struct {
	usecase usecase.IBudgetPresetUseCase
}

func NewBudgetPresetHandler(uc usecase.IBudgetPresetUseCase) *BudgetPresetHandler {
	return &BudgetPresetHandler{usecase: uc}
}

func (h *BudgetPresetHandler) CreateBudgetPreset(c *gin.Context) {
	var payload request.BudgetPresetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPresetPayload.HTTPStatus, errInvalidPresetPayload.ToHTTPError())
		return
	}

	preset, err := h.usecase.Create(c.Request.Context(), payload.ToWrite())
	if err != nil {
		appErr := mapBudgetPresetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudgetPreset(preset))
}

func (h *BudgetPresetHandler) UpdateBudgetPreset(c *gin.Context) {
	var payload request.BudgetPresetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPresetPayload.HTTPStatus, errInvalidPresetPayload.ToHTTPError())
		return
	}

	preset, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToWrite())
	if err != nil {
		appErr := mapBudgetPresetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetPreset(preset))
}

func (h *BudgetPresetHandler) GetBudgetPreset(c *gin.Context) {
	preset, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetPresetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetPreset(preset))
}

func (h *BudgetPresetHandler) DeleteBudgetPreset(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapBudgetPresetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BudgetPresetHandler) ListBudgetPresets(c *gin.Context) {
	presets, err := h.usecase.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		appErr := mapBudgetPresetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetPresets(presets))
}

func mapBudgetPresetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPresetID), errors.Is(err, usecase.ErrInvalidPresetName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPresetNotFound):
		return pkg.NewDomainErrorSimple("PRESET_NOT_FOUND", "Budget preset not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
