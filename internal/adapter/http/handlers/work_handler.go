package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "construtora_api/internal/adapter/http/dto/request"
	response "construtora_api/internal/adapter/http/dto/response"
	"construtora_api/internal/usecase"
	"construtora_api/internal/usecase/interfaces"
	"construtora_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidWorkPayload = pkg.NewDomainErrorSimple("INVALID_WORK_INPUT", "Invalid work payload", http.StatusBadRequest)

// WorkHandler handles HTTP requests for works (obras), including the
// checklist sub-resource and the public client-portal views.

type WorkHandler struct {
	usecase usecase.IWorkUseCase
}

func NewWorkHandler(uc usecase.IWorkUseCase) *WorkHandler {
	return &WorkHandler{usecase: uc}
}

// CreateWork creates a work from the back-office payload.
func (h *WorkHandler) CreateWork(c *gin.Context) {
	var payload request.WorkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkPayload.HTTPStatus, errInvalidWorkPayload.ToHTTPError())
		return
	}

	work, err := h.usecase.Create(c.Request.Context(), payload.ToWrite())
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWork(work))
}

// UpdateWork merges the provided fields into an existing work.
func (h *WorkHandler) UpdateWork(c *gin.Context) {
	var payload request.WorkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkPayload.HTTPStatus, errInvalidWorkPayload.ToHTTPError())
		return
	}

	work, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToWrite())
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWork(work))
}

// GetWork returns a work with its client and preset references resolved.
func (h *WorkHandler) GetWork(c *gin.Context) {
	detail, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkDetail(detail))
}

func (h *WorkHandler) DeleteWork(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListWorks returns the paginated back-office listing with optional search
// and status filters.
func (h *WorkHandler) ListWorks(c *gin.Context) {
	q := usecase.WorkListQuery{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Page:   intQuery(c, "page"),
		Limit:  intQuery(c, "limit"),
	}

	page, err := h.usecase.List(c.Request.Context(), q)
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkPage(page))
}

// AddChecklistItem appends a new open item to the work's checklist.
func (h *WorkHandler) AddChecklistItem(c *gin.Context) {
	var payload request.ChecklistAddRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkPayload.HTTPStatus, errInvalidWorkPayload.ToHTTPError())
		return
	}

	work, err := h.usecase.AddChecklistItem(c.Request.Context(), c.Param("id"), payload.Title)
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWork(work))
}

// ToggleChecklistItem flips an item's done flag.
func (h *WorkHandler) ToggleChecklistItem(c *gin.Context) {
	work, err := h.usecase.ToggleChecklistItem(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWork(work))
}

// RemoveChecklistItem deletes an item; removing an absent item still returns
// the work unchanged.
func (h *WorkHandler) RemoveChecklistItem(c *gin.Context) {
	work, err := h.usecase.RemoveChecklistItem(c.Request.Context(), c.Param("id"), c.Param("item_id"))
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWork(work))
}

// PublicWorksByClient lists a client's works for the portal, sanitized.
func (h *WorkHandler) PublicWorksByClient(c *gin.Context) {
	works, err := h.usecase.PublicListByClient(c.Request.Context(), c.Param("clientId"))
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPublicWorks(works))
}

// PublicWorkDetail returns the sanitized portal detail view.
func (h *WorkHandler) PublicWorkDetail(c *gin.Context) {
	detail, err := h.usecase.PublicDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapWorkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPublicWorkDetail(detail))
}

func mapWorkError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkID),
		errors.Is(err, usecase.ErrInvalidClientID),
		errors.Is(err, usecase.ErrInvalidPresetID),
		errors.Is(err, usecase.ErrInvalidItemID),
		errors.Is(err, usecase.ErrInvalidChecklistTitle):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkNotFound):
		return pkg.NewDomainErrorSimple("WORK_NOT_FOUND", "Work not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChecklistItemNotFound):
		return pkg.NewDomainErrorSimple("CHECKLIST_ITEM_NOT_FOUND", "Checklist item not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("WORK_CONFLICT", "Work was modified concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// intQuery parses an integer query param, treating absent or malformed
// values as zero so the use case applies its defaults.
func intQuery(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return v
}
