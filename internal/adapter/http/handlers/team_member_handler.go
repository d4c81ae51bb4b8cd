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

var errInvalidTeamMemberPayload = pkg.NewDomainErrorSimple("INVALID_TEAM_MEMBER_INPUT", "Invalid team member payload", http.StatusBadRequest)

// TeamMemberHandler handles HTTP requests for team members.

type TeamMemberHandler struct {
	usecase usecase.ITeamMemberUseCase
}

func NewTeamMemberHandler(uc usecase.ITeamMemberUseCase) *TeamMemberHandler {
	return &TeamMemberHandler{usecase: uc}
}

func (h *TeamMemberHandler) CreateTeamMember(c *gin.Context) {
	var payload request.TeamMemberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTeamMemberPayload.HTTPStatus, errInvalidTeamMemberPayload.ToHTTPError())
		return
	}

	member, err := h.usecase.Create(c.Request.Context(), payload.ToWrite())
	if err != nil {
		appErr := mapTeamMemberError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTeamMember(member))
}

func (h *TeamMemberHandler) UpdateTeamMember(c *gin.Context) {
	var payload request.TeamMemberRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTeamMemberPayload.HTTPStatus, errInvalidTeamMemberPayload.ToHTTPError())
		return
	}

	member, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToWrite())
	if err != nil {
		appErr := mapTeamMemberError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTeamMember(member))
}

func (h *TeamMemberHandler) GetTeamMember(c *gin.Context) {
	member, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapTeamMemberError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTeamMember(member))
}

func (h *TeamMemberHandler) DeleteTeamMember(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapTeamMemberError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TeamMemberHandler) ListTeamMembers(c *gin.Context) {
	q := usecase.TeamMemberListQuery{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}

	members, err := h.usecase.List(c.Request.Context(), q)
	if err != nil {
		appErr := mapTeamMemberError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTeamMembers(members))
}

func mapTeamMemberError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTeamMemberID), errors.Is(err, usecase.ErrInvalidMemberName):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTeamMemberNotFound):
		return pkg.NewDomainErrorSimple("TEAM_MEMBER_NOT_FOUND", "Team member not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
