package handlers

import (
	"errors"
	"log"
	"net/http"

	request "grafica_xpto/internal/adapter/http/dto/request"
	response "grafica_xpto/internal/adapter/http/dto/response"
	"grafica_xpto/internal/usecase"
	"grafica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)
)

// SessionHandler handles HTTP requests for conversion sessions: starting a
// session from an approved quote and re-partitioning its groups before the
// conversion run.

type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	var payload request.CreateSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	quoteID := payload.ResolveQuoteID()
	if quoteID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	log.Printf("[session][handler] create start quote_id=%s strategy=%s", quoteID, payload.Strategy)
	session, err := h.usecase.StartSession(c.Request.Context(), quoteID, payload.ResolveStrategy())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSession(session))
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.usecase.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) SwitchStrategy(c *gin.Context) {
	var payload request.SwitchStrategyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	sessionID := c.Param("session_id")
	log.Printf("[session][handler] strategy switch session_id=%s strategy=%s confirm=%t", sessionID, payload.Strategy, payload.Confirm)
	session, err := h.usecase.SwitchStrategy(c.Request.Context(), sessionID, payload.ResolveStrategy(), payload.Confirm)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) AddGroup(c *gin.Context) {
	session, err := h.usecase.AddGroup(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) MergeGroups(c *gin.Context) {
	var payload request.MergeGroupsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.MergeGroups(c.Request.Context(), c.Param("session_id"), payload.ResolveGroupIDs())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) SplitGroup(c *gin.Context) {
	session, err := h.usecase.SplitGroup(c.Request.Context(), c.Param("session_id"), c.Param("group_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) DuplicateGroup(c *gin.Context) {
	session, err := h.usecase.DuplicateGroup(c.Request.Context(), c.Param("session_id"), c.Param("group_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) UpdateGroup(c *gin.Context) {
	var payload request.UpdateGroupRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.UpdateGroup(c.Request.Context(), c.Param("session_id"), c.Param("group_id"), payload.ToPatch())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) RemoveGroup(c *gin.Context) {
	session, err := h.usecase.RemoveGroup(c.Request.Context(), c.Param("session_id"), c.Param("group_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func (h *SessionHandler) AcknowledgeDuplication(c *gin.Context) {
	session, err := h.usecase.AcknowledgeDuplication(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidStrategy):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote must be approved before conversion", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteHasNoItems):
		return pkg.NewDomainErrorSimple("QUOTE_HAS_NO_ITEMS", "Quote has no line items to convert", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSwitchNotConfirmed):
		return pkg.NewDomainErrorSimple("SWITCH_NOT_CONFIRMED", "Strategy switch discards current groups and must be confirmed", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionNotDraft):
		return pkg.NewDomainErrorSimple("SESSION_NOT_EDITABLE", "Session is no longer editable", http.StatusConflict)
	case errors.Is(err, usecase.ErrStrategyNotCustom):
		return pkg.NewDomainErrorSimple("STRATEGY_NOT_CUSTOM", "Group mutations require the custom strategy", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidOperation):
		return pkg.NewDomainError("INVALID_OPERATION", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
