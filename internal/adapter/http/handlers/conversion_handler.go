package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "grafica_xpto/internal/adapter/http/dto/request"
	response "grafica_xpto/internal/adapter/http/dto/response"
	"grafica_xpto/internal/usecase"
	"grafica_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// ConversionHandler handles validation and execution of conversion runs.

type ConversionHandler struct {
	usecase usecase.IConversionUseCase
}

func NewConversionHandler(uc usecase.IConversionUseCase) *ConversionHandler {
	return &ConversionHandler{usecase: uc}
}

// ValidateSession reports every invariant violation of the session's group
// set, or 204 when the session may convert.
func (h *ConversionHandler) ValidateSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	err := h.usecase.Validate(c.Request.Context(), sessionID)
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, validationFailedBody(verr))
		return
	}

	appErr := mapSessionError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// Convert validates and executes the run. The response is 200 even when some
// groups failed: the run is best-effort and the per-group outcomes are in the
// body.
func (h *ConversionHandler) Convert(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.ConvertRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	log.Printf("[conversion][handler] convert start session_id=%s", sessionID)
	run, err := h.usecase.Execute(c.Request.Context(), sessionID, payload.ToSettings())
	if err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, validationFailedBody(verr))
			return
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Partial progress is preserved; hand back what was attempted.
			log.Printf("[conversion][handler] convert cancelled session_id=%s attempted=%d", sessionID, len(run.Results))
			c.JSON(http.StatusOK, response.FromRun(run))
			return
		}
		appErr := mapConversionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[conversion][handler] convert done session_id=%s run_id=%s succeeded=%d failed=%d", sessionID, run.ID, run.SucceededCount(), run.FailedCount())
	c.JSON(http.StatusOK, response.FromRun(run))
}

// GetRun serves the last persisted run snapshot; pollable while a conversion
// is in flight.
func (h *ConversionHandler) GetRun(c *gin.Context) {
	run, err := h.usecase.GetRun(c.Request.Context(), c.Param("run_id"))
	if err != nil {
		appErr := mapConversionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRun(run))
}

func validationFailedBody(verr *usecase.ValidationError) gin.H {
	return gin.H{
		"code":       "VALIDATION_FAILED",
		"message":    "Group set cannot be converted",
		"violations": verr.Violations,
	}
}

func mapConversionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidRunID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRunNotFound):
		return pkg.NewDomainErrorSimple("RUN_NOT_FOUND", "Conversion run not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionAlreadyConverted):
		return pkg.NewDomainErrorSimple("SESSION_ALREADY_CONVERTED", "Session was already converted", http.StatusConflict)
	case errors.Is(err, usecase.ErrConversionInProgress):
		return pkg.NewDomainErrorSimple("CONVERSION_IN_PROGRESS", "A conversion run is already in progress", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
