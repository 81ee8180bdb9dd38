package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"app/internal/api/v1/dto"
	"app/internal/apperr"
)

// pgUniqueViolation is the SQLSTATE raised when the email unique
// constraint is hit.
const pgUniqueViolation = "23505"

const duplicateEmailMessage = "The email address you entered already exists"

// Responder centralizes response writing and the error taxonomy: validation
// and uniqueness failures become 400 {"errors": [...]}, status-tagged domain
// errors use their own status, and everything else falls through to the
// global 500 shape.
type Responder struct {
	logger    zerolog.Logger
	logErrors bool
}

// NewResponder creates a Responder. logErrors mirrors the
// ENABLE_GLOBAL_ERROR_LOGGING flag and gates logging on the 500 path.
func NewResponder(logger zerolog.Logger, logErrors bool) *Responder {
	return &Responder{logger: logger, logErrors: logErrors}
}

// JSON writes v with the given status.
func (rs *Responder) JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		rs.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

// Created writes a 201 with the given Location header and no body.
func (rs *Responder) Created(w http.ResponseWriter, location string) {
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusCreated)
}

// NoContent writes a 204 with no body.
func (rs *Responder) NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error classifies err and writes the corresponding response.
func (rs *Responder) Error(w http.ResponseWriter, err error) {
	var verr *apperr.Validation
	if errors.As(err, &verr) {
		rs.JSON(w, http.StatusBadRequest, map[string]any{"errors": verr.Messages})
		return
	}

	var ferrs validator.ValidationErrors
	if errors.As(err, &ferrs) {
		rs.JSON(w, http.StatusBadRequest, map[string]any{"errors": dto.ValidationMessages(ferrs)})
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		rs.JSON(w, http.StatusBadRequest, map[string]any{"errors": []string{duplicateEmailMessage}})
		return
	}

	var derr *apperr.Error
	if errors.As(err, &derr) {
		rs.JSON(w, derr.Status, map[string]string{"message": derr.Message})
		return
	}

	if rs.logErrors {
		rs.logger.Error().Err(err).Msg("Global error handler")
	}
	rs.JSON(w, http.StatusInternalServerError, map[string]any{
		"message": err.Error(),
		"error":   map[string]any{},
	})
}
