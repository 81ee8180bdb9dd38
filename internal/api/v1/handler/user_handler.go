package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"app/internal/api/v1/dto"
	"app/internal/apperr"
	"app/internal/middleware"
	"app/internal/model"
	"app/internal/repository"
	"app/internal/security"
)

// UserHandler handles account signup and the who-am-I endpoint
type UserHandler struct {
	users    repository.UserRepository
	validate *validator.Validate
	respond  *Responder
	logger   zerolog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users repository.UserRepository, validate *validator.Validate, respond *Responder, logger zerolog.Logger) *UserHandler {
	return &UserHandler{
		users:    users,
		validate: validate,
		respond:  respond,
		logger:   logger.With().Str("handler", "UserHandler").Logger(),
	}
}

// CreateUser godoc
// @Summary Create an account
// @Description Creates a new account from the signup body and hashes the password.
// @Tags users
// @Accept json
// @Success 201 {string} string "Created, Location: /"
// @Failure 400 {object} map[string][]string "Validation or uniqueness errors"
// @Router /users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.UserCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respond.Error(w, apperr.New(http.StatusBadRequest, "Invalid JSON payload: "+err.Error()))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.respond.Error(w, err)
		return
	}
	// Confirmation is a plain body field compared here, before hashing,
	// never a model-level side channel.
	if req.PasswordConfirmation != "" && req.PasswordConfirmation != req.Password {
		h.respond.Error(w, apperr.NewValidation("The provided passwords do not match"))
		return
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		h.respond.Error(w, err)
		return
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		PasswordHash: hash,
	}
	if err := h.users.CreateUser(r.Context(), user); err != nil {
		h.respond.Error(w, err)
		return
	}

	h.logger.Info().Str("email", user.EmailAddress).Msg("Account created")
	h.respond.Created(w, "/")
}

// GetUser godoc
// @Summary Get the authenticated account
// @Description Returns the caller's own name and email, never the password hash.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponseDTO
// @Failure 401 {object} map[string]string "Authorization failed"
// @Router /users [get]
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user := middleware.CurrentUser(r.Context())
	if user == nil {
		h.respond.Error(w, apperr.Unauthorized())
		return
	}

	h.respond.JSON(w, http.StatusOK, dto.UserResponseDTO{
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		EmailAddress: user.EmailAddress,
	})
}
