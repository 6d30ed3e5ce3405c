// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tavern/internal/delivery/http/response"
	"tavern/internal/domain/entity"
	"tavern/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// userView is the wire representation of an account. It never carries the
// credential pair.
type userView struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email,omitempty"`
	Photo        []byte     `json:"photo,omitempty"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	LastAccessAt *time.Time `json:"lastAccessAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func toUserView(user *entity.User) *userView {
	redacted := user.Redacted()

	return &userView{
		ID:           redacted.ID,
		Username:     redacted.Username,
		Email:        redacted.Email,
		Photo:        redacted.Photo,
		Latitude:     redacted.Latitude,
		Longitude:    redacted.Longitude,
		LastAccessAt: redacted.LastAccessAt,
		CreatedAt:    redacted.CreatedAt,
	}
}

func toUserViews(users []*entity.User) []*userView {
	views := make([]*userView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return views
}

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "User registered successfully")
}

// Authenticate handles the login request. The response carries the account
// without its credential fields.
func (h *AccountHandler) Authenticate(c echo.Context) error {
	var input *usecase.AuthenticateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Authenticate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(output.User), "Login successful")
}

// ChangePassword handles the credential rotation request.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	var input *usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ChangePassword(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Password changed successfully")
}

// ListUsers returns every registered account.
func (h *AccountHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserViews(users), "")
}

// GetUserByID returns a single account by its numeric identifier.
func (h *AccountHandler) GetUserByID(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "User id must be an integer")
	}

	user, err := h.uc.GetUserByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "")
}

// GetUserByUsername returns a single account by username. Lookup is
// case-insensitive.
func (h *AccountHandler) GetUserByUsername(c echo.Context) error {
	username := c.Param("username")
	if username == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Username is required")
	}

	user, err := h.uc.GetUserByUsername(c.Request().Context(), username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserView(user), "")
}
