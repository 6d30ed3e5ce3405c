package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"tavern/internal/delivery/http/response"
	"tavern/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// affectedView reports how many records a partial update touched.
type affectedView struct {
	Affected int64 `json:"affected"`
}

// ProfileHandler holds dependencies for profile mutation handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

// UpdateLocation handles a coordinate update for one account.
func (h *ProfileHandler) UpdateLocation(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "User id must be an integer")
	}

	var input *usecase.UpdateLocationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	affected, err := h.uc.UpdateLocation(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, affectedView{Affected: affected}, "Location updated successfully")
}

// UpdateEmail handles an email update for one account.
func (h *ProfileHandler) UpdateEmail(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "User id must be an integer")
	}

	var input *usecase.UpdateEmailInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	affected, err := h.uc.UpdateEmail(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, affectedView{Affected: affected}, "Email updated successfully")
}

// UpdatePhoto handles a profile photo update for one account.
func (h *ProfileHandler) UpdatePhoto(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "User id must be an integer")
	}

	var input *usecase.UpdatePhotoInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid photo input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	affected, err := h.uc.UpdatePhoto(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, affectedView{Affected: affected}, "Photo updated successfully")
}
