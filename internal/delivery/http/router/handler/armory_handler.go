package handler

import (
	"log/slog"
	"net/http"

	"tavern/internal/delivery/http/response"
	"tavern/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ArmoryHandler holds dependencies for character and weapon handlers.
type ArmoryHandler struct {
	uc     usecase.ArmoryUsecase
	logger *slog.Logger
}

// NewArmoryHandler is the constructor for ArmoryHandler, injected by Fx.
func NewArmoryHandler(uc usecase.ArmoryUsecase, logger *slog.Logger) *ArmoryHandler {
	return &ArmoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateCharacter handles character creation for an existing account.
func (h *ArmoryHandler) CreateCharacter(c echo.Context) error {
	var input *usecase.CreateCharacterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid character input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	characterID, err := h.uc.CreateCharacter(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"characterId": characterID}, "Character created successfully")
}

// AttachWeapon handles equipping a character with a weapon.
func (h *ArmoryHandler) AttachWeapon(c echo.Context) error {
	var input *usecase.AttachWeaponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid weapon input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	weaponID, err := h.uc.AttachWeapon(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]int64{"weaponId": weaponID}, "Weapon attached successfully")
}
