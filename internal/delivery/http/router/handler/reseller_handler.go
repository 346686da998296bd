package handler

import (
	"log/slog"
	"net/http"

	"tangoshop/internal/delivery/http/response"
	"tangoshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ResellerHandler holds dependencies for reseller account handlers.
type ResellerHandler struct {
	uc     usecase.ResellerUsecase
	logger *slog.Logger
}

// NewResellerHandler is the constructor for ResellerHandler, injected by Fx.
func NewResellerHandler(uc usecase.ResellerUsecase, logger *slog.Logger) *ResellerHandler {
	return &ResellerHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile returns the authenticated reseller's account.
func (h *ResellerHandler) GetProfile(c echo.Context) error {
	resellerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), resellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// UpdateProfile applies partial updates to the reseller's account.
func (h *ResellerHandler) UpdateProfile(c echo.Context) error {
	resellerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateResellerProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), resellerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// List returns a page of active resellers.
func (h *ResellerHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	output, err := h.uc.ListResellers(c.Request().Context(), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Resellers retrieved successfully")
}

// GetByID returns a reseller's public view.
func (h *ResellerHandler) GetByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.uc.GetReseller(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Reseller retrieved successfully")
}

// Deactivate soft-disables the authenticated reseller's account.
func (h *ResellerHandler) Deactivate(c echo.Context) error {
	resellerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Deactivate(c.Request().Context(), resellerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deactivated successfully")
}
