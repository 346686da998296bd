package handler

import (
	"log/slog"
	"net/http"

	"tangoshop/internal/delivery/http/response"
	"tangoshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for reseller favorite handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add favorites a product for the authenticated reseller.
func (h *FavoriteHandler) Add(c echo.Context) error {
	resellerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input *usecase.AddFavoriteInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}

	favorite, err := h.uc.Add(c.Request().Context(), resellerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, favorite, "Product favorited successfully")
}

// Remove unfavorites a product.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	resellerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return err
	}

	if err := h.uc.Remove(c.Request().Context(), resellerID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Favorite removed successfully")
}

// List returns the reseller's priced favorites.
func (h *FavoriteHandler) List(c echo.Context) error {
	resellerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	entries, err := h.uc.List(c.Request().Context(), resellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Favorites retrieved successfully")
}

// ListByCategory returns the reseller's priced favorites grouped by category.
func (h *FavoriteHandler) ListByCategory(c echo.Context) error {
	resellerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	sections, err := h.uc.ListByCategory(c.Request().Context(), resellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sections, "Favorites retrieved successfully")
}

// GetMarkup returns a favorite's markup override and resolved price.
func (h *FavoriteHandler) GetMarkup(c echo.Context) error {
	resellerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return err
	}

	entry, err := h.uc.GetMarkup(c.Request().Context(), resellerID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry, "Markup retrieved successfully")
}

// UpdateMarkup replaces a favorite's markup override.
func (h *FavoriteHandler) UpdateMarkup(c echo.Context) error {
	resellerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return err
	}

	var input *usecase.UpdateMarkupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid markup input")
	}

	entry, err := h.uc.UpdateMarkup(c.Request().Context(), resellerID, productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry, "Markup updated successfully")
}
