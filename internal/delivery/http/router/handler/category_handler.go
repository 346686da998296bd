package handler

import (
	"log/slog"
	"net/http"

	"tangoshop/internal/delivery/http/response"
	"tangoshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CategoryHandler holds dependencies for category handlers.
type CategoryHandler struct {
	uc     usecase.CategoryUsecase
	logger *slog.Logger
}

// NewCategoryHandler is the constructor for CategoryHandler, injected by Fx.
func NewCategoryHandler(uc usecase.CategoryUsecase, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns every category.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Categories retrieved successfully")
}

// Popular returns the categories with the most active products.
func (h *CategoryHandler) Popular(c echo.Context) error {
	categories, err := h.uc.Popular(c.Request().Context(), limitParam(c, 10))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "Popular categories retrieved successfully")
}

// GetByID returns a single category.
func (h *CategoryHandler) GetByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, category, "Category retrieved successfully")
}

// Products returns a page of the category's active products.
func (h *CategoryHandler) Products(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	page, limit := pageParams(c)

	output, err := h.uc.Products(c.Request().Context(), id, page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Category products retrieved successfully")
}
