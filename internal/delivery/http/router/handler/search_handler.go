package handler

import (
	"log/slog"
	"net/http"

	"tangoshop/internal/delivery/http/response"
	"tangoshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchHandler holds dependencies for discovery handlers.
type SearchHandler struct {
	uc     usecase.SearchUsecase
	logger *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(uc usecase.SearchUsecase, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		uc:     uc,
		logger: logger,
	}
}

// Advanced returns a page of active products matching combined filters.
func (h *SearchHandler) Advanced(c echo.Context) error {
	input, err := bindProductQuery(c)
	if err != nil {
		return err
	}
	if q := c.QueryParam("q"); q != "" {
		input.Search = q
	}

	output, err := h.uc.Advanced(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Search results retrieved successfully")
}

// Filters describes the facets available to the advanced search.
func (h *SearchHandler) Filters(c echo.Context) error {
	filters, err := h.uc.Filters(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, filters, "Search filters retrieved successfully")
}

// Related returns active products sharing the product's category.
func (h *SearchHandler) Related(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	products, err := h.uc.Related(c.Request().Context(), productID, limitParam(c, 6))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Related products retrieved successfully")
}

// FavoriteSuppliers returns the suppliers behind a reseller's favorites.
func (h *SearchHandler) FavoriteSuppliers(c echo.Context) error {
	resellerID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	suppliers, err := h.uc.FavoriteSuppliers(c.Request().Context(), resellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, suppliers, "Favorite suppliers retrieved successfully")
}
