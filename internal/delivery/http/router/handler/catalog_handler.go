package handler

import (
	"log/slog"
	"net/http"

	"tangoshop/internal/delivery/http/response"
	"tangoshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog generation handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// Generate compiles and publishes the authenticated reseller's catalog.
func (h *CatalogHandler) Generate(c echo.Context) error {
	resellerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.Generate(c.Request().Context(), resellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Catalog generated successfully")
}
