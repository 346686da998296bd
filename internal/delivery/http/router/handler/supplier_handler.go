package handler

import (
	"log/slog"
	"net/http"

	"tangoshop/internal/delivery/http/response"
	"tangoshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SupplierHandler holds dependencies for supplier account handlers.
type SupplierHandler struct {
	uc        usecase.SupplierUsecase
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewSupplierHandler is the constructor for SupplierHandler, injected by Fx.
func NewSupplierHandler(uc usecase.SupplierUsecase, productUC usecase.ProductUsecase, logger *slog.Logger) *SupplierHandler {
	return &SupplierHandler{
		uc:        uc,
		productUC: productUC,
		logger:    logger,
	}
}

// GetProfile returns the authenticated supplier's account.
func (h *SupplierHandler) GetProfile(c echo.Context) error {
	supplierID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), supplierID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// UpdateProfile applies partial updates to the supplier's account.
func (h *SupplierHandler) UpdateProfile(c echo.Context) error {
	supplierID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input *usecase.UpdateSupplierProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), supplierID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// List returns a page of active suppliers.
func (h *SupplierHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	output, err := h.uc.ListSuppliers(c.Request().Context(), page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Suppliers retrieved successfully")
}

// GetByID returns a supplier's public view.
func (h *SupplierHandler) GetByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.uc.GetSupplier(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Supplier retrieved successfully")
}

// ListProducts returns a page of the supplier's active products.
func (h *SupplierHandler) ListProducts(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	page, limit := pageParams(c)

	output, err := h.productUC.ListBySupplier(c.Request().Context(), id, page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Supplier products retrieved successfully")
}

// GetStats returns the supplier's denormalized dashboard figures.
func (h *SupplierHandler) GetStats(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	stats, err := h.uc.GetStats(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Supplier stats retrieved successfully")
}

// GetReviews returns the reviews written across the supplier's products.
func (h *SupplierHandler) GetReviews(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.uc.GetReviews(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Supplier reviews retrieved successfully")
}

// GetResellers returns the resellers who favorited the supplier's products.
func (h *SupplierHandler) GetResellers(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	resellers, err := h.uc.GetResellers(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resellers, "Supplier resellers retrieved successfully")
}
