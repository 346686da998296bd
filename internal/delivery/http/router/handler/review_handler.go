package handler

import (
	"log/slog"
	"net/http"

	"tangoshop/internal/delivery/http/response"
	"tangoshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create stores the authenticated reseller's review of a product.
func (h *ReviewHandler) Create(c echo.Context) error {
	resellerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	review, err := h.uc.Create(c.Request().Context(), resellerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// ListByProduct returns a page of a product's reviews.
func (h *ReviewHandler) ListByProduct(c echo.Context) error {
	productID, err := pathUUID(c, "productId")
	if err != nil {
		return err
	}

	page, limit := pageParams(c)

	output, err := h.uc.ListByProduct(c.Request().Context(), productID, page, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Reviews retrieved successfully")
}

// ListMine returns the authenticated reseller's reviews.
func (h *ReviewHandler) ListMine(c echo.Context) error {
	resellerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	reviews, err := h.uc.ListMine(c.Request().Context(), resellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// Update edits the authenticated reseller's own review.
func (h *ReviewHandler) Update(c echo.Context) error {
	resellerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	reviewID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	review, err := h.uc.Update(c.Request().Context(), resellerID, reviewID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review updated successfully")
}

// Delete removes the authenticated reseller's own review.
func (h *ReviewHandler) Delete(c echo.Context) error {
	resellerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	reviewID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), resellerID, reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review deleted successfully")
}

// Like increments a review's like counter.
func (h *ReviewHandler) Like(c echo.Context) error {
	reviewID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Like(c.Request().Context(), reviewID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Review liked successfully")
}
