package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"tangoshop/internal/delivery/http/response"
	"tangoshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create lists a new product owned by the authenticated supplier.
func (h *ProductHandler) Create(c echo.Context) error {
	supplierID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var input *usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.Create(c.Request().Context(), supplierID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Update applies partial updates to a product owned by the supplier.
func (h *ProductHandler) Update(c echo.Context) error {
	supplierID, err := currentUserID(c)
	if err != nil {
		return err
	}

	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input *usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.Update(c.Request().Context(), supplierID, productID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// Delete soft-deletes a product owned by the supplier.
func (h *ProductHandler) Delete(c echo.Context) error {
	supplierID, err := currentUserID(c)
	if err != nil {
		return err
	}

	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), supplierID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// UploadImage stores the product's photo from a multipart form field named "image".
func (h *ProductHandler) UploadImage(c echo.Context) error {
	supplierID, err := currentUserID(c)
	if err != nil {
		return err
	}

	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Could not read image file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Could not read image file")
	}

	contentType := fileHeader.Header.Get("Content-Type")

	photoURL, err := h.uc.UploadImage(c.Request().Context(), supplierID, productID, contentType, data)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"photoUrl": photoURL}, "Product image uploaded successfully")
}

// GetByID returns a single active product.
func (h *ProductHandler) GetByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// List returns a page of active products matching the query filters.
func (h *ProductHandler) List(c echo.Context) error {
	input, err := bindProductQuery(c)
	if err != nil {
		return err
	}

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Products retrieved successfully")
}

// Search is the name-first product listing. The "q" parameter is an alias
// for "search" kept for the original clients.
func (h *ProductHandler) Search(c echo.Context) error {
	input, err := bindProductQuery(c)
	if err != nil {
		return err
	}
	if q := c.QueryParam("q"); q != "" {
		input.Search = q
	}

	output, err := h.uc.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Products retrieved successfully")
}

// TopRated returns the best rated active products.
func (h *ProductHandler) TopRated(c echo.Context) error {
	products, err := h.uc.TopRated(c.Request().Context(), limitParam(c, 10))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Top rated products retrieved successfully")
}

// Recent returns the most recently listed active products.
func (h *ProductHandler) Recent(c echo.Context) error {
	products, err := h.uc.Recent(c.Request().Context(), limitParam(c, 10))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Recent products retrieved successfully")
}

// bindProductQuery assembles a product listing filter from the query string.
// The second return value carries the already-written 400 response.
func bindProductQuery(c echo.Context) (*usecase.ListProductsInput, error) {
	page, limit := pageParams(c)
	input := &usecase.ListProductsInput{
		Search: c.QueryParam("search"),
		Sort:   c.QueryParam("sort"),
		Page:   page,
		Limit:  limit,
	}

	if idStr := c.QueryParam("categoryId"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, response.BadRequest(c, "INVALID_INPUT", "Invalid categoryId parameter")
		}
		input.CategoryID = &id
	}
	if idStr := c.QueryParam("supplierId"); idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, response.BadRequest(c, "INVALID_INPUT", "Invalid supplierId parameter")
		}
		input.SupplierID = &id
	}
	if v, err := queryFloat(c, "minPrice"); err != nil {
		return nil, err
	} else if v != nil {
		input.MinPrice = v
	}
	if v, err := queryFloat(c, "maxPrice"); err != nil {
		return nil, err
	} else if v != nil {
		input.MaxPrice = v
	}
	if v, err := queryFloat(c, "minRating"); err != nil {
		return nil, err
	} else if v != nil {
		input.MinRating = v
	}

	return input, nil
}

// queryFloat parses an optional float query parameter.
func queryFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, response.BadRequest(c, "INVALID_INPUT", "Invalid "+name+" parameter")
	}

	return &v, nil
}
