package impl

import (
	"context"
	"log/slog"

	"tangoshop/internal/domain/entity"
	domainerrors "tangoshop/internal/domain/errors"
	"tangoshop/internal/domain/repository"
	"tangoshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// List retrieves every category ordered by name.
func (srv *categoryService) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Popular retrieves the categories with the most active products.
func (srv *categoryService) Popular(ctx context.Context, limit int) ([]*entity.Category, error) {
	_, limit, _ = usecase.NormalizePage(1, limit)

	categories, err := srv.categoryRepo.FindPopular(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list popular categories")
	}

	return categories, nil
}

// GetByID retrieves a single category.
func (srv *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// Products retrieves a page of the category's active products.
func (srv *categoryService) Products(ctx context.Context, categoryID uuid.UUID, page, limit int) (*usecase.ProductListOutput, error) {
	if _, err := srv.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	page, limit, offset := usecase.NormalizePage(page, limit)

	filter := repository.ProductFilter{
		CategoryID: &categoryID,
		Sort:       repository.ProductSortRecent,
		Limit:      limit,
		Offset:     offset,
	}

	products, err := srv.productRepo.FindActive(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list category products")
	}

	total, err := srv.productRepo.CountActive(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count category products")
	}

	return &usecase.ProductListOutput{
		Products:   products,
		Pagination: usecase.NewPagination(page, limit, total),
	}, nil
}
