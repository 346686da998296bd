package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "tangoshop/internal/delivery/context"
	"tangoshop/internal/domain/entity"
	domainerrors "tangoshop/internal/domain/errors"
	"tangoshop/internal/domain/repository"
	"tangoshop/internal/domain/service"
	"tangoshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxProductImageSize bounds uploaded product photos to 5MB.
const maxProductImageSize = 5 << 20

// productService implements the ProductUsecase interface.
type productService struct {
	txManager      repository.TransactionManager
	productRepo    repository.ProductRepository
	favoriteRepo   repository.FavoriteRepository
	eventPublisher service.EventPublisher
	objectStorage  service.ObjectStorage
	logger         *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ProductRepo    repository.ProductRepository
	FavoriteRepo   repository.FavoriteRepository
	EventPublisher service.EventPublisher
	ObjectStorage  service.ObjectStorage
	Logger         *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:      params.TxManager,
		productRepo:    params.ProductRepo,
		favoriteRepo:   params.FavoriteRepo,
		eventPublisher: params.EventPublisher,
		objectStorage:  params.ObjectStorage,
		logger:         params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create lists a new product owned by the supplier. The supplier and
// category counters move within the same transaction as the insert.
func (srv *productService) Create(ctx context.Context, supplierID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must be greater than zero")
	}

	product := &entity.Product{
		SupplierID:  supplierID,
		CategoryID:  input.CategoryID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		SKU:         input.SKU,
		Stock:       input.Stock,
		IsActive:    true,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewProductRepository().Create(ctx, product); err != nil {
			return errors.Wrap(err, "failed to create product")
		}

		if err := repoFactory.NewUserRepository().IncrementSupplierTotalProducts(ctx, supplierID, 1); err != nil {
			return errors.Wrap(err, "failed to increment supplier product counter")
		}

		if product.CategoryID != nil {
			if err := repoFactory.NewCategoryRepository().IncrementProductCount(ctx, *product.CategoryID, 1); err != nil {
				return errors.Wrap(err, "failed to increment category product counter")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("supplierID", supplierID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("supplierID", supplierID))

	return product, nil
}

// Update modifies a product owned by the supplier. Changes to watched fields
// (name, price, description, photo) notify the resellers who favorited it.
func (srv *productService) Update(ctx context.Context, supplierID, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if input.Price != nil && *input.Price <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must be greater than zero")
	}

	var (
		updated       *entity.Product
		changedFields []string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to load product for update")
		}
		if product.SupplierID != supplierID {
			return domainerrors.ErrProductOwnershipViolation
		}

		prev := *product

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.SKU != nil {
			product.SKU = *input.SKU
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}

		// Category moves adjust both category counters.
		if input.CategoryID != nil && !uuidPtrEqual(product.CategoryID, input.CategoryID) {
			categoryRepo := repoFactory.NewCategoryRepository()

			if product.CategoryID != nil {
				if err := categoryRepo.IncrementProductCount(ctx, *product.CategoryID, -1); err != nil {
					return errors.Wrap(err, "failed to release previous category counter")
				}
			}
			if err := categoryRepo.IncrementProductCount(ctx, *input.CategoryID, 1); err != nil {
				return errors.Wrap(err, "failed to claim new category counter")
			}
			product.CategoryID = input.CategoryID
		}

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		changedFields = product.WatchedFieldsChanged(&prev)
		updated = product

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", productID), slog.Any("error", err))

		return nil, err
	}

	if len(changedFields) > 0 {
		srv.notifyWatchers(ctx, updated, changedFields)
	}

	return updated, nil
}

// Delete soft-deletes a product owned by the supplier and rolls back the
// supplier and category counters.
func (srv *productService) Delete(ctx context.Context, supplierID, productID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to load product for deletion")
		}
		if product.SupplierID != supplierID {
			return domainerrors.ErrProductOwnershipViolation
		}
		if !product.IsActive {
			// Already deleted, the counters were released at that point.
			return nil
		}

		if err := productRepo.SoftDelete(ctx, productID); err != nil {
			return errors.Wrap(err, "failed to soft delete product")
		}

		if err := repoFactory.NewUserRepository().IncrementSupplierTotalProducts(ctx, supplierID, -1); err != nil {
			return errors.Wrap(err, "failed to decrement supplier product counter")
		}

		if product.CategoryID != nil {
			if err := repoFactory.NewCategoryRepository().IncrementProductCount(ctx, *product.CategoryID, -1); err != nil {
				return errors.Wrap(err, "failed to decrement category product counter")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", productID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID), slog.Any("supplierID", supplierID))

	return nil
}

// UploadImage stores a product photo and stamps its URL on the product.
// A photo change counts as a watched-field update for favoriting resellers.
func (srv *productService) UploadImage(ctx context.Context, supplierID, productID uuid.UUID, contentType string, data []byte) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", domainerrors.ErrValidationFailed.WrapMessage("only image uploads are accepted")
	}
	if len(data) == 0 || len(data) > maxProductImageSize {
		return "", domainerrors.ErrValidationFailed.WrapMessage("image must be between 1 byte and 5MB")
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return "", domainerrors.ErrProductNotFound
		}

		return "", errors.Wrap(err, "failed to load product for image upload")
	}
	if product.SupplierID != supplierID {
		return "", domainerrors.ErrProductOwnershipViolation
	}

	key := fmt.Sprintf("products/%s", productID)
	url, err := srv.objectStorage.Upload(ctx, key, contentType, data)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload product image")
	}

	prev := *product
	product.PhotoURL = url
	if err := srv.productRepo.Update(ctx, product); err != nil {
		return "", errors.Wrap(err, "failed to stamp product photo URL")
	}

	if changed := product.WatchedFieldsChanged(&prev); len(changed) > 0 {
		srv.notifyWatchers(ctx, product, changed)
	}

	return url, nil
}

// GetByID retrieves a single active product.
func (srv *productService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

// List retrieves a filtered page of active products.
func (srv *productService) List(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	page, limit, offset := usecase.NormalizePage(input.Page, input.Limit)

	filter := repository.ProductFilter{
		CategoryID: input.CategoryID,
		SupplierID: input.SupplierID,
		Search:     input.Search,
		MinPrice:   input.MinPrice,
		MaxPrice:   input.MaxPrice,
		MinRating:  input.MinRating,
		Sort:       repository.ProductSort(input.Sort),
		Limit:      limit,
		Offset:     offset,
	}

	products, err := srv.productRepo.FindActive(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	total, err := srv.productRepo.CountActive(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	return &usecase.ProductListOutput{
		Products:   products,
		Pagination: usecase.NewPagination(page, limit, total),
	}, nil
}

// ListBySupplier retrieves a page of the supplier's own products.
func (srv *productService) ListBySupplier(ctx context.Context, supplierID uuid.UUID, page, limit int) (*usecase.ProductListOutput, error) {
	page, limit, offset := usecase.NormalizePage(page, limit)

	products, err := srv.productRepo.FindBySupplier(ctx, supplierID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list supplier products")
	}

	total, err := srv.productRepo.CountBySupplier(ctx, supplierID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count supplier products")
	}

	return &usecase.ProductListOutput{
		Products:   products,
		Pagination: usecase.NewPagination(page, limit, total),
	}, nil
}

// TopRated retrieves the highest-rated active products.
func (srv *productService) TopRated(ctx context.Context, limit int) ([]*entity.Product, error) {
	_, limit, _ = usecase.NormalizePage(1, limit)

	products, err := srv.productRepo.FindTopRated(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find top rated products")
	}

	return products, nil
}

// Recent retrieves the most recently listed active products.
func (srv *productService) Recent(ctx context.Context, limit int) ([]*entity.Product, error) {
	_, limit, _ = usecase.NormalizePage(1, limit)

	products, err := srv.productRepo.FindRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recent products")
	}

	return products, nil
}

// notifyWatchers publishes a product.updated event targeting every reseller
// who favorited the product. Best effort: a publish failure is logged only.
func (srv *productService) notifyWatchers(ctx context.Context, product *entity.Product, changedFields []string) {
	favorites, err := srv.favoriteRepo.FindByProduct(ctx, product.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to load favorites for product update fan-out",
			slog.Any("productID", product.ID), slog.Any("error", err))

		return
	}
	if len(favorites) == 0 {
		return
	}

	recipients := make([]string, 0, len(favorites))
	for _, favorite := range favorites {
		recipients = append(recipients, favorite.ResellerID.String())
	}

	event := &service.Event{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Type:          service.EventProductUpdated,
		ActorID:       product.SupplierID.String(),
		RecipientIDs:  recipients,
		ProductID:     product.ID.String(),
		ProductName:   product.Name,
		ChangedFields: changedFields,
	}

	if err := srv.eventPublisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish product update event",
			slog.Any("productID", product.ID), slog.Any("error", err))
	}
}

// uuidPtrEqual compares two optional UUIDs.
func uuidPtrEqual(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
