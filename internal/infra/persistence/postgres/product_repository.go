package postgres

import (
	"context"

	"tangoshop/internal/domain/entity"
	domainerrors "tangoshop/internal/domain/errors"
	"tangoshop/internal/domain/repository"
	"tangoshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create persists a new product to the database.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("referenced category does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("product violates a database constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a single product by its ID. Soft-deleted products are
// still returned here; callers that serve public listings filter on IsActive.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByIDs retrieves the products matching the given IDs, active ones only.
// Missing or deactivated IDs are silently omitted from the result.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Where("is_active = ?", true).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	return toProductDomainSlice(productModels), nil
}

// FindActive retrieves a page of active products matching the given filter.
func (repo *productRepository) FindActive(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	query := repo.applyFilter(repo.db.WithContext(ctx).Model(&model.ProductModel{}), filter)
	query = applyProductSort(query, filter.Sort)

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active products")
	}

	return toProductDomainSlice(productModels), nil
}

// CountActive returns the number of active products matching the filter,
// ignoring pagination. Used to build paged responses.
func (repo *productRepository) CountActive(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	var count int64

	query := repo.applyFilter(repo.db.WithContext(ctx).Model(&model.ProductModel{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active products")
	}

	return count, nil
}

// FindBySupplier retrieves a page of the supplier's own products. The supplier
// dashboard shows deactivated products too, so there is no is_active filter.
func (repo *productRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID, limit, offset int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by supplier")
	}

	return toProductDomainSlice(productModels), nil
}

// FindAllBySupplier retrieves every product owned by the supplier, unpaged.
// Supplier rating aggregation recomputes over the full set, so truncating
// here would corrupt the stored totals.
func (repo *productRepository) FindAllBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all products by supplier")
	}

	return toProductDomainSlice(productModels), nil
}

// CountBySupplier returns the total number of products owned by the supplier.
func (repo *productRepository) CountBySupplier(ctx context.Context, supplierID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("supplier_id = ?", supplierID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products by supplier")
	}

	return count, nil
}

// FindTopRated retrieves the highest-rated active products that have at least one review.
func (repo *productRepository) FindTopRated(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("review_count > 0").
		Order("avg_rating DESC, review_count DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find top rated products")
	}

	return toProductDomainSlice(productModels), nil
}

// FindRecent retrieves the most recently listed active products.
func (repo *productRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent products")
	}

	return toProductDomainSlice(productModels), nil
}

// FindRelated retrieves active products sharing the given product's category,
// excluding the product itself. A nil category yields an empty result.
func (repo *productRepository) FindRelated(ctx context.Context, productID uuid.UUID, categoryID *uuid.UUID, limit int) ([]*entity.Product, error) {
	if categoryID == nil {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("category_id = ?", *categoryID).
		Where("id <> ?", productID).
		Where("is_active = ?", true).
		Order("favorites_count DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find related products")
	}

	return toProductDomainSlice(productModels), nil
}

// Update modifies an existing product's editable fields.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	updates := map[string]any{
		"name":        product.Name,
		"description": product.Description,
		"price":       product.Price,
		"photo_url":   product.PhotoURL,
		"category_id": product.CategoryID,
		"sku":         product.SKU,
		"stock":       product.Stock,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(updates)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("referenced category does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// SoftDelete deactivates a product without removing its row, so existing
// favorites and reviews keep their referential integrity.
func (repo *productRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to soft delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// IncrementFavoritesCount adjusts the denormalized favorites counter by delta.
func (repo *productRepository) IncrementFavoritesCount(ctx context.Context, id uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("favorites_count", gorm.Expr("favorites_count + ?", delta))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment product favorites count")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// UpdateRatingStats replaces the product's aggregated review figures.
func (repo *productRepository) UpdateRatingStats(ctx context.Context, id uuid.UUID, avgRating float64, reviewCount int) error {
	updates := map[string]any{
		"avg_rating":   avgRating,
		"review_count": reviewCount,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product rating stats")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// applyFilter translates a ProductFilter into WHERE clauses. Active-only is
// always enforced here since the filter feeds the public listing endpoints.
func (repo *productRepository) applyFilter(query *gorm.DB, filter repository.ProductFilter) *gorm.DB {
	query = query.Where("is_active = ?", true)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(name ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MinRating != nil {
		query = query.Where("avg_rating >= ?", *filter.MinRating)
	}

	return query
}

// applyProductSort maps a ProductSort to an ORDER BY clause, defaulting to newest first.
func applyProductSort(query *gorm.DB, sort repository.ProductSort) *gorm.DB {
	switch sort {
	case repository.ProductSortPriceAsc:
		return query.Order("price ASC")
	case repository.ProductSortPriceDesc:
		return query.Order("price DESC")
	case repository.ProductSortRating:
		return query.Order("avg_rating DESC, review_count DESC")
	case repository.ProductSortPopular:
		return query.Order("favorites_count DESC")
	case repository.ProductSortRecent:
		return query.Order("created_at DESC")
	default:
		return query.Order("created_at DESC")
	}
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:             data.ID,
		SupplierID:     data.SupplierID,
		CategoryID:     data.CategoryID,
		Name:           data.Name,
		Description:    data.Description,
		Price:          data.Price,
		PhotoURL:       data.PhotoURL,
		SKU:            data.SKU,
		Stock:          data.Stock,
		IsActive:       data.IsActive,
		FavoritesCount: data.FavoritesCount,
		AvgRating:      data.AvgRating,
		ReviewCount:    data.ReviewCount,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// toProductDomainSlice converts a slice of GORM models to domain entities.
func toProductDomainSlice(data []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(data))
	for _, productM := range data {
		products = append(products, toProductDomain(productM))
	}

	return products
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:             data.ID,
		SupplierID:     data.SupplierID,
		CategoryID:     data.CategoryID,
		Name:           data.Name,
		Description:    data.Description,
		Price:          data.Price,
		PhotoURL:       data.PhotoURL,
		SKU:            data.SKU,
		Stock:          data.Stock,
		IsActive:       data.IsActive,
		FavoritesCount: data.FavoritesCount,
		AvgRating:      data.AvgRating,
		ReviewCount:    data.ReviewCount,
	}
}
