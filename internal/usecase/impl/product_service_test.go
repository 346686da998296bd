package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"tangoshop/internal/domain/entity"
	domainerrors "tangoshop/internal/domain/errors"
	"tangoshop/internal/domain/repository"
	"tangoshop/internal/domain/service"
	mockRepo "tangoshop/internal/mocks/repository"
	mockService "tangoshop/internal/mocks/service"
	"tangoshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service        usecase.ProductUsecase
	txManager      *mockRepo.MockTransactionManager
	productRepo    *mockRepo.MockProductRepository
	favoriteRepo   *mockRepo.MockFavoriteRepository
	eventPublisher *mockService.MockEventPublisher
	objectStorage  *mockService.MockObjectStorage
}

func createTestProductService(t *testing.T) productServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	eventPublisher := mockService.NewMockEventPublisher(t)
	objectStorage := mockService.NewMockObjectStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProductService(ProductServiceParams{
		TxManager:      txManager,
		ProductRepo:    productRepo,
		FavoriteRepo:   favoriteRepo,
		EventPublisher: eventPublisher,
		ObjectStorage:  objectStorage,
		Logger:         logger,
	})

	return productServiceFixtures{
		service:        service,
		txManager:      txManager,
		productRepo:    productRepo,
		favoriteRepo:   favoriteRepo,
		eventPublisher: eventPublisher,
		objectStorage:  objectStorage,
	}
}

func TestProductService_Create_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	categoryID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
			mockFactory.EXPECT().NewCategoryRepository().Return(txCategoryRepo)

			txProductRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
			txUserRepo.EXPECT().IncrementSupplierTotalProducts(ctx, supplierID, 1).Return(nil)
			txCategoryRepo.EXPECT().IncrementProductCount(ctx, categoryID, 1).Return(nil)

			return fn(mockFactory)
		})

	product, err := fx.service.Create(ctx, supplierID, &usecase.CreateProductInput{
		Name:        "Yerba Mate Orgánica 1kg",
		Description: "Secado natural, sin humo",
		Price:       5400,
		CategoryID:  &categoryID,
		SKU:         "YM-1000",
		Stock:       120,
	})

	require.NoError(t, err)
	assert.Equal(t, supplierID, product.SupplierID)
	assert.Equal(t, "YM-1000", product.SKU)
	assert.True(t, product.IsActive)
}

func TestProductService_Create_WithoutCategory(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	supplierID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txProductRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)
			txUserRepo.EXPECT().IncrementSupplierTotalProducts(ctx, supplierID, 1).Return(nil)

			return fn(mockFactory)
		})

	product, err := fx.service.Create(ctx, supplierID, &usecase.CreateProductInput{
		Name:  "Producto suelto",
		Price: 100,
	})

	require.NoError(t, err)
	assert.Nil(t, product.CategoryID)
}

func TestProductService_Create_InvalidPrice(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.Create(context.Background(), uuid.New(), &usecase.CreateProductInput{
		Name:  "Gratis",
		Price: 0,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_Update_NotifiesWatchers(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	product := &entity.Product{
		ID:          uuid.New(),
		SupplierID:  supplierID,
		Name:        "Yerba Mate",
		Description: "Clásica",
		Price:       5000,
		IsActive:    true,
	}
	newPrice := 5800.0

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			txProductRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

			return fn(mockFactory)
		})

	watcher := &entity.Favorite{ID: uuid.New(), ResellerID: uuid.New(), ProductID: product.ID}
	fx.favoriteRepo.EXPECT().
		FindByProduct(ctx, product.ID).
		Return([]*entity.Favorite{watcher}, nil)

	fx.eventPublisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Run(func(ctx context.Context, event *service.Event) {
			assert.Equal(t, service.EventProductUpdated, event.Type)
			assert.Equal(t, []string{watcher.ResellerID.String()}, event.RecipientIDs)
			assert.Equal(t, []string{"precio"}, event.ChangedFields)
		}).
		Return(nil)

	updated, err := fx.service.Update(ctx, supplierID, product.ID, &usecase.UpdateProductInput{
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, 5800.0, updated.Price)
}

func TestProductService_Update_UnwatchedFieldStaysQuiet(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	product := &entity.Product{
		ID:         uuid.New(),
		SupplierID: supplierID,
		Name:       "Yerba Mate",
		Price:      5000,
		Stock:      10,
		IsActive:   true,
	}
	newStock := 50

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			txProductRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

			return fn(mockFactory)
		})

	// No favorite lookup and no event: stock is not a watched field.
	updated, err := fx.service.Update(ctx, supplierID, product.ID, &usecase.UpdateProductInput{
		Stock: &newStock,
	})

	require.NoError(t, err)
	assert.Equal(t, 50, updated.Stock)
}

func TestProductService_Update_CategoryMoveAdjustsCounters(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	oldCategoryID := uuid.New()
	newCategoryID := uuid.New()
	product := &entity.Product{
		ID:         uuid.New(),
		SupplierID: supplierID,
		Name:       "Yerba Mate",
		Price:      5000,
		CategoryID: &oldCategoryID,
		IsActive:   true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			mockFactory.EXPECT().NewCategoryRepository().Return(txCategoryRepo)

			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			txCategoryRepo.EXPECT().IncrementProductCount(ctx, oldCategoryID, -1).Return(nil)
			txCategoryRepo.EXPECT().IncrementProductCount(ctx, newCategoryID, 1).Return(nil)
			txProductRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

			return fn(mockFactory)
		})

	updated, err := fx.service.Update(ctx, supplierID, product.ID, &usecase.UpdateProductInput{
		CategoryID: &newCategoryID,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.CategoryID)
	assert.Equal(t, newCategoryID, *updated.CategoryID)
}

func TestProductService_Update_OwnershipViolation(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := &entity.Product{
		ID:         uuid.New(),
		SupplierID: uuid.New(),
		IsActive:   true,
	}
	newName := "Ajeno"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Update(ctx, uuid.New(), product.ID, &usecase.UpdateProductInput{
		Name: &newName,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductOwnershipViolation)
}

func TestProductService_Delete_RollsBackCounters(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	categoryID := uuid.New()
	product := &entity.Product{
		ID:         uuid.New(),
		SupplierID: supplierID,
		CategoryID: &categoryID,
		IsActive:   true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txCategoryRepo := mockRepo.NewMockCategoryRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
			mockFactory.EXPECT().NewCategoryRepository().Return(txCategoryRepo)

			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			txProductRepo.EXPECT().SoftDelete(ctx, product.ID).Return(nil)
			txUserRepo.EXPECT().IncrementSupplierTotalProducts(ctx, supplierID, -1).Return(nil)
			txCategoryRepo.EXPECT().IncrementProductCount(ctx, categoryID, -1).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, supplierID, product.ID)

	require.NoError(t, err)
}

func TestProductService_Delete_AlreadyInactiveIsNoop(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	product := &entity.Product{
		ID:         uuid.New(),
		SupplierID: supplierID,
		IsActive:   false,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, supplierID, product.ID)

	require.NoError(t, err)
}

func TestProductService_UploadImage_StampsPhotoAndNotifies(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	product := &entity.Product{
		ID:         uuid.New(),
		SupplierID: supplierID,
		Name:       "Yerba Mate",
		IsActive:   true,
	}
	data := bytes.Repeat([]byte{0x89}, 1024)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.objectStorage.EXPECT().
		Upload(ctx, "products/"+product.ID.String(), "image/png", data).
		Return("https://cdn.tangoshop.ar/products/"+product.ID.String(), nil)
	fx.productRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	watcher := &entity.Favorite{ID: uuid.New(), ResellerID: uuid.New(), ProductID: product.ID}
	fx.favoriteRepo.EXPECT().
		FindByProduct(ctx, product.ID).
		Return([]*entity.Favorite{watcher}, nil)
	fx.eventPublisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Run(func(ctx context.Context, event *service.Event) {
			assert.Equal(t, []string{"foto"}, event.ChangedFields)
		}).
		Return(nil)

	url, err := fx.service.UploadImage(ctx, supplierID, product.ID, "image/png", data)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.tangoshop.ar/products/"+product.ID.String(), url)
	assert.Equal(t, url, product.PhotoURL)
}

func TestProductService_UploadImage_RejectsNonImage(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.UploadImage(context.Background(), uuid.New(), uuid.New(), "application/pdf", []byte{1})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_UploadImage_RejectsOversized(t *testing.T) {
	fx := createTestProductService(t)

	oversized := make([]byte, maxProductImageSize+1)

	_, err := fx.service.UploadImage(context.Background(), uuid.New(), uuid.New(), "image/jpeg", oversized)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_GetByID_HidesInactive(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), IsActive: false}

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	_, err := fx.service.GetByID(ctx, product.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_List_AppliesFilterAndPagination(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	categoryID := uuid.New()
	products := []*entity.Product{
		{ID: uuid.New(), IsActive: true},
	}

	expectedFilter := repository.ProductFilter{
		CategoryID: &categoryID,
		Search:     "yerba",
		MinPrice:   floatPtr(1000),
		Sort:       repository.ProductSortPriceAsc,
		Limit:      10,
		Offset:     10,
	}

	fx.productRepo.EXPECT().FindActive(ctx, expectedFilter).Return(products, nil)
	fx.productRepo.EXPECT().CountActive(ctx, expectedFilter).Return(int64(11), nil)

	output, err := fx.service.List(ctx, &usecase.ListProductsInput{
		CategoryID: &categoryID,
		Search:     "yerba",
		MinPrice:   floatPtr(1000),
		Sort:       string(repository.ProductSortPriceAsc),
		Page:       2,
		Limit:      10,
	})

	require.NoError(t, err)
	assert.Len(t, output.Products, 1)
	assert.Equal(t, 2, output.Pagination.CurrentPage)
	assert.False(t, output.Pagination.HasNextPage)
}

func floatPtr(v float64) *float64 {
	return &v
}
