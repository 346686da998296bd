package impl

import (
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

// favoriteServiceFixtures holds all test dependencies for favorite service tests.
type favoriteServiceFixtures struct {
	service        usecase.FavoriteUsecase
	txManager      *mockRepo.MockTransactionManager
	favoriteRepo   *mockRepo.MockFavoriteRepository
	productRepo    *mockRepo.MockProductRepository
	categoryRepo   *mockRepo.MockCategoryRepository
	userRepo       *mockRepo.MockUserRepository
	eventPublisher *mockService.MockEventPublisher
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	eventPublisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewFavoriteService(FavoriteServiceParams{
		TxManager:      txManager,
		FavoriteRepo:   favoriteRepo,
		ProductRepo:    productRepo,
		CategoryRepo:   categoryRepo,
		UserRepo:       userRepo,
		EventPublisher: eventPublisher,
		Logger:         logger,
	})

	return favoriteServiceFixtures{
		service:        service,
		txManager:      txManager,
		favoriteRepo:   favoriteRepo,
		productRepo:    productRepo,
		categoryRepo:   categoryRepo,
		userRepo:       userRepo,
		eventPublisher: eventPublisher,
	}
}

func resellerUser(id uuid.UUID) *entity.User {
	return &entity.User{
		ID:        id,
		FirstName: "Marta",
		LastName:  "Paz",
		IsActive:  true,
		ResellerProfile: &entity.ResellerProfile{
			UserID:             id,
			MarkupType:         entity.MarkupPercentage,
			DefaultMarkupValue: 30,
		},
	}
}

func TestFavoriteService_Add_Success(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	supplierID := uuid.New()
	product := &entity.Product{
		ID:         uuid.New(),
		SupplierID: supplierID,
		Name:       "Yerba Mate Orgánica",
		Price:      5000,
		IsActive:   true,
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, resellerID).
		Return(resellerUser(resellerID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			mockFactory.EXPECT().NewFavoriteRepository().Return(txFavoriteRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			txFavoriteRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Favorite")).Return(nil)
			txProductRepo.EXPECT().IncrementFavoritesCount(ctx, product.ID, 1).Return(nil)
			txUserRepo.EXPECT().IncrementSupplierTotalFavorites(ctx, supplierID, 1).Return(nil)
			txUserRepo.EXPECT().IncrementResellerTotalFavorites(ctx, resellerID, 1).Return(nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Run(func(ctx context.Context, event *service.Event) {
			assert.Equal(t, service.EventFavoriteCreated, event.Type)
			assert.Equal(t, resellerID.String(), event.ActorID)
			assert.Equal(t, "Marta Paz", event.ActorName)
			assert.Equal(t, supplierID.String(), event.RecipientID)
			assert.Equal(t, product.Name, event.ProductName)
		}).
		Return(nil)

	favorite, err := fx.service.Add(ctx, resellerID, &usecase.AddFavoriteInput{
		ProductID:   product.ID,
		MarkupType:  entity.MarkupPercentage,
		MarkupValue: 25,
	})

	require.NoError(t, err)
	assert.Equal(t, resellerID, favorite.ResellerID)
	assert.Equal(t, product.ID, favorite.ProductID)
	assert.Equal(t, entity.MarkupPercentage, favorite.MarkupType)
	assert.Equal(t, 25.0, favorite.MarkupValue)
	assert.False(t, favorite.AddedAt.IsZero())
}

func TestFavoriteService_Add_DefaultsMarkupType(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	product := &entity.Product{
		ID:         uuid.New(),
		SupplierID: uuid.New(),
		Name:       "Alfajores x12",
		Price:      3200,
		IsActive:   true,
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, resellerID).
		Return(resellerUser(resellerID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			mockFactory.EXPECT().NewFavoriteRepository().Return(txFavoriteRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			txFavoriteRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Favorite")).Return(nil)
			txProductRepo.EXPECT().IncrementFavoritesCount(ctx, product.ID, 1).Return(nil)
			txUserRepo.EXPECT().IncrementSupplierTotalFavorites(ctx, product.SupplierID, 1).Return(nil)
			txUserRepo.EXPECT().IncrementResellerTotalFavorites(ctx, resellerID, 1).Return(nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Return(nil)

	favorite, err := fx.service.Add(ctx, resellerID, &usecase.AddFavoriteInput{ProductID: product.ID})

	require.NoError(t, err)
	assert.Equal(t, entity.MarkupDefault, favorite.MarkupType)
}

func TestFavoriteService_Add_AlreadyFavorited(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	product := &entity.Product{
		ID:         uuid.New(),
		SupplierID: uuid.New(),
		Price:      100,
		IsActive:   true,
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, resellerID).
		Return(resellerUser(resellerID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			mockFactory.EXPECT().NewFavoriteRepository().Return(txFavoriteRepo)

			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			txFavoriteRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Favorite")).
				Return(repository.ErrFavoriteExists)

			return fn(mockFactory)
		})

	_, err := fx.service.Add(ctx, resellerID, &usecase.AddFavoriteInput{ProductID: product.ID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteAlreadyExists)
}

func TestFavoriteService_Add_InactiveProduct(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	product := &entity.Product{
		ID:         uuid.New(),
		SupplierID: uuid.New(),
		Price:      100,
		IsActive:   false,
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, resellerID).
		Return(resellerUser(resellerID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Add(ctx, resellerID, &usecase.AddFavoriteInput{ProductID: product.ID})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestFavoriteService_Add_InvalidMarkup(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	_, err := fx.service.Add(ctx, uuid.New(), &usecase.AddFavoriteInput{
		ProductID:  uuid.New(),
		MarkupType: entity.MarkupType("discount"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMarkup)

	_, err = fx.service.Add(ctx, uuid.New(), &usecase.AddFavoriteInput{
		ProductID:   uuid.New(),
		MarkupType:  entity.MarkupFixed,
		MarkupValue: -10,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMarkup)
}

func TestFavoriteService_Add_NotAReseller(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	supplier := &entity.User{
		ID:              supplierID,
		IsActive:        true,
		SupplierProfile: &entity.SupplierProfile{UserID: supplierID, CompanyName: "Distribuidora Sur"},
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, supplierID).
		Return(supplier, nil)

	_, err := fx.service.Add(ctx, supplierID, &usecase.AddFavoriteInput{ProductID: uuid.New()})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResellerOnly)
}

func TestFavoriteService_Remove_Success(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	supplierID := uuid.New()
	product := &entity.Product{
		ID:         uuid.New(),
		SupplierID: supplierID,
		IsActive:   true,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewFavoriteRepository().Return(txFavoriteRepo)
			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txFavoriteRepo.EXPECT().Delete(ctx, resellerID, product.ID).Return(nil)
			txUserRepo.EXPECT().IncrementResellerTotalFavorites(ctx, resellerID, -1).Return(nil)
			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			txProductRepo.EXPECT().IncrementFavoritesCount(ctx, product.ID, -1).Return(nil)
			txUserRepo.EXPECT().IncrementSupplierTotalFavorites(ctx, supplierID, -1).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Remove(ctx, resellerID, product.ID)

	require.NoError(t, err)
}

// A favorite whose product row no longer exists must still release the
// reseller counter, while the product and supplier counters are skipped.
func TestFavoriteService_Remove_MissingProduct(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	productID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewFavoriteRepository().Return(txFavoriteRepo)
			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txFavoriteRepo.EXPECT().Delete(ctx, resellerID, productID).Return(nil)
			txUserRepo.EXPECT().IncrementResellerTotalFavorites(ctx, resellerID, -1).Return(nil)
			txProductRepo.EXPECT().FindByID(ctx, productID).Return(nil, repository.ErrProductNotFound)

			return fn(mockFactory)
		})

	err := fx.service.Remove(ctx, resellerID, productID)

	require.NoError(t, err)
}

// Soft-deleted products keep their row, so their counters still roll back.
func TestFavoriteService_Remove_SoftDeletedProduct(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	resellerID := uuid.New()
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
			txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewFavoriteRepository().Return(txFavoriteRepo)
			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txFavoriteRepo.EXPECT().Delete(ctx, resellerID, product.ID).Return(nil)
			txUserRepo.EXPECT().IncrementResellerTotalFavorites(ctx, resellerID, -1).Return(nil)
			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			txProductRepo.EXPECT().IncrementFavoritesCount(ctx, product.ID, -1).Return(nil)
			txUserRepo.EXPECT().IncrementSupplierTotalFavorites(ctx, supplierID, -1).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Remove(ctx, resellerID, product.ID)

	require.NoError(t, err)
}

func TestFavoriteService_Remove_NotFavorited(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	productID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)

			mockFactory.EXPECT().NewFavoriteRepository().Return(txFavoriteRepo)
			txFavoriteRepo.EXPECT().Delete(ctx, resellerID, productID).Return(repository.ErrFavoriteNotFound)

			return fn(mockFactory)
		})

	err := fx.service.Remove(ctx, resellerID, productID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}

func TestFavoriteService_List_PricesEntries(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	resellerID := uuid.New()

	withOverride := &entity.Favorite{
		ID:          uuid.New(),
		ResellerID:  resellerID,
		ProductID:   uuid.New(),
		MarkupType:  entity.MarkupFixed,
		MarkupValue: 500,
	}
	withDefault := &entity.Favorite{
		ID:         uuid.New(),
		ResellerID: resellerID,
		ProductID:  uuid.New(),
		MarkupType: entity.MarkupDefault,
	}
	orphaned := &entity.Favorite{
		ID:         uuid.New(),
		ResellerID: resellerID,
		ProductID:  uuid.New(),
		MarkupType: entity.MarkupDefault,
	}

	products := []*entity.Product{
		{ID: withOverride.ProductID, Price: 1000, IsActive: true},
		{ID: withDefault.ProductID, Price: 2000, IsActive: true},
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, resellerID).
		Return(resellerUser(resellerID), nil)

	fx.favoriteRepo.EXPECT().
		FindByReseller(ctx, resellerID).
		Return([]*entity.Favorite{withOverride, withDefault, orphaned}, nil)

	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{withOverride.ProductID, withDefault.ProductID, orphaned.ProductID}).
		Return(products, nil)

	entries, err := fx.service.List(ctx, resellerID)

	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Fixed override: 1000 + 500.
	assert.Equal(t, 1500.0, entries[0].FinalPrice)
	// Profile default: 2000 * 1.30.
	assert.Equal(t, 2600.0, entries[1].FinalPrice)
}

func TestFavoriteService_ListByCategory_GroupsAndOrders(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	mateID := uuid.New()
	dulcesID := uuid.New()

	favorites := make([]*entity.Favorite, 0, 4)
	products := make([]*entity.Product, 0, 4)
	addProduct := func(categoryID *uuid.UUID, price float64) {
		favorite := &entity.Favorite{
			ID:         uuid.New(),
			ResellerID: resellerID,
			ProductID:  uuid.New(),
			MarkupType: entity.MarkupDefault,
		}
		favorites = append(favorites, favorite)
		products = append(products, &entity.Product{
			ID:         favorite.ProductID,
			CategoryID: categoryID,
			Price:      price,
			IsActive:   true,
		})
	}

	addProduct(&mateID, 100)
	addProduct(nil, 200)
	addProduct(&dulcesID, 300)
	addProduct(&dulcesID, 400)

	productIDs := make([]uuid.UUID, 0, len(favorites))
	for _, favorite := range favorites {
		productIDs = append(productIDs, favorite.ProductID)
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, resellerID).
		Return(resellerUser(resellerID), nil)
	fx.favoriteRepo.EXPECT().
		FindByReseller(ctx, resellerID).
		Return(favorites, nil)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, productIDs).
		Return(products, nil)

	fx.categoryRepo.EXPECT().
		FindByID(ctx, mateID).
		Return(&entity.Category{ID: mateID, Name: "Mates"}, nil)
	fx.categoryRepo.EXPECT().
		FindByID(ctx, dulcesID).
		Return(&entity.Category{ID: dulcesID, Name: "Dulces"}, nil)

	sections, err := fx.service.ListByCategory(ctx, resellerID)

	require.NoError(t, err)
	require.Len(t, sections, 3)

	// Largest bucket first, then first-encounter order for ties.
	require.NotNil(t, sections[0].CategoryID)
	assert.Equal(t, dulcesID, *sections[0].CategoryID)
	assert.Equal(t, "Dulces", sections[0].CategoryName)
	assert.Len(t, sections[0].Entries, 2)
	require.NotNil(t, sections[1].CategoryID)
	assert.Equal(t, mateID, *sections[1].CategoryID)
	assert.Equal(t, "Mates", sections[1].CategoryName)
	assert.Nil(t, sections[2].CategoryID)
	assert.Equal(t, entity.UncategorizedLabel, sections[2].CategoryName)
}

func TestFavoriteService_ListByCategory_UnknownCategoryFallsBack(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	ghostCategoryID := uuid.New()

	favorite := &entity.Favorite{
		ID:         uuid.New(),
		ResellerID: resellerID,
		ProductID:  uuid.New(),
		MarkupType: entity.MarkupDefault,
	}
	product := &entity.Product{
		ID:         favorite.ProductID,
		CategoryID: &ghostCategoryID,
		Price:      100,
		IsActive:   true,
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, resellerID).
		Return(resellerUser(resellerID), nil)
	fx.favoriteRepo.EXPECT().
		FindByReseller(ctx, resellerID).
		Return([]*entity.Favorite{favorite}, nil)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, []uuid.UUID{favorite.ProductID}).
		Return([]*entity.Product{product}, nil)
	fx.categoryRepo.EXPECT().
		FindByID(ctx, ghostCategoryID).
		Return(nil, repository.ErrCategoryNotFound)

	sections, err := fx.service.ListByCategory(ctx, resellerID)

	require.NoError(t, err)
	require.Len(t, sections, 1)
	require.NotNil(t, sections[0].CategoryID)
	assert.Equal(t, ghostCategoryID, *sections[0].CategoryID)
	assert.Equal(t, entity.UncategorizedLabel, sections[0].CategoryName)
}

func TestFavoriteService_ListByCategory_DistinctGhostCategoriesStaySeparate(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	ghostA := uuid.New()
	ghostB := uuid.New()

	favorites := make([]*entity.Favorite, 0, 2)
	products := make([]*entity.Product, 0, 2)
	for _, categoryID := range []uuid.UUID{ghostA, ghostB} {
		categoryID := categoryID
		favorite := &entity.Favorite{
			ID:         uuid.New(),
			ResellerID: resellerID,
			ProductID:  uuid.New(),
			MarkupType: entity.MarkupDefault,
		}
		favorites = append(favorites, favorite)
		products = append(products, &entity.Product{
			ID:         favorite.ProductID,
			CategoryID: &categoryID,
			Price:      100,
			IsActive:   true,
		})
	}

	productIDs := []uuid.UUID{favorites[0].ProductID, favorites[1].ProductID}

	fx.userRepo.EXPECT().
		FindByID(ctx, resellerID).
		Return(resellerUser(resellerID), nil)
	fx.favoriteRepo.EXPECT().
		FindByReseller(ctx, resellerID).
		Return(favorites, nil)
	fx.productRepo.EXPECT().
		FindByIDs(ctx, productIDs).
		Return(products, nil)
	fx.categoryRepo.EXPECT().
		FindByID(ctx, ghostA).
		Return(nil, repository.ErrCategoryNotFound)
	fx.categoryRepo.EXPECT().
		FindByID(ctx, ghostB).
		Return(nil, repository.ErrCategoryNotFound)

	sections, err := fx.service.ListByCategory(ctx, resellerID)

	require.NoError(t, err)

	// Both fall back to the same label, but the buckets stay keyed by ID.
	require.Len(t, sections, 2)
	require.NotNil(t, sections[0].CategoryID)
	require.NotNil(t, sections[1].CategoryID)
	assert.NotEqual(t, *sections[0].CategoryID, *sections[1].CategoryID)
	assert.Equal(t, entity.UncategorizedLabel, sections[0].CategoryName)
	assert.Equal(t, entity.UncategorizedLabel, sections[1].CategoryName)
}

func TestFavoriteService_GetMarkup_ResolvesPrice(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	favorite := &entity.Favorite{
		ID:          uuid.New(),
		ResellerID:  resellerID,
		ProductID:   uuid.New(),
		MarkupType:  entity.MarkupPercentage,
		MarkupValue: 12.49,
	}
	product := &entity.Product{
		ID:       favorite.ProductID,
		Price:    100,
		IsActive: true,
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, resellerID).
		Return(resellerUser(resellerID), nil)
	fx.favoriteRepo.EXPECT().
		FindByResellerAndProduct(ctx, resellerID, favorite.ProductID).
		Return(favorite, nil)
	fx.productRepo.EXPECT().
		FindByID(ctx, favorite.ProductID).
		Return(product, nil)

	entry, err := fx.service.GetMarkup(ctx, resellerID, favorite.ProductID)

	require.NoError(t, err)
	assert.Equal(t, 112.49, entry.FinalPrice)
	assert.Equal(t, favorite.ID, entry.Favorite.ID)
}

func TestFavoriteService_UpdateMarkup_Success(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	productID := uuid.New()
	favorite := &entity.Favorite{
		ID:          uuid.New(),
		ResellerID:  resellerID,
		ProductID:   productID,
		MarkupType:  entity.MarkupDefault,
		MarkupValue: 0,
	}
	updated := &entity.Favorite{
		ID:          favorite.ID,
		ResellerID:  resellerID,
		ProductID:   productID,
		MarkupType:  entity.MarkupFixed,
		MarkupValue: 250,
	}
	product := &entity.Product{ID: productID, Price: 1000, IsActive: true}

	fx.favoriteRepo.EXPECT().
		FindByResellerAndProduct(ctx, resellerID, productID).
		Return(favorite, nil).
		Once()
	fx.favoriteRepo.EXPECT().
		UpdateMarkup(ctx, favorite.ID, entity.MarkupFixed, 250.0).
		Return(nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, resellerID).
		Return(resellerUser(resellerID), nil)
	fx.favoriteRepo.EXPECT().
		FindByResellerAndProduct(ctx, resellerID, productID).
		Return(updated, nil).
		Once()
	fx.productRepo.EXPECT().
		FindByID(ctx, productID).
		Return(product, nil)

	entry, err := fx.service.UpdateMarkup(ctx, resellerID, productID, &usecase.UpdateMarkupInput{
		MarkupType:  entity.MarkupFixed,
		MarkupValue: 250,
	})

	require.NoError(t, err)
	assert.Equal(t, 1250.0, entry.FinalPrice)
	assert.Equal(t, entity.MarkupFixed, entry.Favorite.MarkupType)
}

func TestFavoriteService_UpdateMarkup_InvalidType(t *testing.T) {
	fx := createTestFavoriteService(t)

	_, err := fx.service.UpdateMarkup(context.Background(), uuid.New(), uuid.New(), &usecase.UpdateMarkupInput{
		MarkupType: entity.MarkupType("bogus"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMarkup)
}
