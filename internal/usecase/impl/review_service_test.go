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

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service        usecase.ReviewUsecase
	txManager      *mockRepo.MockTransactionManager
	reviewRepo     *mockRepo.MockReviewRepository
	productRepo    *mockRepo.MockProductRepository
	userRepo       *mockRepo.MockUserRepository
	eventPublisher *mockService.MockEventPublisher
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	eventPublisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewReviewService(ReviewServiceParams{
		TxManager:      txManager,
		ReviewRepo:     reviewRepo,
		ProductRepo:    productRepo,
		UserRepo:       userRepo,
		EventPublisher: eventPublisher,
		Logger:         logger,
	})

	return reviewServiceFixtures{
		service:        service,
		txManager:      txManager,
		reviewRepo:     reviewRepo,
		productRepo:    productRepo,
		userRepo:       userRepo,
		eventPublisher: eventPublisher,
	}
}

func TestReviewService_Create_RecomputesAggregates(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	supplierID := uuid.New()
	product := &entity.Product{
		ID:          uuid.New(),
		SupplierID:  supplierID,
		Name:        "Vino Malbec Reserva",
		Price:       9000,
		IsActive:    true,
		AvgRating:   5,
		ReviewCount: 1,
	}
	otherProduct := &entity.Product{
		ID:          uuid.New(),
		SupplierID:  supplierID,
		IsActive:    true,
		AvgRating:   3,
		ReviewCount: 2,
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, resellerID).
		Return(resellerUser(resellerID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txReviewRepo := mockRepo.NewMockReviewRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			mockFactory.EXPECT().NewReviewRepository().Return(txReviewRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			txReviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

			// Full rescan of the product's reviews: 5 + 4 -> 4.5.
			txReviewRepo.EXPECT().
				FindByProduct(ctx, product.ID).
				Return([]*entity.Review{
					{ID: uuid.New(), ProductID: product.ID, Rating: 5},
					{ID: uuid.New(), ProductID: product.ID, Rating: 4},
				}, nil)
			txProductRepo.EXPECT().UpdateRatingStats(ctx, product.ID, 4.5, 2).Return(nil)

			// Supplier rescan weights the fresh product figures in:
			// (4.5*2 + 3*2) / 4 = 3.75.
			txProductRepo.EXPECT().
				FindAllBySupplier(ctx, supplierID).
				Return([]*entity.Product{product, otherProduct}, nil)
			txUserRepo.EXPECT().UpdateSupplierRatingStats(ctx, supplierID, 3.75, 4).Return(nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Run(func(ctx context.Context, event *service.Event) {
			assert.Equal(t, service.EventReviewCreated, event.Type)
			assert.Equal(t, supplierID.String(), event.RecipientID)
			assert.Equal(t, 4, event.ReviewRating)
		}).
		Return(nil)

	review, err := fx.service.Create(ctx, resellerID, &usecase.CreateReviewInput{
		ProductID: product.ID,
		Rating:    4,
		Comment:   "Muy buena relación precio-calidad",
	})

	require.NoError(t, err)
	assert.Equal(t, resellerID, review.ResellerID)
	assert.Equal(t, 4, review.Rating)
}

func TestReviewService_Create_AggregatesLargeSupplierCatalog(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	supplierID := uuid.New()
	product := &entity.Product{
		ID:         uuid.New(),
		SupplierID: supplierID,
		Name:       "Yerba Orgánica",
		IsActive:   true,
	}

	// Well past any listing page size, each carrying one five-star review.
	products := []*entity.Product{product}
	for i := 0; i < 149; i++ {
		products = append(products, &entity.Product{
			ID:          uuid.New(),
			SupplierID:  supplierID,
			IsActive:    true,
			AvgRating:   5,
			ReviewCount: 1,
		})
	}

	fx.userRepo.EXPECT().
		FindByID(ctx, resellerID).
		Return(resellerUser(resellerID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txReviewRepo := mockRepo.NewMockReviewRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			mockFactory.EXPECT().NewReviewRepository().Return(txReviewRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			txReviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)

			txReviewRepo.EXPECT().
				FindByProduct(ctx, product.ID).
				Return([]*entity.Review{
					{ID: uuid.New(), ProductID: product.ID, Rating: 4},
				}, nil)
			txProductRepo.EXPECT().UpdateRatingStats(ctx, product.ID, 4.0, 1).Return(nil)

			// Every product counts: (149*5 + 4) / 150 = 4.99.
			txProductRepo.EXPECT().
				FindAllBySupplier(ctx, supplierID).
				Return(products, nil)
			txUserRepo.EXPECT().UpdateSupplierRatingStats(ctx, supplierID, 4.99, 150).Return(nil)

			return fn(mockFactory)
		})

	fx.eventPublisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Return(nil)

	_, err := fx.service.Create(ctx, resellerID, &usecase.CreateReviewInput{
		ProductID: product.ID,
		Rating:    4,
	})

	require.NoError(t, err)
}

func TestReviewService_Create_RatingOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		_, err := fx.service.Create(ctx, uuid.New(), &usecase.CreateReviewInput{
			ProductID: uuid.New(),
			Rating:    rating,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestReviewService_Create_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	product := &entity.Product{ID: uuid.New(), SupplierID: uuid.New(), IsActive: true}

	fx.userRepo.EXPECT().
		FindByID(ctx, resellerID).
		Return(resellerUser(resellerID), nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			mockFactory.EXPECT().NewReviewRepository().Return(txReviewRepo)

			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
			txReviewRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Review")).
				Return(repository.ErrReviewExists)

			return fn(mockFactory)
		})

	_, err := fx.service.Create(ctx, resellerID, &usecase.CreateReviewInput{
		ProductID: product.ID,
		Rating:    5,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReviewAlreadyExists)
}

func TestReviewService_Update_OwnershipViolation(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()
	review := &entity.Review{
		ID:         reviewID,
		ProductID:  uuid.New(),
		ResellerID: uuid.New(),
		Rating:     3,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(txReviewRepo)
			txReviewRepo.EXPECT().FindByID(ctx, reviewID).Return(review, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Update(ctx, uuid.New(), reviewID, &usecase.UpdateReviewInput{Rating: 5})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReviewOwnershipViolation)
}

func TestReviewService_Delete_ProductAlreadyGone(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	review := &entity.Review{
		ID:         uuid.New(),
		ProductID:  uuid.New(),
		ResellerID: resellerID,
		Rating:     2,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txReviewRepo := mockRepo.NewMockReviewRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(txReviewRepo)
			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)

			txReviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)
			txReviewRepo.EXPECT().Delete(ctx, review.ID).Return(nil)
			txProductRepo.EXPECT().
				FindByID(ctx, review.ProductID).
				Return(nil, repository.ErrProductNotFound)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, resellerID, review.ID)

	require.NoError(t, err)
}

func TestReviewService_Delete_RecomputesAfterLastReview(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	supplierID := uuid.New()
	product := &entity.Product{
		ID:          uuid.New(),
		SupplierID:  supplierID,
		IsActive:    true,
		AvgRating:   4,
		ReviewCount: 1,
	}
	review := &entity.Review{
		ID:         uuid.New(),
		ProductID:  product.ID,
		ResellerID: resellerID,
		Rating:     4,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txReviewRepo := mockRepo.NewMockReviewRepository(t)
			txProductRepo := mockRepo.NewMockProductRepository(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewReviewRepository().Return(txReviewRepo)
			mockFactory.EXPECT().NewProductRepository().Return(txProductRepo)
			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)

			txReviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)
			txReviewRepo.EXPECT().Delete(ctx, review.ID).Return(nil)
			txProductRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

			// No reviews remain, so both aggregates go back to zero.
			txReviewRepo.EXPECT().FindByProduct(ctx, product.ID).Return([]*entity.Review{}, nil)
			txProductRepo.EXPECT().UpdateRatingStats(ctx, product.ID, 0.0, 0).Return(nil)
			txProductRepo.EXPECT().
				FindAllBySupplier(ctx, supplierID).
				Return([]*entity.Product{product}, nil)
			txUserRepo.EXPECT().UpdateSupplierRatingStats(ctx, supplierID, 0.0, 0).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.Delete(ctx, resellerID, review.ID)

	require.NoError(t, err)
}

func TestReviewService_ListByProduct_Paginates(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	productID := uuid.New()
	reviews := []*entity.Review{
		{ID: uuid.New(), ProductID: productID, Rating: 5},
		{ID: uuid.New(), ProductID: productID, Rating: 3},
	}

	fx.reviewRepo.EXPECT().
		FindPageByProduct(ctx, productID, 20, 0).
		Return(reviews, nil)
	fx.reviewRepo.EXPECT().
		CountByProduct(ctx, productID).
		Return(int64(42), nil)

	output, err := fx.service.ListByProduct(ctx, productID, 1, 20)

	require.NoError(t, err)
	assert.Len(t, output.Reviews, 2)
	assert.Equal(t, int64(42), output.Pagination.TotalItems)
	assert.Equal(t, 3, output.Pagination.TotalPages)
	assert.True(t, output.Pagination.HasNextPage)
}

func TestReviewService_Like_NotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewID := uuid.New()

	fx.reviewRepo.EXPECT().
		IncrementLikes(ctx, reviewID, 1).
		Return(repository.ErrReviewNotFound)

	err := fx.service.Like(ctx, reviewID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}
