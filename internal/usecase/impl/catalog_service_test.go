package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tangoshop/internal/domain/entity"
	domainerrors "tangoshop/internal/domain/errors"
	"tangoshop/internal/domain/service"
	mockRepo "tangoshop/internal/mocks/repository"
	mockService "tangoshop/internal/mocks/service"
	mockUsecase "tangoshop/internal/mocks/usecase"
	"tangoshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service         usecase.CatalogUsecase
	userRepo        *mockRepo.MockUserRepository
	favoriteUsecase *mockUsecase.MockFavoriteUsecase
	renderer        *mockService.MockCatalogRenderer
	objectStorage   *mockService.MockObjectStorage
	qrService       *mockService.MockQRCodeService
	eventPublisher  *mockService.MockEventPublisher
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	favoriteUsecase := mockUsecase.NewMockFavoriteUsecase(t)
	renderer := mockService.NewMockCatalogRenderer(t)
	objectStorage := mockService.NewMockObjectStorage(t)
	qrService := mockService.NewMockQRCodeService(t)
	eventPublisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCatalogService(CatalogServiceParams{
		UserRepo:        userRepo,
		FavoriteUsecase: favoriteUsecase,
		Renderer:        renderer,
		ObjectStorage:   objectStorage,
		QRService:       qrService,
		EventPublisher:  eventPublisher,
		Logger:          logger,
	})

	return catalogServiceFixtures{
		service:         service,
		userRepo:        userRepo,
		favoriteUsecase: favoriteUsecase,
		renderer:        renderer,
		objectStorage:   objectStorage,
		qrService:       qrService,
		eventPublisher:  eventPublisher,
	}
}

func TestCatalogService_Generate_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	reseller := resellerUser(resellerID)
	reseller.Email = "marta@reventa.ar"
	reseller.Phone = "+54 11 5555-0101"

	sections := []usecase.FavoriteSection{
		{
			CategoryName: "Mates",
			Entries: []entity.CatalogEntry{
				{Product: entity.Product{ID: uuid.New(), Name: "Mate Imperial"}, FinalPrice: 16500},
				{Product: entity.Product{ID: uuid.New(), Name: "Bombilla Pico Loro"}, FinalPrice: 4200},
			},
		},
		{
			CategoryName: entity.UncategorizedLabel,
			Entries: []entity.CatalogEntry{
				{Product: entity.Product{ID: uuid.New(), Name: "Termo 1L"}, FinalPrice: 28000},
			},
		},
	}

	htmlKey := "catalogs/" + resellerID.String() + "/catalog.html"
	qrKey := "catalogs/" + resellerID.String() + "/qr.png"
	catalogURL := "https://cdn.tangoshop.ar/" + htmlKey
	qrURL := "https://cdn.tangoshop.ar/" + qrKey

	fx.userRepo.EXPECT().FindByID(ctx, resellerID).Return(reseller, nil)
	fx.favoriteUsecase.EXPECT().ListByCategory(ctx, resellerID).Return(sections, nil)

	fx.renderer.EXPECT().
		Render(ctx, mock.AnythingOfType("*service.CatalogData")).
		Run(func(ctx context.Context, data *service.CatalogData) {
			assert.Equal(t, "Marta Paz", data.ResellerName)
			assert.Equal(t, reseller.Phone, data.ResellerPhone)
			require.Len(t, data.Sections, 2)
			assert.Equal(t, "Mates", data.Sections[0].Name)
			assert.False(t, data.GeneratedAt.IsZero())
		}).
		Return([]byte("<html>catalogo</html>"), nil)

	fx.objectStorage.EXPECT().
		Upload(ctx, htmlKey, "text/html; charset=utf-8", []byte("<html>catalogo</html>")).
		Return(catalogURL, nil)
	fx.qrService.EXPECT().
		GenerateCatalogQR(catalogURL).
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)
	fx.objectStorage.EXPECT().
		Upload(ctx, qrKey, "image/png", []byte{0x89, 0x50, 0x4e, 0x47}).
		Return(qrURL, nil)

	fx.userRepo.EXPECT().
		UpdateCatalogSettings(ctx, resellerID, mock.AnythingOfType("entity.CatalogSettings")).
		Run(func(ctx context.Context, resellerID uuid.UUID, settings entity.CatalogSettings) {
			assert.Equal(t, catalogURL, settings.CatalogURL)
			require.NotNil(t, settings.LastGenerated)
		}).
		Return(nil)

	fx.eventPublisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Run(func(ctx context.Context, event *service.Event) {
			assert.Equal(t, service.EventCatalogGenerated, event.Type)
			assert.Equal(t, catalogURL, event.CatalogURL)
		}).
		Return(nil)

	output, err := fx.service.Generate(ctx, resellerID)

	require.NoError(t, err)
	assert.Equal(t, catalogURL, output.CatalogURL)
	assert.Equal(t, qrURL, output.QRCodeURL)
	assert.Equal(t, 3, output.ProductsCount)
	assert.Equal(t, 2, output.CategoriesCount)
}

func TestCatalogService_Generate_NoFavorites(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	resellerID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, resellerID).Return(resellerUser(resellerID), nil)
	fx.favoriteUsecase.EXPECT().
		ListByCategory(ctx, resellerID).
		Return([]usecase.FavoriteSection{}, nil)

	_, err := fx.service.Generate(ctx, resellerID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCatalogNoFavorites)
}

func TestCatalogService_Generate_SupplierRejected(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	supplierID := uuid.New()
	supplier := &entity.User{
		ID:              supplierID,
		IsActive:        true,
		SupplierProfile: &entity.SupplierProfile{UserID: supplierID, CompanyName: "Distribuidora Sur"},
	}

	fx.userRepo.EXPECT().FindByID(ctx, supplierID).Return(supplier, nil)

	_, err := fx.service.Generate(ctx, supplierID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResellerOnly)
}

func TestCatalogService_Generate_RenderFailure(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	resellerID := uuid.New()
	sections := []usecase.FavoriteSection{
		{
			CategoryName: "Mates",
			Entries:      []entity.CatalogEntry{{Product: entity.Product{ID: uuid.New()}, FinalPrice: 100}},
		},
	}

	fx.userRepo.EXPECT().FindByID(ctx, resellerID).Return(resellerUser(resellerID), nil)
	fx.favoriteUsecase.EXPECT().ListByCategory(ctx, resellerID).Return(sections, nil)
	fx.renderer.EXPECT().
		Render(ctx, mock.AnythingOfType("*service.CatalogData")).
		Return(nil, assert.AnError)

	_, err := fx.service.Generate(ctx, resellerID)

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
