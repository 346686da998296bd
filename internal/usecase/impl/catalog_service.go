package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "tangoshop/internal/delivery/context"
	domainerrors "tangoshop/internal/domain/errors"
	"tangoshop/internal/domain/repository"
	"tangoshop/internal/domain/service"
	"tangoshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	userRepo        repository.UserRepository
	favoriteUsecase usecase.FavoriteUsecase
	renderer        service.CatalogRenderer
	objectStorage   service.ObjectStorage
	qrService       service.QRCodeService
	eventPublisher  service.EventPublisher
	logger          *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	UserRepo        repository.UserRepository
	FavoriteUsecase usecase.FavoriteUsecase
	Renderer        service.CatalogRenderer
	ObjectStorage   service.ObjectStorage
	QRService       service.QRCodeService
	EventPublisher  service.EventPublisher
	Logger          *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		userRepo:        params.UserRepo,
		favoriteUsecase: params.FavoriteUsecase,
		renderer:        params.Renderer,
		objectStorage:   params.ObjectStorage,
		qrService:       params.QRService,
		eventPublisher:  params.EventPublisher,
		logger:          params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Generate compiles the reseller's favorites into a priced HTML catalog,
// publishes it with a QR code to the blob store and stamps the reseller's
// catalog settings.
func (srv *catalogService) Generate(ctx context.Context, resellerID uuid.UUID) (*usecase.GenerateCatalogOutput, error) {
	reseller, err := srv.userRepo.FindByID(ctx, resellerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrResellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find reseller for catalog generation")
	}
	if reseller.ResellerProfile == nil {
		return nil, domainerrors.ErrResellerOnly
	}

	sections, err := srv.favoriteUsecase.ListByCategory(ctx, resellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect favorites for catalog")
	}

	productsCount := 0
	for _, section := range sections {
		productsCount += len(section.Entries)
	}
	if productsCount == 0 {
		return nil, domainerrors.ErrCatalogNoFavorites
	}

	generatedAt := time.Now()
	data := &service.CatalogData{
		ResellerName:  reseller.FullName(),
		ResellerPhone: reseller.Phone,
		ResellerEmail: reseller.Email,
		Website:       reseller.Website,
		PhotoURL:      reseller.PhotoURL,
		Sections:      toCatalogSections(sections),
		GeneratedAt:   generatedAt,
	}

	html, err := srv.renderer.Render(ctx, data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render catalog")
	}

	htmlKey := fmt.Sprintf("catalogs/%s/catalog.html", resellerID)
	catalogURL, err := srv.objectStorage.Upload(ctx, htmlKey, "text/html; charset=utf-8", html)
	if err != nil {
		return nil, errors.Wrap(err, "failed to publish catalog")
	}

	qrPNG, err := srv.qrService.GenerateCatalogQR(catalogURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate catalog QR code")
	}

	qrKey := fmt.Sprintf("catalogs/%s/qr.png", resellerID)
	qrCodeURL, err := srv.objectStorage.Upload(ctx, qrKey, "image/png", qrPNG)
	if err != nil {
		return nil, errors.Wrap(err, "failed to publish catalog QR code")
	}

	settings := reseller.ResellerProfile.CatalogSettings
	settings.LastGenerated = &generatedAt
	settings.CatalogURL = catalogURL
	if err := srv.userRepo.UpdateCatalogSettings(ctx, resellerID, settings); err != nil {
		return nil, errors.Wrap(err, "failed to stamp catalog settings")
	}

	srv.publishEvent(ctx, &service.Event{
		Type:        service.EventCatalogGenerated,
		ActorID:     resellerID.String(),
		ActorName:   reseller.FullName(),
		RecipientID: resellerID.String(),
		CatalogURL:  catalogURL,
	})

	srv.log(ctx).Info("Catalog generated",
		slog.Any("resellerID", resellerID),
		slog.Int("products", productsCount),
		slog.Int("categories", len(sections)))

	return &usecase.GenerateCatalogOutput{
		CatalogURL:      catalogURL,
		QRCodeURL:       qrCodeURL,
		ProductsCount:   productsCount,
		CategoriesCount: len(sections),
	}, nil
}

// toCatalogSections converts usecase favorite sections into renderer sections.
func toCatalogSections(sections []usecase.FavoriteSection) []service.CatalogSection {
	out := make([]service.CatalogSection, 0, len(sections))
	for _, section := range sections {
		out = append(out, service.CatalogSection{
			Name:    section.CategoryName,
			Entries: section.Entries,
		})
	}

	return out
}

func (srv *catalogService) publishEvent(ctx context.Context, event *service.Event) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.eventPublisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish event",
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err))
	}
}
