package main

import (
	"context"
	"log/slog"
	"os"

	"tangoshop/config"
	"tangoshop/internal/delivery"
	"tangoshop/internal/delivery/http"
	"tangoshop/internal/delivery/http/middleware"
	"tangoshop/internal/delivery/http/router/handler"
	"tangoshop/internal/domain/service"
	"tangoshop/internal/infra/auth"
	"tangoshop/internal/infra/catalog"
	logs "tangoshop/internal/infra/log"
	"tangoshop/internal/infra/persistence/postgres"
	"tangoshop/internal/infra/pubsub"
	"tangoshop/internal/infra/qrcode"
	"tangoshop/internal/infra/storage"
	"tangoshop/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewFavoriteRepository,
			postgres.NewReviewRepository,
			postgres.NewNotificationRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewPasswordResetTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			storage.NewBlobStorage,
			catalog.NewHTMLRenderer,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewResellerService,
			impl.NewSupplierService,
			impl.NewProductService,
			impl.NewCategoryService,
			impl.NewFavoriteService,
			impl.NewReviewService,
			impl.NewNotificationService,
			impl.NewSearchService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewResellerHandler,
			handler.NewSupplierHandler,
			handler.NewCategoryHandler,
			handler.NewProductHandler,
			handler.NewFavoriteHandler,
			handler.NewReviewHandler,
			handler.NewNotificationHandler,
			handler.NewSearchHandler,
			handler.NewCatalogHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
