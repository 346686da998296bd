package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	deliverycontext "tangoshop/internal/delivery/context"
	"tangoshop/internal/domain/entity"
	domainerrors "tangoshop/internal/domain/errors"
	"tangoshop/internal/domain/pricing"
	"tangoshop/internal/domain/repository"
	"tangoshop/internal/domain/service"
	"tangoshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager      repository.TransactionManager
	favoriteRepo   repository.FavoriteRepository
	productRepo    repository.ProductRepository
	categoryRepo   repository.CategoryRepository
	userRepo       repository.UserRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	FavoriteRepo   repository.FavoriteRepository
	ProductRepo    repository.ProductRepository
	CategoryRepo   repository.CategoryRepository
	UserRepo       repository.UserRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:      params.TxManager,
		favoriteRepo:   params.FavoriteRepo,
		productRepo:    params.ProductRepo,
		categoryRepo:   params.CategoryRepo,
		userRepo:       params.UserRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add favorites a product for the reseller. The favorite insert and the
// product, supplier and reseller counters commit as one transaction.
func (srv *favoriteService) Add(ctx context.Context, resellerID uuid.UUID, input *usecase.AddFavoriteInput) (*entity.Favorite, error) {
	markupType := input.MarkupType
	if markupType == "" {
		markupType = entity.MarkupDefault
	}
	if !markupType.IsValid() {
		return nil, domainerrors.ErrInvalidMarkup
	}
	if markupType.IsConcrete() && input.MarkupValue < 0 {
		return nil, domainerrors.ErrInvalidMarkup.WrapMessage("markup value cannot be negative")
	}

	reseller, err := srv.userRepo.FindByID(ctx, resellerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrResellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find reseller")
	}
	if reseller.ResellerProfile == nil {
		return nil, domainerrors.ErrResellerOnly
	}

	favorite := &entity.Favorite{
		ResellerID:  resellerID,
		ProductID:   input.ProductID,
		MarkupType:  markupType,
		MarkupValue: input.MarkupValue,
		AddedAt:     time.Now(),
	}

	var product *entity.Product

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err = productRepo.FindByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to load product for favoriting")
		}
		if !product.IsActive {
			return domainerrors.ErrProductNotFound
		}

		if err := repoFactory.NewFavoriteRepository().Create(ctx, favorite); err != nil {
			if errors.Is(err, repository.ErrFavoriteExists) {
				return domainerrors.ErrFavoriteAlreadyExists
			}

			return errors.Wrap(err, "failed to create favorite")
		}

		if err := productRepo.IncrementFavoritesCount(ctx, product.ID, 1); err != nil {
			return errors.Wrap(err, "failed to increment product favorites counter")
		}

		userRepo := repoFactory.NewUserRepository()
		if err := userRepo.IncrementSupplierTotalFavorites(ctx, product.SupplierID, 1); err != nil {
			return errors.Wrap(err, "failed to increment supplier favorites counter")
		}
		if err := userRepo.IncrementResellerTotalFavorites(ctx, resellerID, 1); err != nil {
			return errors.Wrap(err, "failed to increment reseller favorites counter")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add favorite",
			slog.Any("resellerID", resellerID), slog.Any("productID", input.ProductID), slog.Any("error", err))

		return nil, err
	}

	srv.publishEvent(ctx, &service.Event{
		Type:        service.EventFavoriteCreated,
		ActorID:     resellerID.String(),
		ActorName:   reseller.FullName(),
		RecipientID: product.SupplierID.String(),
		ProductID:   product.ID.String(),
		ProductName: product.Name,
	})

	return favorite, nil
}

// Remove unfavorites a product and rolls the counters back. A hard-missing
// product skips the product counter but still releases the reseller and
// supplier counters.
func (srv *favoriteService) Remove(ctx context.Context, resellerID, productID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewFavoriteRepository().Delete(ctx, resellerID, productID); err != nil {
			if errors.Is(err, repository.ErrFavoriteNotFound) {
				return domainerrors.ErrFavoriteNotFound
			}

			return errors.Wrap(err, "failed to delete favorite")
		}

		userRepo := repoFactory.NewUserRepository()
		if err := userRepo.IncrementResellerTotalFavorites(ctx, resellerID, -1); err != nil {
			return errors.Wrap(err, "failed to decrement reseller favorites counter")
		}

		productRepo := repoFactory.NewProductRepository()
		product, err := productRepo.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				// The product row is gone; only its counter is skipped.
				srv.log(ctx).Warn("Favorite removed for missing product", slog.Any("productID", productID))

				return nil
			}

			return errors.Wrap(err, "failed to load product for unfavoriting")
		}

		// Soft-deleted products still decrement their counters.
		if err := productRepo.IncrementFavoritesCount(ctx, productID, -1); err != nil {
			return errors.Wrap(err, "failed to decrement product favorites counter")
		}
		if err := userRepo.IncrementSupplierTotalFavorites(ctx, product.SupplierID, -1); err != nil {
			return errors.Wrap(err, "failed to decrement supplier favorites counter")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to remove favorite",
			slog.Any("resellerID", resellerID), slog.Any("productID", productID), slog.Any("error", err))

		return err
	}

	return nil
}

// List retrieves the reseller's favorites as priced catalog entries,
// most recently added first. Missing and inactive products are dropped.
func (srv *favoriteService) List(ctx context.Context, resellerID uuid.UUID) ([]entity.CatalogEntry, error) {
	profile, err := srv.findResellerProfile(ctx, resellerID)
	if err != nil {
		return nil, err
	}

	favorites, err := srv.favoriteRepo.FindByReseller(ctx, resellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorites")
	}

	return srv.priceEntries(ctx, favorites, profile)
}

// ListByCategory buckets the reseller's priced favorites by category,
// largest bucket first with first-encounter tie-break, unknown categories
// under the fallback label.
func (srv *favoriteService) ListByCategory(ctx context.Context, resellerID uuid.UUID) ([]usecase.FavoriteSection, error) {
	entries, err := srv.List(ctx, resellerID)
	if err != nil {
		return nil, err
	}

	return srv.groupByCategory(ctx, entries)
}

// GetMarkup retrieves the favorite with its currently resolved price.
func (srv *favoriteService) GetMarkup(ctx context.Context, resellerID, productID uuid.UUID) (*entity.CatalogEntry, error) {
	profile, err := srv.findResellerProfile(ctx, resellerID)
	if err != nil {
		return nil, err
	}

	favorite, err := srv.favoriteRepo.FindByResellerAndProduct(ctx, resellerID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return nil, domainerrors.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to load favorite")
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to load favorited product")
	}

	finalPrice, err := pricing.FavoritePrice(favorite, profile, product.Price)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve favorite price")
	}

	return &entity.CatalogEntry{
		Favorite:   *favorite,
		Product:    *product,
		FinalPrice: finalPrice,
	}, nil
}

// UpdateMarkup replaces the markup override of a favorite.
func (srv *favoriteService) UpdateMarkup(ctx context.Context, resellerID, productID uuid.UUID, input *usecase.UpdateMarkupInput) (*entity.CatalogEntry, error) {
	if !input.MarkupType.IsValid() {
		return nil, domainerrors.ErrInvalidMarkup
	}
	if input.MarkupType.IsConcrete() && input.MarkupValue < 0 {
		return nil, domainerrors.ErrInvalidMarkup.WrapMessage("markup value cannot be negative")
	}

	favorite, err := srv.favoriteRepo.FindByResellerAndProduct(ctx, resellerID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return nil, domainerrors.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to load favorite for markup update")
	}

	if err := srv.favoriteRepo.UpdateMarkup(ctx, favorite.ID, input.MarkupType, input.MarkupValue); err != nil {
		return nil, errors.Wrap(err, "failed to update favorite markup")
	}

	return srv.GetMarkup(ctx, resellerID, productID)
}

// priceEntries joins favorites with their products and resolves final prices.
// Missing, inactive and unpriceable entries are silently dropped.
func (srv *favoriteService) priceEntries(ctx context.Context, favorites []*entity.Favorite, profile *entity.ResellerProfile) ([]entity.CatalogEntry, error) {
	if len(favorites) == 0 {
		return []entity.CatalogEntry{}, nil
	}

	productIDs := make([]uuid.UUID, 0, len(favorites))
	for _, favorite := range favorites {
		productIDs = append(productIDs, favorite.ProductID)
	}

	products, err := srv.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorited products")
	}

	productsByID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		productsByID[product.ID] = product
	}

	entries := make([]entity.CatalogEntry, 0, len(favorites))
	for _, favorite := range favorites {
		product, ok := productsByID[favorite.ProductID]
		if !ok {
			continue
		}

		finalPrice, err := pricing.FavoritePrice(favorite, profile, product.Price)
		if err != nil {
			srv.log(ctx).Warn("Dropping unpriceable favorite",
				slog.Any("favoriteID", favorite.ID), slog.Any("error", err))

			continue
		}

		entries = append(entries, entity.CatalogEntry{
			Favorite:   *favorite,
			Product:    *product,
			FinalPrice: finalPrice,
		})
	}

	return entries, nil
}

// groupByCategory buckets entries by category ID, ordered by bucket size
// descending with first-encounter order breaking ties. The resolved name is
// display-only, so distinct categories sharing a label keep separate buckets.
func (srv *favoriteService) groupByCategory(ctx context.Context, entries []entity.CatalogEntry) ([]usecase.FavoriteSection, error) {
	categoryNames := make(map[uuid.UUID]string)

	sections := make([]usecase.FavoriteSection, 0)
	sectionIndex := make(map[string]int)

	for _, entry := range entries {
		var sectionID *uuid.UUID
		key := ""
		name := entity.UncategorizedLabel
		if entry.Product.CategoryID != nil {
			categoryID := *entry.Product.CategoryID
			sectionID = &categoryID
			key = categoryID.String()

			cached, ok := categoryNames[categoryID]
			if !ok {
				category, err := srv.categoryRepo.FindByID(ctx, categoryID)
				if err != nil {
					if !errors.Is(err, repository.ErrCategoryNotFound) {
						return nil, errors.Wrap(err, "failed to resolve category name")
					}
					cached = entity.UncategorizedLabel
				} else {
					cached = category.Name
				}
				categoryNames[categoryID] = cached
			}
			name = cached
		}

		idx, ok := sectionIndex[key]
		if !ok {
			idx = len(sections)
			sectionIndex[key] = idx
			sections = append(sections, usecase.FavoriteSection{CategoryID: sectionID, CategoryName: name})
		}
		sections[idx].Entries = append(sections[idx].Entries, entry)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return len(sections[i].Entries) > len(sections[j].Entries)
	})

	return sections, nil
}

func (srv *favoriteService) findResellerProfile(ctx context.Context, resellerID uuid.UUID) (*entity.ResellerProfile, error) {
	user, err := srv.userRepo.FindByID(ctx, resellerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrResellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find reseller")
	}
	if user.ResellerProfile == nil {
		return nil, domainerrors.ErrResellerOnly
	}

	return user.ResellerProfile, nil
}

func (srv *favoriteService) publishEvent(ctx context.Context, event *service.Event) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.eventPublisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish event",
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err))
	}
}
