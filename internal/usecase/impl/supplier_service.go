package impl

import (
	"context"
	"log/slog"

	deliverycontext "tangoshop/internal/delivery/context"
	"tangoshop/internal/domain/entity"
	domainerrors "tangoshop/internal/domain/errors"
	"tangoshop/internal/domain/repository"
	"tangoshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// supplierService implements the SupplierUsecase interface.
type supplierService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	productRepo  repository.ProductRepository
	reviewRepo   repository.ReviewRepository
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// NewSupplierService is the constructor for supplierService.
func NewSupplierService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	reviewRepo repository.ReviewRepository,
	favoriteRepo repository.FavoriteRepository,
	logger *slog.Logger,
) usecase.SupplierUsecase {
	return &supplierService{
		txManager:    txManager,
		userRepo:     userRepo,
		productRepo:  productRepo,
		reviewRepo:   reviewRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

func (srv *supplierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the authenticated supplier's account with its profile.
func (srv *supplierService) GetProfile(ctx context.Context, supplierID uuid.UUID) (*entity.User, error) {
	return srv.findSupplier(ctx, supplierID)
}

// UpdateProfile applies partial updates to the supplier's account and company data.
func (srv *supplierService) UpdateProfile(ctx context.Context, supplierID uuid.UUID, input *usecase.UpdateSupplierProfileInput) (*entity.User, error) {
	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, supplierID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrSupplierNotFound
			}

			return errors.Wrap(err, "failed to load supplier for update")
		}
		if user.SupplierProfile == nil {
			return domainerrors.ErrSupplierNotFound
		}

		applyUserPatch(user, input.FirstName, input.LastName, input.Phone, input.Website, input.PhotoURL)
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update supplier account")
		}

		profile := user.SupplierProfile
		if input.CompanyName != nil {
			profile.CompanyName = *input.CompanyName
		}
		if input.Description != nil {
			profile.Description = *input.Description
		}
		if input.Address != nil {
			profile.Address = *input.Address
		}

		if err := userRepo.UpdateSupplierProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update supplier profile")
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update supplier profile", slog.Any("supplierID", supplierID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// ListSuppliers retrieves a page of active suppliers.
func (srv *supplierService) ListSuppliers(ctx context.Context, page, limit int) (*usecase.SupplierListOutput, error) {
	page, limit, offset := usecase.NormalizePage(page, limit)

	suppliers, err := srv.userRepo.FindSuppliers(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	total, err := srv.userRepo.CountSuppliers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count suppliers")
	}

	return &usecase.SupplierListOutput{
		Suppliers:  suppliers,
		Pagination: usecase.NewPagination(page, limit, total),
	}, nil
}

// GetSupplier retrieves a supplier's public view by ID.
func (srv *supplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.findSupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domainerrors.ErrSupplierNotFound
	}

	return user, nil
}

// GetStats retrieves a supplier's denormalized dashboard figures.
func (srv *supplierService) GetStats(ctx context.Context, supplierID uuid.UUID) (*usecase.SupplierStatsOutput, error) {
	user, err := srv.findSupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	stats := user.SupplierProfile.Stats

	return &usecase.SupplierStatsOutput{
		TotalProducts:  stats.TotalProducts,
		AvgRating:      stats.AvgRating,
		TotalReviews:   stats.TotalReviews,
		TotalFavorites: stats.TotalFavorites,
	}, nil
}

// GetReviews retrieves the reviews written across all of the supplier's products.
func (srv *supplierService) GetReviews(ctx context.Context, supplierID uuid.UUID) ([]*entity.Review, error) {
	if _, err := srv.findSupplier(ctx, supplierID); err != nil {
		return nil, err
	}

	products, err := srv.productRepo.FindAllBySupplier(ctx, supplierID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load supplier products for reviews")
	}

	reviews := make([]*entity.Review, 0)
	for _, product := range products {
		productReviews, err := srv.reviewRepo.FindByProduct(ctx, product.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load product reviews")
		}
		reviews = append(reviews, productReviews...)
	}

	return reviews, nil
}

// GetResellers retrieves the resellers who favorited at least one of the supplier's products.
func (srv *supplierService) GetResellers(ctx context.Context, supplierID uuid.UUID) ([]*entity.User, error) {
	if _, err := srv.findSupplier(ctx, supplierID); err != nil {
		return nil, err
	}

	products, err := srv.productRepo.FindAllBySupplier(ctx, supplierID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load supplier products for resellers")
	}

	seen := make(map[uuid.UUID]struct{})
	resellers := make([]*entity.User, 0)
	for _, product := range products {
		favorites, err := srv.favoriteRepo.FindByProduct(ctx, product.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load product favorites")
		}

		for _, favorite := range favorites {
			if _, ok := seen[favorite.ResellerID]; ok {
				continue
			}
			seen[favorite.ResellerID] = struct{}{}

			reseller, err := srv.userRepo.FindByID(ctx, favorite.ResellerID)
			if err != nil {
				if errors.Is(err, repository.ErrUserNotFound) {
					continue
				}

				return nil, errors.Wrap(err, "failed to load favoriting reseller")
			}
			if reseller.IsActive {
				resellers = append(resellers, reseller)
			}
		}
	}

	return resellers, nil
}

func (srv *supplierService) findSupplier(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier")
	}
	if user.SupplierProfile == nil {
		return nil, domainerrors.ErrSupplierNotFound
	}

	return user, nil
}
