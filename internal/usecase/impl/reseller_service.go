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

// resellerService implements the ResellerUsecase interface.
type resellerService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// NewResellerService is the constructor for resellerService.
func NewResellerService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ResellerUsecase {
	return &resellerService{
		txManager: txManager,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (srv *resellerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the authenticated reseller's account with its profile.
func (srv *resellerService) GetProfile(ctx context.Context, resellerID uuid.UUID) (*entity.User, error) {
	user, err := srv.findReseller(ctx, resellerID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateProfile applies partial updates to the reseller's account and markup settings.
func (srv *resellerService) UpdateProfile(ctx context.Context, resellerID uuid.UUID, input *usecase.UpdateResellerProfileInput) (*entity.User, error) {
	if input.MarkupType != nil && !input.MarkupType.IsConcrete() {
		return nil, domainerrors.ErrInvalidMarkup.WrapMessage("reseller default markup must be percentage or fixed")
	}
	if input.DefaultMarkupValue != nil && *input.DefaultMarkupValue < 0 {
		return nil, domainerrors.ErrInvalidMarkup.WrapMessage("markup value cannot be negative")
	}

	var updated *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, resellerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrResellerNotFound
			}

			return errors.Wrap(err, "failed to load reseller for update")
		}
		if user.ResellerProfile == nil {
			return domainerrors.ErrResellerNotFound
		}

		applyUserPatch(user, input.FirstName, input.LastName, input.Phone, input.Website, input.PhotoURL)
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update reseller account")
		}

		profile := user.ResellerProfile
		if input.MarkupType != nil {
			profile.MarkupType = *input.MarkupType
		}
		if input.DefaultMarkupValue != nil {
			profile.DefaultMarkupValue = *input.DefaultMarkupValue
		}
		if input.CatalogIsPublic != nil {
			profile.CatalogSettings.IsPublic = *input.CatalogIsPublic
		}

		if err := userRepo.UpdateResellerProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update reseller profile")
		}
		if input.CatalogIsPublic != nil {
			if err := userRepo.UpdateCatalogSettings(ctx, resellerID, profile.CatalogSettings); err != nil {
				return errors.Wrap(err, "failed to update catalog visibility")
			}
		}

		updated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update reseller profile", slog.Any("resellerID", resellerID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// ListResellers retrieves a page of active resellers.
func (srv *resellerService) ListResellers(ctx context.Context, page, limit int) (*usecase.ResellerListOutput, error) {
	page, limit, offset := usecase.NormalizePage(page, limit)

	resellers, err := srv.userRepo.FindResellers(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list resellers")
	}

	total, err := srv.userRepo.CountResellers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count resellers")
	}

	return &usecase.ResellerListOutput{
		Resellers:  resellers,
		Pagination: usecase.NewPagination(page, limit, total),
	}, nil
}

// GetReseller retrieves a reseller's public view by ID.
func (srv *resellerService) GetReseller(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.findReseller(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domainerrors.ErrResellerNotFound
	}

	return user, nil
}

// Deactivate soft-disables the account and revokes all its sessions.
func (srv *resellerService) Deactivate(ctx context.Context, resellerID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if _, err := userRepo.FindByID(ctx, resellerID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrResellerNotFound
			}

			return errors.Wrap(err, "failed to load reseller for deactivation")
		}

		if err := userRepo.SetActive(ctx, resellerID, false); err != nil {
			return errors.Wrap(err, "failed to deactivate reseller")
		}

		if err := repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, resellerID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions during deactivation")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to deactivate reseller", slog.Any("resellerID", resellerID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Reseller deactivated", slog.Any("resellerID", resellerID))

	return nil
}

func (srv *resellerService) findReseller(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrResellerNotFound
		}

		return nil, errors.Wrap(err, "failed to find reseller")
	}
	if user.ResellerProfile == nil {
		return nil, domainerrors.ErrResellerNotFound
	}

	return user, nil
}

// applyUserPatch copies the non-nil base account fields onto the user.
func applyUserPatch(user *entity.User, firstName, lastName, phone, website, photoURL *string) {
	if firstName != nil {
		user.FirstName = *firstName
	}
	if lastName != nil {
		user.LastName = *lastName
	}
	if phone != nil {
		user.Phone = *phone
	}
	if website != nil {
		user.Website = *website
	}
	if photoURL != nil {
		user.PhotoURL = *photoURL
	}
}
