package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "tangoshop/internal/delivery/context"
	"tangoshop/internal/domain/entity"
	domainerrors "tangoshop/internal/domain/errors"
	"tangoshop/internal/domain/repository"
	"tangoshop/internal/domain/service"
	"tangoshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager      repository.TransactionManager
	reviewRepo     repository.ReviewRepository
	productRepo    repository.ProductRepository
	userRepo       repository.UserRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ReviewRepo     repository.ReviewRepository
	ProductRepo    repository.ProductRepository
	UserRepo       repository.UserRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:      params.TxManager,
		reviewRepo:     params.ReviewRepo,
		productRepo:    params.ProductRepo,
		userRepo:       params.UserRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a reseller's review and recomputes the product and supplier
// rating aggregates in the same transaction.
func (srv *reviewService) Create(ctx context.Context, resellerID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
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

	review := &entity.Review{
		ProductID:  input.ProductID,
		ResellerID: resellerID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	var product *entity.Product

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err = productRepo.FindByID(ctx, input.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to load product for review")
		}
		if !product.IsActive {
			return domainerrors.ErrProductNotFound
		}

		if err := repoFactory.NewReviewRepository().Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrReviewExists) {
				return domainerrors.ErrReviewAlreadyExists
			}

			return errors.Wrap(err, "failed to create review")
		}

		return srv.recomputeAggregates(ctx, repoFactory, product)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create review",
			slog.Any("resellerID", resellerID), slog.Any("productID", input.ProductID), slog.Any("error", err))

		return nil, err
	}

	srv.publishEvent(ctx, &service.Event{
		Type:         service.EventReviewCreated,
		ActorID:      resellerID.String(),
		ActorName:    reseller.FullName(),
		RecipientID:  product.SupplierID.String(),
		ProductID:    product.ID.String(),
		ProductName:  product.Name,
		ReviewRating: review.Rating,
	})

	return review, nil
}

// ListByProduct retrieves a page of a product's reviews, newest first.
func (srv *reviewService) ListByProduct(ctx context.Context, productID uuid.UUID, page, limit int) (*usecase.ReviewListOutput, error) {
	page, limit, offset := usecase.NormalizePage(page, limit)

	reviews, err := srv.reviewRepo.FindPageByProduct(ctx, productID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product reviews")
	}

	total, err := srv.reviewRepo.CountByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count product reviews")
	}

	return &usecase.ReviewListOutput{
		Reviews:    reviews,
		Pagination: usecase.NewPagination(page, limit, total),
	}, nil
}

// ListMine retrieves every review written by the reseller.
func (srv *reviewService) ListMine(ctx context.Context, resellerID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.FindByReseller(ctx, resellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reseller reviews")
	}

	return reviews, nil
}

// Update edits the reseller's own review and recomputes the aggregates.
func (srv *reviewService) Update(ctx context.Context, resellerID, reviewID uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	var updated *entity.Review

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound
			}

			return errors.Wrap(err, "failed to load review for update")
		}
		if review.ResellerID != resellerID {
			return domainerrors.ErrReviewOwnershipViolation
		}

		review.Rating = input.Rating
		review.Comment = input.Comment
		if err := reviewRepo.Update(ctx, review); err != nil {
			return errors.Wrap(err, "failed to update review")
		}

		product, err := repoFactory.NewProductRepository().FindByID(ctx, review.ProductID)
		if err != nil {
			return errors.Wrap(err, "failed to load reviewed product")
		}

		updated = review

		return srv.recomputeAggregates(ctx, repoFactory, product)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update review", slog.Any("reviewID", reviewID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

// Delete removes the reseller's own review and recomputes the aggregates.
func (srv *reviewService) Delete(ctx context.Context, resellerID, reviewID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := reviewRepo.FindByID(ctx, reviewID)
		if err != nil {
			if errors.Is(err, repository.ErrReviewNotFound) {
				return domainerrors.ErrReviewNotFound
			}

			return errors.Wrap(err, "failed to load review for deletion")
		}
		if review.ResellerID != resellerID {
			return domainerrors.ErrReviewOwnershipViolation
		}

		if err := reviewRepo.Delete(ctx, reviewID); err != nil {
			return errors.Wrap(err, "failed to delete review")
		}

		product, err := repoFactory.NewProductRepository().FindByID(ctx, review.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				// Nothing left to re-aggregate.
				return nil
			}

			return errors.Wrap(err, "failed to load reviewed product")
		}

		return srv.recomputeAggregates(ctx, repoFactory, product)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete review", slog.Any("reviewID", reviewID), slog.Any("error", err))

		return err
	}

	return nil
}

// Like increments the like counter of a review.
func (srv *reviewService) Like(ctx context.Context, reviewID uuid.UUID) error {
	if err := srv.reviewRepo.IncrementLikes(ctx, reviewID, 1); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return domainerrors.ErrReviewNotFound
		}

		return errors.Wrap(err, "failed to like review")
	}

	return nil
}

// recomputeAggregates rebuilds the product's rating figures from its full
// review set, then rebuilds the supplier's figures from all of its products.
// Recomputing from source keeps the denormalized values exact regardless of
// which write triggered the change.
func (srv *reviewService) recomputeAggregates(ctx context.Context, repoFactory repository.RepositoryFactory, product *entity.Product) error {
	reviewRepo := repoFactory.NewReviewRepository()
	productRepo := repoFactory.NewProductRepository()

	reviews, err := reviewRepo.FindByProduct(ctx, product.ID)
	if err != nil {
		return errors.Wrap(err, "failed to load reviews for aggregation")
	}

	productAvg, productCount := averageRating(reviews)
	if err := productRepo.UpdateRatingStats(ctx, product.ID, productAvg, productCount); err != nil {
		return errors.Wrap(err, "failed to store product rating stats")
	}

	// Supplier aggregates span every product of the supplier, so the whole
	// set is re-scanned unpaged with the just-updated product patched in.
	products, err := productRepo.FindAllBySupplier(ctx, product.SupplierID)
	if err != nil {
		return errors.Wrap(err, "failed to load supplier products for aggregation")
	}

	var (
		weightedSum  float64
		totalReviews int
	)
	for _, p := range products {
		avg, count := p.AvgRating, p.ReviewCount
		if p.ID == product.ID {
			avg, count = productAvg, productCount
		}
		weightedSum += avg * float64(count)
		totalReviews += count
	}

	supplierAvg := 0.0
	if totalReviews > 0 {
		supplierAvg = round2(weightedSum / float64(totalReviews))
	}

	if err := repoFactory.NewUserRepository().UpdateSupplierRatingStats(ctx, product.SupplierID, supplierAvg, totalReviews); err != nil {
		return errors.Wrap(err, "failed to store supplier rating stats")
	}

	return nil
}

// averageRating computes the two-decimal mean rating of a review set.
func averageRating(reviews []*entity.Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
	}

	return round2(float64(sum) / float64(len(reviews))), len(reviews)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (srv *reviewService) publishEvent(ctx context.Context, event *service.Event) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.eventPublisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish event",
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err))
	}
}
