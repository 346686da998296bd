package impl

import (
	"context"
	"log/slog"

	"tangoshop/internal/domain/entity"
	domainerrors "tangoshop/internal/domain/errors"
	"tangoshop/internal/domain/repository"
	"tangoshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	favoriteRepo repository.FavoriteRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	favoriteRepo repository.FavoriteRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.SearchUsecase {
	return &searchService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		favoriteRepo: favoriteRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// Advanced retrieves a page of active products matching combined filters.
func (srv *searchService) Advanced(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	page, limit, offset := usecase.NormalizePage(input.Page, input.Limit)

	filter := repository.ProductFilter{
		CategoryID: input.CategoryID,
		SupplierID: input.SupplierID,
		Search:     input.Search,
		MinPrice:   input.MinPrice,
		MaxPrice:   input.MaxPrice,
		MinRating:  input.MinRating,
		Sort:       repository.ProductSort(input.Sort),
		Limit:      limit,
		Offset:     offset,
	}

	products, err := srv.productRepo.FindActive(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search products")
	}

	total, err := srv.productRepo.CountActive(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count search results")
	}

	return &usecase.ProductListOutput{
		Products:   products,
		Pagination: usecase.NewPagination(page, limit, total),
	}, nil
}

// Filters describes the facets available for the advanced search.
func (srv *searchService) Filters(ctx context.Context) (*usecase.SearchFiltersOutput, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load categories for filters")
	}

	// Price bounds come from the cheapest and priciest active products.
	cheapest, err := srv.productRepo.FindActive(ctx, repository.ProductFilter{Sort: repository.ProductSortPriceAsc, Limit: 1})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load price floor")
	}
	priciest, err := srv.productRepo.FindActive(ctx, repository.ProductFilter{Sort: repository.ProductSortPriceDesc, Limit: 1})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load price ceiling")
	}

	output := &usecase.SearchFiltersOutput{
		Categories: categories,
		SortFields: []string{
			string(repository.ProductSortRecent),
			string(repository.ProductSortPriceAsc),
			string(repository.ProductSortPriceDesc),
			string(repository.ProductSortRating),
			string(repository.ProductSortPopular),
		},
	}
	if len(cheapest) > 0 {
		output.MinPrice = cheapest[0].Price
	}
	if len(priciest) > 0 {
		output.MaxPrice = priciest[0].Price
	}

	return output, nil
}

// Related retrieves active products sharing the given product's category.
func (srv *searchService) Related(ctx context.Context, productID uuid.UUID, limit int) ([]*entity.Product, error) {
	_, limit, _ = usecase.NormalizePage(1, limit)

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product for related lookup")
	}

	related, err := srv.productRepo.FindRelated(ctx, productID, product.CategoryID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find related products")
	}

	return related, nil
}

// FavoriteSuppliers retrieves the suppliers whose products the reseller favorited.
func (srv *searchService) FavoriteSuppliers(ctx context.Context, resellerID uuid.UUID) ([]*entity.User, error) {
	favorites, err := srv.favoriteRepo.FindByReseller(ctx, resellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reseller favorites")
	}
	if len(favorites) == 0 {
		return []*entity.User{}, nil
	}

	productIDs := make([]uuid.UUID, 0, len(favorites))
	for _, favorite := range favorites {
		productIDs = append(productIDs, favorite.ProductID)
	}

	products, err := srv.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorited products")
	}

	seen := make(map[uuid.UUID]struct{})
	suppliers := make([]*entity.User, 0)
	for _, product := range products {
		if _, ok := seen[product.SupplierID]; ok {
			continue
		}
		seen[product.SupplierID] = struct{}{}

		supplier, err := srv.userRepo.FindByID(ctx, product.SupplierID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				continue
			}

			return nil, errors.Wrap(err, "failed to load favorited supplier")
		}
		if supplier.IsActive && supplier.SupplierProfile != nil {
			suppliers = append(suppliers, supplier)
		}
	}

	return suppliers, nil
}
