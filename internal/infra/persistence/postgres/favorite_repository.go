package postgres

import (
	"context"

	"tangoshop/internal/domain/entity"
	domainerrors "tangoshop/internal/domain/errors"
	"tangoshop/internal/domain/repository"
	"tangoshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// Create persists a new favorite. Duplicate (reseller, product) pairs are
// rejected by the composite unique index and surfaced as ErrFavoriteExists.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrFavoriteExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("referenced product does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.UpdatedAt = favoriteM.UpdatedAt

	return nil
}

// FindByResellerAndProduct retrieves the favorite linking a reseller to a product.
func (repo *favoriteRepository) FindByResellerAndProduct(ctx context.Context, resellerID, productID uuid.UUID) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("reseller_id = ? AND product_id = ?", resellerID, productID).
		First(&favoriteM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite by reseller and product")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// FindByReseller retrieves all favorites of a reseller, most recently added first.
func (repo *favoriteRepository) FindByReseller(ctx context.Context, resellerID uuid.UUID) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("reseller_id = ?", resellerID).
		Order("added_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by reseller")
	}

	return toFavoriteDomainSlice(favoriteModels), nil
}

// FindByProduct retrieves all favorites referencing a product.
func (repo *favoriteRepository) FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by product")
	}

	return toFavoriteDomainSlice(favoriteModels), nil
}

// UpdateMarkup replaces the markup override of a favorite.
func (repo *favoriteRepository) UpdateMarkup(ctx context.Context, id uuid.UUID, markupType entity.MarkupType, markupValue float64) error {
	updates := map[string]any{
		"markup_type":  markupType.String(),
		"markup_value": markupValue,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.FavoriteModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update favorite markup")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// Delete removes the favorite linking a reseller to a product.
func (repo *favoriteRepository) Delete(ctx context.Context, resellerID, productID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("reseller_id = ? AND product_id = ?", resellerID, productID).
		Delete(&model.FavoriteModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFavoriteDomain converts a GORM FavoriteModel to a domain Favorite entity.
func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:          data.ID,
		ResellerID:  data.ResellerID,
		ProductID:   data.ProductID,
		MarkupType:  entity.MarkupType(data.MarkupType),
		MarkupValue: data.MarkupValue,
		AddedAt:     data.AddedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toFavoriteDomainSlice converts a slice of GORM models to domain entities.
func toFavoriteDomainSlice(data []*model.FavoriteModel) []*entity.Favorite {
	favorites := make([]*entity.Favorite, 0, len(data))
	for _, favoriteM := range data {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites
}

// fromFavoriteDomain converts a domain Favorite entity to a GORM FavoriteModel.
func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:          data.ID,
		ResellerID:  data.ResellerID,
		ProductID:   data.ProductID,
		MarkupType:  data.MarkupType.String(),
		MarkupValue: data.MarkupValue,
		AddedAt:     data.AddedAt,
	}
}
