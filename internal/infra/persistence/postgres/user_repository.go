// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID, preloading their role profiles.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("ResellerProfile").
		Preload("SupplierProfile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading role profiles.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("ResellerProfile").
		Preload("SupplierProfile").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including its role profiles, to the database.
// GORM's Create with associations inserts into users plus reseller_profiles
// and/or supplier_profiles within a single statement batch.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.ResellerProfile != nil && userM.ResellerProfile != nil {
		user.ResellerProfile.UserID = userM.ResellerProfile.UserID
		user.ResellerProfile.UpdatedAt = userM.ResellerProfile.UpdatedAt
	}
	if user.SupplierProfile != nil && userM.SupplierProfile != nil {
		user.SupplierProfile.UserID = userM.SupplierProfile.UserID
		user.SupplierProfile.UpdatedAt = userM.SupplierProfile.UpdatedAt
	}

	return nil
}

// Update modifies an existing user's base fields in the database.
// Role profiles are updated through their dedicated methods.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	updates := map[string]any{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"phone":      user.Phone,
		"website":    user.Website,
		"photo_url":  user.PhotoURL,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateFCMToken stores the push registration token for a user.
func (repo *userRepository) UpdateFCMToken(ctx context.Context, userID uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("fcm_token", token)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update FCM token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces the user's password hash.
func (repo *userRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SetActive toggles the soft-activation flag of a user account.
func (repo *userRepository) SetActive(ctx context.Context, userID uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("is_active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set user active flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateResellerProfile modifies the reseller profile of a user.
func (repo *userRepository) UpdateResellerProfile(ctx context.Context, profile *entity.ResellerProfile) error {
	updates := map[string]any{
		"markup_type":          profile.MarkupType.String(),
		"default_markup_value": profile.DefaultMarkupValue,
		"catalog_is_public":    profile.CatalogSettings.IsPublic,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ResellerProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update reseller profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResellerProfileNotFound
	}

	return nil
}

// UpdateSupplierProfile modifies the supplier profile of a user.
func (repo *userRepository) UpdateSupplierProfile(ctx context.Context, profile *entity.SupplierProfile) error {
	updates := map[string]any{
		"company_name": profile.CompanyName,
		"description":  profile.Description,
		"address":      profile.Address,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SupplierProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update supplier profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierProfileNotFound
	}

	return nil
}

// UpdateCatalogSettings stamps the catalog publication state of a reseller.
func (repo *userRepository) UpdateCatalogSettings(ctx context.Context, resellerID uuid.UUID, settings entity.CatalogSettings) error {
	updates := map[string]any{
		"catalog_is_public":    settings.IsPublic,
		"catalog_generated_at": settings.LastGenerated,
		"catalog_url":          settings.CatalogURL,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ResellerProfileModel{}).
		Where("user_id = ?", resellerID).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update catalog settings")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResellerProfileNotFound
	}

	return nil
}

// IncrementResellerTotalFavorites adjusts the reseller's favorite counter by delta.
func (repo *userRepository) IncrementResellerTotalFavorites(ctx context.Context, resellerID uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ResellerProfileModel{}).
		Where("user_id = ?", resellerID).
		Update("total_favorites", gorm.Expr("total_favorites + ?", delta))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment reseller total favorites")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResellerProfileNotFound
	}

	return nil
}

// IncrementSupplierTotalFavorites adjusts the supplier's received-favorites counter by delta.
func (repo *userRepository) IncrementSupplierTotalFavorites(ctx context.Context, supplierID uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupplierProfileModel{}).
		Where("user_id = ?", supplierID).
		Update("total_favorites", gorm.Expr("total_favorites + ?", delta))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment supplier total favorites")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierProfileNotFound
	}

	return nil
}

// IncrementSupplierTotalProducts adjusts the supplier's active product counter by delta.
func (repo *userRepository) IncrementSupplierTotalProducts(ctx context.Context, supplierID uuid.UUID, delta int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SupplierProfileModel{}).
		Where("user_id = ?", supplierID).
		Update("total_products", gorm.Expr("total_products + ?", delta))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment supplier total products")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierProfileNotFound
	}

	return nil
}

// UpdateSupplierRatingStats replaces the supplier's aggregated rating figures.
func (repo *userRepository) UpdateSupplierRatingStats(ctx context.Context, supplierID uuid.UUID, avgRating float64, totalReviews int) error {
	updates := map[string]any{
		"avg_rating":    avgRating,
		"total_reviews": totalReviews,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.SupplierProfileModel{}).
		Where("user_id = ?", supplierID).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update supplier rating stats")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierProfileNotFound
	}

	return nil
}

// FindSuppliers retrieves active users that have a supplier profile.
func (repo *userRepository) FindSuppliers(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("SupplierProfile").
		Joins("JOIN supplier_profiles ON supplier_profiles.user_id = users.id").
		Where("users.is_active = ?", true).
		Order("supplier_profiles.company_name ASC").
		Limit(limit).
		Offset(offset).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find suppliers")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// CountSuppliers returns the number of active users with a supplier profile.
func (repo *userRepository) CountSuppliers(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Joins("JOIN supplier_profiles ON supplier_profiles.user_id = users.id").
		Where("users.is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count suppliers")
	}

	return count, nil
}

// FindResellers retrieves active users that have a reseller profile.
func (repo *userRepository) FindResellers(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("ResellerProfile").
		Joins("JOIN reseller_profiles ON reseller_profiles.user_id = users.id").
		Where("users.is_active = ?", true).
		Order("users.first_name ASC, users.last_name ASC").
		Limit(limit).
		Offset(offset).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find resellers")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// CountResellers returns the number of active users with a reseller profile.
func (repo *userRepository) CountResellers(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Joins("JOIN reseller_profiles ON reseller_profiles.user_id = users.id").
		Where("users.is_active = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count resellers")
	}

	return count, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:              data.ID,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Phone:           data.Phone,
		Website:         data.Website,
		PhotoURL:        data.PhotoURL,
		FCMToken:        data.FCMToken,
		IsActive:        data.IsActive,
		ResellerProfile: toResellerProfileDomain(data.ResellerProfile),
		SupplierProfile: toSupplierProfileDomain(data.SupplierProfile),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:              data.ID,
		Email:           data.Email,
		PasswordHash:    data.PasswordHash,
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Phone:           data.Phone,
		Website:         data.Website,
		PhotoURL:        data.PhotoURL,
		FCMToken:        data.FCMToken,
		IsActive:        data.IsActive,
		ResellerProfile: fromResellerProfileDomain(data.ResellerProfile),
		SupplierProfile: fromSupplierProfileDomain(data.SupplierProfile),
	}
}

// toResellerProfileDomain converts a GORM ResellerProfileModel to a domain ResellerProfile entity.
func toResellerProfileDomain(data *model.ResellerProfileModel) *entity.ResellerProfile {
	if data == nil {
		return nil
	}

	return &entity.ResellerProfile{
		UserID:             data.UserID,
		MarkupType:         entity.MarkupType(data.MarkupType),
		DefaultMarkupValue: data.DefaultMarkupValue,
		CatalogSettings: entity.CatalogSettings{
			IsPublic:      data.CatalogIsPublic,
			LastGenerated: data.CatalogGeneratedAt,
			CatalogURL:    data.CatalogURL,
		},
		Stats: entity.ResellerStats{
			TotalFavorites: data.TotalFavorites,
		},
		UpdatedAt: data.UpdatedAt,
	}
}

// fromResellerProfileDomain converts a domain ResellerProfile entity to a GORM ResellerProfileModel.
func fromResellerProfileDomain(data *entity.ResellerProfile) *model.ResellerProfileModel {
	if data == nil {
		return nil
	}

	return &model.ResellerProfileModel{
		UserID:             data.UserID,
		MarkupType:         data.MarkupType.String(),
		DefaultMarkupValue: data.DefaultMarkupValue,
		CatalogIsPublic:    data.CatalogSettings.IsPublic,
		CatalogGeneratedAt: data.CatalogSettings.LastGenerated,
		CatalogURL:         data.CatalogSettings.CatalogURL,
		TotalFavorites:     data.Stats.TotalFavorites,
	}
}

// toSupplierProfileDomain converts a GORM SupplierProfileModel to a domain SupplierProfile entity.
func toSupplierProfileDomain(data *model.SupplierProfileModel) *entity.SupplierProfile {
	if data == nil {
		return nil
	}

	return &entity.SupplierProfile{
		UserID:      data.UserID,
		CompanyName: data.CompanyName,
		Description: data.Description,
		Address:     data.Address,
		Stats: entity.SupplierStats{
			TotalProducts:  data.TotalProducts,
			AvgRating:      data.AvgRating,
			TotalReviews:   data.TotalReviews,
			TotalFavorites: data.TotalFavorites,
		},
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSupplierProfileDomain converts a domain SupplierProfile entity to a GORM SupplierProfileModel.
func fromSupplierProfileDomain(data *entity.SupplierProfile) *model.SupplierProfileModel {
	if data == nil {
		return nil
	}

	return &model.SupplierProfileModel{
		UserID:         data.UserID,
		CompanyName:    data.CompanyName,
		Description:    data.Description,
		Address:        data.Address,
		TotalProducts:  data.Stats.TotalProducts,
		AvgRating:      data.Stats.AvgRating,
		TotalReviews:   data.Stats.TotalReviews,
		TotalFavorites: data.Stats.TotalFavorites,
	}
}
