package postgres

import (
	"context"
	"time"

	"tangoshop/internal/domain/entity"
	"tangoshop/internal/domain/repository"
	"tangoshop/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// resetTokenRepository implements the repository.PasswordResetTokenRepository interface using GORM.
type resetTokenRepository struct {
	db *gorm.DB
}

// NewPasswordResetTokenRepository is the constructor for resetTokenRepository.
func NewPasswordResetTokenRepository(db *gorm.DB) repository.PasswordResetTokenRepository {
	return &resetTokenRepository{
		db: db,
	}
}

// Create persists a new password reset token.
func (repo *resetTokenRepository) Create(ctx context.Context, token *entity.PasswordResetToken) error {
	tokenM := fromResetTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		return errors.Wrap(err, "failed to create password reset token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindByHash retrieves a reset token record by its securely stored hash.
func (repo *resetTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.PasswordResetToken, error) {
	var tokenM model.PasswordResetTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token_hash = ?", tokenHash).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find password reset token by hash")
	}

	return toResetTokenDomain(&tokenM), nil
}

// MarkUsed stamps the token as consumed so it cannot be replayed.
func (repo *resetTokenRepository) MarkUsed(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PasswordResetTokenModel{}).
		Where("token_hash = ? AND used_at IS NULL", tokenHash).
		Update("used_at", time.Now())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark password reset token used")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResetTokenNotFound
	}

	return nil
}

// DeleteExpired removes all expired reset tokens from the database.
func (repo *resetTokenRepository) DeleteExpired(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.PasswordResetTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete expired password reset tokens")
	}

	return nil
}

// --- Mapper Functions ---

// toResetTokenDomain converts a GORM PasswordResetTokenModel to a domain PasswordResetToken entity.
func toResetTokenDomain(data *model.PasswordResetTokenModel) *entity.PasswordResetToken {
	if data == nil {
		return nil
	}

	return &entity.PasswordResetToken{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		UsedAt:    data.UsedAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromResetTokenDomain converts a domain PasswordResetToken entity to a GORM PasswordResetTokenModel.
func fromResetTokenDomain(data *entity.PasswordResetToken) *model.PasswordResetTokenModel {
	if data == nil {
		return nil
	}

	return &model.PasswordResetTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		UsedAt:    data.UsedAt,
	}
}
