// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	deliverycontext "tangoshop/internal/delivery/context"
	"tangoshop/internal/domain/entity"
	domainerrors "tangoshop/internal/domain/errors"
	"tangoshop/internal/domain/repository"
	"tangoshop/internal/domain/service"
	"tangoshop/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// resetTokenTTL bounds how long a password recovery token stays usable.
const resetTokenTTL = time.Hour

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	resetTokenRepo   repository.PasswordResetTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	eventPublisher   service.EventPublisher
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	ResetTokenRepo   repository.PasswordResetTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	EventPublisher   service.EventPublisher
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		resetTokenRepo:   params.ResetTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		eventPublisher:   params.EventPublisher,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterReseller creates a new account carrying a reseller profile.
func (srv *authService) RegisterReseller(ctx context.Context, input *usecase.RegisterResellerInput) (*usecase.RegisterOutput, error) {
	markupType := input.MarkupType
	if markupType == "" {
		markupType = entity.MarkupPercentage
	}
	if !markupType.IsConcrete() {
		return nil, domainerrors.ErrInvalidMarkup.WrapMessage("reseller default markup must be percentage or fixed")
	}
	if input.DefaultMarkupValue < 0 {
		return nil, domainerrors.ErrInvalidMarkup.WrapMessage("markup value cannot be negative")
	}

	newUser := &entity.User{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Website:   input.Website,
		IsActive:  true,
		ResellerProfile: &entity.ResellerProfile{
			MarkupType:         markupType,
			DefaultMarkupValue: input.DefaultMarkupValue,
		},
	}

	return srv.register(ctx, newUser, input.Password, entity.RoleReseller)
}

// RegisterSupplier creates a new account carrying a supplier profile.
func (srv *authService) RegisterSupplier(ctx context.Context, input *usecase.RegisterSupplierInput) (*usecase.RegisterOutput, error) {
	if input.CompanyName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("company name is required")
	}

	newUser := &entity.User{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		IsActive:  true,
		SupplierProfile: &entity.SupplierProfile{
			CompanyName: input.CompanyName,
			Description: input.Description,
			Address:     input.Address,
		},
	}

	return srv.register(ctx, newUser, input.Password, entity.RoleSupplier)
}

func (srv *authService) register(ctx context.Context, newUser *entity.User, password string, role entity.Role) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", role), slog.String("email", newUser.Email))

	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Warn("Password rejected during registration", slog.Any("role", role), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}
	newUser.PasswordHash = hashedPassword

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("role", role), slog.String("email", newUser.Email), slog.Any("error", err))

		return nil, err
	}

	srv.publishEvent(ctx, &service.Event{
		Type:        service.EventUserRegistered,
		ActorID:     newUser.ID.String(),
		ActorName:   newUser.FullName(),
		RecipientID: newUser.ID.String(),
	})

	srv.log(ctx).Debug("Registration completed", slog.Any("role", role), slog.Any("userID", newUser.ID))

	return &usecase.RegisterOutput{User: newUser}, nil
}

// Login verifies credentials and opens a new session.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Login attempt", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrUserDeactivated
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens during login")
	}

	session := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to persist session during login")
	}

	if input.FCMToken != "" && input.FCMToken != user.FCMToken {
		if err := srv.userRepo.UpdateFCMToken(ctx, user.ID, input.FCMToken); err != nil {
			// Push delivery degrades, the login itself still succeeds.
			srv.log(ctx).Warn("Failed to update FCM token during login", slog.Any("userID", user.ID), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID), slog.Any("roles", user.Roles()))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// Logout revokes the session identified by the presented refresh token.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, hashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// Already revoked or never issued. Logout is idempotent.
			return nil
		}

		return errors.Wrap(err, "failed to revoke session during logout")
	}

	return nil
}

// RefreshToken rotates a valid refresh token into a fresh token pair.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.TokenPairOutput, error) {
	tokenHash := hashToken(input.RefreshToken)

	session, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find session during refresh")
	}

	if time.Now().After(session.ExpiresAt) {
		if err := srv.refreshTokenRepo.DeleteRefreshToken(ctx, session.ID); err != nil {
			srv.log(ctx).Warn("Failed to purge expired session", slog.Any("sessionID", session.ID), slog.Any("error", err))
		}

		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token has expired")
	}

	user, err := srv.userRepo.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user during refresh")
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUserDeactivated
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens during refresh")
	}

	// Rotation: the presented token is consumed, the new one replaces it.
	if err := srv.refreshTokenRepo.DeleteRefreshToken(ctx, session.ID); err != nil {
		return nil, errors.Wrap(err, "failed to consume session during refresh")
	}

	newSession := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, newSession); err != nil {
		return nil, errors.Wrap(err, "failed to persist rotated session")
	}

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ForgotPassword issues a single-use recovery token for the account.
// The token is returned to the caller; delivering it to the user is the
// external mailer's concern.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) (*usecase.ForgotPasswordOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user during password recovery")
	}

	rawToken, err := generateOpaqueToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate reset token")
	}

	resetToken := &entity.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := srv.resetTokenRepo.Create(ctx, resetToken); err != nil {
		return nil, errors.Wrap(err, "failed to persist reset token")
	}

	srv.log(ctx).Info("Password recovery requested", slog.Any("userID", user.ID))

	return &usecase.ForgotPasswordOutput{ResetToken: rawToken}, nil
}

// ResetPassword consumes a recovery token and replaces the account password.
// All existing sessions of the user are revoked.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	tokenHash := hashToken(input.Token)

	resetToken, err := srv.resetTokenRepo.FindByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrResetTokenNotFound) {
			return domainerrors.ErrResetTokenInvalid
		}

		return errors.Wrap(err, "failed to find reset token")
	}

	if resetToken.UsedAt != nil || time.Now().After(resetToken.ExpiresAt) {
		return domainerrors.ErrResetTokenInvalid
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().UpdatePassword(ctx, resetToken.UserID, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		if err := srv.resetTokenRepo.MarkUsed(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to consume reset token")
		}

		if err := repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, resetToken.UserID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions after password reset")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to reset password", slog.Any("userID", resetToken.UserID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", resetToken.UserID))

	return nil
}

// publishEvent pushes a marketplace event and logs failures without failing the caller.
func (srv *authService) publishEvent(ctx context.Context, event *service.Event) {
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	if err := srv.eventPublisher.Publish(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish event",
			slog.String("event_type", string(event.Type)),
			slog.Any("error", err))
	}
}

// hashToken derives the storable digest of a raw opaque token.
func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// generateOpaqueToken produces a 256-bit random token in hex form.
func generateOpaqueToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
