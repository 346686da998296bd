package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tangoshop/internal/domain/entity"
	domainerrors "tangoshop/internal/domain/errors"
	"tangoshop/internal/domain/repository"
	"tangoshop/internal/domain/service"
	mockRepo "tangoshop/internal/mocks/repository"
	mockService "tangoshop/internal/mocks/service"
	"tangoshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	resetTokenRepo   *mockRepo.MockPasswordResetTokenRepository
	hasher           *mockService.MockPasswordHasher
	tokenService     *mockService.MockTokenService
	eventPublisher   *mockService.MockEventPublisher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	resetTokenRepo := mockRepo.NewMockPasswordResetTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	eventPublisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAuthService(AuthServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		ResetTokenRepo:   resetTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		EventPublisher:   eventPublisher,
		Logger:           logger,
	})

	return authServiceFixtures{
		service:          service,
		txManager:        txManager,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		resetTokenRepo:   resetTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		eventPublisher:   eventPublisher,
	}
}

func expectUserCreateTx(t *testing.T, fx authServiceFixtures, ctx context.Context, createErr error) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
			txUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(createErr)

			return fn(mockFactory)
		})
}

func TestAuthService_RegisterReseller_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Secr3ta!").Return("hashed-password", nil)
	expectUserCreateTx(t, fx, ctx, nil)
	fx.eventPublisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Run(func(ctx context.Context, event *service.Event) {
			assert.Equal(t, service.EventUserRegistered, event.Type)
		}).
		Return(nil)

	output, err := fx.service.RegisterReseller(ctx, &usecase.RegisterResellerInput{
		Email:              "marta@reventa.ar",
		Password:           "Secr3ta!",
		FirstName:          "Marta",
		LastName:           "Paz",
		MarkupType:         entity.MarkupPercentage,
		DefaultMarkupValue: 35,
	})

	require.NoError(t, err)
	require.NotNil(t, output.User.ResellerProfile)
	assert.Equal(t, "hashed-password", output.User.PasswordHash)
	assert.Equal(t, entity.MarkupPercentage, output.User.ResellerProfile.MarkupType)
	assert.Equal(t, 35.0, output.User.ResellerProfile.DefaultMarkupValue)
	assert.True(t, output.User.IsActive)
}

func TestAuthService_RegisterReseller_DefaultsToPercentage(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("hashed", nil)
	expectUserCreateTx(t, fx, ctx, nil)
	fx.eventPublisher.EXPECT().
		Publish(ctx, mock.AnythingOfType("*service.Event")).
		Return(nil)

	output, err := fx.service.RegisterReseller(ctx, &usecase.RegisterResellerInput{
		Email:    "nuevo@reventa.ar",
		Password: "Secr3ta!",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.MarkupPercentage, output.User.ResellerProfile.MarkupType)
}

func TestAuthService_RegisterReseller_InvalidMarkup(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	_, err := fx.service.RegisterReseller(ctx, &usecase.RegisterResellerInput{
		Email:      "marta@reventa.ar",
		Password:   "Secr3ta!",
		MarkupType: entity.MarkupDefault,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMarkup)

	_, err = fx.service.RegisterReseller(ctx, &usecase.RegisterResellerInput{
		Email:              "marta@reventa.ar",
		Password:           "Secr3ta!",
		MarkupType:         entity.MarkupFixed,
		DefaultMarkupValue: -5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMarkup)
}

func TestAuthService_RegisterSupplier_RequiresCompanyName(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.RegisterSupplier(context.Background(), &usecase.RegisterSupplierInput{
		Email:    "ventas@sur.ar",
		Password: "Secr3ta!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_RegisterSupplier_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash(mock.AnythingOfType("string")).Return("hashed", nil)
	expectUserCreateTx(t, fx, ctx, domainerrors.ErrUserAlreadyExists)

	_, err := fx.service.RegisterSupplier(ctx, &usecase.RegisterSupplierInput{
		Email:       "ventas@sur.ar",
		Password:    "Secr3ta!",
		CompanyName: "Distribuidora Sur",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := resellerUser(uuid.New())
	user.Email = "marta@reventa.ar"
	user.PasswordHash = "stored-hash"

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Secr3ta!", "stored-hash").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"reseller"}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, user.ID, token.UserID)
			// The raw refresh token is never persisted, only its digest.
			assert.NotEqual(t, "refresh-token", token.TokenHash)
			assert.Len(t, token.TokenHash, 64)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Secr3ta!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestAuthService_Login_UpdatesFCMToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := resellerUser(uuid.New())
	user.Email = "marta@reventa.ar"
	user.PasswordHash = "stored-hash"
	user.FCMToken = "old-fcm"

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Secr3ta!", "stored-hash").Return(true)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"reseller"}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)
	fx.userRepo.EXPECT().UpdateFCMToken(ctx, user.ID, "new-fcm").Return(nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    user.Email,
		Password: "Secr3ta!",
		FCMToken: "new-fcm",
	})

	require.NoError(t, err)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := resellerUser(uuid.New())
	user.Email = "marta@reventa.ar"
	user.PasswordHash = "stored-hash"

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nadie@reventa.ar").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nadie@reventa.ar", Password: "x"})

	require.Error(t, err)
	// Unknown accounts and bad passwords are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := resellerUser(uuid.New())
	user.Email = "baja@reventa.ar"
	user.PasswordHash = "stored-hash"
	user.IsActive = false

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Secr3ta!", "stored-hash").Return(true)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Secr3ta!"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserDeactivated)
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, mock.AnythingOfType("string")).
		Return(repository.ErrRefreshTokenNotFound)

	err := fx.service.Logout(ctx, "already-revoked")

	require.NoError(t, err)
}

func TestAuthService_RefreshToken_RotatesSession(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := resellerUser(uuid.New())
	session := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, mock.AnythingOfType("string")).
		Return(session, nil)
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(user.ID, []string{"reseller"}).
		Return("new-access", "new-refresh", nil)
	fx.refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, session.ID).Return(nil)
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, user.ID, token.UserID)
			assert.NotEqual(t, session.TokenHash, token.TokenHash)
		}).
		Return(nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "presented"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
	assert.Equal(t, "new-refresh", output.RefreshToken)
}

func TestAuthService_RefreshToken_ExpiredSessionIsPurged(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	session := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, mock.AnythingOfType("string")).
		Return(session, nil)
	fx.refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, session.ID).Return(nil)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "stale"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_RefreshToken_UnknownToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, mock.AnythingOfType("string")).
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "forged"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_ForgotPassword_IssuesToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := resellerUser(uuid.New())
	user.Email = "marta@reventa.ar"

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.resetTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.PasswordResetToken")).
		Run(func(ctx context.Context, token *entity.PasswordResetToken) {
			assert.Equal(t, user.ID, token.UserID)
			assert.Len(t, token.TokenHash, 64)
			assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)
		}).
		Return(nil)

	output, err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: user.Email})

	require.NoError(t, err)
	// 32 random bytes, hex encoded.
	assert.Len(t, output.ResetToken, 64)
}

func TestAuthService_ResetPassword_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	resetToken := &entity.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(30 * time.Minute),
	}

	fx.resetTokenRepo.EXPECT().
		FindByHash(ctx, mock.AnythingOfType("string")).
		Return(resetToken, nil)
	fx.hasher.EXPECT().Hash("NuevaClave1!").Return("new-hash", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(txRefreshRepo)

			txUserRepo.EXPECT().UpdatePassword(ctx, userID, "new-hash").Return(nil)
			fx.resetTokenRepo.EXPECT().MarkUsed(ctx, mock.AnythingOfType("string")).Return(nil)
			txRefreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(nil)

			return fn(mockFactory)
		})

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       "raw-reset-token",
		NewPassword: "NuevaClave1!",
	})

	require.NoError(t, err)
}

func TestAuthService_ResetPassword_ConsumedToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	usedAt := time.Now().Add(-time.Minute)
	resetToken := &entity.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(30 * time.Minute),
		UsedAt:    &usedAt,
	}

	fx.resetTokenRepo.EXPECT().
		FindByHash(ctx, mock.AnythingOfType("string")).
		Return(resetToken, nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       "raw-reset-token",
		NewPassword: "NuevaClave1!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}

func TestAuthService_ResetPassword_ExpiredToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	resetToken := &entity.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.resetTokenRepo.EXPECT().
		FindByHash(ctx, mock.AnythingOfType("string")).
		Return(resetToken, nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:       "raw-reset-token",
		NewPassword: "NuevaClave1!",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrResetTokenInvalid)
}
