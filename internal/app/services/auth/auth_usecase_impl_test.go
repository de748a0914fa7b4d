package auth

import (
	"context"
	"phonebook-service/internal/app/config"
	"phonebook-service/internal/app/models"
	"phonebook-service/internal/app/services/shared/ratelimiter"
	"phonebook-service/internal/pkg/constvars"
	"phonebook-service/internal/pkg/dto/requests"
	"phonebook-service/internal/pkg/exceptions"
	"phonebook-service/internal/pkg/utils"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, userEntity *models.User) (string, error) {
	args := m.Called(ctx, userEntity)
	return args.String(0), args.Error(1)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) FindByVerificationToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if user, ok := args.Get(0).(*models.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepository) UpdateFields(ctx context.Context, userID string, updateData map[string]interface{}) error {
	args := m.Called(ctx, userID, updateData)
	return args.Error(0)
}

type mockMailerService struct {
	mock.Mock
}

func (m *mockMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *mockMailerService) ValidateEmail(email string) bool {
	args := m.Called(email)
	return args.Bool(0)
}

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	args := m.Called(ctx, key, ttl)
	return args.Get(0).(int64), args.Error(1)
}

func newTestInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{
			BaseURL:                  "http://localhost:8080",
			ResendVerifyMaxPerWindow: 5,
			ResendVerifyWindowInSec:  60,
		},
		JWT: config.JWT{
			Secret:        "test-secret",
			ExpTimeInHour: 1,
		},
		Mailer: config.Mailer{
			EmailSender: "no-reply@phonebook.local",
		},
	}
}

func newTestAuthUsecase(repo *mockUserRepository, mailerService *mockMailerService, redisRepo *mockRedisRepository) AuthUsecase {
	logger := zap.NewNop()
	limiter := ratelimiter.NewResourceLimiter(redisRepo, logger)
	return NewAuthUsecase(repo, mailerService, limiter, newTestInternalConfig(), logger)
}

func TestRegisterUser(t *testing.T) {
	t.Run("creates unverified user with defaults and sends verification mail", func(t *testing.T) {
		repo := new(mockUserRepository)
		mailerService := new(mockMailerService)
		usecase := newTestAuthUsecase(repo, mailerService, new(mockRedisRepository))

		repo.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, nil)
		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Email == "new@example.com" &&
				u.Subscription == constvars.SubscriptionStarter &&
				!u.Verify &&
				u.VerificationToken != "" &&
				u.Password != "plaintext1" &&
				strings.HasPrefix(u.AvatarURL, "https://www.gravatar.com/avatar/")
		})).Return("64f000000000000000000001", nil)
		mailerService.On("SendEmail", mock.Anything, mock.MatchedBy(func(p *requests.EmailPayload) bool {
			return len(p.To) == 1 && p.To[0] == "new@example.com" &&
				strings.Contains(p.HTMLCode, "/api/users/verify/")
		})).Return(nil)

		response, err := usecase.RegisterUser(context.Background(), &requests.RegisterUser{
			Email:    "new@example.com",
			Password: "plaintext1",
		})

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", response.Email)
		assert.Equal(t, constvars.SubscriptionStarter, response.Subscription)
		repo.AssertExpectations(t)
		mailerService.AssertExpectations(t)
	})

	t.Run("known email conflicts", func(t *testing.T) {
		repo := new(mockUserRepository)
		usecase := newTestAuthUsecase(repo, new(mockMailerService), new(mockRedisRepository))

		repo.On("FindByEmail", mock.Anything, "taken@example.com").Return(&models.User{Email: "taken@example.com"}, nil)

		_, err := usecase.RegisterUser(context.Background(), &requests.RegisterUser{
			Email:    "taken@example.com",
			Password: "plaintext1",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientEmailInUse, customErr.ClientMessage)
	})

	t.Run("store duplicate key conflicts even when pre-check saw nothing", func(t *testing.T) {
		repo := new(mockUserRepository)
		usecase := newTestAuthUsecase(repo, new(mockMailerService), new(mockRedisRepository))

		repo.On("FindByEmail", mock.Anything, "race@example.com").Return(nil, nil)
		repo.On("CreateUser", mock.Anything, mock.Anything).Return("", exceptions.ErrMongoDBDuplicateKey(nil))

		_, err := usecase.RegisterUser(context.Background(), &requests.RegisterUser{
			Email:    "race@example.com",
			Password: "plaintext1",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientEmailInUse, customErr.ClientMessage)
	})

	t.Run("mail dispatch failure fails registration", func(t *testing.T) {
		repo := new(mockUserRepository)
		mailerService := new(mockMailerService)
		usecase := newTestAuthUsecase(repo, mailerService, new(mockRedisRepository))

		repo.On("FindByEmail", mock.Anything, "unmailed@example.com").Return(nil, nil)
		repo.On("CreateUser", mock.Anything, mock.Anything).Return("64f000000000000000000002", nil)
		mailerService.On("SendEmail", mock.Anything, mock.Anything).
			Return(exceptions.ErrRabbitMQPublishMessage(nil, "phonebook_mailer_queue"))

		_, err := usecase.RegisterUser(context.Background(), &requests.RegisterUser{
			Email:    "unmailed@example.com",
			Password: "plaintext1",
		})

		require.Error(t, err)
		repo.AssertExpectations(t)
	})
}

func TestVerifyUser(t *testing.T) {
	t.Run("marks user verified and consumes the token", func(t *testing.T) {
		repo := new(mockUserRepository)
		usecase := newTestAuthUsecase(repo, new(mockMailerService), new(mockRedisRepository))

		repo.On("FindByVerificationToken", mock.Anything, "tok-1").Return(&models.User{
			ID:                "64f000000000000000000003",
			VerificationToken: "tok-1",
		}, nil)
		repo.On("UpdateFields", mock.Anything, "64f000000000000000000003", map[string]interface{}{
			"verify":            true,
			"verificationToken": "",
		}).Return(nil)

		err := usecase.VerifyUser(context.Background(), "tok-1")

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("unknown or consumed token is not found", func(t *testing.T) {
		repo := new(mockUserRepository)
		usecase := newTestAuthUsecase(repo, new(mockMailerService), new(mockRedisRepository))

		repo.On("FindByVerificationToken", mock.Anything, "used-token").Return(nil, nil)

		err := usecase.VerifyUser(context.Background(), "used-token")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestResendVerification(t *testing.T) {
	t.Run("missing email field", func(t *testing.T) {
		usecase := newTestAuthUsecase(new(mockUserRepository), new(mockMailerService), new(mockRedisRepository))

		err := usecase.ResendVerification(context.Background(), &requests.ResendVerification{})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientMissingRequiredFieldEmail, customErr.ClientMessage)
	})

	t.Run("resends the existing token for an unverified user", func(t *testing.T) {
		repo := new(mockUserRepository)
		mailerService := new(mockMailerService)
		redisRepo := new(mockRedisRepository)
		usecase := newTestAuthUsecase(repo, mailerService, redisRepo)

		redisRepo.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)
		repo.On("FindByEmail", mock.Anything, "slow@example.com").Return(&models.User{
			Email:             "slow@example.com",
			Verify:            false,
			VerificationToken: "tok-kept",
		}, nil)
		mailerService.On("SendEmail", mock.Anything, mock.MatchedBy(func(p *requests.EmailPayload) bool {
			return strings.Contains(p.HTMLCode, "tok-kept")
		})).Return(nil)

		err := usecase.ResendVerification(context.Background(), &requests.ResendVerification{Email: "slow@example.com"})

		require.NoError(t, err)
		mailerService.AssertExpectations(t)
	})

	t.Run("already verified user", func(t *testing.T) {
		repo := new(mockUserRepository)
		redisRepo := new(mockRedisRepository)
		usecase := newTestAuthUsecase(repo, new(mockMailerService), redisRepo)

		redisRepo.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)
		repo.On("FindByEmail", mock.Anything, "done@example.com").Return(&models.User{
			Email:  "done@example.com",
			Verify: true,
		}, nil)

		err := usecase.ResendVerification(context.Background(), &requests.ResendVerification{Email: "done@example.com"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientAlreadyVerified, customErr.ClientMessage)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(mockUserRepository)
		redisRepo := new(mockRedisRepository)
		usecase := newTestAuthUsecase(repo, new(mockMailerService), redisRepo)

		redisRepo.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)
		repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		err := usecase.ResendVerification(context.Background(), &requests.ResendVerification{Email: "ghost@example.com"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("throttled once the window quota is spent", func(t *testing.T) {
		redisRepo := new(mockRedisRepository)
		usecase := newTestAuthUsecase(new(mockUserRepository), new(mockMailerService), redisRepo)

		redisRepo.On("IncrementWithTTL", mock.Anything, mock.Anything, mock.Anything).Return(int64(6), nil)

		err := usecase.ResendVerification(context.Background(), &requests.ResendVerification{Email: "noisy@example.com"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusTooManyRequests, customErr.StatusCode)
	})
}

func TestLoginUser(t *testing.T) {
	hashedPassword, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)

	verifiedUser := func() *models.User {
		return &models.User{
			ID:           "64f000000000000000000004",
			Email:        "user@example.com",
			Password:     hashedPassword,
			Subscription: constvars.SubscriptionPro,
			Verify:       true,
		}
	}

	t.Run("issues and persists a session token", func(t *testing.T) {
		repo := new(mockUserRepository)
		usecase := newTestAuthUsecase(repo, new(mockMailerService), new(mockRedisRepository))

		repo.On("FindByEmail", mock.Anything, "user@example.com").Return(verifiedUser(), nil)
		repo.On("UpdateFields", mock.Anything, "64f000000000000000000004", mock.MatchedBy(func(fields map[string]interface{}) bool {
			token, ok := fields["token"].(string)
			return ok && token != ""
		})).Return(nil)

		response, err := usecase.LoginUser(context.Background(), &requests.LoginUser{
			Email:    "user@example.com",
			Password: "correct-horse",
		})

		require.NoError(t, err)
		assert.Equal(t, "user@example.com", response.Email)
		assert.Equal(t, constvars.SubscriptionPro, response.Subscription)

		userID, err := utils.ParseSessionJWT(response.Token, "test-secret")
		require.NoError(t, err)
		assert.Equal(t, "64f000000000000000000004", userID)
		repo.AssertExpectations(t)
	})

	t.Run("unknown email and wrong password share one message", func(t *testing.T) {
		repo := new(mockUserRepository)
		usecase := newTestAuthUsecase(repo, new(mockMailerService), new(mockRedisRepository))

		repo.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)
		repo.On("FindByEmail", mock.Anything, "user@example.com").Return(verifiedUser(), nil)

		_, unknownErr := usecase.LoginUser(context.Background(), &requests.LoginUser{
			Email:    "ghost@example.com",
			Password: "whatever1",
		})
		_, wrongPasswordErr := usecase.LoginUser(context.Background(), &requests.LoginUser{
			Email:    "user@example.com",
			Password: "wrong-horse",
		})

		var unknownCustomErr, wrongPasswordCustomErr *exceptions.CustomError
		require.ErrorAs(t, unknownErr, &unknownCustomErr)
		require.ErrorAs(t, wrongPasswordErr, &wrongPasswordCustomErr)
		assert.Equal(t, constvars.StatusUnauthorized, unknownCustomErr.StatusCode)
		assert.Equal(t, unknownCustomErr.ClientMessage, wrongPasswordCustomErr.ClientMessage)
	})

	t.Run("unverified user is told so before the password is checked", func(t *testing.T) {
		repo := new(mockUserRepository)
		usecase := newTestAuthUsecase(repo, new(mockMailerService), new(mockRedisRepository))

		repo.On("FindByEmail", mock.Anything, "fresh@example.com").Return(&models.User{
			Email:    "fresh@example.com",
			Password: hashedPassword,
			Verify:   false,
		}, nil)

		_, err := usecase.LoginUser(context.Background(), &requests.LoginUser{
			Email:    "fresh@example.com",
			Password: "wrong-horse",
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientEmailNotVerified, customErr.ClientMessage)
	})
}

func TestLogoutUser(t *testing.T) {
	repo := new(mockUserRepository)
	usecase := newTestAuthUsecase(repo, new(mockMailerService), new(mockRedisRepository))

	repo.On("UpdateFields", mock.Anything, "64f000000000000000000005", map[string]interface{}{
		"token": "",
	}).Return(nil)

	err := usecase.LogoutUser(context.Background(), "64f000000000000000000005")

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
