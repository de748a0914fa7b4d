package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"phonebook-service/internal/app/models"
	"phonebook-service/internal/pkg/constvars"
	"phonebook-service/internal/pkg/dto/requests"
	"phonebook-service/internal/pkg/dto/responses"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	args := m.Called(ctx, request)
	if response, ok := args.Get(0).(*responses.RegisterUser); ok {
		return response, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthUsecase) VerifyUser(ctx context.Context, verificationToken string) error {
	args := m.Called(ctx, verificationToken)
	return args.Error(0)
}

func (m *mockAuthUsecase) ResendVerification(ctx context.Context, request *requests.ResendVerification) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *mockAuthUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	if response, ok := args.Get(0).(*responses.LoginUser); ok {
		return response, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthUsecase) LogoutUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestAuthControllerRegisterUser(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		usecase := new(mockAuthUsecase)
		controller := NewAuthController(zap.NewNop(), usecase)

		usecase.On("RegisterUser", mock.Anything, mock.MatchedBy(func(r *requests.RegisterUser) bool {
			return r.Email == "new@example.com"
		})).Return(&responses.RegisterUser{Email: "new@example.com", Subscription: "starter"}, nil)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/users/register",
			strings.NewReader(`{"email":"new@example.com","password":"plaintext1"}`))

		controller.RegisterUser(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"success":true`)
		assert.Contains(t, rr.Body.String(), `"email":"new@example.com"`)
	})

	t.Run("malformed body", func(t *testing.T) {
		controller := NewAuthController(zap.NewNop(), new(mockAuthUsecase))

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/users/register", strings.NewReader(`{`))

		controller.RegisterUser(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("short password never reaches the usecase", func(t *testing.T) {
		usecase := new(mockAuthUsecase)
		controller := NewAuthController(zap.NewNop(), usecase)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/users/register",
			strings.NewReader(`{"email":"new@example.com","password":"short"}`))

		controller.RegisterUser(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "password must be at least 6 characters long")
		usecase.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.Anything)
	})
}

func TestAuthControllerLoginUser(t *testing.T) {
	usecase := new(mockAuthUsecase)
	controller := NewAuthController(zap.NewNop(), usecase)

	usecase.On("LoginUser", mock.Anything, mock.Anything).
		Return(&responses.LoginUser{Token: "signed-token", Email: "user@example.com", Subscription: "starter"}, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/users/login",
		strings.NewReader(`{"email":"user@example.com","password":"plaintext1"}`))

	controller.LoginUser(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"token":"signed-token"`)
}

func TestAuthControllerLogoutUser(t *testing.T) {
	usecase := new(mockAuthUsecase)
	controller := NewAuthController(zap.NewNop(), usecase)

	usecase.On("LogoutUser", mock.Anything, "64f0000000000000000000ee").Return(nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/users/logout", nil)
	ctx := context.WithValue(req.Context(), constvars.ContextUserKey, &models.User{ID: "64f0000000000000000000ee"})

	controller.LogoutUser(rr, req.WithContext(ctx))

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
	usecase.AssertExpectations(t)
}

func TestAuthControllerVerifyUser(t *testing.T) {
	usecase := new(mockAuthUsecase)
	controller := NewAuthController(zap.NewNop(), usecase)

	usecase.On("VerifyUser", mock.Anything, mock.Anything).Return(nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/users/verify/tok-1", nil)

	controller.VerifyUser(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), constvars.VerificationSuccess)
}
