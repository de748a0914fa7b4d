package auth

import (
	"context"
	"phonebook-service/internal/pkg/dto/requests"
	"phonebook-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	VerifyUser(ctx context.Context, verificationToken string) error
	ResendVerification(ctx context.Context, request *requests.ResendVerification) error
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	LogoutUser(ctx context.Context, userID string) error
}
