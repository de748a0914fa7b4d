package users

import (
	"context"
	"io"
	"phonebook-service/internal/app/models"
	"phonebook-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetCurrentUser(ctx context.Context, user *models.User) (*responses.CurrentUser, error)
	UpdateAvatar(ctx context.Context, user *models.User, file io.Reader, fileName string) (*responses.UpdateAvatar, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, userEntity *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByVerificationToken(ctx context.Context, token string) (*models.User, error)
	UpdateFields(ctx context.Context, userID string, updateData map[string]interface{}) error
}
