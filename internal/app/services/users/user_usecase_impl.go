package users

import (
	"context"
	"io"
	"phonebook-service/internal/app/models"
	"phonebook-service/internal/app/services/shared/storage"
	"phonebook-service/internal/pkg/dto/responses"
	"phonebook-service/internal/pkg/utils"
)

type userUsecase struct {
	UserRepository UserRepository
	AvatarStorage  storage.Storage
}

func NewUserUsecase(userMongoRepository UserRepository, avatarStorage storage.Storage) UserUsecase {
	return &userUsecase{
		UserRepository: userMongoRepository,
		AvatarStorage:  avatarStorage,
	}
}

func (uc *userUsecase) GetCurrentUser(ctx context.Context, user *models.User) (*responses.CurrentUser, error) {
	return &responses.CurrentUser{
		Email:        user.Email,
		Subscription: user.Subscription,
	}, nil
}

func (uc *userUsecase) UpdateAvatar(ctx context.Context, user *models.User, file io.Reader, fileName string) (*responses.UpdateAvatar, error) {
	storedName := utils.GenerateAvatarFileName(user.ID, fileName)

	avatarURL, err := uc.AvatarStorage.SaveAvatar(ctx, file, storedName)
	if err != nil {
		return nil, err
	}

	err = uc.UserRepository.UpdateFields(ctx, user.ID, map[string]interface{}{
		"avatarURL": avatarURL,
	})
	if err != nil {
		return nil, err
	}

	return &responses.UpdateAvatar{AvatarURL: avatarURL}, nil
}
