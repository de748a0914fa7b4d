package users

import (
	"context"
	"net/http"
	"phonebook-service/internal/app/config"
	"phonebook-service/internal/app/models"
	"phonebook-service/internal/pkg/constvars"
	"phonebook-service/internal/pkg/exceptions"
	"phonebook-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type UserController struct {
	Log            *zap.Logger
	UserUsecase    UserUsecase
	InternalConfig *config.InternalConfig
}

func NewUserController(logger *zap.Logger, userUsecase UserUsecase, internalConfig *config.InternalConfig) *UserController {
	return &UserController{
		Log:            logger,
		UserUsecase:    userUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *UserController) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(constvars.ContextUserKey).(*models.User)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.UserUsecase.GetCurrentUser(ctx, user)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCurrentSuccess, result)
}

func (ctrl *UserController) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(constvars.ContextUserKey).(*models.User)

	maxUploadBytes := int64(ctrl.InternalConfig.App.AvatarMaxUploadSizeInMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	err := r.ParseMultipartForm(maxUploadBytes)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, fileHeader, err := r.FormFile("avatar")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.WrapWithError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevAvatarFileMissing))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.UserUsecase.UpdateAvatar(ctx, user, file, fileHeader.Filename)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvatarUpdateSuccess, response)
}
