package auth

import (
	"context"
	"phonebook-service/internal/app/config"
	"phonebook-service/internal/app/models"
	"phonebook-service/internal/app/services/shared/mailer"
	"phonebook-service/internal/app/services/shared/ratelimiter"
	"phonebook-service/internal/app/services/users"
	"phonebook-service/internal/pkg/constvars"
	"phonebook-service/internal/pkg/dto/requests"
	"phonebook-service/internal/pkg/dto/responses"
	"phonebook-service/internal/pkg/exceptions"
	"phonebook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository users.UserRepository
	MailerService  mailer.MailerService
	ResendLimiter  *ratelimiter.ResourceLimiter
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(
	userMongoRepository users.UserRepository,
	mailerService mailer.MailerService,
	resendLimiter *ratelimiter.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) AuthUsecase {
	return &authUsecase{
		UserRepository: userMongoRepository,
		MailerService:  mailerService,
		ResendLimiter:  resendLimiter,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	// Check if email already exists. The unique index on the collection is
	// the real guard; this check only produces a friendlier error for the
	// common case.
	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	subscription := request.Subscription
	if subscription == "" {
		subscription = constvars.SubscriptionStarter
	}

	user := &models.User{
		Email:             request.Email,
		Password:          hashedPassword,
		Subscription:      subscription,
		AvatarURL:         utils.GenerateDefaultAvatarURL(request.Email),
		Verify:            false,
		VerificationToken: utils.GenerateVerificationToken(),
	}

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	// A created-but-unmailed user is a possible terminal state here; the
	// record persists and the caller sees the mailer failure.
	err = uc.sendVerificationEmail(ctx, user.Email, user.VerificationToken)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.RegisterUser succeeded",
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String(constvars.LoggingEmailKey, user.Email),
	)

	return &responses.RegisterUser{
		Email:        user.Email,
		Subscription: user.Subscription,
	}, nil
}

func (uc *authUsecase) VerifyUser(ctx context.Context, verificationToken string) error {
	user, err := uc.UserRepository.FindByVerificationToken(ctx, verificationToken)
	if err != nil {
		return err
	}
	// A consumed token never matches again; re-submitting yields not-found,
	// not an already-verified conflict.
	if user == nil {
		return exceptions.ErrVerificationTokenNotFound(nil)
	}

	err = uc.UserRepository.UpdateFields(ctx, user.ID, map[string]interface{}{
		"verify":            true,
		"verificationToken": "",
	})
	if err != nil {
		return err
	}

	uc.Log.Info("authUsecase.VerifyUser succeeded",
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return nil
}

func (uc *authUsecase) ResendVerification(ctx context.Context, request *requests.ResendVerification) error {
	if request.Email == "" {
		return exceptions.ErrMissingEmailField(nil)
	}

	limiterResult, err := uc.ResendLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      request.Email,
		LimiterGroupName:  constvars.ResendVerifyLimiterGroup,
		WindowDurationSec: uc.InternalConfig.App.ResendVerifyWindowInSec,
		MaxQuota:          uc.InternalConfig.App.ResendVerifyMaxPerWindow,
	})
	if err != nil {
		return err
	}
	if !limiterResult.Allowed {
		return exceptions.ErrResendThrottled(nil)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return exceptions.ErrUserNotExist(nil)
	}
	if user.Verify {
		return exceptions.ErrEmailAlreadyVerified(nil)
	}

	return uc.sendVerificationEmail(ctx, user.Email, user.VerificationToken)
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	// Unknown email and wrong password share one message so callers cannot
	// probe which emails are registered.
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	if !user.Verify {
		return nil, exceptions.ErrEmailNotVerified(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	tokenString, err := utils.GenerateSessionJWT(user.ID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	err = uc.UserRepository.UpdateFields(ctx, user.ID, map[string]interface{}{
		"token": tokenString,
	})
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.LoginUser succeeded",
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)

	return &responses.LoginUser{
		Token:        tokenString,
		Email:        user.Email,
		Subscription: user.Subscription,
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, userID string) error {
	return uc.UserRepository.UpdateFields(ctx, userID, map[string]interface{}{
		"token": "",
	})
}

func (uc *authUsecase) sendVerificationEmail(ctx context.Context, email, verificationToken string) error {
	link := utils.GenerateVerificationLink(uc.InternalConfig.App.BaseURL, verificationToken)
	payload := utils.BuildVerificationEmailPayload(uc.InternalConfig.Mailer.EmailSender, email, link)
	return uc.MailerService.SendEmail(ctx, payload)
}
