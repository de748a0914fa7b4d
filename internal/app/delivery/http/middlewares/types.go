package middlewares

import (
	"phonebook-service/internal/app/config"
	"phonebook-service/internal/app/services/users"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	UserRepository users.UserRepository
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, userRepository users.UserRepository, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		UserRepository: userRepository,
		InternalConfig: internalConfig,
	}
}
