package exceptions

import (
	"fmt"
	"phonebook-service/internal/pkg/constvars"
)

func buildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	customError := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
	if err != nil {
		customError.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return customError
}

var (
	ErrInputValidation = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrImageValidation = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidImageFormat, constvars.ErrDevImageValidationFailed)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}

	// Auth
	ErrEmailAlreadyExist = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientEmailInUse, constvars.ErrDevEmailAlreadyExists)
	}
	ErrInvalidEmailOrPassword = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientWrongEmailOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrEmailNotVerified = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientEmailNotVerified, constvars.ErrDevUserNotVerified)
	}
	ErrEmailAlreadyVerified = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientAlreadyVerified, constvars.ErrDevUserAlreadyVerified)
	}
	ErrVerificationTokenNotFound = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientUserNotFound, constvars.ErrDevVerificationTokenUsed)
	}
	ErrUserNotExist = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientUserNotFound, constvars.ErrDevUserNotExists)
	}
	ErrMissingEmailField = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientMissingRequiredFieldEmail, constvars.ErrDevMissingEmailField)
	}
	ErrResendThrottled = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyResendRequests, constvars.ErrDevResendThrottled)
	}
	ErrHashPassword = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenInvalid)
	}
	ErrTokenNotCurrentSession = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenNotCurrent)
	}

	// Contacts
	ErrContactIDNotValid = func(err error, contactID string) *CustomError {
		return buildNewCustomError(err, constvars.StatusNotFound, fmt.Sprintf(constvars.ErrClientContactIDNotValidFormat, contactID), constvars.ErrDevContactIDNotObjectID)
	}
	ErrContactNotExist = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientContactNotFound, constvars.ErrDevContactNotExists)
	}
	ErrMissingFavoriteField = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientMissingFieldFavorite, constvars.ErrDevMissingFavoriteField)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBDuplicateKey = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientEmailInUse, constvars.ErrDevDBDuplicateKey)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBStringNotObjectID)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisIncrement = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrementValue)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
	ErrRabbitMQConsumeMessage = func(err error, queueName string) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQConsumeMessage, queueName))
	}

	// SMTP
	ErrSMTPSendEmail = func(err error, hostname string) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevSMTPSendEmail, hostname))
	}

	// Storage
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrStorageSaveAvatar = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStorageSaveFailed)
	}
)
