package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"url":      "must be a valid URL",
	"uuid":     "must be a valid UUID",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientEmailInUse                    = "Email in use"
	ErrClientWrongEmailOrPassword          = "Email or password is wrong"
	ErrClientEmailNotVerified              = "Email is not verified"
	ErrClientNotAuthorized                 = "Not authorized"
	ErrClientAlreadyVerified               = "Verification has already been passed"
	ErrClientUserNotFound                  = "User not found"
	ErrClientContactNotFound               = "Not found"
	ErrClientMissingFieldFavorite          = "missing field favorite"
	ErrClientMissingRequiredFieldEmail     = "missing required field email"
	ErrClientTooManyResendRequests         = "too many verification requests, try again later"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientContactIDNotValidFormat       = "id %s is not valid"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form body"
	ErrDevImageValidationFailed    = "image validation failed"
	ErrDevServerDeadlineExceeded   = "server took too long to process the request"
	ErrDevServerProcess            = "internal process failed"

	ErrDevEmailAlreadyExists     = "user with the given email already exists"
	ErrDevUserNotExists          = "user with the given identifier does not exist"
	ErrDevInvalidCredentials     = "credentials do not match any user"
	ErrDevUserNotVerified        = "user email is not verified yet"
	ErrDevUserAlreadyVerified    = "user email is already verified"
	ErrDevVerificationTokenUsed  = "verification token does not match any user"
	ErrDevFailedToHashPassword   = "failed to hash the given password"
	ErrDevResendThrottled        = "resend verification quota exceeded for the window"
	ErrDevAuthTokenMissing       = "authorization header is missing or not a bearer scheme"
	ErrDevAuthTokenInvalid       = "token is invalid"
	ErrDevAuthTokenNotCurrent    = "token does not match the current session token"
	ErrDevAuthSigningMethod      = "unexpected token signing method"
	ErrDevAuthGenerateToken      = "failed to sign session token"
	ErrDevContactNotExists       = "contact with the given id does not exist"
	ErrDevContactIDNotObjectID   = "contact id is not a valid object id"
	ErrDevMissingFavoriteField   = "favorite field is absent from the request body"
	ErrDevMissingEmailField      = "email field is absent from the request body"
	ErrDevAvatarFileMissing      = "multipart form has no avatar file"
	ErrDevAvatarDecodeFailed     = "uploaded avatar could not be decoded as an image"
	ErrDevAvatarPipelineFailed   = "avatar resize pipeline failed"
	ErrDevDBFailedToFindDocument = "database failed to find document"

	ErrDevDBFailedToInsertDocument  = "database failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "database failed to update document"
	ErrDevDBFailedToDeleteDocument  = "database failed to delete document"
	ErrDevDBDuplicateKey            = "database rejected a duplicate unique key"
	ErrDevDBStringNotObjectID       = "string cannot be converted to object id"
	ErrDevRedisGetData              = "redis failed to get data"
	ErrDevRedisSetData              = "redis failed to set data"
	ErrDevRedisDeleteData           = "redis failed to delete data"
	ErrDevRedisIncrementValue       = "redis failed to increment value"
	ErrDevRabbitMQPublishMessage    = "rabbitmq failed to publish message to queue %s"
	ErrDevRabbitMQConsumeMessage    = "rabbitmq failed to start consuming queue %s"
	ErrDevSMTPSendEmail             = "smtp server %s failed to send email"
	ErrDevMinioFailedToCreateObject = "minio failed to create object in bucket %s"
	ErrDevStorageSaveFailed         = "storage failed to persist avatar file"
)
