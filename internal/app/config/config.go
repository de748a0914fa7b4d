package config

import (
	"phonebook-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "phonebook"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", "no-reply@phonebook.local"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "avatars"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			BaseURL:                  utils.GetEnvString("APP_BASE_URL", "http://localhost:8080"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:          utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			ResendVerifyMaxPerWindow: utils.GetEnvInt("APP_RESEND_VERIFY_MAX_PER_WINDOW", 5),
			ResendVerifyWindowInSec:  utils.GetEnvInt("APP_RESEND_VERIFY_WINDOW_IN_SEC", 60),
			AvatarMaxUploadSizeInMB:  utils.GetEnvInt("APP_AVATAR_UPLOAD_MAX_SIZE_IN_MB", 2),
		},
		JWT: JWT{
			Secret:               utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour:        utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
			EnforceSingleSession: utils.GetEnvBool("JWT_ENFORCE_SINGLE_SESSION", false),
		},
		Mailer: Mailer{
			EmailSender: utils.GetEnvString("APP_MAILER_EMAIL_SENDER", "no-reply@phonebook.local"),
			Queue:       utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "phonebook_mailer_queue"),
		},
		Avatar: Avatar{
			StorageDriver: utils.GetEnvString("STORAGE_DRIVER", "local"),
			TmpDir:        utils.GetEnvString("AVATAR_TMP_DIR", "tmp"),
			PublicDir:     utils.GetEnvString("AVATAR_PUBLIC_DIR", "public/avatars"),
			PublicPath:    utils.GetEnvString("AVATAR_PUBLIC_PATH", "/avatars"),
		},
	}
}
