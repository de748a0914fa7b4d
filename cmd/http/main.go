package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"phonebook-service/internal/app/config"
	"phonebook-service/internal/app/delivery/http/middlewares"
	"phonebook-service/internal/app/delivery/http/routers"
	"phonebook-service/internal/app/drivers/database"
	"phonebook-service/internal/app/drivers/logger"
	smtpdriver "phonebook-service/internal/app/drivers/mailer"
	"phonebook-service/internal/app/drivers/messaging"
	miniodriver "phonebook-service/internal/app/drivers/storage"
	"phonebook-service/internal/app/services/auth"
	"phonebook-service/internal/app/services/contacts"
	"phonebook-service/internal/app/services/shared/mailer"
	"phonebook-service/internal/app/services/shared/ratelimiter"
	"phonebook-service/internal/app/services/shared/redis"
	"phonebook-service/internal/app/services/shared/storage"
	"phonebook-service/internal/app/services/users"
	"phonebook-service/internal/pkg/constvars"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	rabbitMQConnection := messaging.NewRabbitMQ(driverConfig, log)
	smtpClient := smtpdriver.NewSMTPClient(driverConfig)

	avatarStorage, err := newAvatarStorage(driverConfig, internalConfig, log)
	if err != nil {
		log.Fatalf("Avatar storage init failed: %v", err)
	}

	mailerService, err := mailer.NewMailerService(rabbitMQConnection, internalConfig.Mailer.Queue)
	if err != nil {
		log.Fatalf("Mailer service init failed: %v", err)
	}

	mailerWorker := mailer.NewWorker(zapLogger, smtpClient, rabbitMQConnection, internalConfig.Mailer.Queue)
	stopWorker, err := mailerWorker.Start(context.Background())
	if err != nil {
		log.Fatalf("Mailer worker failed to start: %v", err)
	}

	// Shared
	redisRepository := redis.NewRedisRepository(redisClient)
	resendLimiter := ratelimiter.NewResourceLimiter(redisRepository, zapLogger)

	// User
	userMongoRepository := users.NewUserMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	userUsecase := users.NewUserUsecase(userMongoRepository, avatarStorage)
	userController := users.NewUserController(zapLogger, userUsecase, internalConfig)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, mailerService, resendLimiter, internalConfig, zapLogger)
	authController := auth.NewAuthController(zapLogger, authUsecase)

	// Contact
	contactMongoRepository := contacts.NewContactMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	contactUsecase := contacts.NewContactUsecase(contactMongoRepository, zapLogger)
	contactController := contacts.NewContactController(zapLogger, contactUsecase)

	appMiddlewares := middlewares.NewMiddlewares(zapLogger, userMongoRepository, internalConfig)

	chiRouter := chi.NewRouter()
	routers.SetupRoutes(chiRouter, internalConfig, appMiddlewares, authController, userController, contactController)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()
	log.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	stopWorker()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func newAvatarStorage(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, log *logrus.Logger) (storage.Storage, error) {
	if internalConfig.Avatar.StorageDriver == constvars.StorageDriverMinio {
		minioClient := miniodriver.NewMinio(driverConfig, log)
		return storage.NewMinioStorage(minioClient, driverConfig), nil
	}
	return storage.NewLocalStorage(internalConfig)
}
