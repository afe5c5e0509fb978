package main

import (
	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/delivery/http/controllers"
	"carepulse-service/internal/app/delivery/http/middlewares"
	"carepulse-service/internal/app/delivery/http/routers"
	"carepulse-service/internal/app/drivers/database"
	"carepulse-service/internal/app/drivers/logger"
	"carepulse-service/internal/app/drivers/messaging"
	"carepulse-service/internal/app/drivers/storage"
	"carepulse-service/internal/app/services/core/appointments"
	"carepulse-service/internal/app/services/core/auth"
	"carepulse-service/internal/app/services/core/doctors"
	"carepulse-service/internal/app/services/core/patients"
	"carepulse-service/internal/app/services/core/users"
	"carepulse-service/internal/app/services/shared/jwtmanager"
	"carepulse-service/internal/app/services/shared/notification"
	"carepulse-service/internal/app/services/shared/redis"
	sharedStorage "carepulse-service/internal/app/services/shared/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	err := internalConfig.Validate()
	if err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	store := bootstrap.InternalConfig.Store

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	minioStorage := sharedStorage.NewMinioStorage(
		bootstrap.Minio,
		store.PublicEndpoint,
		store.ProjectID,
		bootstrap.Logger,
	)
	publishChannel, err := messaging.NewPublishChannel(bootstrap.RabbitMQ, bootstrap.InternalConfig.App.RabbitMQNotificationQueue)
	if err != nil {
		return err
	}
	notificationPublisher := notification.NewNotificationPublisher(
		publishChannel,
		bootstrap.InternalConfig.App.RabbitMQNotificationQueue,
		bootstrap.Logger,
	)
	jwtManager, err := jwtmanager.NewJWTManager(
		bootstrap.InternalConfig.Admin.JWTSecret,
		time.Duration(bootstrap.InternalConfig.Admin.SessionExpTimeInHour)*time.Hour,
	)
	if err != nil {
		return err
	}

	// Auth
	authUsecase := auth.NewAuthUsecase(jwtManager, bootstrap.InternalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	// Users & Patients
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB, store.DatabaseID, store.UserCollectionID)
	patientMongoRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, store.DatabaseID, store.PatientCollectionID)
	patientUsecase := patients.NewPatientUsecase(
		userMongoRepository,
		patientMongoRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, bootstrap.InternalConfig)

	// Doctors
	doctorMongoRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB, store.DatabaseID, store.DoctorCollectionID)
	doctorUsecase := doctors.NewDoctorUsecase(
		doctorMongoRepository,
		redisRepository,
		minioStorage,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	doctorController := controllers.NewDoctorController(bootstrap.Logger, doctorUsecase, bootstrap.InternalConfig)

	// Appointments
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB, store.DatabaseID, store.AppointmentCollectionID)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		doctorUsecase,
		notificationPublisher,
		bootstrap.Logger,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase, bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		patientController,
		doctorController,
		appointmentController,
	)
	return nil
}
