package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		Minio          *minio.Client
		RabbitMQ       *amqp091.Connection
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App   App
		Store Store
		Admin Admin
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	App struct {
		Env                                string
		Port                               string
		Version                            string
		Timezone                           string
		EndpointPrefix                     string
		CORSAllowedOrigins                 []string
		MaxRequests                        int
		MaxTimeRequestsPerSeconds          int
		ShutdownTimeoutInSeconds           int
		RequestTimeoutInSeconds            int
		DoctorImageMaxUploadSizeInMB       int64
		IdentificationDocMaxUploadSizeInMB int64
		DoctorCacheExpTimeInMinute         int
		RabbitMQNotificationQueue          string
	}

	// Store names the external store resources every registry resolves against.
	Store struct {
		DatabaseID              string
		DoctorCollectionID      string
		AppointmentCollectionID string
		PatientCollectionID     string
		UserCollectionID        string
		BucketID                string
		PublicEndpoint          string
		ProjectID               string
	}

	Admin struct {
		PasskeyHash                 string
		JWTSecret                   string
		SessionExpTimeInHour        int
		SessionMaxAttemptsPerMinute int
	}

	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)
