package config

import (
	"carepulse-service/internal/pkg/utils"

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
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
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
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                                utils.GetEnvString("APP_ENV", "development"),
			Port:                               utils.GetEnvString("APP_PORT", ":8080"),
			Version:                            utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                           utils.GetEnvString("APP_TIMEZONE", "Asia/Karachi"),
			EndpointPrefix:                     utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			CORSAllowedOrigins:                 utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:                        utils.GetEnvInt("APP_MAX_REQUEST", 20),
			MaxTimeRequestsPerSeconds:          utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 1),
			ShutdownTimeoutInSeconds:           utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestTimeoutInSeconds:            utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
			DoctorImageMaxUploadSizeInMB:       utils.GetEnvInt64("APP_DOCTOR_IMAGE_UPLOAD_MAX_SIZE_IN_MB", 5),
			IdentificationDocMaxUploadSizeInMB: utils.GetEnvInt64("APP_IDENTIFICATION_DOCUMENT_UPLOAD_MAX_SIZE_IN_MB", 10),
			DoctorCacheExpTimeInMinute:         utils.GetEnvInt("APP_DOCTOR_CACHE_EXP_TIME_IN_MINUTE", 10),
			RabbitMQNotificationQueue:          utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "appointment-notifications"),
		},
		Store: Store{
			DatabaseID:              utils.GetEnvString("DATABASE_ID", ""),
			DoctorCollectionID:      utils.GetEnvString("DOCTOR_COLLECTION_ID", ""),
			AppointmentCollectionID: utils.GetEnvString("APPOINTMENT_COLLECTION_ID", ""),
			PatientCollectionID:     utils.GetEnvString("PATIENT_COLLECTION_ID", ""),
			UserCollectionID:        utils.GetEnvString("USER_COLLECTION_ID", ""),
			BucketID:                utils.GetEnvString("BUCKET_ID", ""),
			PublicEndpoint:          utils.GetEnvString("STORAGE_PUBLIC_ENDPOINT", ""),
			ProjectID:               utils.GetEnvString("PROJECT_ID", ""),
		},
		Admin: Admin{
			PasskeyHash:                 utils.GetEnvString("ADMIN_PASSKEY_HASH", ""),
			JWTSecret:                   utils.GetEnvString("JWT_SECRET", ""),
			SessionExpTimeInHour:        utils.GetEnvInt("ADMIN_SESSION_EXP_TIME_IN_HOUR", 12),
			SessionMaxAttemptsPerMinute: utils.GetEnvInt("ADMIN_SESSION_MAX_ATTEMPTS_PER_MINUTE", 5),
		},
	}
}
