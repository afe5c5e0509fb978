package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingRequestKey        = "request"
	LoggingResponseKey       = "response"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingOperationKey      = "operation"
	LoggingRedisKey          = "redis_key"
	LoggingQueueNameKey      = "queue_name"
	LoggingBucketNameKey     = "bucket_name"
	LoggingObjectNameKey     = "object_name"
	LoggingCollectionKey     = "collection"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingDoctorCountKey    = "doctor_count"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingAppointmentCount  = "appointment_count"
	LoggingAppointmentType   = "appointment_type"
	LoggingAppointmentStatus = "appointment_status"
	LoggingUserIDKey         = "user_id"
	LoggingPatientIDKey      = "patient_id"
	LoggingEventTypeKey      = "event_type"
	LoggingExpectedVersion   = "expected_version"
)
