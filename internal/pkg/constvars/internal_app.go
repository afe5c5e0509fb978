package constvars

type ContextKey string

const (
	ResourceAuth         = "auth"
	ResourceUsers        = "users"
	ResourcePatients     = "patients"
	ResourceDoctors      = "doctors"
	ResourceAppointments = "appointments"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_ADMIN_SUBJECT_KEY        ContextKey = "admin_subject"
)

const (
	REQUEST_ID_PREFIX = "CRPLS_SVC_"
)

const (
	CarePulseRoleAdmin    = "admin"
	CarePulseAdminSubject = "admin"
)

const (
	RedisKeyDoctorList = "carepulse:doctors:list"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)
