package constvars

// Validation messages for tags, used when a field has no dedicated message
var CustomValidationErrorMessages = map[string]string{
	"required":           "is required",
	"required_unless":    "is required",
	"email":              "must be a valid email",
	"min":                "must be at least %s characters long",
	"max":                "must be less than %s characters long",
	"gte":                "must be at least %s",
	"oneof":              "must be one of %s",
	"eq":                 "must be %s",
	"person_name":        "can only contain letters and spaces",
	"pk_phone":           "Invalid phone number. Use: +92 3XX XXXXXXX or 03XX XXXXXXX",
	"datetime_coercible": "must be a valid date and time",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gte":   true,
	"oneof": true,
	"eq":    true,
}

// Field specific messages keyed by "<json field>.<tag>"
var FieldValidationErrorMessages = map[string]string{
	"primaryPhysician.required":     "Select at least one doctor",
	"primaryPhysician.min":          "Select at least one doctor",
	"schedule.required":             "Select an appointment date",
	"reason.required":               "Reason must be at least 2 characters",
	"reason.min":                    "Reason must be at least 2 characters",
	"reason.max":                    "Reason must be less than 500 characters",
	"cancellationReason.required":   "Reason must be at least 2 characters",
	"cancellationReason.min":        "Reason must be at least 2 characters",
	"cancellationReason.max":        "Reason must be less than 500 characters",
	"paymentMethod.required":        "Please select a payment method",
	"paymentMethod.oneof":           "Please select a payment method",
	"paymentAmount.required":        "Minimum payment amount is Rs. 100",
	"paymentAmount.gte":             "Minimum payment amount is Rs. 100",
	"transactionId.required_unless": "Transaction ID is required for online payments",

	"name.min":                  "Name must be at least 2 characters",
	"name.max":                  "Name must be less than 50 characters",
	"name.person_name":          "Name can only contain letters and spaces",
	"email.email":               "Invalid email address",
	"address.min":               "Address must be at least 5 characters",
	"address.max":               "Address must be less than 500 characters",
	"occupation.min":            "Occupation must be at least 2 characters",
	"occupation.max":            "Occupation must be less than 500 characters",
	"emergencyContactName.min":  "Name must be at least 2 characters",
	"emergencyContactName.max":  "Name must be less than 50 characters",
	"insuranceProvider.min":     "Insurance provider name must be at least 2 characters",
	"insuranceProvider.max":     "Insurance provider name must be less than 50 characters",
	"insurancePolicyNumber.min": "Policy number must be at least 2 characters",
	"insurancePolicyNumber.max": "Policy number must be less than 50 characters",
	"treatmentConsent.eq":       "You must consent to treatment in order to proceed",
	"disclosureConsent.eq":      "You must consent to disclosure in order to proceed",
	"privacyConsent.eq":         "You must consent to privacy in order to proceed",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidPasskey                = "invalid passkey, please try again"
	ErrClientMissingRequiredFields         = "missing required fields"
	ErrClientInvalidImageFormat            = "invalid image, allowed formats are jpg, jpeg, png and webp"
	ErrClientInvalidDocumentFormat         = "invalid document, allowed formats are jpg, jpeg, png, webp and pdf"
	ErrClientDuplicateResource             = "resource already exists"
	ErrClientFileTooLarge                  = "file size exceeds the maximum limit"
	ErrClientDoctorNotFound                = "selected doctor not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientPatientNotFound               = "patient not found"
	ErrClientUserNotFound                  = "user not found"
	ErrClientAppointmentChanged            = "appointment was changed by someone else, please reload and try again"
	ErrClientInvalidAppointmentType        = "appointment action must be schedule or cancel"
	ErrClientPatientAlreadyRegistered      = "patient already registered for this user"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevCannotMarshalJSON      = "cannot marshal JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevMissingRequiredFields  = "missing required fields"
	ErrDevImageValidationFailed  = "image validation failed"
	ErrDevDBDuplicateDocument    = "document violates a unique index"
	ErrDevFileTooLarge           = "uploaded file exceeds the configured size limit"
	ErrDevURLParamIDValidation   = "url param %s is not a valid identifier"
	ErrDevCannotParseMultipart   = "cannot parse multipart form"
	ErrDevInvalidAppointmentType = "invalid appointment action type"
	ErrDevConfigurationMissing   = "missing required configuration: %s"
	ErrDevDoctorNotFound         = "doctor not found in supplied doctor list"
	ErrDevDocumentNotFound       = "document not found"
	ErrDevVersionConflict        = "appointment version does not match expected version"
	ErrDevPatientAlreadyExists   = "patient document already exists for user"

	// Authentication messages
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthInvalidPasskey        = "admin passkey does not match"

	// Database messages
	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document from database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents from database"
	ErrDevDBFailedToCreateIndexes    = "failed to create indexes on collection %s"
	ErrDevDBStringNotObjectID        = "given ID is not valid object ID"

	// Object storage messages
	ErrDevMinioFailedToCreateObject = "failed to create object on bucket %s"
	ErrDevMinioFailedToDeleteObject = "failed to delete object on bucket %s"
	ErrDevMinioFailedToCreateBucket = "failed to create bucket %s"

	// Redis messages
	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"

	// Server messages
	ErrDevServerDeadlineExceeded = "deadline exceeded"
	ErrDevServerProcess          = "failed to process request"
)
