package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"
)

const (
	CreateDoctorSuccessMessage       = "doctor created successfully"
	GetDoctorsSuccessMessage         = "get doctors successfully"
	DeleteDoctorSuccessMessage       = "doctor deleted successfully"
	CreateAppointmentSuccessMessage  = "appointment created successfully"
	UpdateAppointmentSuccessMessage  = "appointment updated successfully"
	GetAppointmentSuccessMessage     = "get appointment successfully"
	GetAppointmentListSuccessMessage = "get appointments successfully"
	CreateUserSuccessMessage         = "user created successfully"
	GetUserSuccessMessage            = "get user successfully"
	RegisterPatientSuccessMessage    = "patient registered successfully"
	GetPatientSuccessMessage         = "get patient successfully"
	AdminSessionSuccessMessage       = "admin session created successfully"
)
