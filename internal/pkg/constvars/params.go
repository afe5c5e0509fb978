package constvars

const (
	URLParamDoctorID      = "doctor_id"
	URLParamAppointmentID = "appointment_id"
	URLParamUserID        = "user_id"
)

const (
	URLQueryParamImageID = "image_id"
)

const (
	FormFieldName                   = "name"
	FormFieldSpeciality             = "speciality"
	FormFieldImage                  = "image"
	FormFieldPatient                = "patient"
	FormFieldIdentificationDocument = "identificationDocument"
)
