package requests

// AppointmentPayload is the candidate appointment submitted for any action type.
type AppointmentPayload struct {
	PrimaryPhysician   string   `json:"primaryPhysician"`
	Schedule           string   `json:"schedule"`
	Reason             string   `json:"reason"`
	Note               string   `json:"note"`
	CancellationReason string   `json:"cancellationReason"`
	PaymentMethod      string   `json:"paymentMethod"`
	PaymentAmount      *float64 `json:"paymentAmount"`
	TransactionID      string   `json:"transactionId"`
}

type CreateAppointmentSchema struct {
	PrimaryPhysician   string   `json:"primaryPhysician" validate:"required,min=2"`
	Schedule           string   `json:"schedule" validate:"required,datetime_coercible"`
	Reason             string   `json:"reason" validate:"required,min=2,max=500"`
	Note               string   `json:"note"`
	CancellationReason string   `json:"cancellationReason"`
	PaymentMethod      string   `json:"paymentMethod" validate:"required,oneof=cash easypaisa jazzcash bank"`
	PaymentAmount      *float64 `json:"paymentAmount" validate:"required,gte=100"`
	TransactionID      string   `json:"transactionId" validate:"required_unless=PaymentMethod cash"`
}

type ScheduleAppointmentSchema struct {
	PrimaryPhysician   string `json:"primaryPhysician" validate:"required,min=2"`
	Schedule           string `json:"schedule" validate:"required,datetime_coercible"`
	Reason             string `json:"reason"`
	Note               string `json:"note"`
	CancellationReason string `json:"cancellationReason"`
}

type CancelAppointmentSchema struct {
	PrimaryPhysician   string `json:"primaryPhysician" validate:"required,min=2"`
	Schedule           string `json:"schedule" validate:"required,datetime_coercible"`
	Reason             string `json:"reason"`
	Note               string `json:"note"`
	CancellationReason string `json:"cancellationReason" validate:"required,min=2,max=500"`
}

type CreateAppointment struct {
	UserID    string             `json:"userId"`
	PatientID string             `json:"patient"`
	Payload   AppointmentPayload `json:"appointment"`
}

type UpdateAppointment struct {
	AppointmentID   string             `json:"appointmentId"`
	UserID          string             `json:"userId"`
	Type            string             `json:"type"`
	Payload         AppointmentPayload `json:"appointment"`
	ExpectedVersion *int               `json:"expectedVersion,omitempty"`
}

type AppointmentNotification struct {
	Type               string `json:"type"`
	AppointmentID      string `json:"appointmentId"`
	UserID             string `json:"userId"`
	Patient            string `json:"patient"`
	PrimaryPhysician   string `json:"primaryPhysician"`
	Schedule           string `json:"schedule"`
	TimeSlot           string `json:"timeSlot"`
	Status             string `json:"status"`
	CancellationReason string `json:"cancellationReason,omitempty"`
}
