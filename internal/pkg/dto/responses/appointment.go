package responses

import "time"

type Appointment struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"userId"`
	Patient            string    `json:"patient"`
	PrimaryPhysician   string    `json:"primaryPhysician"`
	DoctorID           string    `json:"doctorId"`
	Schedule           time.Time `json:"schedule"`
	TimeSlot           string    `json:"timeSlot"`
	Reason             string    `json:"reason"`
	Note               string    `json:"note,omitempty"`
	Status             string    `json:"status"`
	CancellationReason string    `json:"cancellationReason,omitempty"`
	PaymentMethod      string    `json:"paymentMethod"`
	PaymentAmount      float64   `json:"paymentAmount"`
	TransactionID      string    `json:"transactionId,omitempty"`
	Version            int       `json:"version"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// AppointmentRow is an appointment with the fields the dashboard table renders.
type AppointmentRow struct {
	Appointment
	ScheduleDisplay string `json:"scheduleDisplay"`
	PaymentLabel    string `json:"paymentLabel"`
}

type AppointmentList struct {
	Documents      []AppointmentRow `json:"documents"`
	TotalCount     int              `json:"totalCount"`
	ScheduledCount int              `json:"scheduledCount"`
	PendingCount   int              `json:"pendingCount"`
	CancelledCount int              `json:"cancelledCount"`
}
