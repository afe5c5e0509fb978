package constvars

const (
	NotificationEventAppointmentCreated   = "appointment.created"
	NotificationEventAppointmentScheduled = "appointment.scheduled"
	NotificationEventAppointmentCancelled = "appointment.cancelled"
)
