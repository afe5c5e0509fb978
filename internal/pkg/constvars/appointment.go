package constvars

// Appointment action types accepted by the schema selector.
const (
	AppointmentTypeCreate   = "create"
	AppointmentTypeSchedule = "schedule"
	AppointmentTypeCancel   = "cancel"
)

const (
	AppointmentStatusPending   = "pending"
	AppointmentStatusScheduled = "scheduled"
	AppointmentStatusCancelled = "cancelled"
)

const (
	PaymentMethodCash      = "cash"
	PaymentMethodEasypaisa = "easypaisa"
	PaymentMethodJazzcash  = "jazzcash"
	PaymentMethodBank      = "bank"
)

const (
	TimeSlotLayout        = "15:04"
	ScheduleDisplayLayout = "Jan 2, 2006, 3:04 PM"
)

var PaymentMethodLabels = map[string]string{
	PaymentMethodCash:      "Cash Payment",
	PaymentMethodEasypaisa: "EasyPaisa",
	PaymentMethodJazzcash:  "JazzCash",
	PaymentMethodBank:      "Bank Transfer",
}

const PaymentMethodUnknownLabel = "Unknown"

var AllowedGenders = []string{"Male", "Female", "Other"}

var AllowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp"}

var AllowedDocumentExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".pdf"}
