package utils

import (
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/exceptions"
)

// AppointmentSchema validates a candidate appointment for one action type.
type AppointmentSchema func(payload requests.AppointmentPayload) error

// GetAppointmentSchema selects the schema for an action type. Anything other
// than create or cancel is validated as a schedule action.
func GetAppointmentSchema(appointmentType string) AppointmentSchema {
	switch appointmentType {
	case constvars.AppointmentTypeCreate:
		return validateCreateAppointment
	case constvars.AppointmentTypeCancel:
		return validateCancelAppointment
	default:
		return validateScheduleAppointment
	}
}

func validateCreateAppointment(payload requests.AppointmentPayload) error {
	schema := requests.CreateAppointmentSchema{
		PrimaryPhysician:   payload.PrimaryPhysician,
		Schedule:           payload.Schedule,
		Reason:             payload.Reason,
		Note:               payload.Note,
		CancellationReason: payload.CancellationReason,
		PaymentMethod:      payload.PaymentMethod,
		PaymentAmount:      payload.PaymentAmount,
		TransactionID:      payload.TransactionID,
	}
	return validateSchema(schema)
}

func validateScheduleAppointment(payload requests.AppointmentPayload) error {
	schema := requests.ScheduleAppointmentSchema{
		PrimaryPhysician:   payload.PrimaryPhysician,
		Schedule:           payload.Schedule,
		Reason:             payload.Reason,
		Note:               payload.Note,
		CancellationReason: payload.CancellationReason,
	}
	return validateSchema(schema)
}

func validateCancelAppointment(payload requests.AppointmentPayload) error {
	schema := requests.CancelAppointmentSchema{
		PrimaryPhysician:   payload.PrimaryPhysician,
		Schedule:           payload.Schedule,
		Reason:             payload.Reason,
		Note:               payload.Note,
		CancellationReason: payload.CancellationReason,
	}
	return validateSchema(schema)
}

func validateSchema(schema interface{}) error {
	if err := ValidateStruct(schema); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
