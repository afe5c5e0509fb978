package appointments

import (
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

var statusByAppointmentType = map[string]string{
	constvars.AppointmentTypeSchedule: constvars.AppointmentStatusScheduled,
	constvars.AppointmentTypeCancel:   constvars.AppointmentStatusCancelled,
}

var eventByAppointmentType = map[string]string{
	constvars.AppointmentTypeCreate:   constvars.NotificationEventAppointmentCreated,
	constvars.AppointmentTypeSchedule: constvars.NotificationEventAppointmentScheduled,
	constvars.AppointmentTypeCancel:   constvars.NotificationEventAppointmentCancelled,
}

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	DoctorUsecase         contracts.DoctorUsecase
	NotificationPublisher contracts.NotificationPublisher
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	doctorUsecase contracts.DoctorUsecase,
	notificationPublisher contracts.NotificationPublisher,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		DoctorUsecase:         doctorUsecase,
		NotificationPublisher: notificationPublisher,
		Log:                   logger,
	}
}

// CreateAppointment books a pending appointment. A nil doctors list is loaded
// from the doctor registry.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment, doctors []responses.Doctor) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	err := utils.GetAppointmentSchema(constvars.AppointmentTypeCreate)(request.Payload)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error validating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if missing := missingOwnerFields(request); len(missing) > 0 {
		return nil, exceptions.ErrMissingRequiredFields(nil, missing...)
	}

	schedule, err := utils.ParseSchedule(request.Payload.Schedule)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	if doctors == nil {
		doctors = uc.DoctorUsecase.GetDoctors(ctx)
	}
	doctor := findDoctorByName(doctors, request.Payload.PrimaryPhysician)
	if doctor == nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment doctor not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDataKey, request.Payload.PrimaryPhysician),
		)
		return nil, exceptions.ErrDoctorNotFound(nil, request.Payload.PrimaryPhysician)
	}

	appointment := &models.Appointment{
		UserID:           request.UserID,
		Patient:          request.PatientID,
		PrimaryPhysician: doctor.Name,
		DoctorID:         doctor.ID,
		Schedule:         schedule,
		TimeSlot:         utils.FormatTimeSlot(schedule),
		Reason:           request.Payload.Reason,
		Note:             request.Payload.Note,
		Status:           constvars.AppointmentStatusPending,
		PaymentMethod:    request.Payload.PaymentMethod,
		PaymentAmount:    *request.Payload.PaymentAmount,
		TransactionID:    request.Payload.TransactionID,
		Version:          1,
	}
	appointment.SetCreatedAtUpdatedAt()

	_, err = uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error inserting appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishEvent(ctx, requestID, constvars.AppointmentTypeCreate, appointment)

	response := appointment.ConvertIntoResponse()
	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.ID),
	)
	return &response, nil
}

// UpdateAppointment schedules or cancels an appointment. Without an expected
// version the last write wins.
func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
		zap.String(constvars.LoggingAppointmentType, request.Type),
	)

	status, ok := statusByAppointmentType[request.Type]
	if !ok {
		return nil, exceptions.ErrInvalidAppointmentType(nil, request.Type)
	}

	err := utils.GetAppointmentSchema(request.Type)(request.Payload)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointment error validating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	schedule, err := utils.ParseSchedule(request.Payload.Schedule)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.AppointmentRepository.FindByID(ctx, request.AppointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointment error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil, request.AppointmentID)
	}

	update := uc.buildAppointmentUpdate(ctx, request, status, schedule)
	updated, err := uc.AppointmentRepository.UpdateAppointment(ctx, request.AppointmentID, update, request.ExpectedVersion)
	if err != nil {
		uc.Log.Error("appointmentUsecase.UpdateAppointment error updating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if updated == nil {
		if request.ExpectedVersion != nil {
			uc.Log.Warn("appointmentUsecase.UpdateAppointment version conflict",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
				zap.Int(constvars.LoggingExpectedVersion, *request.ExpectedVersion),
			)
			return nil, exceptions.ErrAppointmentVersionConflict(nil, request.AppointmentID)
		}
		return nil, exceptions.ErrAppointmentNotFound(nil, request.AppointmentID)
	}

	uc.publishEvent(ctx, requestID, request.Type, updated)

	response := updated.ConvertIntoResponse()
	uc.Log.Info("appointmentUsecase.UpdateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.ID),
		zap.String(constvars.LoggingAppointmentStatus, response.Status),
	)
	return &response, nil
}

func (uc *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.GetAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.GetAppointment error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil, appointmentID)
	}

	response := appointment.ConvertIntoResponse()
	return &response, nil
}

// GetRecentAppointmentList returns every appointment, newest first, with
// per-status counts.
func (uc *appointmentUsecase) GetRecentAppointmentList(ctx context.Context) (*responses.AppointmentList, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.GetRecentAppointmentList called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments, err := uc.AppointmentRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("appointmentUsecase.GetRecentAppointmentList error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	list := &responses.AppointmentList{
		Documents:  make([]responses.AppointmentRow, 0, len(appointments)),
		TotalCount: len(appointments),
	}
	for _, eachAppointment := range appointments {
		switch eachAppointment.Status {
		case constvars.AppointmentStatusScheduled:
			list.ScheduledCount++
		case constvars.AppointmentStatusPending:
			list.PendingCount++
		case constvars.AppointmentStatusCancelled:
			list.CancelledCount++
		}
		list.Documents = append(list.Documents, buildAppointmentRow(eachAppointment))
	}

	uc.Log.Info("appointmentUsecase.GetRecentAppointmentList succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCount, list.TotalCount),
	)
	return list, nil
}

func (uc *appointmentUsecase) buildAppointmentUpdate(ctx context.Context, request *requests.UpdateAppointment, status string, schedule time.Time) models.AppointmentUpdate {
	timeSlot := utils.FormatTimeSlot(schedule)
	update := models.AppointmentUpdate{
		PrimaryPhysician: &request.Payload.PrimaryPhysician,
		Schedule:         &schedule,
		TimeSlot:         &timeSlot,
		Status:           &status,
		UpdatedAt:        time.Now(),
	}
	if request.Payload.Reason != "" {
		update.Reason = &request.Payload.Reason
	}
	if request.Payload.Note != "" {
		update.Note = &request.Payload.Note
	}
	if request.Type == constvars.AppointmentTypeCancel {
		update.CancellationReason = &request.Payload.CancellationReason
	}

	doctor := findDoctorByName(uc.DoctorUsecase.GetDoctors(ctx), request.Payload.PrimaryPhysician)
	if doctor != nil {
		update.DoctorID = &doctor.ID
	}
	return update
}

func (uc *appointmentUsecase) publishEvent(ctx context.Context, requestID, appointmentType string, appointment *models.Appointment) {
	event := &requests.AppointmentNotification{
		Type:               eventByAppointmentType[appointmentType],
		AppointmentID:      appointment.ID.Hex(),
		UserID:             appointment.UserID,
		Patient:            appointment.Patient,
		PrimaryPhysician:   appointment.PrimaryPhysician,
		Schedule:           utils.FormatScheduleDisplay(appointment.Schedule),
		TimeSlot:           appointment.TimeSlot,
		Status:             appointment.Status,
		CancellationReason: appointment.CancellationReason,
	}

	err := uc.NotificationPublisher.PublishAppointmentEvent(ctx, event)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.publishEvent error publishing notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
			zap.Error(err),
		)
	}
}

func buildAppointmentRow(appointment models.Appointment) responses.AppointmentRow {
	label, ok := constvars.PaymentMethodLabels[appointment.PaymentMethod]
	if !ok {
		label = constvars.PaymentMethodUnknownLabel
	}
	return responses.AppointmentRow{
		Appointment:     appointment.ConvertIntoResponse(),
		ScheduleDisplay: utils.FormatScheduleDisplay(appointment.Schedule),
		PaymentLabel:    label,
	}
}

func findDoctorByName(doctors []responses.Doctor, name string) *responses.Doctor {
	for i := range doctors {
		if doctors[i].Name == name {
			return &doctors[i]
		}
	}
	return nil
}

func missingOwnerFields(request *requests.CreateAppointment) []string {
	var missing []string
	if request.UserID == "" {
		missing = append(missing, "userId")
	}
	if request.PatientID == "" {
		missing = append(missing, "patient")
	}
	return missing
}
