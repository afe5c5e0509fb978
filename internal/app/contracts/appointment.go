package contracts

import (
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	UpdateAppointment(ctx context.Context, appointmentID string, update models.AppointmentUpdate, expectedVersion *int) (*models.Appointment, error)
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment, doctors []responses.Doctor) (*responses.Appointment, error)
	UpdateAppointment(ctx context.Context, request *requests.UpdateAppointment) (*responses.Appointment, error)
	GetAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error)
	GetRecentAppointmentList(ctx context.Context) (*responses.AppointmentList, error)
}
