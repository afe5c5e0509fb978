package contracts

import (
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"context"
)

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
	DeleteByID(ctx context.Context, doctorID string) (bool, error)
}

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error)
	GetDoctors(ctx context.Context) []responses.Doctor
	DeleteDoctor(ctx context.Context, doctorID, imageID string) error
}
