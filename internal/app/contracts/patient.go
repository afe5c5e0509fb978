package contracts

import (
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"context"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindByUserID(ctx context.Context, userID string) (*models.Patient, error)
}

type PatientUsecase interface {
	CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.User, error)
	GetUser(ctx context.Context, userID string) (*responses.User, error)
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Patient, error)
	GetPatientByUserID(ctx context.Context, userID string) (*responses.Patient, error)
}
