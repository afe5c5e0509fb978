package routers

import (
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) CreateAdminSession(ctx context.Context, request *requests.AdminSession) (*responses.AdminSession, error) {
	args := m.Called(ctx, request)
	session, _ := args.Get(0).(*responses.AdminSession)
	return session, args.Error(1)
}

func (m *MockAuthUsecase) VerifyAdminToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

type MockDoctorUsecase struct {
	mock.Mock
}

func (m *MockDoctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	args := m.Called(ctx, request)
	doctor, _ := args.Get(0).(*responses.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorUsecase) GetDoctors(ctx context.Context) []responses.Doctor {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]responses.Doctor)
	return doctors
}

func (m *MockDoctorUsecase) DeleteDoctor(ctx context.Context, doctorID, imageID string) error {
	args := m.Called(ctx, doctorID, imageID)
	return args.Error(0)
}

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) CreateAppointment(ctx context.Context, request *requests.CreateAppointment, doctors []responses.Doctor) (*responses.Appointment, error) {
	args := m.Called(ctx, request, doctors)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) UpdateAppointment(ctx context.Context, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) GetAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *MockAppointmentUsecase) GetRecentAppointmentList(ctx context.Context) (*responses.AppointmentList, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).(*responses.AppointmentList)
	return list, args.Error(1)
}

type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.User, error) {
	args := m.Called(ctx, request)
	user, _ := args.Get(0).(*responses.User)
	return user, args.Error(1)
}

func (m *MockPatientUsecase) GetUser(ctx context.Context, userID string) (*responses.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*responses.User)
	return user, args.Error(1)
}

func (m *MockPatientUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Patient, error) {
	args := m.Called(ctx, request)
	patient, _ := args.Get(0).(*responses.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientUsecase) GetPatientByUserID(ctx context.Context, userID string) (*responses.Patient, error) {
	args := m.Called(ctx, userID)
	patient, _ := args.Get(0).(*responses.Patient)
	return patient, args.Error(1)
}
