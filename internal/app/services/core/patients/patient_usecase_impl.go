package patients

import (
	"bytes"
	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/app/models"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type patientUsecase struct {
	UserRepository    contracts.UserRepository
	PatientRepository contracts.PatientRepository
	Storage           contracts.Storage
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

func NewPatientUsecase(
	userRepository contracts.UserRepository,
	patientRepository contracts.PatientRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		UserRepository:    userRepository,
		PatientRepository: patientRepository,
		Storage:           storage,
		InternalConfig:    internalConfig,
		Log:               logger,
	}
}

// CreateUser returns the already registered user when the email is taken.
func (uc *patientUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("patientUsecase.CreateUser error validating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))
	existingUser, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("patientUsecase.CreateUser error fetching user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		uc.Log.Info("patientUsecase.CreateUser returning existing user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, existingUser.ID.Hex()),
		)
		response := existingUser.ConvertIntoResponse()
		return &response, nil
	}

	user := &models.User{
		Name:      strings.TrimSpace(request.Name),
		Email:     email,
		Phone:     utils.CleanPhoneNumber(request.Phone),
		CreatedAt: time.Now(),
	}
	_, err = uc.UserRepository.CreateUser(ctx, user)
	if exceptions.IsConflictError(err) {
		return uc.findRegisteredUser(ctx, requestID, email, err)
	}
	if err != nil {
		uc.Log.Error("patientUsecase.CreateUser error inserting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := user.ConvertIntoResponse()
	uc.Log.Info("patientUsecase.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, response.ID),
	)
	return &response, nil
}

// findRegisteredUser resolves an insert that lost the race on the unique email index.
func (uc *patientUsecase) findRegisteredUser(ctx context.Context, requestID, email string, insertErr error) (*responses.User, error) {
	existingUser, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		uc.Log.Error("patientUsecase.CreateUser error fetching user after duplicate insert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser == nil {
		return nil, insertErr
	}

	uc.Log.Info("patientUsecase.CreateUser returning concurrently registered user",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, existingUser.ID.Hex()),
	)
	response := existingUser.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) GetUser(ctx context.Context, userID string) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.GetUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil, userID)
	}

	response := user.ConvertIntoResponse()
	return &response, nil
}

// RegisterPatient stores the patient profile of an existing user. An attached
// identification document is removed again when the insert fails.
func (uc *patientUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.RegisterPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, request.UserID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("patientUsecase.RegisterPatient error validating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	birthDate, err := utils.ParseSchedule(request.BirthDate)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	hasDocument := len(request.IdentificationDocument) > 0
	if hasDocument {
		maxSize := uc.InternalConfig.App.IdentificationDocMaxUploadSizeInMB * 1024 * 1024
		err = utils.ValidateDocument(request.IdentificationDocumentName, int64(len(request.IdentificationDocument)), maxSize)
		if err != nil {
			return nil, exceptions.ErrDocumentValidation(err)
		}
	}

	user, err := uc.UserRepository.FindByID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil, request.UserID)
	}

	existingPatient, err := uc.PatientRepository.FindByUserID(ctx, request.UserID)
	if err != nil {
		return nil, err
	}
	if existingPatient != nil {
		return nil, exceptions.ErrPatientAlreadyRegistered(nil, request.UserID)
	}

	patient := &models.Patient{
		UserID:                 request.UserID,
		Name:                   strings.TrimSpace(request.Name),
		Email:                  strings.ToLower(strings.TrimSpace(request.Email)),
		Phone:                  utils.CleanPhoneNumber(request.Phone),
		BirthDate:              birthDate,
		Gender:                 request.Gender,
		Address:                request.Address,
		Occupation:             request.Occupation,
		EmergencyContactName:   request.EmergencyContactName,
		EmergencyContactNumber: utils.CleanPhoneNumber(request.EmergencyContactNumber),
		PrimaryPhysician:       request.PrimaryPhysician,
		InsuranceProvider:      request.InsuranceProvider,
		InsurancePolicyNumber:  request.InsurancePolicyNumber,
		Allergies:              request.Allergies,
		CurrentMedication:      request.CurrentMedication,
		FamilyMedicalHistory:   request.FamilyMedicalHistory,
		PastMedicalHistory:     request.PastMedicalHistory,
		IdentificationType:     request.IdentificationType,
		IdentificationNumber:   request.IdentificationNumber,
		TreatmentConsent:       request.TreatmentConsent,
		DisclosureConsent:      request.DisclosureConsent,
		PrivacyConsent:         request.PrivacyConsent,
		CreatedAt:              time.Now(),
	}

	bucketName := uc.InternalConfig.Store.BucketID
	if hasDocument {
		documentID, err := uc.Storage.UploadObject(
			ctx,
			bucketName,
			utils.GenerateObjectName(request.IdentificationDocumentName),
			bytes.NewReader(request.IdentificationDocument),
			int64(len(request.IdentificationDocument)),
			http.DetectContentType(request.IdentificationDocument),
		)
		if err != nil {
			uc.Log.Error("patientUsecase.RegisterPatient error uploading identification document",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		patient.IdentificationDocumentID = documentID
		patient.IdentificationDocumentURL = uc.Storage.BuildObjectURL(bucketName, documentID)
	}

	_, err = uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.RegisterPatient error inserting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if hasDocument {
			uc.removeOrphanDocument(ctx, requestID, bucketName, patient.IdentificationDocumentID)
		}
		if exceptions.IsConflictError(err) {
			return nil, exceptions.ErrPatientAlreadyRegistered(err, request.UserID)
		}
		return nil, err
	}

	response := patient.ConvertIntoResponse()
	uc.Log.Info("patientUsecase.RegisterPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, response.ID),
	)
	return &response, nil
}

func (uc *patientUsecase) GetPatientByUserID(ctx context.Context, userID string) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.GetPatientByUserID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	patient, err := uc.PatientRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil, userID)
	}

	response := patient.ConvertIntoResponse()
	return &response, nil
}

func (uc *patientUsecase) removeOrphanDocument(ctx context.Context, requestID, bucketName, documentID string) {
	err := uc.Storage.DeleteObject(ctx, bucketName, documentID)
	if err != nil {
		uc.Log.Error("patientUsecase.removeOrphanDocument error deleting uploaded document",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, documentID),
			zap.Error(err),
		)
	}
}
