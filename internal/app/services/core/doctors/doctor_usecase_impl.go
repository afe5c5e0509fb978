package doctors

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
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	RedisRepository  contracts.RedisRepository
	Storage          contracts.Storage
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	redisRepository contracts.RedisRepository,
	storage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorRepository,
		RedisRepository:  redisRepository,
		Storage:          storage,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error validating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrMissingRequiredFields(err, missingDoctorFields(request)...)
	}

	maxSize := uc.InternalConfig.App.DoctorImageMaxUploadSizeInMB * 1024 * 1024
	err = utils.ValidateImage(request.ImageName, int64(len(request.Image)), maxSize)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error validating image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrImageValidation(err)
	}

	bucketName := uc.InternalConfig.Store.BucketID
	objectName := utils.GenerateObjectName(request.ImageName)
	imageID, err := uc.Storage.UploadObject(
		ctx,
		bucketName,
		objectName,
		bytes.NewReader(request.Image),
		int64(len(request.Image)),
		http.DetectContentType(request.Image),
	)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error uploading image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucketName),
			zap.Error(err),
		)
		return nil, err
	}

	doctor := &models.Doctor{
		Name:       request.Name,
		Speciality: request.Speciality,
		Image:      uc.Storage.BuildObjectURL(bucketName, imageID),
		ImageID:    imageID,
		CreatedAt:  time.Now(),
	}

	_, err = uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error inserting doctor, removing uploaded image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, imageID),
			zap.Error(err),
		)
		uc.removeOrphanImage(ctx, requestID, bucketName, imageID)
		return nil, err
	}

	uc.invalidateDoctorCache(ctx, requestID)

	response := doctor.ConvertIntoResponse()
	uc.Log.Info("doctorUsecase.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, response.ID),
	)
	return &response, nil
}

// GetDoctors never fails. Store errors are logged and produce an empty list.
func (uc *doctorUsecase) GetDoctors(ctx context.Context) []responses.Doctor {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.GetDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if cached, ok := uc.getCachedDoctors(ctx, requestID); ok {
		uc.Log.Info("doctorUsecase.GetDoctors served from cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingDoctorCountKey, len(cached)),
		)
		return cached
	}

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("doctorUsecase.GetDoctors error fetching data from MongoDB, returning empty list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return []responses.Doctor{}
	}

	response := make([]responses.Doctor, len(doctors))
	for i, eachDoctor := range doctors {
		response[i] = eachDoctor.ConvertIntoResponse()
	}

	exp := time.Duration(uc.InternalConfig.App.DoctorCacheExpTimeInMinute) * time.Minute
	err = uc.RedisRepository.Set(ctx, constvars.RedisKeyDoctorList, response, exp)
	if err != nil {
		uc.Log.Warn("doctorUsecase.GetDoctors error caching data in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("doctorUsecase.GetDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorCountKey, len(response)),
	)
	return response
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID, imageID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.DeleteDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if imageID == "" {
		return exceptions.ErrMissingRequiredFields(nil, constvars.URLQueryParamImageID)
	}

	bucketName := uc.InternalConfig.Store.BucketID
	err := uc.Storage.DeleteObject(ctx, bucketName, imageID)
	if err != nil {
		uc.Log.Error("doctorUsecase.DeleteDoctor error deleting image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingObjectNameKey, imageID),
			zap.Error(err),
		)
		return err
	}

	deleted, err := uc.DoctorRepository.DeleteByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.DeleteDoctor error deleting doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return err
	}
	if !deleted {
		return exceptions.ErrDoctorDocumentNotFound(nil, doctorID)
	}

	uc.invalidateDoctorCache(ctx, requestID)

	uc.Log.Info("doctorUsecase.DeleteDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)
	return nil
}

func (uc *doctorUsecase) getCachedDoctors(ctx context.Context, requestID string) ([]responses.Doctor, bool) {
	cachedData, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyDoctorList)
	if err != nil {
		uc.Log.Warn("doctorUsecase.getCachedDoctors error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, false
	}
	if cachedData == "" {
		return nil, false
	}

	var doctors []responses.Doctor
	err = json.Unmarshal([]byte(cachedData), &doctors)
	if err != nil {
		uc.Log.Warn("doctorUsecase.getCachedDoctors error parsing JSON from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, false
	}
	return doctors, true
}

func (uc *doctorUsecase) invalidateDoctorCache(ctx context.Context, requestID string) {
	err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyDoctorList)
	if err != nil {
		uc.Log.Warn("doctorUsecase.invalidateDoctorCache error deleting cached doctor list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, constvars.RedisKeyDoctorList),
			zap.Error(err),
		)
	}
}

func (uc *doctorUsecase) removeOrphanImage(ctx context.Context, requestID, bucketName, imageID string) {
	err := uc.Storage.DeleteObject(ctx, bucketName, imageID)
	if err != nil {
		uc.Log.Error("doctorUsecase.removeOrphanImage error deleting uploaded image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, bucketName),
			zap.String(constvars.LoggingObjectNameKey, imageID),
			zap.Error(err),
		)
	}
}

func missingDoctorFields(request *requests.CreateDoctor) []string {
	var missing []string
	if request.Name == "" {
		missing = append(missing, constvars.FormFieldName)
	}
	if request.Speciality == "" {
		missing = append(missing, constvars.FormFieldSpeciality)
	}
	if len(request.Image) == 0 || request.ImageName == "" {
		missing = append(missing, constvars.FormFieldImage)
	}
	return missing
}
