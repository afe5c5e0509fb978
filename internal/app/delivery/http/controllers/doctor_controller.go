package controllers

import (
	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log            *zap.Logger
	DoctorUsecase  contracts.DoctorUsecase
	InternalConfig *config.InternalConfig
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, internalConfig *config.InternalConfig) *DoctorController {
	return &DoctorController{
		Log:            logger,
		DoctorUsecase:  doctorUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *DoctorController) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("DoctorController.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	maxSize := ctrl.InternalConfig.App.DoctorImageMaxUploadSizeInMB * 1024 * 1024
	utils.LimitMultipartBody(w, r, maxSize)
	request, err := utils.BuildCreateDoctorRequest(r, maxSize)
	if err != nil {
		ctrl.Log.Error("DoctorController.CreateDoctor error reading form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	result, err := ctrl.DoctorUsecase.CreateDoctor(ctx, request)
	if err != nil {
		logUsecaseError(ctrl.Log, "DoctorController.CreateDoctor error from usecase", requestID, err)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateDoctorSuccessMessage, result)
}

func (ctrl *DoctorController) GetDoctors(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("DoctorController.GetDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	result := ctrl.DoctorUsecase.GetDoctors(ctx)

	ctrl.Log.Info("DoctorController.GetDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorCountKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, result)
}

func (ctrl *DoctorController) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	ctrl.Log.Info("DoctorController.DeleteDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	err := utils.ValidateUrlParamID(doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamDoctorID))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	imageID := r.URL.Query().Get(constvars.URLQueryParamImageID)
	err = ctrl.DoctorUsecase.DeleteDoctor(ctx, doctorID, imageID)
	if err != nil {
		logUsecaseError(ctrl.Log, "DoctorController.DeleteDoctor error from usecase", requestID, err)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDoctorSuccessMessage, nil)
}
