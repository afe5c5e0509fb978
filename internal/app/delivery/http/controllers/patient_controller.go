package controllers

import (
	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	InternalConfig *config.InternalConfig
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PatientController) CreateUser(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PatientController.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateUser)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	result, err := ctrl.PatientUsecase.CreateUser(ctx, request)
	if err != nil {
		logUsecaseError(ctrl.Log, "PatientController.CreateUser error from usecase", requestID, err)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateUserSuccessMessage, result)
}

func (ctrl *PatientController) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, constvars.URLParamUserID)
	err := utils.ValidateUrlParamID(userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamUserID))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	result, err := ctrl.PatientUsecase.GetUser(ctx, userID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUserSuccessMessage, result)
}

func (ctrl *PatientController) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PatientController.RegisterPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	maxSize := ctrl.InternalConfig.App.IdentificationDocMaxUploadSizeInMB * 1024 * 1024
	utils.LimitMultipartBody(w, r, maxSize)
	request, err := utils.BuildRegisterPatientRequest(r, maxSize)
	if err != nil {
		ctrl.Log.Error("PatientController.RegisterPatient error reading form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	result, err := ctrl.PatientUsecase.RegisterPatient(ctx, request)
	if err != nil {
		logUsecaseError(ctrl.Log, "PatientController.RegisterPatient error from usecase", requestID, err)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterPatientSuccessMessage, result)
}

func (ctrl *PatientController) GetPatientByUserID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, constvars.URLParamUserID)
	err := utils.ValidateUrlParamID(userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamUserID))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	result, err := ctrl.PatientUsecase.GetPatientByUserID(ctx, userID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPatientSuccessMessage, result)
}
