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

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
	InternalConfig     *config.InternalConfig
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase, internalConfig *config.InternalConfig) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateAppointment)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, request, nil)
	if err != nil {
		logUsecaseError(ctrl.Log, "AppointmentController.CreateAppointment error from usecase", requestID, err)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, result)
}

func (ctrl *AppointmentController) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	ctrl.Log.Info("AppointmentController.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := utils.ValidateUrlParamID(appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamAppointmentID))
		return
	}

	request := new(requests.UpdateAppointment)
	err = json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.AppointmentID = appointmentID

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.UpdateAppointment(ctx, request)
	if err != nil {
		logUsecaseError(ctrl.Log, "AppointmentController.UpdateAppointment error from usecase", requestID, err)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentSuccessMessage, result)
}

func (ctrl *AppointmentController) GetAppointment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)

	err := utils.ValidateUrlParamID(appointmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamAppointmentID))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.GetAppointment(ctx, appointmentID)
	if err != nil {
		logUsecaseError(ctrl.Log, "AppointmentController.GetAppointment error from usecase", requestID, err)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, result)
}

func (ctrl *AppointmentController) GetRecentAppointmentList(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentController.GetRecentAppointmentList called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.GetRecentAppointmentList(ctx)
	if err != nil {
		logUsecaseError(ctrl.Log, "AppointmentController.GetRecentAppointmentList error from usecase", requestID, err)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentListSuccessMessage, result)
}
