package controllers

import (
	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) CreateAdminSession(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AuthController.CreateAdminSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.AdminSession)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig.App.RequestTimeoutInSeconds)
	defer cancel()

	result, err := ctrl.AuthUsecase.CreateAdminSession(ctx, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AdminSessionSuccessMessage, result)
}
