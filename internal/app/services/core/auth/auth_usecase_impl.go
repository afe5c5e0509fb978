package auth

import (
	"carepulse-service/internal/app/config"
	"carepulse-service/internal/app/contracts"
	"carepulse-service/internal/app/services/shared/jwtmanager"
	"carepulse-service/internal/pkg/constvars"
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	JWTManager     *jwtmanager.JWTManager
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(
	jwtManager *jwtmanager.JWTManager,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		JWTManager:     jwtManager,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

// CreateAdminSession exchanges the admin passkey for a signed session token.
func (uc *authUsecase) CreateAdminSession(ctx context.Context, request *requests.AdminSession) (*responses.AdminSession, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.CreateAdminSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(uc.InternalConfig.Admin.PasskeyHash), []byte(request.Passkey))
	if err != nil {
		uc.Log.Warn("authUsecase.CreateAdminSession passkey mismatch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidAdminPasskey(err)
	}

	output, err := uc.JWTManager.CreateToken(constvars.CarePulseAdminSubject, constvars.CarePulseRoleAdmin)
	if err != nil {
		uc.Log.Error("authUsecase.CreateAdminSession error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.CreateAdminSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.AdminSession{
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
	}, nil
}

// VerifyAdminToken returns the token subject when it is a live admin token.
func (uc *authUsecase) VerifyAdminToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", exceptions.ErrTokenMissing(nil)
	}

	claims, err := uc.JWTManager.VerifyToken(token)
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}
	if claims.Role != constvars.CarePulseRoleAdmin {
		return "", exceptions.ErrTokenInvalidOrExpired(fmt.Errorf("role %q is not allowed", claims.Role))
	}
	return claims.Subject, nil
}
