package contracts

import (
	"carepulse-service/internal/pkg/dto/requests"
	"carepulse-service/internal/pkg/dto/responses"
	"context"
)

type AuthUsecase interface {
	CreateAdminSession(ctx context.Context, request *requests.AdminSession) (*responses.AdminSession, error)
	VerifyAdminToken(ctx context.Context, token string) (string, error)
}
