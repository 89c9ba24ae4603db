package contracts

import (
	"context"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/dto/requests"
	"dialysis-portal-service/internal/pkg/dto/responses"
)

type SessionManager interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Register(ctx context.Context, request *requests.Register) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error
	Resolve(ctx context.Context, portalToken string) (*models.Session, error)
	LoadUser(ctx context.Context, session *models.Session) (*api_dto.User, error)
	StoreUser(ctx context.Context, session *models.Session, user api_dto.User) error
	InvalidateAlerts(ctx context.Context, session *models.Session)
}

type JWTManager interface {
	Generate(sessionID string) (token string, claims *models.PortalClaims, err error)
	Parse(token string) (*models.PortalClaims, error)
}
