package mocks

import (
	"context"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/dto/requests"
	"dialysis-portal-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type SessionManager struct{ mock.Mock }

func (m *SessionManager) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Login)
	return response, args.Error(1)
}

func (m *SessionManager) Register(ctx context.Context, request *requests.Register) (*responses.Login, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*responses.Login)
	return response, args.Error(1)
}

func (m *SessionManager) Logout(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionManager) Resolve(ctx context.Context, portalToken string) (*models.Session, error) {
	args := m.Called(ctx, portalToken)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *SessionManager) LoadUser(ctx context.Context, session *models.Session) (*api_dto.User, error) {
	args := m.Called(ctx, session)
	user, _ := args.Get(0).(*api_dto.User)
	return user, args.Error(1)
}

func (m *SessionManager) StoreUser(ctx context.Context, session *models.Session, user api_dto.User) error {
	return m.Called(ctx, session, user).Error(0)
}

func (m *SessionManager) InvalidateAlerts(ctx context.Context, session *models.Session) {
	m.Called(ctx, session)
}
