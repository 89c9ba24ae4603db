package session

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/dto/requests"
	"dialysis-portal-service/internal/pkg/dto/responses"
	"dialysis-portal-service/internal/pkg/exceptions"
	"dialysis-portal-service/internal/pkg/utils"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionManager struct {
	AuthAPIClient   contracts.AuthAPIClient
	RedisRepository contracts.RedisRepository
	JWTManager      contracts.JWTManager
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	now             func() time.Time
}

var (
	sessionManagerInstance contracts.SessionManager
	onceSessionManager     sync.Once
)

func NewSessionManager(
	authAPIClient contracts.AuthAPIClient,
	redisRepository contracts.RedisRepository,
	jwtManager contracts.JWTManager,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SessionManager {
	onceSessionManager.Do(func() {
		sessionManagerInstance = &sessionManager{
			AuthAPIClient:   authAPIClient,
			RedisRepository: redisRepository,
			JWTManager:      jwtManager,
			InternalConfig:  internalConfig,
			Log:             logger,
			now:             time.Now,
		}
	})
	return sessionManagerInstance
}

func (m *sessionManager) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("sessionManager.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	token, err := m.AuthAPIClient.Login(ctx, &api_dto.LoginRequest{
		Phone:    request.Phone,
		Password: request.Password,
	})
	if err != nil {
		m.Log.Error("sessionManager.Login error from dialysis API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return m.open(ctx, token.Token)
}

func (m *sessionManager) Register(ctx context.Context, request *requests.Register) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("sessionManager.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.Password != request.PasswordConfirmation {
		return nil, exceptions.ErrPasswordDoNotMatch(nil)
	}

	token, err := m.AuthAPIClient.Register(ctx, &api_dto.RegisterRequest{
		NationalID:           request.NationalID,
		Name:                 request.Name,
		Phone:                request.Phone,
		Password:             request.Password,
		PasswordConfirmation: request.PasswordConfirmation,
	})
	if err != nil {
		m.Log.Error("sessionManager.Register error from dialysis API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return m.open(ctx, token.Token)
}

// open loads the patient behind an upstream token and stores a new session.
func (m *sessionManager) open(ctx context.Context, upstreamToken string) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	user, err := m.AuthAPIClient.Me(ctx, upstreamToken)
	if err != nil {
		return nil, err
	}

	sessionID := utils.GenerateSessionID()
	portalToken, claims, err := m.JWTManager.Generate(sessionID)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		SessionID: sessionID,
		Token:     upstreamToken,
		User:      *user,
		CreatedAt: m.now(),
		ExpiresAt: claims.ExpiresAt.Time,
	}
	err = m.save(ctx, session)
	if err != nil {
		return nil, err
	}
	m.InvalidateAlerts(ctx, session)

	m.Log.Info("sessionManager.open session created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.Int(constvars.LoggingUserIDKey, user.ID),
	)

	return &responses.Login{
		Token:     portalToken,
		ExpiresAt: session.ExpiresAt,
		User:      utils.MapUserToResponse(session.User),
	}, nil
}

func (m *sessionManager) Resolve(ctx context.Context, portalToken string) (*models.Session, error) {
	claims, err := m.JWTManager.Parse(portalToken)
	if err != nil {
		return nil, err
	}

	data, err := m.RedisRepository.Get(ctx, sessionKey(claims.SessionID))
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrSessionExpired(fmt.Errorf("session %s not found", claims.SessionID))
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(data), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	if session.IsExpired(m.now()) {
		return nil, exceptions.ErrSessionExpired(fmt.Errorf("session %s expired", claims.SessionID))
	}
	return session, nil
}

// LoadUser refreshes the patient from /me. A rejected upstream token ends
// the session.
func (m *sessionManager) LoadUser(ctx context.Context, session *models.Session) (*api_dto.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("sessionManager.LoadUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	user, err := m.AuthAPIClient.Me(ctx, session.Token)
	if err != nil {
		if exceptions.IsStatus(err, constvars.StatusUnauthorized) {
			m.clear(ctx, session)
		}
		return nil, err
	}

	err = m.StoreUser(ctx, session, *user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (m *sessionManager) StoreUser(ctx context.Context, session *models.Session, user api_dto.User) error {
	session.User = user
	return m.save(ctx, session)
}

// Logout ends the upstream token as well, ignoring upstream failures.
func (m *sessionManager) Logout(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("sessionManager.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)

	err := m.AuthAPIClient.Logout(ctx, session.Token)
	if err != nil {
		m.Log.Warn("sessionManager.Logout dialysis API logout failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return m.RedisRepository.Delete(ctx, sessionKey(session.SessionID), AlertsKey(session), NotificationsKey(session))
}

func (m *sessionManager) InvalidateAlerts(ctx context.Context, session *models.Session) {
	err := m.RedisRepository.Delete(ctx, AlertsKey(session), NotificationsKey(session))
	if err != nil {
		requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		m.Log.Warn("sessionManager.InvalidateAlerts failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
	}
}

func (m *sessionManager) save(ctx context.Context, session *models.Session) error {
	ttl := m.InternalConfig.Session.TTL
	if !session.ExpiresAt.IsZero() {
		remaining := session.ExpiresAt.Sub(m.now())
		if ttl <= 0 || remaining < ttl {
			ttl = remaining
		}
	}
	if ttl <= 0 {
		return exceptions.ErrSessionExpired(fmt.Errorf("session %s has no time left", session.SessionID))
	}
	return m.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
}

func (m *sessionManager) clear(ctx context.Context, session *models.Session) {
	err := m.RedisRepository.Delete(ctx, sessionKey(session.SessionID), AlertsKey(session), NotificationsKey(session))
	if err != nil {
		m.Log.Warn("sessionManager.clear failed",
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
	}
}

func sessionKey(sessionID string) string {
	return constvars.CacheKeySessionPrefix + sessionID
}

// AlertsKey is the cache key of a session's alert list.
func AlertsKey(session *models.Session) string {
	return fmt.Sprintf(constvars.CacheKeyAlertsFormat, session.SessionID)
}

// NotificationsKey is the cache key of a session's notification list.
func NotificationsKey(session *models.Session) string {
	return fmt.Sprintf(constvars.CacheKeyNotificationFormat, session.SessionID)
}
