package models

import (
	"context"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/exceptions"
	"strconv"
	"time"
)

// Session is stored in Redis under the session id carried by the portal JWT.
// Token is the dialysis API bearer token and never leaves the service.
type Session struct {
	SessionID string       `json:"session_id"`
	Token     string       `json:"token"`
	User      api_dto.User `json:"user"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// Subject identifies the patient for per-patient counters, falling back to
// the session id before /me has been loaded.
func (s *Session) Subject() string {
	if s.User.ID > 0 {
		return strconv.Itoa(s.User.ID)
	}
	return s.SessionID
}

func SessionFromContext(ctx context.Context) (*Session, error) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*Session)
	if !ok || session == nil {
		return nil, exceptions.ErrSessionMissing()
	}
	return session, nil
}

func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_DATA_KEY, session)
}
