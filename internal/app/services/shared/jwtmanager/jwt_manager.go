package jwtmanager

import (
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/pkg/exceptions"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const issuer = "dialysis-portal-service"

// JWTManager signs and verifies the portal session token. The token only
// carries the session id, the session itself lives in Redis.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(cfg *config.InternalConfig) contracts.JWTManager {
	return &JWTManager{
		secret: []byte(cfg.JWT.Secret),
		ttl:    time.Duration(cfg.JWT.ExpTimeInHour) * time.Hour,
		now:    time.Now,
	}
}

func (j *JWTManager) Generate(sessionID string) (string, *models.PortalClaims, error) {
	if strings.TrimSpace(sessionID) == "" {
		return "", nil, exceptions.ErrSignToken(fmt.Errorf("session id is required"))
	}

	now := j.now().UTC()
	claims := &models.PortalClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", nil, exceptions.ErrSignToken(err)
	}
	return signed, claims, nil
}

func (j *JWTManager) Parse(token string) (*models.PortalClaims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	claims := new(models.PortalClaims)
	parser := jwt.Parser{ValidMethods: []string{jwt.SigningMethodHS256.Alg()}}
	parsed, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, exceptions.ErrSessionExpired(err)
		}
		return nil, exceptions.ErrTokenInvalid(err)
	}
	if !parsed.Valid || claims.SessionID == "" || claims.Issuer != issuer {
		return nil, exceptions.ErrTokenInvalid(fmt.Errorf("token carries no session"))
	}
	return claims, nil
}
