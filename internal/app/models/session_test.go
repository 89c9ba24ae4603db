package models

import (
	"context"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionFromContext(t *testing.T) {
	_, err := SessionFromContext(context.Background())
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusUnauthorized))

	want := &Session{SessionID: "abc"}
	got, err := SessionFromContext(ContextWithSession(context.Background(), want))
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestSessionIsExpired(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	assert.False(t, (&Session{}).IsExpired(now))
	assert.False(t, (&Session{ExpiresAt: now.Add(time.Minute)}).IsExpired(now))
	assert.True(t, (&Session{ExpiresAt: now.Add(-time.Minute)}).IsExpired(now))
}

func TestSessionSubject(t *testing.T) {
	assert.Equal(t, "abc", (&Session{SessionID: "abc"}).Subject())
	assert.Equal(t, "42", (&Session{SessionID: "abc", User: api_dto.User{ID: 42}}).Subject())
}
