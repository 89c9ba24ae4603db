package alerts

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/contracts/mocks"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/app/services/core/session"
	sharedredis "dialysis-portal-service/internal/app/services/shared/redis"
	"dialysis-portal-service/internal/pkg/api_dto"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testSession = &models.Session{SessionID: "s1", Token: "tok"}

func newTestAlertUsecase(t *testing.T) (*alertUsecase, *mocks.AlertAPIClient, *mocks.SessionManager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	api := new(mocks.AlertAPIClient)
	sessions := new(mocks.SessionManager)
	return &alertUsecase{
		AlertAPIClient:  api,
		RedisRepository: sharedredis.NewRedisRepository(client),
		SessionManager:  sessions,
		InternalConfig:  &config.InternalConfig{Cache: config.AppCache{AlertsTTL: time.Minute}},
		Log:             zap.NewNop(),
		now:             func() time.Time { return time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC) },
	}, api, sessions, mr
}

func TestAlertFindAllCountsUnreadAndCaches(t *testing.T) {
	uc, api, _, mr := newTestAlertUsecase(t)
	api.On("FindAll", mock.Anything, "tok").Return([]api_dto.Alert{
		{ID: 1, IsRead: false},
		{ID: 2, IsRead: true},
		{ID: 3, IsRead: false},
	}, nil).Once()

	first, err := uc.FindAll(context.Background(), testSession)
	require.NoError(t, err)
	assert.Equal(t, 2, first.UnreadCount)
	assert.Equal(t, time.Minute, mr.TTL(session.AlertsKey(testSession)))

	second, err := uc.FindAll(context.Background(), testSession)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	api.AssertNumberOfCalls(t, "FindAll", 1)
}

func TestAlertFindNotificationsLabels(t *testing.T) {
	uc, api, _, _ := newTestAlertUsecase(t)
	api.On("FindNotifications", mock.Anything, "tok").Return([]api_dto.Notification{
		{ID: 1, HumanTime: "بعد ساعة"},
		{ID: 2, Date: "2025-06-02", Time: "10:30:00"},
	}, nil)

	notifications, err := uc.FindNotifications(context.Background(), testSession)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "بعد ساعة", notifications[0].Label)
	assert.Equal(t, "بعد ٢ ساعات و٣٠ دقيقة", notifications[1].Label)
}

func TestAlertMarkAsReadInvalidatesCache(t *testing.T) {
	uc, api, sessions, _ := newTestAlertUsecase(t)
	api.On("MarkAsRead", mock.Anything, "tok", 3).Return(nil)
	sessions.On("InvalidateAlerts", mock.Anything, testSession).Return().Once()

	require.NoError(t, uc.MarkAsRead(context.Background(), testSession, 3))
	sessions.AssertExpectations(t)
}

func TestAlertDeleteFailureKeepsCache(t *testing.T) {
	uc, api, sessions, _ := newTestAlertUsecase(t)
	api.On("Delete", mock.Anything, "tok", 3).Return(errors.New("boom"))

	require.Error(t, uc.Delete(context.Background(), testSession, 3))
	sessions.AssertNotCalled(t, "InvalidateAlerts", mock.Anything, mock.Anything)
}
