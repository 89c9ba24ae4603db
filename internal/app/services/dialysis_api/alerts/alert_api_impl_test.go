package dialysis_alerts

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/services/dialysis_api/httpclient"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAlertAPIClient(t *testing.T) {
	var calls []string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/alerts", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.Write([]byte(`[{"id":1,"message":"موعدك غداً","is_read":false}]`))
	})
	mux.HandleFunc("/api/notifications", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":4,"date":"2025-06-03","time":"10:00:00"}]`))
	})
	mux.HandleFunc("/api/alerts/1/read", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
	})
	mux.HandleFunc("/api/alerts/read-all", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
	})
	mux.HandleFunc("/api/alerts/1", func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := &config.InternalConfig{DialysisAPI: config.AppDialysisAPI{BaseUrl: server.URL + "/api", Timeout: 5 * time.Second}}
	client := NewAlertAPIClient(httpclient.NewClient(cfg, nil, zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	alerts, err := client.FindAll(ctx, "token")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "موعدك غداً", alerts[0].Message)

	notifications, err := client.FindNotifications(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-03", notifications[0].Date)

	require.NoError(t, client.MarkAsRead(ctx, "token", 1))
	require.NoError(t, client.MarkAllAsRead(ctx, "token"))
	require.NoError(t, client.Delete(ctx, "token", 1))

	assert.Equal(t, []string{
		"GET /api/alerts",
		"POST /api/alerts/1/read",
		"POST /api/alerts/read-all",
		"DELETE /api/alerts/1",
	}, calls)
}
