package httpclient

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/exceptions"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.InternalConfig{DialysisAPI: config.AppDialysisAPI{
		BaseUrl: server.URL + "/api/",
		Timeout: 5 * time.Second,
	}}
	return NewClient(cfg, nil, zap.NewNop())
}

func TestDoSendsJSONAndDecodes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/appointments", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "Bearer upstream-token", r.Header.Get(constvars.HeaderAuthorization))
		assert.Equal(t, constvars.MIMEApplicationJSON, r.Header.Get(constvars.HeaderContentType))
		assert.Equal(t, "req-1", r.Header.Get(constvars.HeaderXRequestID))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2025-06-02", body["date"])

		w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		w.Write([]byte(`{"id":7}`))
	})

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")
	var out struct {
		ID int `json:"id"`
	}
	err := client.Do(ctx, &Request{
		Method:   http.MethodPost,
		Path:     constvars.ResourceAppointments,
		Token:    "upstream-token",
		Query:    url.Values{"page": []string{"2"}},
		Body:     map[string]string{"date": "2025-06-02"},
		Resource: "appointments",
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, 7, out.ID)
}

func TestDoEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get(constvars.HeaderAuthorization))
		w.WriteHeader(http.StatusNoContent)
	})

	var out map[string]interface{}
	err := client.Do(context.Background(), &Request{Method: http.MethodPost, Path: constvars.ResourceLogout, Resource: "logout"}, &out)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestDoMultipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile(constvars.MultipartImageField)
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)

		assert.Equal(t, "avatar.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get(constvars.HeaderContentType))
		assert.Equal(t, []byte("png-bytes"), content)
		w.Write([]byte(`{"image_url":"https://cdn/avatar.png"}`))
	})

	var out struct {
		ImageURL string `json:"image_url"`
	}
	err := client.Do(context.Background(), &Request{
		Method: http.MethodPost,
		Path:   constvars.ResourceUploadImage,
		Multipart: &MultipartFile{
			Field:       constvars.MultipartImageField,
			Filename:    "avatar.png",
			ContentType: "image/png",
			Content:     []byte("png-bytes"),
		},
		Resource: "upload-image",
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn/avatar.png", out.ImageURL)
}

func TestDoMapsUpstreamErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		credentials bool
		wantStatus  int
		wantMessage string
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"Unauthenticated."}`, false, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized},
		{"wrong credentials", http.StatusUnauthorized, `{"error":"bad login"}`, true, constvars.StatusUnauthorized, constvars.ErrClientInvalidCredentials},
		{"not found", http.StatusNotFound, ``, false, constvars.StatusNotFound, ""},
		{"throttled", http.StatusTooManyRequests, ``, false, constvars.StatusServiceUnavailable, constvars.ErrClientUpstreamUnavailable},
		{"rejected", http.StatusBadRequest, `{"error":"الطلب غير صالح"}`, false, constvars.StatusBadGateway, "الطلب غير صالح"},
		{"server error", http.StatusInternalServerError, `oops`, false, constvars.StatusBadGateway, constvars.ErrClientUpstreamUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})

			err := client.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/x", Resource: "x", Credentials: tc.credentials}, nil)

			var customErr *exceptions.CustomError
			require.True(t, errors.As(err, &customErr))
			assert.Equal(t, tc.wantStatus, customErr.StatusCode)
			if tc.wantMessage != "" {
				assert.Equal(t, tc.wantMessage, customErr.ClientMessage)
			}
		})
	}
}

func TestDoMapsValidationErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"The given data was invalid.","errors":{"phone":["The phone has already been taken."]}}`))
	})

	err := client.Do(context.Background(), &Request{Method: http.MethodPost, Path: constvars.ResourceRegister, Resource: "register"}, nil)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
	assert.Equal(t, "The given data was invalid.", customErr.ClientMessage)
	assert.Equal(t, []string{"The phone has already been taken."}, customErr.Errors["phone"])
}

func TestDoDecodeFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"not-a-number"}`))
	})

	var out struct {
		ID int `json:"id"`
	}
	err := client.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/x", Resource: "x"}, &out)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusBadGateway))
}

func TestDoTransportFailure(t *testing.T) {
	cfg := &config.InternalConfig{DialysisAPI: config.AppDialysisAPI{BaseUrl: "http://127.0.0.1:1", Timeout: time.Second}}
	client := NewClient(cfg, nil, zap.NewNop())

	err := client.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/x", Resource: "x"}, nil)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusBadGateway))
}

func TestDoHonoursCancelledContextWhileThrottled(t *testing.T) {
	cfg := &config.InternalConfig{DialysisAPI: config.AppDialysisAPI{BaseUrl: "http://127.0.0.1:1", RatePerSecond: 1, Burst: 1}}
	client := NewClient(cfg, nil, zap.NewNop())
	client.Limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := client.Do(ctx, &Request{Method: http.MethodGet, Path: "/x", Resource: "x"}, nil)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusServiceUnavailable))
}

func TestDoMultipartEscapesFilename(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile(constvars.MultipartImageField)
		require.NoError(t, err)

		assert.Equal(t, `my\ "best" photo.png`, header.Filename)
		w.Write([]byte(`{}`))
	})

	err := client.Do(context.Background(), &Request{
		Method: http.MethodPost,
		Path:   constvars.ResourceUploadImage,
		Multipart: &MultipartFile{
			Field:       constvars.MultipartImageField,
			Filename:    `my\ "best" photo.png`,
			ContentType: "image/png",
			Content:     []byte("png-bytes"),
		},
		Resource: "upload-image",
	}, nil)
	require.NoError(t, err)
}

func TestDoRejectsOversizedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":"` + strings.Repeat("x", 64) + `"}`))
	})
	client.MaxResponseBytes = 32

	var out map[string]interface{}
	err := client.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/home", Resource: "home"}, &out)
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusBadGateway))
	assert.Empty(t, out)

	client.MaxResponseBytes = 1024
	require.NoError(t, client.Do(context.Background(), &Request{Method: http.MethodGet, Path: "/home", Resource: "home"}, &out))
	assert.Len(t, out["data"], 64)
}
