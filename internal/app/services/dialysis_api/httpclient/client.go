package httpclient

import (
	"bytes"
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/drivers/metrics"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/exceptions"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client is the shared transport to the dialysis API. It is safe for
// concurrent use.
type Client struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Metrics    *metrics.UpstreamMetrics
	Log        *zap.Logger
	// MaxResponseBytes bounds every upstream body, zero means the default.
	MaxResponseBytes int64
}

const defaultMaxResponseBytes = 8 << 20

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

type Request struct {
	Method    string
	Path      string
	Token     string
	Query     url.Values
	Body      interface{}
	Multipart *MultipartFile
	// Resource names the call in logs, metrics and errors.
	Resource string
	// Credentials marks login style calls where 401 means wrong phone or password.
	Credentials bool
}

type MultipartFile struct {
	Field       string
	Filename    string
	ContentType string
	Content     []byte
}

func NewClient(cfg *config.InternalConfig, upstreamMetrics *metrics.UpstreamMetrics, logger *zap.Logger) *Client {
	var limiter *rate.Limiter
	if cfg.DialysisAPI.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.DialysisAPI.RatePerSecond), cfg.DialysisAPI.Burst)
	}

	return &Client{
		BaseUrl:          strings.TrimRight(cfg.DialysisAPI.BaseUrl, "/"),
		HTTPClient:       &http.Client{Timeout: cfg.DialysisAPI.Timeout},
		Limiter:          limiter,
		Metrics:          upstreamMetrics,
		Log:              logger,
		MaxResponseBytes: cfg.DialysisAPI.MaxResponseSizeInMB << 20,
	}
}

// Do sends req and decodes a successful JSON answer into out when out is not
// nil. Non 2xx answers are turned into CustomErrors.
func (c *Client) Do(ctx context.Context, req *Request, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	endpoint := c.buildURL(req)
	c.Log.Info("httpclient.Client.Do called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, req.Method),
		zap.String(constvars.LoggingUpstreamURLKey, endpoint),
	)

	if c.Limiter != nil {
		err := c.Limiter.Wait(ctx)
		if err != nil {
			c.Log.Error("httpclient.Client.Do throttled",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return exceptions.ErrUpstreamThrottled(err)
		}
	}

	body, contentType, err := encodeBody(req)
	if err != nil {
		c.Log.Error("httpclient.Client.Do error encoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		c.Log.Error("httpclient.Client.Do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	httpReq.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if contentType != "" {
		httpReq.Header.Set(constvars.HeaderContentType, contentType)
	}
	if req.Token != "" {
		httpReq.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+req.Token)
	}
	if requestID != "" {
		httpReq.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	startTime := time.Now()
	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		c.Metrics.ObserveCall(req.Resource, 0, time.Since(startTime).Seconds())
		c.Log.Error("httpclient.Client.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()
	c.Metrics.ObserveCall(req.Resource, resp.StatusCode, time.Since(startTime).Seconds())

	limit := c.maxResponseBytes()
	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		c.Log.Error("httpclient.Client.Do error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, req.Resource)
	}
	if int64(len(bodyBytes)) > limit {
		c.Log.Error("httpclient.Client.Do response body too large",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, req.Resource),
			zap.Int64("limit", limit),
		)
		return exceptions.ErrUpstreamResponseTooLarge(req.Resource, limit)
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		upstreamErr := mapStatus(req, resp.StatusCode, bodyBytes)
		c.Log.Warn("httpclient.Client.Do upstream answered with error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, req.Resource),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Any(constvars.LoggingErrorFieldsKey, upstreamErr.Errors),
		)
		return upstreamErr
	}

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}

	err = json.Unmarshal(bodyBytes, out)
	if err != nil {
		c.Log.Error("httpclient.Client.Do error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, req.Resource),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, req.Resource)
	}
	return nil
}

func (c *Client) maxResponseBytes() int64 {
	if c.MaxResponseBytes <= 0 {
		return defaultMaxResponseBytes
	}
	return c.MaxResponseBytes
}

func (c *Client) buildURL(req *Request) string {
	endpoint := c.BaseUrl + req.Path
	if len(req.Query) > 0 {
		endpoint = fmt.Sprintf("%s?%s", endpoint, req.Query.Encode())
	}
	return endpoint
}

func encodeBody(req *Request) (io.Reader, string, error) {
	if req.Multipart != nil {
		buf := new(bytes.Buffer)
		writer := multipart.NewWriter(buf)

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(req.Multipart.Field), quoteEscaper.Replace(req.Multipart.Filename)))
		header.Set(constvars.HeaderContentType, req.Multipart.ContentType)
		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", exceptions.ErrCreateHTTPRequest(err)
		}
		if _, err := part.Write(req.Multipart.Content); err != nil {
			return nil, "", exceptions.ErrCreateHTTPRequest(err)
		}
		if err := writer.Close(); err != nil {
			return nil, "", exceptions.ErrCreateHTTPRequest(err)
		}
		return buf, writer.FormDataContentType(), nil
	}

	if req.Body == nil {
		return nil, "", nil
	}

	payload, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", exceptions.ErrCannotMarshalJSON(err)
	}
	return bytes.NewReader(payload), constvars.MIMEApplicationJSON, nil
}

func mapStatus(req *Request, statusCode int, body []byte) *exceptions.CustomError {
	var errorBody api_dto.ErrorBody
	_ = json.Unmarshal(body, &errorBody)
	message := errorBody.FirstMessage()

	switch statusCode {
	case constvars.StatusUnauthorized:
		if req.Credentials {
			return exceptions.ErrInvalidCredentials(message)
		}
		return exceptions.ErrUpstreamUnauthorized(message)
	case constvars.StatusNotFound:
		return exceptions.ErrUpstreamNotFound(req.Resource)
	case constvars.StatusUnprocessableEntity:
		return exceptions.ErrUpstreamValidation(req.Resource, message, errorBody.Errors)
	case constvars.StatusTooManyRequests:
		return exceptions.ErrUpstreamThrottled(fmt.Errorf("%s answered %d", req.Resource, statusCode))
	default:
		return exceptions.ErrUpstreamStatus(statusCode, req.Resource, message)
	}
}
