package exceptions

import (
	"dialysis-portal-service/internal/pkg/constvars"
	"errors"
	"fmt"
)

var (
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamUnavailable, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamUnavailable, fmt.Sprintf(constvars.ErrDevDecodeResponse, resource))
	}
	ErrUpstreamResponseTooLarge = func(resource string, limit int64) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, constvars.ErrClientUpstreamUnavailable, fmt.Sprintf(constvars.ErrDevUpstreamResponseTooLarge, resource, limit))
	}
	ErrUpstreamThrottled = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientUpstreamUnavailable, constvars.ErrDevUpstreamThrottled)
	}
	ErrUpstreamUnauthorized = func(message string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, fmt.Sprintf("%s: %s", constvars.ErrDevUpstreamUnauthorized, message))
	}
	ErrInvalidCredentials = func(message string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, constvars.ErrClientInvalidCredentials, fmt.Sprintf("%s: %s", constvars.ErrDevUpstreamUnauthorized, message))
	}
	ErrUpstreamNotFound = func(resource string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, fmt.Sprintf(constvars.ErrClientResourceNotFound, resource), fmt.Sprintf(constvars.ErrDevUpstreamStatus, constvars.StatusNotFound, resource))
	}
	ErrUpstreamStatus = func(statusCode int, resource, message string) *CustomError {
		clientMessage := constvars.ErrClientUpstreamUnavailable
		if statusCode < constvars.StatusInternalServerError {
			clientMessage = constvars.ErrClientUpstreamRejected
			if message != "" {
				clientMessage = message
			}
		}
		return BuildNewCustomError(nil, constvars.StatusBadGateway, clientMessage, fmt.Sprintf(constvars.ErrDevUpstreamStatus, statusCode, resource))
	}
)

// ErrUpstreamValidation carries the field errors of a 422 answer so the
// portal can render them next to the matching inputs.
func ErrUpstreamValidation(resource, message string, fields map[string][]string) *CustomError {
	if message == "" {
		message = constvars.ErrClientUpstreamRejected
	}
	customErr := BuildNewCustomError(nil, constvars.StatusUnprocessableEntity, message, fmt.Sprintf(constvars.ErrDevUpstreamValidation, resource))
	customErr.Errors = fields
	return customErr
}

// IsStatus reports whether err is a CustomError with the given status.
func IsStatus(err error, statusCode int) bool {
	var customErr *CustomError
	return errors.As(err, &customErr) && customErr.StatusCode == statusCode
}
