package utils

import (
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/dto/requests"
	"dialysis-portal-service/internal/pkg/exceptions"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

func BuildPaginationRequest(r *http.Request) *requests.Pagination {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page <= 0 {
		page = constvars.DefaultPage
	}

	return &requests.Pagination{
		Page: page,
	}
}

// ParseIDParam reads a positive integer chi URL param.
func ParseIDParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, exceptions.ErrURLParamIDValidation(err, name)
	}
	if id <= 0 {
		return 0, exceptions.ErrURLParamIDValidation(nil, name)
	}
	return id, nil
}

// QueryInt reads an optional integer query param, 0 when absent or malformed.
func QueryInt(r *http.Request, name string) int {
	value, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(name)))
	if err != nil {
		return 0
	}
	return value
}

// ExtractSessionToken reads the portal token from the session cookie, then
// from a bearer Authorization header.
func ExtractSessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(constvars.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := r.Header.Get(constvars.HeaderAuthorization)
	if strings.HasPrefix(header, constvars.BearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, constvars.BearerPrefix))
	}
	return ""
}
