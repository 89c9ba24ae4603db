package utils

import (
	"dialysis-portal-service/internal/pkg/constvars"
	"strings"
	"time"
)

// NormalizeClock turns HH:MM or HH:MM:SS into the HH:MM:SS form the dialysis
// API stores.
func NormalizeClock(value string) (string, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{constvars.ClockLayout, constvars.ClockSecondLayout} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.Format(constvars.ClockSecondLayout), true
		}
	}
	return "", false
}

// ParseFlexibleDate accepts dd/MM/yyyy as typed by patients, or yyyy-MM-dd.
func ParseFlexibleDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{constvars.LibyanDateLayout, constvars.DateKeyLayout} {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// NormalizeDate renders a flexible date as yyyy-MM-dd.
func NormalizeDate(value string) (string, bool) {
	parsed, ok := ParseFlexibleDate(value)
	if !ok {
		return "", false
	}
	return parsed.Format(constvars.DateKeyLayout), true
}
