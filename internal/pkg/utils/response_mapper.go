package utils

import (
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/dto/responses"
	"dialysis-portal-service/internal/pkg/locale"
	"strings"
	"time"
)

var arabic = locale.NewArabic()

// All mappers read dates in now's location.

func MapAppointmentToResponse(appointment api_dto.Appointment, now time.Time) responses.Appointment {
	response := responses.Appointment{
		Appointment: appointment,
		StatusLabel: locale.StatusLabel(appointment.Status),
		DateLabel:   locale.Invalid,
		TimeLabel:   locale.FormatTimeToArabic(appointment.Time),
		TimeLeft:    arabic.TimeLeft(appointment.Date, appointment.Time, now),
		Editable:    !appointment.IsDirty,
	}
	if date, ok := parseDateKey(appointment.Date, now.Location()); ok {
		response.DateLabel = arabic.DateLabel(date)
	}
	return response
}

func MapAppointmentsToResponse(appointments []api_dto.Appointment, now time.Time) []responses.Appointment {
	result := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		result = append(result, MapAppointmentToResponse(appointment, now))
	}
	return result
}

func MapOrderToResponse(order api_dto.Order) responses.Order {
	return responses.Order{
		Order:       order,
		StatusLabel: locale.StatusLabel(order.Status),
		Editable:    order.Status == constvars.OrderStatusPending,
	}
}

func MapOrdersToResponse(orders []api_dto.Order) []responses.Order {
	result := make([]responses.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, MapOrderToResponse(order))
	}
	return result
}

func MapPrescriptionToResponse(prescription api_dto.Prescription, now time.Time) responses.Prescription {
	response := responses.Prescription{
		Prescription: prescription,
		DateLabel:    locale.Unspecified,
	}
	if date, ok := parseDateKey(prescription.Date, now.Location()); ok {
		response.DateLabel = arabic.LongDate(date)
	}
	return response
}

func MapPrescriptionsToResponse(prescriptions []api_dto.Prescription, now time.Time) []responses.Prescription {
	result := make([]responses.Prescription, 0, len(prescriptions))
	for _, prescription := range prescriptions {
		result = append(result, MapPrescriptionToResponse(prescription, now))
	}
	return result
}

func MapUserToResponse(user api_dto.User) responses.User {
	return responses.User{
		User:        user,
		GenderLabel: locale.GenderLabel(user.Gender),
		ImageURL:    user.Image,
	}
}

// MapNotificationToResponse prefers the upstream's own human readable time.
func MapNotificationToResponse(notification api_dto.Notification, now time.Time) responses.Notification {
	label := strings.TrimSpace(notification.HumanTime)
	if label == "" {
		label = arabic.TimeLeft(notification.Date, notification.Time, now)
	}
	return responses.Notification{
		Notification: notification,
		Label:        label,
	}
}

// parseDateKey accepts yyyy-MM-dd optionally followed by a time part.
func parseDateKey(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if len(value) > len(constvars.DateKeyLayout) {
		value = value[:len(constvars.DateKeyLayout)]
	}
	parsed, err := time.ParseInLocation(constvars.DateKeyLayout, value, loc)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
