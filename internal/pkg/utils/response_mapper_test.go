package utils

import (
	"dialysis-portal-service/internal/pkg/api_dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMapAppointmentToResponse(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	response := MapAppointmentToResponse(api_dto.Appointment{
		ID:     1,
		Date:   "2025-06-02",
		Time:   "10:30:00",
		Status: "pending",
	}, now)

	assert.Equal(t, "قيد الانتظار", response.StatusLabel)
	assert.Equal(t, "الاثنين 02/06/2025", response.DateLabel)
	assert.Equal(t, "١٠:٣٠ صباحاً", response.TimeLabel)
	assert.Equal(t, "بعد ٢ ساعات و٣٠ دقيقة", response.TimeLeft)
	assert.True(t, response.Editable)

	dirty := MapAppointmentToResponse(api_dto.Appointment{Date: "bad", Time: "x", IsDirty: true}, now)
	assert.False(t, dirty.Editable)
	assert.Equal(t, "غير صالح", dirty.DateLabel)
}

func TestMapOrderToResponse(t *testing.T) {
	assert.True(t, MapOrderToResponse(api_dto.Order{Status: "pending"}).Editable)
	confirmed := MapOrderToResponse(api_dto.Order{Status: "confirmed"})
	assert.False(t, confirmed.Editable)
	assert.Equal(t, "مؤكد", confirmed.StatusLabel)
}

func TestMapPrescriptionToResponse(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	response := MapPrescriptionToResponse(api_dto.Prescription{Date: "2025-06-02T00:00:00.000000Z"}, now)
	assert.Equal(t, "2 يونيو 2025", response.DateLabel)
}

func TestMapNotificationToResponse(t *testing.T) {
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)

	withHuman := MapNotificationToResponse(api_dto.Notification{HumanTime: "بعد ساعة"}, now)
	assert.Equal(t, "بعد ساعة", withHuman.Label)

	computed := MapNotificationToResponse(api_dto.Notification{Date: "2025-06-03", Time: "09:00:00"}, now)
	assert.Equal(t, "غداً", computed.Label)
}

func TestMapUserToResponse(t *testing.T) {
	response := MapUserToResponse(api_dto.User{Gender: "female", Image: "https://cdn/u.png"})
	assert.Equal(t, "أنثى", response.GenderLabel)
	assert.Equal(t, "https://cdn/u.png", response.ImageURL)
}
