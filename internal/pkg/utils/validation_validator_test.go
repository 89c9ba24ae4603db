package utils

import (
	"dialysis-portal-service/internal/pkg/dto/requests"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegister(t *testing.T) {
	valid := requests.Register{
		NationalID:           "119900123456",
		Name:                 "Salem",
		Phone:                "0912345678",
		Password:             "secret1",
		PasswordConfirmation: "secret1",
	}
	require.NoError(t, ValidateStruct(valid))

	tests := []struct {
		name   string
		mutate func(r *requests.Register)
		field  string
	}{
		{"national id must start with 1 or 2", func(r *requests.Register) { r.NationalID = "319900123456" }, "national_id"},
		{"national id length", func(r *requests.Register) { r.NationalID = "11990012345" }, "national_id"},
		{"phone outside Libyan mobile ranges", func(r *requests.Register) { r.Phone = "0971234567" }, "phone"},
		{"short password", func(r *requests.Register) { r.Password = "123" }, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := valid
			tt.mutate(&request)
			err := ValidateStruct(request)
			require.Error(t, err)

			var validationErrors validator.ValidationErrors
			require.ErrorAs(t, err, &validationErrors)
			assert.Equal(t, tt.field, validationErrors[0].Field())
		})
	}
}

func TestValidateLibyanPhoneFormats(t *testing.T) {
	for _, phone := range []string{"0912345678", "+218912345678", "00218922345678", "912345678"} {
		phone := phone
		t.Run(phone, func(t *testing.T) {
			assert.NoError(t, ValidateStruct(requests.Register{
				NationalID:           "219900123456",
				Name:                 "Mona",
				Phone:                phone,
				Password:             "secret1",
				PasswordConfirmation: "secret1",
			}))
		})
	}
}

func TestValidateAppointment(t *testing.T) {
	assert.NoError(t, ValidateStruct(requests.Appointment{CenterID: 1, Date: "2025-06-02", Time: "10:00"}))
	assert.NoError(t, ValidateStruct(requests.Appointment{CenterID: 1, Date: "2025-06-02", Time: "10:00:00"}))
	assert.Error(t, ValidateStruct(requests.Appointment{CenterID: 1, Date: "02/06/2025", Time: "10:00"}))
	assert.Error(t, ValidateStruct(requests.Appointment{CenterID: 1, Date: "2025-06-02", Time: "25:00"}))
	assert.Error(t, ValidateStruct(requests.Appointment{Date: "2025-06-02", Time: "10:00"}))
}

func TestValidateUpdateProfileBirthDate(t *testing.T) {
	past := "15/03/1990"
	future := "01/01/2999"
	broken := "1990/03/15"

	assert.NoError(t, ValidateStruct(requests.UpdateProfile{Dob: &past}))
	assert.Error(t, ValidateStruct(requests.UpdateProfile{Dob: &future}))
	assert.Error(t, ValidateStruct(requests.UpdateProfile{Dob: &broken}))
	assert.NoError(t, ValidateStruct(requests.UpdateProfile{}))
}

func TestValidateOrderItems(t *testing.T) {
	assert.NoError(t, ValidateStruct(requests.Order{CenterID: 1, Items: []requests.OrderItem{{ProductID: 2, Quantity: 1}}}))
	assert.Error(t, ValidateStruct(requests.Order{CenterID: 1, Items: []requests.OrderItem{{ProductID: 2, Quantity: 0}}}))
}
