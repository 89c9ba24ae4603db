package utils

import (
	"dialysis-portal-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeUpdateProfileRequest(t *testing.T) {
	email := "  Salem@Example.COM "
	gender := " Male"
	phone := "091 234 5678"
	name := " Salem "
	request := &requests.UpdateProfile{Email: &email, Gender: &gender, Phone: &phone, Name: &name}

	SanitizeUpdateProfileRequest(request)

	assert.Equal(t, "salem@example.com", *request.Email)
	assert.Equal(t, "male", *request.Gender)
	assert.Equal(t, "0912345678", *request.Phone)
	assert.Equal(t, "Salem", *request.Name)
	assert.Nil(t, request.Dob)
}

func TestSanitizeRegisterRequest(t *testing.T) {
	request := &requests.Register{NationalID: " 119900123456 ", Name: " Mona ", Phone: "+218 91 234 5678"}
	SanitizeRegisterRequest(request)

	assert.Equal(t, "119900123456", request.NationalID)
	assert.Equal(t, "Mona", request.Name)
	assert.Equal(t, "+218912345678", request.Phone)
}
