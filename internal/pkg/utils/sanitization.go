package utils

import (
	"dialysis-portal-service/internal/pkg/dto/requests"
	"strings"
)

func trimPointer(value *string) {
	if value != nil {
		*value = strings.TrimSpace(*value)
	}
}

func normalizePhone(phone string) string {
	return strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Phone = normalizePhone(input.Phone)
}

func SanitizeRegisterRequest(input *requests.Register) {
	input.NationalID = strings.TrimSpace(input.NationalID)
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = normalizePhone(input.Phone)
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	trimPointer(input.FileNumber)
	trimPointer(input.NationalID)
	trimPointer(input.FamilyIssueNumber)
	trimPointer(input.Name)
	trimPointer(input.Email)
	trimPointer(input.BloodGroup)
	trimPointer(input.Dob)
	if input.Gender != nil {
		*input.Gender = strings.ToLower(strings.TrimSpace(*input.Gender))
	}
	if input.Email != nil {
		*input.Email = strings.ToLower(*input.Email)
	}
	if input.Phone != nil {
		*input.Phone = normalizePhone(*input.Phone)
	}
}

func SanitizeAppointmentRequest(input *requests.Appointment) {
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeCheckNationalIDRequest(input *requests.CheckNationalID) {
	input.NationalID = strings.TrimSpace(input.NationalID)
}
