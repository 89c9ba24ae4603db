package responses

import (
	"dialysis-portal-service/internal/pkg/api_dto"
	"time"
)

type Login struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

type User struct {
	api_dto.User
	GenderLabel string `json:"gender_label"`
	ImageURL    string `json:"image_url,omitempty"`
}

type CheckNationalID struct {
	Exists bool `json:"exists"`
}

type UploadImage struct {
	ImageURL string `json:"image_url"`
}
