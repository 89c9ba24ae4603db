package api_dto

type User struct {
	ID                int     `json:"id"`
	FileNumber        string  `json:"file_number"`
	NationalID        string  `json:"national_id"`
	FamilyIssueNumber string  `json:"family_issue_number,omitempty"`
	Name              string  `json:"name"`
	Phone             string  `json:"phone"`
	Email             string  `json:"email,omitempty"`
	Gender            string  `json:"gender,omitempty"`
	Dob               string  `json:"dob,omitempty"`
	BloodGroup        string  `json:"blood_group,omitempty"`
	Image             string  `json:"image,omitempty"`
	Verified          bool    `json:"verified"`
	CenterID          *int    `json:"center_id,omitempty"`
	Center            *Center `json:"center,omitempty"`
	DeviceID          *int    `json:"device_id,omitempty"`
	CreatedAt         string  `json:"created_at,omitempty"`
	UpdatedAt         string  `json:"updated_at,omitempty"`
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	NationalID           string `json:"national_id"`
	Name                 string `json:"name"`
	Phone                string `json:"phone"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// UpdateProfileRequest mirrors PUT /update. Nil fields are left untouched upstream.
type UpdateProfileRequest struct {
	FileNumber        *string `json:"file_number,omitempty"`
	NationalID        *string `json:"national_id,omitempty"`
	FamilyIssueNumber *string `json:"family_issue_number,omitempty"`
	Name              *string `json:"name,omitempty"`
	Phone             *string `json:"phone,omitempty"`
	Email             *string `json:"email,omitempty"`
	Gender            *string `json:"gender,omitempty"`
	Dob               *string `json:"dob,omitempty"`
	BloodGroup        *string `json:"blood_group,omitempty"`
	CenterID          *int    `json:"center_id,omitempty"`
}

type UpdateProfileResponse struct {
	User User `json:"user"`
}

type UploadImageResponse struct {
	ImageURL string `json:"image_url"`
}

type CheckNationalIDRequest struct {
	NationalID string `json:"national_id"`
}

type CheckNationalIDResponse struct {
	Exists bool `json:"exists"`
}
