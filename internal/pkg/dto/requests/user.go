package requests

// UpdateProfile accepts the date of birth either as DD/MM/YYYY or YYYY-MM-DD.
type UpdateProfile struct {
	FileNumber        *string `json:"file_number" validate:"omitempty,min=1"`
	NationalID        *string `json:"national_id" validate:"omitempty,national_id"`
	FamilyIssueNumber *string `json:"family_issue_number"`
	Name              *string `json:"name" validate:"omitempty,min=1"`
	Phone             *string `json:"phone" validate:"omitempty,libyan_phone"`
	Email             *string `json:"email" validate:"omitempty,email"`
	Gender            *string `json:"gender" validate:"omitempty,oneof=male female"`
	Dob               *string `json:"dob" validate:"omitempty,birth_date"`
	BloodGroup        *string `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	CenterID          *int    `json:"center_id" validate:"omitempty,gt=0"`
}

type UploadImage struct {
	Filename    string
	ContentType string
	Size        int64
	Content     []byte
}
