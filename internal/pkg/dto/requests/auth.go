package requests

type Login struct {
	Phone    string `json:"phone" validate:"required,min=2,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

type Register struct {
	NationalID           string `json:"national_id" validate:"required,national_id"`
	Name                 string `json:"name" validate:"required,min=1"`
	Phone                string `json:"phone" validate:"required,libyan_phone"`
	Password             string `json:"password" validate:"required,min=6"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,min=6"`
}

type CheckNationalID struct {
	NationalID string `json:"national_id" validate:"required,len=12,numeric"`
}
