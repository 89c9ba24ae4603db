package contracts

import (
	"context"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/dto/requests"
)

// The clients below talk to the dialysis API. token is the upstream bearer
// token held by the caller's session and may be empty for public endpoints.

type AuthAPIClient interface {
	Login(ctx context.Context, request *api_dto.LoginRequest) (*api_dto.TokenResponse, error)
	Register(ctx context.Context, request *api_dto.RegisterRequest) (*api_dto.TokenResponse, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (*api_dto.User, error)
	UpdateProfile(ctx context.Context, token string, request *api_dto.UpdateProfileRequest) (*api_dto.UpdateProfileResponse, error)
	UploadImage(ctx context.Context, token string, request *requests.UploadImage) (*api_dto.UploadImageResponse, error)
	CheckNationalID(ctx context.Context, request *api_dto.CheckNationalIDRequest) (*api_dto.CheckNationalIDResponse, error)
}

type CenterAPIClient interface {
	FindAll(ctx context.Context, token string) ([]api_dto.Center, error)
	// FindOptions lists the centers a patient may pick on the profile form.
	FindOptions(ctx context.Context, token string) ([]api_dto.Center, error)
}

type AppointmentAPIClient interface {
	FindAll(ctx context.Context, token string, page int) (*api_dto.Paginated[api_dto.Appointment], error)
	FindByID(ctx context.Context, token string, appointmentID int) (*api_dto.Appointment, error)
	Create(ctx context.Context, token string, payload *api_dto.AppointmentPayload) (*api_dto.Appointment, error)
	Update(ctx context.Context, token string, appointmentID int, payload *api_dto.AppointmentPayload) (*api_dto.Appointment, error)
	FindOrderable(ctx context.Context, token string) ([]api_dto.Appointment, error)
}

type OrderAPIClient interface {
	FindAll(ctx context.Context, token string, page int) (*api_dto.Paginated[api_dto.Order], error)
	FindByID(ctx context.Context, token string, orderID int) (*api_dto.Order, error)
	Create(ctx context.Context, token string, payload *api_dto.OrderPayload) (*api_dto.Order, error)
	Update(ctx context.Context, token string, orderID int, payload *api_dto.OrderPayload) (*api_dto.Order, error)
	FindProducts(ctx context.Context, token string) ([]api_dto.Product, error)
}

type PrescriptionAPIClient interface {
	FindAll(ctx context.Context, token string, page int) (*api_dto.Paginated[api_dto.Prescription], error)
	FindByID(ctx context.Context, token string, prescriptionID int) (*api_dto.Prescription, error)
}

type AlertAPIClient interface {
	FindAll(ctx context.Context, token string) ([]api_dto.Alert, error)
	FindNotifications(ctx context.Context, token string) ([]api_dto.Notification, error)
	MarkAsRead(ctx context.Context, token string, alertID int) error
	MarkAllAsRead(ctx context.Context, token string) error
	Delete(ctx context.Context, token string, alertID int) error
}

type HomeAPIClient interface {
	Get(ctx context.Context, token string) (*api_dto.HomeData, error)
}

// CenterCatalog serves the center list from cache, falling back to the API.
type CenterCatalog interface {
	FindAll(ctx context.Context, token string) ([]api_dto.Center, error)
	FindByID(ctx context.Context, token string, centerID int) (*api_dto.Center, error)
	Invalidate(ctx context.Context) error
}
