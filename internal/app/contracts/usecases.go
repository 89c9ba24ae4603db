package contracts

import (
	"context"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/dto/requests"
	"dialysis-portal-service/internal/pkg/dto/responses"
)

type CenterUsecase interface {
	FindAll(ctx context.Context, session *models.Session) ([]responses.Center, error)
	FindOptions(ctx context.Context, session *models.Session) ([]api_dto.Center, error)
	ListAvailableDates(ctx context.Context, session *models.Session, centerID int) (*responses.AvailableDates, error)
	ListAvailableTimes(ctx context.Context, session *models.Session, request *requests.AvailableTimes) (*responses.AvailableTimes, error)
}

type BookingUsecase interface {
	Step(ctx context.Context, session *models.Session, request *requests.BookingStep) (*responses.BookingStep, error)
}

type AppointmentUsecase interface {
	FindAll(ctx context.Context, session *models.Session, request *requests.Pagination) ([]responses.Appointment, *responses.Pagination, error)
	FindByID(ctx context.Context, session *models.Session, appointmentID int) (*responses.Appointment, error)
	Create(ctx context.Context, session *models.Session, request *requests.Appointment) (*responses.Appointment, error)
	Update(ctx context.Context, session *models.Session, appointmentID int, request *requests.Appointment) (*responses.Appointment, error)
	FindOrderable(ctx context.Context, session *models.Session) ([]responses.Appointment, error)
}

type OrderUsecase interface {
	FindAll(ctx context.Context, session *models.Session, request *requests.Pagination) ([]responses.Order, *responses.Pagination, error)
	FindByID(ctx context.Context, session *models.Session, orderID int) (*responses.Order, error)
	Create(ctx context.Context, session *models.Session, request *requests.Order) (*responses.Order, error)
	Update(ctx context.Context, session *models.Session, orderID int, request *requests.Order) (*responses.Order, error)
	FindProducts(ctx context.Context, session *models.Session) ([]api_dto.Product, error)
}

type PrescriptionUsecase interface {
	FindAll(ctx context.Context, session *models.Session, request *requests.Pagination) ([]responses.Prescription, *responses.Pagination, error)
	FindByID(ctx context.Context, session *models.Session, prescriptionID int) (*responses.Prescription, error)
}

type ProfileUsecase interface {
	Get(ctx context.Context, session *models.Session) (*responses.User, error)
	Update(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.User, error)
	UploadImage(ctx context.Context, session *models.Session, request *requests.UploadImage) (*responses.UploadImage, error)
	CheckNationalID(ctx context.Context, request *requests.CheckNationalID) (*responses.CheckNationalID, error)
}

type AlertUsecase interface {
	FindAll(ctx context.Context, session *models.Session) (*responses.Alerts, error)
	FindNotifications(ctx context.Context, session *models.Session) ([]responses.Notification, error)
	MarkAsRead(ctx context.Context, session *models.Session, alertID int) error
	MarkAllAsRead(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, session *models.Session, alertID int) error
}

type HomeUsecase interface {
	Get(ctx context.Context, session *models.Session) (*responses.Home, error)
}
