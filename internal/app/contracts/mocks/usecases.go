package mocks

import (
	"context"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/dto/requests"
	"dialysis-portal-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type CenterUsecase struct{ mock.Mock }

func (m *CenterUsecase) FindAll(ctx context.Context, session *models.Session) ([]responses.Center, error) {
	args := m.Called(ctx, session)
	centers, _ := args.Get(0).([]responses.Center)
	return centers, args.Error(1)
}

func (m *CenterUsecase) FindOptions(ctx context.Context, session *models.Session) ([]api_dto.Center, error) {
	args := m.Called(ctx, session)
	centers, _ := args.Get(0).([]api_dto.Center)
	return centers, args.Error(1)
}

func (m *CenterUsecase) ListAvailableDates(ctx context.Context, session *models.Session, centerID int) (*responses.AvailableDates, error) {
	args := m.Called(ctx, session, centerID)
	dates, _ := args.Get(0).(*responses.AvailableDates)
	return dates, args.Error(1)
}

func (m *CenterUsecase) ListAvailableTimes(ctx context.Context, session *models.Session, request *requests.AvailableTimes) (*responses.AvailableTimes, error) {
	args := m.Called(ctx, session, request)
	times, _ := args.Get(0).(*responses.AvailableTimes)
	return times, args.Error(1)
}

type BookingUsecase struct{ mock.Mock }

func (m *BookingUsecase) Step(ctx context.Context, session *models.Session, request *requests.BookingStep) (*responses.BookingStep, error) {
	args := m.Called(ctx, session, request)
	step, _ := args.Get(0).(*responses.BookingStep)
	return step, args.Error(1)
}

type AppointmentUsecase struct{ mock.Mock }

func (m *AppointmentUsecase) FindAll(ctx context.Context, session *models.Session, request *requests.Pagination) ([]responses.Appointment, *responses.Pagination, error) {
	args := m.Called(ctx, session, request)
	appointments, _ := args.Get(0).([]responses.Appointment)
	pagination, _ := args.Get(1).(*responses.Pagination)
	return appointments, pagination, args.Error(2)
}

func (m *AppointmentUsecase) FindByID(ctx context.Context, session *models.Session, appointmentID int) (*responses.Appointment, error) {
	args := m.Called(ctx, session, appointmentID)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentUsecase) Create(ctx context.Context, session *models.Session, request *requests.Appointment) (*responses.Appointment, error) {
	args := m.Called(ctx, session, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentUsecase) Update(ctx context.Context, session *models.Session, appointmentID int, request *requests.Appointment) (*responses.Appointment, error) {
	args := m.Called(ctx, session, appointmentID, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentUsecase) FindOrderable(ctx context.Context, session *models.Session) ([]responses.Appointment, error) {
	args := m.Called(ctx, session)
	appointments, _ := args.Get(0).([]responses.Appointment)
	return appointments, args.Error(1)
}

type OrderUsecase struct{ mock.Mock }

func (m *OrderUsecase) FindAll(ctx context.Context, session *models.Session, request *requests.Pagination) ([]responses.Order, *responses.Pagination, error) {
	args := m.Called(ctx, session, request)
	orders, _ := args.Get(0).([]responses.Order)
	pagination, _ := args.Get(1).(*responses.Pagination)
	return orders, pagination, args.Error(2)
}

func (m *OrderUsecase) FindByID(ctx context.Context, session *models.Session, orderID int) (*responses.Order, error) {
	args := m.Called(ctx, session, orderID)
	order, _ := args.Get(0).(*responses.Order)
	return order, args.Error(1)
}

func (m *OrderUsecase) Create(ctx context.Context, session *models.Session, request *requests.Order) (*responses.Order, error) {
	args := m.Called(ctx, session, request)
	order, _ := args.Get(0).(*responses.Order)
	return order, args.Error(1)
}

func (m *OrderUsecase) Update(ctx context.Context, session *models.Session, orderID int, request *requests.Order) (*responses.Order, error) {
	args := m.Called(ctx, session, orderID, request)
	order, _ := args.Get(0).(*responses.Order)
	return order, args.Error(1)
}

func (m *OrderUsecase) FindProducts(ctx context.Context, session *models.Session) ([]api_dto.Product, error) {
	args := m.Called(ctx, session)
	products, _ := args.Get(0).([]api_dto.Product)
	return products, args.Error(1)
}

type PrescriptionUsecase struct{ mock.Mock }

func (m *PrescriptionUsecase) FindAll(ctx context.Context, session *models.Session, request *requests.Pagination) ([]responses.Prescription, *responses.Pagination, error) {
	args := m.Called(ctx, session, request)
	prescriptions, _ := args.Get(0).([]responses.Prescription)
	pagination, _ := args.Get(1).(*responses.Pagination)
	return prescriptions, pagination, args.Error(2)
}

func (m *PrescriptionUsecase) FindByID(ctx context.Context, session *models.Session, prescriptionID int) (*responses.Prescription, error) {
	args := m.Called(ctx, session, prescriptionID)
	prescription, _ := args.Get(0).(*responses.Prescription)
	return prescription, args.Error(1)
}

type ProfileUsecase struct{ mock.Mock }

func (m *ProfileUsecase) Get(ctx context.Context, session *models.Session) (*responses.User, error) {
	args := m.Called(ctx, session)
	user, _ := args.Get(0).(*responses.User)
	return user, args.Error(1)
}

func (m *ProfileUsecase) Update(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.User, error) {
	args := m.Called(ctx, session, request)
	user, _ := args.Get(0).(*responses.User)
	return user, args.Error(1)
}

func (m *ProfileUsecase) UploadImage(ctx context.Context, session *models.Session, request *requests.UploadImage) (*responses.UploadImage, error) {
	args := m.Called(ctx, session, request)
	image, _ := args.Get(0).(*responses.UploadImage)
	return image, args.Error(1)
}

func (m *ProfileUsecase) CheckNationalID(ctx context.Context, request *requests.CheckNationalID) (*responses.CheckNationalID, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.CheckNationalID)
	return result, args.Error(1)
}

type AlertUsecase struct{ mock.Mock }

func (m *AlertUsecase) FindAll(ctx context.Context, session *models.Session) (*responses.Alerts, error) {
	args := m.Called(ctx, session)
	alerts, _ := args.Get(0).(*responses.Alerts)
	return alerts, args.Error(1)
}

func (m *AlertUsecase) FindNotifications(ctx context.Context, session *models.Session) ([]responses.Notification, error) {
	args := m.Called(ctx, session)
	notifications, _ := args.Get(0).([]responses.Notification)
	return notifications, args.Error(1)
}

func (m *AlertUsecase) MarkAsRead(ctx context.Context, session *models.Session, alertID int) error {
	return m.Called(ctx, session, alertID).Error(0)
}

func (m *AlertUsecase) MarkAllAsRead(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *AlertUsecase) Delete(ctx context.Context, session *models.Session, alertID int) error {
	return m.Called(ctx, session, alertID).Error(0)
}

type HomeUsecase struct{ mock.Mock }

func (m *HomeUsecase) Get(ctx context.Context, session *models.Session) (*responses.Home, error) {
	args := m.Called(ctx, session)
	home, _ := args.Get(0).(*responses.Home)
	return home, args.Error(1)
}
