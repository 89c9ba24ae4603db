// Package mocks holds testify mocks of the contracts interfaces.
package mocks

import (
	"context"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/mock"
)

type AuthAPIClient struct{ mock.Mock }

func (m *AuthAPIClient) Login(ctx context.Context, request *api_dto.LoginRequest) (*api_dto.TokenResponse, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*api_dto.TokenResponse)
	return response, args.Error(1)
}

func (m *AuthAPIClient) Register(ctx context.Context, request *api_dto.RegisterRequest) (*api_dto.TokenResponse, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*api_dto.TokenResponse)
	return response, args.Error(1)
}

func (m *AuthAPIClient) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *AuthAPIClient) Me(ctx context.Context, token string) (*api_dto.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*api_dto.User)
	return user, args.Error(1)
}

func (m *AuthAPIClient) UpdateProfile(ctx context.Context, token string, request *api_dto.UpdateProfileRequest) (*api_dto.UpdateProfileResponse, error) {
	args := m.Called(ctx, token, request)
	response, _ := args.Get(0).(*api_dto.UpdateProfileResponse)
	return response, args.Error(1)
}

func (m *AuthAPIClient) UploadImage(ctx context.Context, token string, request *requests.UploadImage) (*api_dto.UploadImageResponse, error) {
	args := m.Called(ctx, token, request)
	response, _ := args.Get(0).(*api_dto.UploadImageResponse)
	return response, args.Error(1)
}

func (m *AuthAPIClient) CheckNationalID(ctx context.Context, request *api_dto.CheckNationalIDRequest) (*api_dto.CheckNationalIDResponse, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*api_dto.CheckNationalIDResponse)
	return response, args.Error(1)
}

type CenterAPIClient struct{ mock.Mock }

func (m *CenterAPIClient) FindAll(ctx context.Context, token string) ([]api_dto.Center, error) {
	args := m.Called(ctx, token)
	centers, _ := args.Get(0).([]api_dto.Center)
	return centers, args.Error(1)
}

func (m *CenterAPIClient) FindOptions(ctx context.Context, token string) ([]api_dto.Center, error) {
	args := m.Called(ctx, token)
	centers, _ := args.Get(0).([]api_dto.Center)
	return centers, args.Error(1)
}

type CenterCatalog struct{ mock.Mock }

func (m *CenterCatalog) FindAll(ctx context.Context, token string) ([]api_dto.Center, error) {
	args := m.Called(ctx, token)
	centers, _ := args.Get(0).([]api_dto.Center)
	return centers, args.Error(1)
}

func (m *CenterCatalog) FindByID(ctx context.Context, token string, centerID int) (*api_dto.Center, error) {
	args := m.Called(ctx, token, centerID)
	center, _ := args.Get(0).(*api_dto.Center)
	return center, args.Error(1)
}

func (m *CenterCatalog) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type AppointmentAPIClient struct{ mock.Mock }

func (m *AppointmentAPIClient) FindAll(ctx context.Context, token string, page int) (*api_dto.Paginated[api_dto.Appointment], error) {
	args := m.Called(ctx, token, page)
	result, _ := args.Get(0).(*api_dto.Paginated[api_dto.Appointment])
	return result, args.Error(1)
}

func (m *AppointmentAPIClient) FindByID(ctx context.Context, token string, appointmentID int) (*api_dto.Appointment, error) {
	args := m.Called(ctx, token, appointmentID)
	appointment, _ := args.Get(0).(*api_dto.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentAPIClient) Create(ctx context.Context, token string, payload *api_dto.AppointmentPayload) (*api_dto.Appointment, error) {
	args := m.Called(ctx, token, payload)
	appointment, _ := args.Get(0).(*api_dto.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentAPIClient) Update(ctx context.Context, token string, appointmentID int, payload *api_dto.AppointmentPayload) (*api_dto.Appointment, error) {
	args := m.Called(ctx, token, appointmentID, payload)
	appointment, _ := args.Get(0).(*api_dto.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentAPIClient) FindOrderable(ctx context.Context, token string) ([]api_dto.Appointment, error) {
	args := m.Called(ctx, token)
	appointments, _ := args.Get(0).([]api_dto.Appointment)
	return appointments, args.Error(1)
}

type OrderAPIClient struct{ mock.Mock }

func (m *OrderAPIClient) FindAll(ctx context.Context, token string, page int) (*api_dto.Paginated[api_dto.Order], error) {
	args := m.Called(ctx, token, page)
	result, _ := args.Get(0).(*api_dto.Paginated[api_dto.Order])
	return result, args.Error(1)
}

func (m *OrderAPIClient) FindByID(ctx context.Context, token string, orderID int) (*api_dto.Order, error) {
	args := m.Called(ctx, token, orderID)
	order, _ := args.Get(0).(*api_dto.Order)
	return order, args.Error(1)
}

func (m *OrderAPIClient) Create(ctx context.Context, token string, payload *api_dto.OrderPayload) (*api_dto.Order, error) {
	args := m.Called(ctx, token, payload)
	order, _ := args.Get(0).(*api_dto.Order)
	return order, args.Error(1)
}

func (m *OrderAPIClient) Update(ctx context.Context, token string, orderID int, payload *api_dto.OrderPayload) (*api_dto.Order, error) {
	args := m.Called(ctx, token, orderID, payload)
	order, _ := args.Get(0).(*api_dto.Order)
	return order, args.Error(1)
}

func (m *OrderAPIClient) FindProducts(ctx context.Context, token string) ([]api_dto.Product, error) {
	args := m.Called(ctx, token)
	products, _ := args.Get(0).([]api_dto.Product)
	return products, args.Error(1)
}

type PrescriptionAPIClient struct{ mock.Mock }

func (m *PrescriptionAPIClient) FindAll(ctx context.Context, token string, page int) (*api_dto.Paginated[api_dto.Prescription], error) {
	args := m.Called(ctx, token, page)
	result, _ := args.Get(0).(*api_dto.Paginated[api_dto.Prescription])
	return result, args.Error(1)
}

func (m *PrescriptionAPIClient) FindByID(ctx context.Context, token string, prescriptionID int) (*api_dto.Prescription, error) {
	args := m.Called(ctx, token, prescriptionID)
	prescription, _ := args.Get(0).(*api_dto.Prescription)
	return prescription, args.Error(1)
}

type AlertAPIClient struct{ mock.Mock }

func (m *AlertAPIClient) FindAll(ctx context.Context, token string) ([]api_dto.Alert, error) {
	args := m.Called(ctx, token)
	alerts, _ := args.Get(0).([]api_dto.Alert)
	return alerts, args.Error(1)
}

func (m *AlertAPIClient) FindNotifications(ctx context.Context, token string) ([]api_dto.Notification, error) {
	args := m.Called(ctx, token)
	notifications, _ := args.Get(0).([]api_dto.Notification)
	return notifications, args.Error(1)
}

func (m *AlertAPIClient) MarkAsRead(ctx context.Context, token string, alertID int) error {
	return m.Called(ctx, token, alertID).Error(0)
}

func (m *AlertAPIClient) MarkAllAsRead(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *AlertAPIClient) Delete(ctx context.Context, token string, alertID int) error {
	return m.Called(ctx, token, alertID).Error(0)
}

type HomeAPIClient struct{ mock.Mock }

func (m *HomeAPIClient) Get(ctx context.Context, token string) (*api_dto.HomeData, error) {
	args := m.Called(ctx, token)
	home, _ := args.Get(0).(*api_dto.HomeData)
	return home, args.Error(1)
}
