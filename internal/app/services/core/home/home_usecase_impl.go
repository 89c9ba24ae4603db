package home

import (
	"context"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/dto/responses"
	"dialysis-portal-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type homeUsecase struct {
	HomeAPIClient contracts.HomeAPIClient
	Log           *zap.Logger
	now           func() time.Time
}

var (
	homeUsecaseInstance contracts.HomeUsecase
	onceHomeUsecase     sync.Once
)

func NewHomeUsecase(homeAPIClient contracts.HomeAPIClient, location *time.Location, logger *zap.Logger) contracts.HomeUsecase {
	onceHomeUsecase.Do(func() {
		homeUsecaseInstance = &homeUsecase{
			HomeAPIClient: homeAPIClient,
			Log:           logger,
			now:           func() time.Time { return time.Now().In(location) },
		}
	})
	return homeUsecaseInstance
}

// Get returns the dashboard counters with the latest appointments, orders
// and prescriptions labelled for display.
func (uc *homeUsecase) Get(ctx context.Context, session *models.Session) (*responses.Home, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("homeUsecase.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	data, err := uc.HomeAPIClient.Get(ctx, session.Token)
	if err != nil {
		uc.Log.Error("homeUsecase.Get error fetching home data",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := uc.now()
	return &responses.Home{
		AppointmentsCount:  data.AppointmentsCount,
		OrdersCount:        data.OrdersCount,
		PrescriptionsCount: data.PrescriptionsCount,
		Appointments:       utils.MapAppointmentsToResponse(data.Appointments, now),
		Orders:             utils.MapOrdersToResponse(data.Orders),
		Prescriptions:      utils.MapPrescriptionsToResponse(data.Prescriptions, now),
	}, nil
}
