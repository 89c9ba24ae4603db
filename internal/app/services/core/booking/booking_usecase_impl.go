package booking

import (
	"context"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/app/services/core/availability"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/dto/requests"
	"dialysis-portal-service/internal/pkg/dto/responses"
	"sync"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	CenterCatalog contracts.CenterCatalog
	Availability  *availability.Service
	Log           *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	centerCatalog contracts.CenterCatalog,
	availabilityService *availability.Service,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		bookingUsecaseInstance = &bookingUsecase{
			CenterCatalog: centerCatalog,
			Availability:  availabilityService,
			Log:           logger,
		}
	})
	return bookingUsecaseInstance
}

// Step replays the form from the center selection with what the client has
// chosen so far and returns where the form ends up.
func (uc *bookingUsecase) Step(ctx context.Context, session *models.Session, request *requests.BookingStep) (*responses.BookingStep, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.Step called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCenterIDKey, request.CenterID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingTimeKey, request.Time),
	)

	form := NewForm().SelectCenter(request.CenterID)
	if form.Stage == StageNoCenter {
		return form.ConvertIntoResponse(uc.Availability), nil
	}

	center, err := uc.CenterCatalog.FindByID(ctx, session.Token, request.CenterID)
	if err != nil {
		return nil, err
	}
	form = form.SchedulesLoaded(uc.Availability, center.ID, availability.ScheduleSetFromAPI(center.Schedules))

	if request.Date != "" {
		form = form.SelectDate(request.Date).LoadTimes(uc.Availability)
		if request.Time != "" {
			form = form.SelectTime(uc.Availability, request.Time)
		}
	}

	uc.Log.Info("bookingUsecase.Step resolved",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStageKey, string(form.Stage)),
	)
	return form.ConvertIntoResponse(uc.Availability), nil
}
