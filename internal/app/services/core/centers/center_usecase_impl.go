package centers

import (
	"context"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/app/services/core/availability"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/dto/requests"
	"dialysis-portal-service/internal/pkg/dto/responses"
	"dialysis-portal-service/internal/pkg/locale"
	"sync"

	"go.uber.org/zap"
)

type centerUsecase struct {
	CenterCatalog   contracts.CenterCatalog
	CenterAPIClient contracts.CenterAPIClient
	Availability    *availability.Service
	Log             *zap.Logger
}

var (
	centerUsecaseInstance contracts.CenterUsecase
	onceCenterUsecase     sync.Once
)

func NewCenterUsecase(
	centerCatalog contracts.CenterCatalog,
	centerAPIClient contracts.CenterAPIClient,
	availabilityService *availability.Service,
	logger *zap.Logger,
) contracts.CenterUsecase {
	onceCenterUsecase.Do(func() {
		centerUsecaseInstance = &centerUsecase{
			CenterCatalog:   centerCatalog,
			CenterAPIClient: centerAPIClient,
			Availability:    availabilityService,
			Log:             logger,
		}
	})
	return centerUsecaseInstance
}

func (uc *centerUsecase) FindAll(ctx context.Context, session *models.Session) ([]responses.Center, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("centerUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	centers, err := uc.CenterCatalog.FindAll(ctx, session.Token)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Center, 0, len(centers))
	for _, center := range centers {
		response = append(response, responses.Center{
			Center:      center,
			WorkingDays: uc.workingDays(center),
		})
	}
	return response, nil
}

func (uc *centerUsecase) workingDays(center api_dto.Center) []responses.WorkingDay {
	windows := uc.Availability.WeeklyWindows(availability.ScheduleSetFromAPI(center.Schedules))
	days := make([]responses.WorkingDay, 0, len(windows))
	for _, window := range windows {
		days = append(days, responses.WorkingDay{
			Day:      availability.DayName(window.Day),
			DayLabel: locale.WeekdayName(window.Day),
			Window:   uc.Availability.DescribeWindow(window),
		})
	}
	return days
}

func (uc *centerUsecase) FindOptions(ctx context.Context, session *models.Session) ([]api_dto.Center, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("centerUsecase.FindOptions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	centers, err := uc.CenterAPIClient.FindOptions(ctx, session.Token)
	if err != nil {
		return nil, err
	}
	if centers == nil {
		centers = []api_dto.Center{}
	}
	return centers, nil
}

func (uc *centerUsecase) ListAvailableDates(ctx context.Context, session *models.Session, centerID int) (*responses.AvailableDates, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("centerUsecase.ListAvailableDates called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCenterIDKey, centerID),
	)

	center, err := uc.CenterCatalog.FindByID(ctx, session.Token, centerID)
	if err != nil {
		return nil, err
	}

	dates := uc.Availability.ListSelectableDates(availability.ScheduleSetFromAPI(center.Schedules))

	uc.Log.Info("centerUsecase.ListAvailableDates succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCenterIDKey, centerID),
		zap.Int(constvars.LoggingCountKey, len(dates)),
	)
	return &responses.AvailableDates{
		CenterID: centerID,
		Dates:    availability.ConvertDatesIntoResponse(dates),
	}, nil
}

// ListAvailableTimes does not apply the booking horizon so an existing
// appointment outside it can still be shown with its slot highlighted.
func (uc *centerUsecase) ListAvailableTimes(ctx context.Context, session *models.Session, request *requests.AvailableTimes) (*responses.AvailableTimes, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("centerUsecase.ListAvailableTimes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCenterIDKey, request.CenterID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingTimeKey, request.Time),
	)

	center, err := uc.CenterCatalog.FindByID(ctx, session.Token, request.CenterID)
	if err != nil {
		return nil, err
	}

	set := availability.ScheduleSetFromAPI(center.Schedules)
	response := &responses.AvailableTimes{
		CenterID: request.CenterID,
		Date:     request.Date,
		Times:    availability.ConvertTimesIntoResponse(uc.Availability.ListSelectableTimes(set, request.Date, request.Time)),
	}
	if window, ok := uc.Availability.WindowFor(set, request.Date); ok {
		described := uc.Availability.DescribeWindow(window)
		response.Window = &described
	}
	return response, nil
}
