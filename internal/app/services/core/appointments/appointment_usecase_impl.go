package appointments

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/app/services/core/availability"
	"dialysis-portal-service/internal/app/services/core/booking"
	"dialysis-portal-service/internal/app/services/shared/locker"
	"dialysis-portal-service/internal/app/services/shared/ratelimiter"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/dto/requests"
	"dialysis-portal-service/internal/pkg/dto/responses"
	"dialysis-portal-service/internal/pkg/exceptions"
	"dialysis-portal-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentAPIClient contracts.AppointmentAPIClient
	CenterCatalog        contracts.CenterCatalog
	SessionManager       contracts.SessionManager
	SubmissionLimiter    *ratelimiter.SubmissionLimiter
	SubmissionLock       *locker.SubmissionLock
	Availability         *availability.Service
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentAPIClient contracts.AppointmentAPIClient,
	centerCatalog contracts.CenterCatalog,
	sessionManager contracts.SessionManager,
	submissionLimiter *ratelimiter.SubmissionLimiter,
	submissionLock *locker.SubmissionLock,
	availabilityService *availability.Service,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentAPIClient: appointmentAPIClient,
			CenterCatalog:        centerCatalog,
			SessionManager:       sessionManager,
			SubmissionLimiter:    submissionLimiter,
			SubmissionLock:       submissionLock,
			Availability:         availabilityService,
			InternalConfig:       internalConfig,
			Log:                  logger,
		}
	})
	return appointmentUsecaseInstance
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, session *models.Session, request *requests.Pagination) ([]responses.Appointment, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, request.Page),
	)

	page, err := uc.AppointmentAPIClient.FindAll(ctx, session.Token, request.Page)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindAll error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	uc.Log.Info("appointmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(page.Data)),
	)
	return utils.MapAppointmentsToResponse(page.Data, uc.Availability.Now()),
		utils.BuildPaginationResponse(page, uc.InternalConfig.App.ResourceURL("appointments")),
		nil
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, session *models.Session, appointmentID int) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	appointment, err := uc.AppointmentAPIClient.FindByID(ctx, session.Token, appointmentID)
	if err != nil {
		return nil, err
	}

	response := utils.MapAppointmentToResponse(*appointment, uc.Availability.Now())
	return &response, nil
}

func (uc *appointmentUsecase) Create(ctx context.Context, session *models.Session, request *requests.Appointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCenterIDKey, request.CenterID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingTimeKey, request.Time),
	)

	err := uc.SubmissionLimiter.Allow(ctx, constvars.LimiterGroupBooking, session.Subject())
	if err != nil {
		return nil, err
	}

	release, err := uc.SubmissionLock.Acquire(ctx, constvars.LimiterGroupBooking, session.Subject())
	if err != nil {
		return nil, err
	}
	defer release()

	err = uc.validateSlot(ctx, session, request)
	if err != nil {
		uc.Log.Warn("appointmentUsecase.Create slot rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	payload, err := buildPayload(request)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.AppointmentAPIClient.Create(ctx, session.Token, payload)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Create error from dialysis API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.SessionManager.InvalidateAlerts(ctx, session)

	uc.Log.Info("appointmentUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	response := utils.MapAppointmentToResponse(*appointment, uc.Availability.Now())
	return &response, nil
}

// Update re-validates the slot only when the center, date or time moves, so
// appointments stored at a time that is not on the current grid can still
// have their notes edited.
func (uc *appointmentUsecase) Update(ctx context.Context, session *models.Session, appointmentID int, request *requests.Appointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := uc.SubmissionLimiter.Allow(ctx, constvars.LimiterGroupBooking, session.Subject())
	if err != nil {
		return nil, err
	}

	release, err := uc.SubmissionLock.Acquire(ctx, constvars.LimiterGroupBooking, session.Subject())
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := uc.AppointmentAPIClient.FindByID(ctx, session.Token, appointmentID)
	if err != nil {
		return nil, err
	}
	if existing.IsDirty {
		return nil, exceptions.ErrAppointmentLocked(appointmentID)
	}

	if movesSlot(existing, request) {
		err = uc.validateSlot(ctx, session, request)
		if err != nil {
			uc.Log.Warn("appointmentUsecase.Update slot rejected",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	payload, err := buildPayload(request)
	if err != nil {
		return nil, err
	}

	appointment, err := uc.AppointmentAPIClient.Update(ctx, session.Token, appointmentID, payload)
	if err != nil {
		uc.Log.Error("appointmentUsecase.Update error from dialysis API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.SessionManager.InvalidateAlerts(ctx, session)

	response := utils.MapAppointmentToResponse(*appointment, uc.Availability.Now())
	return &response, nil
}

// FindOrderable lists the appointments an order may be attached to.
func (uc *appointmentUsecase) FindOrderable(ctx context.Context, session *models.Session) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindOrderable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments, err := uc.AppointmentAPIClient.FindOrderable(ctx, session.Token)
	if err != nil {
		return nil, err
	}
	return utils.MapAppointmentsToResponse(appointments, uc.Availability.Now()), nil
}

func (uc *appointmentUsecase) validateSlot(ctx context.Context, session *models.Session, request *requests.Appointment) error {
	center, err := uc.CenterCatalog.FindByID(ctx, session.Token, request.CenterID)
	if err != nil {
		return err
	}
	set := availability.ScheduleSetFromAPI(center.Schedules)
	return booking.ValidateSubmission(uc.Availability, request.CenterID, set, request.Date, request.Time)
}

func movesSlot(existing *api_dto.Appointment, request *requests.Appointment) bool {
	if existing.CenterID != request.CenterID {
		return true
	}
	existingDate, _ := utils.NormalizeDate(firstN(existing.Date, len(constvars.DateKeyLayout)))
	requestDate, _ := utils.NormalizeDate(request.Date)
	if existingDate != requestDate {
		return true
	}
	existingTime, _ := utils.NormalizeClock(existing.Time)
	requestTime, _ := utils.NormalizeClock(request.Time)
	return existingTime != requestTime
}

func buildPayload(request *requests.Appointment) (*api_dto.AppointmentPayload, error) {
	date, ok := utils.NormalizeDate(request.Date)
	if !ok {
		return nil, exceptions.ErrSlotNotAvailable(request.CenterID, request.Date, request.Time)
	}
	clock, ok := utils.NormalizeClock(request.Time)
	if !ok {
		return nil, exceptions.ErrSlotNotAvailable(request.CenterID, request.Date, request.Time)
	}
	return &api_dto.AppointmentPayload{
		CenterID: request.CenterID,
		DoctorID: request.DoctorID,
		Date:     date,
		Time:     clock,
		Notes:    request.Notes,
	}, nil
}

func firstN(value string, n int) string {
	if len(value) > n {
		return value[:n]
	}
	return value
}
