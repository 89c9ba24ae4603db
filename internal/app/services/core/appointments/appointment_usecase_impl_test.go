package appointments

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/contracts/mocks"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/app/services/core/availability"
	"dialysis-portal-service/internal/app/services/shared/ratelimiter"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/dto/requests"
	"dialysis-portal-service/internal/pkg/exceptions"
	"dialysis-portal-service/internal/pkg/locale"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	uc       *appointmentUsecase
	api      *mocks.AppointmentAPIClient
	catalog  *mocks.CenterCatalog
	sessions *mocks.SessionManager
}

var testSession = &models.Session{SessionID: "s1", Token: "tok", User: api_dto.User{ID: 7}}

func newFixture() *fixture {
	// 2025-06-02 is a Monday.
	now := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	cfg := &config.InternalConfig{
		App: config.App{BaseUrl: "http://portal.test", EndpointPrefix: "api", Version: "v1"},
	}
	f := &fixture{
		api:      new(mocks.AppointmentAPIClient),
		catalog:  new(mocks.CenterCatalog),
		sessions: new(mocks.SessionManager),
	}
	f.uc = &appointmentUsecase{
		AppointmentAPIClient: f.api,
		CenterCatalog:        f.catalog,
		SessionManager:       f.sessions,
		SubmissionLimiter:    ratelimiter.NewSubmissionLimiter(nil, zap.NewNop(), cfg),
		Availability: availability.NewService(locale.NewArabic(),
			availability.WithNow(func() time.Time { return now }),
			availability.WithLocation(time.UTC),
		),
		InternalConfig: cfg,
		Log:            zap.NewNop(),
	}
	f.catalog.On("FindByID", mock.Anything, "tok", 1).Return(&api_dto.Center{
		ID: 1,
		Schedules: []api_dto.Schedule{
			{ID: 1, CenterID: 1, Day: "monday", StartTime: "09:00:00", EndTime: "11:00:00", IsActive: true},
		},
	}, nil)
	return f
}

func TestAppointmentCreateNormalizesPayload(t *testing.T) {
	f := newFixture()
	f.api.On("Create", mock.Anything, "tok", &api_dto.AppointmentPayload{
		CenterID: 1,
		Date:     "2025-06-09",
		Time:     "09:30:00",
		Notes:    "first session",
	}).Return(&api_dto.Appointment{ID: 55, CenterID: 1, Date: "2025-06-09", Time: "09:30:00", Status: constvars.AppointmentStatusPending}, nil)
	f.sessions.On("InvalidateAlerts", mock.Anything, testSession).Return()

	appointment, err := f.uc.Create(context.Background(), testSession, &requests.Appointment{
		CenterID: 1,
		Date:     "2025-06-09",
		Time:     "09:30",
		Notes:    "first session",
	})
	require.NoError(t, err)
	assert.Equal(t, 55, appointment.ID)
	assert.True(t, appointment.Editable)
	f.api.AssertExpectations(t)
	f.sessions.AssertExpectations(t)
}

func TestAppointmentCreateRejectsTimeOffTheGrid(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(context.Background(), testSession, &requests.Appointment{
		CenterID: 1,
		Date:     "2025-06-09",
		Time:     "09:45",
	})
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusUnprocessableEntity))
	f.api.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestAppointmentCreateRejectsDateBeyondHorizon(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Create(context.Background(), testSession, &requests.Appointment{
		CenterID: 1,
		Date:     "2025-06-16",
		Time:     "09:00",
	})
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusUnprocessableEntity))
}

func TestAppointmentUpdateDirtyIsLocked(t *testing.T) {
	f := newFixture()
	f.api.On("FindByID", mock.Anything, "tok", 9).Return(&api_dto.Appointment{ID: 9, CenterID: 1, IsDirty: true}, nil)

	_, err := f.uc.Update(context.Background(), testSession, 9, &requests.Appointment{CenterID: 1, Date: "2025-06-09", Time: "09:00"})
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusConflict))
	f.api.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAppointmentUpdateKeepsLegacyTime(t *testing.T) {
	f := newFixture()
	// 09:40 is not on the grid and the date is past, but neither moves.
	f.api.On("FindByID", mock.Anything, "tok", 9).Return(&api_dto.Appointment{ID: 9, CenterID: 1, Date: "2025-05-26T00:00:00.000000Z", Time: "09:40:00"}, nil)
	f.api.On("Update", mock.Anything, "tok", 9, &api_dto.AppointmentPayload{
		CenterID: 1,
		Date:     "2025-05-26",
		Time:     "09:40:00",
		Notes:    "bring results",
	}).Return(&api_dto.Appointment{ID: 9, CenterID: 1, Date: "2025-05-26", Time: "09:40:00", Notes: "bring results"}, nil)
	f.sessions.On("InvalidateAlerts", mock.Anything, testSession).Return()

	appointment, err := f.uc.Update(context.Background(), testSession, 9, &requests.Appointment{
		CenterID: 1,
		Date:     "2025-05-26",
		Time:     "09:40",
		Notes:    "bring results",
	})
	require.NoError(t, err)
	assert.Equal(t, "bring results", appointment.Notes)
	f.catalog.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestAppointmentUpdateMovingSlotIsValidated(t *testing.T) {
	f := newFixture()
	f.api.On("FindByID", mock.Anything, "tok", 9).Return(&api_dto.Appointment{ID: 9, CenterID: 1, Date: "2025-06-02", Time: "09:00:00"}, nil)

	_, err := f.uc.Update(context.Background(), testSession, 9, &requests.Appointment{CenterID: 1, Date: "2025-06-09", Time: "11:00"})
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusUnprocessableEntity))
}

func TestAppointmentFindAllBuildsPagination(t *testing.T) {
	f := newFixture()
	f.api.On("FindAll", mock.Anything, "tok", 2).Return(&api_dto.Paginated[api_dto.Appointment]{
		Data:        []api_dto.Appointment{{ID: 1, Date: "2025-06-09", Time: "09:00:00", Status: constvars.AppointmentStatusConfirmed}},
		CurrentPage: 2,
		LastPage:    3,
		PerPage:     10,
		Total:       25,
	}, nil)

	appointments, pagination, err := f.uc.FindAll(context.Background(), testSession, &requests.Pagination{Page: 2})
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "http://portal.test/api/v1/appointments?page=3", pagination.NextURL)
	assert.Equal(t, "http://portal.test/api/v1/appointments?page=1", pagination.PrevURL)
	assert.Equal(t, 25, pagination.Total)
}

func TestAppointmentFindOrderable(t *testing.T) {
	f := newFixture()
	f.api.On("FindOrderable", mock.Anything, "tok").Return([]api_dto.Appointment{{ID: 3}, {ID: 4}}, nil)

	appointments, err := f.uc.FindOrderable(context.Background(), testSession)
	require.NoError(t, err)
	assert.Len(t, appointments, 2)
}
