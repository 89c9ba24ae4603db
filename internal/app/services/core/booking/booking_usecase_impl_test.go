package booking

import (
	"context"
	"dialysis-portal-service/internal/app/contracts/mocks"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/dto/requests"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBookingUsecase() (*bookingUsecase, *mocks.CenterCatalog) {
	catalog := new(mocks.CenterCatalog)
	return &bookingUsecase{
		CenterCatalog: catalog,
		Availability:  newTestService(),
		Log:           zap.NewNop(),
	}, catalog
}

func TestBookingStepReplaysForm(t *testing.T) {
	uc, catalog := newTestBookingUsecase()
	catalog.On("FindByID", mock.Anything, "tok", 3).Return(&api_dto.Center{
		ID: 3,
		Schedules: []api_dto.Schedule{
			{ID: 1, CenterID: 3, Day: "monday", StartTime: "09:00:00", EndTime: "11:00:00", IsActive: true},
		},
	}, nil)
	session := &models.Session{Token: "tok"}

	step, err := uc.Step(context.Background(), session, &requests.BookingStep{CenterID: 3})
	require.NoError(t, err)
	assert.Equal(t, string(StageDatesReady), step.Stage)
	assert.Len(t, step.Dates, 2)
	assert.Empty(t, step.Times)

	step, err = uc.Step(context.Background(), session, &requests.BookingStep{CenterID: 3, Date: "2025-06-02", Time: "09:20"})
	require.NoError(t, err)
	assert.Equal(t, string(StageTimeChosen), step.Stage)
	assert.Equal(t, "09:30", step.SelectedTime)
	require.NotNil(t, step.Window)
	assert.Equal(t, "11:00", step.Window.End)
}

func TestBookingStepWithoutCenter(t *testing.T) {
	uc, catalog := newTestBookingUsecase()

	step, err := uc.Step(context.Background(), &models.Session{}, &requests.BookingStep{})
	require.NoError(t, err)
	assert.Equal(t, string(StageNoCenter), step.Stage)
	catalog.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingStepPropagatesCatalogError(t *testing.T) {
	uc, catalog := newTestBookingUsecase()
	catalog.On("FindByID", mock.Anything, "tok", 3).Return(nil, errors.New("redis down"))

	_, err := uc.Step(context.Background(), &models.Session{Token: "tok"}, &requests.BookingStep{CenterID: 3})
	assert.Error(t, err)
}
