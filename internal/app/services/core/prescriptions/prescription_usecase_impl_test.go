package prescriptions

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/contracts/mocks"
	"dialysis-portal-service/internal/app/models"
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

func newTestPrescriptionUsecase() (*prescriptionUsecase, *mocks.PrescriptionAPIClient) {
	api := new(mocks.PrescriptionAPIClient)
	return &prescriptionUsecase{
		PrescriptionAPIClient: api,
		InternalConfig:        &config.InternalConfig{App: config.App{BaseUrl: "http://portal.test", EndpointPrefix: "api", Version: "v1"}},
		Log:                   zap.NewNop(),
		now:                   func() time.Time { return time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC) },
	}, api
}

func TestPrescriptionFindAllLabelsDates(t *testing.T) {
	uc, api := newTestPrescriptionUsecase()
	api.On("FindAll", mock.Anything, "tok", 1).Return(&api_dto.Paginated[api_dto.Prescription]{
		Data: []api_dto.Prescription{
			{ID: 1, Date: "2025-06-02T00:00:00.000000Z"},
			{ID: 2, Date: ""},
		},
		CurrentPage: 1,
		LastPage:    2,
		PerPage:     2,
		Total:       3,
	}, nil)

	prescriptions, pagination, err := uc.FindAll(context.Background(), &models.Session{Token: "tok"}, &requests.Pagination{Page: 1})
	require.NoError(t, err)
	require.Len(t, prescriptions, 2)
	assert.Equal(t, "2 يونيو 2025", prescriptions[0].DateLabel)
	assert.Equal(t, locale.Unspecified, prescriptions[1].DateLabel)
	assert.Equal(t, "http://portal.test/api/v1/prescriptions?page=2", pagination.NextURL)
}

func TestPrescriptionFindByIDNotFound(t *testing.T) {
	uc, api := newTestPrescriptionUsecase()
	api.On("FindByID", mock.Anything, "tok", 8).Return(nil, exceptions.ErrUpstreamNotFound("prescription"))

	_, err := uc.FindByID(context.Background(), &models.Session{Token: "tok"}, 8)
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusNotFound))
}
