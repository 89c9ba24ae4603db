package prescriptions

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/dto/requests"
	"dialysis-portal-service/internal/pkg/dto/responses"
	"dialysis-portal-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	PrescriptionAPIClient contracts.PrescriptionAPIClient
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	now                   func() time.Time
}

var (
	prescriptionUsecaseInstance contracts.PrescriptionUsecase
	oncePrescriptionUsecase     sync.Once
)

func NewPrescriptionUsecase(
	prescriptionAPIClient contracts.PrescriptionAPIClient,
	internalConfig *config.InternalConfig,
	location *time.Location,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	oncePrescriptionUsecase.Do(func() {
		prescriptionUsecaseInstance = &prescriptionUsecase{
			PrescriptionAPIClient: prescriptionAPIClient,
			InternalConfig:        internalConfig,
			Log:                   logger,
			now:                   func() time.Time { return time.Now().In(location) },
		}
	})
	return prescriptionUsecaseInstance
}

func (uc *prescriptionUsecase) FindAll(ctx context.Context, session *models.Session, request *requests.Pagination) ([]responses.Prescription, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, request.Page),
	)

	page, err := uc.PrescriptionAPIClient.FindAll(ctx, session.Token, request.Page)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.FindAll error fetching prescriptions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	return utils.MapPrescriptionsToResponse(page.Data, uc.now()),
		utils.BuildPaginationResponse(page, uc.InternalConfig.App.ResourceURL("prescriptions")),
		nil
}

func (uc *prescriptionUsecase) FindByID(ctx context.Context, session *models.Session, prescriptionID int) (*responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPrescriptionIDKey, prescriptionID),
	)

	prescription, err := uc.PrescriptionAPIClient.FindByID(ctx, session.Token, prescriptionID)
	if err != nil {
		return nil, err
	}
	response := utils.MapPrescriptionToResponse(*prescription, uc.now())
	return &response, nil
}
