package orders

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/models"
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

type orderUsecase struct {
	OrderAPIClient    contracts.OrderAPIClient
	SessionManager    contracts.SessionManager
	SubmissionLimiter *ratelimiter.SubmissionLimiter
	SubmissionLock    *locker.SubmissionLock
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	orderUsecaseInstance contracts.OrderUsecase
	onceOrderUsecase     sync.Once
)

func NewOrderUsecase(
	orderAPIClient contracts.OrderAPIClient,
	sessionManager contracts.SessionManager,
	submissionLimiter *ratelimiter.SubmissionLimiter,
	submissionLock *locker.SubmissionLock,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.OrderUsecase {
	onceOrderUsecase.Do(func() {
		orderUsecaseInstance = &orderUsecase{
			OrderAPIClient:    orderAPIClient,
			SessionManager:    sessionManager,
			SubmissionLimiter: submissionLimiter,
			SubmissionLock:    submissionLock,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return orderUsecaseInstance
}

func (uc *orderUsecase) FindAll(ctx context.Context, session *models.Session, request *requests.Pagination) ([]responses.Order, *responses.Pagination, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, request.Page),
	)

	page, err := uc.OrderAPIClient.FindAll(ctx, session.Token, request.Page)
	if err != nil {
		uc.Log.Error("orderUsecase.FindAll error fetching orders",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, nil, err
	}

	return utils.MapOrdersToResponse(page.Data),
		utils.BuildPaginationResponse(page, uc.InternalConfig.App.ResourceURL("orders")),
		nil
}

func (uc *orderUsecase) FindByID(ctx context.Context, session *models.Session, orderID int) (*responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingOrderIDKey, orderID),
	)

	order, err := uc.OrderAPIClient.FindByID(ctx, session.Token, orderID)
	if err != nil {
		return nil, err
	}
	response := utils.MapOrderToResponse(*order)
	return &response, nil
}

func (uc *orderUsecase) Create(ctx context.Context, session *models.Session, request *requests.Order) (*responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCenterIDKey, request.CenterID),
		zap.Int(constvars.LoggingCountKey, len(request.Items)),
	)

	if len(request.Items) == 0 {
		return nil, exceptions.ErrOrderWithoutItems()
	}

	err := uc.SubmissionLimiter.Allow(ctx, constvars.LimiterGroupOrder, session.Subject())
	if err != nil {
		return nil, err
	}

	release, err := uc.SubmissionLock.Acquire(ctx, constvars.LimiterGroupOrder, session.Subject())
	if err != nil {
		return nil, err
	}
	defer release()

	order, err := uc.OrderAPIClient.Create(ctx, session.Token, buildPayload(request))
	if err != nil {
		uc.Log.Error("orderUsecase.Create error from dialysis API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.SessionManager.InvalidateAlerts(ctx, session)

	uc.Log.Info("orderUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingOrderIDKey, order.ID),
	)
	response := utils.MapOrderToResponse(*order)
	return &response, nil
}

// Update is only allowed while the order is still pending.
func (uc *orderUsecase) Update(ctx context.Context, session *models.Session, orderID int, request *requests.Order) (*responses.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingOrderIDKey, orderID),
	)

	if len(request.Items) == 0 {
		return nil, exceptions.ErrOrderWithoutItems()
	}

	err := uc.SubmissionLimiter.Allow(ctx, constvars.LimiterGroupOrder, session.Subject())
	if err != nil {
		return nil, err
	}

	release, err := uc.SubmissionLock.Acquire(ctx, constvars.LimiterGroupOrder, session.Subject())
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := uc.OrderAPIClient.FindByID(ctx, session.Token, orderID)
	if err != nil {
		return nil, err
	}
	if existing.Status != constvars.OrderStatusPending {
		return nil, exceptions.ErrOrderLocked(orderID, existing.Status)
	}

	order, err := uc.OrderAPIClient.Update(ctx, session.Token, orderID, buildPayload(request))
	if err != nil {
		uc.Log.Error("orderUsecase.Update error from dialysis API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	uc.SessionManager.InvalidateAlerts(ctx, session)

	response := utils.MapOrderToResponse(*order)
	return &response, nil
}

func (uc *orderUsecase) FindProducts(ctx context.Context, session *models.Session) ([]api_dto.Product, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("orderUsecase.FindProducts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	products, err := uc.OrderAPIClient.FindProducts(ctx, session.Token)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []api_dto.Product{}
	}
	return products, nil
}

// buildPayload merges repeated products into one line.
func buildPayload(request *requests.Order) *api_dto.OrderPayload {
	payload := &api_dto.OrderPayload{
		CenterID:      request.CenterID,
		AppointmentID: request.AppointmentID,
		Items:         make([]api_dto.OrderItemPayload, 0, len(request.Items)),
	}
	index := make(map[int]int, len(request.Items))
	for _, item := range request.Items {
		if i, ok := index[item.ProductID]; ok {
			payload.Items[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(payload.Items)
		payload.Items = append(payload.Items, api_dto.OrderItemPayload{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return payload
}
