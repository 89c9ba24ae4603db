package dialysis_orders

import (
	"context"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/services/dialysis_api/httpclient"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

const resourceName = "orders"

type orderAPIClient struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewOrderAPIClient(client *httpclient.Client, logger *zap.Logger) contracts.OrderAPIClient {
	return &orderAPIClient{
		Client: client,
		Log:    logger,
	}
}

func (c *orderAPIClient) FindAll(ctx context.Context, token string, page int) (*api_dto.Paginated[api_dto.Order], error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("orderAPIClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageKey, page),
	)

	result := new(api_dto.Paginated[api_dto.Order])
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.ResourceOrders,
		Token:    token,
		Query:    url.Values{"page": []string{strconv.Itoa(page)}},
		Resource: resourceName,
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *orderAPIClient) FindByID(ctx context.Context, token string, orderID int) (*api_dto.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("orderAPIClient.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingOrderIDKey, orderID),
	)

	order := new(api_dto.Order)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     fmt.Sprintf("%s/%d", constvars.ResourceOrders, orderID),
		Token:    token,
		Resource: resourceName,
	}, order)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (c *orderAPIClient) Create(ctx context.Context, token string, payload *api_dto.OrderPayload) (*api_dto.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("orderAPIClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCenterIDKey, payload.CenterID),
		zap.Int(constvars.LoggingCountKey, len(payload.Items)),
	)

	order := new(api_dto.Order)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodPost,
		Path:     constvars.ResourceOrders,
		Token:    token,
		Body:     payload,
		Resource: resourceName,
	}, order)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (c *orderAPIClient) Update(ctx context.Context, token string, orderID int, payload *api_dto.OrderPayload) (*api_dto.Order, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("orderAPIClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingOrderIDKey, orderID),
		zap.Int(constvars.LoggingCountKey, len(payload.Items)),
	)

	order := new(api_dto.Order)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodPut,
		Path:     fmt.Sprintf("%s/%d", constvars.ResourceOrders, orderID),
		Token:    token,
		Body:     payload,
		Resource: resourceName,
	}, order)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (c *orderAPIClient) FindProducts(ctx context.Context, token string) ([]api_dto.Product, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("orderAPIClient.FindProducts called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var products []api_dto.Product
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.ResourceProducts,
		Token:    token,
		Resource: "products",
	}, &products)
	if err != nil {
		return nil, err
	}
	return products, nil
}
