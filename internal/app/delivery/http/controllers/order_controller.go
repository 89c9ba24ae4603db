package controllers

import (
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/dto/requests"
	"dialysis-portal-service/internal/pkg/exceptions"
	"dialysis-portal-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type OrderController struct {
	Log            *zap.Logger
	OrderUsecase   contracts.OrderUsecase
	InternalConfig *config.InternalConfig
}

func NewOrderController(logger *zap.Logger, orderUsecase contracts.OrderUsecase, internalConfig *config.InternalConfig) *OrderController {
	return &OrderController{
		Log:            logger,
		OrderUsecase:   orderUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *OrderController) FindAll(w http.ResponseWriter, r *http.Request) {
	session, err := models.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationData := utils.BuildPaginationRequest(r)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	orders, pagination, err := ctrl.OrderUsecase.FindAll(ctx, session, paginationData)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.OrdersGetSuccess, pagination, orders)
}

func (ctrl *OrderController) FindByID(w http.ResponseWriter, r *http.Request) {
	session, err := models.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	orderID, err := utils.ParseIDParam(r, constvars.URLParamOrderID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	order, err := ctrl.OrderUsecase.FindByID(ctx, session, orderID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OrderGetSuccess, order)
}

func (ctrl *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	session, err := models.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request, ok := ctrl.bindOrder(w, r)
	if !ok {
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	order, err := ctrl.OrderUsecase.Create(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.OrderCreatedSuccess, order)
}

func (ctrl *OrderController) Update(w http.ResponseWriter, r *http.Request) {
	session, err := models.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	orderID, err := utils.ParseIDParam(r, constvars.URLParamOrderID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request, ok := ctrl.bindOrder(w, r)
	if !ok {
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	order, err := ctrl.OrderUsecase.Update(ctx, session, orderID, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OrderUpdatedSuccess, order)
}

func (ctrl *OrderController) FindProducts(w http.ResponseWriter, r *http.Request) {
	session, err := models.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	products, err := ctrl.OrderUsecase.FindProducts(ctx, session)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProductsGetSuccess, products)
}

func (ctrl *OrderController) bindOrder(w http.ResponseWriter, r *http.Request) (*requests.Order, bool) {
	request := new(requests.Order)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return nil, false
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return nil, false
	}
	return request, true
}
