package controllers

import (
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type AlertController struct {
	Log            *zap.Logger
	AlertUsecase   contracts.AlertUsecase
	InternalConfig *config.InternalConfig
}

func NewAlertController(logger *zap.Logger, alertUsecase contracts.AlertUsecase, internalConfig *config.InternalConfig) *AlertController {
	return &AlertController{
		Log:            logger,
		AlertUsecase:   alertUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AlertController) FindAll(w http.ResponseWriter, r *http.Request) {
	session, err := models.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	alerts, err := ctrl.AlertUsecase.FindAll(ctx, session)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AlertsGetSuccess, alerts)
}

func (ctrl *AlertController) FindNotifications(w http.ResponseWriter, r *http.Request) {
	session, err := models.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	notifications, err := ctrl.AlertUsecase.FindNotifications(ctx, session)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NotificationsGetSuccess, notifications)
}

func (ctrl *AlertController) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	session, err := models.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	alertID, err := utils.ParseIDParam(r, constvars.URLParamAlertID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	err = ctrl.AlertUsecase.MarkAsRead(ctx, session, alertID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AlertReadSuccess, nil)
}

func (ctrl *AlertController) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	session, err := models.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	err = ctrl.AlertUsecase.MarkAllAsRead(ctx, session)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AlertsReadAllSuccess, nil)
}

func (ctrl *AlertController) Delete(w http.ResponseWriter, r *http.Request) {
	session, err := models.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	alertID, err := utils.ParseIDParam(r, constvars.URLParamAlertID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	err = ctrl.AlertUsecase.Delete(ctx, session, alertID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AlertDeletedSuccess, nil)
}
