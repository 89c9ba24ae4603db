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

type HomeController struct {
	Log            *zap.Logger
	HomeUsecase    contracts.HomeUsecase
	InternalConfig *config.InternalConfig
}

func NewHomeController(logger *zap.Logger, homeUsecase contracts.HomeUsecase, internalConfig *config.InternalConfig) *HomeController {
	return &HomeController{
		Log:            logger,
		HomeUsecase:    homeUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *HomeController) Get(w http.ResponseWriter, r *http.Request) {
	session, err := models.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	home, err := ctrl.HomeUsecase.Get(ctx, session)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HomeGetSuccess, home)
}
