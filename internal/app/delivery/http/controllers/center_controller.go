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
	"strings"

	"go.uber.org/zap"
)

type CenterController struct {
	Log            *zap.Logger
	CenterUsecase  contracts.CenterUsecase
	InternalConfig *config.InternalConfig
}

func NewCenterController(logger *zap.Logger, centerUsecase contracts.CenterUsecase, internalConfig *config.InternalConfig) *CenterController {
	return &CenterController{
		Log:            logger,
		CenterUsecase:  centerUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *CenterController) FindAll(w http.ResponseWriter, r *http.Request) {
	session, err := models.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	centers, err := ctrl.CenterUsecase.FindAll(ctx, session)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CentersGetSuccess, centers)
}

// FindOptions returns the bare center list used by select inputs.
func (ctrl *CenterController) FindOptions(w http.ResponseWriter, r *http.Request) {
	session, err := models.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	centers, err := ctrl.CenterUsecase.FindOptions(ctx, session)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CentersGetSuccess, centers)
}

func (ctrl *CenterController) ListAvailableDates(w http.ResponseWriter, r *http.Request) {
	session, err := models.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	centerID, err := utils.ParseIDParam(r, constvars.URLParamCenterID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	dates, err := ctrl.CenterUsecase.ListAvailableDates(ctx, session, centerID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailableDatesGetSuccess, dates)
}

func (ctrl *CenterController) ListAvailableTimes(w http.ResponseWriter, r *http.Request) {
	session, err := models.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	centerID, err := utils.ParseIDParam(r, constvars.URLParamCenterID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	query := r.URL.Query()
	request := &requests.AvailableTimes{
		CenterID: centerID,
		Date:     strings.TrimSpace(query.Get("date")),
		Time:     strings.TrimSpace(query.Get("time")),
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	times, err := ctrl.CenterUsecase.ListAvailableTimes(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AvailableTimesGetSuccess, times)
}
