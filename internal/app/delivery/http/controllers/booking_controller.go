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

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
	InternalConfig *config.InternalConfig
}

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase, internalConfig *config.InternalConfig) *BookingController {
	return &BookingController{
		Log:            logger,
		BookingUsecase: bookingUsecase,
		InternalConfig: internalConfig,
	}
}

// Step resolves the booking form for ?center_id=&date=&time=. Every
// parameter is optional; missing ones leave the form at an earlier stage.
func (ctrl *BookingController) Step(w http.ResponseWriter, r *http.Request) {
	session, err := models.SessionFromContext(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	query := r.URL.Query()
	request := &requests.BookingStep{
		CenterID: utils.QueryInt(r, "center_id"),
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

	step, err := ctrl.BookingUsecase.Step(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingStepSuccess, step)
}
