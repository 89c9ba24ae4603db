package profile

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/dto/requests"
	"dialysis-portal-service/internal/pkg/dto/responses"
	"dialysis-portal-service/internal/pkg/exceptions"
	"dialysis-portal-service/internal/pkg/utils"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type profileUsecase struct {
	AuthAPIClient  contracts.AuthAPIClient
	SessionManager contracts.SessionManager
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	profileUsecaseInstance contracts.ProfileUsecase
	onceProfileUsecase     sync.Once
)

func NewProfileUsecase(
	authAPIClient contracts.AuthAPIClient,
	sessionManager contracts.SessionManager,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ProfileUsecase {
	onceProfileUsecase.Do(func() {
		profileUsecaseInstance = &profileUsecase{
			AuthAPIClient:  authAPIClient,
			SessionManager: sessionManager,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return profileUsecaseInstance
}

func (uc *profileUsecase) Get(ctx context.Context, session *models.Session) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.SessionManager.LoadUser(ctx, session)
	if err != nil {
		return nil, err
	}
	response := utils.MapUserToResponse(*user)
	return &response, nil
}

func (uc *profileUsecase) Update(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*responses.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, session.User.ID),
	)

	payload := &api_dto.UpdateProfileRequest{
		FileNumber:        request.FileNumber,
		NationalID:        request.NationalID,
		FamilyIssueNumber: request.FamilyIssueNumber,
		Name:              request.Name,
		Phone:             request.Phone,
		Email:             request.Email,
		Gender:            request.Gender,
		BloodGroup:        request.BloodGroup,
		CenterID:          request.CenterID,
	}
	if request.Dob != nil {
		dob, ok := utils.NormalizeDate(*request.Dob)
		if !ok {
			return nil, exceptions.ErrInvalidField("dob", "dob "+constvars.CustomValidationErrorMessages["birth_date"])
		}
		payload.Dob = &dob
	}

	updated, err := uc.AuthAPIClient.UpdateProfile(ctx, session.Token, payload)
	if err != nil {
		uc.Log.Error("profileUsecase.Update error from dialysis API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	err = uc.SessionManager.StoreUser(ctx, session, updated.User)
	if err != nil {
		uc.Log.Warn("profileUsecase.Update cannot refresh session user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	response := utils.MapUserToResponse(updated.User)
	return &response, nil
}

// UploadImage forwards a profile picture after checking its size and type.
func (uc *profileUsecase) UploadImage(ctx context.Context, session *models.Session, request *requests.UploadImage) (*responses.UploadImage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.UploadImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("size", request.Size),
	)

	limit := uc.InternalConfig.App.ImageMaxUploadSizeInMB * 1024 * 1024
	size := request.Size
	if size < int64(len(request.Content)) {
		size = int64(len(request.Content))
	}
	if limit > 0 && size > limit {
		return nil, exceptions.ErrImageTooLarge(size, limit)
	}

	contentType := request.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(request.Content)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, exceptions.ErrInvalidImageFormat(contentType)
	}
	request.ContentType = contentType

	uploaded, err := uc.AuthAPIClient.UploadImage(ctx, session.Token, request)
	if err != nil {
		uc.Log.Error("profileUsecase.UploadImage error from dialysis API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	user := session.User
	user.Image = uploaded.ImageURL
	err = uc.SessionManager.StoreUser(ctx, session, user)
	if err != nil {
		uc.Log.Warn("profileUsecase.UploadImage cannot refresh session user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	return &responses.UploadImage{ImageURL: uploaded.ImageURL}, nil
}

func (uc *profileUsecase) CheckNationalID(ctx context.Context, request *requests.CheckNationalID) (*responses.CheckNationalID, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.CheckNationalID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result, err := uc.AuthAPIClient.CheckNationalID(ctx, &api_dto.CheckNationalIDRequest{NationalID: request.NationalID})
	if err != nil {
		return nil, err
	}
	return &responses.CheckNationalID{Exists: result.Exists}, nil
}
