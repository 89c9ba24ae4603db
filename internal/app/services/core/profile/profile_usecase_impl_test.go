package profile

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/contracts/mocks"
	"dialysis-portal-service/internal/app/models"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/dto/requests"
	"dialysis-portal-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func newTestProfileUsecase() (*profileUsecase, *mocks.AuthAPIClient, *mocks.SessionManager) {
	auth := new(mocks.AuthAPIClient)
	sessions := new(mocks.SessionManager)
	return &profileUsecase{
		AuthAPIClient:  auth,
		SessionManager: sessions,
		InternalConfig: &config.InternalConfig{App: config.App{ImageMaxUploadSizeInMB: 1}},
		Log:            zap.NewNop(),
	}, auth, sessions
}

func TestProfileUpdateNormalizesBirthDate(t *testing.T) {
	uc, auth, sessions := newTestProfileUsecase()
	session := &models.Session{Token: "tok"}
	dob := "15/03/1990"
	name := "Salem"

	updated := api_dto.User{ID: 7, Name: "Salem", Dob: "1990-03-15", Gender: constvars.GenderMale}
	auth.On("UpdateProfile", mock.Anything, "tok", mock.MatchedBy(func(payload *api_dto.UpdateProfileRequest) bool {
		return payload.Dob != nil && *payload.Dob == "1990-03-15" && *payload.Name == "Salem" && payload.Phone == nil
	})).Return(&api_dto.UpdateProfileResponse{User: updated}, nil)
	sessions.On("StoreUser", mock.Anything, session, updated).Return(nil)

	user, err := uc.Update(context.Background(), session, &requests.UpdateProfile{Name: &name, Dob: &dob})
	require.NoError(t, err)
	assert.Equal(t, "1990-03-15", user.Dob)
	assert.NotEmpty(t, user.GenderLabel)
	sessions.AssertExpectations(t)
}

func TestProfileUploadImageRejectsLargeFile(t *testing.T) {
	uc, auth, _ := newTestProfileUsecase()

	_, err := uc.UploadImage(context.Background(), &models.Session{Token: "tok"}, &requests.UploadImage{
		Filename:    "me.png",
		ContentType: "image/png",
		Size:        2 * 1024 * 1024,
		Content:     pngHeader,
	})
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusRequestTooLarge))
	auth.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileUploadImageRejectsNonImage(t *testing.T) {
	uc, _, _ := newTestProfileUsecase()

	_, err := uc.UploadImage(context.Background(), &models.Session{Token: "tok"}, &requests.UploadImage{
		Filename: "notes.txt",
		Size:     5,
		Content:  []byte("hello"),
	})
	require.Error(t, err)
	assert.True(t, exceptions.IsStatus(err, constvars.StatusBadRequest))
}

func TestProfileUploadImageStoresURL(t *testing.T) {
	uc, auth, sessions := newTestProfileUsecase()
	session := &models.Session{Token: "tok", User: api_dto.User{ID: 7}}

	auth.On("UploadImage", mock.Anything, "tok", mock.Anything).
		Return(&api_dto.UploadImageResponse{ImageURL: "https://cdn.test/7.png"}, nil)
	sessions.On("StoreUser", mock.Anything, session, api_dto.User{ID: 7, Image: "https://cdn.test/7.png"}).Return(nil)

	uploaded, err := uc.UploadImage(context.Background(), session, &requests.UploadImage{
		Filename: "me.png",
		Size:     int64(len(pngHeader)),
		Content:  pngHeader,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/7.png", uploaded.ImageURL)
	sessions.AssertExpectations(t)
}

func TestProfileCheckNationalID(t *testing.T) {
	uc, auth, _ := newTestProfileUsecase()
	auth.On("CheckNationalID", mock.Anything, &api_dto.CheckNationalIDRequest{NationalID: "119900123456"}).
		Return(&api_dto.CheckNationalIDResponse{Exists: true}, nil)

	result, err := uc.CheckNationalID(context.Background(), &requests.CheckNationalID{NationalID: "119900123456"})
	require.NoError(t, err)
	assert.True(t, result.Exists)
}

func TestProfileGetLoadsUser(t *testing.T) {
	uc, _, sessions := newTestProfileUsecase()
	session := &models.Session{Token: "tok"}
	sessions.On("LoadUser", mock.Anything, session).Return(&api_dto.User{ID: 7, Image: "https://cdn.test/7.png"}, nil)

	user, err := uc.Get(context.Background(), session)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/7.png", user.ImageURL)
}
