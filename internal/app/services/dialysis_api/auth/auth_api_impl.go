package dialysis_auth

import (
	"context"
	"dialysis-portal-service/internal/app/contracts"
	"dialysis-portal-service/internal/app/services/dialysis_api/httpclient"
	"dialysis-portal-service/internal/pkg/api_dto"
	"dialysis-portal-service/internal/pkg/constvars"
	"dialysis-portal-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type authAPIClient struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewAuthAPIClient(client *httpclient.Client, logger *zap.Logger) contracts.AuthAPIClient {
	return &authAPIClient{
		Client: client,
		Log:    logger,
	}
}

func (c *authAPIClient) Login(ctx context.Context, request *api_dto.LoginRequest) (*api_dto.TokenResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authAPIClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := new(api_dto.TokenResponse)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:      constvars.MethodPost,
		Path:        constvars.ResourceLogin,
		Body:        request,
		Resource:    "login",
		Credentials: true,
	}, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *authAPIClient) Register(ctx context.Context, request *api_dto.RegisterRequest) (*api_dto.TokenResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authAPIClient.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := new(api_dto.TokenResponse)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodPost,
		Path:     constvars.ResourceRegister,
		Body:     request,
		Resource: "register",
	}, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *authAPIClient) Logout(ctx context.Context, token string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authAPIClient.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodPost,
		Path:     constvars.ResourceLogout,
		Token:    token,
		Resource: "logout",
	}, nil)
}

func (c *authAPIClient) Me(ctx context.Context, token string) (*api_dto.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authAPIClient.Me called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user := new(api_dto.User)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodGet,
		Path:     constvars.ResourceMe,
		Token:    token,
		Resource: "me",
	}, user)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (c *authAPIClient) UpdateProfile(ctx context.Context, token string, request *api_dto.UpdateProfileRequest) (*api_dto.UpdateProfileResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authAPIClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := new(api_dto.UpdateProfileResponse)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodPut,
		Path:     constvars.ResourceUpdateProfile,
		Token:    token,
		Body:     request,
		Resource: "update",
	}, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *authAPIClient) UploadImage(ctx context.Context, token string, request *requests.UploadImage) (*api_dto.UploadImageResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authAPIClient.UploadImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("size", request.Size),
	)

	response := new(api_dto.UploadImageResponse)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method: constvars.MethodPost,
		Path:   constvars.ResourceUploadImage,
		Token:  token,
		Multipart: &httpclient.MultipartFile{
			Field:       constvars.MultipartImageField,
			Filename:    request.Filename,
			ContentType: request.ContentType,
			Content:     request.Content,
		},
		Resource: "upload-image",
	}, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (c *authAPIClient) CheckNationalID(ctx context.Context, request *api_dto.CheckNationalIDRequest) (*api_dto.CheckNationalIDResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authAPIClient.CheckNationalID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := new(api_dto.CheckNationalIDResponse)
	err := c.Client.Do(ctx, &httpclient.Request{
		Method:   constvars.MethodPost,
		Path:     constvars.ResourceCheckNationalID,
		Body:     request,
		Resource: "check-national-id",
	}, response)
	if err != nil {
		return nil, err
	}
	return response, nil
}
