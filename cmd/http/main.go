package main

import (
	"context"
	"dialysis-portal-service/internal/app/config"
	"dialysis-portal-service/internal/app/delivery/http/controllers"
	"dialysis-portal-service/internal/app/delivery/http/middlewares"
	"dialysis-portal-service/internal/app/delivery/http/routers"
	"dialysis-portal-service/internal/app/drivers/database"
	"dialysis-portal-service/internal/app/drivers/logger"
	"dialysis-portal-service/internal/app/drivers/metrics"
	"dialysis-portal-service/internal/app/services/core/alerts"
	"dialysis-portal-service/internal/app/services/core/appointments"
	"dialysis-portal-service/internal/app/services/core/availability"
	"dialysis-portal-service/internal/app/services/core/booking"
	"dialysis-portal-service/internal/app/services/core/centers"
	"dialysis-portal-service/internal/app/services/core/home"
	"dialysis-portal-service/internal/app/services/core/orders"
	"dialysis-portal-service/internal/app/services/core/prescriptions"
	"dialysis-portal-service/internal/app/services/core/profile"
	"dialysis-portal-service/internal/app/services/core/session"
	alertsAPI "dialysis-portal-service/internal/app/services/dialysis_api/alerts"
	appointmentsAPI "dialysis-portal-service/internal/app/services/dialysis_api/appointments"
	authAPI "dialysis-portal-service/internal/app/services/dialysis_api/auth"
	centersAPI "dialysis-portal-service/internal/app/services/dialysis_api/centers"
	homeAPI "dialysis-portal-service/internal/app/services/dialysis_api/home"
	"dialysis-portal-service/internal/app/services/dialysis_api/httpclient"
	ordersAPI "dialysis-portal-service/internal/app/services/dialysis_api/orders"
	prescriptionsAPI "dialysis-portal-service/internal/app/services/dialysis_api/prescriptions"
	"dialysis-portal-service/internal/app/services/shared/jwtmanager"
	"dialysis-portal-service/internal/app/services/shared/locker"
	"dialysis-portal-service/internal/app/services/shared/ratelimiter"
	"dialysis-portal-service/internal/app/services/shared/redis"
	"dialysis-portal-service/internal/pkg/locale"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		Registry:       metrics.NewRegistry(),
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap, location)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), internalConfig.App.ShutdownTimeout)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Error closing resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, location *time.Location) {
	cfg := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Metrics
	httpMetrics := metrics.NewHTTPMetrics(bootstrap.Registry)
	upstreamMetrics := metrics.NewUpstreamMetrics(bootstrap.Registry)

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	submissionLimiter := ratelimiter.NewSubmissionLimiter(redisRepository, log, cfg)
	submissionLock := locker.NewSubmissionLock(redisRepository, log, cfg)

	// Dialysis API
	apiClient := httpclient.NewClient(cfg, upstreamMetrics, log)
	authAPIClient := authAPI.NewAuthAPIClient(apiClient, log)
	centerAPIClient := centersAPI.NewCenterAPIClient(apiClient, log)
	appointmentAPIClient := appointmentsAPI.NewAppointmentAPIClient(apiClient, log)
	orderAPIClient := ordersAPI.NewOrderAPIClient(apiClient, log)
	prescriptionAPIClient := prescriptionsAPI.NewPrescriptionAPIClient(apiClient, log)
	alertAPIClient := alertsAPI.NewAlertAPIClient(apiClient, log)
	homeAPIClient := homeAPI.NewHomeAPIClient(apiClient, log)

	// Availability
	availabilityService := availability.NewService(
		locale.NewArabic(),
		availability.WithLocation(location),
		availability.WithHorizonDays(cfg.Booking.HorizonDays),
		availability.WithInactiveWindows(cfg.Booking.IncludeInactiveSchedules),
	)

	// Session
	jwtManager := jwtmanager.NewJWTManager(cfg)
	sessionManager := session.NewSessionManager(authAPIClient, redisRepository, jwtManager, cfg, log)

	// Usecases
	centerCatalog := centers.NewCenterCatalog(centerAPIClient, redisRepository, cfg, upstreamMetrics, log)
	centerUsecase := centers.NewCenterUsecase(centerCatalog, centerAPIClient, availabilityService, log)
	bookingUsecase := booking.NewBookingUsecase(centerCatalog, availabilityService, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentAPIClient, centerCatalog, sessionManager, submissionLimiter, submissionLock, availabilityService, cfg, log)
	orderUsecase := orders.NewOrderUsecase(orderAPIClient, sessionManager, submissionLimiter, submissionLock, cfg, log)
	prescriptionUsecase := prescriptions.NewPrescriptionUsecase(prescriptionAPIClient, cfg, location, log)
	profileUsecase := profile.NewProfileUsecase(authAPIClient, sessionManager, cfg, log)
	alertUsecase := alerts.NewAlertUsecase(alertAPIClient, redisRepository, sessionManager, cfg, upstreamMetrics, location, log)
	homeUsecase := home.NewHomeUsecase(homeAPIClient, location, log)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(log, sessionManager, httpMetrics, cfg)

	routers.SetupRoutes(
		bootstrap.Router,
		cfg,
		middlewareInstance,
		bootstrap.Registry,
		controllers.NewAuthController(log, sessionManager, profileUsecase, cfg),
		controllers.NewProfileController(log, profileUsecase, cfg),
		controllers.NewHomeController(log, homeUsecase, cfg),
		controllers.NewCenterController(log, centerUsecase, cfg),
		controllers.NewBookingController(log, bookingUsecase, cfg),
		controllers.NewAppointmentController(log, appointmentUsecase, cfg),
		controllers.NewOrderController(log, orderUsecase, cfg),
		controllers.NewPrescriptionController(log, prescriptionUsecase, cfg),
		controllers.NewAlertController(log, alertUsecase, cfg),
	)
}
