package main

import (
	"context"

	"urjabandhu/config"
	"urjabandhu/internal/delivery"
	"urjabandhu/internal/delivery/api"
	"urjabandhu/internal/delivery/api/middleware"
	"urjabandhu/internal/delivery/api/router/handler"
	"urjabandhu/internal/infra/alerts"
	"urjabandhu/internal/infra/auth"
	"urjabandhu/internal/infra/auth/google"
	"urjabandhu/internal/infra/detection"
	"urjabandhu/internal/infra/devicecontrol"
	logs "urjabandhu/internal/infra/log"
	"urjabandhu/internal/infra/notification"
	"urjabandhu/internal/infra/persistence/postgres"
	"urjabandhu/internal/infra/pubsub"
	"urjabandhu/internal/infra/qrcode"
	"urjabandhu/internal/infra/storage"
	"urjabandhu/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.WithLogger(delivery.FxLogger),
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(delivery.Start),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewProfileRepository,
			postgres.NewDeviceRepository,
			postgres.NewDeviceControlRepository,
			postgres.NewConnectionRepository,
			postgres.NewConsumptionRepository,
			postgres.NewGoalRepository,
			postgres.NewAlertRepository,
			postgres.NewRecommendationRepository,
			postgres.NewBillingRepository,
			postgres.NewAutomationRuleRepository,
			postgres.NewDeviceScheduleRepository,
			postgres.NewAutomationLogRepository,
			postgres.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewAuthService,
			notification.NewNotificationService,
			qrcode.NewQRCodeServiceFromConfig,
			pubsub.NewEventPublisher,
			storage.NewPhotoStorage,
			detection.NewDeviceDetector,
			alerts.NewAlertNotifier,
			devicecontrol.NewDeviceCommander,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewProfileService,
			impl.NewDeviceService,
			impl.NewConnectionService,
			impl.NewAnalyticsService,
			impl.NewConsumptionService,
			impl.NewGoalService,
			impl.NewAlertService,
			impl.NewRecommendationService,
			impl.NewBillingService,
			impl.NewNotificationService,
			impl.NewAutomationService,
			impl.NewDetectionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(postgres.NewPinger, fx.As(new(handler.Pinger))),
			handler.NewHealthHandler,
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewDeviceHandler,
			handler.NewConnectionHandler,
			handler.NewConsumptionHandler,
			handler.NewInsightHandler,
			handler.NewAutomationHandler,
			handler.NewNotificationHandler,
			handler.NewAnalyticsHandler,
			handler.NewRealtimeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}
