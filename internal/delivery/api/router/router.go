// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"urjabandhu/internal/delivery/api/middleware"
	"urjabandhu/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	AuthHandler         *handler.AuthHandler
	ProfileHandler      *handler.ProfileHandler
	DeviceHandler       *handler.DeviceHandler
	ConnectionHandler   *handler.ConnectionHandler
	ConsumptionHandler  *handler.ConsumptionHandler
	InsightHandler      *handler.InsightHandler
	AutomationHandler   *handler.AutomationHandler
	NotificationHandler *handler.NotificationHandler
	AnalyticsHandler    *handler.AnalyticsHandler
	RealtimeHandler     *handler.RealtimeHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler       *handler.HealthHandler
	authHandler         *handler.AuthHandler
	profileHandler      *handler.ProfileHandler
	deviceHandler       *handler.DeviceHandler
	connectionHandler   *handler.ConnectionHandler
	consumptionHandler  *handler.ConsumptionHandler
	insightHandler      *handler.InsightHandler
	automationHandler   *handler.AutomationHandler
	notificationHandler *handler.NotificationHandler
	analyticsHandler    *handler.AnalyticsHandler
	realtimeHandler     *handler.RealtimeHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:       params.HealthHandler,
		authHandler:         params.AuthHandler,
		profileHandler:      params.ProfileHandler,
		deviceHandler:       params.DeviceHandler,
		connectionHandler:   params.ConnectionHandler,
		consumptionHandler:  params.ConsumptionHandler,
		insightHandler:      params.InsightHandler,
		automationHandler:   params.AutomationHandler,
		notificationHandler: params.NotificationHandler,
		analyticsHandler:    params.AnalyticsHandler,
		realtimeHandler:     params.RealtimeHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/ready", r.healthHandler.Ready)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google", r.authHandler.GoogleLogin)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// The websocket handshake cannot carry headers from browsers, so it is
	// registered outside the header-only group.
	e.GET("/api/v1/realtime/ws", r.realtimeHandler.Stream, r.authMiddleware.AuthenticateWebSocket)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
		profileGroup.PUT("/notifications", r.profileHandler.UpdateNotificationPreferences)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.POST("", r.deviceHandler.CreateDevice)
		devicesGroup.POST("/detect", r.deviceHandler.DetectDevice)
		devicesGroup.GET("/:id", r.deviceHandler.GetDevice)
		devicesGroup.PUT("/:id", r.deviceHandler.UpdateDevice)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeleteDevice)
		devicesGroup.GET("/:id/control", r.deviceHandler.GetDeviceControl)
		devicesGroup.PUT("/:id/control", r.deviceHandler.UpdateDeviceControl)
		devicesGroup.POST("/:id/actions", r.deviceHandler.ExecuteAction)
	}

	connectionsGroup := apiV1.Group("/connections")
	{
		connectionsGroup.GET("", r.connectionHandler.ListConnections)
		connectionsGroup.POST("", r.connectionHandler.CreateConnection)
		connectionsGroup.PUT("/:id", r.connectionHandler.UpdateConnection)
		connectionsGroup.DELETE("/:id", r.connectionHandler.DeleteConnection)
		connectionsGroup.POST("/:id/primary", r.connectionHandler.SetPrimaryConnection)
		connectionsGroup.GET("/:id/qrcode", r.connectionHandler.ConnectionQRCode)
	}

	consumptionGroup := apiV1.Group("/consumption")
	{
		consumptionGroup.GET("", r.consumptionHandler.ListConsumption)
		consumptionGroup.POST("", r.consumptionHandler.RecordConsumption)
		consumptionGroup.GET("/export", r.consumptionHandler.ExportCSV)
	}

	goalsGroup := apiV1.Group("/goals")
	{
		goalsGroup.GET("", r.insightHandler.ListGoals)
		goalsGroup.POST("", r.insightHandler.CreateGoal)
		goalsGroup.PUT("/:id", r.insightHandler.UpdateGoal)
		goalsGroup.DELETE("/:id", r.insightHandler.DeleteGoal)
	}

	alertsGroup := apiV1.Group("/alerts")
	{
		alertsGroup.GET("", r.insightHandler.ListAlerts)
		alertsGroup.POST("", r.insightHandler.CreateAlert)
		alertsGroup.PUT("/:id/read", r.insightHandler.MarkAlertRead)
		alertsGroup.PUT("/:id/resolve", r.insightHandler.ResolveAlert)
		alertsGroup.DELETE("/:id", r.insightHandler.DeleteAlert)
	}

	recommendationsGroup := apiV1.Group("/recommendations")
	{
		recommendationsGroup.GET("", r.insightHandler.ListRecommendations)
		recommendationsGroup.POST("", r.insightHandler.CreateRecommendation)
		recommendationsGroup.PUT("/:id", r.insightHandler.UpdateRecommendation)
		recommendationsGroup.DELETE("/:id", r.insightHandler.DeleteRecommendation)
	}

	billingGroup := apiV1.Group("/billing")
	{
		billingGroup.GET("", r.insightHandler.ListBills)
		billingGroup.POST("", r.insightHandler.CreateBill)
		billingGroup.PUT("/:id", r.insightHandler.UpdateBill)
		billingGroup.DELETE("/:id", r.insightHandler.DeleteBill)
	}

	automationGroup := apiV1.Group("/automation")
	{
		automationGroup.GET("/rules", r.automationHandler.ListRules)
		automationGroup.POST("/rules", r.automationHandler.CreateRule)
		automationGroup.PUT("/rules/:id", r.automationHandler.UpdateRule)
		automationGroup.DELETE("/rules/:id", r.automationHandler.DeleteRule)
		automationGroup.POST("/rules/:id/toggle", r.automationHandler.ToggleRule)
		automationGroup.POST("/rules/:id/trigger", r.automationHandler.TriggerRule)

		automationGroup.GET("/schedules", r.automationHandler.ListSchedules)
		automationGroup.POST("/schedules", r.automationHandler.CreateSchedule)
		automationGroup.PUT("/schedules/:id", r.automationHandler.UpdateSchedule)
		automationGroup.DELETE("/schedules/:id", r.automationHandler.DeleteSchedule)

		automationGroup.GET("/logs", r.automationHandler.ListLogs)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.PUT("/read-all", r.notificationHandler.MarkAllRead)
		notificationsGroup.PUT("/:id/read", r.notificationHandler.MarkRead)
		notificationsGroup.DELETE("/:id", r.notificationHandler.DeleteNotification)
	}

	analyticsGroup := apiV1.Group("/analytics")
	{
		analyticsGroup.GET("/timeseries", r.analyticsHandler.TimeSeries)
		analyticsGroup.GET("/hourly", r.analyticsHandler.HourlyPattern)
		analyticsGroup.GET("/predictions", r.analyticsHandler.Predictions)
		analyticsGroup.GET("/summary", r.analyticsHandler.Summary)
	}

	apiV1.GET("/realtime/snapshot", r.realtimeHandler.Snapshot)
}
