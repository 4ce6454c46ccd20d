// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tracenfind/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	ZoneHandler         *handler.ZoneHandler
	PushTokenHandler    *handler.PushTokenHandler
	StreamHandler       *handler.StreamHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	notificationHandler *handler.NotificationHandler
	deviceHandler       *handler.DeviceHandler
	zoneHandler         *handler.ZoneHandler
	pushTokenHandler    *handler.PushTokenHandler
	streamHandler       *handler.StreamHandler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		notificationHandler: params.NotificationHandler,
		deviceHandler:       params.DeviceHandler,
		zoneHandler:         params.ZoneHandler,
		pushTokenHandler:    params.PushTokenHandler,
		streamHandler:       params.StreamHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Every resource is scoped to the user named in the path
	userGroup := e.Group("/api/v1/users/:userId")

	devicesGroup := userGroup.Group("/devices/:deviceId")
	{
		devicesGroup.PUT("", r.deviceHandler.PutSnapshot)
		devicesGroup.GET("/activity", r.deviceHandler.ListActivity)
		devicesGroup.POST("/security-actions", r.deviceHandler.RecordSecurityAction)
	}

	geofencesGroup := userGroup.Group("/geofences")
	{
		geofencesGroup.GET("", r.zoneHandler.ListZones)
		geofencesGroup.PUT("/:zoneId", r.zoneHandler.PutZone)
		geofencesGroup.DELETE("/:zoneId", r.zoneHandler.DeleteZone)
	}

	notificationsGroup := userGroup.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.DELETE("", r.notificationHandler.ClearAll)
		notificationsGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationsGroup.POST("/read-all", r.notificationHandler.MarkAllRead)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead)
	}

	userGroup.GET("/stream", r.streamHandler.Stream)

	pushTokensGroup := userGroup.Group("/push-tokens")
	{
		pushTokensGroup.POST("", r.pushTokenHandler.RegisterToken)
		pushTokensGroup.DELETE("/:tokenId", r.pushTokenHandler.RemoveToken)
	}
}
