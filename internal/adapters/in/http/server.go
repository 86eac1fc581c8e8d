// Package http exposes the restaurant engine over REST and pushes
// notification events to WebSocket subscribers.
package http

import (
	"context"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/notifier"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
)

// Handlers groups the use cases the API dispatches to.
type Handlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	MarkItemReady        commands.MarkItemReadyCommandHandler
	StartItemPreparation commands.StartItemPreparationCommandHandler
	MarkOrderServed      commands.MarkOrderServedCommandHandler
	CloseOrder           commands.CloseOrderCommandHandler
	CreateTable          commands.CreateTableCommandHandler
	CreateMenuItem       commands.CreateMenuItemCommandHandler
	SetAvailability      commands.SetMenuItemAvailabilityCommandHandler
	CreateStaff          commands.CreateStaffCommandHandler

	GetOrder      queries.GetOrderQueryHandler
	GetTasks      queries.GetPendingTasksQueryHandler
	ListTables    queries.ListTablesQueryHandler
	ListMenuItems queries.ListMenuItemsQueryHandler
	ListStaff     queries.ListStaffQueryHandler
}

// Hub is the subscriber registry behind the WebSocket endpoint.
type Hub interface {
	Subscribe() *notifier.Subscription
	Unsubscribe(sub *notifier.Subscription)
	Count() int
}

// Pinger reports whether the store answers.
type Pinger func(ctx context.Context) error

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	hub      Hub
	ping     Pinger
	version  string
	logger   logrus.FieldLogger
	upgrader websocket.Upgrader
}

func NewServer(handlers Handlers, hub Hub, ping Pinger, version string, logger logrus.FieldLogger) *Server {
	return &Server{
		handlers: handlers,
		hub:      hub,
		ping:     ping,
		version:  version,
		logger:   logger.WithField("component", "http"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// staff devices connect from the restaurant's own frontends
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Register mounts every route on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/ws/notifications", s.Notifications)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/served", s.MarkOrderServed)
	api.PUT("/orders/:id/closed", s.CloseOrder)

	api.PUT("/order-items/:id/ready", s.MarkItemReady)
	api.PUT("/order-items/:id/in-preparation", s.StartItemPreparation)

	api.GET("/tasks/:destination", s.GetTasks)

	api.GET("/tables", s.ListTables)
	api.POST("/tables", s.CreateTable)

	api.GET("/menu-items", s.ListMenuItems)
	api.POST("/menu-items", s.CreateMenuItem)
	api.PUT("/menu-items/:id/availability", s.SetMenuItemAvailability)

	api.GET("/staff", s.ListStaff)
	api.POST("/staff", s.CreateStaff)
}

// NewEcho builds the router with recovery and request logging.
func NewEcho(logger logrus.FieldLogger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.INFO)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Warn("request failed")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	return e
}
