package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/greenfield-grocer/notifier/internal/api/handlers/dispatch"
	"github.com/greenfield-grocer/notifier/internal/middlewares"
)

func New(handler *dispatch.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(middlewares.CORSMiddleware())
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/dispatch")
	{
		api.POST("/order-confirmation", handler.OrderConfirmation)
		api.POST("/payment-reminder", handler.PaymentReminder)
		api.POST("/product-list", handler.ProductList)
		api.POST("/seasonal-poll", handler.SeasonalPoll)
		api.POST("/verification-code", handler.VerificationCode)
		api.POST("/queue/process", handler.ProcessQueue)
	}

	notifications := e.Group("/api/notifications")
	{
		notifications.GET("/", handler.GetAll)
		notifications.GET("/pending", handler.GetPending)
		notifications.GET("/status/:id", handler.GetStatus)
		notifications.POST("/:id/requeue", handler.Requeue)
	}

	return e
}
