package routes

import (
	"net/http"

	"barcraft/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuizSessions = "/quiz/sessions"
	PathOrders       = "/orders"
	PathVenues       = "/venues"
	PathWebhooks     = "/webhooks"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addQuizRoutes(rg *gin.RouterGroup, quizHandler *handlers.QuizHandler) {
	sessions := rg.Group(PathQuizSessions)
	{
		sessions.POST("/:session_id/answers", quizHandler.RecordAnswers)
		sessions.POST("/:session_id/submit", quizHandler.Submit)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, requireActor gin.HandlerFunc) {
	orders := rg.Group(PathOrders)
	{
		// Customer-facing endpoints are anonymous, keyed by order id.
		orders.POST("/:id/checkout", orderHandler.CreateCheckout)
		orders.GET("/:id/recipe", orderHandler.GetOrderRecipe)

		// Staff endpoints require an authenticated actor.
		orders.PATCH("/:id/status", requireActor, orderHandler.UpdateStatus)
		orders.GET("/:id/payments", requireActor, orderHandler.ListPayments)
	}

	venues := rg.Group(PathVenues)
	{
		venues.GET("/:id/orders", requireActor, orderHandler.ListVenueOrders)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/payment", webhookHandler.HandlePaymentEvent)
	}
}
