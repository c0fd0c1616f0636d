package routes

import (
	"log"
	"os"
	"strconv"

	_ "barcraft/docs" // This will be auto-generated
	"barcraft/internal/adapter/http/handlers"
	"barcraft/internal/adapter/http/middleware"
	repository2 "barcraft/internal/adapter/persistence/repository"
	"barcraft/internal/infrastructure/database"
	"barcraft/internal/infrastructure/payments"
	"barcraft/internal/infrastructure/recipeengine"
	"barcraft/internal/usecase"
	"barcraft/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	sessionRepo := repository2.NewSessionDynamoRepository(ddb)
	recipeRepo := repository2.NewRecipeDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	venueRepo := repository2.NewVenueDynamoRepository(ddb)

	engine := recipeengine.NewClient(
		os.Getenv("RECIPE_ENGINE_URL"),
		os.Getenv("RECIPE_ENGINE_SIGNING_SECRET"),
	)

	var checkoutGateway interfaces.ICheckoutGateway
	stripeGateway, err := payments.NewStripeCheckoutGateway(os.Getenv("STRIPE_SECRET_KEY"))
	if err != nil {
		log.Printf("Stripe checkout gateway not configured: %v", err)
	} else {
		checkoutGateway = stripeGateway
	}

	quizUseCase := usecase.NewQuizUseCase(sessionRepo, orderRepo, recipeRepo, venueRepo, engine)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, recipeRepo, paymentRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(orderRepo, recipeRepo, checkoutGateway, usecase.CheckoutConfig{
		SuccessURL: os.Getenv("CHECKOUT_SUCCESS_URL"),
		CancelURL:  os.Getenv("CHECKOUT_CANCEL_URL"),
	})
	webhookUseCase := usecase.NewWebhookUseCase(orderRepo, paymentRepo, os.Getenv("STRIPE_WEBHOOK_SECRET"), os.Getenv("APP_ENV"))

	quizHandler := handlers.NewQuizHandler(quizUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase, checkoutUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	requireActor := middleware.RequireActor([]byte(os.Getenv("AUTH_JWT_SECRET")))

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuizRoutes(v1, quizHandler)
	addOrderRoutes(v1, orderHandler, requireActor)
	addWebhookRoutes(v1, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
