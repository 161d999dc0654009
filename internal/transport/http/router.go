package http

import (
	"chatorder-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

func Router(chat service.ChatService, orders service.OrderService, menu service.MenuService, payments service.PaymentService, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	chatHandler := NewChatHandler(chat, log)
	orderHandler := NewOrderHandler(orders, log)
	menuHandler := NewMenuHandler(menu, log)
	paymentHandler := NewPaymentHandler(payments, log)

	chatGroup := r.Group("/chat")
	{
		chatGroup.GET("/init/:deviceId", chatHandler.Init)
		chatGroup.POST("/message", chatHandler.SendMessage)
		chatGroup.POST("/schedule", chatHandler.Schedule)
		chatGroup.POST("/payment/initialize", chatHandler.InitializePayment)
	}

	orderGroup := r.Group("/orders")
	{
		orderGroup.GET("/current/:sessionId", orderHandler.Current)
		orderGroup.POST("/add-item", orderHandler.AddItem)
		orderGroup.POST("/checkout/:sessionId", orderHandler.Checkout)
		orderGroup.POST("/cancel/:sessionId", orderHandler.Cancel)
		orderGroup.GET("/history/:sessionId", orderHandler.History)
		orderGroup.POST("/schedule", orderHandler.Schedule)
	}

	menuGroup := r.Group("/menu")
	{
		menuGroup.GET("", menuHandler.List)
		menuGroup.GET("/:id", menuHandler.Get)
	}

	paymentGroup := r.Group("/payment")
	{
		paymentGroup.POST("/initialize", paymentHandler.Initialize)
		paymentGroup.GET("/verify", paymentHandler.Verify)
		paymentGroup.GET("/callback", paymentHandler.Callback)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}
