package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/settlement-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/settlement-engine/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers the router dispatches to
type Handlers struct {
	Host        *handler.HostHandler
	Payout      *handler.PayoutHandler
	Transaction *handler.TransactionHandler
	Guest       *handler.GuestHandler
	Health      *handler.HealthHandler
}

// MetricsEndpoint exposes collected metrics; nil disables the route
type MetricsEndpoint struct {
	Path    string
	Handler http.Handler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	authority *middleware.TokenAuthority,
	metrics *MetricsEndpoint,
	logger coreport.Logger,
) {
	router.GET("/healthz", handlers.Health.Health)
	if metrics != nil && metrics.Handler != nil {
		router.GET(metrics.Path, gin.WrapH(metrics.Handler))
	}

	// Registration is public and hands back a bearer token
	router.POST("/hosts", handlers.Host.RegisterHost)
	router.POST("/guests", handlers.Guest.RegisterGuest)

	authenticated := router.Group("/", middleware.Authenticate(authority, logger))

	accountRoutes := authenticated.Group("/accounts/:hostId", middleware.RequireOwner(middleware.RoleHost, "hostId"))
	{
		accountRoutes.GET("", handlers.Host.GetHost)
		accountRoutes.PUT("/profile", handlers.Host.UpdateProfile)
		accountRoutes.POST("/onboarding-link", handlers.Host.OnboardingLink)
		accountRoutes.GET("/onboarding-status", handlers.Host.OnboardingStatus)
		accountRoutes.POST("/dashboard-link", handlers.Host.DashboardLink)
		accountRoutes.GET("/dashboard", handlers.Payout.Dashboard)
		accountRoutes.POST("/payout", handlers.Payout.Payout)
		accountRoutes.GET("/transactions", handlers.Transaction.ListHostTransactions)
	}

	guestRoutes := authenticated.Group("/guests/:guestId", middleware.RequireOwner(middleware.RoleGuest, "guestId"))
	{
		guestRoutes.GET("", handlers.Guest.GetGuest)
		guestRoutes.POST("/ephemeral-credentials", handlers.Guest.EphemeralCredential)
	}

	transactionRoutes := authenticated.Group("/transactions")
	{
		transactionRoutes.POST("", middleware.RequireRole(middleware.RoleGuest, middleware.RoleOperator), handlers.Transaction.SubmitTransaction)
		transactionRoutes.GET("/:transactionId", handlers.Transaction.GetTransaction)
		transactionRoutes.POST("/:transactionId/retry", middleware.RequireRole(middleware.RoleOperator), handlers.Transaction.RetryTransaction)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, allowedOrigins []string, logger coreport.Logger) {
	// Request id first so every later middleware can log it
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(allowedOrigins))
}
