package router

import (
	"github.com/gin-gonic/gin"

	"github.com/flexvoice/backend/internal/api"
	"github.com/flexvoice/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	planHandler *api.PlanHandler,
	generateHandler *api.GenerateHandler,
	webhookHandler *api.VoiceWebhookHandler,
	authService middleware.TokenValidator,
	generationLimiter *middleware.RateLimiter,
	allowedOrigins []string,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(allowedOrigins))

	v1 := router.Group("/api/v1")

	// Webhooks authenticate with a shared secret, not a session token
	webhookHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		planHandler.RegisterRoutes(protected)

		generate := protected.Group("")
		if generationLimiter != nil {
			generate.Use(generationLimiter.RateLimitMiddleware())
		}
		generateHandler.RegisterRoutes(generate)
	}

	return router
}
