package routes

import (
	"github.com/a7coder/ETF-Analyze/client"
	"github.com/a7coder/ETF-Analyze/config"
	"github.com/a7coder/ETF-Analyze/controller"
	"github.com/a7coder/ETF-Analyze/middleware"
	"github.com/a7coder/ETF-Analyze/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter(cfgManager *config.ConfigManager) *gin.Engine {
	r := gin.New()

	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.CORS(cfgManager))
	r.Use(middleware.RateLimiter(cfgManager))

	// --- 1. Clients ---
	tickertapeClient := client.NewTickertapeClient()

	// --- 2. Services (Dependency Injection) ---
	screenerSvc := service.NewScreenerService(tickertapeClient)
	viewSvc := service.NewViewService(screenerSvc)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- 3. Routes & Controllers ---
	api := r.Group("/api")
	{
		// Health Check
		controller.NewHealthController().RegisterRoutes(api)

		// Screener Endpoints (refresh / table / status)
		controller.NewScreenerController(screenerSvc).RegisterRoutes(api)

		// Derived View Endpoints (metrics / top / bottom)
		controller.NewViewController(viewSvc).RegisterRoutes(api)

		// Config Endpoints
		controller.NewConfigController(cfgManager).RegisterRoutes(api)
	}

	return r
}
