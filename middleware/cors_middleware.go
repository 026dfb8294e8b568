package middleware

import (
	"time"

	"github.com/a7coder/ETF-Analyze/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORS(cfg *config.ConfigManager) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: cfg.GetConfig().FrontendUrls,

		AllowMethods: []string{"GET", "POST", "HEAD", "OPTIONS"},

		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"X-Requested-With",
		},

		ExposeHeaders: []string{"Content-Length"},

		AllowCredentials: true,

		// Browser cache for the CORS preflight (OPTIONS) response
		MaxAge: 12 * time.Hour,
	})
}
