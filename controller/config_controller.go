package controller

import (
	"net/http"

	"github.com/a7coder/ETF-Analyze/config"

	"github.com/gin-gonic/gin"
)

type ConfigController struct {
	cfgManager *config.ConfigManager
}

func NewConfigController(cm *config.ConfigManager) *ConfigController {
	return &ConfigController{
		cfgManager: cm,
	}
}

// RegisterRoutes sets up the config routes.
func (ctrl *ConfigController) RegisterRoutes(router *gin.RouterGroup) {
	configGroup := router.Group("/config")
	{
		configGroup.GET("/active", ctrl.getActiveConfig)
		configGroup.POST("/reload", ctrl.reloadConfig)
	}
}

// getActiveConfig returns the config currently in effect.
// @Summary      Get Active Configuration
// @Tags         Config
// @Produce      json
// @Success      200  {object}  model.Response{data=model.EnvConfig}
// @Router       /config/active [get]
func (ctrl *ConfigController) getActiveConfig(c *gin.Context) {
	handleSuccess(c, "Fetch Success", ctrl.cfgManager.GetConfig())
}

// reloadConfig re-reads the environment and swaps the active config.
// @Summary      Reload Configuration
// @Tags         Config
// @Produce      json
// @Success      200  {object}  model.Response
// @Failure      500  {object}  model.Response
// @Router       /config/reload [post]
func (ctrl *ConfigController) reloadConfig(c *gin.Context) {
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		handleError(c, http.StatusInternalServerError, "Error reloading configuration", err)
		return
	}

	ctrl.cfgManager.UpdateConfig(sysConfigs.Config)
	handleSuccess(c, "Configuration reloaded", nil)
}
