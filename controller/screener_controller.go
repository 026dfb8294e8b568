package controller

import (
	"net/http"

	"github.com/a7coder/ETF-Analyze/model"
	"github.com/a7coder/ETF-Analyze/service"

	"github.com/gin-gonic/gin"
)

type ScreenerController struct {
	screenerService service.ScreenerService
}

func NewScreenerController(ss service.ScreenerService) *ScreenerController {
	return &ScreenerController{
		screenerService: ss,
	}
}

// RegisterRoutes sets up the route group for the ETF screener.
func (ctrl *ScreenerController) RegisterRoutes(router *gin.RouterGroup) {
	etfGroup := router.Group("/etf")
	{
		etfGroup.POST("/refresh", ctrl.refresh)
		etfGroup.GET("/table", ctrl.getTable)
		etfGroup.GET("/status", ctrl.getStatus)
	}
}

// refresh triggers one full fetch cycle.
// @Summary      Refresh ETF Data
// @Description  Fetches the full screener result set page by page, normalizes it and replaces the table. Synchronous; failed pages are skipped and counted, never fatal.
// @Tags         Screener
// @Produce      json
// @Success      200  {object}  model.Response{data=model.SnapshotMeta}
// @Router       /etf/refresh [post]
func (ctrl *ScreenerController) refresh(c *gin.Context) {
	meta := ctrl.screenerService.Refresh(c.Request.Context())
	handleSuccess(c, "Fetch complete", meta)
}

// getTable returns the full normalized table.
// @Summary      Get ETF Table
// @Description  Returns the current normalized snapshot. 404 until the first refresh has run.
// @Tags         Screener
// @Produce      json
// @Success      200  {object}  model.Response{data=model.Snapshot}
// @Failure      404  {object}  model.Response
// @Router       /etf/table [get]
func (ctrl *ScreenerController) getTable(c *gin.Context) {
	snap := ctrl.screenerService.Snapshot()
	if snap.Status != model.SnapshotReady {
		handleError(c, http.StatusNotFound, "No data fetched yet. Trigger /api/etf/refresh first.", nil)
		return
	}

	handleSuccess(c, "Fetch Success", snap)
}

// getStatus returns snapshot metadata without rows.
// @Summary      Get Snapshot Status
// @Description  Reports whether a snapshot is loaded, when it was fetched (IST) and how many pages failed.
// @Tags         Screener
// @Produce      json
// @Success      200  {object}  model.Response{data=model.SnapshotMeta}
// @Router       /etf/status [get]
func (ctrl *ScreenerController) getStatus(c *gin.Context) {
	handleSuccess(c, "Fetch Success", ctrl.screenerService.Meta())
}
