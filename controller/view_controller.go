package controller

import (
	"errors"
	"net/http"

	"github.com/a7coder/ETF-Analyze/customerrors"
	"github.com/a7coder/ETF-Analyze/model"
	"github.com/a7coder/ETF-Analyze/service"
	"github.com/a7coder/ETF-Analyze/validator"

	"github.com/gin-gonic/gin"
)

type ViewController struct {
	viewService service.ViewService
}

func NewViewController(vs service.ViewService) *ViewController {
	return &ViewController{
		viewService: vs,
	}
}

// RegisterRoutes sets up the derived-view routes.
func (ctrl *ViewController) RegisterRoutes(router *gin.RouterGroup) {
	etfGroup := router.Group("/etf")
	{
		etfGroup.GET("/metrics", ctrl.getMetrics)
		etfGroup.GET("/view", ctrl.getView)
	}
}

// getMetrics lists the selectable return horizons.
// @Summary      List Performance Metrics
// @Description  The four fixed return horizons a view can be keyed on.
// @Tags         Views
// @Produce      json
// @Success      200  {object}  model.Response{data=[]model.MetricOption}
// @Router       /etf/metrics [get]
func (ctrl *ViewController) getMetrics(c *gin.Context) {
	handleSuccess(c, "Fetch Success", ctrl.viewService.Metrics())
}

// getView computes a top or bottom derived view.
// @Summary      Get Derived View
// @Description  Top-N or bottom-N ETFs by the active metric, with optional inclusive expense-ratio and market-cap range filters. N is clamped to [10, table size]. Filter bounds in the response are derived from the unfiltered view.
// @Tags         Views
// @Produce      json
// @Param        side          query     string  false  "View side"  Enums(top, bottom)  default(top)
// @Param        metric        query     string  false  "Return horizon"  Enums(1D, 1M, 6M, 1Y)  default(1Y)
// @Param        limit         query     int     false  "View size N"  default(50)
// @Param        minExpense    query     number  false  "Expense ratio lower bound (inclusive)"
// @Param        maxExpense    query     number  false  "Expense ratio upper bound (inclusive)"
// @Param        minMarketCap  query     number  false  "Market cap lower bound (inclusive)"
// @Param        maxMarketCap  query     number  false  "Market cap upper bound (inclusive)"
// @Success      200  {object}  model.Response{data=model.DerivedView}
// @Failure      400  {object}  model.Response
// @Failure      404  {object}  model.Response
// @Router       /etf/view [get]
func (ctrl *ViewController) getView(c *gin.Context) {
	var query model.ViewQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		handleError(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}
	query.ApplyDefaults()

	if issues := validator.ValidateViewQuery(&query); issues != nil {
		c.JSON(http.StatusBadRequest, model.Response{
			Success: false,
			Message: "Invalid query parameters",
			Data:    issues,
		})
		return
	}

	view, err := ctrl.viewService.BuildView(query)
	if err != nil {
		switch {
		case errors.Is(err, customerrors.ErrNoSnapshot):
			handleError(c, http.StatusNotFound, "No data fetched yet. Trigger /api/etf/refresh first.", err)
		case errors.Is(err, customerrors.ErrUnknownMetric):
			handleError(c, http.StatusBadRequest, "Unknown metric", err)
		default:
			handleError(c, http.StatusInternalServerError, "Failed to build view", err)
		}
		return
	}

	handleSuccess(c, "Fetch Success", view)
}
