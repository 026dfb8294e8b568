package model

// ViewQuery is the query payload for the derived-view endpoint.
// Defaults mirror the dashboard's initial state (1 year horizon,
// top 50); the range filters are optional and inclusive.
type ViewQuery struct {
	Side         string   `form:"side" example:"top" enums:"top,bottom"`
	Metric       string   `form:"metric" example:"1Y" enums:"1D,1M,6M,1Y"`
	Limit        int      `form:"limit" example:"50"`
	MinExpense   *float64 `form:"minExpense"`
	MaxExpense   *float64 `form:"maxExpense"`
	MinMarketCap *float64 `form:"minMarketCap"`
	MaxMarketCap *float64 `form:"maxMarketCap"`
}

// ApplyDefaults fills unset fields with the dashboard defaults.
func (q *ViewQuery) ApplyDefaults() {
	if q.Side == "" {
		q.Side = string(SideTop)
	}
	if q.Metric == "" {
		q.Metric = string(Metric1Y)
	}
	if q.Limit == 0 {
		q.Limit = 50
	}
}
