package model

// Tickertape screener query constants. The screener result set and page
// size are fixed by the upstream API plan; only the offset varies
// between page requests.
const (
	ScreenerTotalResults = 271
	ScreenerPageSize     = 20
	ScreenerSortKey      = "mrktCapf"
	ScreenerSortDesc     = -1
)

// Advanced-ratio keys projected from the screener.
const (
	RatioSubindustry  = "subindustry"
	RatioMarketCap    = "mrktCapf"
	RatioLastPrice    = "lastPrice"
	RatioReturn1D     = "pr1d"
	RatioReturn1M     = "4wpct"
	RatioReturn6M     = "26wpct"
	RatioReturn1Y     = "52wpct"
	RatioVolatility   = "12mVolN"
	RatioExpenseRatio = "expenseRatio"
)

var screenerSubindustries = []string{"E_G", "E_Q", "E_D"}

var screenerProjection = []string{
	RatioSubindustry, RatioMarketCap, RatioLastPrice, RatioReturn1D,
	RatioReturn1M, RatioReturn6M, RatioReturn1Y, RatioVolatility,
	RatioExpenseRatio,
}

type ScreenerMatch struct {
	Subindustry []string `json:"subindustry"`
}

// ScreenerRequest is the JSON body for POST /screener/query.
type ScreenerRequest struct {
	Match     ScreenerMatch `json:"match"`
	SortBy    string        `json:"sortBy"`
	SortOrder int           `json:"sortOrder"`
	Project   []string      `json:"project"`
	Offset    int           `json:"offset"`
	Count     int           `json:"count"`
	Sids      []string      `json:"sids"`
}

// BuildPageRequest returns the fixed query payload for one page. Every
// field except the offset is a constant.
func BuildPageRequest(offset int) ScreenerRequest {
	return ScreenerRequest{
		Match:     ScreenerMatch{Subindustry: screenerSubindustries},
		SortBy:    ScreenerSortKey,
		SortOrder: ScreenerSortDesc,
		Project:   screenerProjection,
		Offset:    offset,
		Count:     ScreenerPageSize,
		Sids:      []string{},
	}
}

// ScreenerResponse is the top-level container
type ScreenerResponse struct {
	Data ScreenerData `json:"data"`
}

type ScreenerData struct {
	Results []ScreenerResult `json:"results"`
}

type ScreenerResult struct {
	Stock ScreenerStock `json:"stock"`
}

// ScreenerStock nests the fund name under info and every projected
// ratio under advancedRatios. Ratios are decoded loosely because the
// API mixes numbers, strings and nulls in the same column.
type ScreenerStock struct {
	Info           StockInfo      `json:"info"`
	AdvancedRatios map[string]any `json:"advancedRatios"`
}

type StockInfo struct {
	Name string `json:"name"`
}
