package model

// --- ETF TABLE ---

// EtfRow is one normalized screener row. Every numeric field is
// guaranteed parseable; rows that fail coercion are dropped during
// normalization, never kept with defaults.
type EtfRow struct {
	Name              string  `json:"name"`
	SubSector         string  `json:"subSector"`
	MarketCap         float64 `json:"marketCap"`
	ClosePrice        float64 `json:"closePrice"`
	Return1D          float64 `json:"return1d"`
	Return1M          float64 `json:"return1m"`
	Return6M          float64 `json:"return6m"`
	Return1Y          float64 `json:"return1y"`
	VolatilityVsNifty float64 `json:"volatilityVsNifty"`
	ExpenseRatio      float64 `json:"expenseRatio"`
}

type SnapshotStatus string

const (
	SnapshotEmpty SnapshotStatus = "EMPTY"
	SnapshotReady SnapshotStatus = "READY"
)

// Snapshot is the process-wide result table. It is replaced wholesale
// on every refresh and never mutated in place.
type Snapshot struct {
	Rows        []EtfRow       `json:"rows"`
	FetchedAt   string         `json:"fetchedAt,omitempty"`
	Pages       int            `json:"pages"`
	FailedPages int            `json:"failedPages"`
	Status      SnapshotStatus `json:"status"`
	Version     int64          `json:"-"`
}

// SnapshotMeta is the snapshot without its rows, used by the refresh
// and status endpoints.
type SnapshotMeta struct {
	RowCount    int            `json:"rowCount"`
	Pages       int            `json:"pages"`
	FailedPages int            `json:"failedPages"`
	FetchedAt   string         `json:"fetchedAt,omitempty"`
	Status      SnapshotStatus `json:"status"`
}

func (s Snapshot) Meta() SnapshotMeta {
	return SnapshotMeta{
		RowCount:    len(s.Rows),
		Pages:       s.Pages,
		FailedPages: s.FailedPages,
		FetchedAt:   s.FetchedAt,
		Status:      s.Status,
	}
}

// --- DERIVED VIEWS ---

type RangeBound struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v falls inside the inclusive range.
func (r RangeBound) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// ViewBounds are the selectable filter spans, derived from the
// unfiltered view each time it is recomputed.
type ViewBounds struct {
	ExpenseRatio RangeBound `json:"expenseRatio"`
	MarketCap    RangeBound `json:"marketCap"`
}

// ChartPoint is one bar of the view's chart series.
type ChartPoint struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DerivedView is a top-N or bottom-N slice of the table by the active
// metric, restricted by the per-view range filters.
type DerivedView struct {
	Side        ViewSide     `json:"side"`
	Metric      Metric       `json:"metric"`
	MetricLabel string       `json:"metricLabel"`
	Limit       int          `json:"limit"`
	Rows        []EtfRow     `json:"rows"`
	Bounds      ViewBounds   `json:"bounds"`
	Chart       []ChartPoint `json:"chart"`
}
