package service

import (
	"fmt"
	"sort"

	localCache "github.com/a7coder/ETF-Analyze/cache"
	"github.com/a7coder/ETF-Analyze/customerrors"
	"github.com/a7coder/ETF-Analyze/model"

	"github.com/patrickmn/go-cache"
)

const minViewSize = 10

type ViewService interface {
	Metrics() []model.MetricOption
	BuildView(query model.ViewQuery) (*model.DerivedView, error)
}

type ViewServiceImpl struct {
	screener ScreenerService
}

func NewViewService(s ScreenerService) ViewService {
	return &ViewServiceImpl{screener: s}
}

func (s *ViewServiceImpl) Metrics() []model.MetricOption {
	return model.MetricOptions()
}

// BuildView computes one derived view: sort the snapshot by the active
// metric, slice the top or bottom N, then restrict by the per-view
// inclusive range filters. Filter bounds come from the unfiltered
// slice, so a full-span filter is the identity.
func (s *ViewServiceImpl) BuildView(query model.ViewQuery) (*model.DerivedView, error) {
	snap := s.screener.Snapshot()
	if snap.Status != model.SnapshotReady || len(snap.Rows) == 0 {
		return nil, customerrors.ErrNoSnapshot
	}

	metric := model.Metric(query.Metric)
	if !metric.Valid() {
		return nil, customerrors.ErrUnknownMetric
	}
	side := model.ViewSide(query.Side)
	limit := clampLimit(query.Limit, len(snap.Rows))

	derived := s.derivedRows(snap, side, metric, limit)
	bounds := computeBounds(derived)
	filtered := applyRanges(derived, query)

	chart := make([]model.ChartPoint, 0, len(filtered))
	for _, row := range filtered {
		chart = append(chart, model.ChartPoint{Name: row.Name, Value: metric.Value(row)})
	}

	return &model.DerivedView{
		Side:        side,
		Metric:      metric,
		MetricLabel: metric.Label(),
		Limit:       limit,
		Rows:        filtered,
		Bounds:      bounds,
		Chart:       chart,
	}, nil
}

// derivedRows returns the unfiltered top/bottom-N slice, memoized per
// snapshot version so repeated slider tweaks don't re-sort the table.
func (s *ViewServiceImpl) derivedRows(snap model.Snapshot, side model.ViewSide, metric model.Metric, limit int) []model.EtfRow {
	key := fmt.Sprintf("view_%d_%s_%s_%d", snap.Version, side, metric, limit)
	if cached, found := localCache.ViewCache.Get(key); found {
		return cached.([]model.EtfRow)
	}

	rows := make([]model.EtfRow, len(snap.Rows))
	copy(rows, snap.Rows)

	sort.SliceStable(rows, func(i, j int) bool {
		vi, vj := metric.Value(rows[i]), metric.Value(rows[j])
		if side == model.SideBottom {
			return vi < vj
		}
		return vi > vj
	})

	rows = rows[:limit]
	localCache.ViewCache.Set(key, rows, cache.DefaultExpiration)
	return rows
}

// clampLimit bounds N to [10, table size].
func clampLimit(limit, tableSize int) int {
	if limit < minViewSize {
		limit = minViewSize
	}
	if limit > tableSize {
		limit = tableSize
	}
	return limit
}

func computeBounds(rows []model.EtfRow) model.ViewBounds {
	if len(rows) == 0 {
		return model.ViewBounds{}
	}

	bounds := model.ViewBounds{
		ExpenseRatio: model.RangeBound{Min: rows[0].ExpenseRatio, Max: rows[0].ExpenseRatio},
		MarketCap:    model.RangeBound{Min: rows[0].MarketCap, Max: rows[0].MarketCap},
	}
	for _, row := range rows[1:] {
		bounds.ExpenseRatio.Min = min(bounds.ExpenseRatio.Min, row.ExpenseRatio)
		bounds.ExpenseRatio.Max = max(bounds.ExpenseRatio.Max, row.ExpenseRatio)
		bounds.MarketCap.Min = min(bounds.MarketCap.Min, row.MarketCap)
		bounds.MarketCap.Max = max(bounds.MarketCap.Max, row.MarketCap)
	}
	return bounds
}

func applyRanges(rows []model.EtfRow, query model.ViewQuery) []model.EtfRow {
	filtered := make([]model.EtfRow, 0, len(rows))
	for _, row := range rows {
		if query.MinExpense != nil && row.ExpenseRatio < *query.MinExpense {
			continue
		}
		if query.MaxExpense != nil && row.ExpenseRatio > *query.MaxExpense {
			continue
		}
		if query.MinMarketCap != nil && row.MarketCap < *query.MinMarketCap {
			continue
		}
		if query.MaxMarketCap != nil && row.MarketCap > *query.MaxMarketCap {
			continue
		}
		filtered = append(filtered, row)
	}
	return filtered
}
