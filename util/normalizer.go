package util

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/a7coder/ETF-Analyze/model"
)

// NotAvailable marks a field absent from the raw record. It survives
// the null-like pass (it is a plain string, not a null) and gets
// caught by numeric coercion, so a record missing any numeric field is
// always dropped.
const NotAvailable = "NA"

// rawRow is one flattened screener record before coercion. Fields stay
// untyped because the API mixes numbers, strings and nulls.
type rawRow struct {
	Name              any
	SubSector         any
	MarketCap         any
	ClosePrice        any
	Return1D          any
	Return1M          any
	Return6M          any
	Return1Y          any
	VolatilityVsNifty any
	ExpenseRatio      any
}

// Normalize flattens raw screener results into the ETF table.
//
// The drop logic is deliberately two-phase: first any row carrying a
// null-like field is discarded, then the numeric columns are coerced
// and rows that fail to parse are discarded again. The second pass is
// what catches non-null garbage such as the "NA" sentinel or other
// non-numeric strings.
func Normalize(results []model.ScreenerResult) []model.EtfRow {
	rows := make([]model.EtfRow, 0, len(results))

	for _, res := range results {
		raw := flatten(res)

		// Pass 1: null-like fields
		if hasNullLike(raw) {
			continue
		}

		// Pass 2: numeric coercion
		row, ok := coerce(raw)
		if !ok {
			continue
		}

		rows = append(rows, row)
	}

	return rows
}

func flatten(res model.ScreenerResult) rawRow {
	ratios := res.Stock.AdvancedRatios
	return rawRow{
		Name:              res.Stock.Info.Name,
		SubSector:         ratio(ratios, model.RatioSubindustry),
		MarketCap:         ratio(ratios, model.RatioMarketCap),
		ClosePrice:        ratio(ratios, model.RatioLastPrice),
		Return1D:          ratio(ratios, model.RatioReturn1D),
		Return1M:          ratio(ratios, model.RatioReturn1M),
		Return6M:          ratio(ratios, model.RatioReturn6M),
		Return1Y:          ratio(ratios, model.RatioReturn1Y),
		VolatilityVsNifty: ratio(ratios, model.RatioVolatility),
		ExpenseRatio:      ratio(ratios, model.RatioExpenseRatio),
	}
}

// ratio looks up one advanced-ratio key, substituting the sentinel for
// absent keys. A key present with a JSON null stays nil so the
// null-like pass can see it.
func ratio(ratios map[string]any, key string) any {
	if ratios == nil {
		return NotAvailable
	}
	val, exists := ratios[key]
	if !exists {
		return NotAvailable
	}
	return val
}

func hasNullLike(raw rawRow) bool {
	fields := []any{
		raw.Name, raw.SubSector, raw.MarketCap, raw.ClosePrice,
		raw.Return1D, raw.Return1M, raw.Return6M, raw.Return1Y,
		raw.VolatilityVsNifty, raw.ExpenseRatio,
	}
	for _, f := range fields {
		if f == nil {
			return true
		}
	}
	return false
}

func coerce(raw rawRow) (model.EtfRow, bool) {
	numerics := []any{
		raw.MarketCap, raw.ClosePrice, raw.Return1D, raw.Return1M,
		raw.Return6M, raw.Return1Y, raw.VolatilityVsNifty,
		raw.ExpenseRatio,
	}

	parsed := make([]float64, len(numerics))
	for i, v := range numerics {
		f, ok := coerceFloat(v)
		if !ok {
			return model.EtfRow{}, false
		}
		parsed[i] = f
	}

	return model.EtfRow{
		Name:              asString(raw.Name),
		SubSector:         asString(raw.SubSector),
		MarketCap:         parsed[0],
		ClosePrice:        parsed[1],
		Return1D:          parsed[2],
		Return1M:          parsed[3],
		Return6M:          parsed[4],
		Return1Y:          parsed[5],
		VolatilityVsNifty: parsed[6],
		ExpenseRatio:      parsed[7],
	}, true
}

func coerceFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return NotAvailable
}
