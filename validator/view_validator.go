package validator

import (
	"github.com/a7coder/ETF-Analyze/model"

	"github.com/Oudwins/zog"
)

var ViewQueryShape = zog.Shape{
	"Side":   zog.String().OneOf([]string{string(model.SideTop), string(model.SideBottom)}).Required(),
	"Metric": zog.String().OneOf(metricKeys()).Required(),
	"Limit":  zog.Int().GT(0).Required(),
}

var viewQuerySchema = zog.Struct(ViewQueryShape).TestFunc(RangeOrderTest)

// RangeOrderTest rejects inverted min/max range filters.
func RangeOrderTest(dataPtr any, ctx zog.Ctx) bool {
	q, ok := dataPtr.(*model.ViewQuery)
	if !ok {
		return true
	}

	valid := true
	if q.MinExpense != nil && q.MaxExpense != nil && *q.MinExpense > *q.MaxExpense {
		ctx.AddIssue(&zog.ZogIssue{
			Path:    "minExpense",
			Message: "Expense ratio range is inverted",
		})
		valid = false
	}
	if q.MinMarketCap != nil && q.MaxMarketCap != nil && *q.MinMarketCap > *q.MaxMarketCap {
		ctx.AddIssue(&zog.ZogIssue{
			Path:    "minMarketCap",
			Message: "Market cap range is inverted",
		})
		valid = false
	}
	return valid
}

// ValidateViewQuery returns sanitized issue messages per field, or nil
// when the query is valid.
func ValidateViewQuery(q *model.ViewQuery) map[string][]string {
	errs := viewQuerySchema.Validate(q)
	if len(errs) == 0 {
		return nil
	}
	return zog.Issues.SanitizeMap(errs)
}

func metricKeys() []string {
	opts := model.MetricOptions()
	keys := make([]string, 0, len(opts))
	for _, opt := range opts {
		keys = append(keys, string(opt.Key))
	}
	return keys
}
