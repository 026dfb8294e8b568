package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/a7coder/ETF-Analyze/client"
	"github.com/a7coder/ETF-Analyze/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type pageRecorder struct {
	mu      sync.Mutex
	offsets []int
}

func (r *pageRecorder) record(offset int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offsets = append(r.offsets, offset)
}

func (r *pageRecorder) all() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.offsets...)
}

func testRatios() map[string]any {
	return map[string]any{
		model.RatioSubindustry:  "Gold ETFs",
		model.RatioMarketCap:    500.0,
		model.RatioLastPrice:    48.6,
		model.RatioReturn1D:     0.2,
		model.RatioReturn1M:     1.5,
		model.RatioReturn6M:     7.4,
		model.RatioReturn1Y:     14.9,
		model.RatioVolatility:   0.88,
		model.RatioExpenseRatio: 0.4,
	}
}

func writePage(t *testing.T, w http.ResponseWriter, results []model.ScreenerResult) {
	t.Helper()
	resp := model.ScreenerResponse{Data: model.ScreenerData{Results: results}}
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func newTestService(t *testing.T, handler http.HandlerFunc, total, pageSize int) *ScreenerServiceImpl {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := client.NewTickertapeClientWithBase(srv.URL)
	return newScreenerService(c, total, pageSize, rate.NewLimiter(rate.Inf, 0))
}

func TestRefreshIssuesOnePagedRequestPerOffset(t *testing.T) {
	rec := &pageRecorder{}
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		var req model.ScreenerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		rec.record(req.Offset)
		writePage(t, w, nil)
	}, 271, 20)

	meta := svc.Refresh(context.Background())

	offsets := rec.all()
	require.Len(t, offsets, 14) // ceil(271/20)
	for i, offset := range offsets {
		assert.Equal(t, i*20, offset)
	}
	assert.Equal(t, 260, offsets[len(offsets)-1])
	assert.Less(t, offsets[len(offsets)-1], 271)

	assert.Equal(t, 14, meta.Pages)
	assert.Equal(t, 0, meta.FailedPages)
	assert.Equal(t, model.SnapshotReady, meta.Status)
}

func TestRefreshRequestPayloadIsFixedExceptOffset(t *testing.T) {
	var captured []model.ScreenerRequest
	var mu sync.Mutex
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		var req model.ScreenerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		mu.Lock()
		captured = append(captured, req)
		mu.Unlock()
		writePage(t, w, nil)
	}, 40, 20)

	svc.Refresh(context.Background())

	require.Len(t, captured, 2)
	for _, req := range captured {
		assert.Equal(t, model.ScreenerSortKey, req.SortBy)
		assert.Equal(t, model.ScreenerSortDesc, req.SortOrder)
		assert.Equal(t, []string{"E_G", "E_Q", "E_D"}, req.Match.Subindustry)
		assert.Equal(t, model.ScreenerPageSize, req.Count)
		assert.Empty(t, req.Sids)
	}
	assert.NotEqual(t, captured[0].Offset, captured[1].Offset)
}

func TestRefreshContinuesPastFailedPage(t *testing.T) {
	rec := &pageRecorder{}
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		var req model.ScreenerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		rec.record(req.Offset)

		if req.Offset == 40 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writePage(t, w, []model.ScreenerResult{{
			Stock: model.ScreenerStock{
				Info:           model.StockInfo{Name: "ETF"},
				AdvancedRatios: testRatios(),
			},
		}})
	}, 100, 20)

	meta := svc.Refresh(context.Background())

	// The failed page is skipped, not retried, and the loop runs on.
	assert.Len(t, rec.all(), 5)
	assert.Equal(t, 5, meta.Pages)
	assert.Equal(t, 1, meta.FailedPages)
	assert.Equal(t, 4, meta.RowCount)
}

func TestRefreshNormalizesAndReplacesSnapshot(t *testing.T) {
	bad := map[string]any{model.RatioMarketCap: "NA"}
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		writePage(t, w, []model.ScreenerResult{
			{Stock: model.ScreenerStock{Info: model.StockInfo{Name: "GOOD"}, AdvancedRatios: testRatios()}},
			{Stock: model.ScreenerStock{Info: model.StockInfo{Name: "BAD"}, AdvancedRatios: bad}},
		})
	}, 20, 20)

	require.Equal(t, model.SnapshotEmpty, svc.Meta().Status)

	svc.Refresh(context.Background())
	first := svc.Snapshot()

	require.Len(t, first.Rows, 1)
	assert.Equal(t, "GOOD", first.Rows[0].Name)
	assert.NotEmpty(t, first.FetchedAt)
	assert.Equal(t, model.SnapshotReady, first.Status)

	svc.Refresh(context.Background())
	second := svc.Snapshot()

	// Replaced wholesale, never appended.
	assert.Len(t, second.Rows, 1)
	assert.NotEqual(t, first.Version, second.Version)
}

func TestSnapshotEmptyBeforeFirstRefresh(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		writePage(t, w, nil)
	}, 20, 20)

	meta := svc.Meta()
	assert.Equal(t, model.SnapshotEmpty, meta.Status)
	assert.Zero(t, meta.RowCount)
}
