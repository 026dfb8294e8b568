package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/a7coder/ETF-Analyze/model"
	"github.com/a7coder/ETF-Analyze/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScreener struct {
	snap model.Snapshot
}

func (s *stubScreener) Refresh(ctx context.Context) model.SnapshotMeta { return s.snap.Meta() }
func (s *stubScreener) Snapshot() model.Snapshot                       { return s.snap }
func (s *stubScreener) Meta() model.SnapshotMeta                       { return s.snap.Meta() }

func readySnapshot(n int) model.Snapshot {
	rows := make([]model.EtfRow, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, model.EtfRow{
			Name:         fmt.Sprintf("ETF%02d", i),
			SubSector:    "Gold ETFs",
			MarketCap:    100 + float64(i),
			ClosePrice:   50,
			Return1Y:     float64(i),
			ExpenseRatio: 0.2,
		})
	}
	return model.Snapshot{
		Rows:      rows,
		FetchedAt: "2026-08-23 10:00:00",
		Status:    model.SnapshotReady,
		Version:   time.Now().UnixNano(),
	}
}

func newTestRouter(snap model.Snapshot) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")

	screener := &stubScreener{snap: snap}
	NewScreenerController(screener).RegisterRoutes(api)
	NewViewController(service.NewViewService(screener)).RegisterRoutes(api)
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) (*httptest.ResponseRecorder, model.Response) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	var body model.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestGetMetricsEndpoint(t *testing.T) {
	r := newTestRouter(readySnapshot(20))

	w, body := doGet(t, r, "/api/etf/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, body.Success)
	options, ok := body.Data.([]any)
	require.True(t, ok)
	assert.Len(t, options, 4)
}

func TestGetViewHappyPath(t *testing.T) {
	r := newTestRouter(readySnapshot(60))

	w, body := doGet(t, r, "/api/etf/view?side=top&metric=1Y&limit=15")

	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, body.Success)

	view, ok := body.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "top", view["side"])
	assert.Equal(t, "1 Year Return", view["metricLabel"])
	rows, ok := view["rows"].([]any)
	require.True(t, ok)
	assert.Len(t, rows, 15)
}

func TestGetViewDefaults(t *testing.T) {
	r := newTestRouter(readySnapshot(200))

	w, body := doGet(t, r, "/api/etf/view")

	assert.Equal(t, http.StatusOK, w.Code)
	view := body.Data.(map[string]any)
	assert.Equal(t, "1Y", view["metric"])
	assert.Equal(t, float64(50), view["limit"])
}

func TestGetViewRejectsBadMetric(t *testing.T) {
	r := newTestRouter(readySnapshot(20))

	w, body := doGet(t, r, "/api/etf/view?metric=7D")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, body.Success)
}

func TestGetViewWithoutDataPromptsRefresh(t *testing.T) {
	r := newTestRouter(model.Snapshot{Status: model.SnapshotEmpty})

	w, body := doGet(t, r, "/api/etf/view?side=bottom")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "refresh")
}

func TestGetTableWithoutData(t *testing.T) {
	r := newTestRouter(model.Snapshot{Status: model.SnapshotEmpty})

	w, body := doGet(t, r, "/api/etf/table")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, body.Success)
}

func TestGetTableAndStatus(t *testing.T) {
	r := newTestRouter(readySnapshot(3))

	w, body := doGet(t, r, "/api/etf/table")
	assert.Equal(t, http.StatusOK, w.Code)
	table := body.Data.(map[string]any)
	assert.Equal(t, "READY", table["status"])

	w, body = doGet(t, r, "/api/etf/status")
	assert.Equal(t, http.StatusOK, w.Code)
	status := body.Data.(map[string]any)
	assert.Equal(t, float64(3), status["rowCount"])
}
