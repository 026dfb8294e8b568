package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	localCache "github.com/a7coder/ETF-Analyze/cache"
	"github.com/a7coder/ETF-Analyze/client"
	"github.com/a7coder/ETF-Analyze/model"
	"github.com/a7coder/ETF-Analyze/util"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Courtesy pause between page requests; the upstream screener throttles
// bursty clients.
var pagePace = rate.Every(1 * time.Second)

// Per-page deadline. The original dashboard had none and would hang
// forever on a stuck page; a bound is the one deliberate deviation.
const pageTimeout = 30 * time.Second

type ScreenerService interface {
	Refresh(ctx context.Context) model.SnapshotMeta
	Snapshot() model.Snapshot
	Meta() model.SnapshotMeta
}

type ScreenerServiceImpl struct {
	client    *client.TickertapeClient
	pacer     *rate.Limiter
	total     int
	pageSize  int
	mu        sync.RWMutex
	snapshot  model.Snapshot
	refreshMu sync.Mutex
}

func NewScreenerService(c *client.TickertapeClient) ScreenerService {
	return newScreenerService(c, model.ScreenerTotalResults, model.ScreenerPageSize, rate.NewLimiter(pagePace, 1))
}

func newScreenerService(c *client.TickertapeClient, total, pageSize int, pacer *rate.Limiter) *ScreenerServiceImpl {
	return &ScreenerServiceImpl{
		client:   c,
		pacer:    pacer,
		total:    total,
		pageSize: pageSize,
		snapshot: model.Snapshot{Status: model.SnapshotEmpty},
	}
}

// Refresh runs one full fetch cycle and replaces the snapshot
// wholesale. Failed pages are skipped, counted and reported; the loop
// never aborts early, so the worst case is a smaller table.
func (s *ScreenerServiceImpl) Refresh(ctx context.Context) model.SnapshotMeta {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	raw, pages, failed := s.fetchAll(ctx)
	rows := util.Normalize(raw)

	snap := model.Snapshot{
		Rows:        rows,
		FetchedAt:   util.NowIst(),
		Pages:       pages,
		FailedPages: failed,
		Status:      model.SnapshotReady,
		Version:     time.Now().UnixNano(),
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	// Derived views must be recomputed against the new table.
	localCache.ViewCache.Flush()

	log.Info().
		Int("rows", len(rows)).
		Int("rawRecords", len(raw)).
		Int("pages", pages).
		Int("failedPages", failed).
		Msg("Screener snapshot refreshed")

	return snap.Meta()
}

func (s *ScreenerServiceImpl) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

func (s *ScreenerServiceImpl) Meta() model.SnapshotMeta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Meta()
}

func (s *ScreenerServiceImpl) fetchAll(ctx context.Context) ([]model.ScreenerResult, int, int) {
	all := make([]model.ScreenerResult, 0, s.total)
	pages, failed := 0, 0

	for offset := 0; offset < s.total; offset += s.pageSize {
		if err := s.pacer.Wait(ctx); err != nil {
			log.Warn().Err(err).Msg("page pacing interrupted")
		}

		pages++
		results, err := s.fetchPage(ctx, offset)
		if err != nil {
			failed++
			log.Warn().Int("offset", offset).Err(err).Msg("Screener page failed, continuing")
			continue
		}
		all = append(all, results...)
	}

	return all, pages, failed
}

func (s *ScreenerServiceImpl) fetchPage(ctx context.Context, offset int) ([]model.ScreenerResult, error) {
	reqCtx, cancel := context.WithTimeout(ctx, pageTimeout)
	defer cancel()

	resp, err := s.client.Query(reqCtx, model.BuildPageRequest(offset))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("screener api error: %d", resp.StatusCode())
	}

	var dto model.ScreenerResponse
	if err := json.Unmarshal(resp.Body(), &dto); err != nil {
		return nil, fmt.Errorf("failed to parse screener json: %w", err)
	}

	return dto.Data.Results, nil
}
