package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lure/sales-dashboard/internal/cache"
	"github.com/lure/sales-dashboard/internal/models"
	"github.com/lure/sales-dashboard/internal/sheets"
	"github.com/lure/sales-dashboard/internal/telemetry"
	"github.com/lure/sales-dashboard/internal/utils"
)

const cacheKeyPrefix = "dashboard"

// DashboardService loads spreadsheet snapshots through the cache and feeds
// them to the pure aggregation functions in this package.
type DashboardService struct {
	Source     sheets.Source
	Cache      cache.Cache
	Metrics    *telemetry.Metrics
	Policy     WonPolicy
	TTL        time.Duration
	DefaultURL string
	Logger     zerolog.Logger
	Now        func() time.Time
}

type Dashboard struct {
	Cards       Cards                `json:"cards"`
	Leads       []models.Lead        `json:"leads"`
	Campaigns   []models.Campaign    `json:"campanhas"`
	Salespeople []models.Salesperson `json:"vendedores"`
	Parameters  []models.Parameter   `json:"parametros"`
	Timestamp   time.Time            `json:"timestamp"`
	FromCache   bool                 `json:"fromCache"`
}

type LeadFilter struct {
	Closer   string
	Campaign string
	Status   string
}

// ResolveURL falls back to the configured sheet.
func (s *DashboardService) ResolveURL(url string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		url = strings.TrimSpace(s.DefaultURL)
	}
	if url == "" {
		return "", sheets.ErrNoSheetURL
	}
	return url, nil
}

// Snapshot returns the sheet contents and whether they came from the cache.
// Concurrent misses for the same sheet each fetch it. skipCache evicts the
// sheet's entry before refetching, so a failed refetch leaves nothing stale.
func (s *DashboardService) Snapshot(ctx context.Context, url string, skipCache bool) (models.Snapshot, bool, error) {
	url, err := s.ResolveURL(url)
	if err != nil {
		return models.Snapshot{}, false, err
	}
	key := utils.CacheKey(cacheKeyPrefix, url)

	if skipCache {
		if err := s.cache().Delete(ctx, key); err != nil {
			s.Logger.Warn().Err(err).Str("cache_key", key).Msg("cache evict failed")
		}
	} else if snap, ok := s.cached(ctx, key); ok {
		return snap, true, nil
	}

	start := time.Now()
	snap, err := s.Source.Fetch(ctx, url)
	s.Metrics.ObserveSheetFetch(err, time.Since(start))
	if err != nil {
		s.Logger.Error().Err(err).Str("cache_key", key).Msg("sheet fetch failed")
		return models.Snapshot{}, false, err
	}
	if snap.FetchedAt.IsZero() {
		snap.FetchedAt = s.now()
	}

	roster := BuildRoster(snap.Salespeople)
	for _, d := range roster.Duplicates {
		s.Logger.Warn().Str("name", d.Name).Str("role", string(d.Role)).Msg("duplicate roster entry, last quota wins")
	}

	if raw, err := json.Marshal(snap); err == nil {
		if err := s.cache().Set(ctx, key, raw, s.TTL); err != nil {
			s.Logger.Warn().Err(err).Str("cache_key", key).Msg("cache set failed")
		}
	}
	return snap, false, nil
}

func (s *DashboardService) cached(ctx context.Context, key string) (models.Snapshot, bool) {
	raw, ok, err := s.cache().Get(ctx, key)
	if err != nil {
		s.Metrics.CacheResult("error")
		s.Logger.Warn().Err(err).Str("cache_key", key).Msg("cache get failed")
		return models.Snapshot{}, false
	}
	if !ok {
		s.Metrics.CacheResult("miss")
		return models.Snapshot{}, false
	}
	var snap models.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		s.Metrics.CacheResult("error")
		s.Logger.Warn().Err(err).Str("cache_key", key).Msg("cache entry unreadable")
		return models.Snapshot{}, false
	}
	s.Metrics.CacheResult("hit")
	return snap, true
}

func (s *DashboardService) Dashboard(ctx context.Context, url string, skipCache bool) (Dashboard, error) {
	snap, fromCache, err := s.Snapshot(ctx, url, skipCache)
	if err != nil {
		return Dashboard{}, err
	}
	return Dashboard{
		Cards:       DashboardCards(snap.Leads, s.Policy),
		Leads:       nonNil(snap.Leads),
		Campaigns:   nonNil(snap.Campaigns),
		Salespeople: nonNil(snap.Salespeople),
		Parameters:  nonNil(snap.Parameters),
		Timestamp:   snap.FetchedAt,
		FromCache:   fromCache,
	}, nil
}

func (s *DashboardService) Salespeople(ctx context.Context, url string) ([]SalespersonPerformance, error) {
	snap, _, err := s.Snapshot(ctx, url, false)
	if err != nil {
		return nil, err
	}
	return SalespersonPerformanceReport(snap.Leads, snap.Salespeople, s.Policy), nil
}

func (s *DashboardService) Campaigns(ctx context.Context, url string) ([]CampaignPerformance, error) {
	snap, _, err := s.Snapshot(ctx, url, false)
	if err != nil {
		return nil, err
	}
	return CampaignPerformanceReport(snap.Leads, snap.Campaigns, s.Policy), nil
}

func (s *DashboardService) Leads(ctx context.Context, url string, f LeadFilter) ([]models.Lead, error) {
	snap, _, err := s.Snapshot(ctx, url, false)
	if err != nil {
		return nil, err
	}
	return FilterLeads(snap.Leads, f), nil
}

func (s *DashboardService) Statuses(ctx context.Context, url string) ([]StatusCount, error) {
	snap, _, err := s.Snapshot(ctx, url, false)
	if err != nil {
		return nil, err
	}
	return StatusBreakdown(snap.Leads, s.Policy), nil
}

func (s *DashboardService) Leaderboard(ctx context.Context, url string, n int) (Leaderboard, error) {
	snap, _, err := s.Snapshot(ctx, url, false)
	if err != nil {
		return Leaderboard{}, err
	}
	return BuildLeaderboard(LiveMetrics(snap, s.Policy), n), nil
}

func (s *DashboardService) CacheStatus(ctx context.Context) (cache.Status, error) {
	return s.cache().Status(ctx)
}

func (s *DashboardService) ClearCache(ctx context.Context) error {
	if err := s.cache().Clear(ctx); err != nil {
		return err
	}
	s.Logger.Info().Msg("dashboard cache cleared")
	return nil
}

// FilterLeads keeps leads matching every non-empty field exactly.
func FilterLeads(leads []models.Lead, f LeadFilter) []models.Lead {
	out := make([]models.Lead, 0, len(leads))
	for _, l := range leads {
		if f.Closer != "" && l.Closer != f.Closer {
			continue
		}
		if f.Campaign != "" && l.Campaign != f.Campaign {
			continue
		}
		if f.Status != "" && l.Status != f.Status {
			continue
		}
		out = append(out, l)
	}
	return out
}

func (s *DashboardService) cache() cache.Cache {
	if s.Cache == nil {
		return cache.NewNoop()
	}
	return s.Cache
}

func (s *DashboardService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
