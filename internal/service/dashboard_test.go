package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/lure/sales-dashboard/internal/cache"
	"github.com/lure/sales-dashboard/internal/models"
	"github.com/lure/sales-dashboard/internal/sheets"
	"github.com/lure/sales-dashboard/internal/telemetry"
)

type stubSource struct {
	snap  models.Snapshot
	err   error
	calls int
	urls  []string
}

func (s *stubSource) Fetch(ctx context.Context, url string) (models.Snapshot, error) {
	s.calls++
	s.urls = append(s.urls, url)
	return s.snap, s.err
}

func newDashboardService(src sheets.Source) *DashboardService {
	return &DashboardService{
		Source:  src,
		Cache:   cache.NewMemory(),
		Metrics: telemetry.New(),
		Policy:  DefaultWonPolicy,
		TTL:     time.Minute,
		Logger:  zerolog.Nop(),
		Now:     func() time.Time { return time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC) },
	}
}

func scenarioSnapshot() models.Snapshot {
	return models.Snapshot{
		Leads:       scenarioLeads(),
		Campaigns:   []models.Campaign{{Name: "Campanha A", Budget: 10000, LeadTarget: 50}},
		Salespeople: []models.Salesperson{{Name: "Anderson", Quota: 50000}},
	}
}

func TestDashboardUsesCacheUntilSkipped(t *testing.T) {
	src := &stubSource{snap: scenarioSnapshot()}
	svc := newDashboardService(src)
	ctx := context.Background()

	first, err := svc.Dashboard(ctx, "https://sheets.example.com/a.xlsx", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.FromCache || first.Cards.TotalLeads != 3 || first.Cards.TotalRevenue != 13000 {
		t.Fatalf("unexpected first dashboard %+v", first)
	}
	if first.Timestamp.IsZero() {
		t.Fatalf("expected timestamp to be stamped")
	}

	second, err := svc.Dashboard(ctx, "https://sheets.example.com/a.xlsx", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.FromCache || src.calls != 1 {
		t.Fatalf("expected cached response, calls=%d", src.calls)
	}
	if len(second.Leads) != 3 || second.Leads[0].Closer != "Anderson" {
		t.Fatalf("cached snapshot lost data: %+v", second.Leads)
	}

	third, _ := svc.Dashboard(ctx, "https://sheets.example.com/a.xlsx", true)
	if third.FromCache || src.calls != 2 {
		t.Fatalf("expected skipCache to refetch, calls=%d", src.calls)
	}
}

func TestSkipCacheEvictsSheetEntry(t *testing.T) {
	src := &stubSource{snap: scenarioSnapshot()}
	svc := newDashboardService(src)
	ctx := context.Background()
	const a, b = "https://sheets.example.com/a.xlsx", "https://sheets.example.com/b.xlsx"
	_, _ = svc.Dashboard(ctx, a, false)
	_, _ = svc.Dashboard(ctx, b, false)

	src.err = errors.New("boom")
	if _, err := svc.Dashboard(ctx, a, true); err == nil {
		t.Fatalf("expected refetch error")
	}
	st, _ := svc.CacheStatus(ctx)
	if st.Entries != 1 {
		t.Fatalf("expected only the other sheet cached, got %d entries", st.Entries)
	}

	src.err = nil
	d, _ := svc.Dashboard(ctx, a, false)
	if d.FromCache || src.calls != 4 {
		t.Fatalf("expected evicted sheet to refetch, calls=%d", src.calls)
	}
	d, _ = svc.Dashboard(ctx, b, false)
	if !d.FromCache {
		t.Fatalf("expected other sheet to stay cached")
	}
}

func TestDashboardCacheIsPerSheet(t *testing.T) {
	src := &stubSource{snap: scenarioSnapshot()}
	svc := newDashboardService(src)
	ctx := context.Background()
	_, _ = svc.Dashboard(ctx, "https://sheets.example.com/a.xlsx", false)
	d, _ := svc.Dashboard(ctx, "https://sheets.example.com/b.xlsx", false)
	if d.FromCache || src.calls != 2 {
		t.Fatalf("expected a separate cache entry per sheet")
	}
}

func TestSnapshotFallsBackToDefaultURL(t *testing.T) {
	src := &stubSource{snap: scenarioSnapshot()}
	svc := newDashboardService(src)
	svc.DefaultURL = "https://sheets.example.com/default.xlsx"
	if _, _, err := svc.Snapshot(context.Background(), " ", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src.urls[0] != svc.DefaultURL {
		t.Fatalf("expected default url, got %s", src.urls[0])
	}
}

func TestSnapshotRequiresURL(t *testing.T) {
	svc := newDashboardService(&stubSource{})
	if _, _, err := svc.Snapshot(context.Background(), "", false); !errors.Is(err, sheets.ErrNoSheetURL) {
		t.Fatalf("expected ErrNoSheetURL, got %v", err)
	}
}

func TestSnapshotPropagatesSourceErrors(t *testing.T) {
	upstream := errors.New("timeout")
	svc := newDashboardService(&stubSource{err: upstream})
	_, err := svc.Salespeople(context.Background(), "https://sheets.example.com/a.xlsx")
	if !errors.Is(err, upstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if st, _ := svc.CacheStatus(context.Background()); st.Entries != 0 {
		t.Fatalf("failures must not be cached")
	}
}

func TestDashboardServiceReports(t *testing.T) {
	svc := newDashboardService(&stubSource{snap: scenarioSnapshot()})
	ctx := context.Background()
	url := "https://sheets.example.com/a.xlsx"

	sp, err := svc.Salespeople(ctx, url)
	if err != nil || len(sp) != 2 || sp[0].GoalAttainmentPercent != 26 {
		t.Fatalf("unexpected salespeople %+v %v", sp, err)
	}
	camp, err := svc.Campaigns(ctx, url)
	if err != nil || camp[0].ROIPercent != -50 {
		t.Fatalf("unexpected campaigns %+v %v", camp, err)
	}
	leads, err := svc.Leads(ctx, url, LeadFilter{Closer: "Anderson", Campaign: "Campanha B"})
	if err != nil || len(leads) != 1 || leads[0].ID != 3 {
		t.Fatalf("unexpected leads %+v %v", leads, err)
	}
	lb, err := svc.Leaderboard(ctx, url, 3)
	if err != nil || len(lb.Closers) != 1 || lb.Closers[0].TotalSales != 13000 {
		t.Fatalf("unexpected leaderboard %+v %v", lb, err)
	}
	st, err := svc.Statuses(ctx, url)
	if err != nil || len(st) != 2 {
		t.Fatalf("unexpected statuses %+v %v", st, err)
	}
}

func TestClearCache(t *testing.T) {
	src := &stubSource{snap: scenarioSnapshot()}
	svc := newDashboardService(src)
	ctx := context.Background()
	_, _ = svc.Dashboard(ctx, "https://sheets.example.com/a.xlsx", false)
	if st, _ := svc.CacheStatus(ctx); st.Entries != 1 {
		t.Fatalf("expected one cached sheet, got %d", st.Entries)
	}
	if err := svc.ClearCache(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	d, _ := svc.Dashboard(ctx, "https://sheets.example.com/a.xlsx", false)
	if d.FromCache {
		t.Fatalf("expected refetch after clear")
	}
}

func TestFilterLeadsExactMatch(t *testing.T) {
	leads := scenarioLeads()
	if got := FilterLeads(leads, LeadFilter{}); len(got) != 3 {
		t.Fatalf("expected no filtering, got %d", len(got))
	}
	if got := FilterLeads(leads, LeadFilter{Status: "Vendido"}); len(got) != 0 {
		t.Fatalf("expected case-sensitive status match, got %d", len(got))
	}
}
