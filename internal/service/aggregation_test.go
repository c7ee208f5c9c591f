package service

import (
	"testing"

	"github.com/lure/sales-dashboard/internal/models"
)

func scenarioLeads() []models.Lead {
	return []models.Lead{
		{ID: 1, Closer: "Anderson", Status: "vendido", SaleValue: 5000, Campaign: "Campanha A"},
		{ID: 2, Closer: "Gabriel", Status: "em contato", SaleValue: 0, Campaign: "Campanha A"},
		{ID: 3, Closer: "Anderson", Status: "vendido", SaleValue: 8000, Campaign: "Campanha B"},
	}
}

func TestWonPolicyMatchesBothMarkers(t *testing.T) {
	p := DefaultWonPolicy
	for _, s := range []string{"vendido", "VENDIDO", "Implementado", "venda: vendido ok"} {
		if !p.IsWon(s) {
			t.Fatalf("expected %q to count as won", s)
		}
	}
	for _, s := range []string{"", "  ", "em contato", "perdido"} {
		if p.IsWon(s) {
			t.Fatalf("expected %q not to count as won", s)
		}
	}
}

func TestNewWonPolicyFallsBackToDefaults(t *testing.T) {
	p := NewWonPolicy(" ", "")
	if len(p.Markers()) != 2 {
		t.Fatalf("expected default markers, got %v", p.Markers())
	}
	custom := NewWonPolicy("Fechado", "fechado")
	if len(custom.Markers()) != 1 || !custom.IsWon("FECHADO") || custom.IsWon("vendido") {
		t.Fatalf("unexpected custom policy %v", custom.Markers())
	}
}

func TestSalespersonPerformanceScenario(t *testing.T) {
	salespeople := []models.Salesperson{{Name: "Anderson", Quota: 50000}}
	res := SalespersonPerformanceReport(scenarioLeads(), salespeople, DefaultWonPolicy)
	if len(res) != 2 {
		t.Fatalf("expected 2 salespeople, got %d", len(res))
	}
	a := res[0]
	if a.Salesperson != "Anderson" || a.TotalLeads != 2 || a.LeadsWon != 2 || a.Revenue != 13000 {
		t.Fatalf("unexpected Anderson row %+v", a)
	}
	if a.GoalAttainmentPercent != 26 {
		t.Fatalf("expected goal 26, got %v", a.GoalAttainmentPercent)
	}
	if a.ConversionRatePercent != 100 || a.AverageTicket != 6500 {
		t.Fatalf("unexpected rates %+v", a)
	}
	g := res[1]
	if g.Salesperson != "Gabriel" || g.Quota != 0 || g.GoalAttainmentPercent != 0 || g.AverageTicket != 0 {
		t.Fatalf("unexpected Gabriel row %+v", g)
	}
}

func TestCampaignPerformanceScenario(t *testing.T) {
	campaigns := []models.Campaign{
		{Name: "Campanha A", Budget: 10000, LeadTarget: 50},
		{Name: "Campanha B", Budget: 15000, LeadTarget: 75},
	}
	res := CampaignPerformanceReport(scenarioLeads(), campaigns, DefaultWonPolicy)
	if len(res) != 2 {
		t.Fatalf("expected 2 campaigns, got %d", len(res))
	}
	a := res[0]
	if a.Campaign != "Campanha A" || a.TotalLeads != 2 || a.LeadsWon != 1 || a.Revenue != 5000 {
		t.Fatalf("unexpected campaign row %+v", a)
	}
	if a.LeadTargetPercent != 4 {
		t.Fatalf("expected lead target 4, got %v", a.LeadTargetPercent)
	}
	if a.ROIPercent != -50 {
		t.Fatalf("expected ROI -50, got %v", a.ROIPercent)
	}
}

func TestCampaignWithoutBudgetHasZeroROI(t *testing.T) {
	leads := []models.Lead{{Campaign: "Orgânico", Status: "vendido", SaleValue: 900}}
	res := CampaignPerformanceReport(leads, []models.Campaign{{Name: "Orgânico"}}, DefaultWonPolicy)
	if res[0].ROIPercent != 0 || res[0].LeadTargetPercent != 0 {
		t.Fatalf("expected zero ROI and target, got %+v", res[0])
	}
}

func TestConversionRateBounds(t *testing.T) {
	if got := Summarize(nil, DefaultWonPolicy).ConversionRatePercent; got != 0 {
		t.Fatalf("expected 0 for empty group, got %v", got)
	}
	leads := []models.Lead{{Status: "vendido"}, {Status: "perdido"}, {Status: "perdido"}}
	got := Summarize(leads, DefaultWonPolicy).ConversionRatePercent
	if got != 33.33 {
		t.Fatalf("expected 33.33, got %v", got)
	}
}

func TestRound2HalfUp(t *testing.T) {
	cases := map[float64]float64{
		1.235:   1.24,
		2.5:     2.5,
		66.6666: 66.67,
		-50:     -50,
		0:       0,
	}
	for in, want := range cases {
		if got := Round2(in); got != want {
			t.Fatalf("Round2(%v): expected %v, got %v", in, want, got)
		}
	}
}

func TestDashboardCards(t *testing.T) {
	cards := DashboardCards(scenarioLeads(), DefaultWonPolicy)
	if cards.TotalLeads != 3 || cards.TotalWon != 2 || cards.TotalRevenue != 13000 {
		t.Fatalf("unexpected cards %+v", cards)
	}
	if cards.ConversionRate != 66.67 {
		t.Fatalf("expected 66.67, got %v", cards.ConversionRate)
	}
}

func TestStatusBreakdownUsesSentinel(t *testing.T) {
	leads := append(scenarioLeads(), models.Lead{Status: "  "})
	res := StatusBreakdown(leads, DefaultWonPolicy)
	if len(res) != 3 {
		t.Fatalf("expected 3 statuses, got %+v", res)
	}
	if res[0].Status != "vendido" || res[0].Count != 2 || !res[0].Won {
		t.Fatalf("unexpected first status %+v", res[0])
	}
	if res[2].Status != SemStatus || res[2].Won {
		t.Fatalf("expected blank status bucket, got %+v", res[2])
	}
}

func TestAggregationIsIdempotent(t *testing.T) {
	leads := scenarioLeads()
	sp := []models.Salesperson{{Name: "Anderson", Quota: 50000}}
	first := SalespersonPerformanceReport(leads, sp, DefaultWonPolicy)
	second := SalespersonPerformanceReport(leads, sp, DefaultWonPolicy)
	if len(first) != len(second) {
		t.Fatalf("expected equal lengths")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("row %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestLiveMetricsCreditsClosersAndSdrs(t *testing.T) {
	snap := models.Snapshot{
		Leads: []models.Lead{
			{Closer: "Anderson", SDR: "Jony", Status: "vendido", SaleValue: 5000},
			{Closer: "Anderson", SDR: "Jony", Status: "perdido"},
			{Closer: "Gabriel", SDR: "Victor", Status: "implementado", SaleValue: 3000},
		},
		Salespeople: []models.Salesperson{
			{Name: "Anderson", Quota: 50000, SDR: "Jony"},
			{Name: "Gabriel", Quota: 40000, SDR: "Victor"},
		},
	}
	metrics := LiveMetrics(snap, DefaultWonPolicy)
	if len(metrics) != 4 {
		t.Fatalf("expected 4 members, got %d", len(metrics))
	}
	a := metrics[0]
	if a.Name != "Anderson" || a.Role != models.RoleCloser || a.TotalSales != 5000 || a.ConversionRate != 50 {
		t.Fatalf("unexpected closer metric %+v", a)
	}
	if a.CashCollected != a.TotalSales || a.LtvSales != a.TotalSales || a.ChurnRate != 0 {
		t.Fatalf("expected revenue mirrored, got %+v", a)
	}
	j := metrics[2]
	if j.Name != "Jony" || j.Role != models.RoleSDR || j.TotalSales != 5000 || j.SalespersonID != 3 {
		t.Fatalf("unexpected sdr metric %+v", j)
	}
}
