package service

import (
	"math"
	"strings"

	"github.com/lure/sales-dashboard/internal/models"
)

// Won-state markers seen in the sales sheets. Both are kept on purpose:
// the CRM export writes "implementado", the manual tabs write "vendido".
const (
	StatusImplementado = "implementado"
	StatusVendido      = "vendido"
)

// WonPolicy decides whether a lead status counts as a conversion.
// Matching is a case-insensitive substring test against any marker.
type WonPolicy struct {
	markers []string
}

var DefaultWonPolicy = NewWonPolicy(StatusImplementado, StatusVendido)

func NewWonPolicy(markers ...string) WonPolicy {
	out := make([]string, 0, len(markers))
	seen := map[string]struct{}{}
	for _, m := range markers {
		m = strings.ToLower(strings.TrimSpace(m))
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	if len(out) == 0 {
		out = []string{StatusImplementado, StatusVendido}
	}
	return WonPolicy{markers: out}
}

func (p WonPolicy) Markers() []string {
	return append([]string(nil), p.markers...)
}

func (p WonPolicy) IsWon(status string) bool {
	s := strings.ToLower(status)
	if strings.TrimSpace(s) == "" {
		return false
	}
	markers := p.markers
	if len(markers) == 0 {
		markers = DefaultWonPolicy.markers
	}
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

type Summary struct {
	TotalCount            int     `json:"totalLeads"`
	ConvertedCount        int     `json:"leadsVendidos"`
	Revenue               float64 `json:"faturamento"`
	ConversionRatePercent float64 `json:"taxaConversao"`
	AverageTicket         float64 `json:"ticketMedio"`
}

func Summarize(leads []models.Lead, policy WonPolicy) Summary {
	s := Summary{TotalCount: len(leads)}
	for _, l := range leads {
		if !policy.IsWon(l.Status) {
			continue
		}
		s.ConvertedCount++
		s.Revenue += l.SaleValue
	}
	s.ConversionRatePercent = Percent(float64(s.ConvertedCount), float64(s.TotalCount))
	s.AverageTicket = safeDiv(s.Revenue, float64(s.ConvertedCount))
	return s
}

// Round2 rounds half-up to two decimals.
func Round2(f float64) float64 {
	return math.Floor(f*100+0.5) / 100
}

func Percent(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return Round2(num / den * 100)
}

func ROIPercent(revenue, budget float64) float64 {
	if budget <= 0 {
		return 0
	}
	return Round2((revenue - budget) / budget * 100)
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

type Cards struct {
	TotalLeads     int     `json:"totalLeads"`
	TotalWon       int     `json:"totalLeadsVendidos"`
	ConversionRate float64 `json:"taxaConversao"`
	TotalRevenue   float64 `json:"faturamentoTotal"`
}

func DashboardCards(leads []models.Lead, policy WonPolicy) Cards {
	s := Summarize(leads, policy)
	return Cards{
		TotalLeads:     s.TotalCount,
		TotalWon:       s.ConvertedCount,
		ConversionRate: s.ConversionRatePercent,
		TotalRevenue:   s.Revenue,
	}
}

type SalespersonPerformance struct {
	Salesperson           string  `json:"vendedor"`
	TotalLeads            int     `json:"totalLeads"`
	LeadsWon              int     `json:"leadsVendidos"`
	Revenue               float64 `json:"faturamento"`
	Quota                 float64 `json:"metaVendas"`
	GoalAttainmentPercent float64 `json:"percentualMeta"`
	ConversionRatePercent float64 `json:"taxaConversao"`
	AverageTicket         float64 `json:"ticketMedio"`
}

func SalespersonPerformanceReport(leads []models.Lead, salespeople []models.Salesperson, policy WonPolicy) []SalespersonPerformance {
	roster := BuildRoster(salespeople)
	groups := LeadsBySalesperson(leads)

	out := make([]SalespersonPerformance, 0, groups.Len())
	for _, name := range groups.Keys {
		s := Summarize(groups.Get(name), policy)
		quota := roster.Quota(name, models.RoleCloser)
		out = append(out, SalespersonPerformance{
			Salesperson:           name,
			TotalLeads:            s.TotalCount,
			LeadsWon:              s.ConvertedCount,
			Revenue:               s.Revenue,
			Quota:                 quota,
			GoalAttainmentPercent: Percent(s.Revenue, quota),
			ConversionRatePercent: s.ConversionRatePercent,
			AverageTicket:         Round2(s.AverageTicket),
		})
	}
	return out
}

type CampaignPerformance struct {
	Campaign          string  `json:"campanha"`
	TotalLeads        int     `json:"totalLeads"`
	LeadsWon          int     `json:"leadsVendidos"`
	Revenue           float64 `json:"faturamento"`
	Budget            float64 `json:"orcamento"`
	LeadTarget        float64 `json:"metaLeads"`
	LeadTargetPercent float64 `json:"percentualMetaLeads"`
	ROIPercent        float64 `json:"roiOrcamento"`
}

// CampaignPerformanceReport joins leads to campaigns by name. Duplicate campaign
// names resolve last-write-wins, matching the roster policy.
func CampaignPerformanceReport(leads []models.Lead, campaigns []models.Campaign, policy WonPolicy) []CampaignPerformance {
	byName := make(map[string]models.Campaign, len(campaigns))
	for _, c := range campaigns {
		byName[strings.TrimSpace(c.Name)] = c
	}
	groups := LeadsByCampaign(leads)

	out := make([]CampaignPerformance, 0, groups.Len())
	for _, name := range groups.Keys {
		bucket := groups.Get(name)
		s := Summarize(bucket, policy)
		c := byName[name]
		out = append(out, CampaignPerformance{
			Campaign:          name,
			TotalLeads:        s.TotalCount,
			LeadsWon:          s.ConvertedCount,
			Revenue:           s.Revenue,
			Budget:            c.Budget,
			LeadTarget:        c.LeadTarget,
			LeadTargetPercent: Percent(float64(len(bucket)), c.LeadTarget),
			ROIPercent:        ROIPercent(s.Revenue, c.Budget),
		})
	}
	return out
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
	Won    bool   `json:"won"`
}

func StatusBreakdown(leads []models.Lead, policy WonPolicy) []StatusCount {
	groups := LeadsByStatus(leads)
	out := make([]StatusCount, 0, groups.Len())
	for _, status := range groups.Keys {
		out = append(out, StatusCount{
			Status: status,
			Count:  len(groups.Get(status)),
			Won:    status != SemStatus && policy.IsWon(status),
		})
	}
	return out
}

// LiveMetrics turns a live snapshot into one SalesMetric per roster member.
// Closers are credited through Lead.Closer, SDRs through Lead.SDR. The sheet
// carries no churn or cash-collection columns, so churn is 0 and cash/LTV
// mirror realized revenue.
func LiveMetrics(snap models.Snapshot, policy WonPolicy) []models.SalesMetric {
	roster := BuildRoster(snap.Salespeople)
	byCloser := LeadsBySalesperson(snap.Leads)
	bySDR := LeadsBySDR(snap.Leads)

	out := make([]models.SalesMetric, 0, len(roster.Members))
	for _, m := range roster.Members {
		var bucket []models.Lead
		if m.Role == models.RoleSDR {
			bucket = bySDR.Get(m.Name)
		} else {
			bucket = byCloser.Get(m.Name)
		}
		s := Summarize(bucket, policy)
		out = append(out, models.SalesMetric{
			SalespersonID:  m.ID,
			Name:           m.Name,
			TotalSales:     s.Revenue,
			CashCollected:  s.Revenue,
			LtvSales:       s.Revenue,
			ConversionRate: s.ConversionRatePercent,
			ChurnRate:      0,
			AverageTicket:  Round2(s.AverageTicket),
			Role:           m.Role,
		})
	}
	return out
}
