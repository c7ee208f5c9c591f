// Package period serves the demo sales figures behind the period selector.
// Weekly and custom views are fractions of the monthly numbers, not true
// date-bounded rollups.
package period

import (
	"math"
	"strings"
	"time"

	"github.com/lure/sales-dashboard/internal/models"
	"github.com/lure/sales-dashboard/internal/service"
)

type Type string

const (
	Month  Type = "month"
	Week   Type = "week"
	Custom Type = "custom"
)

// ParseType maps unknown or blank input to Month.
func ParseType(s string) Type {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case Week:
		return Week
	case Custom:
		return Custom
	}
	return Month
}

const (
	IndividualGoal = 50000
	weekFactor     = 0.25
	monthKeyLayout = "2006-01"
)

type Query struct {
	PeriodType Type
	StartDate  time.Time
	EndDate    time.Time
}

type Totals struct {
	TotalCashCollected float64 `json:"totalCashCollected"`
	TotalLtvSales      float64 `json:"totalLtvSales"`
	TotalGoal          float64 `json:"totalGoal"`
	AvgConversionRate  float64 `json:"avgConversionRate"`
	AvgChurnRate       float64 `json:"avgChurnRate"`
	AvgTicket          float64 `json:"avgTicket"`
	TotalSales         float64 `json:"totalSales"`
}

type Person struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	IndividualGoal float64 `json:"individualGoal"`
}

type Result struct {
	Totals
	Salespeople []Person             `json:"salespeople"`
	Metrics     []models.SalesMetric `json:"metrics"`
	TopClosers  []models.SalesMetric `json:"topClosers"`
	TopSdrs     []models.SalesMetric `json:"topSdrs"`
	PeriodType  Type                 `json:"periodType"`
	StartDate   time.Time            `json:"startDate"`
	EndDate     time.Time            `json:"endDate"`
}

type Resolver struct {
	Now func() time.Time
}

func NewResolver() *Resolver {
	return &Resolver{Now: time.Now}
}

func (r *Resolver) now() time.Time {
	if r == nil || r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func (r *Resolver) Resolve(q Query) Result {
	now := r.now()
	start, end := q.StartDate, q.EndDate
	if start.IsZero() {
		start = now
	}
	if end.IsZero() {
		end = now
	}
	pt := ParseType(string(q.PeriodType))

	var metrics []models.SalesMetric
	switch pt {
	case Week:
		metrics = Weekly(start)
	case Custom:
		metrics = Daily(start)
	default:
		metrics = Monthly(start)
	}

	return Result{
		Totals:      CalculateTotals(metrics),
		Salespeople: people(metrics),
		Metrics:     metrics,
		TopClosers:  service.TopClosers(metrics, service.DefaultTopN),
		TopSdrs:     service.TopSdrs(metrics, service.DefaultTopN),
		PeriodType:  pt,
		StartDate:   start,
		EndDate:     end,
	}
}

// Monthly returns the month of start from the history table, or the default
// roster when the month is unknown.
func Monthly(start time.Time) []models.SalesMetric {
	rows, ok := history[start.Format(monthKeyLayout)]
	if !ok {
		return clone(defaultRoster)
	}
	return clone(rows)
}

// Weekly is a quarter of the month. Unknown months fall back to the
// default roster unscaled.
func Weekly(start time.Time) []models.SalesMetric {
	rows, ok := history[start.Format(monthKeyLayout)]
	if !ok {
		return clone(defaultRoster)
	}
	return scale(rows, weekFactor)
}

// Daily scales the month by 0.5 + (day % 5) * 0.1, so a factor in [0.5, 0.9].
func Daily(date time.Time) []models.SalesMetric {
	rows, ok := history[date.Format(monthKeyLayout)]
	if !ok {
		return clone(defaultRoster)
	}
	return scale(rows, DayFactor(date))
}

func DayFactor(date time.Time) float64 {
	return 0.5 + float64(date.Day()%5)*0.1
}

func CalculateTotals(metrics []models.SalesMetric) Totals {
	if len(metrics) == 0 {
		return Totals{}
	}
	var t Totals
	var conv, churn, ticket float64
	for _, m := range metrics {
		t.TotalCashCollected += m.CashCollected
		t.TotalLtvSales += m.LtvSales
		t.TotalSales += m.TotalSales
		conv += m.ConversionRate
		churn += m.ChurnRate
		ticket += m.AverageTicket
	}
	n := float64(len(metrics))
	t.TotalGoal = n * IndividualGoal
	t.AvgConversionRate = roundHalfUp(conv / n)
	t.AvgChurnRate = roundHalfUp(churn / n)
	t.AvgTicket = roundHalfUp(ticket / n)
	return t
}

func scale(rows []models.SalesMetric, factor float64) []models.SalesMetric {
	out := clone(rows)
	for i := range out {
		out[i].TotalSales = roundHalfUp(out[i].TotalSales * factor)
		out[i].CashCollected = roundHalfUp(out[i].CashCollected * factor)
		out[i].LtvSales = roundHalfUp(out[i].LtvSales * factor)
	}
	return out
}

func clone(rows []models.SalesMetric) []models.SalesMetric {
	return append([]models.SalesMetric(nil), rows...)
}

func people(metrics []models.SalesMetric) []Person {
	out := make([]Person, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, Person{ID: m.SalespersonID, Name: m.Name, IndividualGoal: IndividualGoal})
	}
	return out
}

func roundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}
