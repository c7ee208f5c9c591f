package period

import "github.com/lure/sales-dashboard/internal/models"

func closer(id int, name string, sales, cash, ltv, conv, churn, ticket float64) models.SalesMetric {
	return models.SalesMetric{
		SalespersonID:  id,
		Name:           name,
		TotalSales:     sales,
		CashCollected:  cash,
		LtvSales:       ltv,
		ConversionRate: conv,
		ChurnRate:      churn,
		AverageTicket:  ticket,
		Role:           models.RoleCloser,
	}
}

func sdr(id int, name string, sales, cash, ltv, conv, churn, ticket float64) models.SalesMetric {
	m := closer(id, name, sales, cash, ltv, conv, churn, ticket)
	m.Role = models.RoleSDR
	return m
}

// history is keyed by "YYYY-MM".
var history = map[string][]models.SalesMetric{
	"2025-12": {
		closer(1, "Anderson", 58000, 55000, 78000, 30, 6, 2400),
		closer(2, "Gabriel", 42000, 40000, 65000, 25, 9, 2000),
		closer(3, "Joao Vitor", 68000, 65000, 90000, 36, 4, 2700),
		closer(4, "Felipe", 40000, 38000, 62000, 24, 11, 1900),
		closer(5, "Gustavo", 48000, 46000, 70000, 27, 8, 2300),
		closer(6, "Bruno", 45000, 43000, 68000, 26, 9, 2150),
		sdr(7, "Gladisson", 35000, 33000, 48000, 18, 12, 1800),
		sdr(8, "Jony", 32000, 30000, 45000, 16, 14, 1700),
		sdr(9, "Victor", 38000, 36000, 52000, 20, 11, 1900),
	},
	"2026-01": defaultRoster,
	"2026-02": {
		closer(1, "Anderson", 62000, 60000, 82000, 31, 5, 2450),
		closer(2, "Gabriel", 50000, 48000, 75000, 29, 7, 2150),
		closer(3, "Joao Vitor", 70000, 68000, 92000, 37, 3, 2750),
		closer(4, "Felipe", 47000, 45000, 70000, 27, 9, 2050),
		closer(5, "Gustavo", 55000, 53000, 78000, 30, 6, 2450),
		closer(6, "Bruno", 52000, 50000, 75000, 29, 7, 2300),
		sdr(7, "Gladisson", 38000, 36000, 52000, 20, 11, 1850),
		sdr(8, "Jony", 34000, 32000, 48000, 18, 13, 1750),
		sdr(9, "Victor", 40000, 38000, 56000, 21, 10, 1950),
	},
}

var defaultRoster = []models.SalesMetric{
	closer(1, "Anderson", 65000, 62000, 85000, 32, 5, 2500),
	closer(2, "Gabriel", 48000, 45000, 72000, 28, 8, 2200),
	closer(3, "Joao Vitor", 72000, 70000, 95000, 38, 3, 2800),
	closer(4, "Felipe", 45000, 42000, 68000, 26, 10, 2000),
	closer(5, "Gustavo", 52000, 50000, 75000, 29, 7, 2400),
	closer(6, "Bruno", 50000, 48000, 72000, 28, 8, 2250),
	sdr(7, "Gladisson", 40000, 38000, 55000, 21, 10, 1900),
	sdr(8, "Jony", 36000, 34000, 50000, 19, 12, 1800),
	sdr(9, "Victor", 42000, 40000, 58000, 22, 10, 2000),
}
