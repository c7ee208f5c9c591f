package service

import (
	"sort"

	"github.com/lure/sales-dashboard/internal/models"
)

const DefaultTopN = 3

type Leaderboard struct {
	Closers []models.SalesMetric `json:"closers"`
	Sdrs    []models.SalesMetric `json:"sdrs"`
}

// TopN returns up to n metrics of the given role ordered by TotalSales,
// highest first. Ties keep input order. The input slice is left untouched.
func TopN(metrics []models.SalesMetric, role models.Role, n int) []models.SalesMetric {
	if n <= 0 {
		n = DefaultTopN
	}
	filtered := make([]models.SalesMetric, 0, len(metrics))
	for _, m := range metrics {
		if m.Role == role {
			filtered = append(filtered, m)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].TotalSales > filtered[j].TotalSales
	})
	if len(filtered) > n {
		filtered = filtered[:n]
	}
	return filtered
}

func TopClosers(metrics []models.SalesMetric, n int) []models.SalesMetric {
	return TopN(metrics, models.RoleCloser, n)
}

func TopSdrs(metrics []models.SalesMetric, n int) []models.SalesMetric {
	return TopN(metrics, models.RoleSDR, n)
}

func BuildLeaderboard(metrics []models.SalesMetric, n int) Leaderboard {
	return Leaderboard{
		Closers: TopClosers(metrics, n),
		Sdrs:    TopSdrs(metrics, n),
	}
}
