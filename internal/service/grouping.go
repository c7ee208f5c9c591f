package service

import (
	"strings"

	"github.com/lure/sales-dashboard/internal/models"
)

const (
	SemVendedor = "Sem vendedor"
	SemCampanha = "Sem campanha"
	SemStatus   = "Sem status"
	SemSDR      = "Sem SDR"
)

// Groups keeps buckets in the order their key was first seen.
type Groups[T any] struct {
	Keys    []string
	Buckets map[string][]T
}

func (g Groups[T]) Len() int {
	return len(g.Keys)
}

func (g Groups[T]) Get(key string) []T {
	return g.Buckets[key]
}

// Total is the number of records across all buckets.
func (g Groups[T]) Total() int {
	n := 0
	for _, k := range g.Keys {
		n += len(g.Buckets[k])
	}
	return n
}

func GroupBy[T any](records []T, key func(T) string, sentinel string) Groups[T] {
	g := Groups[T]{
		Keys:    make([]string, 0),
		Buckets: make(map[string][]T),
	}
	for _, r := range records {
		k := strings.TrimSpace(key(r))
		if k == "" {
			k = sentinel
		}
		if _, ok := g.Buckets[k]; !ok {
			g.Keys = append(g.Keys, k)
		}
		g.Buckets[k] = append(g.Buckets[k], r)
	}
	return g
}

func LeadsBySalesperson(leads []models.Lead) Groups[models.Lead] {
	return GroupBy(leads, func(l models.Lead) string { return l.Closer }, SemVendedor)
}

func LeadsBySDR(leads []models.Lead) Groups[models.Lead] {
	return GroupBy(leads, func(l models.Lead) string { return l.SDR }, SemSDR)
}

func LeadsByCampaign(leads []models.Lead) Groups[models.Lead] {
	return GroupBy(leads, func(l models.Lead) string { return l.Campaign }, SemCampanha)
}

func LeadsByStatus(leads []models.Lead) Groups[models.Lead] {
	return GroupBy(leads, func(l models.Lead) string { return l.Status }, SemStatus)
}
