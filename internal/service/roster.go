package service

import (
	"strings"

	"github.com/lure/sales-dashboard/internal/models"
)

type Member struct {
	ID    int         `json:"id"`
	Name  string      `json:"name"`
	Role  models.Role `json:"role"`
	Quota float64     `json:"quota"`
}

type Duplicate struct {
	Name string      `json:"name"`
	Role models.Role `json:"role"`
}

// Roster is the set of people credited on the dashboard. A name listed as
// both closer and SDR yields two members.
type Roster struct {
	Members    []Member
	Duplicates []Duplicate
	index      map[rosterKey]int
}

type rosterKey struct {
	name string
	role models.Role
}

// BuildRoster reads closers from the vendedor column and SDRs from the sdr
// column. Repeated names keep their first id and take the last quota. An SDR
// paired with several closers repeats on every row, so only a changed SDR
// quota counts as a duplicate.
func BuildRoster(salespeople []models.Salesperson) Roster {
	r := Roster{
		Members: make([]Member, 0, len(salespeople)),
		index:   make(map[rosterKey]int),
	}
	for _, sp := range salespeople {
		r.add(sp.Name, models.RoleCloser, sp.Quota)
	}
	for _, sp := range salespeople {
		r.add(sp.SDR, models.RoleSDR, sp.SDRQuota)
	}
	return r
}

func (r *Roster) add(name string, role models.Role, quota float64) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	k := rosterKey{name: name, role: role}
	if i, ok := r.index[k]; ok {
		if role != models.RoleSDR || r.Members[i].Quota != quota {
			r.Duplicates = append(r.Duplicates, Duplicate{Name: name, Role: role})
		}
		r.Members[i].Quota = quota
		return
	}
	r.index[k] = len(r.Members)
	r.Members = append(r.Members, Member{
		ID:    len(r.Members) + 1,
		Name:  name,
		Role:  role,
		Quota: quota,
	})
}

// Quota returns 0 for names not on the roster.
func (r Roster) Quota(name string, role models.Role) float64 {
	i, ok := r.index[rosterKey{name: strings.TrimSpace(name), role: role}]
	if !ok {
		return 0
	}
	return r.Members[i].Quota
}

func (r Roster) Len() int {
	return len(r.Members)
}
