package overtime

import (
	"sort"
	"strings"
	"time"

	"github.com/casarosa-rh/hr-backend-go/internal/config"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/overtime"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

// ScopeForActor narrows the full record set to what the actor may see:
// ADM/RH everything, GESTOR the requests routed to them, COLABORADOR
// only their own (matched by uid or email).
func ScopeForActor(actor user.Actor, requests []overtime.Request) []overtime.Request {
	if actor.Role.IsHR() {
		return requests
	}

	var scoped []overtime.Request
	for _, req := range requests {
		switch actor.Role {
		case user.RoleGestor:
			if req.ManagerUID == actor.EmployeeUID {
				scoped = append(scoped, req)
			}
		case user.RoleColaborador:
			if actor.IsSelf(req.EmployeeUID, req.EmployeeEmail) {
				scoped = append(scoped, req)
			}
		}
	}
	return scoped
}

// ApplyFilter keeps the requests matching every set field of the filter.
// Input order is preserved.
func ApplyFilter(requests []overtime.Request, f overtime.Filter) []overtime.Request {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	var filtered []overtime.Request
	for _, req := range requests {
		if f.DateFrom != nil && dateOnly(req.Date).Before(dateOnly(*f.DateFrom)) {
			continue
		}
		if f.DateTo != nil && dateOnly(req.Date).After(dateOnly(*f.DateTo)) {
			continue
		}
		if len(f.Statuses) > 0 && !containsStatus(f.Statuses, req.Status) {
			continue
		}
		if f.ManagerUID != "" && req.ManagerUID != f.ManagerUID {
			continue
		}
		if f.CostCenter != "" && req.CostCenter != f.CostCenter {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(req.EmployeeName), search) &&
			!strings.Contains(strings.ToLower(req.EmployeeEmail), search) {
			continue
		}
		filtered = append(filtered, req)
	}
	return filtered
}

// BuildSummary computes the listing KPIs. The pending count comes from
// the scoped-but-unfiltered set so it always reflects the full scope;
// hour and cost totals cover filtered requests that reached APROVADA or
// beyond. Cost is attached only when includeCost is set (hidden from
// COLABORADOR actors).
func BuildSummary(scoped, filtered []overtime.Request, salaries map[string]float64, cfg config.OvertimeConfig, includeCost bool) overtime.Summary {
	summary := overtime.Summary{}

	for _, req := range scoped {
		if req.Status == overtime.StatusPendenteGestao {
			summary.PendingCount++
		}
	}

	var totalCost float64
	for _, req := range filtered {
		if !countsTowardsTotals(req.Status) {
			continue
		}
		summary.TotalHours += req.Hours.Total
		totalCost += EstimateCost(req.Hours, salaries[req.EmployeeUID], cfg)
	}
	if includeCost {
		summary.TotalCost = &totalCost
	}

	summary.TopEmployees = topByHours(filtered, func(r overtime.Request) string {
		if r.EmployeeName != "" {
			return r.EmployeeName
		}
		return r.EmployeeEmail
	})
	summary.TopCostCenters = topByHours(filtered, func(r overtime.Request) string {
		return r.CostCenter
	})

	return summary
}

const topN = 5

// topByHours ranks the filtered set by summed total hours under the
// given grouping key. Ties keep first-seen order (stable sort).
func topByHours(requests []overtime.Request, key func(overtime.Request) string) []overtime.RankEntry {
	totals := make(map[string]float64)
	var order []string
	for _, req := range requests {
		k := key(req)
		if k == "" {
			continue
		}
		if _, seen := totals[k]; !seen {
			order = append(order, k)
		}
		totals[k] += req.Hours.Total
	}

	entries := make([]overtime.RankEntry, 0, len(order))
	for _, k := range order {
		entries = append(entries, overtime.RankEntry{Key: k, Hours: totals[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Hours > entries[j].Hours
	})

	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}

func countsTowardsTotals(s overtime.Status) bool {
	return s == overtime.StatusAprovada || s == overtime.StatusExecutada || s == overtime.StatusEmFolha
}

func containsStatus(statuses []overtime.Status, s overtime.Status) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
