// Package reporting aggregates analyzer results across the filtered request
// set: executive totals, quartile amount distribution, department and program
// rollups, and per-disposition counts. Every rollup is a pure function of
// (snapshot, filters, config) and recomputes from scratch on each call.
package reporting

import (
	"sort"

	"budget-backend/internal/analysis"
	"budget-backend/internal/records"
	"budget-backend/internal/scoring"
)

// DefaultBaselineMultiplier estimates a program's existing budget when no
// real baseline feed exists. A placeholder heuristic, surfaced in config so
// deployments can tune it.
const DefaultBaselineMultiplier = 8

// Config carries reporting knobs.
type Config struct {
	BaselineMultiplier float64
}

func (c Config) multiplier() float64 {
	if c.BaselineMultiplier <= 0 {
		return DefaultBaselineMultiplier
	}
	return c.BaselineMultiplier
}

// Totals is the executive summary over the filtered set.
type Totals struct {
	Requests int     `json:"requests"`
	Ongoing  float64 `json:"ongoing"`
	OneTime  float64 `json:"onetime"`
	Total    float64 `json:"total"`
}

// QuartileAmount is one bucket of the quartile distribution. A request's
// total is divided evenly across its line items and each share lands in the
// bucket of that item's quartile; items without a recognizable quartile drop
// their share.
type QuartileAmount struct {
	Quartile records.Quartile `json:"quartile"`
	Amount   float64          `json:"amount"`
}

// DepartmentRollup summarizes one department across the filtered set. Amount
// counts each request's total once per department even when several of its
// line items map there.
type DepartmentRollup struct {
	Department string           `json:"department"`
	Requests   int              `json:"requests"`
	Programs   int              `json:"programs"`
	Amount     float64          `json:"amount"`
	Quartiles  []QuartileAmount `json:"quartiles"`
}

// ProgramRollup summarizes one program within a department. Baseline is the
// synthetic existing-budget estimate (first contributing request's total
// times the configured multiplier); Proposed is Baseline plus Requested.
type ProgramRollup struct {
	Department string  `json:"department"`
	Program    string  `json:"program"`
	Quartile   string  `json:"quartile"`
	Baseline   float64 `json:"baseline"`
	Requested  float64 `json:"requested"`
	Proposed   float64 `json:"proposed"`
	LineItems  int     `json:"lineItems"`
}

// DispositionTotal is the count and dollar total of filtered requests landing
// on one disposition.
type DispositionTotal struct {
	Disposition string  `json:"disposition"`
	Count       int     `json:"count"`
	Amount      float64 `json:"amount"`
}

// Report is the full aggregate view for one filter selection.
type Report struct {
	Filters      Filters            `json:"filters"`
	Options      Options            `json:"options"`
	Totals       Totals             `json:"totals"`
	Quartiles    []QuartileAmount   `json:"quartiles"`
	Departments  []DepartmentRollup `json:"departments"`
	Programs     []ProgramRollup    `json:"programs"`
	Dispositions []DispositionTotal `json:"dispositions"`
}

// Build computes the aggregate report for the snapshot under the given
// filters. Output ordering is deterministic: quartiles in band order,
// departments and programs sorted by name, dispositions in grid order.
func Build(snap *records.Snapshot, f Filters, cfg Config) Report {
	f = f.Normalize()
	reqs := FilteredRequests(snap, f)

	rep := Report{
		Filters: f,
		Options: FilterOptions(snap),
	}
	rep.Totals.Requests = len(reqs)

	quartiles := map[records.Quartile]float64{}
	type deptAgg struct {
		requests  map[string]struct{}
		programs  map[string]struct{}
		amount    float64
		quartiles map[records.Quartile]float64
	}
	depts := map[string]*deptAgg{}
	type progKey struct{ dept, program string }
	progs := map[progKey]*ProgramRollup{}
	dispCount := map[string]int{}
	dispAmount := map[string]float64{}

	for _, req := range reqs {
		requestID, _ := records.RequestID(req)
		items := snap.LineItemsFor(requestID)
		amounts := records.AmountsFor(req)
		rep.Totals.Ongoing += amounts.Ongoing
		rep.Totals.OneTime += amounts.OneTime

		share := amounts.Total / float64(len(items))

		for _, item := range items {
			if q := records.QuartileOf(item); q.Valid() {
				quartiles[q] += share
			}

			dept, ok := records.Resolve(item, records.RoleDepartment)
			if ok {
				agg := depts[dept]
				if agg == nil {
					agg = &deptAgg{
						requests:  map[string]struct{}{},
						programs:  map[string]struct{}{},
						quartiles: map[records.Quartile]float64{},
					}
					depts[dept] = agg
				}
				if _, seen := agg.requests[requestID]; !seen {
					agg.requests[requestID] = struct{}{}
					agg.amount += amounts.Total
				}
				if program, ok := records.Resolve(item, records.RoleProgram); ok {
					agg.programs[program] = struct{}{}
				}
				if q := records.QuartileOf(item); q.Valid() {
					agg.quartiles[q] += share
				}
			}

			progDept := dept
			if progDept == "" {
				progDept = "Unknown Department"
			}
			program, ok := records.Resolve(item, records.RoleProgram)
			if !ok {
				program = "Unknown Program"
			}
			key := progKey{progDept, program}
			pr := progs[key]
			if pr == nil {
				quartile := "N/A"
				if q := records.QuartileOf(item); q.Valid() {
					quartile = string(q)
				}
				pr = &ProgramRollup{
					Department: progDept,
					Program:    program,
					Quartile:   quartile,
				}
				progs[key] = pr
			}
			pr.Requested += share
			pr.LineItems++
			if pr.Baseline == 0 {
				pr.Baseline = amounts.Total * cfg.multiplier()
			}
			pr.Proposed = pr.Baseline + pr.Requested
		}

		res := analysis.Analyze(req, snap)
		dispCount[res.Disposition]++
		dispAmount[res.Disposition] += amounts.Total
	}

	rep.Totals.Total = rep.Totals.Ongoing + rep.Totals.OneTime
	rep.Quartiles = quartileSlice(quartiles)

	for dept, agg := range depts {
		rep.Departments = append(rep.Departments, DepartmentRollup{
			Department: dept,
			Requests:   len(agg.requests),
			Programs:   len(agg.programs),
			Amount:     agg.amount,
			Quartiles:  quartileSlice(agg.quartiles),
		})
	}
	sort.Slice(rep.Departments, func(i, j int) bool {
		return rep.Departments[i].Department < rep.Departments[j].Department
	})

	for _, pr := range progs {
		rep.Programs = append(rep.Programs, *pr)
	}
	sort.Slice(rep.Programs, func(i, j int) bool {
		a, b := rep.Programs[i], rep.Programs[j]
		if a.Department != b.Department {
			return a.Department < b.Department
		}
		return a.Program < b.Program
	})

	for _, d := range []string{
		scoring.DispositionApprove,
		scoring.DispositionModify,
		scoring.DispositionDefer,
		scoring.DispositionReject,
	} {
		rep.Dispositions = append(rep.Dispositions, DispositionTotal{
			Disposition: d,
			Count:       dispCount[d],
			Amount:      dispAmount[d],
		})
	}

	return rep
}

func quartileSlice(amounts map[records.Quartile]float64) []QuartileAmount {
	out := make([]QuartileAmount, 0, len(records.Quartiles))
	for _, q := range records.Quartiles {
		out = append(out, QuartileAmount{Quartile: q, Amount: amounts[q]})
	}
	return out
}
