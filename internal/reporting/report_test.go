package reporting

import (
	"math"
	"testing"

	"budget-backend/internal/records"
)

func rec(pairs ...[2]string) records.Record {
	var r records.Record
	for _, p := range pairs {
		r.Set(p[0], p[1])
	}
	return r
}

func twoDeptSnapshot() *records.Snapshot {
	return &records.Snapshot{
		RequestSummary: []records.Record{
			rec(
				[2]string{"Request ID", "R1"},
				[2]string{"Request Type", "New"},
				[2]string{"Status", "Submitted"},
				[2]string{"Ongoing Cost", "1000"},
				[2]string{"Onetime Cost", "3000"},
			),
			rec(
				[2]string{"Request ID", "R2"},
				[2]string{"Request Type", "Expansion"},
				[2]string{"Status", "Submitted"},
				[2]string{"Ongoing Cost", "2000"},
			),
			// No line items: must never appear in any output.
			rec(
				[2]string{"Request ID", "R3"},
				[2]string{"Ongoing Cost", "9999"},
			),
		},
		Personnel: []records.Record{
			rec(
				[2]string{"Request ID", "R1"},
				[2]string{"Department", "Fire"},
				[2]string{"Program", "Emergency Response"},
				[2]string{"Fund", "General"},
				[2]string{"Quartile", "Most Aligned"},
			),
			rec(
				[2]string{"Request ID", "R2"},
				[2]string{"Department", "Parks"},
				[2]string{"Program", "Recreation"},
				[2]string{"Fund", "General"},
				[2]string{"Quartile", "Less Aligned"},
			),
		},
		NonPersonnel: []records.Record{
			rec(
				[2]string{"Request ID", "R1"},
				[2]string{"Department", "Fire"},
				[2]string{"Program", "Emergency Response"},
				[2]string{"Fund", "Grants"},
				[2]string{"Quartile", "Least Aligned"},
			),
		},
	}
}

func TestFilteredRequestsExcludesOrphans(t *testing.T) {
	snap := twoDeptSnapshot()
	reqs := FilteredRequests(snap, DefaultFilters())
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(reqs))
	}
	for _, req := range reqs {
		id, _ := records.RequestID(req)
		if id == "R3" {
			t.Fatalf("request without line items must be excluded")
		}
	}
}

func TestFilteredRequestsByDimension(t *testing.T) {
	snap := twoDeptSnapshot()

	f := DefaultFilters()
	f.Department = "Fire"
	if got := FilteredRequests(snap, f); len(got) != 1 {
		t.Fatalf("department filter: expected 1, got %d", len(got))
	}

	f = DefaultFilters()
	f.Fund = "Grants"
	reqs := FilteredRequests(snap, f)
	if len(reqs) != 1 {
		t.Fatalf("fund filter: expected 1, got %d", len(reqs))
	}
	if id, _ := records.RequestID(reqs[0]); id != "R1" {
		t.Fatalf("fund filter matched wrong request %s", id)
	}

	f = DefaultFilters()
	f.RequestType = "Expansion"
	if got := FilteredRequests(snap, f); len(got) != 1 {
		t.Fatalf("request type filter: expected 1, got %d", len(got))
	}

	f = DefaultFilters()
	f.Status = "Returned"
	if got := FilteredRequests(snap, f); len(got) != 0 {
		t.Fatalf("status filter: expected 0, got %d", len(got))
	}
}

func TestFilteredRequestsEmptyMeansAll(t *testing.T) {
	snap := twoDeptSnapshot()
	if got := FilteredRequests(snap, Filters{}); len(got) != 2 {
		t.Fatalf("empty filters should behave like all, got %d", len(got))
	}
}

func TestBuildTotals(t *testing.T) {
	rep := Build(twoDeptSnapshot(), DefaultFilters(), Config{})
	if rep.Totals.Requests != 2 {
		t.Fatalf("requests = %d, want 2", rep.Totals.Requests)
	}
	if rep.Totals.Ongoing != 3000 || rep.Totals.OneTime != 3000 {
		t.Fatalf("ongoing/onetime = %v/%v, want 3000/3000", rep.Totals.Ongoing, rep.Totals.OneTime)
	}
	if rep.Totals.Total != 6000 {
		t.Fatalf("total = %v, want 6000", rep.Totals.Total)
	}
}

func TestBuildQuartileEvenSplit(t *testing.T) {
	// R1 has $4,000 across two line items with different quartiles; the
	// split is even, not cost-weighted.
	rep := Build(twoDeptSnapshot(), DefaultFilters(), Config{})

	amounts := map[records.Quartile]float64{}
	for _, qa := range rep.Quartiles {
		amounts[qa.Quartile] = qa.Amount
	}
	if amounts[records.QuartileMostAligned] != 2000 {
		t.Fatalf("most aligned = %v, want 2000", amounts[records.QuartileMostAligned])
	}
	if amounts[records.QuartileLeastAligned] != 2000 {
		t.Fatalf("least aligned = %v, want 2000", amounts[records.QuartileLeastAligned])
	}
	if amounts[records.QuartileLessAligned] != 2000 {
		t.Fatalf("less aligned = %v, want 2000 (R2)", amounts[records.QuartileLessAligned])
	}

	var sum float64
	for _, qa := range rep.Quartiles {
		sum += qa.Amount
	}
	if math.Abs(sum-rep.Totals.Total) > 1e-9 {
		t.Fatalf("quartile sum %v != total %v", sum, rep.Totals.Total)
	}
}

func TestBuildDepartmentRollupCountsRequestOnce(t *testing.T) {
	// R1 contributes two Fire line items but its $4,000 total counts once.
	rep := Build(twoDeptSnapshot(), DefaultFilters(), Config{})
	if len(rep.Departments) != 2 {
		t.Fatalf("expected 2 departments, got %d", len(rep.Departments))
	}
	fire := rep.Departments[0]
	if fire.Department != "Fire" {
		t.Fatalf("departments not sorted, first = %s", fire.Department)
	}
	if fire.Amount != 4000 {
		t.Fatalf("fire amount = %v, want 4000", fire.Amount)
	}
	if fire.Requests != 1 || fire.Programs != 1 {
		t.Fatalf("fire requests/programs = %d/%d, want 1/1", fire.Requests, fire.Programs)
	}

	var deptSum float64
	for _, d := range rep.Departments {
		deptSum += d.Amount
	}
	if deptSum != rep.Totals.Total {
		t.Fatalf("department sum %v != total %v", deptSum, rep.Totals.Total)
	}
}

func TestBuildProgramRollupBaseline(t *testing.T) {
	rep := Build(twoDeptSnapshot(), DefaultFilters(), Config{})
	var er *ProgramRollup
	for i := range rep.Programs {
		if rep.Programs[i].Program == "Emergency Response" {
			er = &rep.Programs[i]
		}
	}
	if er == nil {
		t.Fatalf("missing program rollup")
	}
	if er.Requested != 4000 {
		t.Fatalf("requested = %v, want 4000", er.Requested)
	}
	if er.Baseline != 32000 {
		t.Fatalf("baseline = %v, want 8x request total", er.Baseline)
	}
	if er.Proposed != er.Baseline+er.Requested {
		t.Fatalf("proposed = %v, want baseline+requested", er.Proposed)
	}
	if er.LineItems != 2 {
		t.Fatalf("line items = %d, want 2", er.LineItems)
	}
}

func TestBuildBaselineMultiplierConfigurable(t *testing.T) {
	rep := Build(twoDeptSnapshot(), DefaultFilters(), Config{BaselineMultiplier: 2})
	for _, pr := range rep.Programs {
		if pr.Program == "Recreation" {
			if pr.Baseline != 4000 {
				t.Fatalf("baseline = %v, want 2x request total", pr.Baseline)
			}
			return
		}
	}
	t.Fatalf("missing Recreation rollup")
}

func TestBuildDispositionSummaryHasAllFour(t *testing.T) {
	rep := Build(twoDeptSnapshot(), DefaultFilters(), Config{})
	if len(rep.Dispositions) != 4 {
		t.Fatalf("expected 4 disposition buckets, got %d", len(rep.Dispositions))
	}
	var count int
	var amount float64
	for _, d := range rep.Dispositions {
		count += d.Count
		amount += d.Amount
	}
	if count != rep.Totals.Requests {
		t.Fatalf("disposition counts %d != requests %d", count, rep.Totals.Requests)
	}
	if amount != rep.Totals.Total {
		t.Fatalf("disposition amounts %v != total %v", amount, rep.Totals.Total)
	}
}

func TestFilterOptions(t *testing.T) {
	opts := FilterOptions(twoDeptSnapshot())
	if len(opts.Department) != 2 {
		t.Fatalf("departments = %v", opts.Department)
	}
	if len(opts.Fund) != 2 {
		t.Fatalf("funds = %v", opts.Fund)
	}
	if len(opts.RequestType) != 2 {
		t.Fatalf("request types = %v", opts.RequestType)
	}
	if len(opts.Status) != 1 || opts.Status[0] != "Submitted" {
		t.Fatalf("status = %v", opts.Status)
	}
}
