package reporting

import (
	"sort"

	"budget-backend/internal/records"
)

// FilterAll is the sentinel meaning "no restriction" for a dimension.
const FilterAll = "all"

// Filters is the six-dimension selection applied to the request set. Fund,
// department, division and program match against a request's line items;
// request type and status match against the request record itself.
type Filters struct {
	Fund        string `json:"fund" form:"fund"`
	Department  string `json:"department" form:"department"`
	Division    string `json:"division" form:"division"`
	Program     string `json:"program" form:"program"`
	RequestType string `json:"requestType" form:"requestType"`
	Status      string `json:"status" form:"status"`
}

// DefaultFilters selects everything.
func DefaultFilters() Filters {
	return Filters{
		Fund:        FilterAll,
		Department:  FilterAll,
		Division:    FilterAll,
		Program:     FilterAll,
		RequestType: FilterAll,
		Status:      FilterAll,
	}
}

// Normalize maps empty dimensions to the sentinel so that omitted query
// params behave like "all".
func (f Filters) Normalize() Filters {
	norm := func(v string) string {
		if v == "" {
			return FilterAll
		}
		return v
	}
	f.Fund = norm(f.Fund)
	f.Department = norm(f.Department)
	f.Division = norm(f.Division)
	f.Program = norm(f.Program)
	f.RequestType = norm(f.RequestType)
	f.Status = norm(f.Status)
	return f
}

// FilteredRequests returns the request-summary records that pass the filter
// selection. A request whose id cannot be resolved, or that has no line
// items, is always excluded regardless of filter settings.
func FilteredRequests(snap *records.Snapshot, f Filters) []records.Record {
	f = f.Normalize()
	var out []records.Record
	for _, req := range snap.RequestSummary {
		requestID, ok := records.RequestID(req)
		if !ok {
			continue
		}
		items := snap.LineItemsFor(requestID)
		if len(items) == 0 {
			continue
		}
		if !lineItemsMatch(items, records.RoleFund, f.Fund) {
			continue
		}
		if !lineItemsMatch(items, records.RoleDepartment, f.Department) {
			continue
		}
		if !lineItemsMatch(items, records.RoleDivision, f.Division) {
			continue
		}
		if !lineItemsMatch(items, records.RoleProgram, f.Program) {
			continue
		}
		if !requestMatches(req, records.RoleRequestType, f.RequestType) {
			continue
		}
		if !requestMatches(req, records.RoleStatus, f.Status) {
			continue
		}
		out = append(out, req)
	}
	return out
}

func lineItemsMatch(items []records.Record, role records.Role, want string) bool {
	if want == FilterAll {
		return true
	}
	for _, item := range items {
		if records.HasValue(item, role, want) {
			return true
		}
	}
	return false
}

func requestMatches(req records.Record, role records.Role, want string) bool {
	if want == FilterAll {
		return true
	}
	return records.HasValue(req, role, want)
}

// Options lists the distinct values available per filter dimension, for
// populating filter controls. Line-item dimensions come from the personnel
// and non-personnel sheets; request type comes from the request summary;
// status is collected from both.
type Options struct {
	Fund        []string `json:"fund"`
	Department  []string `json:"department"`
	Division    []string `json:"division"`
	Program     []string `json:"program"`
	RequestType []string `json:"requestType"`
	Status      []string `json:"status"`
}

// FilterOptions scans the snapshot for the selectable values of each
// dimension, sorted for stable output.
func FilterOptions(snap *records.Snapshot) Options {
	fund := map[string]struct{}{}
	dept := map[string]struct{}{}
	div := map[string]struct{}{}
	prog := map[string]struct{}{}
	reqType := map[string]struct{}{}
	status := map[string]struct{}{}

	collect := func(set map[string]struct{}, rec records.Record, role records.Role) {
		if v, ok := records.Resolve(rec, role); ok {
			set[v] = struct{}{}
		}
	}

	for _, sheet := range [][]records.Record{snap.Personnel, snap.NonPersonnel} {
		for _, item := range sheet {
			collect(fund, item, records.RoleFund)
			collect(dept, item, records.RoleDepartment)
			collect(div, item, records.RoleDivision)
			collect(prog, item, records.RoleProgram)
			collect(status, item, records.RoleStatus)
		}
	}
	for _, req := range snap.RequestSummary {
		collect(reqType, req, records.RoleRequestType)
		collect(status, req, records.RoleStatus)
	}

	return Options{
		Fund:        sortedKeys(fund),
		Department:  sortedKeys(dept),
		Division:    sortedKeys(div),
		Program:     sortedKeys(prog),
		RequestType: sortedKeys(reqType),
		Status:      sortedKeys(status),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
