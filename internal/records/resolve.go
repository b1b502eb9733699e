package records

import "strings"

// Role names a semantic field that must be located across heterogeneous
// column labels. Matching is case-insensitive substring search over the
// record's keys in column order; the first key whose value is non-empty wins.
// That first-match policy silently picks one column when several match, and
// downstream behavior depends on which one wins, so it stays as is.
type Role string

const (
	RoleRequestID   Role = "requestId"
	RoleDescription Role = "description"
	RoleDepartment  Role = "department"
	RoleProgram     Role = "program"
	RoleQuartile    Role = "quartile"
	RoleFund        Role = "fund"
	RoleDivision    Role = "division"
	RoleQuestion    Role = "question"
	RoleAnswer      Role = "answer"
	RoleRequestType Role = "requestType"
	RoleStatus      Role = "status"
)

type roleMatcher func(lowerKey string) bool

func anySubstring(subs ...string) roleMatcher {
	return func(lowerKey string) bool {
		for _, s := range subs {
			if strings.Contains(lowerKey, s) {
				return true
			}
		}
		return false
	}
}

// roleMatchers is the single lookup table for role resolution; scoring and
// reporting never do their own key matching.
var roleMatchers = map[Role]roleMatcher{
	RoleRequestID: func(k string) bool {
		return strings.Contains(k, "request") && strings.Contains(k, "id")
	},
	RoleDescription: anySubstring("description", "desc"),
	RoleDepartment:  anySubstring("department", "cost center"),
	RoleProgram:     anySubstring("program"),
	RoleQuartile:    anySubstring("quartile"),
	RoleFund:        anySubstring("fund"),
	RoleDivision:    anySubstring("division"),
	// A Q&A sheet can carry both a "Question" and a "Question Type" column;
	// the type column must never win the question role.
	RoleQuestion: func(k string) bool {
		return strings.Contains(k, "question") && !strings.Contains(k, "type")
	},
	RoleAnswer:      anySubstring("answer"),
	RoleRequestType: anySubstring("type"),
	RoleStatus:      anySubstring("status"),
}

// Resolve locates the value for a semantic role. It returns the string form
// of the first matching non-empty cell, or "" and false when nothing matches.
func Resolve(rec Record, role Role) (string, bool) {
	match, ok := roleMatchers[role]
	if !ok {
		return "", false
	}
	for _, f := range rec.Fields() {
		if !match(strings.ToLower(f.Key)) {
			continue
		}
		if v := Stringify(f.Value); v != "" {
			return v, true
		}
	}
	return "", false
}

// RequestID resolves the request identifier. If no "request"+"id" key holds a
// value it falls back to any key containing "id"; a request that still has no
// id cannot be joined to line items and is excluded downstream.
func RequestID(rec Record) (string, bool) {
	if id, ok := Resolve(rec, RoleRequestID); ok {
		return id, true
	}
	for _, f := range rec.Fields() {
		if !strings.Contains(strings.ToLower(f.Key), "id") {
			continue
		}
		if v := Stringify(f.Value); v != "" {
			return v, true
		}
	}
	return "", false
}

// QuartileOf resolves and normalizes a line item's alignment band.
func QuartileOf(rec Record) Quartile {
	raw, ok := Resolve(rec, RoleQuartile)
	if !ok {
		return QuartileNone
	}
	return ParseQuartile(raw)
}

// HasValue reports whether any key matching the role carries the exact value
// given. Unlike Resolve it checks every matching column, so a filter value can
// sit in a later column than the one Resolve would pick.
func HasValue(rec Record, role Role, want string) bool {
	match, ok := roleMatchers[role]
	if !ok {
		return false
	}
	for _, f := range rec.Fields() {
		if !match(strings.ToLower(f.Key)) {
			continue
		}
		if Stringify(f.Value) == want {
			return true
		}
	}
	return false
}

// FirstResolved returns the first non-empty value for the role across the
// given records, in encounter order. This is the "primary value" used for a
// request's department, program and quartile when line items disagree; no
// tie-break beyond first-found is applied.
func FirstResolved(recs []Record, role Role) (string, bool) {
	for _, rec := range recs {
		if v, ok := Resolve(rec, role); ok {
			return v, true
		}
	}
	return "", false
}
