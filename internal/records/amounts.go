package records

import "strings"

// Amounts holds the dollar totals for one record, split by recurrence.
type Amounts struct {
	Ongoing float64 `json:"ongoing"`
	OneTime float64 `json:"onetime"`
	Total   float64 `json:"total"`
}

// Add accumulates another amounts value.
func (a *Amounts) Add(other Amounts) {
	a.Ongoing += other.Ongoing
	a.OneTime += other.OneTime
	a.Total += other.Total
}

// AmountsFor scans every column of the record and sums values whose label
// marks them ongoing or one-time. A record with distinctly named columns for
// each contributes to both. Non-numeric cells contribute 0. Cells are assumed
// pre-stripped of currency formatting; this stage does no locale parsing.
func AmountsFor(rec Record) Amounts {
	var out Amounts
	for _, f := range rec.Fields() {
		key := strings.ToLower(f.Key)
		value := Float(f.Value)
		if strings.Contains(key, "ongoing") {
			out.Ongoing += value
		}
		if strings.Contains(key, "onetime") || strings.Contains(key, "one-time") {
			out.OneTime += value
		}
	}
	out.Total = out.Ongoing + out.OneTime
	return out
}
