package records

// Snapshot holds the normalized tables parsed from one workbook. It is
// immutable once built; every filter or report evaluation reads a fully
// constructed snapshot, never one mid-parse.
type Snapshot struct {
	RequestSummary []Record
	Personnel      []Record
	NonPersonnel   []Record
	RequestQA      []Record
	BudgetSummary  []Record
}

// LineItemsFor returns the personnel and non-personnel records whose request
// id resolves to the given id (string-normalized, case-sensitive). An empty
// id matches nothing.
func (s *Snapshot) LineItemsFor(requestID string) []Record {
	if requestID == "" {
		return nil
	}
	var out []Record
	for _, tbl := range [][]Record{s.Personnel, s.NonPersonnel} {
		for _, item := range tbl {
			id, ok := RequestID(item)
			if ok && id == requestID {
				out = append(out, item)
			}
		}
	}
	return out
}

// QAFor returns the Q&A records linked to the request. A Q&A row belongs to a
// request when any of its cell values equals the request id; the sheets in
// the wild carry the id under inconsistent labels, so value matching is the
// reliable join.
func (s *Snapshot) QAFor(requestID string) []Record {
	if requestID == "" {
		return nil
	}
	var out []Record
	for _, qa := range s.RequestQA {
		for _, f := range qa.Fields() {
			if Stringify(f.Value) == requestID {
				out = append(out, qa)
				break
			}
		}
	}
	return out
}

// BestQuartile returns the first non-empty alignment band across the line
// items, in encounter order.
func BestQuartile(lineItems []Record) Quartile {
	for _, item := range lineItems {
		if q := QuartileOf(item); q.Valid() {
			return q
		}
	}
	return QuartileNone
}
