package records

import "testing"

func TestLineItemsForJoinsBothSheets(t *testing.T) {
	snap := &Snapshot{
		Personnel: []Record{
			rec([2]string{"Request ID", "R1"}, [2]string{"Position", "Analyst"}),
			rec([2]string{"Request ID", "R2"}, [2]string{"Position", "Clerk"}),
		},
		NonPersonnel: []Record{
			rec([2]string{"Request ID", "R1"}, [2]string{"Account", "Software"}),
		},
	}
	items := snap.LineItemsFor("R1")
	if len(items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(items))
	}
}

func TestLineItemsForEmptyID(t *testing.T) {
	snap := &Snapshot{
		Personnel: []Record{rec([2]string{"Request ID", "R1"})},
	}
	if items := snap.LineItemsFor(""); items != nil {
		t.Fatalf("expected no items for empty id, got %d", len(items))
	}
}

func TestQAForMatchesAnyCell(t *testing.T) {
	snap := &Snapshot{
		RequestQA: []Record{
			rec([2]string{"Question", "Why?"}, [2]string{"Col_3", "R7"}),
			rec([2]string{"Request ID", "R8"}, [2]string{"Answer", "n/a"}),
		},
	}
	if got := snap.QAFor("R7"); len(got) != 1 {
		t.Fatalf("expected linkage through any cell value, got %d records", len(got))
	}
	if got := snap.QAFor("R9"); len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
}

func TestBestQuartileFirstFound(t *testing.T) {
	items := []Record{
		rec([2]string{"Quartile", ""}),
		rec([2]string{"Quartile", "Less Aligned"}),
		rec([2]string{"Quartile", "Most Aligned"}),
	}
	if got := BestQuartile(items); got != QuartileLessAligned {
		t.Fatalf("expected first non-empty quartile in order, got %q", got)
	}
}

func TestBestQuartileNone(t *testing.T) {
	if got := BestQuartile(nil); got != QuartileNone {
		t.Fatalf("expected none, got %q", got)
	}
}

func TestParseQuartileLabelsAndCodes(t *testing.T) {
	cases := map[string]Quartile{
		"Most Aligned":  QuartileMostAligned,
		"more aligned":  QuartileMoreAligned,
		"Q3":            QuartileLessAligned,
		"q4":            QuartileLeastAligned,
		"Somewhat":      QuartileNone,
		"":              QuartileNone,
	}
	for raw, want := range cases {
		if got := ParseQuartile(raw); got != want {
			t.Fatalf("ParseQuartile(%q) = %q, want %q", raw, got, want)
		}
	}
}
