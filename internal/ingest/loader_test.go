package ingest

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"budget-backend/internal/records"
)

// buildWorkbook assembles an in-memory xlsx with rows per sheet name.
func buildWorkbook(t *testing.T, sheets map[string][][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for name, rows := range sheets {
		if _, err := f.NewSheet(name); err != nil {
			t.Fatalf("new sheet %s: %v", name, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestLoadParsesSheets(t *testing.T) {
	data := buildWorkbook(t, map[string][][]any{
		SheetRequestSummary: {
			{"FY2027 Budget Requests"},
			{},
			{"Request ID", "Description", "Status", "Ongoing Cost"},
			{"R1", "New inspector position", "Submitted", "85000"},
			{"R2", "Radio replacement", "Submitted", "0"},
		},
		SheetPersonnel: {
			{"Request ID", "Department", "Program", "Quartile"},
			{"R1", "Fire", "Prevention", "Most Aligned"},
		},
		SheetRequestQA: {
			{"Question", "Answer", "", "Request"},
			{"Is this mandated?", "Yes, state statute", "", "R1"},
		},
	})

	snap, err := Load(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(snap.RequestSummary) != 2 {
		t.Fatalf("request summary rows = %d, want 2", len(snap.RequestSummary))
	}
	first := snap.RequestSummary[0]
	if got, _ := first.Get("Request ID"); got != "R1" {
		t.Fatalf("request id = %q", got)
	}
	if got, _ := first.Get("Ongoing Cost"); got != "85000" {
		t.Fatalf("ongoing cost = %q", got)
	}

	if len(snap.Personnel) != 1 {
		t.Fatalf("personnel rows = %d, want 1", len(snap.Personnel))
	}
	if q := records.QuartileOf(snap.Personnel[0]); q != records.QuartileMostAligned {
		t.Fatalf("quartile = %q", q)
	}
}

func TestLoadHeaderDetectionSkipsPreamble(t *testing.T) {
	// The title row contains none of the sheet's keywords, so the header
	// scan must land on row three.
	data := buildWorkbook(t, map[string][][]any{
		SheetPersonnel: {
			{"Exported 2026-08-01"},
			{},
			{"Request ID", "Department"},
			{"R9", "Parks"},
		},
	})

	snap, err := Load(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Personnel) != 1 {
		t.Fatalf("personnel rows = %d, want 1", len(snap.Personnel))
	}
	if got, _ := snap.Personnel[0].Get("Department"); got != "Parks" {
		t.Fatalf("department = %q", got)
	}
}

func TestLoadUnlabeledColumnsGetSyntheticKeys(t *testing.T) {
	data := buildWorkbook(t, map[string][][]any{
		SheetRequestQA: {
			{"Question", "Answer"},
			{"Any grants?", "A $50,000 state grant", "extra note", "R1"},
		},
	})

	snap, err := Load(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.RequestQA) != 1 {
		t.Fatalf("qa rows = %d, want 1", len(snap.RequestQA))
	}
	row := snap.RequestQA[0]
	if got, _ := row.Get("Col_2"); got != "extra note" {
		t.Fatalf("Col_2 = %q", got)
	}
	if got, _ := row.Get("Col_3"); got != "R1" {
		t.Fatalf("Col_3 = %q", got)
	}
}

func TestLoadSkipsEmptyRows(t *testing.T) {
	data := buildWorkbook(t, map[string][][]any{
		SheetPersonnel: {
			{"Request ID", "Department"},
			{"R1", "Fire"},
			{"", ""},
			{"R2", "Police"},
		},
	})

	snap, err := Load(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(snap.Personnel) != 2 {
		t.Fatalf("personnel rows = %d, want 2", len(snap.Personnel))
	}
}

func TestLoadMissingSheetIsEmpty(t *testing.T) {
	data := buildWorkbook(t, map[string][][]any{
		SheetRequestSummary: {
			{"Request ID", "Status"},
			{"R1", "Submitted"},
		},
	})

	snap, err := Load(data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.BudgetSummary != nil {
		t.Fatalf("budget summary should be empty, got %d rows", len(snap.BudgetSummary))
	}
	if snap.NonPersonnel != nil {
		t.Fatalf("nonpersonnel should be empty, got %d rows", len(snap.NonPersonnel))
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if _, err := Load([]byte("not a workbook")); err == nil {
		t.Fatalf("expected error for non-xlsx bytes")
	}
}
