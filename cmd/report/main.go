package main

// Build a decision-support report for a workbook without the HTTP layer:
//   go run ./cmd/report -file budget.xlsx

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"budget-backend/internal/ingest"
	"budget-backend/internal/reporting"
)

func main() {
	var (
		file       = flag.String("file", "", "path to the budgeting workbook (.xlsx)")
		fund       = flag.String("fund", reporting.FilterAll, "fund filter")
		department = flag.String("department", reporting.FilterAll, "department filter")
		division   = flag.String("division", reporting.FilterAll, "division filter")
		program    = flag.String("program", reporting.FilterAll, "program filter")
		reqType    = flag.String("request-type", reporting.FilterAll, "request type filter")
		status     = flag.String("status", reporting.FilterAll, "status filter")
		multiplier = flag.Float64("baseline-multiplier", reporting.DefaultBaselineMultiplier, "existing-budget estimate multiplier")
	)
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	snap, err := ingest.LoadFile(*file)
	if err != nil {
		log.Fatalf("load workbook: %v", err)
	}

	filters := reporting.Filters{
		Fund:        *fund,
		Department:  *department,
		Division:    *division,
		Program:     *program,
		RequestType: *reqType,
		Status:      *status,
	}
	rep := reporting.Build(snap, filters, reporting.Config{BaselineMultiplier: *multiplier})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		log.Fatalf("encode report: %v", err)
	}
}
