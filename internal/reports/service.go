// Package reports serves the decision-support views for a parsed workbook:
// the aggregate report, the filtered request list, and per-request analysis.
package reports

import (
	"context"
	"errors"

	"budget-backend/internal/analysis"
	"budget-backend/internal/records"
	"budget-backend/internal/reporting"
	"budget-backend/internal/shared/metrics"
	"budget-backend/internal/workbooks"
)

// ErrRequestNotFound means the workbook has no request with the given id.
var ErrRequestNotFound = errors.New("request not found")

// Service computes report views over workbook snapshots.
type Service struct {
	Workbooks *workbooks.Service
	Config    reporting.Config
}

// NewService constructs a Service.
func NewService(wb *workbooks.Service, cfg reporting.Config) *Service {
	return &Service{Workbooks: wb, Config: cfg}
}

// Report builds the full aggregate report for a workbook under the filters.
func (s *Service) Report(ctx context.Context, workbookID string, f reporting.Filters) (reporting.Report, error) {
	snap, err := s.Workbooks.Snapshot(ctx, workbookID)
	if err != nil {
		return reporting.Report{}, err
	}
	start := metrics.NowMillis()
	rep := reporting.Build(snap, f, s.Config)
	metrics.ObserveReportBuildMs(metrics.NowMillis() - start)
	metrics.IncReportGenerated()
	return rep, nil
}

// Requests analyzes every request that passes the filters.
func (s *Service) Requests(ctx context.Context, workbookID string, f reporting.Filters) ([]analysis.Result, error) {
	snap, err := s.Workbooks.Snapshot(ctx, workbookID)
	if err != nil {
		return nil, err
	}
	reqs := reporting.FilteredRequests(snap, f)
	out := make([]analysis.Result, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, analysis.Analyze(req, snap))
	}
	return out, nil
}

// Analysis evaluates a single request by id, regardless of filters.
func (s *Service) Analysis(ctx context.Context, workbookID, requestID string) (analysis.Result, error) {
	snap, err := s.Workbooks.Snapshot(ctx, workbookID)
	if err != nil {
		return analysis.Result{}, err
	}
	for _, req := range snap.RequestSummary {
		id, ok := records.RequestID(req)
		if ok && id == requestID {
			return analysis.Analyze(req, snap), nil
		}
	}
	return analysis.Result{}, ErrRequestNotFound
}

// Filters lists the selectable filter values for a workbook.
func (s *Service) Filters(ctx context.Context, workbookID string) (reporting.Options, error) {
	snap, err := s.Workbooks.Snapshot(ctx, workbookID)
	if err != nil {
		return reporting.Options{}, err
	}
	return reporting.FilterOptions(snap), nil
}
