package workbooks

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"budget-backend/internal/ingest"
	"budget-backend/internal/records"
	"budget-backend/internal/shared/metrics"
	"budget-backend/internal/shared/storage/object"
)

// storageNamespace groups uploaded workbooks inside the object store.
const storageNamespace = "workbooks"

// Service contains business logic for workbooks: persisting uploads and
// serving parsed snapshots. Snapshots are immutable once built; the cache
// only ever stores a fully parsed workbook.
type Service struct {
	Store object.ObjectStore
	Repo  WorkbooksRepo

	mu    sync.RWMutex
	snaps map[string]*records.Snapshot
}

// NewService constructs a Service.
func NewService(store object.ObjectStore, repo WorkbooksRepo) *Service {
	return &Service{
		Store: store,
		Repo:  repo,
		snaps: make(map[string]*records.Snapshot),
	}
}

// Upload parses the workbook, saves the raw bytes to object storage and
// records the metadata. A workbook that cannot be parsed is rejected before
// anything is stored.
func (s *Service) Upload(ctx context.Context, fileName string, r io.Reader) (Workbook, error) {
	if fileName == "" {
		return Workbook{}, fmt.Errorf("%w: file name required", ErrInvalidInput)
	}
	if !strings.HasSuffix(strings.ToLower(fileName), ".xlsx") {
		return Workbook{}, fmt.Errorf("%w: only .xlsx workbooks are supported", ErrInvalidInput)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return Workbook{}, fmt.Errorf("read upload: %w", err)
	}

	snap, err := ingest.Load(data)
	if err != nil {
		metrics.IncWorkbookIngestFailed()
		return Workbook{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, storageNamespace, fileName, bytes.NewReader(data))
	if err != nil {
		return Workbook{}, fmt.Errorf("store workbook: %w", err)
	}

	wb := Workbook{
		ID:           uuid.NewString(),
		FileName:     fileName,
		MimeType:     mimeType,
		SizeBytes:    size,
		StorageKey:   storageKey,
		SheetCount:   sheetCount(snap),
		RequestCount: len(snap.RequestSummary),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, wb); err != nil {
		return Workbook{}, err
	}

	s.mu.Lock()
	s.snaps[wb.ID] = snap
	s.mu.Unlock()

	metrics.IncWorkbookIngested()
	return wb, nil
}

// Get returns workbook metadata by id.
func (s *Service) Get(ctx context.Context, id string) (Workbook, error) {
	if id == "" {
		return Workbook{}, fmt.Errorf("%w: workbook id required", ErrInvalidInput)
	}
	return s.Repo.GetByID(ctx, id)
}

// List returns stored workbooks, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]Workbook, error) {
	return s.Repo.List(ctx, limit, offset)
}

// Snapshot returns the parsed record snapshot for a workbook, re-reading the
// stored bytes when the in-memory cache has no entry (fresh process with a
// persistent repo).
func (s *Service) Snapshot(ctx context.Context, id string) (*records.Snapshot, error) {
	s.mu.RLock()
	snap, ok := s.snaps[id]
	s.mu.RUnlock()
	if ok {
		return snap, nil
	}

	wb, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wb.StorageKey == "" {
		return nil, ErrNotFound
	}

	body, err := s.Store.Open(ctx, wb.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("open workbook key=%s: %w", wb.StorageKey, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read workbook key=%s: %w", wb.StorageKey, err)
	}

	snap, err = ingest.Load(data)
	if err != nil {
		metrics.IncWorkbookIngestFailed()
		return nil, fmt.Errorf("parse workbook key=%s: %w", wb.StorageKey, err)
	}

	s.mu.Lock()
	s.snaps[id] = snap
	s.mu.Unlock()
	return snap, nil
}

func sheetCount(snap *records.Snapshot) int {
	n := 0
	for _, sheet := range [][]records.Record{
		snap.RequestSummary,
		snap.Personnel,
		snap.NonPersonnel,
		snap.RequestQA,
		snap.BudgetSummary,
	} {
		if len(sheet) > 0 {
			n++
		}
	}
	return n
}
