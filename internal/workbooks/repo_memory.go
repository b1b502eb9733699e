package workbooks

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of WorkbooksRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Workbook
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Workbook)}
}

// Create stores a workbook record.
func (r *MemoryRepo) Create(ctx context.Context, wb Workbook) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[wb.ID] = wb
	return nil
}

// GetByID returns a workbook by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Workbook, error) {
	if err := ctx.Err(); err != nil {
		return Workbook{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	wb, ok := r.data[id]
	if !ok {
		return Workbook{}, ErrNotFound
	}
	return wb, nil
}

// List returns workbooks newest-first, honoring limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Workbook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	all := make([]Workbook, 0, len(r.data))
	for _, wb := range r.data {
		all = append(all, wb)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []Workbook{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

var _ WorkbooksRepo = (*MemoryRepo)(nil)
