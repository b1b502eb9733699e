package workbooks

import "context"

// WorkbooksRepo defines persistence operations for workbook metadata.
type WorkbooksRepo interface {
	Create(ctx context.Context, wb Workbook) error
	GetByID(ctx context.Context, id string) (Workbook, error)
	List(ctx context.Context, limit, offset int) ([]Workbook, error)
}
