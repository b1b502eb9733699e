package workbooks

import "time"

// Workbook is the stored metadata for one uploaded budgeting workbook.
type Workbook struct {
	ID              string
	FileName        string
	MimeType        string
	SizeBytes       int64
	StorageProvider string
	StorageKey      string
	SheetCount      int
	RequestCount    int
	CreatedAt       time.Time
}
