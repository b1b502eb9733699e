package workbooks

import "time"

// WorkbookResponse is the outward-facing representation of a workbook.
type WorkbookResponse struct {
	WorkbookID   string    `json:"workbookId"`
	FileName     string    `json:"fileName"`
	MimeType     string    `json:"mimeType"`
	SizeBytes    int64     `json:"sizeBytes"`
	SheetCount   int       `json:"sheetCount"`
	RequestCount int       `json:"requestCount"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

func toResponse(wb Workbook) WorkbookResponse {
	return WorkbookResponse{
		WorkbookID:   wb.ID,
		FileName:     wb.FileName,
		MimeType:     wb.MimeType,
		SizeBytes:    wb.SizeBytes,
		SheetCount:   wb.SheetCount,
		RequestCount: wb.RequestCount,
		UploadedAt:   wb.CreatedAt,
	}
}
