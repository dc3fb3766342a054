package document

import "time"

// Document is file metadata only; the bytes live behind the storage
// backend and are referenced by URL.
type Document struct {
	ID          string
	EmployeeUID string
	Name        string
	Category    string
	URL         string
	SizeBytes   int64
	UploadedBy  string
	CreatedAt   time.Time
}
