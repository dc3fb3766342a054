package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrEmptyFile        = errors.New("uploaded file is empty")
	ErrFileTooLarge     = errors.New("uploaded file exceeds the size limit")
)
