package report

import "errors"

var (
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)
