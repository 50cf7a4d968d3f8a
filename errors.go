package blueprint

import "errors"

// Sentinel errors for build operations.
var (
	ErrInvalidInput     = errors.New("invalid build input")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// PDF export errors. The builder reports them in Result.PDFErr.
	ErrBrowserNotFound = errors.New("no Chrome or Chromium browser found")
	ErrBrowserConnect  = errors.New("failed to connect to browser")
	ErrPageCreate      = errors.New("failed to create browser page")
	ErrPageLoad        = errors.New("failed to load page")
	ErrPDFGeneration   = errors.New("PDF generation failed")
)
