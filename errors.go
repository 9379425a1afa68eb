package pdfgen

import "errors"

// Sentinel errors for library operations.
var (
	ErrUnknownTemplate = errors.New("unknown template")
	ErrEmptyRequest    = errors.New("no JSON data provided")
	ErrRender          = errors.New("PDF generation failed")

	// Config errors.
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)
