package pdfvalidation

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFLimits defines the validation limits for PDF uploads
type PDFLimits struct {
	MaxFileSizeMB    int    // Maximum file size in MB
	MaxPages         int    // Maximum number of pages
	DocumentTypeName string // For error messages
}

// ResumeLimits bounds the resume attached to the profile.
var ResumeLimits = PDFLimits{
	MaxFileSizeMB:    10,
	MaxPages:         20,
	DocumentTypeName: "resume",
}

// ValidationResult contains the result of PDF validation
type ValidationResult struct {
	Valid     bool
	PageCount int
	FileSize  int64
	Error     string
	Content   []byte // sanitized bytes, set when Valid
}

// ValidatePDFFile reads a multipart upload and validates it against limits.
// A non-nil error means the upload could not be read at all; validation
// failures are reported through ValidationResult.Error.
func ValidatePDFFile(file *multipart.FileHeader, limits PDFLimits) (*ValidationResult, error) {
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return &ValidationResult{FileSize: file.Size, Error: "Only PDF files are supported"}, nil
	}
	if file.Size > maxBytes(limits) {
		return &ValidationResult{FileSize: file.Size, Error: sizeError(limits)}, nil
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ValidatePDFBytes(content, limits), nil
}

// ValidatePDFBytes validates PDF content bytes against the given limits
func ValidatePDFBytes(content []byte, limits PDFLimits) *ValidationResult {
	result := &ValidationResult{
		FileSize: int64(len(content)),
	}

	if result.FileSize > maxBytes(limits) {
		result.Error = sizeError(limits)
		return result
	}

	if !bytes.HasPrefix(content, []byte("%PDF-")) {
		result.Error = "Invalid PDF file: missing PDF header"
		return result
	}

	content = sanitizePDF(content)
	pageCount, err := pageCount(content)
	if err != nil {
		result.Error = fmt.Sprintf("Failed to read PDF: %v", err)
		return result
	}
	result.PageCount = pageCount

	switch {
	case pageCount == 0:
		result.Error = "PDF has no pages"
	case pageCount > limits.MaxPages:
		result.Error = fmt.Sprintf("PDF has %d pages, which exceeds the maximum of %d pages for %s",
			pageCount, limits.MaxPages, limits.DocumentTypeName)
	default:
		result.Valid = true
		result.Content = content
	}
	return result
}

func maxBytes(limits PDFLimits) int64 {
	return int64(limits.MaxFileSizeMB) * 1024 * 1024
}

func sizeError(limits PDFLimits) string {
	return fmt.Sprintf("File size exceeds maximum allowed size of %dMB", limits.MaxFileSizeMB)
}

// sanitizePDF drops trailing bytes after the last %%EOF marker, which some
// exporters append and the parser rejects.
func sanitizePDF(content []byte) []byte {
	lastEOF := bytes.LastIndex(content, []byte("%%EOF"))
	if lastEOF == -1 {
		return content
	}

	end := lastEOF + len("%%EOF")
	for end < len(content) && (content[end] == '\n' || content[end] == '\r') {
		end++
	}
	return content[:end]
}

func pageCount(content []byte) (n int, err error) {
	// the parser panics on some malformed xref tables
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return 0, fmt.Errorf("failed to parse PDF: %w", err)
	}
	return reader.NumPage(), nil
}
