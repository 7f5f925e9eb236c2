package resume

import (
	"errors"
	"fmt"

	"github.com/artem13815/careerlens/pkg/career"
)

// Limits visible to clients.
const (
	MaxResumeChars = 15000
	MaxFileMB      = 2
	MaxFileBytes   = MaxFileMB * 1024 * 1024
	MaxImageMB     = 4
	MaxImageBytes  = MaxImageMB * 1024 * 1024
	// AutofillMinChars is the text length above which metadata autofill runs.
	AutofillMinChars = 50
)

// AcceptedExtensions lists the upload extensions the form allows.
var AcceptedExtensions = []string{".txt", ".pdf", ".jpg", ".jpeg", ".png", ".webp"}

var (
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file too large")
	ErrPDFExtraction   = errors.New("could not extract text from pdf")
	ErrTextRead        = errors.New("failed to read text file")
)

// SizeError reports a file over its type-specific cap.
type SizeError struct {
	Size    int64
	LimitMB int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("file too large: %d bytes, limit is %dMB", e.Size, e.LimitMB)
}

func (e *SizeError) Is(target error) bool { return target == ErrFileTooLarge }

// UserMessage turns an intake error into the text shown next to the form.
func UserMessage(err error) string {
	var se *SizeError
	switch {
	case errors.As(err, &se):
		return fmt.Sprintf("File is too large. Please upload a file smaller than %dMB.", se.LimitMB)
	case errors.Is(err, ErrPDFExtraction):
		return "Failed to extract text from the PDF. The file might be password protected or corrupted. Please try Copy & Paste."
	case errors.Is(err, ErrTextRead):
		return "Failed to read text file."
	case errors.Is(err, ErrUnsupportedFile):
		return "Unsupported file type. Please upload a .txt, .pdf, .jpg, .jpeg, .png or .webp file."
	default:
		return "Failed to read the uploaded file."
	}
}

// Kind is the upload classification.
type Kind string

const (
	KindText  Kind = "text"
	KindPDF   Kind = "pdf"
	KindImage Kind = "image"
)

// Upload is a raw file as received from the client. Size is the declared
// size; zero means len(Data).
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// Document is a normalized upload.
type Document struct {
	Kind      Kind
	Text      string
	Truncated bool
	Image     *career.Image
	// Preview is the data URL shown to the user for confirmation.
	Preview string
}

// ClearsImage reports whether accepting the document drops an attached image.
func (d Document) ClearsImage() bool { return d.Kind != KindImage }
