package resume

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"

	"github.com/artem13815/careerlens/pkg/career"
)

// Normalize validates an upload, extracts its text (or image payload) and
// bounds it. On error nothing about the caller's current input should change.
func Normalize(ctx context.Context, u Upload) (Document, error) {
	kind, mimeType, err := classify(u)
	if err != nil {
		return Document{}, err
	}
	if err := checkSize(kind, u); err != nil {
		return Document{}, err
	}
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}

	switch kind {
	case KindImage:
		return imageDocument(mimeType, u.Data), nil
	case KindPDF:
		text, err := extractTextFromPDF(u.Data)
		if err != nil {
			return Document{}, err
		}
		return textDocument(KindPDF, text), nil
	default:
		text, err := readPlainText(u.Data)
		if err != nil {
			return Document{}, err
		}
		return textDocument(KindText, text), nil
	}
}

// ShouldAutofill reports whether metadata extraction should follow the upload.
func ShouldAutofill(d Document, fromProfileLink bool) bool {
	if d.Kind == KindImage || d.Text == "" {
		return false
	}
	return fromProfileLink || utf8.RuneCountInString(d.Text) > AutofillMinChars
}

func textDocument(kind Kind, raw string) Document {
	text, truncated := Truncate(raw)
	return Document{Kind: kind, Text: text, Truncated: truncated}
}

func imageDocument(mimeType string, data []byte) Document {
	dataURL := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
	_, payload, _ := strings.Cut(dataURL, ",")
	return Document{
		Kind:    KindImage,
		Image:   &career.Image{Data: payload, MIMEType: mimeType},
		Preview: dataURL,
	}
}

func classify(u Upload) (Kind, string, error) {
	ext := strings.ToLower(filepath.Ext(u.Filename))
	if !slices.Contains(AcceptedExtensions, ext) {
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedFile, ext)
	}
	mimeType := baseMIME(u.ContentType)
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = baseMIME(mimetype.Detect(u.Data).String())
	}
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return KindImage, mimeType, nil
	case mimeType == "application/pdf":
		return KindPDF, mimeType, nil
	default:
		return KindText, mimeType, nil
	}
}

func baseMIME(ct string) string {
	ct = strings.TrimSpace(ct)
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.ToLower(ct)
	}
	return mt
}

func checkSize(kind Kind, u Upload) error {
	size := u.Size
	if size == 0 || int64(len(u.Data)) > size {
		size = int64(len(u.Data))
	}
	limit, limitMB := int64(MaxFileBytes), MaxFileMB
	if kind == KindImage {
		limit, limitMB = MaxImageBytes, MaxImageMB
	}
	if size > limit {
		return &SizeError{Size: size, LimitMB: limitMB}
	}
	return nil
}
