package parser

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrEmptyPDF indicates a PDF that decoded but yielded no extractable text,
// typically an image-only scan.
var ErrEmptyPDF = fmt.Errorf("no text could be extracted from PDF")

// PDFText extracts the full text of a PDF statement. Row-ordered extraction
// is tried first because it preserves the tabular layout most statements
// use; plain-text extraction is the fallback for documents where row
// reconstruction fails. An unreadable container is the only fatal error.
func PDFText(data []byte) (text string, err error) {
	// The pdf library panics on some malformed files; treat that as a
	// decode failure rather than taking the process down.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("failed to read PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return "", ErrEmptyPDF
	}

	var sb strings.Builder
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		if pageText := pageByRows(page); pageText != "" {
			sb.WriteString(pageText)
			sb.WriteString("\n")
			continue
		}
		if pageText, err := page.GetPlainText(nil); err == nil {
			sb.WriteString(pageText)
			sb.WriteString("\n")
		}
	}

	text = strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyPDF
	}
	return text, nil
}

func pageByRows(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil {
		return ""
	}
	var lines []string
	for _, row := range rows {
		var parts []string
		for _, word := range row.Content {
			parts = append(parts, word.S)
		}
		if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}
