// Package ingestion turns resume files into candidate text: extraction from
// PDF, DOCX and plain-text files, uploads-directory management and Gmail
// attachment fetching.
package ingestion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFileType marks files whose extension is not in the supported
// set. Callers skip these and warn the user rather than failing the batch.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// supportedExtensions are the resume formats the extractor understands.
var supportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// IsSupported reports whether the file's extension is a supported resume
// format.
func IsSupported(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// ExtractText extracts UTF-8 text from a resume file. Extraction failure on
// a supported type is an ordinary error the caller may degrade to empty
// text; an unsupported extension wraps ErrUnsupportedFileType.
func ExtractText(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var text string
	var err error
	switch ext {
	case ".txt":
		text, err = extractTXT(path)
	case ".pdf":
		text, err = extractPDF(path)
	case ".docx":
		text, err = extractDOCX(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, path)
	}
	if err != nil {
		return "", err
	}
	return sanitizeUTF8(text), nil
}

func extractTXT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	return string(data), nil
}

// extractPDF pulls plain text from every page, skipping pages that fail
// individually.
func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF: %s", path)
	}
	return text, nil
}

var docxTags = regexp.MustCompile(`<[^>]*>`)

// extractDOCX reads the document XML and strips markup, keeping paragraph
// breaks as newlines.
func extractDOCX(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer r.Close()

	content := r.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	text := docxTags.ReplaceAllString(content, "")

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in DOCX: %s", path)
	}
	return text, nil
}

// sanitizeUTF8 replaces invalid byte sequences so downstream matching and
// JSON encoding always see valid UTF-8.
func sanitizeUTF8(s string) string {
	return strings.ToValidUTF8(s, "�")
}
