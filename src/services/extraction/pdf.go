package extraction

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// ReadText recovers the plain text content of a PDF file. A corrupt or
// unreadable document surfaces as a single error, never partial text.
// The caller owns the file and its cleanup.
func ReadText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}
	return buf.String(), nil
}
