// Package extract turns a PDF file into its plain text.
package extract

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNotFound reports a resume path that does not exist.
var ErrNotFound = errors.New("file not found")

// ErrExtraction reports a PDF that could not be read or parsed.
var ErrExtraction = errors.New("failed to extract text")

// Text returns the concatenated plain text of every page of the PDF at
// path, in page order. Extraction never takes the process down: every
// failure, including panics inside the PDF library on corrupt files, is
// returned as an error wrapping ErrNotFound or ErrExtraction.
func Text(path string) (text string, err error) {
	if _, statErr := os.Stat(path); statErr != nil {
		if os.IsNotExist(statErr) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("%w: %s: %v", ErrExtraction, path, statErr)
	}

	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %s: %v", ErrExtraction, path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrExtraction, path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			return "", fmt.Errorf("%w: %s: page %d: %v", ErrExtraction, path, i, pageErr)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
