package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// Marshal serializes the report with stable 2-space indentation and
// validates the document against the embedded schema before returning it.
func Marshal(rep *Report) ([]byte, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	if err := ValidateDocument(data); err != nil {
		return nil, err
	}
	return data, nil
}

// Parse reads a previously exported report back into memory. Together
// with Marshal it forms a lossless round trip.
func Parse(data []byte) (*Report, error) {
	if err := ValidateDocument(data); err != nil {
		return nil, err
	}
	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &rep, nil
}

// WriteJSON persists the report to path. An export failure leaves the
// in-memory report (and anything already printed) untouched; the caller
// decides how to surface the error.
func WriteJSON(path string, rep *Report) error {
	data, err := Marshal(rep)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", path, err)
	}
	return nil
}
