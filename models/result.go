package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// ExtractionResult is the document written for a single page.
type ExtractionResult struct {
	PageURL         string      `json:"page_url" yaml:"page_url"`
	ExtractedAt     time.Time   `json:"extracted_at" yaml:"extracted_at"`
	TotalCharacters int         `json:"total_characters" yaml:"total_characters"`
	TotalLines      int         `json:"total_lines" yaml:"total_lines"`
	Content         CategorySet `json:"content" yaml:"content"`
}

// MarshalIndentJSON encodes the result with two-space indentation,
// leaving HTML characters unescaped.
func (r *ExtractionResult) MarshalIndentJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, err
	}
	// Encode terminates with a newline; the file content does not.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
