package models

import "time"

// Run statuses and error types recorded in history.
const (
	RunStatusSuccess = "success"
	RunStatusFailed  = "failed"

	ErrorTypeFetch   = "fetch_error"
	ErrorTypeExtract = "extract_error"
)

// RunRecord is one recorded execution of the extract command.
type RunRecord struct {
	RunID              int64     `json:"run_id" yaml:"run_id"`
	PageURL            string    `json:"page_url" yaml:"page_url"`
	Host               string    `json:"host" yaml:"host"`
	OutputFile         string    `json:"output_file,omitempty" yaml:"output_file,omitempty"`
	Status             string    `json:"status" yaml:"status"`
	ErrorType          string    `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	ErrorMessage       string    `json:"error_message,omitempty" yaml:"error_message,omitempty"`
	TotalCharacters    int       `json:"total_characters" yaml:"total_characters"`
	TotalLines         int       `json:"total_lines" yaml:"total_lines"`
	Categories         []string  `json:"categories,omitempty" yaml:"categories,omitempty"`
	EntryCount         int       `json:"entry_count" yaml:"entry_count"`
	Title              string    `json:"title,omitempty" yaml:"title,omitempty"`
	SiteName           string    `json:"site_name,omitempty" yaml:"site_name,omitempty"`
	Language           string    `json:"language,omitempty" yaml:"language,omitempty"`
	LanguageConfidence float64   `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
	DomainType         string    `json:"domain_type,omitempty" yaml:"domain_type,omitempty"`
	ContentHash        string    `json:"content_hash,omitempty" yaml:"content_hash,omitempty"`
	ExtractedAt        time.Time `json:"extracted_at" yaml:"extracted_at"`
}
