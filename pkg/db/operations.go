package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dtnitsch/web-text-organizer/models"
)

// ErrRunNotFound is returned by GetRun for unknown IDs.
var ErrRunNotFound = errors.New("run not found")

// timestampFormat is fixed width so that text ordering matches time ordering.
const timestampFormat = "2006-01-02T15:04:05.000000000Z07:00"

const runColumns = `
	run_id, page_url, host, output_file, status, error_type, error_message,
	total_characters, total_lines, categories, entry_count,
	title, site_name, language, language_confidence, domain_type,
	content_hash, extracted_at`

// InsertRun records a run and returns its run_id.
func (db *DB) InsertRun(r models.RunRecord) (int64, error) {
	if r.ExtractedAt.IsZero() {
		r.ExtractedAt = time.Now()
	}

	result, err := db.Exec(`
		INSERT INTO runs (
			page_url, host, output_file, status, error_type, error_message,
			total_characters, total_lines, categories, entry_count,
			title, site_name, language, language_confidence, domain_type,
			content_hash, extracted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		r.PageURL, r.Host, NewNullString(r.OutputFile), r.Status,
		NewNullString(r.ErrorType), NewNullString(r.ErrorMessage),
		r.TotalCharacters, r.TotalLines, NewNullString(strings.Join(r.Categories, ",")), r.EntryCount,
		NewNullString(r.Title), NewNullString(r.SiteName), NewNullString(r.Language),
		NewNullFloat64(r.LanguageConfidence), NewNullString(r.DomainType),
		NewNullString(r.ContentHash), r.ExtractedAt.UTC().Format(timestampFormat),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	return runID, nil
}

// ListRuns returns runs newest first. A limit of zero or less returns all.
func (db *DB) ListRuns(limit int) ([]models.RunRecord, error) {
	query := "SELECT " + runColumns + " FROM runs ORDER BY extracted_at DESC, run_id DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	runs := []models.RunRecord{}
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}

// GetRun returns a single run by ID.
func (db *DB) GetRun(runID int64) (models.RunRecord, error) {
	row := db.QueryRow("SELECT "+runColumns+" FROM runs WHERE run_id = ?", runID)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RunRecord{}, fmt.Errorf("%w: %d", ErrRunNotFound, runID)
	}
	return r, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (models.RunRecord, error) {
	var r models.RunRecord
	var outputFile, errorType, errorMessage, categories sql.NullString
	var title, siteName, language, domainType, contentHash sql.NullString
	var languageConfidence sql.NullFloat64
	var extractedAt string

	err := s.Scan(&r.RunID, &r.PageURL, &r.Host, &outputFile, &r.Status, &errorType, &errorMessage,
		&r.TotalCharacters, &r.TotalLines, &categories, &r.EntryCount,
		&title, &siteName, &language, &languageConfidence, &domainType,
		&contentHash, &extractedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r, err
		}
		return r, fmt.Errorf("failed to scan run: %w", err)
	}

	r.OutputFile = outputFile.String
	r.ErrorType = errorType.String
	r.ErrorMessage = errorMessage.String
	if categories.String != "" {
		r.Categories = strings.Split(categories.String, ",")
	}
	r.Title = title.String
	r.SiteName = siteName.String
	r.Language = language.String
	r.LanguageConfidence = languageConfidence.Float64
	r.DomainType = domainType.String
	r.ContentHash = contentHash.String

	r.ExtractedAt, err = time.Parse(time.RFC3339Nano, extractedAt)
	if err != nil {
		return r, fmt.Errorf("failed to parse extracted_at %q: %w", extractedAt, err)
	}

	return r, nil
}

// NewNullString creates a sql.NullString from a string value.
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

// NewNullFloat64 creates a sql.NullFloat64 from a float64 value.
func NewNullFloat64(f float64) sql.NullFloat64 {
	if f == 0 {
		return sql.NullFloat64{Valid: false}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}
