package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/dtnitsch/web-text-organizer/internal/common"
	"github.com/dtnitsch/web-text-organizer/models"
	"github.com/dtnitsch/web-text-organizer/pkg/db"
	"github.com/dtnitsch/web-text-organizer/pkg/detector"
	"github.com/dtnitsch/web-text-organizer/pkg/fetcher"
	"github.com/dtnitsch/web-text-organizer/pkg/organizer"
	"github.com/dtnitsch/web-text-organizer/pkg/parser"
	"github.com/dtnitsch/web-text-organizer/pkg/storage"
)

// ErrNoURL is returned when the input is empty after cleanup.
var ErrNoURL = errors.New("no URL provided")

// Runner executes one fetch, classify and write cycle.
type Runner struct {
	Logger    *slog.Logger
	Fetcher   *fetcher.Fetcher
	Organizer *organizer.Organizer
	Storage   *storage.Storage
	History   *db.DB // nil disables run recording
	Out       io.Writer
}

// Outcome describes a successful run.
type Outcome struct {
	Result     *models.ExtractionResult
	OutputFile string
	JSON       []byte
}

// Run fetches rawURL, classifies its text and writes the result file.
// Fetch failures are returned as *fetcher.FetchError; nothing is written
// unless every step succeeds.
func (r *Runner) Run(ctx context.Context, rawURL string) (*Outcome, error) {
	pageURL := common.NormalizeURL(rawURL)
	if pageURL == "" {
		return nil, ErrNoURL
	}

	r.Logger.Info("Fetching page", "url", pageURL)
	resp, err := r.Fetcher.GetHtmlBytes(ctx, pageURL)
	if err != nil {
		r.Logger.Error("Error fetching HTML", "url", pageURL, "error", err)
		r.record(failedRun(pageURL, models.ErrorTypeFetch, err))
		return nil, err
	}
	r.Logger.Debug("Fetched page", "url", pageURL, "final_url", resp.URL, "status_code", resp.StatusCode, "bytes", len(resp.Body))

	outcome, doc, err := r.extract(pageURL, resp.Body)
	if err != nil {
		r.Logger.Error("Error extracting content", "url", pageURL, "error", err)
		r.record(failedRun(pageURL, models.ErrorTypeExtract, err))
		return nil, err
	}

	r.Logger.Info("Saved extraction", "url", pageURL, "output_file", outcome.OutputFile,
		"total_characters", outcome.Result.TotalCharacters, "total_lines", outcome.Result.TotalLines)
	r.printReport(outcome)

	if r.History != nil {
		r.record(successRun(outcome, detector.Analyze(pageURL, resp.Body, doc.Text())))
	}

	return outcome, nil
}

func (r *Runner) extract(pageURL string, body []byte) (*Outcome, *parser.Document, error) {
	doc, err := parser.Parse(body)
	if err != nil {
		return nil, nil, err
	}

	result := r.Organizer.Organize(pageURL, doc)

	data, err := result.MarshalIndentJSON()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	path, err := r.Storage.SaveFile(common.OutputFileName(pageURL), data)
	if err != nil {
		return nil, nil, err
	}

	return &Outcome{Result: result, OutputFile: path, JSON: data}, doc, nil
}

func (r *Runner) printReport(o *Outcome) {
	if r.Out == nil {
		return
	}
	fmt.Fprintf(r.Out, "text extracted and saved to %s\n", o.OutputFile)
	fmt.Fprintf(r.Out, "total characters: %d\n", o.Result.TotalCharacters)
	fmt.Fprintf(r.Out, "total lines: %d\n", o.Result.TotalLines)
	fmt.Fprintf(r.Out, "categories found: [%s]\n", strings.Join(o.Result.Content.Categories(), ", "))
	fmt.Fprintf(r.Out, "\njson output:\n%s\n", o.JSON)
}

func (r *Runner) record(run models.RunRecord) {
	if r.History == nil {
		return
	}
	runID, err := r.History.InsertRun(run)
	if err != nil {
		r.Logger.Warn("Failed to record run", "url", run.PageURL, "error", err)
		return
	}
	r.Logger.Debug("Recorded run", "run_id", runID, "status", run.Status)
}

func failedRun(pageURL, errorType string, err error) models.RunRecord {
	return models.RunRecord{
		PageURL:      pageURL,
		Host:         hostOf(pageURL),
		Status:       models.RunStatusFailed,
		ErrorType:    errorType,
		ErrorMessage: err.Error(),
	}
}

func successRun(o *Outcome, info *detector.PageInfo) models.RunRecord {
	return models.RunRecord{
		PageURL:            o.Result.PageURL,
		Host:               hostOf(o.Result.PageURL),
		OutputFile:         o.OutputFile,
		Status:             models.RunStatusSuccess,
		TotalCharacters:    o.Result.TotalCharacters,
		TotalLines:         o.Result.TotalLines,
		Categories:         o.Result.Content.Categories(),
		EntryCount:         o.Result.Content.Len(),
		Title:              info.Title,
		SiteName:           info.SiteName,
		Language:           info.Language,
		LanguageConfidence: info.LanguageConfidence,
		DomainType:         info.DomainType,
		ContentHash:        common.ContentHash(o.JSON),
		ExtractedAt:        o.Result.ExtractedAt,
	}
}

func hostOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return u.Host
}
