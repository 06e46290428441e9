package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mshahgoogle/nps-campsite-scraper/internal/campsite"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	CheckedAt   time.Time            `json:"checked_at"`
	Park        string               `json:"park"`
	Date        string               `json:"date"`
	MaxAttempts int                  `json:"max_attempts"`
	Found       bool                 `json:"found"`
	Result      *campsite.PollResult `json:"result,omitempty"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult) error {
	if !result.Found {
		fmt.Fprintf(w, "No available campsites found for %s on %s after %d polling attempts.\n",
			result.Park, result.Date, result.MaxAttempts)
		return nil
	}

	fmt.Fprintf(w, "Success! Found available campsites at %s on %s:\n",
		result.Result.Campground, result.Result.Date)
	for _, site := range result.Result.Sites {
		fmt.Fprintf(w, "- %s (Type: %s)\n", site.Name, site.Type)
	}

	return nil
}
