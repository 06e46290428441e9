package cli

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mshahgoogle/nps-campsite-scraper/internal/campsite"
)

func TestWriteText_Exhausted(t *testing.T) {
	var buf bytes.Buffer
	result := &OutputResult{
		CheckedAt:   time.Now().UTC(),
		Park:        "Yosemite",
		Date:        "2024-07-15",
		MaxAttempts: 24,
		Found:       false,
	}

	require.NoError(t, WriteOutput(&buf, result, FormatText))
	require.Equal(t,
		"No available campsites found for Yosemite on 2024-07-15 after 24 polling attempts.\n",
		buf.String())
}

func TestWriteText_Found(t *testing.T) {
	var buf bytes.Buffer
	result := &OutputResult{
		CheckedAt:   time.Now().UTC(),
		Park:        "Yosemite",
		Date:        "2024-07-15",
		MaxAttempts: 24,
		Found:       true,
		Result: &campsite.PollResult{
			Campground: "Upper Pines",
			Date:       "2024-07-15",
			Sites: []campsite.Site{
				{ID: "101", Name: "A1", Type: "Tent"},
				{ID: "102", Name: "Site 102", Type: "Unknown"},
			},
		},
	}

	require.NoError(t, WriteOutput(&buf, result, FormatText))

	want := "Success! Found available campsites at Upper Pines on 2024-07-15:\n" +
		"- A1 (Type: Tent)\n" +
		"- Site 102 (Type: Unknown)\n"
	require.Equal(t, want, buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	result := &OutputResult{
		CheckedAt:   time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC),
		Park:        "Yosemite",
		Date:        "2024-07-15",
		MaxAttempts: 2,
		Found:       true,
		Result: &campsite.PollResult{
			Campground: "Upper Pines",
			Date:       "2024-07-15",
			Sites:      []campsite.Site{{ID: "A1", Name: "A1", Type: "Tent"}},
		},
	}

	require.NoError(t, WriteOutput(&buf, result, FormatJSON))

	var decoded OutputResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, result.Park, decoded.Park)
	require.True(t, decoded.Found)
	require.Equal(t, "Upper Pines", decoded.Result.Campground)
	require.Equal(t, "A1", decoded.Result.Sites[0].ID)
}

func TestWriteOutput_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteOutput(&buf, &OutputResult{}, OutputFormat("xml"))
	require.Error(t, err)
}
