package logger

import (
	"encoding/json"
	"errors"
	"os"
	"testing"
)

func TestLogger_Log(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "log-test-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name()) // nolint:errcheck
	defer tmpFile.Close()           // nolint:errcheck

	logger := New(LevelInfo, tmpFile)

	tests := []struct {
		name    string
		level   Level
		message string
		fields  Fields
		err     error
		want    bool // should log
	}{
		{
			name:    "info message",
			level:   LevelInfo,
			message: "polling attempt",
			fields:  Fields{"attempt": 1},
			want:    true,
		},
		{
			name:    "debug below threshold",
			level:   LevelDebug,
			message: "debug message",
			want:    false, // won't log (below INFO)
		},
		{
			name:    "error with err",
			level:   LevelError,
			message: "availability request failed",
			err:     errors.New("connection refused"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, _ := tmpFile.Seek(0, 2)

			logger.log(tt.level, tt.message, tt.fields, tt.err)

			after, _ := tmpFile.Seek(0, 2)
			logged := after > before

			if logged != tt.want {
				t.Errorf("logged = %v, want %v", logged, tt.want)
			}
		})
	}
}

func TestLogger_JSONOutput(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "log-json-*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpFile.Name()) // nolint:errcheck
	defer tmpFile.Close()           // nolint:errcheck

	logger := New(LevelInfo, tmpFile)
	logger.Error("search failed", Fields{"park": "Yosemite"}, errors.New("status 500"))

	data, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		t.Fatal(err)
	}

	var entry LogEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if entry.Level != string(LevelError) {
		t.Errorf("level = %q, want %q", entry.Level, LevelError)
	}
	if entry.Message != "search failed" {
		t.Errorf("message = %q, want %q", entry.Message, "search failed")
	}
	if entry.Error != "status 500" {
		t.Errorf("error = %q, want %q", entry.Error, "status 500")
	}
	if entry.Fields["park"] != "Yosemite" {
		t.Errorf("fields[park] = %v, want Yosemite", entry.Fields["park"])
	}
}

func TestCounters(t *testing.T) {
	c := NewCounters()

	c.Incr("search.requests")
	c.Incr("search.requests")
	c.Incr("poll.attempts")

	snapshot := c.Snapshot()

	if snapshot["search.requests"] != 2 {
		t.Errorf("search.requests = %d, want 2", snapshot["search.requests"])
	}
	if snapshot["poll.attempts"] != 1 {
		t.Errorf("poll.attempts = %d, want 1", snapshot["poll.attempts"])
	}

	// snapshot is a copy, not a live view
	snapshot["search.requests"] = 99
	if c.Snapshot()["search.requests"] != 2 {
		t.Error("mutating a snapshot should not affect the tracker")
	}
}
