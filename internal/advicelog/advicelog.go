// Package advicelog keeps an append-only CSV record of every advice request
// and which responder answered it.
package advicelog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/financely/financely/internal/advisor"
)

// Entry is one row in the advice log.
type Entry struct {
	ID        string
	Timestamp time.Time
	Mode      advisor.Mode
	Topic     advisor.Topic
	Message   string
	Reason    string // why the fallback answered; empty for live answers
}

// Header is the CSV header for advice-log.csv.
const Header = "id,timestamp,mode,topic,message,reason"

const (
	numFields    = 6
	logDir       = "logs"
	logFile      = "logs/advice-log.csv"
	colID        = 0
	colTimestamp = 1
	colMode      = 2
	colTopic     = 3
	colMessage   = 4
	colReason    = 5
)

// NewEntry records an answered question under a fresh id.
func NewEntry(now time.Time, message string, a advisor.Advice) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Timestamp: now.UTC(),
		Mode:      a.Mode,
		Topic:     a.Topic,
		Message:   message,
		Reason:    a.Reason(),
	}
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colID] = e.ID
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colMode] = string(e.Mode)
	row[colTopic] = string(e.Topic)
	row[colMessage] = e.Message
	row[colReason] = e.Reason
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	if _, err := uuid.Parse(record[colID]); err != nil {
		return Entry{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	mode := advisor.Mode(record[colMode])
	if mode != advisor.ModeLive && mode != advisor.ModeFallback {
		return Entry{}, fmt.Errorf("unknown mode %q", record[colMode])
	}

	return Entry{
		ID:        record[colID],
		Timestamp: ts,
		Mode:      mode,
		Topic:     advisor.Topic(record[colTopic]),
		Message:   record[colMessage],
		Reason:    record[colReason],
	}, nil
}

// Append writes entries to <workspace>/logs/advice-log.csv, creating the file and header if needed.
func Append(workspace string, entries []Entry) error {
	dir := filepath.Join(workspace, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(workspace, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening advice log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <workspace>/logs/advice-log.csv.
// Returns an empty slice if the file does not exist.
func Read(workspace string) ([]Entry, error) {
	path := filepath.Join(workspace, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening advice log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading advice log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
