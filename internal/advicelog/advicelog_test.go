package advicelog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/financely/financely/internal/advisor"
)

var testTime = time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		ID:        "7b0a8f4e-2d1c-4a7e-9b3f-1c2d3e4f5a6b",
		Timestamp: testTime,
		Mode:      advisor.ModeFallback,
		Topic:     advisor.TopicBudget,
		Message:   "How is my budget, really?",
		Reason:    "no API key configured",
	}
}

func TestAppend_NewFile(t *testing.T) {
	dir := t.TempDir()
	err := Append(dir, []Entry{testEntry()})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "logs", "advice-log.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), Header+"\n")

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, advisor.TopicBudget, entries[0].Topic)
}

func TestAppend_ExistingFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Append(dir, []Entry{testEntry()}))

	e2 := testEntry()
	e2.ID = uuid.NewString()
	e2.Mode = advisor.ModeLive
	e2.Topic = advisor.TopicSavings
	e2.Reason = ""
	require.NoError(t, Append(dir, []Entry{e2}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, advisor.ModeFallback, entries[0].Mode)
	assert.Equal(t, advisor.ModeLive, entries[1].Mode)
	assert.Empty(t, entries[1].Reason)
}

func TestRead_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	original := testEntry()
	require.NoError(t, Append(dir, []Entry{original}))

	entries, err := Read(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.Equal(t, original.ID, got.ID)
	assert.True(t, original.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, original.Mode, got.Mode)
	assert.Equal(t, original.Topic, got.Topic)
	assert.Equal(t, original.Message, got.Message)
	assert.Equal(t, original.Reason, got.Reason)
}

func TestRead_NotFound(t *testing.T) {
	entries, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logs", "advice-log.csv"), []byte(Header+"\n"), 0o644))

	entries, err := Read(dir)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_BadRowReportsLine(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logs"), 0o755))
	body := Header + "\nnot-a-uuid,2025-01-15T10:30:00Z,live,budget,hi,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logs", "advice-log.csv"), []byte(body), 0o644))

	_, err := Read(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestNewEntry(t *testing.T) {
	local := time.Date(2025, 3, 1, 9, 0, 0, 0, time.FixedZone("IST", 5*3600+1800))
	a := advisor.Advice{
		Mode:  advisor.ModeFallback,
		Topic: advisor.TopicHealth,
		Text:  "ignored",
		Err:   errors.New("calling anthropic: 401"),
	}

	e := NewEntry(local, "my score?", a)
	_, err := uuid.Parse(e.ID)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, e.Timestamp.Location())
	assert.True(t, local.Equal(e.Timestamp))
	assert.Equal(t, advisor.TopicHealth, e.Topic)
	assert.Equal(t, "my score?", e.Message)
	assert.Equal(t, "calling anthropic: 401", e.Reason)

	other := NewEntry(local, "my score?", a)
	assert.NotEqual(t, e.ID, other.ID)
}

func TestMarshalUnmarshal(t *testing.T) {
	e := testEntry()
	row := MarshalEntry(e)
	assert.Len(t, row, 6)

	got, err := UnmarshalEntry(row)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
	assert.True(t, e.Timestamp.Equal(got.Timestamp))
	assert.Equal(t, e.Message, got.Message)
}

func TestUnmarshalEntry_Errors(t *testing.T) {
	_, err := UnmarshalEntry([]string{"one", "two"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 6 fields")

	row := MarshalEntry(testEntry())
	row[colMode] = "psychic"
	_, err = UnmarshalEntry(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")

	row = MarshalEntry(testEntry())
	row[colTimestamp] = "yesterday"
	_, err = UnmarshalEntry(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing timestamp")
}

func TestTimestampFormat(t *testing.T) {
	row := MarshalEntry(testEntry())
	assert.Equal(t, "2025-01-15T10:30:00Z", row[colTimestamp])
}
