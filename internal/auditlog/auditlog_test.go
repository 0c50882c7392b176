package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(user, action, resource, batchID string) Entry {
	return Entry{
		Timestamp: time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC),
		User:      user,
		Action:    action,
		Resource:  resource,
		BatchID:   batchID,
	}
}

func TestMarshalUnmarshalEntry(t *testing.T) {
	e := entry("pat", "upload", "spend-q1.csv", "batch-1")

	row := MarshalEntry(e)
	require.Len(t, row, numFields)
	assert.Equal(t, "2025-03-01T09:30:00Z", row[colTimestamp])

	got, err := UnmarshalEntry(row)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestUnmarshalEntry_BadFieldCount(t *testing.T) {
	_, err := UnmarshalEntry([]string{"only", "three", "fields"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 5 fields")
}

func TestUnmarshalEntry_BadTimestamp(t *testing.T) {
	row := MarshalEntry(entry("pat", "view", "summary", ""))
	row[colTimestamp] = "yesterday"

	_, err := UnmarshalEntry(row)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing timestamp")
}

func TestAppendAndRead(t *testing.T) {
	root := t.TempDir()

	first := entry("pat", "upload", "spend-q1.csv", "batch-1")
	require.NoError(t, Append(root, []Entry{first}))

	second := entry("kim", "export", "exports/q1.xlsx", "")
	require.NoError(t, Append(root, []Entry{second}))

	entries, err := Read(root)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, first, entries[0])
	assert.Equal(t, second, entries[1])

	// The header is written once, on first append.
	data, err := os.ReadFile(filepath.Join(root, "logs", "audit-log.csv"))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), Header))
}

func TestRead_NoLogYet(t *testing.T) {
	entries, err := Read(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, entries)
}
