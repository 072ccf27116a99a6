package journal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJournal(t *testing.T) (*Journal, *bytes.Buffer, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "modemctl.log")
	j, err := Open(path)
	require.NoError(t, err)

	console := new(bytes.Buffer)
	j.console = console
	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	j.now = func() time.Time { return fixed }
	return j, console, path
}

func TestRecordWritesConsoleAndFile(t *testing.T) {
	j, console, path := newTestJournal(t)

	j.Record("modem reset complete")
	require.NoError(t, j.Close())

	want := "2025-03-14T09:26:53Z: modem reset complete\n"
	assert.Equal(t, want, console.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}

func TestRecordAppendsInOrder(t *testing.T) {
	j, _, path := newTestJournal(t)

	j.Record("first")
	j.Record("second")
	require.NoError(t, j.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"2025-03-14T09:26:53Z: first\n2025-03-14T09:26:53Z: second\n",
		string(data))
}

func TestRecordAfterCloseKeepsConsole(t *testing.T) {
	j, console, _ := newTestJournal(t)
	require.NoError(t, j.Close())

	// File is gone but the console stream must keep narrating.
	j.Record("still visible")
	assert.Contains(t, console.String(), "still visible")
}

func TestOpenFailsOnUnwritablePath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "modemctl.log"))
	assert.Error(t, err)
}

func TestMemoryCapturesMessages(t *testing.T) {
	m := new(Memory)
	m.Record("one")
	m.Record("two")
	assert.Equal(t, []string{"one", "two"}, m.Messages())
}
