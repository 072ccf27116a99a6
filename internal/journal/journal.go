// Package journal writes the operator transcript for a reset run.
//
// Every step and classification decision ends up here: a timestamped line
// appended to a plain-text log file and mirrored to the console. The file
// is append-only and never read back by the program.
package journal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"modemctl/internal/system"
)

// Recorder accepts one transcript message at a time.
type Recorder interface {
	Record(message string)
}

// Journal appends timestamped lines to a log file and mirrors them to a
// console stream. Lines look like `2026-08-23T14:05:09Z: message`.
type Journal struct {
	mu      sync.Mutex
	file    *os.File
	console io.Writer
	now     func() time.Time
	failed  bool
}

// Open returns a Journal appending to path. The file is created when
// missing; failing to open it is fatal for the whole run.
func Open(path string) (*Journal, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}
	return &Journal{file: f, console: os.Stdout, now: time.Now}, nil
}

// DefaultPath is the journal location next to the running executable.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "modemctl.log"
	}
	return filepath.Join(filepath.Dir(exe), "modemctl.log")
}

// Record writes one line to the console and the journal file. File write
// failures after a successful Open are best-effort: reported once, then
// only the console stream continues.
func (j *Journal) Record(message string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	line := fmt.Sprintf("%s: %s\n", j.now().Format(time.RFC3339), message)
	fmt.Fprint(j.console, line)

	if j.file == nil || j.failed {
		return
	}
	if _, err := j.file.WriteString(line); err != nil {
		j.failed = true
		system.Logger.Warn("journal write failed, continuing on console only", "err", err)
	}
}

// Close releases the underlying file.
func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.file == nil {
		return nil
	}
	err := j.file.Close()
	j.file = nil
	return err
}

// Memory is a Recorder that captures messages for tests.
type Memory struct {
	mu    sync.Mutex
	lines []string
}

func (m *Memory) Record(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, message)
}

// Messages returns a copy of everything recorded so far.
func (m *Memory) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.lines...)
}
