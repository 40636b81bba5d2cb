package tourio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// TraceEntry is one JSON line of a progress trace.
type TraceEntry struct {
	// RunID groups the entries of one engine run.
	RunID string `json:"run_id"`

	// Engine is "climb/<strategy>" or "anneal/<acceptance>".
	Engine string `json:"engine"`

	Round     int     `json:"round"`
	Crossings int     `json:"crossings"`
	Perimeter float64 `json:"perimeter"`
	Moved     bool    `json:"moved"`

	// Temperature after the round; omitted for hill climbing.
	Temperature float64 `json:"temperature,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// TraceWriter appends TraceEntry values as JSON lines. Writes are buffered
// until Flush or Close.
type TraceWriter struct {
	mu     sync.Mutex
	writer *bufio.Writer
	file   *os.File // nil when writing to a caller-owned stream
	path   string
}

// NewTraceWriter opens path for writing, truncating it unless appendMode is
// set. Missing parent directories are created.
func NewTraceWriter(path string, appendMode bool) (*TraceWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create trace directory: %w", err)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendMode {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace file: %w", err)
	}

	return &TraceWriter{
		writer: bufio.NewWriterSize(file, 64*1024),
		file:   file,
		path:   path,
	}, nil
}

// NewTraceStream writes to w. Close flushes but does not close w.
func NewTraceStream(w io.Writer) *TraceWriter {
	return &TraceWriter{writer: bufio.NewWriter(w)}
}

// Write buffers one entry.
func (tw *TraceWriter) Write(entry TraceEntry) error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal trace entry: %w", err)
	}
	if _, err := tw.writer.Write(data); err != nil {
		return fmt.Errorf("failed to write trace entry: %w", err)
	}
	if err := tw.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}
	return nil
}

// Flush writes buffered entries and syncs the file, if any.
func (tw *TraceWriter) Flush() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if err := tw.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush trace writer: %w", err)
	}
	if tw.file != nil {
		if err := tw.file.Sync(); err != nil {
			return fmt.Errorf("failed to sync trace file: %w", err)
		}
	}
	return nil
}

// Close flushes and closes the underlying file.
func (tw *TraceWriter) Close() error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if err := tw.writer.Flush(); err != nil {
		if tw.file != nil {
			tw.file.Close()
		}
		return fmt.Errorf("failed to flush on close: %w", err)
	}
	if tw.file == nil {
		return nil
	}
	if err := tw.file.Close(); err != nil {
		return fmt.Errorf("failed to close trace file: %w", err)
	}
	return nil
}

// Path returns the trace file path, or "" for a stream.
func (tw *TraceWriter) Path() string { return tw.path }

// ReadTrace decodes every JSON line from r.
func ReadTrace(r io.Reader) ([]TraceEntry, error) {
	var (
		sc  = bufio.NewScanner(r)
		out []TraceEntry
	)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var e TraceEntry
		if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal trace entry: %w", err)
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan trace line: %w", err)
	}
	return out, nil
}
