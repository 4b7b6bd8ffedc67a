package storage

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ResultWriter appends normalized result rows to the results CSV, one event
// at a time. The header is written exactly once, when the file is created.
// There is no deduplication: re-running an overlapping range appends
// duplicate rows, and distinct output files per run are how callers keep
// runs apart.
type ResultWriter struct {
	file   *os.File
	writer *csv.Writer
}

// NewResultWriter creates the results file, writes the header row, and
// returns a writer holding the file open for the rest of the run.
func NewResultWriter(path string, header []string) (*ResultWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening results file: %w", err)
	}

	w := &ResultWriter{
		file:   f,
		writer: csv.NewWriter(f),
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("checking results file: %w", err)
	}
	// Only a fresh file gets the header; appending to an existing file would
	// otherwise repeat it mid-stream.
	if info.Size() == 0 {
		if err := w.writer.Write(header); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing header: %w", err)
		}
		if err := w.flush(); err != nil {
			f.Close()
			return nil, err
		}
	}

	return w, nil
}

// AppendEvent appends one event's rows and flushes them durably, so a crash
// during a later event cannot lose rows already appended.
func (w *ResultWriter) AppendEvent(rows [][]string) error {
	for _, row := range rows {
		if err := w.writer.Write(row); err != nil {
			return fmt.Errorf("writing result row: %w", err)
		}
	}
	return w.flush()
}

func (w *ResultWriter) flush() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return fmt.Errorf("flushing results: %w", err)
	}
	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("syncing results file: %w", err)
	}
	return nil
}

// Close releases the results file handle.
func (w *ResultWriter) Close() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("flushing results: %w", err)
	}
	return w.file.Close()
}
