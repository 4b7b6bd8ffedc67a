package storage

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ErrorLog records per-event failures as CSV lines of
// {error description, event id, request URL}. The file is created lazily on
// the first Append, so an error-free run leaves no error log behind.
type ErrorLog struct {
	path   string
	file   *os.File
	writer *csv.Writer
}

// NewErrorLog prepares an error log at path without creating the file.
func NewErrorLog(path string) *ErrorLog {
	return &ErrorLog{path: path}
}

// Append records one error. Each record is flushed immediately; the log must
// survive whatever failure is being recorded.
func (e *ErrorLog) Append(message, eventID, url string) error {
	if e.file == nil {
		f, err := os.OpenFile(e.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening error log: %w", err)
		}
		e.file = f
		e.writer = csv.NewWriter(f)
	}

	if err := e.writer.Write([]string{message, eventID, url}); err != nil {
		return fmt.Errorf("writing error record: %w", err)
	}
	e.writer.Flush()
	if err := e.writer.Error(); err != nil {
		return fmt.Errorf("flushing error log: %w", err)
	}
	return nil
}

// Close releases the log file handle if one was ever created.
func (e *ErrorLog) Close() error {
	if e.file == nil {
		return nil
	}
	e.writer.Flush()
	if err := e.writer.Error(); err != nil {
		e.file.Close()
		return fmt.Errorf("flushing error log: %w", err)
	}
	return e.file.Close()
}
