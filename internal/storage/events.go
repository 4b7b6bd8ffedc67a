package storage

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/mjansen/ndr-results/internal/race"
)

// WriteEvents appends discovered events to the events CSV: one row per race
// day, four columns (koersdag id, date text, month, year), no header. The
// discovery crawler calls this once per month so partial discovery progress
// is kept too.
func WriteEvents(path string, events []*race.Event) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening events file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, evt := range events {
		if err := w.Write([]string{evt.Koersdag, evt.DateText, evt.Month, evt.Year}); err != nil {
			return fmt.Errorf("writing event row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing events file: %w", err)
	}
	return nil
}

// ReadEventIDs reads back the events CSV and returns the first column of
// every row, in file order. Rows are allowed to vary in width; only the id
// column matters to the results pipeline.
func ReadEventIDs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening events file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading events file: %w", err)
	}

	ids := make([]string, 0, len(records))
	for _, rec := range records {
		if len(rec) == 0 || rec[0] == "" {
			continue
		}
		ids = append(ids, rec[0])
	}
	return ids, nil
}
