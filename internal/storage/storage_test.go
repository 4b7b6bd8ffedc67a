package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/mjansen/ndr-results/internal/race"
)

func readAllCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return records
}

func TestResultWriter_HeaderAndAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	header := []string{"event", "paard", "tijd"}

	w, err := NewResultWriter(path, header)
	if err != nil {
		t.Fatalf("NewResultWriter failed: %v", err)
	}

	if err := w.AppendEvent([][]string{
		{"8011", "Bo Ideaal", "1.16,4"},
		{"8011", "Frisian Flyer", "1.16,9"},
	}); err != nil {
		t.Fatalf("AppendEvent failed: %v", err)
	}
	if err := w.AppendEvent([][]string{
		{"8015", "Zorro Boko", "1.17,8"},
	}); err != nil {
		t.Fatalf("AppendEvent failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	records := readAllCSV(t, path)
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4 (header + 3 rows)", len(records))
	}
	if records[0][0] != "event" || records[0][1] != "paard" {
		t.Errorf("header row = %v", records[0])
	}
	if records[1][1] != "Bo Ideaal" || records[3][0] != "8015" {
		t.Errorf("data rows = %v", records[1:])
	}
}

func TestResultWriter_QuotesDelimiterInFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	w, err := NewResultWriter(path, []string{"a", "b"})
	if err != nil {
		t.Fatalf("NewResultWriter failed: %v", err)
	}
	if err := w.AppendEvent([][]string{{"with, comma", "with\nnewline"}}); err != nil {
		t.Fatalf("AppendEvent failed: %v", err)
	}
	w.Close()

	records := readAllCSV(t, path)
	if records[1][0] != "with, comma" {
		t.Errorf("field = %q, want %q", records[1][0], "with, comma")
	}
	if records[1][1] != "with\nnewline" {
		t.Errorf("field = %q, want %q", records[1][1], "with\nnewline")
	}
}

// Re-running over the same events appends duplicates. That is the documented
// contract: idempotence is the caller's concern, handled by per-run file
// names.
func TestResultWriter_RerunAppendsDuplicates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	header := []string{"event", "paard"}
	rows := [][]string{{"8011", "Bo Ideaal"}}

	for run := 0; run < 2; run++ {
		w, err := NewResultWriter(path, header)
		if err != nil {
			t.Fatalf("run %d: NewResultWriter failed: %v", run, err)
		}
		if err := w.AppendEvent(rows); err != nil {
			t.Fatalf("run %d: AppendEvent failed: %v", run, err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("run %d: Close failed: %v", run, err)
		}
	}

	records := readAllCSV(t, path)
	// One header (only written when the file is fresh), then the same row
	// twice.
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3 (header + duplicated row)", len(records))
	}
	if records[0][0] != "event" {
		t.Errorf("first record should be the header, got %v", records[0])
	}
	for i := 1; i <= 2; i++ {
		if records[i][0] != "8011" || records[i][1] != "Bo Ideaal" {
			t.Errorf("record %d = %v, want duplicated data row", i, records[i])
		}
	}
}

func TestErrorLog_LazyCreation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.csv")

	e := NewErrorLog(path)
	if err := e.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("error log file should not exist without errors, stat err = %v", err)
	}

	e = NewErrorLog(path)
	if err := e.Append("fetch failed", "8011", "https://example.com/x"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	records := readAllCSV(t, path)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec[0] != "fetch failed" || rec[1] != "8011" || rec[2] != "https://example.com/x" {
		t.Errorf("record = %v", rec)
	}
}

func TestWriteAndReadEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")

	events := []*race.Event{
		{Koersdag: "8011", DateText: "zo 9 jan", Month: "1", Year: "2022"},
		{Koersdag: "8015", DateText: "zo 16 jan", Month: "1", Year: "2022"},
	}
	if err := WriteEvents(path, events); err != nil {
		t.Fatalf("WriteEvents failed: %v", err)
	}
	// Second month appends to the same file.
	if err := WriteEvents(path, []*race.Event{
		{Koersdag: "8023", DateText: "zo 6 feb", Month: "2", Year: "2022"},
	}); err != nil {
		t.Fatalf("WriteEvents failed: %v", err)
	}

	records := readAllCSV(t, path)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3 (no header)", len(records))
	}
	if records[0][0] != "8011" || records[0][3] != "2022" {
		t.Errorf("first record = %v", records[0])
	}

	ids, err := ReadEventIDs(path)
	if err != nil {
		t.Fatalf("ReadEventIDs failed: %v", err)
	}
	want := []string{"8011", "8015", "8023"}
	if len(ids) != len(want) {
		t.Fatalf("got %d ids, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestReadEventIDs_MissingFile(t *testing.T) {
	if _, err := ReadEventIDs(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
