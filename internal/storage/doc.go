// Package storage provides the CSV files the pipeline reads and writes.
//
// Three files per run, named {events|results|errors}_{start}to{end}.csv:
// the events file lists discovered race-day ids (no header), the results
// file holds normalized result rows under the master schema header, and the
// error log records per-event failures. The error log is created only when
// the first error occurs. Results are append-only and flushed per event, so
// a crash loses at most the event being written.
package storage
