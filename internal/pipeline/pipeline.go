// Package pipeline drives the per-event fetch-normalize-append loop.
//
// Events are processed strictly sequentially, in the order discovered. A
// failed event is logged to the error log and skipped; the run always moves
// on to the next id. Only a results-file write failure aborts the run, since
// continuing would lose rows silently.
package pipeline

import (
	"fmt"
	"time"

	"github.com/mjansen/ndr-results/internal/logger"
)

// ResultFetcher retrieves one event's normalized result rows.
type ResultFetcher interface {
	FetchResults(eventID string) ([][]string, error)
	EventURL(eventID string) string
}

// ResultStore appends one event's rows durably.
type ResultStore interface {
	AppendEvent(rows [][]string) error
}

// ErrorSink records one per-event failure.
type ErrorSink interface {
	Append(message, eventID, url string) error
}

// Summary reports what a run accomplished.
type Summary struct {
	Events  int
	Rows    int
	Skipped int
}

// Run fetches every event id in order and appends its rows as soon as they
// are produced, so partial progress survives a crash. Per-event failures are
// recorded in errs and do not stop the run.
func Run(ids []string, fetcher ResultFetcher, results ResultStore, errs ErrorSink) (Summary, error) {
	var summary Summary

	for _, id := range ids {
		summary.Events++

		start := time.Now()
		rows, err := fetcher.FetchResults(id)
		logger.RecordTiming("fetch", time.Since(start))

		if err != nil {
			summary.Skipped++
			logger.IncrCounter("events.failed", 1)
			logger.Error("event failed, continuing", logger.Fields{
				"event": id,
				"url":   fetcher.EventURL(id),
			}, err)
			if logErr := errs.Append(err.Error(), id, fetcher.EventURL(id)); logErr != nil {
				return summary, fmt.Errorf("recording error for event %s: %w", id, logErr)
			}
			continue
		}

		logger.IncrCounter("events.fetched", 1)
		logger.IncrCounter("rows.written", int64(len(rows)))

		// Zero rows is a valid outcome: an agenda entry without results.
		if len(rows) == 0 {
			logger.Debug("event yielded no rows", logger.Fields{"event": id})
			continue
		}

		if err := results.AppendEvent(rows); err != nil {
			return summary, fmt.Errorf("appending rows for event %s: %w", id, err)
		}
		summary.Rows += len(rows)

		logger.Debug("event written", logger.Fields{
			"event": id,
			"rows":  len(rows),
		})
	}

	return summary, nil
}
