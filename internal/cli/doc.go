// Package cli implements the command-line interface for ndr-results.
//
// The cli package provides the Cobra-based command that runs a full scrape:
// discover race-day ids for the requested month range, fetch each event's
// results, and write the events, results, and errors CSV files. It
// coordinates the discovery, scraper, pipeline, and storage packages.
package cli
