package scraper

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/mjansen/ndr-results/internal/logger"
	"github.com/mjansen/ndr-results/internal/race"
	"github.com/mjansen/ndr-results/internal/schema"
)

const (
	// BaseURL is the root of the NDR print plugin that serves the
	// per-event results pages.
	BaseURL   = "https://ndr.nl/wp-content/plugins/ndr"
	UserAgent = "ndr-results-cli/1.0 (github.com/mjansen/ndr-results)"

	// Timeout bounds a single results-page fetch. The site can be very slow
	// on large historical race days.
	Timeout = 120 * time.Second
)

// Fetcher retrieves and parses one event's race results at a time.
type Fetcher struct {
	client  *http.Client
	baseURL string
	columns []string
}

// New creates a Fetcher against the production NDR site using the master
// result schema.
func New() *Fetcher {
	return NewWithOptions(BaseURL, Timeout)
}

// NewWithOptions creates a Fetcher with an alternate base URL and fetch
// timeout. Tests point it at a local server; the CLI wires the configured
// endpoint and timeout.
func NewWithOptions(baseURL string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		columns: schema.Columns(),
	}
}

// EventURL returns the results-page URL for one event id. The id is the only
// variable component; the remaining parameters select the print view the
// parser expects.
func (f *Fetcher) EventURL(eventID string) string {
	return fmt.Sprintf(
		"%s/ndr-print.php?action=do_search&koersdag=%s&koersnr=1&isAgenda=0&paard=false",
		f.baseURL, url.QueryEscape(eventID),
	)
}

// FetchResults fetches one event's results page and returns its normalized
// result rows. An event with no races, or whose races all carry empty tables,
// yields zero rows and no error. Network errors, non-200 responses, and
// structural faults while combining races are returned as errors; the caller
// decides how to record them. Each event is fetched exactly once, no retries.
func (f *Fetcher) FetchResults(eventID string) ([][]string, error) {
	reqURL := f.EventURL(eventID)

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching results page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return f.parseResults(resp.Body, eventID)
}

// parseResults extracts all race blocks from a results page, in document
// order, and unions their normalized rows.
func (f *Fetcher) parseResults(r io.Reader, eventID string) ([][]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	results := make([][]string, 0)

	var combineErr error
	doc.Find("div.ndr-koers-titelbalk").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		block, err := parseBlock(i, sel)
		if err != nil {
			// Malformed race: skip it, keep the event's other races.
			logger.Warn("skipping malformed race block", logger.Fields{
				"event":   eventID,
				"ordinal": i,
				"reason":  err.Error(),
			})
			return true
		}

		rows := schema.Normalize(block.Rows(eventID), f.columns)
		for _, row := range rows {
			if len(row) != len(f.columns) {
				combineErr = fmt.Errorf("race %d: row has %d columns, schema has %d",
					i, len(row), len(f.columns))
				return false
			}
		}
		results = append(results, rows...)
		return true
	})
	if combineErr != nil {
		return nil, fmt.Errorf("combining race tables: %w", combineErr)
	}

	return results, nil
}

// parseBlock builds one race.Block from its titelbalk element.
func parseBlock(ordinal int, sel *goquery.Selection) (*race.Block, error) {
	meta, err := parseMeta(sel)
	if err != nil {
		return nil, err
	}
	return &race.Block{
		Ordinal: ordinal,
		Table:   parseTable(sel),
		Meta:    meta,
	}, nil
}
