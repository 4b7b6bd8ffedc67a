package discovery

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"

	"github.com/mjansen/ndr-results/internal/monthrange"
	"github.com/mjansen/ndr-results/internal/race"
)

const (
	// AgendaURL is the agenda page whose month/year selectors drive the
	// event listing.
	AgendaURL = "https://ndr.nl/selectieproeven/"
	UserAgent = "ndr-results-cli/1.0 (github.com/mjansen/ndr-results)"
	Timeout   = 30 * time.Second

	// maxRetries bounds the per-month retry budget. Unlike per-event result
	// fetches, a failed month here would silently drop every race day in it,
	// so discovery retries before giving up.
	maxRetries = 3
)

// Crawler fetches the agenda listing for one month at a time.
type Crawler struct {
	client    *http.Client
	agendaURL string
}

// New creates a Crawler against the production NDR agenda.
func New() *Crawler {
	return NewWithURL(AgendaURL)
}

// NewWithURL creates a Crawler against an alternate agenda URL. Used by tests
// to point at a local server.
func NewWithURL(agendaURL string) *Crawler {
	return &Crawler{
		client: &http.Client{
			Timeout: Timeout,
		},
		agendaURL: agendaURL,
	}
}

// FetchRange discovers all events for the given months, in month order, with
// listing order preserved within each month.
func (c *Crawler) FetchRange(months []monthrange.Month) ([]*race.Event, error) {
	events := make([]*race.Event, 0)
	for _, m := range months {
		monthEvents, err := c.FetchMonth(m)
		if err != nil {
			return nil, fmt.Errorf("discovering events for %s-%s: %w", m.Year, m.Month, err)
		}
		events = append(events, monthEvents...)
	}
	return events, nil
}

// FetchMonth fetches one month's agenda listing and returns its events.
// Transient fetch failures are retried with exponential backoff up to
// maxRetries before the month is reported as failed.
func (c *Crawler) FetchMonth(m monthrange.Month) ([]*race.Event, error) {
	var events []*race.Event

	op := func() error {
		body, err := c.fetchListing(m)
		if err != nil {
			return err
		}
		defer body.Close()

		events, err = parseListing(body, m)
		if err != nil {
			// A parse failure will not improve on retry.
			return backoff.Permanent(err)
		}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries)
	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}
	return events, nil
}

// fetchListing requests the agenda with the month and year selector values
// the site's own dropdowns submit.
func (c *Crawler) fetchListing(m monthrange.Month) (io.ReadCloser, error) {
	params := url.Values{}
	params.Set("ndr-koersen-jaar", m.Year)
	params.Set("ndr-koersen-maand", m.Month)

	sep := "?"
	if strings.Contains(c.agendaURL, "?") {
		sep = "&"
	}
	reqURL := c.agendaURL + sep + params.Encode()

	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching agenda: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// parseListing extracts agenda items from the month listing. A month with no
// race days yields an empty slice, not an error.
func parseListing(r io.Reader, m monthrange.Month) ([]*race.Event, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	events := make([]*race.Event, 0)
	doc.Find("#ndr-course-results li[class^='ndr-agenda-item']").Each(func(_ int, sel *goquery.Selection) {
		koersdag, ok := sel.Attr("data-koersdag")
		if !ok || koersdag == "" {
			return
		}
		events = append(events, &race.Event{
			Koersdag: koersdag,
			DateText: strings.TrimSpace(sel.Find("div.ndr-agenda-datum").First().Text()),
			Month:    m.Month,
			Year:     m.Year,
		})
	})
	return events, nil
}
