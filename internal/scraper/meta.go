package scraper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mjansen/ndr-results/internal/race"
)

// ErrMalformedBlock marks a race block missing the metadata elements the
// site's markup contract guarantees. The race is skipped; its siblings in the
// same event are still processed.
var ErrMalformedBlock = errors.New("malformed race block")

const maxDescriptions = 3

// parseMeta extracts the race fields rendered outside the table: race number
// and start time from their own divs, title from the heading inside the
// titel div, zero to three description spans mapped positionally, and the
// date/track pair.
//
// The date/track contract is fixed-position: the titel div always carries
// exactly two ndr-koers-datum-baan spans, the first holding date and track,
// the second the race infos line. Fewer than two means the block is
// malformed.
func parseMeta(sel *goquery.Selection) (race.Meta, error) {
	meta := race.Meta{
		Number: strings.TrimSpace(sel.Find("div.ndr-koers-naam").First().Text()),
		Time:   strings.TrimSpace(sel.Find("div.ndr-koers-tijd").First().Text()),
	}

	titel := sel.Find("div.ndr-koers-titel").First()
	meta.Title = strings.TrimSpace(titel.Find("h2").First().Text())

	titel.Find("span.ndr-koers-omschrijving").Each(func(_ int, desc *goquery.Selection) {
		if len(meta.Descriptions) < maxDescriptions {
			meta.Descriptions = append(meta.Descriptions, strings.TrimSpace(desc.Text()))
		}
	})

	datumBaan := titel.Find("span.ndr-koers-datum-baan")
	if datumBaan.Length() < 2 {
		return race.Meta{}, fmt.Errorf("%w: %d date-track spans, need 2",
			ErrMalformedBlock, datumBaan.Length())
	}
	meta.DateTrack = strings.TrimSpace(datumBaan.Eq(0).Text())
	meta.Infos = strings.TrimSpace(datumBaan.Eq(1).Text())

	return meta, nil
}
