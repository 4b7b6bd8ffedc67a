// Package scraper provides HTTP fetching and HTML parsing for NDR race results.
//
// The scraper fetches one event's printable results page from ndr.nl and
// extracts every race on it: the finishing table between the table tags plus
// the metadata (race number, start time, title, descriptions, date/track
// line) rendered above the table. Parsed races are normalized into the fixed
// result schema before being returned, so every row leaves this package with
// the same column set.
//
// The markup contract is hard-coded to ndr.nl's print view: race blocks are
// div.ndr-koers-titelbalk elements, and the date/track line always consists
// of exactly two ndr-koers-datum-baan spans. A race missing that pair is
// skipped as malformed rather than failing the whole event.
package scraper
