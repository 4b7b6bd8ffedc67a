package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mjansen/ndr-results/internal/race"
)

// parseTable extracts a race block's finishing table. No table element, or a
// table whose first row carries no header cells, yields an empty Table; that
// is a valid outcome (some agenda entries render without results), not an
// error.
//
// Rows that disagree with the header's arity are reconciled here: short rows
// are padded with empty strings, long rows truncated. The site does produce
// the occasional ragged row (a spanning remark cell), and downstream code
// assumes header arity.
func parseTable(sel *goquery.Selection) race.Table {
	table := sel.Find("table").First()
	if table.Length() == 0 {
		return race.Table{}
	}

	trs := table.Find("tr")
	if trs.Length() == 0 {
		return race.Table{}
	}

	header := make([]string, 0)
	trs.First().Find("th").Each(func(_ int, cell *goquery.Selection) {
		header = append(header, cleanCell(cell.Text()))
	})
	if len(header) == 0 {
		return race.Table{}
	}

	rows := make([][]string, 0, trs.Length()-1)
	trs.Slice(1, trs.Length()).Each(func(_ int, tr *goquery.Selection) {
		row := make([]string, 0, len(header))
		tr.Find("td").Each(func(_ int, cell *goquery.Selection) {
			row = append(row, cleanCell(cell.Text()))
		})
		for len(row) < len(header) {
			row = append(row, "")
		}
		rows = append(rows, row[:len(header)])
	})

	return race.Table{Header: header, Rows: rows}
}

// cleanCell trims a cell's text and collapses internal whitespace runs
// (including newlines from nested markup) to single spaces.
func cleanCell(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
