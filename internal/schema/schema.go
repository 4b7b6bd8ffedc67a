package schema

// Master is the canonical ordered column list for the results CSV: the event
// and race metadata first, then the union of all finishing-table columns the
// site's race variants use. The odd casing and punctuation ("nr.", "na 1e",
// "COTE") mirror the site's own header cells and must not be normalized, or
// source columns would stop matching.
var Master = []string{
	"event",
	"date_track",
	"race_time",
	"race_number",
	"race_title",
	"description1",
	"description2",
	"description3",
	"race_infos",
	"nr.",
	"paard",
	"rijder",
	"afstand",
	"startnummer",
	"startnr",
	"box",
	"tijd",
	"na 1e",
	"Hcap",
	"prijs",
	"COTE",
}

// Columns returns a copy of the master schema so callers cannot mutate the
// shared column order.
func Columns() []string {
	out := make([]string, len(Master))
	copy(out, Master)
	return out
}

// Normalize projects each row map onto the given schema: one value per schema
// column, in schema order, empty string for absent columns. Columns not in
// the schema are dropped. Every emitted row therefore has identical arity
// regardless of which race variant produced it.
func Normalize(rows []map[string]string, columns []string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		rec := make([]string, len(columns))
		for i, col := range columns {
			rec[i] = row[col]
		}
		out = append(out, rec)
	}
	return out
}
