package race

// Event represents one race day discovered on the ndr.nl agenda.
type Event struct {
	// Koersdag is the site-issued token identifying the race day. It is the
	// only field the results pipeline needs; the rest is context carried
	// through to the events file.
	Koersdag string
	DateText string
	Month    string
	Year     string
}

// Table is one race's finishing table as parsed from HTML: a header row and
// raw positional data rows. An empty Table (no header, no rows) means the
// race block carried no table, which is a valid state, not an error.
type Table struct {
	Header []string
	Rows   [][]string
}

// Empty reports whether the table has no header and no rows.
func (t Table) Empty() bool {
	return len(t.Header) == 0 && len(t.Rows) == 0
}

// Meta holds the race fields that live outside the table markup. Every field
// is broadcast unchanged onto each row of the race's table.
type Meta struct {
	Number       string
	Time         string
	Title        string
	Descriptions []string // up to three, positional
	DateTrack    string
	Infos        string
}

// Block is one race within an event's results page.
type Block struct {
	Ordinal int
	Table   Table
	Meta    Meta
}

// Rows merges the block's table with its metadata and the owning event id,
// producing one column-name-to-value map per finisher. Missing description
// slots are left unset here; the schema normalizer fills them with empty
// strings.
func (b *Block) Rows(eventID string) []map[string]string {
	out := make([]map[string]string, 0, len(b.Table.Rows))
	for _, raw := range b.Table.Rows {
		row := make(map[string]string, len(b.Table.Header)+8)
		for i, col := range b.Table.Header {
			if i < len(raw) {
				row[col] = raw[i]
			}
		}
		row["event"] = eventID
		row["race_number"] = b.Meta.Number
		row["race_time"] = b.Meta.Time
		row["race_title"] = b.Meta.Title
		row["date_track"] = b.Meta.DateTrack
		row["race_infos"] = b.Meta.Infos
		for i, desc := range b.Meta.Descriptions {
			if i > 2 {
				break
			}
			switch i {
			case 0:
				row["description1"] = desc
			case 1:
				row["description2"] = desc
			case 2:
				row["description3"] = desc
			}
		}
		out = append(out, row)
	}
	return out
}
