// Package monthrange parses the user-supplied month interval and derives the
// month sequence and output file names for a run.
package monthrange

import (
	"fmt"
	"strconv"
	"time"
)

// Month is one calendar month of the requested interval. The site's agenda
// dropdowns take the year as-is and the month without a leading zero, so both
// are kept as strings in that form.
type Month struct {
	Year  string
	Month string
}

// Range is an inclusive month interval.
type Range struct {
	start time.Time
	end   time.Time
	// raw bounds, kept for file naming
	startText string
	endText   string
}

// Parse validates a "YYYY-MM" pair and returns the inclusive range. The end
// month must not precede the start month.
func Parse(start, end string) (*Range, error) {
	s, err := parseMonth(start)
	if err != nil {
		return nil, fmt.Errorf("invalid start month %q: %w", start, err)
	}
	e, err := parseMonth(end)
	if err != nil {
		return nil, fmt.Errorf("invalid end month %q: %w", end, err)
	}
	if e.Before(s) {
		return nil, fmt.Errorf("end month %s precedes start month %s", end, start)
	}
	return &Range{start: s, end: e, startText: start, endText: end}, nil
}

func parseMonth(s string) (time.Time, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("want YYYY-MM: %w", err)
	}
	return t, nil
}

// Months enumerates every month of the range in chronological order.
func (r *Range) Months() []Month {
	months := make([]Month, 0, 12)
	for t := r.start; !t.After(r.end); t = t.AddDate(0, 1, 0) {
		months = append(months, Month{
			Year:  strconv.Itoa(t.Year()),
			Month: strconv.Itoa(int(t.Month())),
		})
	}
	return months
}

// fileName builds "{prefix}_{startYYYYMM}to{endYYYYMM}.csv". The hyphen-free
// bound format matches the original output convention, so downstream
// consumers of existing files keep working.
func (r *Range) fileName(prefix string) string {
	return fmt.Sprintf("%s_%sto%s.csv",
		prefix, r.start.Format("200601"), r.end.Format("200601"))
}

// EventsFile returns the events CSV name for this range.
func (r *Range) EventsFile() string { return r.fileName("events") }

// ResultsFile returns the results CSV name for this range.
func (r *Range) ResultsFile() string { return r.fileName("results") }

// ErrorsFile returns the error-log CSV name for this range.
func (r *Range) ErrorsFile() string { return r.fileName("errors") }

// String returns the range as entered, start to end.
func (r *Range) String() string {
	return r.startText + " to " + r.endText
}
