package monthrange

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{name: "valid range", start: "2022-01", end: "2022-05"},
		{name: "single month", start: "2022-03", end: "2022-03"},
		{name: "year boundary", start: "2021-11", end: "2022-02"},
		{name: "end before start", start: "2022-05", end: "2022-01", wantErr: true},
		{name: "bad start format", start: "202201", end: "2022-05", wantErr: true},
		{name: "bad month", start: "2022-13", end: "2022-12", wantErr: true},
		{name: "empty", start: "", end: "2022-01", wantErr: true},
		{name: "day included", start: "2022-01-15", end: "2022-02", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q, %q) error = %v, wantErr %v", tt.start, tt.end, err, tt.wantErr)
			}
		})
	}
}

func TestMonths(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  []Month
	}{
		{
			name:  "single month",
			start: "2022-03",
			end:   "2022-03",
			want:  []Month{{"2022", "3"}},
		},
		{
			name:  "within a year",
			start: "2022-01",
			end:   "2022-03",
			want:  []Month{{"2022", "1"}, {"2022", "2"}, {"2022", "3"}},
		},
		{
			name:  "across a year boundary",
			start: "2021-11",
			end:   "2022-02",
			want:  []Month{{"2021", "11"}, {"2021", "12"}, {"2022", "1"}, {"2022", "2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.start, tt.end)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			got := r.Months()
			if len(got) != len(tt.want) {
				t.Fatalf("got %d months, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("month %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFileNames(t *testing.T) {
	r, err := Parse("2022-01", "2022-05")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := r.EventsFile(); got != "events_202201to202205.csv" {
		t.Errorf("EventsFile() = %q", got)
	}
	if got := r.ResultsFile(); got != "results_202201to202205.csv" {
		t.Errorf("ResultsFile() = %q", got)
	}
	if got := r.ErrorsFile(); got != "errors_202201to202205.csv" {
		t.Errorf("ErrorsFile() = %q", got)
	}
}

func TestString(t *testing.T) {
	r, err := Parse("2022-01", "2022-05")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := r.String(); got != "2022-01 to 2022-05" {
		t.Errorf("String() = %q", got)
	}
}
