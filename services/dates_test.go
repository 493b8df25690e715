package services

import "testing"

func TestParseReleaseYear(t *testing.T) {
	tests := []struct {
		text     string
		wantYear int
		wantOK   bool
	}{
		{"24 Jun, 2021", 2021, true},
		{"Jun 24, 2021", 2021, true},
		{"2021년 6월 24일", 2021, true},
		{"1 Feb, 2013", 2013, true},
		{"Q4 2021", 2021, true},
		{"2019", 2019, true},
		{"Coming soon", 0, false},
		{"출시예정", 0, false},
		{"To be announced", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		year, ok := ParseReleaseYear(tt.text)
		if year != tt.wantYear || ok != tt.wantOK {
			t.Errorf("ParseReleaseYear(%q) = (%d, %v); want (%d, %v)",
				tt.text, year, ok, tt.wantYear, tt.wantOK)
		}
	}
}
