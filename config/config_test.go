package config

import "testing"

func TestParseGenreTags(t *testing.T) {
	tags, err := parseGenreTags("Metroidvania:1628, Platformer:1625,Souls-like:29482")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 3 {
		t.Fatalf("got %d tags, want 3", len(tags))
	}
	if tags[0].Name != "Metroidvania" || tags[0].ID != 1628 {
		t.Errorf("tags[0] = %+v; want {Metroidvania 1628}", tags[0])
	}
	if tags[1].Name != "Platformer" || tags[1].ID != 1625 {
		t.Errorf("tags[1] = %+v; want {Platformer 1625}", tags[1])
	}
}

func TestParseGenreTagsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"duplicate name", "Action:19,Action:21"},
		{"duplicate id", "Action:19,Adventure:19"},
		{"missing separator", "Action19"},
		{"non-numeric id", "Action:nineteen"},
		{"negative id", "Action:-19"},
		{"empty name", ":19"},
		{"empty mapping", " , , "},
	}

	for _, tt := range tests {
		if _, err := parseGenreTags(tt.raw); err == nil {
			t.Errorf("%s: parseGenreTags(%q) should fail", tt.name, tt.raw)
		}
	}
}
