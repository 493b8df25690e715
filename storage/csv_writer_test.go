package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"steam-scraper/models"
)

func TestCSVWriterHeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "games.csv")

	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}

	games := []*models.GameRecord{
		{
			AppID: "367520", Name: "Hollow Knight", ReleaseYear: 2017, Genre: "Metroidvania",
			Price: "₩15,000", DiscountPercent: "25%",
			TotalReviewsSteamSpy: 120, EstimatedRevenueSteamSpy: "₩90,000,000",
			TotalReviewsAllLanguages: 1000, EstimatedRevenueAllLanguages: "₩750,000,000",
		},
	}
	if err := w.Write(games); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want header + 1 row", len(records))
	}

	wantHeader := []string{
		"AppID", "Name", "ReleaseYear", "Genre",
		"Price", "DiscountPercent",
		"TotalReviews_SteamSpy", "EstimatedRevenue_SteamSpy",
		"TotalReviews_AllLanguages", "EstimatedRevenue_AllLanguages",
	}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d]: got %q, want %q", i, records[0][i], col)
		}
	}

	row := records[1]
	if row[0] != "367520" || row[2] != "2017" || row[5] != "25%" || row[9] != "₩750,000,000" {
		t.Errorf("unexpected row contents: %v", row)
	}
}
