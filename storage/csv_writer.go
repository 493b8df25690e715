package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"steam-scraper/models"
)

// csvHeader is the fixed column set downstream tooling depends on; order
// must be preserved exactly.
var csvHeader = []string{
	"AppID", "Name", "ReleaseYear", "Genre",
	"Price", "DiscountPercent",
	"TotalReviews_SteamSpy", "EstimatedRevenue_SteamSpy",
	"TotalReviews_AllLanguages", "EstimatedRevenue_AllLanguages",
}

// CSVWriter writes collected game rows to a CSV file.
// It is safe for concurrent use.
type CSVWriter struct {
	mu     sync.Mutex
	file   *os.File
	writer *csv.Writer
}

// NewCSVWriter creates (or truncates) the CSV file at the given path and
// writes the header row. Intermediate directories are created automatically.
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	w := csv.NewWriter(f)

	if err := w.Write(csvHeader); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("csv: write header: %w", err)
	}
	w.Flush()

	return &CSVWriter{file: f, writer: w}, nil
}

// Write appends all game rows to the CSV file in the given order.
func (c *CSVWriter) Write(games []*models.GameRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, g := range games {
		row := []string{
			g.AppID,
			g.Name,
			strconv.Itoa(g.ReleaseYear),
			g.Genre,
			g.Price,
			g.DiscountPercent,
			strconv.Itoa(g.TotalReviewsSteamSpy),
			g.EstimatedRevenueSteamSpy,
			strconv.Itoa(g.TotalReviewsAllLanguages),
			g.EstimatedRevenueAllLanguages,
		}
		if err := c.writer.Write(row); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}

	c.writer.Flush()
	return c.writer.Error()
}

// Close flushes and closes the underlying file.
func (c *CSVWriter) Close() error {
	c.writer.Flush()
	return c.file.Close()
}
