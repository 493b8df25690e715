package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"steam-scraper/models"
	"steam-scraper/utils"
)

// PostgresWriter persists collected game rows to PostgreSQL.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, waits for it to come
// up, runs schema migrations, and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(dsn string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{
		MaxAttempts: 10,
		BaseDelay:   2 * time.Second,
		Logger:      logger,
	}
	if err := retry.Do("postgres-ping", db.Ping); err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(); err != nil {
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate() error {
	// (appid, genre) is the natural key: per-genre runs legitimately store
	// the same app once per matching genre.
	_, err := pw.db.Exec(`
		CREATE TABLE IF NOT EXISTS games (
			id                    SERIAL PRIMARY KEY,
			appid                 VARCHAR(20)  NOT NULL,
			name                  TEXT         NOT NULL,
			release_year          INT          NOT NULL,
			genre                 VARCHAR(100) NOT NULL,
			price_text            TEXT         NOT NULL DEFAULT '',
			price_value           NUMERIC(12,2) NOT NULL DEFAULT 0,
			currency              VARCHAR(4)   NOT NULL DEFAULT '',
			discount_percent      VARCHAR(8)   NOT NULL DEFAULT '0%',
			reviews_steamspy      INT          NOT NULL DEFAULT 0,
			revenue_steamspy      TEXT         NOT NULL DEFAULT '0',
			reviews_all_languages INT          NOT NULL DEFAULT 0,
			revenue_all_languages TEXT         NOT NULL DEFAULT '0',
			scraped_at            TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
			UNIQUE (appid, genre)
		);

		CREATE INDEX IF NOT EXISTS idx_games_genre        ON games(genre);
		CREATE INDEX IF NOT EXISTS idx_games_release_year ON games(release_year);
		CREATE INDEX IF NOT EXISTS idx_games_reviews_all  ON games(reviews_all_languages);
	`)
	return err
}

// Clear deletes all existing games from the table.
func (pw *PostgresWriter) Clear() error {
	_, err := pw.db.Exec("DELETE FROM games")
	if err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}
	return nil
}

// Write batch-inserts ALL collected games, clearing old data first.
func (pw *PostgresWriter) Write(games []*models.GameRecord) error {
	if len(games) == 0 {
		return nil
	}

	if err := pw.Clear(); err != nil {
		return err
	}

	const batchSize = 50
	for i := 0; i < len(games); i += batchSize {
		end := i + batchSize
		if end > len(games) {
			end = len(games)
		}
		if err := pw.insertBatch(games[i:end]); err != nil {
			return err
		}
	}
	return nil
}

func (pw *PostgresWriter) insertBatch(batch []*models.GameRecord) error {
	const cols = 13
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, g := range batch {
		base := idx * cols
		placeholders := make([]string, cols)
		for j := 0; j < cols; j++ {
			placeholders[j] = fmt.Sprintf("$%d", base+j+1)
		}
		valueStrings = append(valueStrings, "("+strings.Join(placeholders, ",")+")")
		valueArgs = append(valueArgs,
			g.AppID, g.Name, g.ReleaseYear, g.Genre,
			g.Price, g.PriceValue, g.Currency, g.DiscountPercent,
			g.TotalReviewsSteamSpy, g.EstimatedRevenueSteamSpy,
			g.TotalReviewsAllLanguages, g.EstimatedRevenueAllLanguages,
			g.ScrapedAt,
		)
	}

	query := fmt.Sprintf(`
		INSERT INTO games (
			appid, name, release_year, genre,
			price_text, price_value, currency, discount_percent,
			reviews_steamspy, revenue_steamspy,
			reviews_all_languages, revenue_all_languages,
			scraped_at
		)
		VALUES %s
		ON CONFLICT (appid, genre) DO NOTHING
	`, strings.Join(valueStrings, ","))

	_, err := pw.db.Exec(query, valueArgs...)
	return err
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}

// FetchAll retrieves all stored games in insertion order — used by the
// insight service.
func (pw *PostgresWriter) FetchAll() ([]*models.GameRecord, error) {
	rows, err := pw.db.Query(`
		SELECT appid, name, release_year, genre,
		       price_text, price_value, currency, discount_percent,
		       reviews_steamspy, revenue_steamspy,
		       reviews_all_languages, revenue_all_languages,
		       scraped_at
		FROM games
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var games []*models.GameRecord
	for rows.Next() {
		g := &models.GameRecord{}
		if err := rows.Scan(
			&g.AppID, &g.Name, &g.ReleaseYear, &g.Genre,
			&g.Price, &g.PriceValue, &g.Currency, &g.DiscountPercent,
			&g.TotalReviewsSteamSpy, &g.EstimatedRevenueSteamSpy,
			&g.TotalReviewsAllLanguages, &g.EstimatedRevenueAllLanguages,
			&g.ScrapedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		games = append(games, g)
	}
	return games, rows.Err()
}
