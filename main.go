package main

import (
	"fmt"
	"os"

	"steam-scraper/config"
	"steam-scraper/scraper/steam"
	"steam-scraper/services"
	"steam-scraper/storage"
	"steam-scraper/utils"
)

func main() {
	logger := utils.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration: %v", err)
		os.Exit(1)
	}

	logger.Info("=== Steam Indie Catalog Scraper starting ===")
	logger.Info("Config — mode: %s | genres: %d | years: %d–%d | page cap: %d",
		cfg.Mode, len(cfg.GenreTags), cfg.YearMin, cfg.YearMax, cfg.MaxPages)

	csvWriter, err := storage.NewCSVWriter(cfg.CSVOutputPath)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
		os.Exit(1)
	}
	defer csvWriter.Close()

	pgWriter, err := storage.NewPostgresWriter(cfg.DSN(), logger)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL: %v", err)
		logger.Error("Make sure Docker is running: docker compose up -d")
		os.Exit(1)
	}
	defer pgWriter.Close()

	steamScraper := steam.New(cfg, logger)
	games, err := steamScraper.Scrape()
	if err != nil {
		logger.Error("Steam scrape failed: %v", err)
	}

	if len(games) == 0 {
		logger.Error("No games were collected. Exiting.")
		os.Exit(1)
	}

	logger.Info("Collected %d games — writing to CSV...", len(games))

	if err := csvWriter.Write(games); err != nil {
		logger.Error("CSV write failed: %v", err)
	} else {
		logger.Info("Game dataset saved to %s", cfg.CSVOutputPath)
	}

	if err := pgWriter.Write(games); err != nil {
		logger.Error("PostgreSQL write failed: %v", err)
	} else {
		logger.Info("Game dataset stored in PostgreSQL (table: games)")
	}

	dbGames, err := pgWriter.FetchAll()
	if err != nil {
		logger.Error("Failed to fetch games from DB for insights: %v", err)
		dbGames = games
	}

	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(dbGames)
	insightSvc.Print(report)

	fmt.Printf("  Done. Dataset → %s | Clean data → PostgreSQL (games table)\n\n",
		cfg.CSVOutputPath)
}
