package storage

import "steam-scraper/models"

// GameWriter is the interface any storage backend must satisfy.
type GameWriter interface {
	Write(games []*models.GameRecord) error
	Close() error
}
