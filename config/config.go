package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Indie is the Steam tag id every crawl is anchored on.
const Indie = 492

// defaultGenreTags mirrors the genre set the dataset was originally built
// from. Overridable via GENRE_TAGS="Name:id,Name:id,...".
const defaultGenreTags = "Metroidvania:1628,Platformer:1625,Souls-like:29482"

// Config holds all application configuration loaded from environment variables.
type Config struct {
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	// Mode selects the crawl strategy: "genres" runs one pass per entry in
	// GenreTags (indie tag crossed with the genre tag), "all" runs a single
	// pass over the bare indie tag.
	Mode      string
	GenreTags []GenreTag

	YearMin  int
	YearMax  int
	MaxPages int

	RowDelay       time.Duration
	PageDelay      time.Duration
	RequestTimeout time.Duration

	StoreBaseURL    string
	SteamSpyBaseURL string
	Locale          string
	CountryCode     string

	CSVOutputPath string
}

// GenreTag maps a human-readable genre label to its Steam tag id.
type GenreTag struct {
	Name string
	ID   int
}

// Load reads the .env file and returns a populated, validated Config struct.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	cfg := &Config{
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "scraper"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "scraper123"),
		PostgresDB:       getEnv("POSTGRES_DB", "steam_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		Mode: getEnv("SCRAPE_MODE", "genres"),

		YearMin:  getEnvInt("YEAR_MIN", 2013),
		YearMax:  getEnvInt("YEAR_MAX", 2025),
		MaxPages: getEnvInt("MAX_PAGES", 0),

		RowDelay:       getEnvDuration("ROW_DELAY_MS", 500),
		PageDelay:      getEnvDuration("PAGE_DELAY_MS", 1000),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT_MS", 10000),

		StoreBaseURL:    getEnv("STORE_BASE_URL", "https://store.steampowered.com"),
		SteamSpyBaseURL: getEnv("STEAMSPY_BASE_URL", "https://steamspy.com"),
		Locale:          getEnv("STORE_LOCALE", "english"),
		CountryCode:     getEnv("STORE_COUNTRY", "US"),

		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", "./output/IndieGameDetailList.csv"),
	}

	if cfg.Mode != "genres" && cfg.Mode != "all" {
		return nil, fmt.Errorf("config: SCRAPE_MODE must be \"genres\" or \"all\", got %q", cfg.Mode)
	}
	if cfg.YearMin > cfg.YearMax {
		return nil, fmt.Errorf("config: YEAR_MIN %d exceeds YEAR_MAX %d", cfg.YearMin, cfg.YearMax)
	}

	tags, err := parseGenreTags(getEnv("GENRE_TAGS", defaultGenreTags))
	if err != nil {
		return nil, err
	}
	cfg.GenreTags = tags

	return cfg, nil
}

// parseGenreTags parses a "Name:id,Name:id" mapping, rejecting duplicate
// names and duplicate tag ids.
func parseGenreTags(raw string) ([]GenreTag, error) {
	var tags []GenreTag
	seenNames := make(map[string]struct{})
	seenIDs := make(map[int]struct{})

	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, idStr, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("config: malformed GENRE_TAGS entry %q (want Name:id)", entry)
		}
		name = strings.TrimSpace(name)
		id, err := strconv.Atoi(strings.TrimSpace(idStr))
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("config: invalid tag id in GENRE_TAGS entry %q", entry)
		}
		if name == "" {
			return nil, fmt.Errorf("config: empty genre name in GENRE_TAGS entry %q", entry)
		}
		if _, dup := seenNames[name]; dup {
			return nil, fmt.Errorf("config: duplicate genre name %q in GENRE_TAGS", name)
		}
		if _, dup := seenIDs[id]; dup {
			return nil, fmt.Errorf("config: duplicate tag id %d in GENRE_TAGS", id)
		}
		seenNames[name] = struct{}{}
		seenIDs[id] = struct{}{}
		tags = append(tags, GenreTag{Name: name, ID: id})
	}

	if len(tags) == 0 {
		return nil, fmt.Errorf("config: GENRE_TAGS resolved to an empty mapping")
	}
	return tags, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallbackMs int) time.Duration {
	return time.Duration(getEnvInt(key, fallbackMs)) * time.Millisecond
}
