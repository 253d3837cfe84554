package config

import "os"

// Config carries runtime settings. Environment variables are read once at
// startup (after godotenv has loaded .env) instead of being consulted ad hoc.
type Config struct {
	DBDriver string
	DBDSN    string
	Port     string
	Limits   Limits
}

// Limits holds every field constraint the validators enforce. It is passed
// explicitly into validator and service construction so rule thresholds are
// visible at the wiring site.
type Limits struct {
	MaxNameLength        int
	MaxEmailLength       int
	MaxPhoneLength       int
	MaxDescriptionLength int
	MaxNotesLength       int
	MinPrice             float64
	MinPeople            int
	MaxPeople            int
}

func DefaultLimits() Limits {
	return Limits{
		MaxNameLength:        100,
		MaxEmailLength:       150,
		MaxPhoneLength:       20,
		MaxDescriptionLength: 500,
		MaxNotesLength:       1000,
		MinPrice:             0.01,
		MinPeople:            1,
		MaxPeople:            20,
	}
}

func Load() Config {
	return Config{
		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBDSN:    getEnv("DB_DSN", "backoffice.db?_foreign_keys=on"),
		Port:     getEnv("PORT", "8080"),
		Limits:   DefaultLimits(),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
