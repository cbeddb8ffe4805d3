// Package config reads the handful of server/solver knobs from the
// environment, in the same os.Getenv-with-defaults idiom the logger
// package uses for LOG_LEVEL.
package config

import (
	"os"
	"strconv"
)

// Config bundles the search-context knobs (heuristic fan-out widths,
// endgame cutoff, cache shape) plus the HTTP front door's own
// PORT/LOG_LEVEL.
type Config struct {
	Port      string
	LogLevel  string
	NTops1    int
	NTops2    int
	ECut      int
	CacheRows int
	CacheCols int
}

// Load reads Config from the environment, falling back to defaults
// sized for a 5-letter bank.
func Load() Config {
	return Config{
		Port:      getString("PORT", "8080"),
		LogLevel:  getString("LOG_LEVEL", "info"),
		NTops1:    getInt("NTOPS1", 1000),
		NTops2:    getInt("NTOPS2", 20),
		ECut:      getInt("ECUT", 15),
		CacheRows: getInt("CACHE_ROWS", 64),
		CacheCols: getInt("CACHE_COLS", 16),
	}
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
