package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port string

	// Content source
	ContentRoot string
	ExcludeDirs []string

	// Scan limits
	MaxFileBytes int64

	// Filesystem watching
	Watch          bool
	RescanDebounce time.Duration

	// Rendering
	HighlightStyle string
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		ContentRoot: os.Getenv("CONTENT_ROOT"),
		ExcludeDirs: envList("EXCLUDE_DIRS"),

		MaxFileBytes: envInt64("MAX_FILE_BYTES", 2*1024*1024), // 2MB

		Watch:          envBool("WATCH", true),
		RescanDebounce: envDuration("RESCAN_DEBOUNCE", 500*time.Millisecond),

		HighlightStyle: envOr("HIGHLIGHT_STYLE", "github"),
	}

	if cfg.MaxFileBytes <= 0 {
		cfg.MaxFileBytes = 2 * 1024 * 1024
	}
	if cfg.RescanDebounce <= 0 {
		cfg.RescanDebounce = 500 * time.Millisecond
	}

	return cfg
}

func (c Config) Validate() error {
	if c.ContentRoot == "" {
		return fmt.Errorf("CONTENT_ROOT is required")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
