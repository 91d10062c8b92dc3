package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"esportsbot/sources"
)

var ErrMissingTelegramToken = errors.New("TG_TOKEN is required")

type Config struct {
	TelegramToken string
	TelegramDebug bool
	PollTimeout   int
	LogLevel      string

	CacheTTL         time.Duration
	FallbackCacheTTL time.Duration
	RequestTimeout   time.Duration
	Location         *time.Location

	PandaScoreToken string
	PandaScoreGame  string

	HLTVAPIURL     string
	HLTVMatchesURL string
	LiquipediaURL  string
	OddsPortalURL  string
	PandaScoreURL  string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cacheTTL, err := getEnvDuration("CACHE_TTL", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	fallbackTTL, err := getEnvDuration("FALLBACK_CACHE_TTL", cacheTTL)
	if err != nil {
		return nil, err
	}
	requestTimeout, err := getEnvDuration("REQUEST_TIMEOUT", sources.DefaultTimeout)
	if err != nil {
		return nil, err
	}
	pollTimeout, err := strconv.Atoi(getEnv("POLL_TIMEOUT", "50"))
	if err != nil {
		return nil, fmt.Errorf("parse POLL_TIMEOUT: %w", err)
	}
	location, err := time.LoadLocation(getEnv("TIMEZONE", "Europe/Moscow"))
	if err != nil {
		return nil, fmt.Errorf("load TIMEZONE: %w", err)
	}

	cfg := &Config{
		TelegramToken: getEnv("TG_TOKEN", ""),
		TelegramDebug: getEnv("TG_DEBUG", "false") == "true",
		PollTimeout:   pollTimeout,
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		CacheTTL:         cacheTTL,
		FallbackCacheTTL: fallbackTTL,
		RequestTimeout:   requestTimeout,
		Location:         location,

		PandaScoreToken: getEnv("PANDASCORE_TOKEN", ""),
		PandaScoreGame:  getEnv("PANDASCORE_GAME", "csgo"),

		HLTVAPIURL:     getEnv("HLTV_API_URL", sources.HLTVMirrorURL),
		HLTVMatchesURL: getEnv("HLTV_MATCHES_URL", sources.HLTVMatchesURL),
		LiquipediaURL:  getEnv("LIQUIPEDIA_URL", sources.LiquipediaURL),
		OddsPortalURL:  getEnv("ODDSPORTAL_URL", sources.OddsPortalURL),
		PandaScoreURL:  getEnv("PANDASCORE_URL", sources.PandaScoreURL),
	}

	if cfg.TelegramToken == "" {
		return nil, ErrMissingTelegramToken
	}

	logger.Info().
		Str("log_level", cfg.LogLevel).
		Dur("cache_ttl", cfg.CacheTTL).
		Dur("fallback_cache_ttl", cfg.FallbackCacheTTL).
		Dur("request_timeout", cfg.RequestTimeout).
		Str("timezone", cfg.Location.String()).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}
