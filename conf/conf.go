// Package conf reads the deployment configuration from the environment.
package conf

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ctforge/backend/matchwin"
	"github.com/ctforge/backend/scoring"
)

type Config struct {
	HttpAddress string

	JwtKey      []byte
	FlagHmacKey []byte

	TaskTable       string
	UserTable       string
	ScoreboardTable string

	RedisAddr string // empty disables the scoreboard read cache

	Window  matchwin.Window
	Scoring scoring.Config
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		HttpAddress:     getEnvDefault("HTTP_ADDRESS", ":8080"),
		TaskTable:       getEnvDefault("DDB_TASK_TABLE", "CtfTasks"),
		UserTable:       getEnvDefault("DDB_USER_TABLE", "CtfUsers"),
		ScoreboardTable: getEnvDefault("DDB_SCOREBOARD_TABLE", "CtfScoreboard"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
	}

	jwtKey := os.Getenv("JWT_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_KEY is not set")
	}
	cfg.JwtKey = []byte(jwtKey)

	flagKey := os.Getenv("FLAG_HMAC_KEY")
	if flagKey == "" {
		return nil, fmt.Errorf("FLAG_HMAC_KEY is not set")
	}
	cfg.FlagHmacKey = []byte(flagKey)

	window, err := windowFromEnv()
	if err != nil {
		return nil, err
	}
	cfg.Window = window

	scoringCfg, err := scoringFromEnv()
	if err != nil {
		return nil, err
	}
	cfg.Scoring = scoringCfg

	return cfg, nil
}

func windowFromEnv() (matchwin.Window, error) {
	window := matchwin.Window{}

	timerEnabled, err := getEnvBool("MATCH_TIMER_ENABLED", true)
	if err != nil {
		return window, err
	}
	window.TimerEnabled = timerEnabled

	start, err := getEnvTime("MATCH_START")
	if err != nil {
		return window, err
	}
	window.Start = start

	end, err := getEnvTime("MATCH_END")
	if err != nil {
		return window, err
	}
	window.End = end

	return window, nil
}

func scoringFromEnv() (scoring.Config, error) {
	cfg := scoring.Config{}

	dynamic, err := getEnvBool("DYNAMIC_SCORING", true)
	if err != nil {
		return cfg, err
	}
	cfg.Dynamic = dynamic

	min, err := getEnvFloat("MIN_POINTS", 50)
	if err != nil {
		return cfg, err
	}
	cfg.MinPoints = min

	max, err := getEnvFloat("MAX_POINTS", 500)
	if err != nil {
		return cfg, err
	}
	cfg.MaxPoints = max

	if cfg.MinPoints > cfg.MaxPoints {
		return cfg, fmt.Errorf("MIN_POINTS must not exceed MAX_POINTS")
	}

	return cfg, nil
}

func getEnvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, val)
	}
	return parsed, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	val := os.Getenv(key)
	if val == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number, got %q", key, val)
	}
	return parsed, nil
}

// getEnvTime parses an optional RFC3339 instant; unset means no bound.
func getEnvTime(key string) (*time.Time, error) {
	val := os.Getenv(key)
	if val == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return nil, fmt.Errorf("%s must be RFC3339, got %q", key, val)
	}
	return &parsed, nil
}
