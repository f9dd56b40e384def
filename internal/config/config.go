package config

import (
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AIDepth         int
	PositionalDepth int
	TieBreak        string
	AlphaBeta       bool
	Seed            int64

	TournamentGames     int
	TournamentOpponents []string
	TournamentWorkers   int

	KafkaBrokers   []string
	KafkaTopic     string
	RedisURL       string
	RedisPassword  string
	RedisResultTTL time.Duration

	ThinkDelay  time.Duration
	FirstPlayer string
	PlayLogFile string
}

var AppConfig *Config

// LoadEnv reads .env from the working directory or its parent. A missing
// file is not an error; the process environment is used as is.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("[CONFIG] No .env file found")
		}
	}
}

func LoadConfig() *Config {
	seed := GetEnvAsInt64("SEED", 0)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	tieBreak := strings.ToLower(GetEnv("TIE_BREAK", "random"))
	if tieBreak != "random" && tieBreak != "first" {
		log.Printf("[CONFIG] Unknown TIE_BREAK %q, using random", tieBreak)
		tieBreak = "random"
	}

	AppConfig = &Config{
		AIDepth:         atLeast("AI_DEPTH", GetEnvAsInt("AI_DEPTH", 4), 1),
		PositionalDepth: atLeast("POSITIONAL_DEPTH", GetEnvAsInt("POSITIONAL_DEPTH", 2), 1),
		TieBreak:        tieBreak,
		AlphaBeta:       GetEnvAsBool("ALPHA_BETA", true),
		Seed:            seed,

		TournamentGames:     atLeast("TOURNAMENT_GAMES", GetEnvAsInt("TOURNAMENT_GAMES", 10000), 1),
		TournamentOpponents: GetEnvAsList("TOURNAMENT_OPPONENTS", []string{"random", "greedy", "positional"}),
		TournamentWorkers:   atLeast("TOURNAMENT_WORKERS", GetEnvAsInt("TOURNAMENT_WORKERS", runtime.NumCPU()), 1),

		KafkaBrokers:   GetEnvAsList("KAFKA_BROKERS", nil),
		KafkaTopic:     GetEnv("KAFKA_TOPIC", "tournament-results"),
		RedisURL:       GetEnv("REDIS_URL", ""),
		RedisPassword:  GetEnv("REDIS_PASSWORD", ""),
		RedisResultTTL: time.Duration(GetEnvAsInt("REDIS_RESULT_TTL_HOURS", 24)) * time.Hour,

		ThinkDelay:  time.Duration(GetEnvAsInt("THINK_DELAY_MS", 500)) * time.Millisecond,
		FirstPlayer: strings.ToLower(GetEnv("FIRST_PLAYER", "random")),
		PlayLogFile: GetEnv("PLAY_LOG_FILE", ""),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("[CONFIG] Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[CONFIG] Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsList splits a comma separated value, dropping blank entries.
func GetEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}

func atLeast(key string, value, minimum int) int {
	if value < minimum {
		log.Printf("[CONFIG] %s must be at least %d, got %d", key, minimum, value)
		return minimum
	}
	return value
}
