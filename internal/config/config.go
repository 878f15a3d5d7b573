package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Load reads the .env file specified by TRUTHGUARD_ENV (or .env by default),
// then loads the corresponding .secret file if it exists.
// All config is flat env vars read via os.Getenv after loading.
func Load() error {
	envFile := os.Getenv("TRUTHGUARD_ENV")
	if envFile == "" {
		envFile = ".env"
	}

	// Load main env file (ignore error if file doesn't exist)
	_ = godotenv.Load(envFile)

	// Load secret sidecar if it exists
	_ = godotenv.Load(envFile + ".secret")

	return nil
}

func ServerPort() int {
	port, err := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if err != nil {
		return 8080
	}
	return port
}

func ServerAddr() string {
	return fmt.Sprintf(":%d", ServerPort())
}

// DatabaseURL enables the optional report archive when set.
func DatabaseURL() string {
	return os.Getenv("DATABASE_URL")
}

func HuggingFaceAPIKey() string {
	return os.Getenv("HF_API_KEY")
}

func OpenAIAPIKey() string {
	return os.Getenv("OPENAI_API_KEY")
}

func NewsAPIKey() string {
	return os.Getenv("NEWS_API_KEY")
}

// ClassifierProvider returns the configured zero-shot classifier provider.
// Defaults to "huggingface". Valid values: huggingface, mock.
func ClassifierProvider() string {
	p := os.Getenv("CLASSIFIER_PROVIDER")
	if p == "" {
		return "huggingface"
	}
	return p
}

// AssessorProvider returns the configured generative assessor provider.
// Defaults to "openai". Valid values: openai, mock.
func AssessorProvider() string {
	p := os.Getenv("ASSESSOR_PROVIDER")
	if p == "" {
		return "openai"
	}
	return p
}

// NewsProvider returns the configured news search provider.
// Defaults to "newsapi". Valid values: newsapi, mock.
func NewsProvider() string {
	p := os.Getenv("NEWS_PROVIDER")
	if p == "" {
		return "newsapi"
	}
	return p
}

// RetryMaxAttempts returns how many times each external call is attempted.
// Defaults to 3.
func RetryMaxAttempts() int {
	attempts, err := strconv.Atoi(os.Getenv("RETRY_MAX_ATTEMPTS"))
	if err != nil || attempts <= 0 {
		return 3
	}
	return attempts
}

// RetryAttemptTimeout returns the per-attempt timeout for external calls.
// Defaults to 30s.
func RetryAttemptTimeout() time.Duration {
	ms, err := strconv.Atoi(os.Getenv("RETRY_ATTEMPT_TIMEOUT_MS"))
	if err != nil || ms <= 0 {
		return 30 * time.Second
	}
	return time.Duration(ms) * time.Millisecond
}

// APIKey returns the optional inbound API key. Empty disables auth.
func APIKey() string {
	return os.Getenv("API_KEY")
}

// RateLimitRPS returns requests per second limit.
// Defaults to 100 if not set.
func RateLimitRPS() float64 {
	rps, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64)
	if err != nil || rps <= 0 {
		return 100
	}
	return rps
}

// RateLimitBurst returns the burst size for rate limiting.
// Defaults to 20 if not set.
func RateLimitBurst() int {
	burst, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST"))
	if err != nil || burst <= 0 {
		return 20
	}
	return burst
}

// LogLevel returns the log level (debug, info, warn, error).
// Defaults to "info" if not set.
func LogLevel() string {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		return "info"
	}
	return level
}
