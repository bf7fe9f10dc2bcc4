package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	PostgresURI     string
	RedisURI        string
	Port            string
	FrontendURL     string
	MediaWatchDir   string
	Timezone        string
	OpenAIKey       string
	GeminiKey       string
	DeepseekKey     string
	DefaultUser     string
	UseBestTimeAI   bool
	SweepSpec       string
	DefaultProvider string
}

func LoadConfig() *Config {
	watchDir := getEnv("MEDIA_WATCH_DIR", "")
	if watchDir == "" {
		cwd, _ := os.Getwd()
		watchDir = filepath.Join(cwd, "media_watch")
	}

	return &Config{
		PostgresURI:     getEnv("POSTGRES_URI", ""),
		RedisURI:        getEnv("REDIS_URI", "127.0.0.1:6379"),
		Port:            getEnv("PORT", "3000"),
		FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:5173"),
		MediaWatchDir:   watchDir,
		Timezone:        getEnv("SCHEDULER_TIMEZONE", "UTC"),
		OpenAIKey:       getEnv("OPENAI_API_KEY", ""),
		GeminiKey:       getEnv("GEMINI_API_KEY", ""),
		DeepseekKey:     getEnv("DEEPSEEK_API_KEY", ""),
		DefaultUser:     getEnv("DEFAULT_USER_EMAIL", "demo@example.com"),
		UseBestTimeAI:   getEnv("USE_BEST_TIME_AI", "true") == "true",
		SweepSpec:       getEnv("PUBLISH_SWEEP_SPEC", "@every 0h1m0s"),
		DefaultProvider: getEnv("AI_PROVIDER", "openai"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
