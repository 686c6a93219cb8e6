package cmd

import (
	"os"
	"strconv"
)

// Config holds the application settings read from the environment.
type Config struct {
	ParamsFile string
	LogLevel   string
	LogFile    string
	Addr       string
	Cache      bool // cache HTTP responses for the day
}

// NewConfig loads the configuration from environment variables, the command
// line flags take precedence.
func NewConfig() *Config {
	cfg := &Config{
		ParamsFile: getEnv("SCE_PARAMS_FILE", ""),
		LogLevel:   getEnv("SCE_LOG_LEVEL", "info"),
		LogFile:    getEnv("SCE_LOG_FILE", ""),
		Addr:       getEnv("SCE_ADDR", ":8080"),
		Cache:      true,
	}
	if v, err := strconv.ParseBool(getEnv("SCE_CACHE", "true")); err == nil {
		cfg.Cache = v
	}
	if *paramsFile != "" {
		cfg.ParamsFile = *paramsFile
	}
	if *logFile != "" {
		cfg.LogFile = *logFile
	}
	if *Verbose {
		cfg.LogLevel = "debug"
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
