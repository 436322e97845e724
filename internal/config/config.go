package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Host     string
	Port     string
	LogLevel string

	// OCR engine
	OCREngine     string
	OCRLanguage   string
	OCRWorkers    int
	OCRTimeout    time.Duration
	TesseractPath string

	// Uploads
	TempDir         string
	MultipartMemory int64

	ShutdownTimeout time.Duration
}

const (
	EngineTesseract = "tesseract"
	EngineCommand   = "command"
)

func Load() (*Config, error) {
	cfg := &Config{
		Host:          getEnv("HOST", "0.0.0.0"),
		Port:          getEnv("PORT", "8000"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		OCREngine:     getEnv("OCR_ENGINE", DefaultEngine),
		OCRLanguage:   getEnv("OCR_LANGUAGE", "eng"),
		TesseractPath: getEnv("TESSERACT_PATH", "tesseract"),
		TempDir:       getEnv("TEMP_DIR", "."),
	}

	var err error
	if cfg.OCRWorkers, err = getEnvInt("OCR_WORKERS", 1); err != nil {
		return nil, err
	}
	if cfg.OCRWorkers < 1 {
		return nil, fmt.Errorf("OCR_WORKERS must be at least 1, got %d", cfg.OCRWorkers)
	}

	if cfg.OCRTimeout, err = getEnvDuration("OCR_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}

	memory, err := getEnvInt("MULTIPART_MEMORY", 32<<20)
	if err != nil {
		return nil, err
	}
	cfg.MultipartMemory = int64(memory)

	switch cfg.OCREngine {
	case EngineTesseract, EngineCommand:
	default:
		return nil, fmt.Errorf("OCR_ENGINE must be %q or %q, got %q", EngineTesseract, EngineCommand, cfg.OCREngine)
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
