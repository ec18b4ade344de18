package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig       `toml:"app"`
	Storage   StorageConfig   `toml:"storage"`
	Extract   ExtractConfig   `toml:"extract"`
	Retrieval RetrievalConfig `toml:"retrieval"`
}

type AppConfig struct {
	Name    string `toml:"name"`
	Env     string `toml:"env"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	GinMode string `toml:"gin_mode"`
}

type StorageConfig struct {
	UploadDir   string `toml:"upload_dir"`
	OutputDir   string `toml:"output_dir"`
	MaxUploadMB int    `toml:"max_upload_mb"`
}

// ExtractConfig tunes the extraction pipeline. MinDirectTextLen is the
// decision threshold between "text PDF" and "scanned PDF": when direct
// extraction yields fewer characters than this, the OCR fallback runs.
type ExtractConfig struct {
	MinDirectTextLen int     `toml:"min_direct_text_len"`
	OCREnabled       bool    `toml:"ocr_enabled"`
	OCRLanguage      string  `toml:"ocr_language"`
	OCRDPI           float64 `toml:"ocr_dpi"`
}

type RetrievalConfig struct {
	TopK              int     `toml:"top_k"`
	MinSimilarity     float64 `toml:"min_similarity"`
	VectorizerEnabled bool    `toml:"vectorizer_enabled"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := defaultConfig()

	configPath := getEnv("CONFIG_FILE", "configs/config.toml")
	if _, err := os.Stat(configPath); err == nil {
		if _, err := toml.DecodeFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("decode config file failed: %w", err)
		}
	}

	overrideByEnv(cfg)
	return cfg, nil
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Storage.MaxUploadMB) << 20
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "docuchat",
			Env:     "dev",
			Host:    "0.0.0.0",
			Port:    8080,
			GinMode: "debug",
		},
		Storage: StorageConfig{
			UploadDir:   "uploads",
			OutputDir:   "outputs",
			MaxUploadMB: 10,
		},
		Extract: ExtractConfig{
			MinDirectTextLen: 20,
			OCREnabled:       true,
			OCRLanguage:      "eng",
			OCRDPI:           150,
		},
		Retrieval: RetrievalConfig{
			TopK:              3,
			MinSimilarity:     0.01,
			VectorizerEnabled: true,
		},
	}
}

func overrideByEnv(cfg *Config) {
	cfg.App.Name = getEnv("APP_NAME", cfg.App.Name)
	cfg.App.Env = getEnv("APP_ENV", cfg.App.Env)
	cfg.App.Host = getEnv("APP_HOST", cfg.App.Host)
	cfg.App.Port = getEnvAsInt("APP_PORT", cfg.App.Port)
	cfg.App.GinMode = getEnv("GIN_MODE", cfg.App.GinMode)

	cfg.Storage.UploadDir = getEnv("STORAGE_UPLOAD_DIR", cfg.Storage.UploadDir)
	cfg.Storage.OutputDir = getEnv("STORAGE_OUTPUT_DIR", cfg.Storage.OutputDir)
	cfg.Storage.MaxUploadMB = getEnvAsInt("STORAGE_MAX_UPLOAD_MB", cfg.Storage.MaxUploadMB)

	cfg.Extract.MinDirectTextLen = getEnvAsInt("EXTRACT_MIN_DIRECT_TEXT_LEN", cfg.Extract.MinDirectTextLen)
	cfg.Extract.OCREnabled = getEnvAsBool("EXTRACT_OCR_ENABLED", cfg.Extract.OCREnabled)
	cfg.Extract.OCRLanguage = getEnv("EXTRACT_OCR_LANGUAGE", cfg.Extract.OCRLanguage)
	cfg.Extract.OCRDPI = getEnvAsFloat("EXTRACT_OCR_DPI", cfg.Extract.OCRDPI)

	cfg.Retrieval.TopK = getEnvAsInt("RETRIEVAL_TOP_K", cfg.Retrieval.TopK)
	cfg.Retrieval.MinSimilarity = getEnvAsFloat("RETRIEVAL_MIN_SIMILARITY", cfg.Retrieval.MinSimilarity)
	cfg.Retrieval.VectorizerEnabled = getEnvAsBool("RETRIEVAL_VECTORIZER_ENABLED", cfg.Retrieval.VectorizerEnabled)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsFloat(key string, fallback float64) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
