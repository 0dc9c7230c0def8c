package config

import (
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	Port                  string        `env:"PORT" envDefault:"8080"`
	GeminiAPIKey          string        `env:"GEMINI_API_KEY,required,notEmpty"`
	FactsModel            string        `env:"GEMINI_FACTS_MODEL" envDefault:"gemini-2.5-flash"`
	ImageModel            string        `env:"GEMINI_IMAGE_MODEL" envDefault:"gemini-3-pro-image-preview"`
	RetryMax              int           `env:"RETRY_MAX" envDefault:"3"`
	RetryBaseDelay        time.Duration `env:"RETRY_BASE_DELAY" envDefault:"2s"`
	MaxUploadMB           int           `env:"MAX_UPLOAD_MB" envDefault:"25"`
	AllowedOriginSuffixes []string      `env:"ALLOWED_ORIGIN_SUFFIXES" envSeparator:"," envDefault:"vercel.app"`
	LogLevel              string        `env:"LOG_LEVEL" envDefault:"info"`
	GitSHA                string        `env:"GIT_SHA"`
	BuildTime             string        `env:"BUILD_TIME"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
