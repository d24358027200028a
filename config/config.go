package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	AnalyzerTransformer = "transformer"
	AnalyzerVader       = "vader"

	LanguageEnglish = "english"
	LanguageSpanish = "spanish"
)

type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"dev"`
	Port   int    `env:"PORT" envDefault:"8080"`

	YouTubeAPIKey string `env:"YOUTUBE_API_KEY,required"`

	// ANALYSIS_LANGUAGE selects the stop-word list and the classification
	// model. Required: guessing the language produces garbage labels.
	AnalysisLanguage string `env:"ANALYSIS_LANGUAGE,required"`

	Analyzer     string `env:"ANALYZER" envDefault:"transformer"`
	ModelEnglish string `env:"MODEL_ENGLISH" envDefault:"j-hartmann/emotion-english-distilroberta-base"`
	ModelSpanish string `env:"MODEL_SPANISH" envDefault:"finiteautomata/beto-emotion-analysis"`
	ModelDir     string `env:"MODEL_DIR" envDefault:"./models"`

	MaxComments     int           `env:"MAX_COMMENTS" envDefault:"50"`
	OutputDir       string        `env:"OUTPUT_DIR" envDefault:"output"`
	PipelineTimeout time.Duration `env:"PIPELINE_TIMEOUT" envDefault:"25s"`
	YouTubeRPS      float64       `env:"YOUTUBE_RPS" envDefault:"5"`

	ValkeyAddress  string `env:"VALKEY_INIT_ADDRESS"`
	ValkeyPassword string `env:"VALKEY_PASSWORD"`
	ValkeyTLS      bool   `env:"VALKEY_TLS"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.AnalysisLanguage != LanguageEnglish && cfg.AnalysisLanguage != LanguageSpanish {
		return nil, fmt.Errorf("unsupported ANALYSIS_LANGUAGE %q, must be %q or %q",
			cfg.AnalysisLanguage, LanguageEnglish, LanguageSpanish)
	}
	if cfg.Analyzer != AnalyzerTransformer && cfg.Analyzer != AnalyzerVader {
		return nil, fmt.Errorf("unsupported ANALYZER %q, must be %q or %q",
			cfg.Analyzer, AnalyzerTransformer, AnalyzerVader)
	}
	if cfg.MaxComments <= 0 {
		return nil, fmt.Errorf("MAX_COMMENTS must be positive, got %d", cfg.MaxComments)
	}

	return cfg, nil
}

// Model returns the classification model for the configured language.
func (c *Config) Model() string {
	if c.AnalysisLanguage == LanguageSpanish {
		return c.ModelSpanish
	}
	return c.ModelEnglish
}
