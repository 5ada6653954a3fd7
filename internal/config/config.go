package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Gemini   Gemini   `mapstructure:"gemini"`
	Research Research `mapstructure:"research"`
	Loader   Loader   `mapstructure:"loader"`
	Scraper  Scraper  `mapstructure:"scraper"`
	Storage  Storage  `mapstructure:"storage"`
	MCP      MCP      `mapstructure:"mcp"`
	API      API      `mapstructure:"api"`
}

// Gemini holds model gateway configuration.
type Gemini struct {
	APIKey          string        `mapstructure:"api_key"`
	BaseURL         string        `mapstructure:"base_url"`
	Model           string        `mapstructure:"model"`
	Timeout         time.Duration `mapstructure:"timeout"` // per request, applied by callers
	Temperature     float64       `mapstructure:"temperature"`
	TopK            int           `mapstructure:"top_k"`
	TopP            float64       `mapstructure:"top_p"`
	MaxOutputTokens int           `mapstructure:"max_output_tokens"`
}

// Research holds query and summary pipeline configuration.
type Research struct {
	Seed            uint64 `mapstructure:"seed"`
	MaxParallel     int    `mapstructure:"max_parallel"`
	MaxContentChars int    `mapstructure:"max_content_chars"`
}

// Loader holds local file loading configuration.
type Loader struct {
	MaxFileBytes int64 `mapstructure:"max_file_bytes"`
}

// Scraper holds web scraping configuration.
type Scraper struct {
	Delay       time.Duration `mapstructure:"delay"`
	MaxDepth    int           `mapstructure:"max_depth"`
	FollowLinks bool          `mapstructure:"follow_links"`
	Timeout     time.Duration `mapstructure:"timeout"`
	UserAgent   string        `mapstructure:"user_agent"`
}

// Storage holds S3/MinIO storage configuration.
type Storage struct {
	Endpoint        string `mapstructure:"endpoint"`
	Bucket          string `mapstructure:"bucket"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	Region          string `mapstructure:"region"`
	MaxObjectBytes  int64  `mapstructure:"max_object_bytes"`
}

// MCP holds MCP server configuration.
type MCP struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Root    string `mapstructure:"root"` // paths tool argument is confined here; "" disables it
}

// API holds HTTP API configuration.
type API struct {
	Addr         string `mapstructure:"addr"`
	MaxBodyBytes int64  `mapstructure:"max_body_bytes"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Gemini: Gemini{
			BaseURL:         "https://generativelanguage.googleapis.com/v1",
			Model:           "gemini-1.5-flash",
			Timeout:         60 * time.Second,
			Temperature:     0.2,
			TopK:            40,
			TopP:            0.9,
			MaxOutputTokens: 4096,
		},
		Research: Research{
			Seed:            0,
			MaxParallel:     4,
			MaxContentChars: 20000,
		},
		Loader: Loader{
			MaxFileBytes: 10 << 20,
		},
		Scraper: Scraper{
			Delay:       500 * time.Millisecond,
			MaxDepth:    1, // the given pages only
			FollowLinks: false,
			Timeout:     30 * time.Second,
			UserAgent:   "docqa/1.0",
		},
		Storage: Storage{
			Endpoint:        "localhost:9000",
			Bucket:          "docqa",
			AccessKeyID:     "minioadmin",
			SecretAccessKey: "minioadmin",
			UseSSL:          false,
			MaxObjectBytes:  10 << 20,
		},
		MCP: MCP{
			Name:    "docqa",
			Version: "1.0.0",
			Root:    ".",
		},
		API: API{
			Addr:         ":8080",
			MaxBodyBytes: 32 << 20,
		},
	}
}

// envBindings maps config keys to DOCQA_ environment variables.
var envBindings = []string{
	"gemini.api_key",
	"gemini.base_url",
	"gemini.model",
	"gemini.timeout",
	"gemini.temperature",
	"gemini.top_k",
	"gemini.top_p",
	"gemini.max_output_tokens",
	"research.seed",
	"research.max_parallel",
	"research.max_content_chars",
	"loader.max_file_bytes",
	"scraper.delay",
	"scraper.max_depth",
	"scraper.follow_links",
	"scraper.timeout",
	"scraper.user_agent",
	"storage.endpoint",
	"storage.bucket",
	"storage.access_key_id",
	"storage.secret_access_key",
	"storage.use_ssl",
	"storage.region",
	"storage.max_object_bytes",
	"mcp.name",
	"mcp.version",
	"mcp.root",
	"api.addr",
	"api.max_body_bytes",
}

// Load merges defaults, the config file and environment overrides.
// An empty file searches ./config, /etc/docqa and . for config.yaml; a
// missing file is not an error.
func Load(file string) (Config, error) {
	cfg := Defaults()
	v := viper.New()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/docqa")
		v.AddConfigPath(".")
	}

	// DOCQA_GEMINI_API_KEY -> gemini.api_key
	v.SetEnvPrefix("DOCQA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range envBindings {
		v.BindEnv(key, "DOCQA_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")))
	}
	// The conventional Gemini variable is honoured too.
	v.BindEnv("gemini.api_key", "DOCQA_GEMINI_API_KEY", "GEMINI_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
