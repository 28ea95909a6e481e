// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
)

const (
	// DefaultConfigDir is the directory name for horizon configuration.
	DefaultConfigDir = ".horizon"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultHistoryFile is the default lookup history database name.
	DefaultHistoryFile = "history.db"
	// DefaultEnvFile is the dotenv file loaded before environment overrides.
	DefaultEnvFile = ".env"
)

// LLM providers.
const (
	ProviderArk    = "ark"
	ProviderOpenAI = "openai"
)

// Catalog providers.
const (
	CatalogIGDB     = "igdb"
	CatalogSnapshot = "snapshot"
)

// Default endpoints.
const (
	DefaultArkBaseURL     = "https://ark.cn-beijing.volces.com/api/v3"
	DefaultOpenAIBaseURL  = "https://api.openai.com/v1"
	DefaultIGDBBaseURL    = "https://api.igdb.com/v4"
	DefaultTwitchTokenURL = "https://id.twitch.tv/oauth2/token"
	DefaultOpenAIModel    = "gpt-4o-mini"
	DefaultServerAddr     = ":8000"
)

// Config holds static infrastructure configuration (read-only after load).
type Config struct {
	LLM         LLMConfig         `yaml:"llm,omitempty"`
	Catalog     CatalogConfig     `yaml:"catalog,omitempty"`
	Translation TranslationConfig `yaml:"translation,omitempty"`
	Notability  NotabilityConfig  `yaml:"notability,omitempty"`
	Server      ServerConfig      `yaml:"server,omitempty"`
	Logging     LoggingConfig     `yaml:"logging,omitempty"`
	History     HistoryConfig     `yaml:"history,omitempty"`
}

// LLMConfig holds configuration for the LLM provider.
type LLMConfig struct {
	Provider string `yaml:"provider,omitempty"`
	// Model is the model name, or the inference endpoint id for Ark.
	Model                   string `yaml:"model,omitempty"`
	APIKey                  string `yaml:"api_key,omitempty"`
	BaseURL                 string `yaml:"base_url,omitempty"`
	MaxTokens               int    `yaml:"max_tokens,omitempty"`
	DetailTimeoutSeconds    int    `yaml:"detail_timeout_seconds,omitempty"`
	TranslateTimeoutSeconds int    `yaml:"translate_timeout_seconds,omitempty"`
}

// CatalogConfig holds configuration for the game catalog.
type CatalogConfig struct {
	Provider     string `yaml:"provider,omitempty"`
	ClientID     string `yaml:"client_id,omitempty"`
	ClientSecret string `yaml:"client_secret,omitempty"`
	BaseURL      string `yaml:"base_url,omitempty"`
	TokenURL     string `yaml:"token_url,omitempty"`
	Platform     string `yaml:"platform,omitempty"`
	SnapshotPath string `yaml:"snapshot_path,omitempty"`
}

// TranslationConfig holds configuration for localized names.
type TranslationConfig struct {
	Language  string `yaml:"language,omitempty"`
	BatchSize int    `yaml:"batch_size,omitempty"`
}

// NotabilityConfig holds configuration for the notable game classifier.
type NotabilityConfig struct {
	HypeThreshold   int      `yaml:"hype_threshold,omitempty"`
	ExtraDevelopers []string `yaml:"extra_developers,omitempty"`
}

// ServerConfig holds configuration for the HTTP API.
type ServerConfig struct {
	Addr string `yaml:"addr,omitempty"`
}

// LoggingConfig holds configuration for logging.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// HistoryConfig holds configuration for the lookup history database.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			Provider:                ProviderOpenAI,
			DetailTimeoutSeconds:    30,
			TranslateTimeoutSeconds: 60,
		},
		Catalog: CatalogConfig{
			Provider: CatalogIGDB,
			BaseURL:  DefaultIGDBBaseURL,
			TokenURL: DefaultTwitchTokenURL,
			Platform: entities.DefaultPlatformName,
		},
		Translation: TranslationConfig{
			Language:  "zh-Hans",
			BatchSize: 5,
		},
		Notability: NotabilityConfig{
			HypeThreshold: entities.DefaultHypeThreshold,
		},
		Server: ServerConfig{
			Addr: DefaultServerAddr,
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// Load loads configuration from the .horizon directory in the given path.
// A missing config file is not an error: defaults and the environment apply.
func Load(basePath string) (*Config, error) {
	_ = godotenv.Load(filepath.Join(basePath, DefaultEnvFile))

	// Start with defaults
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Apply environment variable overrides
	cfg.applyEnvOverrides()
	cfg.applyProviderDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides. Credentials only
// fill values the config file left empty. Ark is preferred over OpenAI.
func (c *Config) applyEnvOverrides() {
	if c.LLM.APIKey == "" {
		arkKey, arkEndpoint := os.Getenv("ARK_API_KEY"), os.Getenv("ARK_ENDPOINT_ID")
		openaiKey := os.Getenv("OPENAI_API_KEY")

		switch {
		case arkKey != "" && arkEndpoint != "":
			c.LLM.Provider = ProviderArk
			c.LLM.APIKey = arkKey
			c.LLM.Model = arkEndpoint
			if base := os.Getenv("ARK_API_BASE"); base != "" {
				c.LLM.BaseURL = base
			}
		case openaiKey != "":
			c.LLM.Provider = ProviderOpenAI
			c.LLM.APIKey = openaiKey
			if base := os.Getenv("OPENAI_API_BASE"); base != "" {
				c.LLM.BaseURL = base
			}
		}
	}
	if model := os.Getenv("LLM_MODEL"); model != "" && c.LLM.Provider == ProviderOpenAI {
		c.LLM.Model = model
	}

	if id := os.Getenv("TWITCH_CLIENT_ID"); id != "" && c.Catalog.ClientID == "" {
		c.Catalog.ClientID = id
	}
	if secret := os.Getenv("TWITCH_CLIENT_SECRET"); secret != "" && c.Catalog.ClientSecret == "" {
		c.Catalog.ClientSecret = secret
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if addr := os.Getenv("HORIZON_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
}

// applyProviderDefaults fills the model only for OpenAI. Ark models are
// endpoint ids and have no sensible default.
func (c *Config) applyProviderDefaults() {
	if c.LLM.Provider == ProviderOpenAI && c.LLM.Model == "" {
		c.LLM.Model = DefaultOpenAIModel
	}
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderArk, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown llm provider %q", c.LLM.Provider)
	}

	switch c.Catalog.Provider {
	case CatalogIGDB:
	case CatalogSnapshot:
		if c.Catalog.SnapshotPath == "" {
			return errors.New("catalog.snapshot_path is required for the snapshot provider")
		}
	default:
		return fmt.Errorf("unknown catalog provider %q", c.Catalog.Provider)
	}

	if _, err := entities.PlatformID(c.Catalog.Platform); err != nil {
		return err
	}
	if _, err := entities.ParseTargetLanguage(c.Translation.Language); err != nil {
		return err
	}
	if c.Translation.BatchSize < 0 {
		return fmt.Errorf("translation.batch_size must not be negative, got %d", c.Translation.BatchSize)
	}
	return nil
}

// Configured reports whether the LLM has the credentials it needs.
func (l LLMConfig) Configured() bool {
	return l.APIKey != "" && l.Model != ""
}

// Endpoint returns the base URL, defaulting per provider.
func (l LLMConfig) Endpoint() string {
	if l.BaseURL != "" {
		return strings.TrimRight(l.BaseURL, "/")
	}
	if l.Provider == ProviderArk {
		return DefaultArkBaseURL
	}
	return DefaultOpenAIBaseURL
}

// DetailTimeout returns the per-request timeout for detail fetches.
func (l LLMConfig) DetailTimeout() time.Duration {
	return time.Duration(l.DetailTimeoutSeconds) * time.Second
}

// TranslateTimeout returns the per-batch timeout for translations.
func (l LLMConfig) TranslateTimeout() time.Duration {
	return time.Duration(l.TranslateTimeoutSeconds) * time.Second
}

// Configured reports whether the catalog can be queried.
func (c CatalogConfig) Configured() bool {
	if c.Provider == CatalogSnapshot {
		return c.SnapshotPath != ""
	}
	return c.ClientID != "" && c.ClientSecret != ""
}

// PlatformID returns the catalog id of the configured platform.
func (c CatalogConfig) PlatformID() int64 {
	id, err := entities.PlatformID(c.Platform)
	if err != nil {
		return entities.PlatformSwitch
	}
	return id
}

// NotableDevelopers returns the built-in allow-list extended with configured names.
func (n NotabilityConfig) NotableDevelopers() entities.NotableDevelopers {
	return entities.DefaultNotableDevelopers().With(n.ExtraDevelopers...)
}

// ConfigDir returns the path to the .horizon config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// HistoryPath returns the lookup history database path, resolving relative
// paths against the config directory.
func (c *Config) HistoryPath(basePath string) string {
	switch {
	case c.History.Path == "":
		return filepath.Join(ConfigDir(basePath), DefaultHistoryFile)
	case filepath.IsAbs(c.History.Path):
		return c.History.Path
	default:
		return filepath.Join(ConfigDir(basePath), c.History.Path)
	}
}

// SnapshotPath resolves the catalog snapshot path against basePath.
func (c *Config) SnapshotPath(basePath string) string {
	if c.Catalog.SnapshotPath == "" || filepath.IsAbs(c.Catalog.SnapshotPath) {
		return c.Catalog.SnapshotPath
	}
	return filepath.Join(basePath, c.Catalog.SnapshotPath)
}
