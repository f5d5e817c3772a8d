// Package config resolves bookrec settings from defaults, an optional config
// file, BOOKREC_* environment variables and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. BOOKREC_CATALOG_PATH.
const EnvPrefix = "BOOKREC"

const (
	DefaultCatalogPath = "data/books.json"
	DefaultGenresPath  = "data/genres.json"
	DefaultProvider    = "openai"
)

// Config is the resolved application configuration.
type Config struct {
	CatalogPath string      `mapstructure:"catalog_path"`
	GenresPath  string      `mapstructure:"genres_path"`
	Verbose     bool        `mapstructure:"verbose"`
	LLM         LLMConfig   `mapstructure:"llm"`
	Trace       TraceConfig `mapstructure:"trace"`
}

// LLMConfig selects and authenticates the chat model.
type LLMConfig struct {
	Provider string `mapstructure:"provider"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	Model    string `mapstructure:"model"`
}

// TraceConfig holds optional CozeLoop credentials.
type TraceConfig struct {
	CozeLoopAPIToken    string `mapstructure:"cozeloop_api_token"`
	CozeLoopWorkspaceID string `mapstructure:"cozeloop_workspace_id"`
}

// New returns a viper instance with defaults and environment bindings.
// Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("catalog_path", DefaultCatalogPath)
	v.SetDefault("genres_path", DefaultGenresPath)
	v.SetDefault("verbose", false)
	v.SetDefault("llm.provider", DefaultProvider)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("trace.cozeloop_api_token", "")
	v.SetDefault("trace.cozeloop_workspace_id", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// conventional names used by the model SDKs and the old .env files
	_ = v.BindEnv("llm.api_key", EnvPrefix+"_LLM_API_KEY", "OPENAI_API_KEY", "API_KEY")
	_ = v.BindEnv("llm.base_url", EnvPrefix+"_LLM_BASE_URL", "BASE_URL")
	_ = v.BindEnv("llm.model", EnvPrefix+"_LLM_MODEL", "MODEL")
	_ = v.BindEnv("trace.cozeloop_api_token", EnvPrefix+"_TRACE_COZELOOP_API_TOKEN", "COZE_LOOP_API_TOKEN")
	_ = v.BindEnv("trace.cozeloop_workspace_id", EnvPrefix+"_TRACE_COZELOOP_WORKSPACE_ID", "COZELOOP_WORKSPACE_ID")

	return v
}

// Load reads the optional config file and unmarshals v into a validated Config.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that would otherwise fail later at startup.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.CatalogPath) == "" {
		return fmt.Errorf("catalog_path is required")
	}
	if strings.TrimSpace(c.GenresPath) == "" {
		return fmt.Errorf("genres_path is required")
	}

	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	switch c.LLM.Provider {
	case "openai", "gemini", "qwen":
	default:
		return fmt.Errorf("llm.provider must be one of openai, gemini, qwen (got %q)", c.LLM.Provider)
	}
	return nil
}
