// Package config loads coursegen settings from defaults, an optional YAML
// file, a .env file and COURSEGEN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/coursegen/internal/llm"
)

// EnvPrefix is prepended to every environment variable, with dots in keys
// replaced by underscores: llm.primary.api_key -> COURSEGEN_LLM_PRIMARY_API_KEY.
const EnvPrefix = "COURSEGEN"

// Config holds all application configuration.
type Config struct {
	DB         DBConfig         `mapstructure:"db"`
	HTTP       HTTPConfig       `mapstructure:"http"`
	Log        LogConfig        `mapstructure:"log"`
	LLM        LLMConfig        `mapstructure:"llm"`
	Generation GenerationConfig `mapstructure:"generation"`
	Search     SearchConfig     `mapstructure:"search"`
	Grading    GradingConfig    `mapstructure:"grading"`
}

type DBConfig struct {
	// Path is a SQLite file path or a postgres:// URL. Empty means the
	// default per-user data location.
	Path string `mapstructure:"path"`
}

type HTTPConfig struct {
	Addr    string `mapstructure:"addr"`
	GinMode string `mapstructure:"gin_mode"`
}

type LogConfig struct {
	// Mode is "dev" or "prod".
	Mode string `mapstructure:"mode"`
}

type BackendConfig struct {
	Provider string `mapstructure:"provider"`
	APIKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
	BaseURL  string `mapstructure:"base_url"`
}

type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	InitialWait time.Duration `mapstructure:"initial_wait"`
	MaxWait     time.Duration `mapstructure:"max_wait"`
}

type LLMConfig struct {
	Primary   BackendConfig `mapstructure:"primary"`
	Secondary BackendConfig `mapstructure:"secondary"`
	Timeout   time.Duration `mapstructure:"timeout"`
	Retry     RetryConfig   `mapstructure:"retry"`
}

type GenerationConfig struct {
	MaxChapters    int           `mapstructure:"max_chapters"`
	MaxWorkers     int           `mapstructure:"max_workers"`
	MinLessons     int           `mapstructure:"min_lessons"`
	MaxLessons     int           `mapstructure:"max_lessons"`
	ChapterTimeout time.Duration `mapstructure:"chapter_timeout"`
}

type TavilyConfig struct {
	APIKey   string  `mapstructure:"api_key"`
	BaseURL  string  `mapstructure:"base_url"`
	MinScore float64 `mapstructure:"min_score"`
}

type PineconeConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Host      string `mapstructure:"host"`
	Namespace string `mapstructure:"namespace"`
	TopK      int    `mapstructure:"top_k"`
}

type YouTubeConfig struct {
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	MaxResults int64  `mapstructure:"max_results"`
}

type RedisConfig struct {
	URL string        `mapstructure:"url"`
	TTL time.Duration `mapstructure:"ttl"`
}

type SearchConfig struct {
	Tavily   TavilyConfig   `mapstructure:"tavily"`
	Pinecone PineconeConfig `mapstructure:"pinecone"`
	YouTube  YouTubeConfig  `mapstructure:"youtube"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type GradingConfig struct {
	PassThreshold float64 `mapstructure:"pass_threshold"`
	FallbackScore int     `mapstructure:"fallback_score"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.path", "")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.gin_mode", "release")
	v.SetDefault("log.mode", "dev")

	v.SetDefault("llm.primary.provider", llm.ProviderCerebras)
	v.SetDefault("llm.primary.api_key", "")
	v.SetDefault("llm.primary.model", "qwen-coder")
	v.SetDefault("llm.primary.base_url", "")
	v.SetDefault("llm.secondary.provider", "")
	v.SetDefault("llm.secondary.api_key", "")
	v.SetDefault("llm.secondary.model", "")
	v.SetDefault("llm.secondary.base_url", "")
	v.SetDefault("llm.timeout", "2m")
	v.SetDefault("llm.retry.max_attempts", 3)
	v.SetDefault("llm.retry.initial_wait", "1s")
	v.SetDefault("llm.retry.max_wait", "10s")

	v.SetDefault("generation.max_chapters", 5)
	v.SetDefault("generation.max_workers", 4)
	v.SetDefault("generation.min_lessons", 5)
	v.SetDefault("generation.max_lessons", 8)
	v.SetDefault("generation.chapter_timeout", "10m")

	v.SetDefault("search.tavily.api_key", "")
	v.SetDefault("search.tavily.base_url", "https://api.tavily.com")
	v.SetDefault("search.tavily.min_score", 0.5)
	v.SetDefault("search.pinecone.api_key", "")
	v.SetDefault("search.pinecone.host", "")
	v.SetDefault("search.pinecone.namespace", "pennapps")
	v.SetDefault("search.pinecone.top_k", 3)
	v.SetDefault("search.youtube.api_key", "")
	v.SetDefault("search.youtube.base_url", "")
	v.SetDefault("search.youtube.max_results", 5)
	v.SetDefault("search.redis.url", "")
	v.SetDefault("search.redis.ttl", "24h")

	v.SetDefault("grading.pass_threshold", 0.7)
	v.SetDefault("grading.fallback_score", 50)
}

// Provider-native variable names are honoured after the prefixed ones.
var envAliases = map[string][]string{
	"llm.primary.api_key":     {"CEREBRAS_API_KEY"},
	"search.tavily.api_key":   {"TAVILY_API_KEY"},
	"search.pinecone.api_key": {"PINECONE_API_KEY"},
	"search.youtube.api_key":  {"YOUTUBE_API_KEY"},
	"search.redis.url":        {"REDIS_URL"},
}

// Load reads configuration. path names an explicit YAML file; when empty,
// ./coursegen.yaml is used if present. A .env file in the working directory
// is loaded first without overriding variables already set.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("coursegen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, aliases := range envAliases {
		names := append([]string{envName(key)}, aliases...)
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Validate checks numeric ranges. LLM backends are validated when the
// provider is built, so read-only commands work without credentials.
func (c *Config) Validate() error {
	g := c.Generation
	switch {
	case g.MaxChapters < 1:
		return fmt.Errorf("generation.max_chapters must be positive, got %d", g.MaxChapters)
	case g.MaxWorkers < 1:
		return fmt.Errorf("generation.max_workers must be positive, got %d", g.MaxWorkers)
	case g.MinLessons < 1 || g.MaxLessons < g.MinLessons:
		return fmt.Errorf("generation lessons range %d..%d is invalid", g.MinLessons, g.MaxLessons)
	}
	if t := c.Grading.PassThreshold; t <= 0 || t > 1 {
		return fmt.Errorf("grading.pass_threshold must be in (0, 1], got %v", t)
	}
	if s := c.Grading.FallbackScore; s < 0 || s > 100 {
		return fmt.Errorf("grading.fallback_score must be in [0, 100], got %d", s)
	}
	return nil
}

// LLMSettings converts the llm section to the facade's configuration.
func (c *Config) LLMSettings() llm.Config {
	def := llm.DefaultConfig()
	return llm.Config{
		Primary:   llm.BackendConfig(c.LLM.Primary),
		Secondary: llm.BackendConfig(c.LLM.Secondary),
		Timeout:   c.LLM.Timeout,
		Retry: llm.RetryConfig{
			MaxAttempts: c.LLM.Retry.MaxAttempts,
			InitialWait: c.LLM.Retry.InitialWait,
			MaxWait:     c.LLM.Retry.MaxWait,
			Multiplier:  def.Retry.Multiplier,
		},
	}
}
