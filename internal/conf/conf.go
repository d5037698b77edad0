package conf

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/flowstate-live/flowstate/internal/biz/domain"
	"github.com/flowstate-live/flowstate/internal/biz/usecase"
)

// Profile selects a set of deployment defaults
type Profile string

const (
	// ProfileProduction is tuned for hosted LLM rate limits and busy chats
	ProfileProduction Profile = "production"
	// ProfileLocal is tuned for a local model and quick feedback
	ProfileLocal Profile = "local"
)

// LLM providers
const (
	ProviderOllama = "ollama"
	ProviderGroq   = "groq"
)

// Config represents application configuration
type Config struct {
	// HTTP / websocket listener
	Server ServerConfig

	// Deployment profile the defaults below were taken from
	Profile Profile

	// Completion service
	LLM LLMConfig

	// Chat source
	YouTube YouTubeConfig

	// Per-session pipeline timings
	Pipeline PipelineConfig

	// Spam heuristics
	Spam SpamConfigValues

	// Pulse and session-run archive
	Archive ArchiveConfig

	// Prompts configuration (loaded from YAML)
	Prompts *PromptsConfig

	// Log level: debug, info, warn, error
	LogLevel string

	// Debug mode
	Debug bool
}

// ServerConfig contains listener configuration
type ServerConfig struct {
	Host string
	Port int
}

// LLMConfig contains completion service configuration
type LLMConfig struct {
	Provider    string
	OllamaURL   string
	OllamaModel string
	GroqURL     string
	GroqAPIKey  string
	GroqModel   string
}

// YouTubeConfig contains chat source configuration
type YouTubeConfig struct {
	APIKey string
}

// PipelineConfig contains pipeline timing values
type PipelineConfig struct {
	PollIntervalMs   int
	VibeIntervalSec  int
	VibeBatchSize    int
	PulseIntervalSec int
	PulseMinMessages int
	BufferSize       int
}

// SpamConfigValues contains spam heuristic values
type SpamConfigValues struct {
	Threshold           float64
	EscalationThreshold float64
	RapidFireCount      int
	RapidFireConfidence float64
	RapidFireWindowSec  int
	HistoryWindowSec    int
	HistoryMax          int
}

// ArchiveConfig contains archive configuration
type ArchiveConfig struct {
	DBPath         string // empty disables the archive
	RetentionHours int
}

// profileDefaults are the values that differ between deployment profiles
type profileDefaults struct {
	vibeIntervalSec     int
	vibeBatchSize       int
	rapidFireCount      int
	rapidFireConfidence float64
}

var profiles = map[Profile]profileDefaults{
	// Hosted providers allow about 30 requests a minute; pulses get priority over vibes,
	// and rapid-fire alone only triggers the AI check.
	ProfileProduction: {vibeIntervalSec: 30, vibeBatchSize: 3, rapidFireCount: 5, rapidFireConfidence: 0.6},
	ProfileLocal:      {vibeIntervalSec: 3, vibeBatchSize: 10, rapidFireCount: 3, rapidFireConfidence: 0.8},
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	profile := Profile(strings.ToLower(envString("DEPLOY_PROFILE", string(ProfileProduction))))
	defaults, ok := profiles[profile]
	if !ok {
		profile = ProfileProduction
		defaults = profiles[ProfileProduction]
	}

	port := envInt("PORT", 0)
	if port == 0 {
		port = envInt("WEBSOCKET_PORT", 8765)
	}

	// Archive DB path
	archivePath := os.Getenv("ARCHIVE_DB_PATH")
	switch strings.ToLower(archivePath) {
	case "":
		homeDir, _ := os.UserHomeDir()
		archivePath = filepath.Join(homeDir, ".flowstate", "archive.db")
	case "off", "none", "disabled":
		archivePath = ""
	}

	// Load prompts from YAML
	promptsConfig, err := LoadPromptsConfig(os.Getenv("PROMPTS_CONFIG_PATH"))
	if err != nil {
		promptsConfig = DefaultPromptsConfig()
	}

	return &Config{
		Server: ServerConfig{
			Host: envString("HTTP_HOST", "0.0.0.0"),
			Port: port,
		},
		Profile: profile,
		LLM: LLMConfig{
			Provider:    strings.ToLower(envString("LLM_PROVIDER", ProviderOllama)),
			OllamaURL:   envString("OLLAMA_URL", "http://localhost:11434/v1"),
			OllamaModel: envString("OLLAMA_MODEL", "qwen2.5:3b"),
			GroqURL:     envString("GROQ_URL", "https://api.groq.com/openai/v1"),
			GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
			GroqModel:   envString("GROQ_MODEL", "llama-3.1-8b-instant"),
		},
		YouTube: YouTubeConfig{
			APIKey: os.Getenv("YOUTUBE_API_KEY"),
		},
		Pipeline: PipelineConfig{
			PollIntervalMs:   envInt("POLL_INTERVAL_MS", 500),
			VibeIntervalSec:  envInt("VIBE_CHECK_INTERVAL_SECONDS", defaults.vibeIntervalSec),
			VibeBatchSize:    envInt("VIBE_BATCH_SIZE", defaults.vibeBatchSize),
			PulseIntervalSec: envInt("PULSE_INTERVAL_SECONDS", 120),
			PulseMinMessages: envInt("PULSE_MIN_MESSAGES", 10),
			BufferSize:       envInt("PULSE_BUFFER_SIZE", 100),
		},
		Spam: SpamConfigValues{
			Threshold:           envFloat("SPAM_THRESHOLD", 0.7),
			EscalationThreshold: envFloat("SPAM_ESCALATION_THRESHOLD", 0.5),
			RapidFireCount:      envInt("RAPID_FIRE_COUNT", defaults.rapidFireCount),
			RapidFireConfidence: envFloat("RAPID_FIRE_CONFIDENCE", defaults.rapidFireConfidence),
			RapidFireWindowSec:  envInt("RAPID_FIRE_WINDOW_SECONDS", 10),
			HistoryWindowSec:    envInt("HISTORY_WINDOW_SECONDS", 60),
			HistoryMax:          envInt("HISTORY_MAX_PER_AUTHOR", 20),
		},
		Archive: ArchiveConfig{
			DBPath:         archivePath,
			RetentionHours: envInt("ARCHIVE_RETENTION_HOURS", 168),
		},
		Prompts:  promptsConfig,
		LogLevel: strings.ToLower(envString("LOG_LEVEL", "info")),
		Debug:    os.Getenv("DEBUG") == "true",
	}
}

func envString(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func envInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			return parsed
		}
	}
	return def
}

// Address returns the listen address
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ActiveProvider returns the provider actually used. Groq without an API key falls back to Ollama.
func (c *LLMConfig) ActiveProvider() string {
	if c.Provider == ProviderGroq && c.GroqAPIKey != "" {
		return ProviderGroq
	}
	return ProviderOllama
}

// Endpoint returns the base URL, API key and model of the active provider
func (c *LLMConfig) Endpoint() (baseURL, apiKey, model string) {
	if c.ActiveProvider() == ProviderGroq {
		return c.GroqURL, c.GroqAPIKey, c.GroqModel
	}
	// Ollama ignores the key, but the client refuses an empty one
	return c.OllamaURL, "ollama", c.OllamaModel
}

// ToSessionConfig converts to domain session configuration
func (c *PipelineConfig) ToSessionConfig() domain.SessionConfig {
	return domain.SessionConfig{
		PollInterval:     time.Duration(c.PollIntervalMs) * time.Millisecond,
		VibeInterval:     time.Duration(c.VibeIntervalSec) * time.Second,
		VibeBatchSize:    c.VibeBatchSize,
		PulseInterval:    time.Duration(c.PulseIntervalSec) * time.Second,
		PulseMinMessages: c.PulseMinMessages,
		BufferSize:       c.BufferSize,
	}
}

// ToSpamConfig converts to spam detector configuration
func (c *SpamConfigValues) ToSpamConfig() usecase.SpamConfig {
	cfg := usecase.DefaultSpamConfig()
	cfg.Threshold = c.Threshold
	cfg.EscalationThreshold = c.EscalationThreshold
	cfg.RapidFireCount = c.RapidFireCount
	cfg.RapidFireConfidence = c.RapidFireConfidence
	cfg.RapidFireWindow = time.Duration(c.RapidFireWindowSec) * time.Second
	cfg.HistoryWindow = time.Duration(c.HistoryWindowSec) * time.Second
	cfg.HistoryCap = c.HistoryMax
	return cfg
}

// ToPromptConfig converts to prompt configuration
func (c *Config) ToPromptConfig() usecase.PromptConfig {
	if c.Prompts == nil {
		return usecase.DefaultPromptConfig
	}
	p := c.Prompts
	return usecase.PromptConfig{
		SpamCheckTemplate: p.SpamCheck.Template,
		VibeTemplate:      p.Vibe.Template,
		PulseTemplate:     p.Pulse.Template,
		SpamCheckTimeout:  time.Duration(p.SpamCheck.TimeoutSeconds * float64(time.Second)),
		VibeTimeout:       time.Duration(p.Vibe.TimeoutSeconds * float64(time.Second)),
		PulseTimeout:      time.Duration(p.Pulse.TimeoutSeconds * float64(time.Second)),
		PulseTemperature:  p.Pulse.Temperature,
		PulseSampleSize:   p.Pulse.SampleSize,
		MaxTokens:         p.MaxTokens,
	}
}

// RetentionWindow returns how long archived pulses are kept
func (c *ArchiveConfig) RetentionWindow() time.Duration {
	return time.Duration(c.RetentionHours) * time.Hour
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return &ConfigError{Field: "PORT", Message: fmt.Sprintf("out of range: %d", c.Server.Port)}
	}
	if c.LLM.Provider != ProviderOllama && c.LLM.Provider != ProviderGroq {
		return &ConfigError{Field: "LLM_PROVIDER", Message: "must be ollama or groq"}
	}
	if c.Spam.Threshold <= 0 || c.Spam.Threshold > 1 {
		return &ConfigError{Field: "SPAM_THRESHOLD", Message: "must be in (0, 1]"}
	}
	if c.Spam.EscalationThreshold <= 0 || c.Spam.EscalationThreshold >= c.Spam.Threshold {
		return &ConfigError{Field: "SPAM_ESCALATION_THRESHOLD", Message: "must be positive and below SPAM_THRESHOLD"}
	}
	if c.Spam.RapidFireCount < 2 {
		return &ConfigError{Field: "RAPID_FIRE_COUNT", Message: "must be at least 2"}
	}
	if c.Pipeline.PollIntervalMs <= 0 || c.Pipeline.VibeIntervalSec <= 0 || c.Pipeline.PulseIntervalSec <= 0 {
		return &ConfigError{Field: "POLL_INTERVAL_MS/VIBE_CHECK_INTERVAL_SECONDS/PULSE_INTERVAL_SECONDS", Message: "must be positive"}
	}
	if c.Pipeline.VibeBatchSize <= 0 {
		return &ConfigError{Field: "VIBE_BATCH_SIZE", Message: "must be positive"}
	}
	if c.Pipeline.PulseMinMessages > c.Pipeline.BufferSize {
		return &ConfigError{Field: "PULSE_MIN_MESSAGES", Message: "cannot exceed PULSE_BUFFER_SIZE"}
	}
	return nil
}

// RequireChatSource checks the settings needed to read live chat
func (c *Config) RequireChatSource() error {
	if c.YouTube.APIKey == "" {
		return &ConfigError{Field: "YOUTUBE_API_KEY", Message: "required"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
