package conf

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/flowstate-live/flowstate/internal/biz/usecase"
)

// PromptsConfig contains all prompt configurations loaded from YAML
type PromptsConfig struct {
	SpamCheck SpamCheckPrompt `yaml:"spam_check"`
	Vibe      VibePrompt      `yaml:"vibe"`
	Pulse     PulsePrompt     `yaml:"pulse"`
	MaxTokens int             `yaml:"max_tokens"`
}

// SpamCheckPrompt is the yes/no escalation prompt
type SpamCheckPrompt struct {
	Template       string  `yaml:"template"`
	TimeoutSeconds float64 `yaml:"timeout_seconds"`
}

// VibePrompt is the funny/uplifting/none prompt
type VibePrompt struct {
	Template       string  `yaml:"template"`
	TimeoutSeconds float64 `yaml:"timeout_seconds"`
}

// PulsePrompt is the one-sentence chat summary prompt
type PulsePrompt struct {
	Template       string  `yaml:"template"`
	TimeoutSeconds float64 `yaml:"timeout_seconds"`
	Temperature    float32 `yaml:"temperature"`
	SampleSize     int     `yaml:"sample_size"`
}

// LoadPromptsConfig loads prompts configuration from YAML file
func LoadPromptsConfig(configPath string) (*PromptsConfig, error) {
	// Try multiple paths
	paths := []string{configPath}
	if configPath == "" {
		paths = []string{
			"configs/prompts.yaml",
			"/etc/flowstate/prompts.yaml",
		}
		// Add path relative to executable
		if execPath, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Join(filepath.Dir(execPath), "configs", "prompts.yaml"))
		}
	}

	var data []byte
	var loadedPath string

	for _, p := range paths {
		if b, err := os.ReadFile(p); err == nil {
			data = b
			loadedPath = p
			break
		}
	}

	if data == nil {
		if configPath != "" {
			return nil, fmt.Errorf("failed to read prompts config %s", configPath)
		}
		slog.Debug("no prompts.yaml found, using defaults")
		return DefaultPromptsConfig(), nil
	}

	slog.Debug("loading prompts", "path", loadedPath)

	var config PromptsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse prompts.yaml: %w", err)
	}

	// Fill in defaults for empty values
	config.fillDefaults()

	return &config, nil
}

// fillDefaults fills in default values for empty fields
func (c *PromptsConfig) fillDefaults() {
	defaults := DefaultPromptsConfig()

	if c.SpamCheck.Template == "" {
		c.SpamCheck.Template = defaults.SpamCheck.Template
	}
	if c.SpamCheck.TimeoutSeconds <= 0 {
		c.SpamCheck.TimeoutSeconds = defaults.SpamCheck.TimeoutSeconds
	}

	if c.Vibe.Template == "" {
		c.Vibe.Template = defaults.Vibe.Template
	}
	if c.Vibe.TimeoutSeconds <= 0 {
		c.Vibe.TimeoutSeconds = defaults.Vibe.TimeoutSeconds
	}

	if c.Pulse.Template == "" {
		c.Pulse.Template = defaults.Pulse.Template
	}
	if c.Pulse.TimeoutSeconds <= 0 {
		c.Pulse.TimeoutSeconds = defaults.Pulse.TimeoutSeconds
	}
	if c.Pulse.Temperature <= 0 {
		c.Pulse.Temperature = defaults.Pulse.Temperature
	}
	if c.Pulse.SampleSize <= 0 {
		c.Pulse.SampleSize = defaults.Pulse.SampleSize
	}

	if c.MaxTokens <= 0 {
		c.MaxTokens = defaults.MaxTokens
	}
}

// DefaultPromptsConfig returns the default prompts configuration
func DefaultPromptsConfig() *PromptsConfig {
	d := usecase.DefaultPromptConfig
	return &PromptsConfig{
		SpamCheck: SpamCheckPrompt{
			Template:       d.SpamCheckTemplate,
			TimeoutSeconds: seconds(d.SpamCheckTimeout),
		},
		Vibe: VibePrompt{
			Template:       d.VibeTemplate,
			TimeoutSeconds: seconds(d.VibeTimeout),
		},
		Pulse: PulsePrompt{
			Template:       d.PulseTemplate,
			TimeoutSeconds: seconds(d.PulseTimeout),
			Temperature:    d.PulseTemperature,
			SampleSize:     d.PulseSampleSize,
		},
		MaxTokens: d.MaxTokens,
	}
}

func seconds(d time.Duration) float64 {
	return d.Seconds()
}
