package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/xaenox/tweetfiler/internal/models"
)

// Error is a fatal startup configuration problem. Per-bookmark processing
// never returns it.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return "config error: " + e.Reason
}

type Config struct {
	OpenAI     OpenAIConfig            `mapstructure:"openai"`
	Output     OutputConfig            `mapstructure:"output"`
	Processing ProcessingConfig        `mapstructure:"processing"`
	Categories map[string]CategoryRule `mapstructure:"categories"`
}

type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

type OutputConfig struct {
	Dir         string `mapstructure:"dir"`
	ArchiveFile string `mapstructure:"archive_file"`
}

type ProcessingConfig struct {
	// Disabled skips the remote reasoning call entirely and files every
	// bookmark from local heuristics.
	Disabled       bool `mapstructure:"disabled"`
	TimeoutSeconds int  `mapstructure:"timeout_seconds"`
	MaxPromptChars int  `mapstructure:"max_prompt_chars"`
}

type CategoryRule struct {
	Action      string   `mapstructure:"action"`
	Folder      string   `mapstructure:"folder"`
	Match       []string `mapstructure:"match"`
	Template    string   `mapstructure:"template"`
	Description string   `mapstructure:"description"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.max_tokens", 500)
	v.SetDefault("openai.temperature", 0.3)
	v.SetDefault("output.dir", "output")
	v.SetDefault("output.archive_file", "bookmarks.md")
	v.SetDefault("processing.disabled", false)
	v.SetDefault("processing.timeout_seconds", 20)
	v.SetDefault("processing.max_prompt_chars", 3000)

	// Enable environment variable support
	v.AutomaticEnv()

	// Read the config file if one was given; defaults alone are a valid
	// configuration except for the API key.
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if apiKey := v.GetString("OPENAI_API_KEY"); apiKey != "" {
		config.OpenAI.APIKey = apiKey
	}

	if len(config.Categories) == 0 {
		config.Categories = DefaultCategories()
	}

	return &config, nil
}

// Validate checks startup preconditions. Remote reasoning without an API
// key is the one fatal misconfiguration.
func (c *Config) Validate() error {
	if !c.Processing.Disabled && c.OpenAI.APIKey == "" {
		return &Error{Reason: "openai.api_key is required unless processing.disabled is set"}
	}
	if c.Output.Dir == "" {
		return &Error{Reason: "output.dir must not be empty"}
	}
	for key, rule := range c.Categories {
		switch models.Action(rule.Action) {
		case models.ActionFile, models.ActionTranscribe:
			if rule.Folder == "" {
				return &Error{Reason: fmt.Sprintf("category %q: action %q requires a folder", key, rule.Action)}
			}
		case models.ActionCapture:
		default:
			return &Error{Reason: fmt.Sprintf("category %q: unknown action %q", key, rule.Action)}
		}
	}
	return nil
}

// CategoryRules converts the configured registry into model rules keyed by
// category key.
func (c *Config) CategoryRules() map[string]models.CategoryRule {
	rules := make(map[string]models.CategoryRule, len(c.Categories))
	for key, rc := range c.Categories {
		rules[key] = models.CategoryRule{
			Key:         key,
			Action:      models.Action(rc.Action),
			Folder:      rc.Folder,
			Match:       rc.Match,
			Template:    rc.Template,
			Description: rc.Description,
		}
	}
	return rules
}

// DefaultCategories is the registry used when the config file does not
// supply one.
func DefaultCategories() map[string]CategoryRule {
	return map[string]CategoryRule{
		"github": {
			Action:      "file",
			Folder:      "knowledge/tools",
			Match:       []string{"github.com", "gitlab.com"},
			Template:    "tool",
			Description: "Repositories, libraries and developer tools",
		},
		"article": {
			Action:      "file",
			Folder:      "knowledge/articles",
			Match:       []string{"medium.com", "substack.com", "dev.to", "blog."},
			Template:    "article",
			Description: "Long-form writing worth keeping",
		},
		"youtube": {
			Action:      "transcribe",
			Folder:      "knowledge/videos",
			Match:       []string{"youtube.com", "youtu.be"},
			Template:    "video",
			Description: "Video content",
		},
		"podcast": {
			Action:      "transcribe",
			Folder:      "knowledge/podcasts",
			Match:       []string{"open.spotify.com", "podcasts.apple.com", "overcast.fm"},
			Template:    "podcast",
			Description: "Podcast episodes",
		},
		"tweet": {
			Action:      "capture",
			Description: "Posts with no destination beyond the archive",
		},
	}
}
