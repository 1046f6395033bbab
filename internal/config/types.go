// Package config loads and validates the quizkit configuration file.
package config

// Config is the parsed .quizkit.yml document.
type Config struct {
	Version   int             `yaml:"version"`
	Generator GeneratorConfig `yaml:"generator"`
	UI        UIConfig        `yaml:"ui"`
}

// GeneratorConfig locates the remote quiz-generation service.
type GeneratorConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIKeyEnv string `yaml:"api_key_env"`
}

// UIConfig selects how the session is presented.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
}

// UI mode values accepted by the config and the --ui flag.
const (
	UIModeAuto  = "auto"
	UIModeLive  = "live"
	UIModePlain = "plain"
)

// DefaultAPIKeyEnv is the environment variable consulted when the config
// does not name one.
const DefaultAPIKeyEnv = "QUIZKIT_API_KEY"
