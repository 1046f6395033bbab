package config

import "strings"

// Normalize fills defaults after parsing and before validation.
func Normalize(cfg *Config) {
	cfg.Generator.BaseURL = strings.TrimSpace(cfg.Generator.BaseURL)
	cfg.Generator.APIKeyEnv = strings.TrimSpace(cfg.Generator.APIKeyEnv)
	if cfg.Generator.APIKeyEnv == "" {
		cfg.Generator.APIKeyEnv = DefaultAPIKeyEnv
	}
	cfg.UI.Mode = strings.TrimSpace(cfg.UI.Mode)
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = UIModeAuto
	}
}
