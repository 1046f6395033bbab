package config

import (
	"fmt"
	"os"
)

const defaultConfig = `version: 1

generator:
  base_url: "https://quiz-generator.example.com"
  api_key_env: "QUIZKIT_API_KEY"

ui:
  mode: auto
  no_color: false
`

// Scaffold writes a starter config file. It refuses to overwrite an
// existing one.
func Scaffold(path string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
