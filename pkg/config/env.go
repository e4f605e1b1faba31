package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/codingconcepts/env"
	"github.com/joho/godotenv"
)

// Environment holds the settings read from process environment variables.
type Environment struct {
	APIKey  string `env:"OPENROUTER_API_KEY"`
	Model   string `env:"OPENROUTER_MODEL"`
	BaseURL string `env:"OPENROUTER_BASE_URL"`
}

// ReadEnvironment reads Environment from the process environment. Unset
// variables leave their fields empty.
func ReadEnvironment() (Environment, error) {
	var e Environment
	if err := env.Set(&e); err != nil {
		return Environment{}, fmt.Errorf("config: read environment: %w", err)
	}

	return e, nil
}

// Apply merges e into c. Non-empty model and base URL overrides win over the
// file; the API key only fills in when the file leaves it empty.
func (c *Config) Apply(e Environment) {
	if e.Model != "" {
		c.Model = e.Model
	}
	if e.BaseURL != "" {
		c.BaseURL = e.BaseURL
	}
	if c.APIKey == "" {
		c.APIKey = e.APIKey
	}
}

// LoadDotEnv loads environment variables from path. Missing files are ignored
// and variables already set in the process are not overridden.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: load env file: %w", err)
	}
	return nil
}
