package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEnvironment(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "sk-env")
	t.Setenv("OPENROUTER_MODEL", "openai/gpt-4o-mini")
	t.Setenv("OPENROUTER_BASE_URL", "")

	e, err := ReadEnvironment()
	require.NoError(t, err)

	assert.Equal(t, "sk-env", e.APIKey)
	assert.Equal(t, "openai/gpt-4o-mini", e.Model)
	assert.Empty(t, e.BaseURL)
}

func TestApply(t *testing.T) {
	cfg := Default()
	cfg.Apply(Environment{APIKey: "sk-env", Model: "openai/gpt-4o"})

	assert.Equal(t, "sk-env", cfg.APIKey)
	assert.Equal(t, "openai/gpt-4o", cfg.Model)
	assert.Equal(t, Default().BaseURL, cfg.BaseURL)
}

func TestApply_FileKeyWins(t *testing.T) {
	cfg := Default()
	cfg.APIKey = "sk-file"
	cfg.Apply(Environment{APIKey: "sk-env"})

	assert.Equal(t, "sk-file", cfg.APIKey)
}

func TestApply_EmptyEnvironment(t *testing.T) {
	cfg := Default()
	cfg.Apply(Environment{})

	assert.Equal(t, Default(), cfg)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EVALBRIDGE_TEST_DOTENV=from-file\n"), 0o600))

	t.Setenv("EVALBRIDGE_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("EVALBRIDGE_TEST_DOTENV"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-file", os.Getenv("EVALBRIDGE_TEST_DOTENV"))
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("EVALBRIDGE_TEST_PRESET=from-file\n"), 0o600))

	t.Setenv("EVALBRIDGE_TEST_PRESET", "from-process")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-process", os.Getenv("EVALBRIDGE_TEST_PRESET"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
