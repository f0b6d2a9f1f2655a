package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVREPLACE_DOTENV", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./dist/index.html", cfg.Replacer.File)
	assert.Equal(t, "int", cfg.Replacer.Env)
	assert.Empty(t, cfg.Replacer.Find)
	assert.Empty(t, cfg.Replacer.Replace)
	assert.Equal(t, "components", cfg.Replacer.LibraryHost)
	assert.Equal(t, "crossroads.net", cfg.Replacer.BaseDomain)
	assert.False(t, cfg.Replacer.DryRun)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "console", cfg.App.LogFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENVREPLACE_DOTENV", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("ENVREPLACE_FILE", "./public/index.html")
	t.Setenv("ENVREPLACE_ENV", "demo")
	t.Setenv("ENVREPLACE_DRY_RUN", "true")
	t.Setenv("APP_LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./public/index.html", cfg.Replacer.File)
	assert.Equal(t, "demo", cfg.Replacer.Env)
	assert.True(t, cfg.Replacer.DryRun)
	assert.Equal(t, "json", cfg.App.LogFormat)
}

func TestLoadFromDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ENVREPLACE_BASE_DOMAIN=example.org\n"), 0o644))
	t.Setenv("ENVREPLACE_DOTENV", path)
	// godotenv sets the variable for the process; clean it up with the test
	t.Setenv("ENVREPLACE_BASE_DOMAIN", "")
	require.NoError(t, os.Unsetenv("ENVREPLACE_BASE_DOMAIN"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "example.org", cfg.Replacer.BaseDomain)
}

func TestLoadRejectsBadLogFormat(t *testing.T) {
	t.Setenv("ENVREPLACE_DOTENV", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("APP_LOG_FORMAT", "xml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log format")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Replacer: ReplacerConfig{LibraryHost: "components", BaseDomain: "crossroads.net"},
			App:      AppConfig{LogFormat: "json"},
		}
	}

	require.NoError(t, Validate(valid()))

	cfg := valid()
	cfg.Replacer.LibraryHost = ""
	require.Error(t, Validate(cfg))

	cfg = valid()
	cfg.Replacer.BaseDomain = ""
	require.Error(t, Validate(cfg))

	// The target file is never checked
	cfg = valid()
	cfg.Replacer.File = "/does/not/exist.html"
	require.NoError(t, Validate(cfg))
}
