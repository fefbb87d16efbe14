package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/limonaca/foundation/core/error"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "limonaca.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvConfig, EnvLogLevel, EnvOutputFormat, EnvDotEnvPath} {
		t.Setenv(key, "")
	}
	t.Setenv("HOME", t.TempDir())
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "limonaca", cfg.General.Name)
	assert.Equal(t, "warn", cfg.General.LogLevel)
	assert.Equal(t, "console", cfg.General.LogFormat)
	assert.Equal(t, "tree", cfg.Output.Format)
	assert.False(t, cfg.Output.NoColor)
	assert.False(t, cfg.Parser.LenientParens)
	assert.Zero(t, cfg.Parser.MaxTokens)
	assert.Equal(t, "limonaca> ", cfg.REPL.Prompt)
	assert.Equal(t, 200, cfg.REPL.HistoryLimit)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, t.TempDir(), `
[general]
log_level = "debug"
log_format = "json"

[parser]
lenient_parens = true
max_tokens = 512

[output]
format = "yaml"
no_color = true
show_tokens = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "limonaca", cfg.General.Name, "missing values take defaults")
	assert.Equal(t, "debug", cfg.General.LogLevel)
	assert.Equal(t, "json", cfg.General.LogFormat)
	assert.True(t, cfg.Parser.LenientParens)
	assert.Equal(t, 512, cfg.Parser.MaxTokens)
	assert.Equal(t, "yaml", cfg.Output.Format)
	assert.True(t, cfg.Output.NoColor)
	assert.True(t, cfg.Output.ShowTokens)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		code    mdwerror.Code
	}{
		{"syntax error", "[general\nname = 1", mdwerror.CodeInvalidConfig},
		{"bad log level", "[general]\nlog_level = \"loud\"", mdwerror.CodeInvalidConfig},
		{"bad log format", "[general]\nlog_format = \"xml\"", mdwerror.CodeInvalidConfig},
		{"bad output format", "[output]\nformat = \"dot\"", mdwerror.CodeInvalidConfig},
		{"negative max tokens", "[parser]\nmax_tokens = -1", mdwerror.CodeInvalidConfig},
		{"negative history", "[repl]\nhistory_limit = -3", mdwerror.CodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, dir, tt.content))
			require.Error(t, err)
			assert.Equal(t, tt.code, mdwerror.GetCode(err))
		})
	}

	_, err := Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
	assert.Equal(t, mdwerror.CodeConfigError, mdwerror.GetCode(err))
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("defaults without any file", func(t *testing.T) {
		clearEnv(t)
		chdir(t, t.TempDir())

		cfg, path, err := LoadFromEnv()
		require.NoError(t, err)
		assert.Empty(t, path)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("explicit path", func(t *testing.T) {
		clearEnv(t)
		path := writeConfig(t, t.TempDir(), "[output]\nformat = \"json\"")
		t.Setenv(EnvConfig, path)

		cfg, loaded, err := LoadFromEnv()
		require.NoError(t, err)
		assert.Equal(t, path, loaded)
		assert.Equal(t, "json", cfg.Output.Format)
	})

	t.Run("explicit path that does not exist", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "nope.toml"))

		_, _, err := LoadFromEnv()
		assert.Error(t, err)
	})

	t.Run("search path in the working directory", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "limonaca.toml"), []byte("[parser]\nmax_tokens = 9"), 0644))
		writeConfig(t, dir, "[parser]\nmax_tokens = 1")
		chdir(t, dir)

		cfg, path, err := LoadFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "./configs/limonaca.toml", path)
		assert.Equal(t, 9, cfg.Parser.MaxTokens)
	})

	t.Run("environment overrides", func(t *testing.T) {
		clearEnv(t)
		chdir(t, t.TempDir())
		t.Setenv(EnvLogLevel, " debug ")
		t.Setenv(EnvOutputFormat, "yaml")

		cfg, _, err := LoadFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.General.LogLevel)
		assert.Equal(t, "yaml", cfg.Output.Format)
	})

	t.Run("invalid override", func(t *testing.T) {
		clearEnv(t)
		chdir(t, t.TempDir())
		t.Setenv(EnvOutputFormat, "html")

		_, _, err := LoadFromEnv()
		require.Error(t, err)
		assert.Equal(t, mdwerror.CodeInvalidConfig, mdwerror.GetCode(err))
	})
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	chdir(t, dir)

	assert.NoError(t, LoadDotEnv(), "a missing .env file is ignored")

	envFile := filepath.Join(dir, "custom.env")
	require.NoError(t, os.WriteFile(envFile, []byte("LIMONACA_TEST_DOTENV=from-file\n"), 0644))
	t.Setenv(EnvDotEnvPath, envFile)
	t.Cleanup(func() { _ = os.Unsetenv("LIMONACA_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv())
	assert.Equal(t, "from-file", os.Getenv("LIMONACA_TEST_DOTENV"))
}
