package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/vgame-horizon/internal/domain/entities"
)

var envKeys = []string{
	"TWITCH_CLIENT_ID", "TWITCH_CLIENT_SECRET",
	"ARK_API_KEY", "ARK_ENDPOINT_ID", "ARK_API_BASE",
	"OPENAI_API_KEY", "OPENAI_API_BASE", "LLM_MODEL",
	"LOG_LEVEL", "HORIZON_ADDR",
}

// clearEnv blanks every variable the loader reads and restores them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(ConfigDir(dir), 0755))
	require.NoError(t, os.WriteFile(ConfigFilePath(dir), []byte(content), 0644))
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
	assert.False(t, cfg.LLM.Configured())
	assert.Equal(t, 30*time.Second, cfg.LLM.DetailTimeout())
	assert.Equal(t, 60*time.Second, cfg.LLM.TranslateTimeout())
	assert.Equal(t, CatalogIGDB, cfg.Catalog.Provider)
	assert.False(t, cfg.Catalog.Configured())
	assert.Equal(t, entities.PlatformSwitch, cfg.Catalog.PlatformID())
	assert.Equal(t, "zh-Hans", cfg.Translation.Language)
	assert.Equal(t, 5, cfg.Translation.BatchSize)
	assert.Equal(t, 10, cfg.Notability.HypeThreshold)
	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, filepath.Join(dir, ".horizon", "history.db"), cfg.HistoryPath(dir))
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
llm:
  provider: ark
  model: ep-20250101-abcde
  api_key: file-key
catalog:
  provider: snapshot
  snapshot_path: data/games.yaml
  platform: ps5
translation:
  language: ja
notability:
  extra_developers: [Marvelous]
history:
  enabled: false
  path: /var/lib/horizon.db
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ProviderArk, cfg.LLM.Provider)
	assert.True(t, cfg.LLM.Configured())
	assert.Equal(t, DefaultArkBaseURL, cfg.LLM.Endpoint())
	assert.Equal(t, 30, cfg.LLM.DetailTimeoutSeconds, "unset fields keep defaults")
	assert.Equal(t, entities.PlatformPS5, cfg.Catalog.PlatformID())
	assert.True(t, cfg.Catalog.Configured())
	assert.Equal(t, filepath.Join(dir, "data", "games.yaml"), cfg.SnapshotPath(dir))
	assert.True(t, cfg.Notability.NotableDevelopers().Matches("Marvelous Inc."))
	assert.False(t, cfg.History.Enabled)
	assert.Equal(t, "/var/lib/horizon.db", cfg.HistoryPath(dir))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad yaml", content: "llm: [unclosed"},
		{name: "unknown llm provider", content: "llm:\n  provider: gemini\n"},
		{name: "unknown catalog provider", content: "catalog:\n  provider: steam\n"},
		{name: "snapshot without path", content: "catalog:\n  provider: snapshot\n"},
		{name: "unknown platform", content: "catalog:\n  platform: dreamcast\n"},
		{name: "unsupported language", content: "translation:\n  language: fr\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := Load(dir)
			assert.Error(t, err)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Run("ark preferred over openai", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ARK_API_KEY", "ark-key")
		t.Setenv("ARK_ENDPOINT_ID", "ep-123")
		t.Setenv("ARK_API_BASE", "https://ark.example.com/api/v3/")
		t.Setenv("OPENAI_API_KEY", "sk-openai")

		cfg, err := Load(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, ProviderArk, cfg.LLM.Provider)
		assert.Equal(t, "ark-key", cfg.LLM.APIKey)
		assert.Equal(t, "ep-123", cfg.LLM.Model)
		assert.Equal(t, "https://ark.example.com/api/v3", cfg.LLM.Endpoint())
	})

	t.Run("ark needs endpoint id", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ARK_API_KEY", "ark-key")
		t.Setenv("OPENAI_API_KEY", "sk-openai")
		t.Setenv("OPENAI_API_BASE", "https://proxy.example.com/v1")
		t.Setenv("LLM_MODEL", "gpt-4o")

		cfg, err := Load(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, ProviderOpenAI, cfg.LLM.Provider)
		assert.Equal(t, "sk-openai", cfg.LLM.APIKey)
		assert.Equal(t, "gpt-4o", cfg.LLM.Model)
		assert.Equal(t, "https://proxy.example.com/v1", cfg.LLM.Endpoint())
	})

	t.Run("config file credentials win", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("OPENAI_API_KEY", "sk-env")
		t.Setenv("TWITCH_CLIENT_ID", "env-id")
		t.Setenv("TWITCH_CLIENT_SECRET", "env-secret")
		dir := t.TempDir()
		writeConfig(t, dir, "llm:\n  api_key: sk-file\ncatalog:\n  client_id: file-id\n")

		cfg, err := Load(dir)
		require.NoError(t, err)

		assert.Equal(t, "sk-file", cfg.LLM.APIKey)
		assert.Equal(t, "file-id", cfg.Catalog.ClientID)
		assert.Equal(t, "env-secret", cfg.Catalog.ClientSecret)
		assert.True(t, cfg.Catalog.Configured())
	})

	t.Run("log level and address", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("HORIZON_ADDR", "127.0.0.1:9000")

		cfg, err := Load(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	})
}

func TestLoad_ModelDefaultPerProvider(t *testing.T) {
	t.Run("openai gets the default model", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		writeConfig(t, dir, "llm:\n  provider: openai\n  api_key: k\n")

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, DefaultOpenAIModel, cfg.LLM.Model)
		assert.True(t, cfg.LLM.Configured())
	})

	t.Run("ark without endpoint id stays unconfigured", func(t *testing.T) {
		clearEnv(t)
		dir := t.TempDir()
		writeConfig(t, dir, "llm:\n  provider: ark\n  api_key: k\n")

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, ProviderArk, cfg.LLM.Provider)
		assert.Empty(t, cfg.LLM.Model)
		assert.False(t, cfg.LLM.Configured())
		assert.Equal(t, DefaultArkBaseURL, cfg.LLM.Endpoint())
	})
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("TWITCH_CLIENT_ID=dotenv-id\nTWITCH_CLIENT_SECRET=dotenv-secret\n"), 0600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "dotenv-id", cfg.Catalog.ClientID)
	assert.Equal(t, "dotenv-secret", cfg.Catalog.ClientSecret)
}

func TestWriteDefault(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	assert.False(t, Exists(dir))
	require.NoError(t, WriteDefault(dir))
	assert.True(t, Exists(dir))

	cfg, err := Load(dir)
	require.NoError(t, err)
	want := Default()
	want.LLM.Model = DefaultOpenAIModel
	assert.Equal(t, want, cfg, "the default file loads to the defaults")

	assert.Error(t, WriteDefault(dir), "refuses to overwrite")
}
