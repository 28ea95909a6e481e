package config

import (
	"fmt"
	"os"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# VGame Horizon Configuration

llm:
  provider: openai            # openai or ark
  # model: gpt-4o-mini        (openai default; for ark, the endpoint id or set ARK_ENDPOINT_ID)
  # api_key: your-api-key     (or set ARK_API_KEY / OPENAI_API_KEY)
  # base_url: https://api.openai.com/v1
  detail_timeout_seconds: 30
  translate_timeout_seconds: 60

catalog:
  provider: igdb              # igdb or snapshot
  platform: switch            # switch, ps5, xbox-series, pc
  # client_id: your-twitch-client-id         (or set TWITCH_CLIENT_ID)
  # client_secret: your-twitch-client-secret (or set TWITCH_CLIENT_SECRET)
  # snapshot_path: games.json

translation:
  language: zh-Hans
  batch_size: 5

notability:
  hype_threshold: 10
  # extra_developers:
  #   - Marvelous

server:
  addr: ":8000"

logging:
  # level: info               (or set LOG_LEVEL; the CLI defaults to warn)
  # file: .horizon/horizon.log

history:
  enabled: true
  # path: history.db
`

// WriteDefault creates the .horizon directory and writes a default config file.
func WriteDefault(basePath string) error {
	configDir := ConfigDir(basePath)
	configFile := ConfigFilePath(basePath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Exists checks if a horizon config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
