package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("IG_COOKIES_PATH", "")

	path := writeConfig(t, `
server:
  appVersion: "1.0.0"
  mode: Development
telegram:
  token: "test-token"
logger:
  level: info
  encoding: console
`)

	v, err := LoadConfig(path)
	require.NoError(t, err)
	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.Telegram.Token)
	assert.Equal(t, 30, cfg.Telegram.PollTimeout)
	assert.Equal(t, "yt-dlp", cfg.Extractor.BinPath)
	assert.Equal(t, 3, cfg.Extractor.Retries)
	assert.Equal(t, 200, cfg.Extractor.MaxTitleLen)
	assert.Equal(t, "ffmpeg", cfg.Transcoder.FFmpegPath)
	assert.Equal(t, "veryfast", cfg.Transcoder.Preset)
	assert.Equal(t, 480, cfg.Limits.TargetHeight)
	assert.Equal(t, 360, cfg.Limits.ReducedHeight)
	assert.Equal(t, int64(2000), cfg.Limits.HardLimitMB)
	assert.Equal(t, int64(1900), cfg.Limits.SafeLimitMB)
	assert.Equal(t, int64(50), cfg.Limits.VideoLimitMB)
	assert.Equal(t, 2, cfg.Worker.Concurrency)
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	path := writeConfig(t, `
telegram:
  token: "test-token"
limits:
  targetHeight: 720
  safeLimitMB: 100
worker:
  concurrency: 4
`)

	v, err := LoadConfig(path)
	require.NoError(t, err)
	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, 720, cfg.Limits.TargetHeight)
	assert.Equal(t, int64(100), cfg.Limits.SafeLimitMB)
	assert.Equal(t, 4, cfg.Worker.Concurrency)
}

func TestParseConfigMissingToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	path := writeConfig(t, `
server:
  mode: Development
`)

	v, err := LoadConfig(path)
	require.NoError(t, err)
	_, err = ParseConfig(v)
	assert.Error(t, err)
}

func TestParseConfigTokenFromEnv(t *testing.T) {
	t.Setenv("BOT_TOKEN", "env-token")

	path := writeConfig(t, `
server:
  mode: Development
`)

	v, err := LoadConfig(path)
	require.NoError(t, err)
	cfg, err := ParseConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.Telegram.Token)
}
