package extractor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clipfetch/clipfetch-bot/internal/config"
	"github.com/clipfetch/clipfetch-bot/internal/models"
)

func testExtractor(cookiesPath string) *YtDlpExtractor {
	cfg := &config.Config{
		Extractor: config.ExtractorConfig{
			BinPath:     "yt-dlp",
			CookiesPath: cookiesPath,
			Retries:     3,
			MaxTitleLen: 200,
		},
		Limits: config.LimitsConfig{TargetHeight: 480},
	}
	return &YtDlpExtractor{cfg: cfg}
}

func TestBuildArgsFormatChain(t *testing.T) {
	e := testExtractor("")
	args := e.buildArgs("https://youtu.be/abc", models.PlatformYouTube, "/tmp/work")

	require.Greater(t, len(args), 2)
	assert.Equal(t, "--format", args[0])
	assert.Equal(t, "bv*[height<=480][ext=mp4]+ba[ext=m4a]/b[height<=480][ext=mp4]/best[ext=mp4]/best", args[1])
	assert.Contains(t, args, "--no-playlist")
	assert.Contains(t, args, "--no-simulate")
	assert.Equal(t, "https://youtu.be/abc", args[len(args)-1], "url must be the final argument")
}

func TestBuildArgsOutputTemplate(t *testing.T) {
	e := testExtractor("")
	args := e.buildArgs("https://youtu.be/abc", models.PlatformYouTube, "/tmp/work")

	idx := indexOf(args, "--output")
	require.NotEqual(t, -1, idx)
	assert.Equal(t, "/tmp/work/%(title).200B.%(ext)s", args[idx+1])
}

func TestBuildArgsCookiesOnlyForInstagram(t *testing.T) {
	withCookies := testExtractor("/etc/ig_cookies.txt")

	args := withCookies.buildArgs("https://instagram.com/reel/x", models.PlatformInstagram, "/tmp/work")
	idx := indexOf(args, "--cookies")
	require.NotEqual(t, -1, idx)
	assert.Equal(t, "/etc/ig_cookies.txt", args[idx+1])

	assert.NotContains(t,
		withCookies.buildArgs("https://youtu.be/abc", models.PlatformYouTube, "/tmp/work"),
		"--cookies", "cookies must not leak into YouTube extractions")

	assert.NotContains(t,
		testExtractor("").buildArgs("https://instagram.com/reel/x", models.PlatformInstagram, "/tmp/work"),
		"--cookies", "no cookies flag without a configured jar")
}

func TestParsePrints(t *testing.T) {
	path, title, err := parsePrints("/tmp/work/My Clip.mp4\nMy Clip\n")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/work/My Clip.mp4", path)
	assert.Equal(t, "My Clip", title)
}

func TestParsePrintsMissingTitle(t *testing.T) {
	path, title, err := parsePrints("/tmp/work/clip.mp4\n")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/work/clip.mp4", path)
	assert.Equal(t, "video", title)
}

func TestParsePrintsEmptyOutput(t *testing.T) {
	_, _, err := parsePrints("")
	assert.Error(t, err)
}

func TestTail(t *testing.T) {
	assert.Equal(t, "short", tail("short\n", 512))
	assert.Equal(t, "engine exited with error", tail("  ", 512))

	long := tail(strings.Repeat("x", 600), 8)
	assert.Equal(t, "..."+strings.Repeat("x", 8), long, "long output keeps only the tail")
}

func indexOf(args []string, flag string) int {
	for i, a := range args {
		if a == flag {
			return i
		}
	}
	return -1
}
