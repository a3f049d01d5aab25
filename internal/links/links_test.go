package links

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/clipfetch/clipfetch-bot/internal/models"
)

func TestIsSupported(t *testing.T) {
	t.Parallel()

	supported := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"http://youtube.com/watch?v=abc123",
		"https://youtube.com/shorts/xyz789",
		"https://youtu.be/dQw4w9WgXcQ",
		"youtu.be/dQw4w9WgXcQ",
		"HTTPS://WWW.YOUTUBE.COM/WATCH?V=ABC",
		"https://www.instagram.com/reel/Cxyz123/",
		"https://instagram.com/p/Cabc456/",
		"https://www.instagram.com/tv/Cdef789/",
	}
	for _, url := range supported {
		assert.True(t, IsSupported(url), "expected %q to be supported", url)
	}

	unsupported := []string{
		"",
		"hello there",
		"https://vimeo.com/12345",
		"https://www.instagram.com/someuser/",
		"https://youtube.com/playlist?list=PL123",
		"https://example.com/watch?v=abc",
	}
	for _, url := range unsupported {
		assert.False(t, IsSupported(url), "expected %q to be unsupported", url)
	}
}

func TestPlatformFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, models.PlatformYouTube, PlatformFor("https://youtu.be/abc"))
	assert.Equal(t, models.PlatformYouTube, PlatformFor("https://www.youtube.com/shorts/abc"))
	assert.Equal(t, models.PlatformInstagram, PlatformFor("https://www.instagram.com/reel/abc/"))
	assert.Equal(t, models.PlatformUnsupported, PlatformFor("https://example.com/video"))
}
