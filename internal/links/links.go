package links

import (
	"regexp"

	"github.com/clipfetch/clipfetch-bot/internal/models"
)

// Supported URL patterns, including YouTube Shorts and Instagram reels.
var (
	youtubeRe   = regexp.MustCompile(`(?i)(https?://)?(www\.)?(youtube\.com/(watch\?v=|shorts/)|youtu\.be/)`)
	instagramRe = regexp.MustCompile(`(?i)(https?://)?(www\.)?instagram\.com/(reel|p|tv)/`)
)

// IsSupported reports whether the text matches a known platform pattern.
func IsSupported(url string) bool {
	return youtubeRe.MatchString(url) || instagramRe.MatchString(url)
}

// PlatformFor resolves the platform tag for a URL.
func PlatformFor(url string) models.Platform {
	switch {
	case youtubeRe.MatchString(url):
		return models.PlatformYouTube
	case instagramRe.MatchString(url):
		return models.PlatformInstagram
	default:
		return models.PlatformUnsupported
	}
}
