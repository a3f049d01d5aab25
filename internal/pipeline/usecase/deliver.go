package usecase

import (
	"html"

	"github.com/clipfetch/clipfetch-bot/internal/config"
	"github.com/clipfetch/clipfetch-bot/internal/models"
	"github.com/clipfetch/clipfetch-bot/pkg/utils"
)

// SelectDelivery chooses the outbound representation from the final artifact
// size: over the hard ceiling is rejected without an upload attempt, at or
// under the inline threshold goes out as native video, everything between as
// a generic document.
func SelectDelivery(size int64, limits config.LimitsConfig) models.DeliveryKind {
	switch {
	case size > utils.MBToBytes(limits.HardLimitMB):
		return models.DeliveryRejected
	case size <= utils.MBToBytes(limits.VideoLimitMB):
		return models.DeliveryVideo
	default:
		return models.DeliveryDocument
	}
}

// Caption renders the HTML caption for an upload. Titles come from an
// untrusted source and are escaped.
func Caption(title string) string {
	if title == "" {
		return "Video"
	}
	return "<b>" + html.EscapeString(title) + "</b>"
}
