package usecase

import "fmt"

// User-facing status texts, Uzbek first then English, matching the audience
// of the bot.

const msgQueued = "⏳ Navbatda, bo‘sh o‘rin kutilmoqda…\n⏳ Queued, waiting for a free slot…"

const msgTooLarge = "❗️Fayl hajmi Telegram limitidan katta (>2GB), yuborib bo‘lmaydi.\n" +
	"❗️File exceeds Telegram limit (>2GB)."

func msgDownloading(platform string) string {
	return fmt.Sprintf("⏳ %s dan yuklanmoqda…\n⏳ Downloading from %s…", platform, platform)
}

func msgCompressing(height, crf int) string {
	return fmt.Sprintf("📦 Katta video. Siqilmoqda (%dp, CRF %d)…\n📦 Large video. Compressing (%dp, CRF %d)…",
		height, crf, height, crf)
}

const msgUploading = "✅ Yuklab olindi. Telegram’ga yuborilmoqda…\n✅ Downloaded. Uploading to Telegram…"

func msgDeliveryFailed(err error) string {
	return fmt.Sprintf("❌ Yuborishda xato: %v\n❌ Sending failed: %v", err, err)
}

// msgFailed enumerates the most likely causes and appends the raw error.
func msgFailed(err error) string {
	return fmt.Sprintf(
		"❌ Yuklab/siqib bo‘lmadi. Ehtimoliy sabablari:\n"+
			"• Yopiq/yosh/region cheklovi\n"+
			"• Noto‘g‘ri yoki o‘chirilgan havola\n"+
			"• Tarmoq/ffmpeg muammosi\n\n"+
			"❌ Download/convert failed. Possible reasons:\n"+
			"• Private/age/region restricted content\n"+
			"• Unsupported/removed link\n"+
			"• Network/tooling issues\n\n"+
			"Error: %v", err)
}
