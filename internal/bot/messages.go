package bot

// Start/help usage text, English then Uzbek.
const usageText = "Send me a **YouTube** (incl. Shorts) or **Instagram** link.\n\n" +
	"• I target ≤480p MP4 to keep size small (with smart fallbacks).\n" +
	"• If still large, I auto-compress before sending.\n" +
	"• Playlists not supported. Telegram max ~2GB.\n\n" +
	"—\n\n" +
	"**YouTube** (Shorts ham) yoki **Instagram** havolasini yuboring.\n\n" +
	"• Odatda ≤480p MP4 yuklayman (mos kelmasa moslashuvchan fallback bor).\n" +
	"• Baribir katta bo‘lsa, yuborishdan oldin avtomatik siqaman.\n" +
	"• Playlist qo‘llanmaydi. Telegram limiti ~2GB."

const rejectText = "Send a valid YouTube/Instagram link.\n\n" +
	"YouTube/Instagram havolasini yuboring."
