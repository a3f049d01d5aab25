package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/clipfetch/clipfetch-bot/pkg/logger"
)

// statusMessage edits one status message in place as the job advances.
// Implements pipeline.StatusSink.
type statusMessage struct {
	api       *tgbotapi.BotAPI
	chatID    int64
	messageID int
	logger    logger.Logger
}

func (s *statusMessage) Edit(text string) {
	edit := tgbotapi.NewEditMessageText(s.chatID, s.messageID, text)
	if _, err := s.api.Send(edit); err != nil {
		// Status edits are cosmetic; the pipeline keeps going.
		s.logger.Warnf("status edit failed for chat %d: %v", s.chatID, err)
	}
}
