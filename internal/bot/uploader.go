package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/clipfetch/clipfetch-bot/internal/pipeline"
	"github.com/clipfetch/clipfetch-bot/pkg/logger"
)

// Uploader sends finished artifacts back to the chat. Implements
// pipeline.Uploader.
type Uploader struct {
	api    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewUploader(api *tgbotapi.BotAPI, log logger.Logger) *Uploader {
	return &Uploader{api: api, logger: log}
}

// UploadVideo sends the artifact as a native playable attachment.
func (u *Uploader) UploadVideo(ctx context.Context, chatID int64, path, caption string, info *pipeline.MediaInfo) error {
	u.sendAction(chatID, tgbotapi.ChatUploadVideo)

	video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(path))
	video.Caption = caption
	video.ParseMode = tgbotapi.ModeHTML
	video.SupportsStreaming = true
	if info != nil {
		video.Duration = int(info.Duration)
	}
	if _, err := u.api.Send(video); err != nil {
		return &pipeline.DeliveryError{Err: err}
	}
	return nil
}

// UploadDocument sends the artifact as a generic file attachment.
func (u *Uploader) UploadDocument(ctx context.Context, chatID int64, path, caption string) error {
	u.sendAction(chatID, tgbotapi.ChatUploadDocument)

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FilePath(path))
	doc.Caption = caption
	doc.ParseMode = tgbotapi.ModeHTML
	if _, err := u.api.Send(doc); err != nil {
		return &pipeline.DeliveryError{Err: err}
	}
	return nil
}

func (u *Uploader) sendAction(chatID int64, action string) {
	if _, err := u.api.Request(tgbotapi.NewChatAction(chatID, action)); err != nil {
		u.logger.Warnf("chat action failed for chat %d: %v", chatID, err)
	}
}
