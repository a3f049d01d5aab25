package bot

import (
	"context"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/clipfetch/clipfetch-bot/internal/config"
	"github.com/clipfetch/clipfetch-bot/internal/links"
	"github.com/clipfetch/clipfetch-bot/internal/models"
	"github.com/clipfetch/clipfetch-bot/internal/pipeline"
	"github.com/clipfetch/clipfetch-bot/pkg/logger"
)

// Bot runs the Telegram long-polling loop and dispatches qualifying messages
// into the pipeline. The loop itself never blocks on pipeline work; each job
// runs in its own goroutine and queues on the pipeline's permit pool.
type Bot struct {
	api    *tgbotapi.BotAPI
	cfg    *config.Config
	uc     pipeline.UseCase
	logger logger.Logger
}

func New(api *tgbotapi.BotAPI, cfg *config.Config, uc pipeline.UseCase, log logger.Logger) *Bot {
	return &Bot{
		api:    api,
		cfg:    cfg,
		uc:     uc,
		logger: log,
	}
}

func (b *Bot) Run(ctx context.Context) error {
	b.logger.Infof("bot authorized as @%s", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.Telegram.PollTimeout
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			go b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		switch msg.Command() {
		case "start", "help":
			b.reply(msg.Chat.ID, usageText, tgbotapi.ModeMarkdown)
		default:
			b.reply(msg.Chat.ID, usageText, tgbotapi.ModeMarkdown)
		}
		return
	}

	url := strings.TrimSpace(msg.Text)
	if !links.IsSupported(url) {
		b.reply(msg.Chat.ID, rejectText, "")
		return
	}

	if _, err := b.api.Request(tgbotapi.NewChatAction(msg.Chat.ID, tgbotapi.ChatTyping)); err != nil {
		b.logger.Warnf("chat action failed for chat %d: %v", msg.Chat.ID, err)
	}

	job := &models.Job{
		ID:        uuid.New().String(),
		URL:       url,
		Platform:  links.PlatformFor(url),
		ChatID:    msg.Chat.ID,
		CreatedAt: time.Now().UTC(),
	}

	status, err := b.newStatus(job)
	if err != nil {
		b.logger.Errorf("job %s: could not send status message: %v", job.ID, err)
		return
	}

	start := time.Now()
	if err := b.uc.Process(ctx, job, status); err != nil {
		b.logger.Errorf("job %s terminated with error after %s: %v", job.ID, time.Since(start), err)
		return
	}
	b.logger.Infof("job %s completed in %s (%s)", job.ID, time.Since(start), job.Delivery)
}

// newStatus sends the initial status message the pipeline will keep editing.
func (b *Bot) newStatus(job *models.Job) (pipeline.StatusSink, error) {
	text := "⏳ " + string(job.Platform) + "…"
	sent, err := b.api.Send(tgbotapi.NewMessage(job.ChatID, text))
	if err != nil {
		return nil, err
	}
	return &statusMessage{
		api:       b.api,
		chatID:    job.ChatID,
		messageID: sent.MessageID,
		logger:    b.logger,
	}, nil
}

func (b *Bot) reply(chatID int64, text, parseMode string) {
	m := tgbotapi.NewMessage(chatID, text)
	m.ParseMode = parseMode
	if _, err := b.api.Send(m); err != nil {
		b.logger.Errorf("reply to chat %d failed: %v", chatID, err)
	}
}
