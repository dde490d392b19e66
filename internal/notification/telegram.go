package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/charism-app/charism-events/internal/domain"
	"github.com/charism-app/charism-events/internal/registration"
)

// TelegramNotifier posts registration digests to a configured admin chat.
// With an empty token or chat id it degrades to a logging no-op.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, adminChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, adminChatID: adminChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, adminChatID: adminChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBatchProcessed(ctx context.Context, event *domain.Event, outcomes []registration.Outcome) {
	var succeeded, duplicates, failed int
	for _, o := range outcomes {
		switch o.Status {
		case registration.ResultSuccess:
			succeeded++
		case registration.ResultAlreadyRegistered:
			duplicates++
		case registration.ResultError:
			failed++
		}
	}

	text := fmt.Sprintf(
		"*Registration batch processed*\n\n"+
			"Event: %s\n"+
			"Date: %s\n"+
			"Registered: %d\nAlready registered: %d\nFailed: %d",
		event.Title, event.Date.Format("02.01.2006"),
		succeeded, duplicates, failed,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.adminChatID == 0 {
		n.logger.Debug("notification skipped (no admin chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.adminChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.adminChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.adminChatID),
			logger.String("error", err.Error()),
		)
	}
}
