package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/SimonPalm99/fbc-nykoping-lagapp-sub003/internal/domain"
)

// NameResolver maps a user id to a display name. userdir.Directory
// implements it.
type NameResolver interface {
	DisplayName(userID string) string
}

// Telegram announces issued fines in the club's Telegram chat. It is
// fire-and-forget: delivery failures are logged, never propagated, and the
// fine engine works the same without it.
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	names  NameResolver
	log    *zap.Logger
}

// New creates a notifier for the given bot token and chat.
func New(token string, chatID int64, names NameResolver, log *zap.Logger) (*Telegram, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	return &Telegram{bot: bot, chatID: chatID, names: names, log: log}, nil
}

// FineIssued formats and sends one fine announcement. Wire it as an engine
// fine-issued hook.
func (t *Telegram) FineIssued(f domain.Fine) {
	text := fmt.Sprintf("💸 Ny bot: %s\n%s\n%d kr, betalas senast %s",
		t.names.DisplayName(f.UserID),
		f.Reason,
		f.Amount,
		f.DueDate.Format("2006-01-02"),
	)
	if _, err := t.bot.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		t.log.Error("fine notification failed",
			zap.Error(err),
			zap.String("fine", f.ID),
		)
	}
}
