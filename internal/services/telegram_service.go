package services

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"crmlite/internal/models"
)

// TelegramService pushes lead events into a staff chat. Construction
// talks to the Telegram API once (getMe), so a bad token fails fast at
// startup instead of on the first notification.
type TelegramService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramService(botToken string, chatID int64) (*TelegramService, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &TelegramService{bot: bot, chatID: chatID}, nil
}

func (t *TelegramService) send(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

func (t *TelegramService) LeadCreated(lead *models.Lead) error {
	return t.send(fmt.Sprintf(
		"🆕 New lead: <b>%s</b> (%s)\nFound us via: %s",
		lead.Name, lead.Email, lead.HowDidYouFindOut,
	))
}

func (t *TelegramService) LeadConverted(lead *models.Lead, client *models.Client) error {
	return t.send(fmt.Sprintf(
		"✅ Lead <b>%s</b> promoted to client %s",
		lead.Name, client.ClientID,
	))
}
