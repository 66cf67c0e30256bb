// Package bot adapts the conversation controller to Telegram long polling:
// commands and callback presses become controller actions, Views become
// inline-keyboard messages.
package bot

import (
	"context"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/fixturebot/fixturebot/internal/controller"
	"github.com/fixturebot/fixturebot/internal/view"
)

const defaultUpdateTimeout = 60

type Bot struct {
	api  *tgbotapi.BotAPI
	ctrl *controller.Controller

	updateTimeout int
}

func New(token string, ctrl *controller.Controller, updateTimeout int) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	api.Debug = false

	if updateTimeout <= 0 {
		updateTimeout = defaultUpdateTimeout
	}
	return &Bot{api: api, ctrl: ctrl, updateTimeout: updateTimeout}, nil
}

// Run polls for updates until ctx is cancelled. Each update is handled on its
// own goroutine so one chat's slow fetch does not stall another's.
func (b *Bot) Run(ctx context.Context) error {
	slog.Info("bot authorized", "account", b.api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.updateTimeout
	updates := b.api.GetUpdatesChan(u)

	var wg sync.WaitGroup
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			wg.Wait()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				wg.Wait()
				return nil
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				b.handleUpdate(ctx, update)
			}()
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(update.Message)
	}
}

func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if !msg.IsCommand() {
		return
	}

	switch msg.Command() {
	case "start", "menu":
		v := b.ctrl.OpenMenu(msg.Chat.ID)
		b.send(msg.Chat.ID, v)
	case "help":
		b.send(msg.Chat.ID, view.View{Text: helpText})
	default:
		b.send(msg.Chat.ID, view.View{Text: "Unknown command. Use /menu to browse matches or /help for details."})
	}
}

func (b *Bot) handleCallback(ctx context.Context, q *tgbotapi.CallbackQuery) {
	// Ack first so the client stops its spinner even when the fetch is slow.
	if _, err := b.api.Request(tgbotapi.NewCallback(q.ID, "")); err != nil {
		slog.Warn("callback ack failed", "error", err)
	}

	if q.Message == nil {
		return
	}
	chatID := q.Message.Chat.ID
	messageID := q.Message.MessageID

	action := controller.ParseAction(q.Data)
	progress := &editProgress{bot: b, chatID: chatID, messageID: messageID}

	v, ok := b.ctrl.Handle(ctx, chatID, action, progress)
	if !ok {
		return
	}
	b.edit(chatID, messageID, v)
}

// editProgress rewrites the menu message in place with a transient
// placeholder while the controller fetches.
type editProgress struct {
	bot       *Bot
	chatID    int64
	messageID int
}

func (p *editProgress) Working(text string) {
	p.bot.edit(p.chatID, p.messageID, view.Working(text))
}

func (b *Bot) send(chatID int64, v view.View) {
	msg := tgbotapi.NewMessage(chatID, v.Text)
	if kb, ok := keyboard(v); ok {
		msg.ReplyMarkup = kb
	}
	if _, err := b.api.Send(msg); err != nil {
		slog.Warn("send failed", "chat", chatID, "error", err)
	}
}

func (b *Bot) edit(chatID int64, messageID int, v view.View) {
	var c tgbotapi.Chattable
	if kb, ok := keyboard(v); ok {
		c = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, v.Text, kb)
	} else {
		c = tgbotapi.NewEditMessageText(chatID, messageID, v.Text)
	}
	if _, err := b.api.Send(c); err != nil {
		slog.Warn("edit failed", "chat", chatID, "error", err)
	}
}

func keyboard(v view.View) (tgbotapi.InlineKeyboardMarkup, bool) {
	if len(v.Keyboard) == 0 {
		return tgbotapi.InlineKeyboardMarkup{}, false
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(v.Keyboard))
	for _, row := range v.Keyboard {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(btn.Label, btn.Data))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...), true
}

const helpText = `🤖 Fixture browser

/menu — pick a sport and browse today's or tomorrow's matches
/help — this message

Tap a match to see recent form plus probable goalies (NHL) or
probable pitchers (MLB). Everything shown is informational only.`
