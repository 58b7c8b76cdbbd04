// Package bot wires the Telegram transport to the game: onboarding,
// world navigation, menu rendering and the admin command table.
package bot

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/SM-TRIBE/Crismon/internal/config"
	"github.com/SM-TRIBE/Crismon/internal/i18n"
	"github.com/SM-TRIBE/Crismon/internal/store"
)

// Sender is the slice of the Telegram client the handlers depend on.
// *tgbotapi.BotAPI satisfies it; tests substitute a recording fake.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// defaultRevertDelay is how long profile, inventory and NPC dialogue
// views stay up before reverting to the main menu.
const defaultRevertDelay = 4 * time.Second

type Bot struct {
	api    Sender
	client *tgbotapi.BotAPI

	cfg   *config.Config
	store *store.Store
	tr    *i18n.Translator
	log   zerolog.Logger

	reverts     *revertScheduler
	revertDelay time.Duration
}

// New authenticates against the Telegram API and builds the bot.
func New(cfg *config.Config, st *store.Store, tr *i18n.Translator, log zerolog.Logger) (*Bot, error) {
	client, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	client.Debug = false
	log.Info().Str("account", client.Self.UserName).Msg("authorized")

	b := newBot(client, cfg, st, tr, log)
	b.client = client
	return b, nil
}

func newBot(api Sender, cfg *config.Config, st *store.Store, tr *i18n.Translator, log zerolog.Logger) *Bot {
	return &Bot{
		api:         api,
		cfg:         cfg,
		store:       st,
		tr:          tr,
		log:         log,
		reverts:     newRevertScheduler(),
		revertDelay: defaultRevertDelay,
	}
}

// Start long-polls for updates until the channel closes. Updates are
// handled sequentially to completion, so record mutation stays a plain
// read-modify-write with no locking beyond the store's own.
func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	for update := range b.client.GetUpdatesChan(u) {
		b.HandleUpdate(update)
	}
	return nil
}

// HandleUpdate dispatches one inbound event.
func (b *Bot) HandleUpdate(update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.Voice != nil:
		b.handleVoice(update.Message)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(update.Message)
	case update.Message != nil:
		b.handleText(update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	}
}

func (b *Bot) handleCommand(m *tgbotapi.Message) {
	b.reverts.Cancel(m.From.ID)

	name := m.Command()
	if name == "start" {
		b.handleStart(m)
		return
	}
	if _, ok := adminCommands[name]; ok {
		b.runAdminCommand(name, m)
	}
	// Anything else is not a command of ours; stay silent.
}

func (b *Bot) isAdmin(id int64) bool { return id == b.cfg.AdminID }

// phrase resolves a localized phrase with optional template data.
func (b *Bot) phrase(lang, key string, data map[string]any) string {
	return b.tr.T(lang, key, data)
}

// send delivers c and reports success; failures are logged, never raised.
func (b *Bot) send(c tgbotapi.Chattable) bool {
	if _, err := b.api.Send(c); err != nil {
		b.log.Error().Err(err).Msg("send failed")
		return false
	}
	return true
}

// reply sends plain text to a chat.
func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

// replyMarkdown sends Markdown-formatted text to a chat.
func (b *Bot) replyMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	b.send(msg)
}

// edit rewrites the message behind a callback in place, falling back to
// a fresh message when the edit is refused (e.g. the message is too old).
func (b *Bot) edit(cb *tgbotapi.CallbackQuery, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID

	var c tgbotapi.Chattable
	if keyboard != nil {
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, cb.Message.MessageID, text, *keyboard)
		edit.ParseMode = tgbotapi.ModeMarkdown
		c = edit
	} else {
		edit := tgbotapi.NewEditMessageText(chatID, cb.Message.MessageID, text)
		edit.ParseMode = tgbotapi.ModeMarkdown
		c = edit
	}
	if _, err := b.api.Send(c); err != nil {
		b.log.Warn().Err(err).Msg("could not edit message, sending new one")
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = tgbotapi.ModeMarkdown
		if keyboard != nil {
			msg.ReplyMarkup = *keyboard
		}
		b.send(msg)
	}
}

// stripInlineKeyboard removes the inline control from the message behind
// a callback, so a moderation button cannot be pressed twice.
func (b *Bot) stripInlineKeyboard(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		return
	}
	edit := tgbotapi.NewEditMessageReplyMarkup(cb.Message.Chat.ID, cb.Message.MessageID,
		tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}})
	if _, err := b.api.Request(edit); err != nil {
		b.log.Warn().Err(err).Msg("could not strip inline keyboard")
	}
}

func displayName(u *tgbotapi.User) string {
	name := u.FirstName
	if u.LastName != "" {
		name += " " + u.LastName
	}
	return name
}
