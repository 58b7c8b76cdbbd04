package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/SM-TRIBE/Crismon/internal/models"
)

// languagePrompt is shown before any language is chosen, so it carries
// both supported languages at once.
const languagePrompt = "Welcome to Crimson City. Please choose your language.\n\n" +
	"به شهر کریمسون خوش آمدید. لطفاً زبان خود را انتخاب کنید."

// handleStart re-renders the prompt appropriate for the player's current
// onboarding state. It never reverts progress.
func (b *Bot) handleStart(m *tgbotapi.Message) {
	userID := m.From.ID
	p := b.store.Get(userID)

	switch {
	case p.Approved && p.CharacterCreated:
		b.reply(m.Chat.ID, b.phrase(p.Lang, "welcome_back", map[string]any{"Name": p.Name}))
		b.sendMainMenu(userID, p.Lang)
	case p.Approved:
		b.promptCharacterName(userID)
	case p.PendingApproval:
		b.reply(m.Chat.ID, b.phrase(p.Lang, "approval_pending", nil))
	default:
		msg := tgbotapi.NewMessage(m.Chat.ID, languagePrompt)
		msg.ReplyMarkup = languageKeyboard()
		b.send(msg)
	}
}

// handleText consumes free text only when a character name is expected.
func (b *Bot) handleText(m *tgbotapi.Message) {
	userID := m.From.ID
	b.reverts.Cancel(userID)

	p := b.store.Get(userID)
	if !p.Approved || p.NextStep != models.StepCreateName {
		return
	}

	p.Name = m.Text
	p.NextStep = models.StepNone
	b.store.Update(userID, p)

	msg := tgbotapi.NewMessage(m.Chat.ID, b.phrase(p.Lang, "character_creation_profession", nil))
	msg.ReplyMarkup = professionKeyboard(b, p.Lang)
	b.send(msg)
}

// handleVoice accepts the one verification clip a player may submit.
// Anything out of turn gets the "already submitted" notice and changes
// nothing.
func (b *Bot) handleVoice(m *tgbotapi.Message) {
	userID := m.From.ID
	b.reverts.Cancel(userID)

	p := b.store.Get(userID)
	if p.Approved || p.PendingApproval || p.NextStep != models.StepSubmitVoice {
		b.reply(m.Chat.ID, b.phrase(p.Lang, "voice_already_submitted", nil))
		return
	}

	p.VoiceFileID = m.Voice.FileID
	p.PendingApproval = true
	p.NextStep = models.StepNone
	b.store.Update(userID, p)

	b.reply(m.Chat.ID, b.phrase(p.Lang, "approval_pending", nil))

	b.reply(b.cfg.AdminID, fmt.Sprintf("New user for approval: %s (ID: %d)", displayName(m.From), userID))
	voice := tgbotapi.NewVoice(b.cfg.AdminID, tgbotapi.FileID(p.VoiceFileID))
	voice.ReplyMarkup = moderationKeyboard(userID)
	b.send(voice)
}

// promptCharacterName starts character creation for an approved player.
func (b *Bot) promptCharacterName(userID int64) {
	p := b.store.Get(userID)
	p.NextStep = models.StepCreateName
	b.store.Update(userID, p)
	b.reply(userID, b.phrase(p.Lang, "character_creation_name", nil))
}

// sendMainMenu delivers a fresh main menu message.
func (b *Bot) sendMainMenu(chatID int64, lang string) {
	msg := tgbotapi.NewMessage(chatID, b.phrase(lang, "main_menu_prompt", nil))
	msg.ReplyMarkup = mainMenuKeyboard(b, lang)
	b.send(msg)
}

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("English", "set_lang_en")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("فارسی (Persian)", "set_lang_fa")),
	)
}

func professionKeyboard(b *Bot, lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(b.phrase(lang, "prof_hustler", nil), "set_prof_hustler")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(b.phrase(lang, "prof_intellectual", nil), "set_prof_intellectual")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(b.phrase(lang, "prof_charmer", nil), "set_prof_charmer")),
	)
}

// moderationKeyboard carries the submitter's ID in the callback payload.
func moderationKeyboard(userID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Approve", fmt.Sprintf("approve_%d", userID)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Reject", fmt.Sprintf("reject_%d", userID)),
		),
	)
}
