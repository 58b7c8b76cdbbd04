package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/SM-TRIBE/Crismon/internal/i18n"
	"github.com/SM-TRIBE/Crismon/internal/models"
	"github.com/SM-TRIBE/Crismon/internal/world"
)

// handleCallback routes every button press by its payload prefix.
func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.log.Warn().Err(err).Msg("could not acknowledge callback")
	}

	userID := cb.From.ID
	b.reverts.Cancel(userID)

	data := cb.Data
	switch {
	case strings.HasPrefix(data, "approve_"), strings.HasPrefix(data, "reject_"):
		if !b.isAdmin(userID) {
			return
		}
		b.handleModeration(cb)
	case strings.HasPrefix(data, "set_lang_"):
		b.handleSetLanguage(cb)
	case strings.HasPrefix(data, "set_prof_"):
		b.handleSetProfession(cb)
	case strings.HasPrefix(data, "move_to_"):
		b.handleMoveTo(cb)
	case strings.HasPrefix(data, "talk_"):
		b.handleTalk(cb)
	default:
		b.handleMenuAction(cb)
	}
}

// handleModeration resolves an approve/reject button on a pending clip.
// Both paths strip the inline control so the decision is single-shot.
func (b *Bot) handleModeration(cb *tgbotapi.CallbackQuery) {
	action, idStr, _ := strings.Cut(cb.Data, "_")
	targetID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return
	}

	b.stripInlineKeyboard(cb)

	if action == "approve" {
		p := b.store.Get(targetID)
		p.Approved = true
		p.PendingApproval = false
		b.store.Update(targetID, p)

		b.reply(b.cfg.AdminID, fmt.Sprintf("User %d approved.", targetID))
		b.reply(targetID, b.phrase(p.Lang, "approval_success", nil))
		b.promptCharacterName(targetID)
		return
	}

	// Reject: the record is removed outright; a later /start rebuilds
	// fresh defaults. The rejected player is deliberately not notified.
	b.store.Delete(targetID)
	b.reply(b.cfg.AdminID, fmt.Sprintf("User %d rejected and data deleted.", targetID))
}

// handleSetLanguage serves both onboarding step 2 and the main-menu
// language action. Only a not-yet-approved player is moved on to the
// voice-verification step.
func (b *Bot) handleSetLanguage(cb *tgbotapi.CallbackQuery) {
	lang := strings.TrimPrefix(cb.Data, "set_lang_")
	known := false
	for _, l := range i18n.Langs {
		if l == lang {
			known = true
			break
		}
	}
	if !known {
		return
	}

	userID := cb.From.ID
	p := b.store.Get(userID)
	p.Lang = lang

	if p.Approved {
		b.store.Update(userID, p)
		kb := mainMenuKeyboard(b, lang)
		b.edit(cb, b.phrase(lang, "language_set", nil)+"\n\n"+b.phrase(lang, "main_menu_prompt", nil), &kb)
		return
	}

	p.NextStep = models.StepSubmitVoice
	b.store.Update(userID, p)
	b.edit(cb, b.phrase(lang, "voice_prompt", nil), nil)
}

// handleSetProfession applies the one-time profession choice. A stale
// button after creation is a no-op guard, not an error.
func (b *Bot) handleSetProfession(cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	p := b.store.Get(userID)
	if !p.Approved {
		return
	}
	if p.CharacterCreated {
		b.renderMainMenu(cb, p.Lang)
		return
	}

	prof := models.Profession(strings.TrimPrefix(cb.Data, "set_prof_"))
	if !p.ApplyProfession(prof) {
		return
	}
	b.store.Update(userID, p)

	b.edit(cb, b.phrase(p.Lang, "character_creation_complete", map[string]any{"Name": p.Name}), nil)
	b.sendMainMenu(userID, p.Lang)
}

// handleMoveTo sets the player's district. The key is validated so a
// stale button can never leave the record pointing at nothing.
func (b *Bot) handleMoveTo(cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	p := b.store.Get(userID)

	dest := strings.TrimPrefix(cb.Data, "move_to_")
	if !world.DistrictExists(dest) {
		b.renderMainMenu(cb, p.Lang)
		return
	}

	p.Location = dest
	b.store.Update(userID, p)

	name := world.Districts[dest].Name(p.Lang)
	b.edit(cb, b.phrase(p.Lang, "move_success", map[string]any{"Location": name}), nil)
	b.sendMainMenu(userID, p.Lang)
}

// handleTalk shows the NPC's line, then reverts to the main menu.
func (b *Bot) handleTalk(cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	p := b.store.Get(userID)

	npcKey := strings.TrimPrefix(cb.Data, "talk_")
	npc, ok := world.NPCs[npcKey]
	if !ok {
		b.renderMainMenu(cb, p.Lang)
		return
	}

	b.edit(cb, "_"+npc.Line(p.Lang)+"_", nil)
	b.scheduleMenuRevert(userID, p.Lang)
}

func (b *Bot) scheduleMenuRevert(userID int64, lang string) {
	b.reverts.Schedule(userID, b.revertDelay, func() {
		b.sendMainMenu(userID, lang)
	})
}
