package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/SM-TRIBE/Crismon/internal/models"
	"github.com/SM-TRIBE/Crismon/internal/world"
)

// handleMenuAction serves the five fixed main-menu buttons.
func (b *Bot) handleMenuAction(cb *tgbotapi.CallbackQuery) {
	userID := cb.From.ID
	p := b.store.Get(userID)

	switch cb.Data {
	case "main_look":
		b.renderLook(cb, userID, p)
	case "main_move":
		b.renderMovePicker(cb, p)
	case "main_profile":
		b.edit(cb, b.renderProfile(p), nil)
		b.scheduleMenuRevert(userID, p.Lang)
	case "main_inventory":
		b.edit(cb, b.renderInventory(p), nil)
		b.scheduleMenuRevert(userID, p.Lang)
	case "main_language":
		kb := languageKeyboard()
		b.edit(cb, "Choose your language / زبان خود را انتخاب کنید", &kb)
	case "main_back":
		b.renderMainMenu(cb, p.Lang)
	}
}

// renderLook describes the player's district: sub-locations filtered by
// the VIP gate, their NPCs as talk targets, and the presence flavor line
// when the admin's own record stands in the same district.
func (b *Bot) renderLook(cb *tgbotapi.CallbackQuery, userID int64, p *models.Player) {
	lang := p.Lang
	d, ok := world.Districts[p.Location]
	if !ok {
		b.renderMainMenu(cb, lang)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📍 *%s*\n\n%s", d.Name(lang), d.Description(lang))

	// Fresh read on every look: the admin's own location doubles as the
	// "god presence" world signal.
	admin := b.store.Get(b.cfg.AdminID)
	if admin.Location == p.Location && !b.isAdmin(userID) {
		sb.WriteString("\n\n_" + b.phrase(lang, "god_presence", nil) + "_")
	}

	var visible []string
	var npcKeys []string
	for _, lk := range d.Locations {
		loc := world.Locations[lk]
		if loc.RequiresVIP && !p.IsVIP {
			continue
		}
		visible = append(visible, loc.Name(lang))
		npcKeys = append(npcKeys, loc.NPCs...)
	}
	if len(visible) > 0 {
		sb.WriteString("\n\n" + b.phrase(lang, "places_in_district", nil))
		for _, name := range visible {
			sb.WriteString("\n- " + name)
		}
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	if len(npcKeys) > 0 {
		sb.WriteString("\n\n" + b.phrase(lang, "npcs_in_area", nil))
		for _, nk := range npcKeys {
			npc := world.NPCs[nk]
			label := fmt.Sprintf("🗣️ %s %s", b.phrase(lang, "talk_to", nil), npc.Name(lang))
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(label, "talk_"+nk)))
		}
	}
	rows = append(rows, backRow(b, lang))

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.edit(cb, sb.String(), &kb)
}

// renderMovePicker lists the current district's connections as buttons.
func (b *Bot) renderMovePicker(cb *tgbotapi.CallbackQuery, p *models.Player) {
	lang := p.Lang
	d, ok := world.Districts[p.Location]
	if !ok {
		b.renderMainMenu(cb, lang)
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, conn := range d.Connections {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(world.Districts[conn].Name(lang), "move_to_"+conn)))
	}
	rows = append(rows, backRow(b, lang))

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.edit(cb, b.phrase(lang, "move_prompt", nil), &kb)
}

// renderProfile formats the profile view from the record alone.
func (b *Bot) renderProfile(p *models.Player) string {
	vip := "vip_status_no"
	if p.IsVIP {
		vip = "vip_status_yes"
	}
	return b.phrase(p.Lang, "profile_view", map[string]any{
		"Name":         p.Name,
		"Profession":   b.phrase(p.Lang, "prof_"+string(p.Profession), nil),
		"VIPStatus":    b.phrase(p.Lang, vip, nil),
		"Currency":     p.Currency,
		"Charm":        p.Stats.Charm,
		"Intellect":    p.Stats.Intellect,
		"StreetSmarts": p.Stats.StreetSmarts,
	})
}

// renderInventory formats the item list in insertion order.
func (b *Bot) renderInventory(p *models.Player) string {
	if len(p.Inventory) == 0 {
		return b.phrase(p.Lang, "inventory_empty", nil)
	}
	var sb strings.Builder
	sb.WriteString("*" + b.phrase(p.Lang, "menu_inventory", nil) + "*\n")
	for _, item := range p.Inventory {
		sb.WriteString("- " + item + "\n")
	}
	return sb.String()
}

// renderMainMenu rewrites the callback's message into the main menu.
func (b *Bot) renderMainMenu(cb *tgbotapi.CallbackQuery, lang string) {
	kb := mainMenuKeyboard(b, lang)
	b.edit(cb, b.phrase(lang, "main_menu_prompt", nil), &kb)
}

func mainMenuKeyboard(b *Bot, lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(b.phrase(lang, "menu_look", nil), "main_look")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(b.phrase(lang, "menu_move", nil), "main_move")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(b.phrase(lang, "menu_profile", nil), "main_profile")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(b.phrase(lang, "menu_inventory", nil), "main_inventory")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(b.phrase(lang, "menu_language", nil), "main_language")),
	)
}

func backRow(b *Bot, lang string) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« "+b.phrase(lang, "back_button", nil), "main_back"))
}
