package bot

import (
	"encoding/json"
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/SM-TRIBE/Crismon/internal/models"
	"github.com/SM-TRIBE/Crismon/internal/world"
)

// adminCommand is one privileged operation. Shared dispatch enforces the
// admin gate and the argument-count bound before run is called; handlers
// only validate their own argument values.
type adminCommand struct {
	usage   string
	desc    string
	minArgs int
	run     func(b *Bot, m *tgbotapi.Message, args []string)
}

var adminCommands map[string]*adminCommand

// Populated in init rather than a package-level composite literal:
// handlers reference adminCommands for usage strings, which would
// otherwise form an initialization cycle.
func init() {
	adminCommands = map[string]*adminCommand{
		"adminhelp": {
			usage: "/adminhelp",
			desc:  "This message",
			run:   (*Bot).adminHelp,
		},
		"broadcast": {
			usage:   "/broadcast <message>",
			desc:    "Send message to all players",
			minArgs: 1,
			run:     (*Bot).adminBroadcast,
		},
		"playerinfo": {
			usage:   "/playerinfo <user_id>",
			desc:    "Get player's data",
			minArgs: 1,
			run:     (*Bot).adminPlayerInfo,
		},
		"setstat": {
			usage:   "/setstat <user_id> <stat> <value>",
			desc:    "Set a player's stat",
			minArgs: 3,
			run:     (*Bot).adminSetStat,
		},
		"giveitem": {
			usage:   "/giveitem <user_id> <item>",
			desc:    "Give item to player",
			minArgs: 2,
			run:     (*Bot).adminGiveItem,
		},
		"givemoney": {
			usage:   "/givemoney <user_id> <amount>",
			desc:    "Give currency to player",
			minArgs: 2,
			run:     (*Bot).adminGiveMoney,
		},
		"setvip": {
			usage:   "/setvip <user_id> <on|off>",
			desc:    "Set VIP status for a player",
			minArgs: 2,
			run:     (*Bot).adminSetVIP,
		},
		"teleport": {
			usage:   "/teleport <user_id> <district>",
			desc:    "Teleport a player",
			minArgs: 2,
			run:     (*Bot).adminTeleport,
		},
		"whisper": {
			usage:   "/whisper <user_id> <message>",
			desc:    "Send a private message to a player",
			minArgs: 2,
			run:     (*Bot).adminWhisper,
		},
	}
}

func (b *Bot) runAdminCommand(name string, m *tgbotapi.Message) {
	if !b.isAdmin(m.From.ID) {
		b.reply(m.Chat.ID, "You are not worthy.")
		return
	}

	cmd := adminCommands[name]
	args := strings.Fields(m.CommandArguments())
	if len(args) < cmd.minArgs {
		b.reply(m.Chat.ID, "Usage: "+cmd.usage)
		return
	}
	cmd.run(b, m, args)
}

// resolveTarget parses a target user ID and looks the record up without
// creating one. On failure it replies and reports false; the caller
// mutates nothing.
func (b *Bot) resolveTarget(m *tgbotapi.Message, arg string) (int64, *models.Player, bool) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		b.reply(m.Chat.ID, fmt.Sprintf("Invalid user id %q.", arg))
		return 0, nil, false
	}
	p, ok := b.store.Lookup(id)
	if !ok {
		b.reply(m.Chat.ID, fmt.Sprintf("Player %d not found.", id))
		return 0, nil, false
	}
	return id, p, true
}

func (b *Bot) adminHelp(m *tgbotapi.Message, _ []string) {
	names := make([]string, 0, len(adminCommands))
	for name := range adminCommands {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("*Crimson City God Mode*\n")
	for _, name := range names {
		cmd := adminCommands[name]
		fmt.Fprintf(&sb, "%s - %s\n", cmd.usage, cmd.desc)
	}
	b.replyMarkdown(m.Chat.ID, sb.String())
}

// adminBroadcast delivers to every approved player in their own language.
// The count is of enqueued sends; a per-recipient failure is logged and
// the loop moves on.
func (b *Bot) adminBroadcast(m *tgbotapi.Message, args []string) {
	message := strings.Join(args, " ")

	count := 0
	for id, p := range b.store.Approved() {
		header := b.phrase(p.Lang, "broadcast_header", nil)
		msg := tgbotapi.NewMessage(id, header+"\n\n"+message)
		if _, err := b.api.Send(msg); err != nil {
			b.log.Error().Err(err).Int64("user_id", id).Msg("broadcast delivery failed")
			continue
		}
		count++
	}
	b.reply(m.Chat.ID, fmt.Sprintf("Broadcast sent to %d players.", count))
}

func (b *Bot) adminPlayerInfo(m *tgbotapi.Message, args []string) {
	id, p, ok := b.resolveTarget(m, args[0])
	if !ok {
		return
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		b.reply(m.Chat.ID, fmt.Sprintf("Could not encode player %d: %v", id, err))
		return
	}
	msg := tgbotapi.NewMessage(m.Chat.ID, "<code>"+html.EscapeString(string(data))+"</code>")
	msg.ParseMode = tgbotapi.ModeHTML
	b.send(msg)
}

func (b *Bot) adminSetStat(m *tgbotapi.Message, args []string) {
	value, err := strconv.Atoi(args[2])
	if err != nil {
		b.reply(m.Chat.ID, "Usage: "+adminCommands["setstat"].usage)
		return
	}

	id, p, ok := b.resolveTarget(m, args[0])
	if !ok {
		return
	}

	stat := strings.ToLower(args[1])
	if !p.Stats.Set(stat, value) {
		b.reply(m.Chat.ID, "Invalid stat. Use: charm, intellect, street_smarts.")
		return
	}
	b.store.Update(id, p)
	b.reply(m.Chat.ID, fmt.Sprintf("Set %s to %d for player %d.", stat, value, id))
}

func (b *Bot) adminGiveItem(m *tgbotapi.Message, args []string) {
	id, p, ok := b.resolveTarget(m, args[0])
	if !ok {
		return
	}

	item := strings.Join(args[1:], " ")
	p.Inventory = append(p.Inventory, item)
	b.store.Update(id, p)
	b.reply(m.Chat.ID, fmt.Sprintf("Gave %q to player %d.", item, id))
}

// adminGiveMoney applies a signed delta; there is no floor, a negative
// amount can push the balance below zero.
func (b *Bot) adminGiveMoney(m *tgbotapi.Message, args []string) {
	amount, err := strconv.Atoi(args[1])
	if err != nil {
		b.reply(m.Chat.ID, "Usage: "+adminCommands["givemoney"].usage)
		return
	}

	id, p, ok := b.resolveTarget(m, args[0])
	if !ok {
		return
	}

	p.Currency += amount
	b.store.Update(id, p)
	b.reply(m.Chat.ID, fmt.Sprintf("Gave %d CC to player %d. New balance: %d.", amount, id, p.Currency))
}

func (b *Bot) adminSetVIP(m *tgbotapi.Message, args []string) {
	state := strings.ToLower(args[1])
	if state != "on" && state != "off" {
		b.reply(m.Chat.ID, "Usage: "+adminCommands["setvip"].usage)
		return
	}

	id, p, ok := b.resolveTarget(m, args[0])
	if !ok {
		return
	}

	p.IsVIP = state == "on"
	b.store.Update(id, p)
	b.reply(m.Chat.ID, fmt.Sprintf("Set VIP status for player %d to %s.", id, strings.ToUpper(state)))
}

func (b *Bot) adminTeleport(m *tgbotapi.Message, args []string) {
	dest := args[1]
	if !world.DistrictExists(dest) {
		keys := world.DistrictKeys()
		sort.Strings(keys)
		b.reply(m.Chat.ID, "Invalid location key. Valid keys: "+strings.Join(keys, ", "))
		return
	}

	id, p, ok := b.resolveTarget(m, args[0])
	if !ok {
		return
	}

	p.Location = dest
	b.store.Update(id, p)
	b.reply(m.Chat.ID, fmt.Sprintf("Teleported player %d to %s.", id, dest))
}

// adminWhisper reaches a player regardless of approval state.
func (b *Bot) adminWhisper(m *tgbotapi.Message, args []string) {
	id, p, ok := b.resolveTarget(m, args[0])
	if !ok {
		return
	}

	message := strings.Join(args[1:], " ")
	header := b.phrase(p.Lang, "whisper_header", nil)
	b.replyMarkdown(id, header+"\n\n_"+message+"_")
	b.reply(m.Chat.ID, fmt.Sprintf("Whisper sent to %d.", id))
}
