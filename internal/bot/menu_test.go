package bot

import (
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestLookFiltersVIPLocations(t *testing.T) {
	b, api := newTestBot(t)
	freePlayPlayer(b, 42)

	b.HandleUpdate(press(42, "main_look"))
	got := api.lastTextTo(42)
	if !strings.Contains(got, "Downtown") {
		t.Fatalf("look = %q, want district name", got)
	}
	if !strings.Contains(got, "The Onyx Bar") {
		t.Errorf("look omitted a public location: %q", got)
	}
	if strings.Contains(got, "VIP Lounge") {
		t.Errorf("look leaked a VIP location to a non-VIP player: %q", got)
	}

	p, _ := b.store.Lookup(42)
	p.IsVIP = true
	b.store.Update(42, p)

	b.HandleUpdate(press(42, "main_look"))
	if got := api.lastTextTo(42); !strings.Contains(got, "VIP Lounge") {
		t.Errorf("look hid a VIP location from a VIP player: %q", got)
	}
}

func TestLookOffersTalkTargets(t *testing.T) {
	b, api := newTestBot(t)
	freePlayPlayer(b, 42)

	b.HandleUpdate(press(42, "main_look"))

	api.mu.Lock()
	last := api.sent[len(api.sent)-1].raw
	api.mu.Unlock()
	edit, ok := last.(tgbotapi.EditMessageTextConfig)
	if !ok {
		t.Fatalf("look did not edit in place: %T", last)
	}
	var talk bool
	for _, row := range edit.ReplyMarkup.InlineKeyboard {
		for _, btn := range row {
			if btn.CallbackData != nil && *btn.CallbackData == "talk_slick_the_bartender" {
				talk = true
			}
		}
	}
	if !talk {
		t.Error("look keyboard has no talk button for the bartender")
	}
}

func TestGodPresence(t *testing.T) {
	b, api := newTestBot(t)
	freePlayPlayer(b, 42)

	// The admin's default record stands downtown too.
	b.HandleUpdate(press(42, "main_look"))
	if got := api.lastTextTo(42); !strings.Contains(got, "overwhelming presence") {
		t.Errorf("look = %q, want presence line", got)
	}

	// Move the admin elsewhere; the line disappears.
	admin := b.store.Get(adminID)
	admin.Location = "neon_district"
	b.store.Update(adminID, admin)
	b.HandleUpdate(press(42, "main_look"))
	if got := api.lastTextTo(42); strings.Contains(got, "overwhelming presence") {
		t.Errorf("look = %q, presence line for absent admin", got)
	}

	// The admin never senses themselves.
	freePlayPlayer(b, adminID)
	b.HandleUpdate(press(adminID, "main_look"))
	if got := api.lastTextTo(adminID); strings.Contains(got, "overwhelming presence") {
		t.Errorf("admin look = %q, want no presence line", got)
	}
}

func TestMoveOffersConnectionsAndMoves(t *testing.T) {
	b, api := newTestBot(t)
	freePlayPlayer(b, 42)

	b.HandleUpdate(press(42, "main_move"))
	api.mu.Lock()
	last := api.sent[len(api.sent)-1].raw
	api.mu.Unlock()
	edit, ok := last.(tgbotapi.EditMessageTextConfig)
	if !ok {
		t.Fatalf("move picker did not edit in place: %T", last)
	}
	// Three connections from downtown plus the back row.
	if got := len(edit.ReplyMarkup.InlineKeyboard); got != 4 {
		t.Fatalf("move picker rows = %d, want 4", got)
	}

	b.HandleUpdate(press(42, "move_to_neon_district"))
	p, _ := b.store.Lookup(42)
	if p.Location != "neon_district" {
		t.Fatalf("location = %q, want neon_district", p.Location)
	}
	var confirmed bool
	for _, text := range api.textsTo(42) {
		if strings.Contains(text, "Neon District") && strings.Contains(text, "arrive") {
			confirmed = true
		}
	}
	if !confirmed {
		t.Error("move confirmation naming the destination was not sent")
	}
}

func TestMoveToUnknownDistrictIsRefused(t *testing.T) {
	b, _ := newTestBot(t)
	freePlayPlayer(b, 42)

	b.HandleUpdate(press(42, "move_to_atlantis"))
	p, _ := b.store.Lookup(42)
	if p.Location != "downtown" {
		t.Fatalf("stale button moved player to %q", p.Location)
	}
}

func TestProfileViewAndRevert(t *testing.T) {
	b, api := newTestBot(t)
	freePlayPlayer(b, 42)

	b.HandleUpdate(press(42, "main_profile"))
	got := api.lastTextTo(42)
	for _, want := range []string{"Vex", "Street Hustler", "100 CC", "Street Smarts: 3"} {
		if !strings.Contains(got, want) {
			t.Errorf("profile = %q, missing %q", got, want)
		}
	}

	// The view reverts to the main menu after the delay.
	before := api.sentCount()
	waitFor(t, func() bool { return api.sentCount() > before }, "profile view never reverted to the menu")
	if got := api.lastTextTo(42); !strings.Contains(got, "next move") {
		t.Errorf("revert = %q, want main menu prompt", got)
	}
}

func TestInventoryView(t *testing.T) {
	b, api := newTestBot(t)
	freePlayPlayer(b, 42)

	b.HandleUpdate(press(42, "main_inventory"))
	if got := api.lastTextTo(42); !strings.Contains(got, "pockets are empty") {
		t.Errorf("empty inventory = %q", got)
	}

	p, _ := b.store.Lookup(42)
	p.Inventory = append(p.Inventory, "switchblade", "lucky coin")
	b.store.Update(42, p)

	b.HandleUpdate(press(42, "main_inventory"))
	got := api.lastTextTo(42)
	first := strings.Index(got, "switchblade")
	second := strings.Index(got, "lucky coin")
	if first < 0 || second < 0 || second < first {
		t.Errorf("inventory = %q, want items in insertion order", got)
	}
}

func TestTalkShowsDialogueThenReverts(t *testing.T) {
	b, api := newTestBot(t)
	freePlayPlayer(b, 42)

	b.HandleUpdate(press(42, "talk_slick_the_bartender"))
	if got := api.lastTextTo(42); !strings.Contains(got, "The city always collects") {
		t.Fatalf("talk = %q, want dialogue line", got)
	}

	before := api.sentCount()
	waitFor(t, func() bool { return api.sentCount() > before }, "talk view never reverted to the menu")
}

func TestNavigationCancelsPendingRevert(t *testing.T) {
	b, api := newTestBot(t)
	freePlayPlayer(b, 42)

	// Open the profile (arming a revert), then navigate away before it
	// fires: the stale revert must not overwrite the new view.
	b.HandleUpdate(press(42, "main_profile"))
	b.HandleUpdate(press(42, "main_look"))

	count := api.sentCount()
	time.Sleep(4 * b.revertDelay)
	if api.sentCount() != count {
		t.Error("canceled revert still rendered")
	}
}
