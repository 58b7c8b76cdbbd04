package bot

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/SM-TRIBE/Crismon/internal/config"
	"github.com/SM-TRIBE/Crismon/internal/i18n"
	"github.com/SM-TRIBE/Crismon/internal/models"
	"github.com/SM-TRIBE/Crismon/internal/store"
)

const adminID int64 = 999

type sentItem struct {
	chatID int64
	text   string
	raw    tgbotapi.Chattable
}

// fakeAPI records outbound traffic instead of talking to Telegram.
// Chats listed in failChats refuse delivery.
type fakeAPI struct {
	mu        sync.Mutex
	sent      []sentItem
	requests  []tgbotapi.Chattable
	failChats map[int64]bool
}

func describe(c tgbotapi.Chattable) (int64, string) {
	switch v := c.(type) {
	case tgbotapi.MessageConfig:
		return v.ChatID, v.Text
	case tgbotapi.EditMessageTextConfig:
		return v.ChatID, v.Text
	case tgbotapi.VoiceConfig:
		return v.ChatID, "(voice)"
	}
	return 0, ""
}

func (f *fakeAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	chatID, text := describe(c)
	if f.failChats[chatID] {
		return tgbotapi.Message{}, errors.New("delivery refused")
	}
	f.sent = append(f.sent, sentItem{chatID: chatID, text: text, raw: c})
	return tgbotapi.Message{MessageID: len(f.sent)}, nil
}

func (f *fakeAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// textsTo returns every text sent or edited into a chat, in order.
func (f *fakeAPI) textsTo(chatID int64) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []string
	for _, s := range f.sent {
		if s.chatID == chatID {
			out = append(out, s.text)
		}
	}
	return out
}

func (f *fakeAPI) lastTextTo(chatID int64) string {
	texts := f.textsTo(chatID)
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1]
}

func (f *fakeAPI) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func newTestBot(t *testing.T) (*Bot, *fakeAPI) {
	t.Helper()

	tr, err := i18n.New()
	if err != nil {
		t.Fatalf("i18n.New() error = %v", err)
	}
	st := store.Open(filepath.Join(t.TempDir(), "players.json"), zerolog.Nop())
	cfg := &config.Config{TelegramToken: "test-token", AdminID: adminID}
	api := &fakeAPI{failChats: make(map[int64]bool)}

	b := newBot(api, cfg, st, tr, zerolog.Nop())
	b.revertDelay = 20 * time.Millisecond
	return b, api
}

func message(from int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: 1,
		From:      &tgbotapi.User{ID: from, FirstName: "Test"},
		Chat:      &tgbotapi.Chat{ID: from},
		Text:      text,
	}}
}

func command(from int64, text string) tgbotapi.Update {
	u := message(from, text)
	u.Message.Entities = []tgbotapi.MessageEntity{{
		Type:   "bot_command",
		Offset: 0,
		Length: len(strings.Fields(text)[0]),
	}}
	return u
}

func voice(from int64, fileID string) tgbotapi.Update {
	u := message(from, "")
	u.Message.Voice = &tgbotapi.Voice{FileID: fileID}
	return u
}

func press(from int64, data string) tgbotapi.Update {
	return tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:   "cb",
		From: &tgbotapi.User{ID: from, FirstName: "Test"},
		Data: data,
		Message: &tgbotapi.Message{
			MessageID: 2,
			Chat:      &tgbotapi.Chat{ID: from},
		},
	}}
}

// freePlayPlayer puts a player straight into the terminal steady state.
func freePlayPlayer(b *Bot, id int64) *models.Player {
	p := b.store.Get(id)
	p.Approved = true
	p.CharacterCreated = true
	p.Name = "Vex"
	p.Profession = models.ProfHustler
	p.Stats = models.Stats{Charm: 1, Intellect: 1, StreetSmarts: 3}
	b.store.Update(id, p)
	return p
}

// waitFor polls until cond holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}
