package bot

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
)

// Menu labels, in selection order. The bot offers exactly these three
// dialogs; there is no deeper state machine.
var dialogLabels = []string{
	"وقت النزوح إلى عرفة",
	"هل مسموح خروج الحجاج الان",
	"اقرب مستشفى إلى الحملة",
}

// Static dialog bodies answered per selection.
var dialogReplies = []string{
	"النزوح إلى عرفة يبدأ بعد صلاة الفجر",
	"الخروج مسموح حاليا من البوابات الرئيسية",
	"اقرب مستشفى: مستشفى منى الطوارئ - شارع الملك فيصل",
}

const (
	promptMessage = "اختر رقم الخدمة"
	retryMessage  = "محاولات كثير حاول مرة اخرى!"
)

// Message is an inbound chat message.
type Message struct {
	Conversation string `json:"conversation"`
	Text         string `json:"text"`
}

// Reply carries the bot's answer lines.
type Reply struct {
	Messages []string `json:"messages"`
}

// Bot is the numbered-menu chat front end. Conversation state is a single
// flag: whether the menu was shown and a selection is pending.
type Bot struct {
	mu      sync.Mutex
	pending map[string]bool
}

func New() *Bot {
	return &Bot{pending: make(map[string]bool)}
}

// Handler answers POST /api/messages.
func (b *Bot) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg Message
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil || msg.Conversation == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		reply := b.respond(msg)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(reply); err != nil {
			slog.Error("failed to encode bot reply", "error", err)
		}
	}
}

func (b *Bot) respond(msg Message) Reply {
	b.mu.Lock()
	pending := b.pending[msg.Conversation]
	b.mu.Unlock()

	if !pending {
		b.setPending(msg.Conversation, true)
		return menu()
	}

	selection, err := strconv.Atoi(strings.TrimSpace(msg.Text))
	if err != nil || selection < 1 || selection > len(dialogReplies) {
		// Bad selection restarts the menu.
		slog.Info("bot selection rejected", "conversation", msg.Conversation, "text", msg.Text)
		b.setPending(msg.Conversation, false)
		return Reply{Messages: []string{retryMessage}}
	}

	b.setPending(msg.Conversation, false)
	slog.Info("bot dialog answered", "conversation", msg.Conversation, "selection", selection)
	return Reply{Messages: []string{dialogReplies[selection-1]}}
}

func (b *Bot) setPending(conversation string, pending bool) {
	b.mu.Lock()
	b.pending[conversation] = pending
	b.mu.Unlock()
}

func menu() Reply {
	lines := make([]string, 0, len(dialogLabels)+1)
	for i, label := range dialogLabels {
		lines = append(lines, strconv.Itoa(i+1)+" => "+label)
	}
	lines = append(lines, promptMessage)
	return Reply{Messages: lines}
}
