package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// outbound is one message to deliver; fallback, when set, is sent instead
// if the primary delivery fails (e.g. a photo URL Telegram rejects).
type outbound struct {
	msg      tgbotapi.Chattable
	fallback tgbotapi.Chattable
}

// action is the outcome of a decision function: everything to send, and
// nothing sent yet. Handlers stay pure; the dispatcher applies the action.
type action struct {
	outbox []outbound
	ack    *tgbotapi.CallbackConfig
}

func (a *action) send(msg tgbotapi.Chattable) {
	a.outbox = append(a.outbox, outbound{msg: msg})
}

func (a *action) sendWithFallback(msg, fallback tgbotapi.Chattable) {
	a.outbox = append(a.outbox, outbound{msg: msg, fallback: fallback})
}

// ackCallback answers the callback query; an empty text just stops the
// client-side spinner, a non-empty one shows a transient notice.
func (a *action) ackCallback(callbackID, text string) {
	cfg := tgbotapi.NewCallback(callbackID, text)
	a.ack = &cfg
}
