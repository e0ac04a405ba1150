package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"slh-ecosystem-backend/internal/common/logger"
	txmodels "slh-ecosystem-backend/internal/features/transaction/models"
)

// CallbackKind is the closed set of inline-button identifiers. Adding a
// menu section means adding a constant and a dispatch-table entry; anything
// outside the table renders the "not recognized" recovery reply.
type CallbackKind string

const (
	CallbackAbout        CallbackKind = "about"
	CallbackContent      CallbackKind = "content"
	CallbackCoins        CallbackKind = "coins"
	CallbackGames        CallbackKind = "games"
	CallbackExperts      CallbackKind = "experts"
	CallbackInvest       CallbackKind = "invest"
	CallbackInvestNow    CallbackKind = "invest_now"
	CallbackInvestPanel  CallbackKind = "invest_panel"
	CallbackAdmin        CallbackKind = "admin"
	CallbackRequestAdmin CallbackKind = "request_admin"
	CallbackMainMenu     CallbackKind = "main_menu"
)

// Amount registered when a user presses "invest now"; the minimum ticket.
const investNowAmount = 10000

func (d *Dispatcher) decideCallback(ctx context.Context, query *tgbotapi.CallbackQuery) (*action, error) {
	kind := CallbackKind(query.Data)

	handler, ok := d.callbacks[kind]
	if !ok {
		logger.Warn().Str("callback", query.Data).Msg("unknown callback id")
		act := &action{}
		act.ackCallback(query.ID, "")
		act.send(editOrSend(query, notRecognizedText, backToMenuKeyboard()))
		return act, nil
	}

	return handler(ctx, query)
}

// staticSection renders a fixed promotional text block. No storage access.
func (d *Dispatcher) staticSection(text string) callbackHandler {
	return func(_ context.Context, query *tgbotapi.CallbackQuery) (*action, error) {
		act := &action{}
		act.ackCallback(query.ID, "")
		act.send(editOrSend(query, text, backToMenuKeyboard()))
		return act, nil
	}
}

func (d *Dispatcher) decideInvestMenu(ctx context.Context, query *tgbotapi.CallbackQuery) (*action, error) {
	links := d.content.PromoLinks(ctx, 3)

	act := &action{}
	act.ackCallback(query.ID, "")
	act.send(editOrSend(query, investText, investKeyboard(links)))
	return act, nil
}

func (d *Dispatcher) decideInvestNow(ctx context.Context, query *tgbotapi.CallbackQuery) (*action, error) {
	user, err := d.users.GetOrCreate(ctx, query.From.ID, query.From.UserName)
	if err != nil {
		return nil, err
	}

	tx, err := d.transactions.Record(ctx, user.ID, investNowAmount,
		txmodels.TypeInvestment, "Investment interest registered via bot")
	if err != nil {
		return nil, err
	}

	act := &action{}
	act.ackCallback(query.ID, "")
	act.send(tgbotapi.NewMessage(replyChatID(query),
		investNowText+"\n\nContract: "+tx.ContractHash[:16]))
	return act, nil
}

func (d *Dispatcher) decideInvestPanel(ctx context.Context, query *tgbotapi.CallbackQuery) (*action, error) {
	user, err := d.users.GetOrCreate(ctx, query.From.ID, query.From.UserName)
	if err != nil {
		return nil, err
	}

	txs, err := d.transactions.RecentByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	total := d.transactions.CompletedTotal(ctx, user.ID)

	act := &action{}
	act.ackCallback(query.ID, "")
	act.send(editOrSend(query, formatInvestPanel(txs, total), backToMenuKeyboard()))
	return act, nil
}

func (d *Dispatcher) decideAdminPanel(ctx context.Context, query *tgbotapi.CallbackQuery) (*action, error) {
	act := &action{}

	// Admin access is decided by the stored flag, not by who Telegram
	// says is calling.
	user, err := d.users.GetUser(ctx, query.From.ID)
	if err != nil || !user.IsAdmin {
		act.ackCallback(query.ID, accessDeniedText)
		return act, nil
	}

	act.ackCallback(query.ID, "")
	act.send(editOrSend(query, formatStats(d.stats.Collect(ctx)), backToMenuKeyboard()))
	return act, nil
}

func (d *Dispatcher) decideRequestAdminCallback(_ context.Context, query *tgbotapi.CallbackQuery) (*action, error) {
	act := d.decideRequestAdmin(query.From, replyChatID(query))
	act.ackCallback(query.ID, "")
	return act, nil
}

func (d *Dispatcher) decideMainMenu(ctx context.Context, query *tgbotapi.CallbackQuery) (*action, error) {
	isAdmin := false
	if user, err := d.users.GetUser(ctx, query.From.ID); err == nil {
		isAdmin = user.IsAdmin
	}

	act := &action{}
	act.ackCallback(query.ID, "")
	act.send(editOrSend(query, startText, mainMenuKeyboard(d.cfg.SiteURL, isAdmin)))
	return act, nil
}

// editOrSend edits the message the button lives on when it is still
// available, falling back to a fresh message otherwise.
func editOrSend(query *tgbotapi.CallbackQuery, text string, markup tgbotapi.InlineKeyboardMarkup) tgbotapi.Chattable {
	if query.Message != nil {
		return tgbotapi.NewEditMessageTextAndMarkup(query.Message.Chat.ID, query.Message.MessageID, text, markup)
	}
	msg := tgbotapi.NewMessage(query.From.ID, text)
	msg.ReplyMarkup = markup
	return msg
}

func replyChatID(query *tgbotapi.CallbackQuery) int64 {
	if query.Message != nil {
		return query.Message.Chat.ID
	}
	return query.From.ID
}
