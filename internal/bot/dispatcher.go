package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"slh-ecosystem-backend/internal/common/logger"
	"slh-ecosystem-backend/internal/config"
	contentservice "slh-ecosystem-backend/internal/features/content/service"
	portfolioservice "slh-ecosystem-backend/internal/features/portfolio/service"
	statsservice "slh-ecosystem-backend/internal/features/stats/service"
	transactionservice "slh-ecosystem-backend/internal/features/transaction/service"
	userservice "slh-ecosystem-backend/internal/features/user/service"
)

// Dispatcher resolves inbound Telegram updates to domain operations and
// replies. It holds no conversation state: every turn re-reads the user
// from storage. The rate limiter is the one piece of in-process state.
type Dispatcher struct {
	cfg          *config.Config
	bot          Sender
	users        userservice.UserService
	portfolios   portfolioservice.PortfolioService
	transactions transactionservice.TransactionService
	stats        statsservice.StatsService
	content      contentservice.ContentService
	limiter      *slidingWindow
	callbacks    map[CallbackKind]callbackHandler
}

type callbackHandler func(ctx context.Context, query *tgbotapi.CallbackQuery) (*action, error)

func NewDispatcher(
	cfg *config.Config,
	sender Sender,
	users userservice.UserService,
	portfolios portfolioservice.PortfolioService,
	transactions transactionservice.TransactionService,
	stats statsservice.StatsService,
	content contentservice.ContentService,
) *Dispatcher {
	d := &Dispatcher{
		cfg:          cfg,
		bot:          sender,
		users:        users,
		portfolios:   portfolios,
		transactions: transactions,
		stats:        stats,
		content:      content,
	}

	if cfg.RateLimit.Enabled {
		d.limiter = newSlidingWindow(cfg.RateLimit.Events, cfg.RateLimit.Window)
	}

	d.callbacks = map[CallbackKind]callbackHandler{
		CallbackAbout:        d.staticSection(aboutText),
		CallbackContent:      d.staticSection(contentText),
		CallbackCoins:        d.staticSection(coinsText),
		CallbackGames:        d.staticSection(gamesText),
		CallbackExperts:      d.staticSection(expertsText),
		CallbackInvest:       d.decideInvestMenu,
		CallbackInvestNow:    d.decideInvestNow,
		CallbackInvestPanel:  d.decideInvestPanel,
		CallbackAdmin:        d.decideAdminPanel,
		CallbackRequestAdmin: d.decideRequestAdminCallback,
		CallbackMainMenu:     d.decideMainMenu,
	}

	return d
}

// HandleUpdate is the outermost dispatch boundary. A malformed or
// misbehaving update is logged and answered with an apology; it never takes
// the process down.
func (d *Dispatcher) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	chatID := chatIDOf(update)

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Int("update_id", update.UpdateID).Msg("panic while handling update")
			d.apologize(chatID)
		}
	}()

	if d.limiter != nil {
		if id, ok := identityOf(update); ok && !d.limiter.Allow(id) {
			logger.Debug().Int64("identity", id).Msg("update dropped by rate limiter")
			return
		}
	}

	act, err := d.decide(ctx, update)
	if err != nil {
		logger.Error().Err(err).Int("update_id", update.UpdateID).Msg("failed to handle update")
		d.apologize(chatID)
		return
	}

	d.apply(act)
}

func (d *Dispatcher) decide(ctx context.Context, update *tgbotapi.Update) (*action, error) {
	switch {
	case update.CallbackQuery != nil:
		return d.decideCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		return d.decideMessage(ctx, update.Message)
	default:
		return nil, nil
	}
}

func (d *Dispatcher) decideMessage(ctx context.Context, msg *tgbotapi.Message) (*action, error) {
	switch {
	case msg.IsCommand():
		switch msg.Command() {
		case "start":
			return d.decideStart(ctx, msg)
		case "login":
			return d.decideLogin(ctx, msg)
		case "stats":
			return d.decideStatsCommand(ctx, msg)
		case "request_admin":
			return d.decideRequestAdmin(msg.From, msg.Chat.ID), nil
		default:
			// Unknown commands are left to the platform's own dispatch.
			return nil, nil
		}

	case d.cfg.Telegram.PaymentGroupID != 0 && msg.Chat.ID == d.cfg.Telegram.PaymentGroupID:
		return d.decidePaymentRelay(msg), nil

	case d.cfg.Telegram.CommunityGroupID != 0 && msg.Chat.ID == d.cfg.Telegram.CommunityGroupID:
		return d.decideCommunityRelay(msg), nil

	case msg.Chat.IsPrivate() && msg.Text != "":
		return d.decideInquiry(ctx, msg)
	}

	return nil, nil
}

// apply performs the sends an action decided on. Delivery failures are
// logged and swallowed; a reply that cannot be sent must not cascade.
func (d *Dispatcher) apply(act *action) {
	if act == nil {
		return
	}

	if act.ack != nil {
		if _, err := d.bot.Request(*act.ack); err != nil {
			logger.Warn().Err(err).Msg("failed to answer callback query")
		}
	}

	for _, out := range act.outbox {
		if _, err := d.bot.Send(out.msg); err != nil {
			logger.Warn().Err(err).Msg("failed to send reply")
			if out.fallback != nil {
				if _, err := d.bot.Send(out.fallback); err != nil {
					logger.Warn().Err(err).Msg("failed to send fallback reply")
				}
			}
		}
	}
}

// apologize sends the generic failure reply with a way back to a known-good
// state. If even that fails, the failure is logged and swallowed.
func (d *Dispatcher) apologize(chatID int64) {
	if chatID == 0 {
		return
	}
	msg := tgbotapi.NewMessage(chatID, apologyText)
	msg.ReplyMarkup = backToMenuKeyboard()
	if _, err := d.bot.Send(msg); err != nil {
		logger.Warn().Err(err).Int64("chat_id", chatID).Msg("failed to send apology")
	}
}

func chatIDOf(update *tgbotapi.Update) int64 {
	switch {
	case update.Message != nil:
		return update.Message.Chat.ID
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.Message.Chat.ID
	default:
		return 0
	}
}

func identityOf(update *tgbotapi.Update) (int64, bool) {
	switch {
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From.ID, true
	case update.CallbackQuery != nil && update.CallbackQuery.From != nil:
		return update.CallbackQuery.From.ID, true
	default:
		return 0, false
	}
}
