package bot

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (d *Dispatcher) decideStart(ctx context.Context, msg *tgbotapi.Message) (*action, error) {
	from := msg.From
	if from == nil {
		return nil, nil
	}

	user, err := d.users.GetOrCreate(ctx, from.ID, from.UserName)
	if err != nil {
		return nil, err
	}

	// The configured admin identity is promoted automatically on first
	// contact; the bootstrap password is rotated through /login afterwards.
	if from.ID == d.cfg.Telegram.AdminUserID && !user.IsAdmin {
		d.users.PromoteToAdmin(ctx, from.ID, d.cfg.Telegram.AdminBootstrapPassword)
		user.IsAdmin = true
	}

	act := &action{}

	photo := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileURL(promoImages[rand.Intn(len(promoImages))]))
	photo.Caption = startCaption
	act.sendWithFallback(photo, tgbotapi.NewMessage(msg.Chat.ID, startCaption))

	menu := tgbotapi.NewMessage(msg.Chat.ID, startText)
	menu.ReplyMarkup = mainMenuKeyboard(d.cfg.SiteURL, user.IsAdmin)
	act.send(menu)

	return act, nil
}

func (d *Dispatcher) decideLogin(ctx context.Context, msg *tgbotapi.Message) (*action, error) {
	if msg.From == nil {
		return nil, nil
	}

	act := &action{}

	password := strings.TrimSpace(msg.CommandArguments())
	if password == "" {
		act.send(tgbotapi.NewMessage(msg.Chat.ID, loginUsageText))
		return act, nil
	}

	if !d.users.VerifyPassword(ctx, msg.From.ID, password) {
		act.send(tgbotapi.NewMessage(msg.Chat.ID, loginFailedText))
		return act, nil
	}

	d.users.RecordLogin(ctx, msg.From.ID)
	act.send(tgbotapi.NewMessage(msg.Chat.ID, loginOKText))
	return act, nil
}

func (d *Dispatcher) decideStatsCommand(ctx context.Context, msg *tgbotapi.Message) (*action, error) {
	if msg.From == nil {
		return nil, nil
	}

	act := &action{}

	// The admin flag is read from storage; matching the configured admin
	// id alone is never enough.
	user, err := d.users.GetUser(ctx, msg.From.ID)
	if err != nil || !user.IsAdmin {
		act.send(tgbotapi.NewMessage(msg.Chat.ID, accessDeniedText))
		return act, nil
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, formatStats(d.stats.Collect(ctx)))
	reply.ReplyMarkup = backToMenuKeyboard()
	act.send(reply)
	return act, nil
}

func (d *Dispatcher) decideRequestAdmin(from *tgbotapi.User, chatID int64) *action {
	act := &action{}

	if d.cfg.Telegram.CommunityGroupID != 0 && from != nil {
		notice := fmt.Sprintf("New admin request from @%s (%d). Open a contract discussion here.",
			from.UserName, from.ID)
		act.send(tgbotapi.NewMessage(d.cfg.Telegram.CommunityGroupID, notice))
	}

	act.send(tgbotapi.NewMessage(chatID, requestAdminAckText))
	return act
}

// decideInquiry turns a private free-text message into a portfolio row.
func (d *Dispatcher) decideInquiry(ctx context.Context, msg *tgbotapi.Message) (*action, error) {
	if msg.From == nil {
		return nil, nil
	}

	user, err := d.users.GetOrCreate(ctx, msg.From.ID, msg.From.UserName)
	if err != nil {
		return nil, err
	}

	if _, err := d.portfolios.RecordInquiry(ctx, user.ID, msg.Text); err != nil {
		return nil, err
	}

	act := &action{}
	act.send(tgbotapi.NewMessage(msg.Chat.ID, inquiryAckText))
	return act, nil
}

// decidePaymentRelay re-sends payment-group messages to the admin with the
// author mentioned. Nothing is persisted.
func (d *Dispatcher) decidePaymentRelay(msg *tgbotapi.Message) *action {
	if msg.Text == "" {
		return nil
	}

	author := "unknown"
	if msg.From != nil {
		author = "@" + msg.From.UserName
	}

	act := &action{}
	act.send(tgbotapi.NewMessage(d.cfg.Telegram.AdminUserID,
		fmt.Sprintf("New payment confirmation from %s:\n%s", author, msg.Text)))
	return act
}

// decideCommunityRelay forwards community-group messages to the admin for
// contract discussion.
func (d *Dispatcher) decideCommunityRelay(msg *tgbotapi.Message) *action {
	if msg.Text == "" {
		return nil
	}

	act := &action{}
	act.send(tgbotapi.NewForward(d.cfg.Telegram.AdminUserID, msg.Chat.ID, msg.MessageID))
	act.send(tgbotapi.NewMessage(d.cfg.Telegram.AdminUserID, "Reply through the bot to draft the contract."))
	return act
}
