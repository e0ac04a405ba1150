package bot

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"slh-ecosystem-backend/internal/config"
	contentmodels "slh-ecosystem-backend/internal/features/content/models"
	portfoliomodels "slh-ecosystem-backend/internal/features/portfolio/models"
	statsmodels "slh-ecosystem-backend/internal/features/stats/models"
	txmodels "slh-ecosystem-backend/internal/features/transaction/models"
	usermodels "slh-ecosystem-backend/internal/features/user/models"
	userrepository "slh-ecosystem-backend/internal/features/user/repository"
)

// recorderSender captures outbound traffic instead of hitting Telegram.
type recorderSender struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	sendErr  func(c tgbotapi.Chattable) error
}

func (r *recorderSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if r.sendErr != nil {
		if err := r.sendErr(c); err != nil {
			return tgbotapi.Message{}, err
		}
	}
	r.sent = append(r.sent, c)
	return tgbotapi.Message{}, nil
}

func (r *recorderSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	r.requests = append(r.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

type fakeUserService struct {
	users         map[int64]*usermodels.User
	getOrCreates  int
	getOrCreatErr error
	promoted      map[int64]string
	logins        []int64
	password      string
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{
		users:    map[int64]*usermodels.User{},
		promoted: map[int64]string{},
	}
}

func (f *fakeUserService) GetUser(_ context.Context, telegramID int64) (*usermodels.User, error) {
	user, ok := f.users[telegramID]
	if !ok {
		return nil, userrepository.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserService) GetOrCreate(_ context.Context, telegramID int64, username string) (*usermodels.User, error) {
	f.getOrCreates++
	if f.getOrCreatErr != nil {
		return nil, f.getOrCreatErr
	}
	if user, ok := f.users[telegramID]; ok {
		return user, nil
	}
	user := &usermodels.User{ID: uint(len(f.users) + 1), TelegramID: telegramID, Username: username}
	f.users[telegramID] = user
	return user, nil
}

func (f *fakeUserService) PromoteToAdmin(_ context.Context, telegramID int64, password string) {
	f.promoted[telegramID] = password
	if user, ok := f.users[telegramID]; ok {
		user.IsAdmin = true
	}
}

func (f *fakeUserService) VerifyPassword(_ context.Context, _ int64, password string) bool {
	return f.password != "" && password == f.password
}

func (f *fakeUserService) RecordLogin(_ context.Context, telegramID int64) {
	f.logins = append(f.logins, telegramID)
}

type fakePortfolioService struct {
	inquiries []string
	userIDs   []uint
}

func (f *fakePortfolioService) RecordInquiry(_ context.Context, userID uint, text string) (*portfoliomodels.Portfolio, error) {
	f.inquiries = append(f.inquiries, text)
	f.userIDs = append(f.userIDs, userID)
	return &portfoliomodels.Portfolio{ID: 1, UserID: userID, Description: text}, nil
}

func (f *fakePortfolioService) ListByUser(context.Context, uint) ([]*portfoliomodels.Portfolio, error) {
	return nil, nil
}

type recordedTx struct {
	userID uint
	amount float64
	txType txmodels.TransactionType
}

type fakeTransactionService struct {
	records []recordedTx
	recent  []*txmodels.Transaction
	total   float64
}

func (f *fakeTransactionService) Record(_ context.Context, userID uint, amount float64, txType txmodels.TransactionType, description string) (*txmodels.Transaction, error) {
	f.records = append(f.records, recordedTx{userID: userID, amount: amount, txType: txType})
	return &txmodels.Transaction{
		ID:           uint(len(f.records)),
		UserID:       userID,
		Amount:       amount,
		Type:         txType,
		Status:       txmodels.StatusPending,
		Description:  description,
		ContractHash: strings.Repeat("ab", 32),
	}, nil
}

func (f *fakeTransactionService) RecentByUser(context.Context, uint) ([]*txmodels.Transaction, error) {
	return f.recent, nil
}

func (f *fakeTransactionService) CompletedTotal(context.Context, uint) float64 {
	return f.total
}

type fakeStatsService struct {
	collects int
	stats    *statsmodels.Stats
}

func (f *fakeStatsService) Collect(context.Context) *statsmodels.Stats {
	f.collects++
	if f.stats != nil {
		return f.stats
	}
	return &statsmodels.Stats{}
}

type fakeContentService struct {
	links []*contentmodels.Link
}

func (f *fakeContentService) SeedLinks(context.Context) error { return nil }

func (f *fakeContentService) PublishedContent(context.Context) ([]*contentmodels.Content, error) {
	return nil, nil
}

func (f *fakeContentService) PromoLinks(_ context.Context, limit int) []*contentmodels.Link {
	if len(f.links) > limit {
		return f.links[:limit]
	}
	return f.links
}

type fixture struct {
	cfg          *config.Config
	sender       *recorderSender
	users        *fakeUserService
	portfolios   *fakePortfolioService
	transactions *fakeTransactionService
	stats        *fakeStatsService
	content      *fakeContentService
	dispatcher   *Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.SiteURL = "https://slh.example.test/"
	cfg.Telegram.AdminUserID = 999
	cfg.Telegram.AdminBootstrapPassword = "bootstrap"
	cfg.Telegram.PaymentGroupID = -100
	cfg.Telegram.CommunityGroupID = -200

	f := &fixture{
		cfg:          cfg,
		sender:       &recorderSender{},
		users:        newFakeUserService(),
		portfolios:   &fakePortfolioService{},
		transactions: &fakeTransactionService{},
		stats:        &fakeStatsService{},
		content:      &fakeContentService{},
	}
	f.dispatcher = NewDispatcher(cfg, f.sender, f.users, f.portfolios, f.transactions, f.stats, f.content)
	return f
}

func textMessage(userID, chatID int64, text string) *tgbotapi.Update {
	return &tgbotapi.Update{
		UpdateID: 1,
		Message: &tgbotapi.Message{
			MessageID: 10,
			From:      &tgbotapi.User{ID: userID, UserName: "dana"},
			Chat:      &tgbotapi.Chat{ID: chatID, Type: "private"},
			Text:      text,
		},
	}
}

func commandMessage(userID int64, text string) *tgbotapi.Update {
	update := textMessage(userID, userID, text)
	length := len(text)
	if i := strings.IndexByte(text, ' '); i >= 0 {
		length = i
	}
	update.Message.Entities = []tgbotapi.MessageEntity{
		{Type: "bot_command", Offset: 0, Length: length},
	}
	return update
}

func callbackUpdate(userID int64, data string) *tgbotapi.Update {
	return &tgbotapi.Update{
		UpdateID: 2,
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:   "cb-1",
			From: &tgbotapi.User{ID: userID, UserName: "dana"},
			Message: &tgbotapi.Message{
				MessageID: 20,
				Chat:      &tgbotapi.Chat{ID: userID, Type: "private"},
			},
			Data: data,
		},
	}
}

// callbackIDs flattens the data values of every inline button in a markup.
func callbackIDs(markup tgbotapi.InlineKeyboardMarkup) []string {
	var ids []string
	for _, row := range markup.InlineKeyboard {
		for _, button := range row {
			if button.CallbackData != nil {
				ids = append(ids, *button.CallbackData)
			}
		}
	}
	return ids
}

func sentMessage(t *testing.T, c tgbotapi.Chattable) tgbotapi.MessageConfig {
	t.Helper()
	msg, ok := c.(tgbotapi.MessageConfig)
	require.True(t, ok, "expected MessageConfig, got %T", c)
	return msg
}

func sentEdit(t *testing.T, c tgbotapi.Chattable) tgbotapi.EditMessageTextConfig {
	t.Helper()
	edit, ok := c.(tgbotapi.EditMessageTextConfig)
	require.True(t, ok, "expected EditMessageTextConfig, got %T", c)
	return edit
}

func TestGroupChatterIsIgnored(t *testing.T) {
	f := newFixture(t)

	update := textMessage(12345, -300, "random group chatter")
	update.Message.Chat.Type = "supergroup"
	f.dispatcher.HandleUpdate(context.Background(), update)

	assert.Empty(t, f.sender.sent)
	assert.Empty(t, f.portfolios.inquiries)
}

func TestPaymentGroupRelaysToAdmin(t *testing.T) {
	f := newFixture(t)

	update := textMessage(12345, f.cfg.Telegram.PaymentGroupID, "paid 10,000 via transfer")
	update.Message.Chat.Type = "supergroup"
	f.dispatcher.HandleUpdate(context.Background(), update)

	require.Len(t, f.sender.sent, 1)
	msg := sentMessage(t, f.sender.sent[0])
	assert.Equal(t, f.cfg.Telegram.AdminUserID, msg.ChatID)
	assert.Contains(t, msg.Text, "@dana")
	assert.Contains(t, msg.Text, "paid 10,000 via transfer")
	assert.Empty(t, f.portfolios.inquiries, "group relays are not inquiries")
}

func TestCommunityGroupForwardsToAdmin(t *testing.T) {
	f := newFixture(t)

	update := textMessage(12345, f.cfg.Telegram.CommunityGroupID, "requesting admin status")
	update.Message.Chat.Type = "supergroup"
	f.dispatcher.HandleUpdate(context.Background(), update)

	require.Len(t, f.sender.sent, 2)
	forward, ok := f.sender.sent[0].(tgbotapi.ForwardConfig)
	require.True(t, ok, "expected ForwardConfig, got %T", f.sender.sent[0])
	assert.Equal(t, f.cfg.Telegram.AdminUserID, forward.ChatID)
	assert.Equal(t, f.cfg.Telegram.CommunityGroupID, forward.FromChatID)
}

func TestDomainFailureSendsApology(t *testing.T) {
	f := newFixture(t)
	f.users.getOrCreatErr = assert.AnError

	f.dispatcher.HandleUpdate(context.Background(), commandMessage(12345, "/start"))

	require.Len(t, f.sender.sent, 1)
	msg := sentMessage(t, f.sender.sent[0])
	assert.Equal(t, apologyText, msg.Text)

	markup, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	assert.Equal(t, []string{string(CallbackMainMenu)}, callbackIDs(markup))
}

func TestRateLimiterDropsExcessUpdates(t *testing.T) {
	f := newFixture(t)
	f.cfg.RateLimit.Enabled = true
	f.cfg.RateLimit.Events = 1
	f.cfg.RateLimit.Window = time.Minute
	f.dispatcher = NewDispatcher(f.cfg, f.sender, f.users, f.portfolios, f.transactions, f.stats, f.content)

	f.dispatcher.HandleUpdate(context.Background(), commandMessage(12345, "/start"))
	f.dispatcher.HandleUpdate(context.Background(), commandMessage(12345, "/start"))

	assert.Equal(t, 1, f.users.getOrCreates, "second update inside the window is dropped")
}
