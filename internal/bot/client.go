package bot

import (
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"slh-ecosystem-backend/internal/common/logger"
	"slh-ecosystem-backend/internal/config"
)

// Sender is the narrow slice of the Telegram API the dispatcher needs.
// *tgbotapi.BotAPI satisfies it; tests substitute a recorder.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Client wraps the Telegram client with webhook lifecycle management.
type Client struct {
	api        *tgbotapi.BotAPI
	webhookURL string
}

func NewClient(cfg *config.Config) (*Client, error) {
	// Bounded timeout: one slow Telegram call must not stall a webhook
	// request indefinitely.
	httpClient := &http.Client{Timeout: cfg.Telegram.RequestTimeout}

	api, err := tgbotapi.NewBotAPIWithClient(cfg.Telegram.BotToken, tgbotapi.APIEndpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client: %w", err)
	}
	api.Debug = cfg.Debug

	logger.Info().Str("account", api.Self.UserName).Msg("telegram bot authorized")

	return &Client{
		api:        api,
		webhookURL: fmt.Sprintf("%s/webhook/%s", cfg.Server.WebhookBaseURL, cfg.Telegram.BotToken),
	}, nil
}

func (c *Client) Send(msg tgbotapi.Chattable) (tgbotapi.Message, error) {
	return c.api.Send(msg)
}

func (c *Client) Request(msg tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	return c.api.Request(msg)
}

// EnsureWebhook registers the webhook, skipping the call when the current
// registration already points at us.
func (c *Client) EnsureWebhook() error {
	info, err := c.api.GetWebhookInfo()
	if err != nil {
		return fmt.Errorf("failed to read webhook info: %w", err)
	}

	if info.URL == c.webhookURL {
		logger.Info().Msg("webhook already registered")
		return nil
	}

	wh, err := tgbotapi.NewWebhook(c.webhookURL)
	if err != nil {
		return fmt.Errorf("failed to build webhook config: %w", err)
	}
	if _, err := c.api.Request(wh); err != nil {
		return fmt.Errorf("failed to register webhook: %w", err)
	}

	logger.Info().Msg("webhook registered")
	return nil
}

// RemoveWebhook deregisters the webhook on shutdown.
func (c *Client) RemoveWebhook() {
	if _, err := c.api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		logger.Warn().Err(err).Msg("failed to remove webhook")
		return
	}
	logger.Info().Msg("webhook removed")
}

// Healthy reports whether the Telegram API currently answers us.
func (c *Client) Healthy() bool {
	_, err := c.api.GetMe()
	return err == nil
}
