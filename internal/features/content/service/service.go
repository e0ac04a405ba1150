package service

import (
	"context"

	"slh-ecosystem-backend/internal/common/logger"
	"slh-ecosystem-backend/internal/features/content/models"
	"slh-ecosystem-backend/internal/features/content/repository"
)

// The promotional link set rendered in the invest menu. Seeded into the
// links table so admins can eventually manage them there.
var defaultLinks = []models.Link{
	{Label: "SLH Bot", URL: "https://t.me/Slh_selha_bot"},
	{Label: "Buy-My-Shop", URL: "https://t.me/BUY_MY_SHOP"},
	{Label: "NFT Madness", URL: "https://t.me/NFTY_madness_bot"},
	{Label: "Community Exchange Group", URL: "https://t.me/+HIzvM8sEgh1kNWY0"},
	{Label: "Crypto Assistant", URL: "https://t.me/crypto_A_bot"},
	{Label: "SLH Academy", URL: "https://t.me/SLH_Academia_bot"},
}

type ContentService interface {
	// SeedLinks inserts the predefined promotional links. Idempotent.
	SeedLinks(ctx context.Context) error
	PublishedContent(ctx context.Context) ([]*models.Content, error)
	PromoLinks(ctx context.Context, limit int) []*models.Link
}

type contentService struct {
	repo repository.ContentRepository
}

func NewContentService(repo repository.ContentRepository) ContentService {
	return &contentService{repo: repo}
}

func (s *contentService) SeedLinks(ctx context.Context) error {
	for _, link := range defaultLinks {
		if err := s.repo.EnsureLink(ctx, link.Label, link.URL); err != nil {
			return err
		}
	}
	logger.Info().Int("count", len(defaultLinks)).Msg("promotional links seeded")
	return nil
}

func (s *contentService) PublishedContent(ctx context.Context) ([]*models.Content, error) {
	contents, err := s.repo.ListPublished(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list published content")
		return []*models.Content{}, nil
	}
	return contents, nil
}

// PromoLinks returns up to limit global links for menu rendering. A storage
// failure degrades to an empty list; the menu still renders.
func (s *contentService) PromoLinks(ctx context.Context, limit int) []*models.Link {
	links, err := s.repo.GlobalLinks(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load promo links")
		return nil
	}
	if len(links) > limit {
		links = links[:limit]
	}
	return links
}
