package repository

import (
	"context"

	"slh-ecosystem-backend/internal/features/content/models"
)

type ContentRepository interface {
	ListPublished(ctx context.Context) ([]*models.Content, error)
	EnsureLink(ctx context.Context, label, url string) error
	GlobalLinks(ctx context.Context) ([]*models.Link, error)
}
