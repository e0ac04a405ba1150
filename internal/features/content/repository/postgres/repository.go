package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"slh-ecosystem-backend/internal/features/content/models"
	"slh-ecosystem-backend/internal/features/content/repository"
)

type postgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) repository.ContentRepository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) ListPublished(ctx context.Context) ([]*models.Content, error) {
	var contents []*models.Content
	err := r.db.WithContext(ctx).
		Where("published = ?", true).
		Order("sort_order ASC, created_at ASC").
		Find(&contents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list published content: %w", err)
	}
	return contents, nil
}

// EnsureLink inserts a global link once; repeated startups are no-ops.
func (r *postgresRepository) EnsureLink(ctx context.Context, label, url string) error {
	link := models.Link{Label: label, URL: url}
	err := r.db.WithContext(ctx).
		Where("label = ? AND user_id IS NULL", label).
		FirstOrCreate(&link).Error
	if err != nil {
		return fmt.Errorf("failed to ensure link %q: %w", label, err)
	}
	return nil
}

func (r *postgresRepository) GlobalLinks(ctx context.Context) ([]*models.Link, error) {
	var links []*models.Link
	err := r.db.WithContext(ctx).
		Where("user_id IS NULL").
		Order("id ASC").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list global links: %w", err)
	}
	return links, nil
}
