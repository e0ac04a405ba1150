package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slh-ecosystem-backend/internal/features/content/models"
)

type fakeContentRepo struct {
	ensured  map[string]string
	linksErr error
	links    []*models.Link
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{ensured: map[string]string{}}
}

func (f *fakeContentRepo) ListPublished(context.Context) ([]*models.Content, error) {
	return nil, nil
}

func (f *fakeContentRepo) EnsureLink(_ context.Context, label, url string) error {
	f.ensured[label] = url
	return nil
}

func (f *fakeContentRepo) GlobalLinks(context.Context) ([]*models.Link, error) {
	if f.linksErr != nil {
		return nil, f.linksErr
	}
	return f.links, nil
}

func TestSeedLinksIsIdempotent(t *testing.T) {
	repo := newFakeContentRepo()
	svc := NewContentService(repo)

	require.NoError(t, svc.SeedLinks(context.Background()))
	first := len(repo.ensured)
	require.NoError(t, svc.SeedLinks(context.Background()))

	assert.Equal(t, first, len(repo.ensured))
	assert.Equal(t, len(defaultLinks), len(repo.ensured))
	assert.Equal(t, "https://t.me/Slh_selha_bot", repo.ensured["SLH Bot"])
}

func TestPromoLinksHonorsLimit(t *testing.T) {
	repo := newFakeContentRepo()
	repo.links = []*models.Link{
		{Label: "a", URL: "https://a.example"},
		{Label: "b", URL: "https://b.example"},
		{Label: "c", URL: "https://c.example"},
		{Label: "d", URL: "https://d.example"},
	}
	svc := NewContentService(repo)

	links := svc.PromoLinks(context.Background(), 3)
	require.Len(t, links, 3)
	assert.Equal(t, "a", links[0].Label)
}

func TestPromoLinksDegradesToEmpty(t *testing.T) {
	repo := newFakeContentRepo()
	repo.linksErr = assert.AnError
	svc := NewContentService(repo)

	assert.Empty(t, svc.PromoLinks(context.Background(), 3))
}
