package services

import (
	"context"
	"strings"
	"testing"

	"slugpress/models"
	"slugpress/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupArticleService(t *testing.T) (*gorm.DB, ArticleService, *models.User, *models.User) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewArticleService(repositories.NewArticleRepository(db))

	owner := &models.User{Username: "alice", Password: "x", Role: models.RoleUser}
	other := &models.User{Username: "bob", Password: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(owner).Error)
	require.NoError(t, db.Create(other).Error)
	return db, svc, owner, other
}

func TestDeploy(t *testing.T) {
	_, svc, owner, _ := setupArticleService(t)
	ctx := context.Background()

	article, err := svc.Deploy(ctx, owner.ID, "Hello World", "Alice", "Acme", "first post")
	require.NoError(t, err)

	assert.Equal(t, owner.ID, article.UserID)
	assert.Equal(t, "Hello World", article.Title)
	assert.Equal(t, "Alice", article.Name)
	assert.Equal(t, "Acme", article.Company)
	assert.Equal(t, "first post", article.Content)
	assert.True(t, strings.HasPrefix(article.Slug, "Hello-World-"))
}

func TestDeploySlugsDistinctUnderIdenticalTitles(t *testing.T) {
	_, svc, owner, _ := setupArticleService(t)
	ctx := context.Background()

	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		article, err := svc.Deploy(ctx, owner.ID, "Post", "Alice", "Acme", "body")
		require.NoError(t, err)
		_, dup := seen[article.Slug]
		assert.False(t, dup, "slug %q allocated twice", article.Slug)
		seen[article.Slug] = struct{}{}
	}
}

func TestEdit(t *testing.T) {
	db, svc, owner, other := setupArticleService(t)
	ctx := context.Background()

	article, err := svc.Deploy(ctx, owner.ID, "Hello World", "Alice", "Acme", "first post")
	require.NoError(t, err)

	t.Run("owner edits title and content only", func(t *testing.T) {
		updated, err := svc.Edit(ctx, owner.ID, article.ID, "Hello Again", "second post")
		require.NoError(t, err)
		assert.Equal(t, "Hello Again", updated.Title)
		assert.Equal(t, "second post", updated.Content)
		assert.Equal(t, article.Slug, updated.Slug, "slug is immutable after deploy")
		assert.Equal(t, "Alice", updated.Name, "attribution is fixed at deploy time")
	})

	t.Run("non-owner edit is rejected and changes nothing", func(t *testing.T) {
		_, err := svc.Edit(ctx, other.ID, article.ID, "Hijacked", "hijacked")
		assert.ErrorIs(t, err, ErrNotOwner)

		var stored models.Article
		require.NoError(t, db.First(&stored, article.ID).Error)
		assert.Equal(t, "Hello Again", stored.Title)
		assert.Equal(t, "second post", stored.Content)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Edit(ctx, owner.ID, 99999, "x", "y")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	db, svc, owner, other := setupArticleService(t)
	ctx := context.Background()

	article, err := svc.Deploy(ctx, owner.ID, "Hello World", "Alice", "Acme", "first post")
	require.NoError(t, err)

	t.Run("non-owner delete leaves the article present", func(t *testing.T) {
		err := svc.Delete(ctx, other.ID, article.ID)
		assert.ErrorIs(t, err, ErrNotOwner)

		var count int64
		db.Model(&models.Article{}).Where("id = ?", article.ID).Count(&count)
		assert.EqualValues(t, 1, count)
	})

	t.Run("owner delete removes it", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, owner.ID, article.ID))

		_, err := svc.GetByID(ctx, article.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		_, err = svc.GetBySlug(ctx, article.Slug)
		assert.ErrorIs(t, err, ErrNotFound, "the old slug no longer resolves")
	})
}

func TestGetBySlug(t *testing.T) {
	_, svc, owner, _ := setupArticleService(t)
	ctx := context.Background()

	deployed, err := svc.Deploy(ctx, owner.ID, "Hello World", "Alice", "Acme", "first post")
	require.NoError(t, err)

	found, err := svc.GetBySlug(ctx, deployed.Slug)
	require.NoError(t, err)
	assert.Equal(t, deployed.ID, found.ID)

	_, err = svc.GetBySlug(ctx, "no-such-slug")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListings(t *testing.T) {
	_, svc, owner, other := setupArticleService(t)
	ctx := context.Background()

	_, err := svc.Deploy(ctx, owner.ID, "Alice One", "Alice", "Acme", "a")
	require.NoError(t, err)
	_, err = svc.Deploy(ctx, owner.ID, "Alice Two", "Alice", "Acme", "b")
	require.NoError(t, err)
	_, err = svc.Deploy(ctx, other.ID, "Bob One", "Bob", "Initech", "c")
	require.NoError(t, err)

	mine, err := svc.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, a := range mine {
		assert.Equal(t, owner.ID, a.UserID)
	}

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
