package services

import (
	"context"
	"errors"
	"fmt"

	"slugpress/models"
	"slugpress/repositories"
	"slugpress/slug"

	"gorm.io/gorm"
)

// slugAttempts bounds slug regeneration when a freshly generated slug is
// already taken. With a 20-character random suffix this loop effectively
// never runs more than once.
const slugAttempts = 5

// ArticleService implements the article lifecycle: deploy, edit, delete,
// public lookup and the dashboard/admin listings. Edit and Delete enforce
// ownership by comparing the acting user's id against the stored owner id.
type ArticleService interface {
	Deploy(ctx context.Context, ownerID uint, title, name, company, content string) (*models.Article, error)
	Edit(ctx context.Context, actorID, articleID uint, title, content string) (*models.Article, error)
	Delete(ctx context.Context, actorID, articleID uint) error
	GetByID(ctx context.Context, id uint) (*models.Article, error)
	GetBySlug(ctx context.Context, slug string) (*models.Article, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Article, error)
	ListAll(ctx context.Context) ([]models.Article, error)
}

type articleService struct {
	repo repositories.ArticleRepository
}

var _ ArticleService = (*articleService)(nil)

// NewArticleService creates a new ArticleService instance
func NewArticleService(repo repositories.ArticleRepository) ArticleService {
	return &articleService{repo: repo}
}

// Deploy publishes a new article under a freshly generated slug. Slugs are
// pre-checked for existence and regenerated on collision; the unique index
// remains the backstop for concurrent deploys, so a constraint violation also
// triggers a retry instead of surfacing to the caller.
func (s *articleService) Deploy(ctx context.Context, ownerID uint, title, name, company, content string) (*models.Article, error) {
	var lastErr error
	for i := 0; i < slugAttempts; i++ {
		candidate := slug.Generate(title)
		exists, err := s.repo.SlugExists(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("checking slug: %w", err)
		}
		if exists {
			continue
		}

		article := models.Article{
			UserID:  ownerID,
			Title:   title,
			Content: content,
			Slug:    candidate,
			Name:    name,
			Company: company,
		}
		if err := s.repo.Create(ctx, &article); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("creating article: %w", err)
		}
		return &article, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("could not allocate a unique slug: %w", lastErr)
	}
	return nil, errors.New("could not allocate a unique slug")
}

// Edit updates title and content only. The slug is immutable after deploy.
func (s *articleService) Edit(ctx context.Context, actorID, articleID uint, title, content string) (*models.Article, error) {
	article, err := s.loadOwned(ctx, actorID, articleID)
	if err != nil {
		return nil, err
	}
	article.Title = title
	article.Content = content
	if err := s.repo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("updating article: %w", err)
	}
	return article, nil
}

func (s *articleService) Delete(ctx context.Context, actorID, articleID uint) error {
	article, err := s.loadOwned(ctx, actorID, articleID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, article); err != nil {
		return fmt.Errorf("deleting article: %w", err)
	}
	return nil
}

func (s *articleService) GetByID(ctx context.Context, id uint) (*models.Article, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading article: %w", err)
	}
	return article, nil
}

func (s *articleService) GetBySlug(ctx context.Context, slugStr string) (*models.Article, error) {
	article, err := s.repo.FindBySlug(ctx, slugStr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading article by slug: %w", err)
	}
	return article, nil
}

func (s *articleService) ListByUser(ctx context.Context, userID uint) ([]models.Article, error) {
	articles, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing articles for user %d: %w", userID, err)
	}
	return articles, nil
}

func (s *articleService) ListAll(ctx context.Context) ([]models.Article, error) {
	articles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing all articles: %w", err)
	}
	return articles, nil
}

func (s *articleService) loadOwned(ctx context.Context, actorID, articleID uint) (*models.Article, error) {
	article, err := s.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article.UserID != actorID {
		return nil, ErrNotOwner
	}
	return article, nil
}
