package repositories

import (
	"context"

	"slugpress/models"

	"gorm.io/gorm"
)

// ArticleRepository defines Article-related database operations
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	FindByID(ctx context.Context, id uint) (*models.Article, error)
	FindBySlug(ctx context.Context, slug string) (*models.Article, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	FindByUser(ctx context.Context, userID uint) ([]models.Article, error)
	FindAll(ctx context.Context) ([]models.Article, error)
	Update(ctx context.Context, article *models.Article) error
	Delete(ctx context.Context, article *models.Article) error
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository instance
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) FindByID(ctx context.Context, id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindBySlug(ctx context.Context, slug string) (*models.Article, error) {
	var article models.Article
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Article{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *articleRepository) FindByUser(ctx context.Context, userID uint) ([]models.Article, error) {
	var articles []models.Article
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) FindAll(ctx context.Context) ([]models.Article, error) {
	var articles []models.Article
	if err := r.db.WithContext(ctx).Order("id").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

func (r *articleRepository) Update(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *articleRepository) Delete(ctx context.Context, article *models.Article) error {
	return r.db.WithContext(ctx).Delete(article).Error
}
