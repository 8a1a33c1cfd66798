package articles

import (
	"errors"

	"github.com/MarketPulse/MP-Backend/internal/apperr"
	"github.com/MarketPulse/MP-Backend/internal/db"
	"gorm.io/gorm"
)

// Filter narrows a listing. Zero-value fields are ignored; set fields are
// ANDed together. Tag matches when the article's tag set contains it.
type Filter struct {
	Tag      string
	Type     string
	Category string
}

// Page bounds a listing window.
type Page struct {
	Limit int
	Skip  int
}

const DefaultLimit = 10

// CreateArticle inserts the article. The unique slug index closes the
// check-then-insert race; duplicates surface as Conflict.
func CreateArticle(article *Article) error {
	if err := db.DB.Create(article).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrConflict
		}
		return apperr.Internalf("creating article: %v", err)
	}
	return nil
}

func GetArticle(id string) (*Article, error) {
	var article Article
	if err := db.DB.First(&article, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Internalf("finding article: %v", err)
	}
	return &article, nil
}

func GetArticleBySlug(slug string) (*Article, error) {
	var article Article
	if err := db.DB.First(&article, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Internalf("finding article by slug: %v", err)
	}
	return &article, nil
}

// IncrementViews bumps the monotonic read counter. Errors are returned so
// callers can decide whether a failed count spoils the read (it doesn't).
func IncrementViews(id string) error {
	return db.DB.Model(&Article{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func applyFilter(q *gorm.DB, filter Filter) *gorm.DB {
	if filter.Tag != "" {
		q = q.Where("? = ANY(tags)", filter.Tag)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	return q
}

// ListArticles returns one page sorted newest-first, plus the total number
// of articles matching the filter.
func ListArticles(filter Filter, page Page) ([]Article, int64, error) {
	if page.Limit <= 0 {
		page.Limit = DefaultLimit
	}
	if page.Skip < 0 {
		page.Skip = 0
	}

	var total int64
	if err := applyFilter(db.DB.Model(&Article{}), filter).Count(&total).Error; err != nil {
		return nil, 0, apperr.Internalf("counting articles: %v", err)
	}

	var items []Article
	err := applyFilter(db.DB.Model(&Article{}), filter).
		Order("publish_date desc").
		Limit(page.Limit).
		Offset(page.Skip).
		Find(&items).Error
	if err != nil {
		return nil, 0, apperr.Internalf("listing articles: %v", err)
	}
	return items, total, nil
}

// HasMore reports whether another page follows the one just returned.
func HasMore(skip, returned int, total int64) bool {
	return int64(skip+returned) < total
}

// UpdateArticle applies a column patch. The slug is never part of the
// patch: it is immutable after creation.
func UpdateArticle(id string, fields map[string]any) (*Article, error) {
	if err := db.DB.Model(&Article{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, apperr.Internalf("updating article: %v", err)
	}
	return GetArticle(id)
}

// DeleteArticle removes the article permanently; there is no soft delete
// or restore.
func DeleteArticle(id string) error {
	result := db.DB.Delete(&Article{}, "id = ?", id)
	if result.Error != nil {
		return apperr.Internalf("deleting article: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

// DistinctTags aggregates the de-duplicated tag values across all articles.
func DistinctTags() ([]string, error) {
	var tags []string
	err := db.DB.Raw(
		`SELECT DISTINCT unnest(tags) AS tag FROM app_articles.articles ORDER BY tag`,
	).Scan(&tags).Error
	if err != nil {
		return nil, apperr.Internalf("aggregating tags: %v", err)
	}
	return tags, nil
}

// DistinctCategories aggregates the de-duplicated categories.
func DistinctCategories() ([]string, error) {
	var categories []string
	err := db.DB.Model(&Article{}).
		Distinct("category").
		Where("category <> ''").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, apperr.Internalf("aggregating categories: %v", err)
	}
	return categories, nil
}
