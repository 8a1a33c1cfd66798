package articles

import (
	"time"

	"github.com/lib/pq"
)

const (
	TypeFeatured     = "featuredArticle"
	TypeMarketUpdate = "marketUpdate"
	TypeOpinion      = "opinionPiece"
)

// ValidType reports whether t is one of the article types.
func ValidType(t string) bool {
	return t == TypeFeatured || t == TypeMarketUpdate || t == TypeOpinion
}

type Article struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Slug     string `gorm:"not null;uniqueIndex" json:"slug"`
	Title    string `gorm:"not null" json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `gorm:"type:text" json:"content"`
	Category string `gorm:"index" json:"category"`
	Type     string `gorm:"index" json:"type"`

	AuthorID string `gorm:"index" json:"author_id"`
	// Author is the display-name snapshot taken at creation; it does not
	// track later changes to the account record.
	Author string `json:"author"`

	Tags     pq.StringArray `gorm:"type:text[]" json:"tags"`
	ImageURL string         `json:"image_url,omitempty"`
	ReadTime string         `json:"read_time,omitempty"`
	Views    int64          `gorm:"default:0" json:"views"`

	// Type-specific fields.
	MarketImpact  string         `json:"market_impact,omitempty"`
	DataPoints    pq.StringArray `gorm:"type:text[]" json:"data_points,omitempty"`
	Topic         string         `json:"topic,omitempty"`
	CommentsCount int64          `gorm:"default:0" json:"comments_count"`

	PublishDate time.Time `gorm:"index" json:"publish_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Article) TableName() string { return "app_articles.articles" }
