// Seeds the database with accounts and articles from a YAML fixture file.
//
// Usage:
//
//	go run ./cmd/seed -file seeds/dev.yaml
//
// Seeding is idempotent: accounts already present (by username) and
// articles already present (by slug) are skipped.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/MarketPulse/MP-Backend/internal/accounts"
	"github.com/MarketPulse/MP-Backend/internal/articles"
	"github.com/MarketPulse/MP-Backend/internal/db"
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var filePath = flag.String("file", "", "Path to the YAML fixture file (required)")

type fixture struct {
	Accounts []struct {
		Username string `yaml:"username"`
		Name     string `yaml:"name"`
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		Role     string `yaml:"role"`
		Status   string `yaml:"status"`
	} `yaml:"accounts"`
	Articles []struct {
		Title        string   `yaml:"title"`
		Excerpt      string   `yaml:"excerpt"`
		Content      string   `yaml:"content"`
		Category     string   `yaml:"category"`
		Type         string   `yaml:"type"`
		Tags         []string `yaml:"tags"`
		ImageURL     string   `yaml:"image_url"`
		ReadTime     string   `yaml:"read_time"`
		MarketImpact string   `yaml:"market_impact"`
		Topic        string   `yaml:"topic"`
		Author       string   `yaml:"author"` // username reference
	} `yaml:"articles"`
}

func main() {
	flag.Parse()
	if *filePath == "" {
		log.Fatal("-file is required")
	}

	_ = godotenv.Load(".env.local")
	db.Connect(os.Getenv("DATABASE_URL"))
	accounts.Migrate()
	articles.Init()

	raw, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("reading fixture: %v", err)
	}

	var fx fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		log.Fatalf("parsing fixture: %v", err)
	}

	authorIDs := map[string]*accounts.Account{}
	createdAccounts, createdArticles := 0, 0

	for _, a := range fx.Accounts {
		var existing accounts.Account
		err := db.DB.First(&existing, "username = ?", a.Username).Error
		if err == nil {
			authorIDs[a.Username] = &existing
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("looking up account %s: %v", a.Username, err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hashing password for %s: %v", a.Username, err)
		}

		role := a.Role
		if role == "" {
			role = "admin"
		}
		status := a.Status
		if status == "" {
			status = accounts.StatusActive
		}

		account := &accounts.Account{
			AccountID:      uuid.New().String(),
			Username:       a.Username,
			Name:           a.Name,
			Email:          a.Email,
			HashedPassword: string(hashed),
			Role:           role,
			Status:         status,
		}
		if err := accounts.CreateAccount(account); err != nil {
			log.Fatalf("creating account %s: %v", a.Username, err)
		}
		authorIDs[a.Username] = account
		createdAccounts++
	}

	for _, art := range fx.Articles {
		author, ok := authorIDs[art.Author]
		if !ok {
			log.Fatalf("article %q references unknown author %q", art.Title, art.Author)
		}

		slug := articles.Slugify(art.Title)
		var n int64
		db.DB.Model(&articles.Article{}).Where("slug = ?", slug).Count(&n)
		if n > 0 {
			continue
		}

		article := &articles.Article{
			ID:           uuid.New().String(),
			Slug:         slug,
			Title:        art.Title,
			Excerpt:      art.Excerpt,
			Content:      art.Content,
			Category:     art.Category,
			Type:         art.Type,
			AuthorID:     author.AccountID,
			Author:       author.Name,
			Tags:         pq.StringArray(art.Tags),
			ImageURL:     art.ImageURL,
			ReadTime:     art.ReadTime,
			MarketImpact: art.MarketImpact,
			Topic:        art.Topic,
			PublishDate:  time.Now(),
		}
		if err := articles.CreateArticle(article); err != nil {
			log.Fatalf("creating article %q: %v", art.Title, err)
		}
		createdArticles++
	}

	log.Printf("[seed] created %d accounts, %d articles (%d account / %d article fixtures total)",
		createdAccounts, createdArticles, len(fx.Accounts), len(fx.Articles))
}
