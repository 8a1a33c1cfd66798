package articles

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/MarketPulse/MP-Backend/internal/apperr"
	"github.com/MarketPulse/MP-Backend/internal/gate"
	"github.com/MarketPulse/MP-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type articleRequest struct {
	Title         string   `json:"title"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content"`
	Category      string   `json:"category"`
	Type          string   `json:"type"`
	Tags          []string `json:"tags"`
	ImageURL      string   `json:"image_url"`
	ReadTime      string   `json:"read_time"`
	MarketImpact  string   `json:"market_impact"`
	DataPoints    []string `json:"data_points"`
	Topic         string   `json:"topic"`
	CommentsCount *int64   `json:"comments_count"`
	AuthorID      string   `json:"author_id"`
	Author        string   `json:"author"`
}

func CreateArticleHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		utils.RespondError(w, apperr.ErrAuthRequired)
		return
	}

	var req articleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	var missing []string
	for field, value := range map[string]string{
		"title":    req.Title,
		"content":  req.Content,
		"category": req.Category,
		"type":     req.Type,
	} {
		if value == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		utils.RespondError(w, apperr.Validation(missing...))
		return
	}
	if !ValidType(req.Type) {
		utils.RespondError(w, apperr.Validation("type"))
		return
	}

	// The author is the caller; only a superadmin may publish on behalf
	// of another account.
	authorID := claims.AccountID
	author := claims.Name
	if req.AuthorID != "" && claims.Role == gate.RoleSuperadmin {
		authorID = req.AuthorID
		if req.Author != "" {
			author = req.Author
		}
	}

	now := time.Now()
	article := Article{
		ID:           uuid.New().String(),
		Slug:         Slugify(req.Title),
		Title:        req.Title,
		Excerpt:      req.Excerpt,
		Content:      req.Content,
		Category:     req.Category,
		Type:         req.Type,
		AuthorID:     authorID,
		Author:       author,
		Tags:         pq.StringArray(req.Tags),
		ImageURL:     req.ImageURL,
		ReadTime:     req.ReadTime,
		MarketImpact: req.MarketImpact,
		DataPoints:   pq.StringArray(req.DataPoints),
		Topic:        req.Topic,
		PublishDate:  now,
	}
	if req.CommentsCount != nil {
		article.CommentsCount = *req.CommentsCount
	}

	if err := CreateArticle(&article); err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]any{"post": article})
}

func GetArticleHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		utils.RespondError(w, apperr.Validation("id"))
		return
	}

	article, err := GetArticle(id)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	// A failed view bump never spoils the read.
	if err := IncrementViews(id); err != nil {
		log.Printf("[articles] failed to increment views for %s: %v", id, err)
	} else {
		article.Views++
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"post": article})
}

func GetArticleBySlugHandler(w http.ResponseWriter, r *http.Request) {
	article, err := GetArticleBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	if err := IncrementViews(article.ID); err != nil {
		log.Printf("[articles] failed to increment views for %s: %v", article.ID, err)
	} else {
		article.Views++
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"post": article})
}

func ListArticlesHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := Filter{
		Tag:      query.Get("tag"),
		Type:     query.Get("type"),
		Category: query.Get("category"),
	}

	page := Page{Limit: DefaultLimit}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			utils.RespondError(w, apperr.Validation("limit"))
			return
		}
		page.Limit = limit
	}
	if raw := query.Get("skip"); raw != "" {
		skip, err := strconv.Atoi(raw)
		if err != nil || skip < 0 {
			utils.RespondError(w, apperr.Validation("skip"))
			return
		}
		page.Skip = skip
	}

	items, total, err := ListArticles(filter, page)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"posts":   items,
		"total":   total,
		"hasMore": HasMore(page.Skip, len(items), total),
	})
}

func UpdateArticleHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		utils.RespondError(w, apperr.ErrAuthRequired)
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		utils.RespondError(w, apperr.Validation("id"))
		return
	}

	article, err := GetArticle(id)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	if !CanMutate(claims, article) {
		utils.RespondError(w, apperr.ErrForbidden)
		return
	}

	var req struct {
		Title         *string  `json:"title"`
		Excerpt       *string  `json:"excerpt"`
		Content       *string  `json:"content"`
		Category      *string  `json:"category"`
		Type          *string  `json:"type"`
		Tags          []string `json:"tags"`
		ImageURL      *string  `json:"image_url"`
		ReadTime      *string  `json:"read_time"`
		MarketImpact  *string  `json:"market_impact"`
		DataPoints    []string `json:"data_points"`
		Topic         *string  `json:"topic"`
		CommentsCount *int64   `json:"comments_count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	// The slug stays as derived at creation, even when the title changes.
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Excerpt != nil {
		fields["excerpt"] = *req.Excerpt
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Type != nil {
		if !ValidType(*req.Type) {
			utils.RespondError(w, apperr.Validation("type"))
			return
		}
		fields["type"] = *req.Type
	}
	if req.Tags != nil {
		fields["tags"] = pq.StringArray(req.Tags)
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.ReadTime != nil {
		fields["read_time"] = *req.ReadTime
	}
	if req.MarketImpact != nil {
		fields["market_impact"] = *req.MarketImpact
	}
	if req.DataPoints != nil {
		fields["data_points"] = pq.StringArray(req.DataPoints)
	}
	if req.Topic != nil {
		fields["topic"] = *req.Topic
	}
	if req.CommentsCount != nil {
		fields["comments_count"] = *req.CommentsCount
	}
	if len(fields) == 0 {
		utils.RespondError(w, apperr.Validation("no fields to update"))
		return
	}

	updated, err := UpdateArticle(id, fields)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"post": updated})
}

func DeleteArticleHandler(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		utils.RespondError(w, apperr.ErrAuthRequired)
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		utils.RespondError(w, apperr.Validation("id"))
		return
	}

	article, err := GetArticle(id)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	if !CanMutate(claims, article) {
		utils.RespondError(w, apperr.ErrForbidden)
		return
	}

	if err := DeleteArticle(id); err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "post deleted"})
}

func TagsHandler(w http.ResponseWriter, r *http.Request) {
	tags, err := DistinctTags()
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"tags": tags})
}

func CategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := DistinctCategories()
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"categories": categories})
}
