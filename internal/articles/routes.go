package articles

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes mounts the article surface under /posts. Reads are public;
// the gate requires an admin token for every mutating method on this
// prefix before these handlers run.
func SetupRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", ListArticlesHandler)
	r.Post("/", CreateArticleHandler)
	r.Get("/tags", TagsHandler)
	r.Get("/categories", CategoriesHandler)
	r.Get("/slug/{slug}", GetArticleBySlugHandler)
	r.Get("/{id}", GetArticleHandler)
	r.Put("/{id}", UpdateArticleHandler)
	r.Delete("/{id}", DeleteArticleHandler)

	return r
}
