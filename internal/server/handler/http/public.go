package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/princearya108/foodlab-portal/internal/models"
	"github.com/princearya108/foodlab-portal/internal/repository"
)

// BlogReader defines the public blog read operations.
type BlogReader interface {
	ListPublished(ctx context.Context) ([]models.BlogPost, error)
	ListFeatured(ctx context.Context) ([]models.BlogPost, error)
	// GetBySlug returns a published post and counts the view.
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
}

// TeamReader defines the public team read operations.
type TeamReader interface {
	ListActive(ctx context.Context) ([]models.TeamMember, error)
}

// EquipmentReader defines the public equipment read operations.
type EquipmentReader interface {
	ListPublic(ctx context.Context) ([]models.Equipment, error)
}

// PageReader defines the static page read operations.
type PageReader interface {
	GetBySlug(ctx context.Context, slug string) (*models.Page, error)
}

// PublicHandler serves the unauthenticated read endpoints backing the
// marketing pages.
type PublicHandler struct {
	Blogs     BlogReader
	Team      TeamReader
	Equipment EquipmentReader
	Pages     PageReader
}

// ListBlogs handles GET /api/blogs.
func (h *PublicHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Blogs.ListPublished(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load blogs")
		return
	}
	writeData(w, http.StatusOK, emptyIfNil(posts))
}

// FeaturedBlogs handles GET /api/blogs/featured/posts.
func (h *PublicHandler) FeaturedBlogs(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Blogs.ListFeatured(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load blogs")
		return
	}
	writeData(w, http.StatusOK, emptyIfNil(posts))
}

// GetBlog handles GET /api/blogs/{slug}.
func (h *PublicHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post, err := h.Blogs.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "blog post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load blog post")
		return
	}
	writeData(w, http.StatusOK, post)
}

// ListTeam handles GET /api/team.
func (h *PublicHandler) ListTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.Team.ListActive(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load team")
		return
	}
	writeData(w, http.StatusOK, emptyIfNil(members))
}

// ListEquipment handles GET /api/equipment.
func (h *PublicHandler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := h.Equipment.ListPublic(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load equipment")
		return
	}
	writeData(w, http.StatusOK, emptyIfNil(items))
}

// GetPage handles GET /api/pages/{slug}.
func (h *PublicHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page, err := h.Pages.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "page not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load page")
		return
	}
	writeData(w, http.StatusOK, page)
}

// emptyIfNil keeps list payloads as [] instead of null for callers.
func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
