// Package http provides HTTP routing and middleware configuration
// for the portal service.
package http

import (
	"net/http"

	"github.com/princearya108/foodlab-portal/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
)

// NewRouter constructs and returns an HTTP handler that serves the
// portal API. Public reads and submissions are open; everything under
// /api/admin plus token verification and profile updates require a
// bearer token.
//
// Routes:
//
//	POST /api/auth/login                        → authHandler.Login
//	GET  /api/auth/verify                       → authHandler.Verify (bearer)
//	PUT  /api/auth/profile                      → authHandler.UpdateProfile (bearer)
//
//	GET  /api/blogs                             → publicHandler.ListBlogs
//	GET  /api/blogs/featured/posts              → publicHandler.FeaturedBlogs
//	GET  /api/blogs/{slug}                      → publicHandler.GetBlog
//	GET  /api/team                              → publicHandler.ListTeam
//	GET  /api/equipment                         → publicHandler.ListEquipment
//	GET  /api/pages/{slug}                      → publicHandler.GetPage
//
//	POST /api/contact                           → submitHandler.Contact
//	POST /api/internship                        → submitHandler.Internship (multipart)
//	POST /api/service-request                   → submitHandler.ServiceRequest
//
//	GET    /api/admin/contacts/admin            → adminHandler.ListContacts (bearer)
//	GET    /api/admin/internships/admin         → adminHandler.ListInternships (bearer)
//	GET    /api/admin/service-requests/admin    → adminHandler.ListServiceRequests (bearer)
//	GET    /api/admin/blogs/admin/all           → adminHandler.ListBlogs (bearer)
//	GET    /api/admin/team/admin/all            → adminHandler.ListTeam (bearer)
//	GET    /api/admin/equipment/admin/all       → adminHandler.ListEquipment (bearer)
//	PATCH  /api/admin/{type}/{id}               → adminHandler.UpdateStatus (bearer)
//	DELETE /api/admin/{type}/{id}               → adminHandler.Delete (bearer)
//	POST/PUT multipart create and update for blogs, team, equipment (bearer)
//	PUT    /api/admin/pages/{slug}              → adminHandler.UpsertPage (bearer)
//
//	GET /uploads/*                              → static uploaded files
func NewRouter(
	authHandler *AuthHandler,
	publicHandler *PublicHandler,
	submitHandler *SubmitHandler,
	adminHandler *AdminHandler,
	verifier middleware.TokenVerifier,
	uploadsDir string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	requireAuth := middleware.BearerAuth(verifier)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/verify", authHandler.Verify)
				r.Put("/profile", authHandler.UpdateProfile)
			})
		})

		// Public endpoints
		r.Get("/blogs", publicHandler.ListBlogs)
		r.Get("/blogs/featured/posts", publicHandler.FeaturedBlogs)
		r.Get("/blogs/{slug}", publicHandler.GetBlog)
		r.Get("/team", publicHandler.ListTeam)
		r.Get("/equipment", publicHandler.ListEquipment)
		r.Get("/pages/{slug}", publicHandler.GetPage)

		r.Post("/contact", submitHandler.Contact)
		r.Post("/internship", submitHandler.Internship)
		r.Post("/service-request", submitHandler.ServiceRequest)

		// Protected group: requires a valid bearer token
		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/contacts/admin", adminHandler.ListContacts)
			r.Get("/internships/admin", adminHandler.ListInternships)
			r.Get("/service-requests/admin", adminHandler.ListServiceRequests)
			r.Get("/blogs/admin/all", adminHandler.ListBlogs)
			r.Get("/team/admin/all", adminHandler.ListTeam)
			r.Get("/equipment/admin/all", adminHandler.ListEquipment)

			r.Post("/blogs", adminHandler.CreateBlog)
			r.Put("/blogs/{id}", adminHandler.UpdateBlog)
			r.Post("/team", adminHandler.CreateTeamMember)
			r.Put("/team/{id}", adminHandler.UpdateTeamMember)
			r.Post("/equipment", adminHandler.CreateEquipment)
			r.Put("/equipment/{id}", adminHandler.UpdateEquipment)

			r.Put("/pages/{slug}", adminHandler.UpsertPage)

			for _, entityType := range StatusEntityTypes {
				r.Patch("/"+entityType+"/{id}", adminHandler.UpdateStatus(entityType))
				r.Delete("/"+entityType+"/{id}", adminHandler.Delete(entityType))
			}
		})
	})

	// Serve uploaded files
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	return r
}
