package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/princearya108/foodlab-portal/internal/models"
	"github.com/princearya108/foodlab-portal/internal/repository"
)

// ContactAdmin defines the admin operations on contacts.
type ContactAdmin interface {
	ListAll(ctx context.Context) ([]models.Contact, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SoftDelete(ctx context.Context, id string) error
}

// InternshipAdmin defines the admin operations on internship applications.
type InternshipAdmin interface {
	ListAll(ctx context.Context) ([]models.InternshipApplication, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SoftDelete(ctx context.Context, id string) error
}

// ServiceRequestAdmin defines the admin operations on service requests.
type ServiceRequestAdmin interface {
	ListAll(ctx context.Context) ([]models.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
	SoftDelete(ctx context.Context, id string) error
}

// BlogAdmin defines the admin operations on blog posts.
type BlogAdmin interface {
	ListAll(ctx context.Context) ([]models.BlogPost, error)
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	Insert(ctx context.Context, b *models.BlogPost) error
	Update(ctx context.Context, b *models.BlogPost) error
	UpdateStatus(ctx context.Context, id, status string) error
	SoftDelete(ctx context.Context, id string) error
}

// TeamAdmin defines the admin operations on team members.
type TeamAdmin interface {
	ListAll(ctx context.Context) ([]models.TeamMember, error)
	GetByID(ctx context.Context, id string) (*models.TeamMember, error)
	Insert(ctx context.Context, m *models.TeamMember) error
	Update(ctx context.Context, m *models.TeamMember) error
	SetActive(ctx context.Context, id string, active bool) error
	SoftDelete(ctx context.Context, id string) error
}

// EquipmentAdmin defines the admin operations on equipment records.
type EquipmentAdmin interface {
	ListAll(ctx context.Context) ([]models.Equipment, error)
	GetByID(ctx context.Context, id string) (*models.Equipment, error)
	Insert(ctx context.Context, e *models.Equipment) error
	Update(ctx context.Context, e *models.Equipment) error
	UpdateStatus(ctx context.Context, id, status string) error
	SoftDelete(ctx context.Context, id string) error
}

// PageAdmin defines the admin operations on static pages.
type PageAdmin interface {
	Upsert(ctx context.Context, p *models.Page) error
}

// AdminHandler serves the bearer-protected dashboard endpoints.
type AdminHandler struct {
	Contacts        ContactAdmin
	Internships     InternshipAdmin
	ServiceRequests ServiceRequestAdmin
	Blogs           BlogAdmin
	Team            TeamAdmin
	Equipment       EquipmentAdmin
	Pages           PageAdmin
	Uploads         FileSaver
}

// ListContacts handles GET /api/admin/contacts/admin.
func (h *AdminHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.Contacts.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load contacts")
		return
	}
	writeData(w, http.StatusOK, listPayload{Data: emptyIfNil(contacts)})
}

// ListInternships handles GET /api/admin/internships/admin.
func (h *AdminHandler) ListInternships(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Internships.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load internships")
		return
	}
	writeData(w, http.StatusOK, listPayload{Data: emptyIfNil(apps)})
}

// ListServiceRequests handles GET /api/admin/service-requests/admin.
func (h *AdminHandler) ListServiceRequests(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.ServiceRequests.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load service requests")
		return
	}
	writeData(w, http.StatusOK, listPayload{Data: emptyIfNil(reqs)})
}

// ListBlogs handles GET /api/admin/blogs/admin/all.
func (h *AdminHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Blogs.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load blogs")
		return
	}
	writeData(w, http.StatusOK, listPayload{Data: emptyIfNil(posts)})
}

// ListTeam handles GET /api/admin/team/admin/all.
func (h *AdminHandler) ListTeam(w http.ResponseWriter, r *http.Request) {
	members, err := h.Team.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load team")
		return
	}
	writeData(w, http.StatusOK, listPayload{Data: emptyIfNil(members)})
}

// ListEquipment handles GET /api/admin/equipment/admin/all.
func (h *AdminHandler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	items, err := h.Equipment.ListAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load equipment")
		return
	}
	writeData(w, http.StatusOK, listPayload{Data: emptyIfNil(items)})
}

// StatusRequest represents the PATCH payload for a status update.
type StatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus serves PATCH /api/admin/{type}/{id} for the given
// entity type. Any status from the entity's allowed set may follow any
// other.
func (h *AdminHandler) UpdateStatus(entityType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req StatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
			writeError(w, http.StatusBadRequest, "status is required")
			return
		}

		var err error
		switch entityType {
		case "contacts":
			err = h.applyStatus(r.Context(), models.ContactStatuses, req.Status, id, h.Contacts.UpdateStatus)
		case "internships":
			err = h.applyStatus(r.Context(), models.InternshipStatuses, req.Status, id, h.Internships.UpdateStatus)
		case "service-requests":
			err = h.applyStatus(r.Context(), models.ServiceRequestStatuses, req.Status, id, h.ServiceRequests.UpdateStatus)
		case "blogs":
			err = h.applyStatus(r.Context(), models.BlogStatuses, req.Status, id, h.Blogs.UpdateStatus)
		case "team":
			if !models.ValidStatus(models.TeamStatuses, req.Status) {
				err = errInvalidStatus
				break
			}
			err = h.Team.SetActive(r.Context(), id, req.Status == "active")
		case "equipment":
			err = h.applyStatus(r.Context(), models.EquipmentStatuses, req.Status, id, h.Equipment.UpdateStatus)
		}

		switch {
		case err == nil:
			writeData(w, http.StatusOK, map[string]string{"id": id, "status": req.Status})
		case errors.Is(err, errInvalidStatus):
			writeError(w, http.StatusBadRequest, "invalid status value")
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "record not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update status")
		}
	}
}

var errInvalidStatus = errors.New("invalid status")

func (h *AdminHandler) applyStatus(ctx context.Context, allowed []string, status, id string,
	update func(context.Context, string, string) error) error {
	if !models.ValidStatus(allowed, status) {
		return errInvalidStatus
	}
	return update(ctx, id, status)
}

// Delete serves DELETE /api/admin/{type}/{id} for the given entity type.
func (h *AdminHandler) Delete(entityType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var err error
		switch entityType {
		case "contacts":
			err = h.Contacts.SoftDelete(r.Context(), id)
		case "internships":
			err = h.Internships.SoftDelete(r.Context(), id)
		case "service-requests":
			err = h.ServiceRequests.SoftDelete(r.Context(), id)
		case "blogs":
			err = h.Blogs.SoftDelete(r.Context(), id)
		case "team":
			err = h.Team.SoftDelete(r.Context(), id)
		case "equipment":
			err = h.Equipment.SoftDelete(r.Context(), id)
		}

		switch {
		case err == nil:
			writeData(w, http.StatusOK, map[string]string{"id": id, "status": "deleted"})
		case errors.Is(err, repository.ErrNotFound):
			writeError(w, http.StatusNotFound, "record not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete record")
		}
	}
}

// StatusEntityTypes lists the entity types accepting PATCH/DELETE by id.
var StatusEntityTypes = []string{
	"contacts", "internships", "service-requests", "blogs", "team", "equipment",
}

// CreateBlog handles POST /api/admin/blogs (multipart).
func (h *AdminHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	post, ok := h.blogFromForm(w, r, uuid.NewString(), nil)
	if !ok {
		return
	}
	post.CreatedAt = time.Now()
	if err := h.Blogs.Insert(r.Context(), post); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeData(w, http.StatusCreated, post)
}

// UpdateBlog handles PUT /api/admin/blogs/{id} (multipart). Fields
// omitted from the form keep their stored values.
func (h *AdminHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := h.Blogs.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "blog post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load blog post")
		return
	}
	post, ok := h.blogFromForm(w, r, id, existing)
	if !ok {
		return
	}
	if err := h.Blogs.Update(r.Context(), post); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "blog post not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeData(w, http.StatusOK, post)
}

// blogFromForm builds a post from the multipart form. On update,
// existing supplies the defaults for omitted fields; on create it is
// nil and the usual defaults apply.
func (h *AdminHandler) blogFromForm(w http.ResponseWriter, r *http.Request, id string, existing *models.BlogPost) (*models.BlogPost, bool) {
	if err := r.ParseMultipartForm(24 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return nil, false
	}

	defaultStatus, defaultFeatured := "draft", false
	if existing != nil {
		defaultStatus, defaultFeatured = existing.Status, existing.Featured
	}
	post := &models.BlogPost{
		ID:            id,
		Title:         r.FormValue("title"),
		Slug:          r.FormValue("slug"),
		Excerpt:       r.FormValue("excerpt"),
		Content:       r.FormValue("content"),
		Category:      r.FormValue("category"),
		Tags:          formList(r, "tags"),
		Status:        r.FormValue("status"),
		FeaturedImage: r.FormValue("featuredImage"),
		Author:        r.FormValue("author"),
		Featured:      formBool(r, "featured", defaultFeatured),
	}
	if post.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return nil, false
	}
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	if post.Status == "" {
		post.Status = defaultStatus
	}
	if !models.ValidStatus(models.BlogStatuses, post.Status) {
		writeError(w, http.StatusBadRequest, "invalid status value")
		return nil, false
	}

	if files := r.MultipartForm.File["featuredImage"]; len(files) > 0 {
		path, err := h.Uploads.Save("featuredImage", files[0])
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		post.FeaturedImage = path
	}
	return post, true
}

// CreateTeamMember handles POST /api/admin/team (multipart).
func (h *AdminHandler) CreateTeamMember(w http.ResponseWriter, r *http.Request) {
	member, ok := h.teamMemberFromForm(w, r, uuid.NewString(), nil)
	if !ok {
		return
	}
	member.CreatedAt = time.Now()
	if err := h.Team.Insert(r.Context(), member); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeData(w, http.StatusCreated, member)
}

// UpdateTeamMember handles PUT /api/admin/team/{id} (multipart). Fields
// omitted from the form keep their stored values.
func (h *AdminHandler) UpdateTeamMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := h.Team.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "team member not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load team member")
		return
	}
	member, ok := h.teamMemberFromForm(w, r, id, existing)
	if !ok {
		return
	}
	if err := h.Team.Update(r.Context(), member); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "team member not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeData(w, http.StatusOK, member)
}

// teamMemberFromForm builds a profile from the multipart form. On
// update, existing supplies the defaults for omitted fields.
func (h *AdminHandler) teamMemberFromForm(w http.ResponseWriter, r *http.Request, id string, existing *models.TeamMember) (*models.TeamMember, bool) {
	if err := r.ParseMultipartForm(24 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return nil, false
	}

	defaultActive, defaultOrder := true, 0
	if existing != nil {
		defaultActive, defaultOrder = existing.IsActive, existing.DisplayOrder
	}
	member := &models.TeamMember{
		ID:             id,
		Name:           r.FormValue("name"),
		Position:       r.FormValue("position"),
		Department:     r.FormValue("department"),
		Email:          r.FormValue("email"),
		Phone:          r.FormValue("phone"),
		Bio:            r.FormValue("bio"),
		Education:      r.FormValue("education"),
		Experience:     r.FormValue("experience"),
		Specialization: r.FormValue("specialization"),
		DisplayOrder:   formInt(r, "displayOrder", defaultOrder),
		IsActive:       formBool(r, "isActive", defaultActive),
		ProfileImage:   r.FormValue("profileImage"),
		Achievements:   formList(r, "achievements"),
		Publications:   formList(r, "publications"),
	}
	if member.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return nil, false
	}
	if v := r.FormValue("socialLinks"); v != "" {
		if err := json.Unmarshal([]byte(v), &member.SocialLinks); err != nil {
			writeError(w, http.StatusBadRequest, "invalid socialLinks")
			return nil, false
		}
	}

	if files := r.MultipartForm.File["profileImage"]; len(files) > 0 {
		path, err := h.Uploads.Save("profileImage", files[0])
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		member.ProfileImage = path
	}
	return member, true
}

// CreateEquipment handles POST /api/admin/equipment (multipart).
func (h *AdminHandler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	item, ok := h.equipmentFromForm(w, r, uuid.NewString(), nil)
	if !ok {
		return
	}
	item.CreatedAt = time.Now()
	if err := h.Equipment.Insert(r.Context(), item); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeData(w, http.StatusCreated, item)
}

// UpdateEquipment handles PUT /api/admin/equipment/{id} (multipart).
// Fields omitted from the form keep their stored values.
func (h *AdminHandler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, err := h.Equipment.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "equipment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load equipment")
		return
	}
	item, ok := h.equipmentFromForm(w, r, id, existing)
	if !ok {
		return
	}
	if err := h.Equipment.Update(r.Context(), item); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "equipment not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeData(w, http.StatusOK, item)
}

// equipmentFromForm builds a record from the multipart form. On
// update, existing supplies the defaults for omitted fields.
func (h *AdminHandler) equipmentFromForm(w http.ResponseWriter, r *http.Request, id string, existing *models.Equipment) (*models.Equipment, bool) {
	if err := r.ParseMultipartForm(48 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return nil, false
	}

	defaultStatus, defaultPublic, defaultFeatured, defaultOrder := "Operational", true, false, 0
	if existing != nil {
		defaultStatus, defaultPublic = existing.OperatingStatus, existing.IsPublicDisplay
		defaultFeatured, defaultOrder = existing.Featured, existing.DisplayOrder
	}
	item := &models.Equipment{
		ID:              id,
		Name:            r.FormValue("name"),
		Model:           r.FormValue("model"),
		Manufacturer:    r.FormValue("manufacturer"),
		Category:        r.FormValue("category"),
		OperatingStatus: r.FormValue("operatingStatus"),
		// Previously stored paths arrive as form values; new uploads are appended.
		EquipmentImages: formList(r, "equipmentImages"),
		Manuals:         formList(r, "manuals"),
		DisplayOrder:    formInt(r, "displayOrder", defaultOrder),
		IsPublicDisplay: formBool(r, "isPublicDisplay", defaultPublic),
		Featured:        formBool(r, "featured", defaultFeatured),
	}
	if item.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return nil, false
	}
	if item.OperatingStatus == "" {
		item.OperatingStatus = defaultStatus
	}
	if !models.ValidStatus(models.EquipmentStatuses, item.OperatingStatus) {
		writeError(w, http.StatusBadRequest, "invalid operating status")
		return nil, false
	}
	for name, dst := range map[string]any{
		"location":            &item.Location,
		"responsiblePerson":   &item.ResponsiblePerson,
		"cost":                &item.Cost,
		"maintenanceSchedule": &item.MaintenanceSchedule,
	} {
		if v := r.FormValue(name); v != "" {
			if err := json.Unmarshal([]byte(v), dst); err != nil {
				writeError(w, http.StatusBadRequest, "invalid "+name)
				return nil, false
			}
		}
	}

	for _, fh := range r.MultipartForm.File["equipmentImages"] {
		path, err := h.Uploads.Save("equipmentImages", fh)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		item.EquipmentImages = append(item.EquipmentImages, path)
	}
	for _, fh := range r.MultipartForm.File["manuals"] {
		path, err := h.Uploads.Save("manuals", fh)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
		item.Manuals = append(item.Manuals, path)
	}
	return item, true
}

// PageRequest represents the JSON payload for a static page update.
type PageRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpsertPage handles PUT /api/admin/pages/{slug}.
func (h *AdminHandler) UpsertPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	var req PageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	page := &models.Page{
		ID:      uuid.NewString(),
		Slug:    slug,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := h.Pages.Upsert(r.Context(), page); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save page")
		return
	}
	writeData(w, http.StatusOK, page)
}
