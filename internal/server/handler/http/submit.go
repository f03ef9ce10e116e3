package http

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/princearya108/foodlab-portal/internal/models"
)

// emailPattern is the minimal shape check applied to public
// submissions before they reach the database.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ContactWriter persists contact submissions.
type ContactWriter interface {
	Insert(ctx context.Context, c *models.Contact) error
}

// InternshipWriter persists internship applications.
type InternshipWriter interface {
	Insert(ctx context.Context, a *models.InternshipApplication) error
}

// ServiceRequestWriter persists service requests.
type ServiceRequestWriter interface {
	Insert(ctx context.Context, s *models.ServiceRequest) error
}

// FileSaver stores an uploaded file and returns its public path.
type FileSaver interface {
	Save(field string, fh *multipart.FileHeader) (string, error)
}

// SubmitHandler serves the public write endpoints: contact form,
// internship applications, and service requests.
type SubmitHandler struct {
	Contacts        ContactWriter
	Internships     InternshipWriter
	ServiceRequests ServiceRequestWriter
	Uploads         FileSaver
}

// ContactRequest represents the JSON payload of the public contact form.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Contact handles POST /api/contact.
func (h *SubmitHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "name, email and message are required")
		return
	}
	if !emailPattern.MatchString(req.Email) {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	contact := &models.Contact{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    "new",
		CreatedAt: time.Now(),
	}
	if err := h.Contacts.Insert(r.Context(), contact); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save message")
		return
	}
	writeData(w, http.StatusCreated, contact)
}

// Internship handles POST /api/internship. The request is multipart
// because it may carry a resume file.
func (h *SubmitHandler) Internship(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(12 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	app := &models.InternshipApplication{
		ID:        uuid.NewString(),
		FullName:  r.FormValue("fullName"),
		Email:     r.FormValue("email"),
		Phone:     r.FormValue("phone"),
		Education: r.FormValue("education"),
		Field:     r.FormValue("field"),
		Duration:  r.FormValue("duration"),
		Status:    "pending",
		CreatedAt: time.Now(),
	}
	if app.FullName == "" || app.Email == "" || app.Phone == "" {
		writeError(w, http.StatusBadRequest, "fullName, email and phone are required")
		return
	}
	if !emailPattern.MatchString(app.Email) {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}

	if files := r.MultipartForm.File["resume"]; len(files) > 0 {
		path, err := h.Uploads.Save("resume", files[0])
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		app.Resume = path
	}

	if err := h.Internships.Insert(r.Context(), app); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save application")
		return
	}
	writeData(w, http.StatusCreated, app)
}

// ServiceRequestPayload represents the JSON payload of a service request.
type ServiceRequestPayload struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Company       string `json:"company"`
	ServiceType   string `json:"serviceType"`
	Urgency       string `json:"urgency"`
	SampleDetails string `json:"sampleDetails"`
	Requirements  string `json:"requirements"`
}

// ServiceRequest handles POST /api/service-request.
func (h *SubmitHandler) ServiceRequest(w http.ResponseWriter, r *http.Request) {
	var req ServiceRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.ServiceType == "" {
		writeError(w, http.StatusBadRequest, "name, email and serviceType are required")
		return
	}
	if !emailPattern.MatchString(req.Email) {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if req.Urgency == "" {
		req.Urgency = "Medium"
	}

	sr := &models.ServiceRequest{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		ServiceType:   req.ServiceType,
		Urgency:       req.Urgency,
		Status:        "new",
		SampleDetails: req.SampleDetails,
		Requirements:  req.Requirements,
		CreatedAt:     time.Now(),
	}
	if err := h.ServiceRequests.Insert(r.Context(), sr); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save request")
		return
	}
	writeData(w, http.StatusCreated, sr)
}
