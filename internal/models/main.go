// Package models defines the core data structures shared by the
// portal server, repositories, and the admin client.
package models

import "time"

// Admin represents a dashboard administrator account.
type Admin struct {
	// ID is the unique identifier for the admin.
	ID string `json:"id"`
	// Username is the login name.
	Username string `json:"username"`
	// Email is the contact address for the account.
	Email string `json:"email"`
	// Role is the admin role label ("admin", "editor").
	Role string `json:"role"`
	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash []byte `json:"-"`
}

// Contact is a message submitted through the public contact form.
// Contacts are mutated only via admin status transitions.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Status    string    `json:"status"` // new|contacted|resolved
	CreatedAt time.Time `json:"createdAt"`
}

// InternshipApplication is a public internship submission, optionally
// carrying an uploaded resume.
type InternshipApplication struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Education string    `json:"education"`
	Field     string    `json:"field"`
	Duration  string    `json:"duration"`
	Status    string    `json:"status"` // pending|approved|rejected
	Resume    string    `json:"resume,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ServiceRequest is a public request for laboratory testing services.
type ServiceRequest struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Company       string    `json:"company,omitempty"`
	ServiceType   string    `json:"serviceType"`
	Urgency       string    `json:"urgency"` // Low|Medium|High|Urgent
	Status        string    `json:"status"`  // new|reviewed|quoted|accepted|in_progress|completed|cancelled
	SampleDetails string    `json:"sampleDetails"`
	Requirements  string    `json:"requirements"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BlogPost is an article. Slug is the public lookup key; slug
// uniqueness and generation belong to the server.
type BlogPost struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"` // HTML produced by the editor
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	Status        string    `json:"status"` // draft|published|archived
	FeaturedImage string    `json:"featuredImage,omitempty"`
	Author        string    `json:"author"`
	Featured      bool      `json:"featured"`
	Views         int64     `json:"views"`
	Likes         int64     `json:"likes"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SocialLinks holds optional profile URLs for a team member.
type SocialLinks struct {
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
}

// TeamMember is a laboratory staff profile. DisplayOrder and IsActive
// jointly determine public visibility and ordering.
type TeamMember struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Position       string      `json:"position"`
	Department     string      `json:"department"` // Chemical|Biological|Administration|Management|Research
	Email          string      `json:"email,omitempty"`
	Phone          string      `json:"phone,omitempty"`
	Bio            string      `json:"bio,omitempty"`
	Education      string      `json:"education,omitempty"`
	Experience     string      `json:"experience,omitempty"`
	Specialization string      `json:"specialization,omitempty"`
	DisplayOrder   int         `json:"displayOrder"`
	IsActive       bool        `json:"isActive"`
	ProfileImage   string      `json:"profileImage,omitempty"`
	SocialLinks    SocialLinks `json:"socialLinks"`
	Achievements   []string    `json:"achievements"`
	Publications   []string    `json:"publications"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// Location describes where a piece of equipment is installed.
type Location struct {
	Building string `json:"building,omitempty"`
	Room     string `json:"room,omitempty"`
}

// ResponsiblePerson identifies who maintains a piece of equipment.
type ResponsiblePerson struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Cost records the purchase cost of equipment.
type Cost struct {
	Amount   float64 `json:"amount,omitempty"`
	Currency string  `json:"currency,omitempty"`
}

// MaintenanceSchedule records past and planned maintenance dates.
type MaintenanceSchedule struct {
	LastMaintenance *time.Time `json:"lastMaintenance,omitempty"`
	NextMaintenance *time.Time `json:"nextMaintenance,omitempty"`
}

// Equipment is a laboratory instrument record.
type Equipment struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	Model               string              `json:"model,omitempty"`
	Manufacturer        string              `json:"manufacturer,omitempty"`
	Category            string              `json:"category"`
	OperatingStatus     string              `json:"operatingStatus"` // Operational|Under Maintenance|Out of Order|Retired
	Location            Location            `json:"location"`
	ResponsiblePerson   ResponsiblePerson   `json:"responsiblePerson"`
	Cost                Cost                `json:"cost"`
	EquipmentImages     []string            `json:"equipmentImages"`
	Manuals             []string            `json:"manuals"`
	MaintenanceSchedule MaintenanceSchedule `json:"maintenanceSchedule"`
	DisplayOrder        int                 `json:"displayOrder"`
	IsPublicDisplay     bool                `json:"isPublicDisplay"`
	Featured            bool                `json:"featured"`
	CreatedAt           time.Time           `json:"createdAt"`
}

// Page is a static content page looked up by slug.
type Page struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Status sets per entity. The server validates membership only; there
// is no transition graph, any listed status is settable from any other.
var (
	ContactStatuses = []string{"new", "contacted", "resolved"}

	InternshipStatuses = []string{"pending", "approved", "rejected"}

	ServiceRequestStatuses = []string{
		"new", "reviewed", "quoted", "accepted",
		"in_progress", "completed", "cancelled",
	}

	BlogStatuses = []string{"draft", "published", "archived"}

	// Team status toggles public visibility.
	TeamStatuses = []string{"active", "inactive"}

	EquipmentStatuses = []string{
		"Operational", "Under Maintenance", "Out of Order", "Retired",
	}
)

// ValidStatus reports whether status belongs to the allowed set.
func ValidStatus(allowed []string, status string) bool {
	for _, s := range allowed {
		if s == status {
			return true
		}
	}
	return false
}
