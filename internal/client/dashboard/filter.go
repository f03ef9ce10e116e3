package dashboard

import (
	"strings"

	"github.com/princearya108/foodlab-portal/internal/models"
)

// The filter functions are pure: the same list, term, and status
// always yield the same subset, and the input slice is never mutated.
// A term matches case-insensitively as a substring; status "" or
// "all" matches everything.

func matches(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func statusMatches(want, got string) bool {
	return want == "" || want == "all" || want == got
}

// FilterContacts narrows contacts by a search term over name and email
// and by an exact status.
func FilterContacts(list []models.Contact, term, status string) []models.Contact {
	out := make([]models.Contact, 0, len(list))
	for _, c := range list {
		if matches(term, c.Name, c.Email) && statusMatches(status, c.Status) {
			out = append(out, c)
		}
	}
	return out
}

// FilterInternships narrows applications by name/email and status.
func FilterInternships(list []models.InternshipApplication, term, status string) []models.InternshipApplication {
	out := make([]models.InternshipApplication, 0, len(list))
	for _, a := range list {
		if matches(term, a.FullName, a.Email) && statusMatches(status, a.Status) {
			out = append(out, a)
		}
	}
	return out
}

// FilterServiceRequests narrows requests by name/company and status.
func FilterServiceRequests(list []models.ServiceRequest, term, status string) []models.ServiceRequest {
	out := make([]models.ServiceRequest, 0, len(list))
	for _, s := range list {
		if matches(term, s.Name, s.Company) && statusMatches(status, s.Status) {
			out = append(out, s)
		}
	}
	return out
}

// FilterBlogs narrows posts by title/author and status.
func FilterBlogs(list []models.BlogPost, term, status string) []models.BlogPost {
	out := make([]models.BlogPost, 0, len(list))
	for _, b := range list {
		if matches(term, b.Title, b.Author) && statusMatches(status, b.Status) {
			out = append(out, b)
		}
	}
	return out
}

// FilterTeam narrows members by name/position and by department.
func FilterTeam(list []models.TeamMember, term, department string) []models.TeamMember {
	out := make([]models.TeamMember, 0, len(list))
	for _, m := range list {
		if matches(term, m.Name, m.Position) && statusMatches(department, m.Department) {
			out = append(out, m)
		}
	}
	return out
}

// FilterEquipment narrows items by name/manufacturer and by operating
// status.
func FilterEquipment(list []models.Equipment, term, status string) []models.Equipment {
	out := make([]models.Equipment, 0, len(list))
	for _, e := range list {
		if matches(term, e.Name, e.Manufacturer) && statusMatches(status, e.OperatingStatus) {
			out = append(out, e)
		}
	}
	return out
}
