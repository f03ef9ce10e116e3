// Package dashboard loads and mutates the admin view of all portal
// entities.
//
// A refresh fetches every entity list in parallel and settles each
// request independently: one failing endpoint degrades to an empty
// list with a logged warning instead of blanking the whole dashboard.
// The single exception is a 401, which means the session itself is
// dead — the refresh clears the stored session and reports
// ErrUnauthorized so the caller can send the user back to login.
package dashboard

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/princearya108/foodlab-portal/internal/client/api"
	"github.com/princearya108/foodlab-portal/internal/models"
)

// ErrUnauthorized is returned by Refresh when any endpoint rejects the
// session token.
var ErrUnauthorized = errors.New("session is no longer valid")

// Client is the slice of the API client the dashboard needs.
type Client interface {
	GetList(ctx context.Context, path string, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// SessionClearer wipes the stored session after an auth failure.
type SessionClearer interface {
	Clear() error
}

// Data is one consistent snapshot of every entity list.
type Data struct {
	Contacts        []models.Contact
	Internships     []models.InternshipApplication
	ServiceRequests []models.ServiceRequest
	Blogs           []models.BlogPost
	Team            []models.TeamMember
	Equipment       []models.Equipment
}

// listPaths maps each entity type to its admin list endpoint.
var listPaths = map[string]string{
	"contacts":         "/api/admin/contacts/admin",
	"internships":      "/api/admin/internships/admin",
	"service-requests": "/api/admin/service-requests/admin",
	"blogs":            "/api/admin/blogs/admin/all",
	"team":             "/api/admin/team/admin/all",
	"equipment":        "/api/admin/equipment/admin/all",
}

// Dashboard fetches, caches, and mutates the admin entity lists.
type Dashboard struct {
	client  Client
	session SessionClearer
	log     *zap.Logger

	mu   sync.RWMutex
	data Data
}

// New returns an empty Dashboard; call Refresh to populate it.
func New(client Client, session SessionClearer, log *zap.Logger) *Dashboard {
	return &Dashboard{client: client, session: session, log: log}
}

// Snapshot returns a copy of the current entity lists.
func (d *Dashboard) Snapshot() Data {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.data
}

// Refresh reloads every entity list from the backend in parallel.
//
// Each fetch settles on its own: a failure leaves that one list empty
// and logs a warning, while the other lists load normally. Refresh
// only fails as a whole on a 401, in which case the session is cleared
// and ErrUnauthorized is returned.
func (d *Dashboard) Refresh(ctx context.Context) error {
	var (
		wg           sync.WaitGroup
		next         Data
		unauthorized bool
		mu           sync.Mutex
	)

	fetch := func(entityType string, out any) {
		defer wg.Done()
		if err := d.client.GetList(ctx, listPaths[entityType], out); err != nil {
			if api.IsUnauthorized(err) {
				mu.Lock()
				unauthorized = true
				mu.Unlock()
				return
			}
			d.log.Warn("failed to load entity list",
				zap.String("entity", entityType),
				zap.Error(err),
			)
		}
	}

	wg.Add(len(listPaths))
	go fetch("contacts", &next.Contacts)
	go fetch("internships", &next.Internships)
	go fetch("service-requests", &next.ServiceRequests)
	go fetch("blogs", &next.Blogs)
	go fetch("team", &next.Team)
	go fetch("equipment", &next.Equipment)
	wg.Wait()

	if unauthorized {
		_ = d.session.Clear()
		return ErrUnauthorized
	}

	d.mu.Lock()
	d.data = next
	d.mu.Unlock()
	return nil
}

// UpdateStatus sets a record's status, then reloads everything so the
// cached lists reflect server truth rather than a local patch.
func (d *Dashboard) UpdateStatus(ctx context.Context, entityType, id, status string) error {
	if _, ok := listPaths[entityType]; !ok {
		return errors.New("unknown entity type: " + entityType)
	}
	body := map[string]string{"status": status}
	if err := d.client.Patch(ctx, "/api/admin/"+entityType+"/"+id, body, nil); err != nil {
		if api.IsUnauthorized(err) {
			_ = d.session.Clear()
			return ErrUnauthorized
		}
		return err
	}
	return d.Refresh(ctx)
}

// Delete removes a record, then reloads everything.
func (d *Dashboard) Delete(ctx context.Context, entityType, id string) error {
	if _, ok := listPaths[entityType]; !ok {
		return errors.New("unknown entity type: " + entityType)
	}
	if err := d.client.Delete(ctx, "/api/admin/"+entityType+"/"+id, nil); err != nil {
		if api.IsUnauthorized(err) {
			_ = d.session.Clear()
			return ErrUnauthorized
		}
		return err
	}
	return d.Refresh(ctx)
}
