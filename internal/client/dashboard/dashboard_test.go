package dashboard

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/princearya108/foodlab-portal/internal/client/api"
	"github.com/princearya108/foodlab-portal/internal/models"
)

// fakeClient routes each list path to a canned responder and records
// mutation calls.
type fakeClient struct {
	lists    map[string]func(out any) error
	patchErr error
	patches  []string
	deletes  []string
}

func (f *fakeClient) GetList(ctx context.Context, path string, out any) error {
	responder, ok := f.lists[path]
	if !ok {
		return nil
	}
	return responder(out)
}

func (f *fakeClient) Patch(ctx context.Context, path string, body, out any) error {
	f.patches = append(f.patches, path)
	return f.patchErr
}

func (f *fakeClient) Delete(ctx context.Context, path string, out any) error {
	f.deletes = append(f.deletes, path)
	return nil
}

type fakeSession struct {
	cleared bool
}

func (f *fakeSession) Clear() error {
	f.cleared = true
	return nil
}

func contactsResponder(contacts ...models.Contact) func(out any) error {
	return func(out any) error {
		*out.(*[]models.Contact) = contacts
		return nil
	}
}

func TestDashboard_Refresh_PartialFailureIsolation(t *testing.T) {
	// Five endpoints succeed, one fails: the failing entity degrades
	// to empty while the others load, and Refresh itself succeeds.
	client := &fakeClient{lists: map[string]func(out any) error{
		"/api/admin/contacts/admin": contactsResponder(
			models.Contact{ID: "c1", Name: "Alice"},
		),
		"/api/admin/internships/admin": func(out any) error {
			*out.(*[]models.InternshipApplication) = []models.InternshipApplication{{ID: "i1"}}
			return nil
		},
		"/api/admin/service-requests/admin": func(out any) error {
			return errors.New("connection refused")
		},
		"/api/admin/blogs/admin/all": func(out any) error {
			*out.(*[]models.BlogPost) = []models.BlogPost{{ID: "b1"}}
			return nil
		},
		"/api/admin/team/admin/all": func(out any) error {
			*out.(*[]models.TeamMember) = []models.TeamMember{{ID: "m1"}}
			return nil
		},
		"/api/admin/equipment/admin/all": func(out any) error {
			*out.(*[]models.Equipment) = []models.Equipment{{ID: "e1"}}
			return nil
		},
	}}
	session := &fakeSession{}
	d := New(client, session, zap.NewNop())

	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh should settle despite one failing endpoint, got %v", err)
	}

	data := d.Snapshot()
	if len(data.Contacts) != 1 || len(data.Internships) != 1 ||
		len(data.Blogs) != 1 || len(data.Team) != 1 || len(data.Equipment) != 1 {
		t.Errorf("succeeding endpoints should populate: %+v", data)
	}
	if len(data.ServiceRequests) != 0 {
		t.Errorf("failing endpoint should degrade to empty, got %v", data.ServiceRequests)
	}
	if session.cleared {
		t.Error("a non-auth failure must not clear the session")
	}
}

func TestDashboard_Refresh_UnauthorizedClearsSession(t *testing.T) {
	client := &fakeClient{lists: map[string]func(out any) error{
		"/api/admin/contacts/admin": contactsResponder(models.Contact{ID: "c1"}),
		"/api/admin/blogs/admin/all": func(out any) error {
			return &api.Error{Status: http.StatusUnauthorized, Message: "invalid or expired token"}
		},
	}}
	session := &fakeSession{}
	d := New(client, session, zap.NewNop())

	err := d.Refresh(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if !session.cleared {
		t.Error("401 must clear the session")
	}
}

func TestDashboard_UpdateStatus_RefetchesServerTruth(t *testing.T) {
	// The cached status must come from the re-fetch, not from a local
	// patch of the old snapshot.
	status := "new"
	client := &fakeClient{lists: map[string]func(out any) error{
		"/api/admin/contacts/admin": func(out any) error {
			*out.(*[]models.Contact) = []models.Contact{{ID: "c1", Name: "Alice", Status: status}}
			return nil
		},
	}}
	d := New(client, &fakeSession{}, zap.NewNop())

	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("initial refresh: %v", err)
	}
	if got := d.Snapshot().Contacts[0].Status; got != "new" {
		t.Fatalf("initial status = %q; want %q", got, "new")
	}

	status = "resolved"
	if err := d.UpdateStatus(context.Background(), "contacts", "c1", "resolved"); err != nil {
		t.Fatalf("update status: %v", err)
	}

	if len(client.patches) != 1 || client.patches[0] != "/api/admin/contacts/c1" {
		t.Errorf("patches = %v; want one PATCH to /api/admin/contacts/c1", client.patches)
	}
	if got := d.Snapshot().Contacts[0].Status; got != "resolved" {
		t.Errorf("status after update = %q; want %q", got, "resolved")
	}
}

func TestDashboard_UpdateStatus_UnknownEntity(t *testing.T) {
	d := New(&fakeClient{}, &fakeSession{}, zap.NewNop())
	if err := d.UpdateStatus(context.Background(), "widgets", "w1", "new"); err == nil {
		t.Error("expected an error for an unknown entity type")
	}
}

func TestDashboard_Delete_Refetches(t *testing.T) {
	remaining := []models.Contact{{ID: "c1"}, {ID: "c2"}}
	client := &fakeClient{lists: map[string]func(out any) error{
		"/api/admin/contacts/admin": func(out any) error {
			*out.(*[]models.Contact) = remaining
			return nil
		},
	}}
	d := New(client, &fakeSession{}, zap.NewNop())

	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("initial refresh: %v", err)
	}

	remaining = remaining[:1]
	if err := d.Delete(context.Background(), "contacts", "c2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(client.deletes) != 1 || client.deletes[0] != "/api/admin/contacts/c2" {
		t.Errorf("deletes = %v; want one DELETE to /api/admin/contacts/c2", client.deletes)
	}
	if got := len(d.Snapshot().Contacts); got != 1 {
		t.Errorf("contacts after delete = %d; want 1", got)
	}
}

func TestDashboard_UpdateStatus_Unauthorized(t *testing.T) {
	client := &fakeClient{
		patchErr: &api.Error{Status: http.StatusUnauthorized, Message: "invalid or expired token"},
	}
	session := &fakeSession{}
	d := New(client, session, zap.NewNop())

	err := d.UpdateStatus(context.Background(), "contacts", "c1", "resolved")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if !session.cleared {
		t.Error("401 on a mutation must clear the session")
	}
}

func TestFilterContacts(t *testing.T) {
	list := []models.Contact{
		{ID: "1", Name: "Alice", Email: "a@x.com", Status: "new"},
		{ID: "2", Name: "Bob", Email: "b@x.com", Status: "resolved"},
	}

	tests := []struct {
		name    string
		term    string
		status  string
		wantIDs []string
	}{
		{name: "term matches one", term: "ali", status: "all", wantIDs: []string{"1"}},
		{name: "term matches email", term: "b@x", status: "all", wantIDs: []string{"2"}},
		{name: "status narrows", term: "", status: "resolved", wantIDs: []string{"2"}},
		{name: "both filters", term: "bob", status: "new", wantIDs: []string{}},
		{name: "empty filters keep all", term: "", status: "", wantIDs: []string{"1", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterContacts(list, tt.term, tt.status)
			ids := make([]string, 0, len(got))
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("filtered ids = %v; want %v", ids, tt.wantIDs)
			}

			// Purity: a second identical call yields the same result
			// and the input list is untouched.
			again := FilterContacts(list, tt.term, tt.status)
			if !reflect.DeepEqual(got, again) {
				t.Error("same inputs should yield the same subset")
			}
			if list[0].ID != "1" || list[1].ID != "2" {
				t.Error("input list must not be mutated")
			}
		})
	}
}

func TestFilterTeam_Department(t *testing.T) {
	list := []models.TeamMember{
		{ID: "1", Name: "Alice", Department: "Chemical"},
		{ID: "2", Name: "Bob", Department: "Research"},
	}

	got := FilterTeam(list, "", "Research")
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("department filter returned %v; want just Bob", got)
	}
}
