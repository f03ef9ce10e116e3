// Package main implements labadmin, the command-line client for the
// portal backend. It covers the public submission endpoints plus the
// full admin surface: login, dashboard aggregation, and per-entity
// list/status/delete/create operations.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/princearya108/foodlab-portal/internal/client/dashboard"
	"github.com/princearya108/foodlab-portal/internal/client/guard"
	"github.com/princearya108/foodlab-portal/internal/client/session"
	"github.com/princearya108/foodlab-portal/internal/models"
)

func main() {
	args := os.Args
	if len(args) == 1 {
		args = append(args, "--help")
	}

	root := &cli.Command{
		Name:  "labadmin",
		Usage: "Food-testing lab portal client",
		Commands: []*cli.Command{
			authCommand(),
			dashboardCommand(),
			contactsCommand(),
			internshipsCommand(),
			serviceRequestsCommand(),
			blogsCommand(),
			teamCommand(),
			equipmentCommand(),
			pagesCommand(),
			submitCommand(),
		},
	}

	if err := root.Run(context.Background(), args); err != nil {
		log.Fatal(err)
	}
}

func authCommand() *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authentication commands",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Login and store the session",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "server", Usage: "backend base URL"},
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					cfg, err := loadConfig()
					if err != nil {
						return err
					}
					if server := c.String("server"); server != "" {
						cfg.Server = server
						if err := saveConfig(cfg); err != nil {
							return err
						}
					}
					client, store, err := newAPI()
					if err != nil {
						return err
					}
					result, err := client.Login(ctx, c.String("username"), c.String("password"))
					if err != nil {
						return err
					}
					user := &session.User{
						Username: result.Admin.Username,
						Email:    result.Admin.Email,
						Role:     result.Admin.Role,
					}
					if err := store.Save(result.Token, user); err != nil {
						return err
					}
					fmt.Printf("logged in as %s\n", user.Username)
					return nil
				},
			},
			{
				Name:  "logout",
				Usage: "Clear the stored session",
				Action: func(ctx context.Context, c *cli.Command) error {
					store, err := newSession()
					if err != nil {
						return err
					}
					if err := store.Clear(); err != nil {
						return err
					}
					fmt.Println("logged out")
					return nil
				},
			},
			{
				Name:  "whoami",
				Usage: "Verify the session and show the current admin",
				Action: func(ctx context.Context, c *cli.Command) error {
					client, store, err := newAPI()
					if err != nil {
						return err
					}
					g := guard.New(store, client)
					if g.Check(ctx) != guard.StateAuthenticated {
						return errors.New("not logged in")
					}
					_, user := store.Read()
					printTable([]string{"USERNAME", "EMAIL", "ROLE"},
						[][]string{{user.Username, user.Email, user.Role}})
					return nil
				},
			},
			{
				Name:  "profile",
				Usage: "Update the admin's email or password",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "current-password"},
					&cli.StringFlag{Name: "new-password"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					client, _, err := newAPI()
					if err != nil {
						return err
					}
					err = client.UpdateProfile(ctx, c.String("email"),
						c.String("current-password"), c.String("new-password"))
					if err != nil {
						return err
					}
					fmt.Println("profile updated")
					return nil
				},
			},
		},
	}
}

// loadDashboard refreshes all entity lists, translating a dead
// session into a login hint.
func loadDashboard(ctx context.Context) (*dashboard.Dashboard, dashboard.Data, error) {
	d, err := newDashboard()
	if err != nil {
		return nil, dashboard.Data{}, err
	}
	if err := d.Refresh(ctx); err != nil {
		if errors.Is(err, dashboard.ErrUnauthorized) {
			return nil, dashboard.Data{}, errors.New("session expired, run `labadmin auth login`")
		}
		return nil, dashboard.Data{}, err
	}
	return d, d.Snapshot(), nil
}

func dashboardCommand() *cli.Command {
	return &cli.Command{
		Name:  "dashboard",
		Usage: "Load all admin entity lists and show counts",
		Flags: []cli.Flag{&cli.BoolFlag{Name: "json", Usage: "output raw JSON"}},
		Action: func(ctx context.Context, c *cli.Command) error {
			_, data, err := loadDashboard(ctx)
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return printJSON(data)
			}
			printTable([]string{"ENTITY", "COUNT"}, [][]string{
				{"contacts", strconv.Itoa(len(data.Contacts))},
				{"internships", strconv.Itoa(len(data.Internships))},
				{"service-requests", strconv.Itoa(len(data.ServiceRequests))},
				{"blogs", strconv.Itoa(len(data.Blogs))},
				{"team", strconv.Itoa(len(data.Team))},
				{"equipment", strconv.Itoa(len(data.Equipment))},
			})
			return nil
		},
	}
}

// statusCommand builds the shared `status` subcommand for one entity.
func statusCommand(entityType string) *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Set a record's status",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Required: true},
			&cli.StringFlag{Name: "status", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			d, err := newDashboard()
			if err != nil {
				return err
			}
			if err := d.UpdateStatus(ctx, entityType, c.String("id"), c.String("status")); err != nil {
				return err
			}
			fmt.Printf("%s %s set to %s\n", entityType, c.String("id"), c.String("status"))
			return nil
		},
	}
}

// deleteCommand builds the shared `delete` subcommand for one entity.
func deleteCommand(entityType string) *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Delete a record",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Required: true},
			&cli.BoolFlag{Name: "yes", Usage: "skip the confirmation prompt"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.String("id")
			if !confirm(fmt.Sprintf("delete %s %s?", entityType, id), c.Bool("yes")) {
				fmt.Println("aborted")
				return nil
			}
			d, err := newDashboard()
			if err != nil {
				return err
			}
			if err := d.Delete(ctx, entityType, id); err != nil {
				return err
			}
			fmt.Printf("%s %s deleted\n", entityType, id)
			return nil
		},
	}
}

func listFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "q", Usage: "search term"},
		&cli.StringFlag{Name: "status", Value: "all", Usage: "exact status filter"},
		&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
	}
}

func contactsCommand() *cli.Command {
	return &cli.Command{
		Name:  "contacts",
		Usage: "Contact message commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List contact messages",
				Flags: listFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					_, data, err := loadDashboard(ctx)
					if err != nil {
						return err
					}
					filtered := dashboard.FilterContacts(data.Contacts, c.String("q"), c.String("status"))
					if c.Bool("json") {
						return printJSON(filtered)
					}
					rows := make([][]string, 0, len(filtered))
					for _, item := range filtered {
						rows = append(rows, []string{item.ID, item.Name, item.Email, item.Status, item.Subject})
					}
					printTable([]string{"ID", "NAME", "EMAIL", "STATUS", "SUBJECT"}, rows)
					return nil
				},
			},
			statusCommand("contacts"),
			deleteCommand("contacts"),
		},
	}
}

func internshipsCommand() *cli.Command {
	return &cli.Command{
		Name:  "internships",
		Usage: "Internship application commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List internship applications",
				Flags: listFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					_, data, err := loadDashboard(ctx)
					if err != nil {
						return err
					}
					filtered := dashboard.FilterInternships(data.Internships, c.String("q"), c.String("status"))
					if c.Bool("json") {
						return printJSON(filtered)
					}
					rows := make([][]string, 0, len(filtered))
					for _, item := range filtered {
						rows = append(rows, []string{item.ID, item.FullName, item.Email, item.Field, item.Status})
					}
					printTable([]string{"ID", "NAME", "EMAIL", "FIELD", "STATUS"}, rows)
					return nil
				},
			},
			statusCommand("internships"),
			deleteCommand("internships"),
		},
	}
}

func serviceRequestsCommand() *cli.Command {
	return &cli.Command{
		Name:  "service-requests",
		Usage: "Service request commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List service requests",
				Flags: listFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					_, data, err := loadDashboard(ctx)
					if err != nil {
						return err
					}
					filtered := dashboard.FilterServiceRequests(data.ServiceRequests, c.String("q"), c.String("status"))
					if c.Bool("json") {
						return printJSON(filtered)
					}
					rows := make([][]string, 0, len(filtered))
					for _, item := range filtered {
						rows = append(rows, []string{item.ID, item.Name, item.Company, item.ServiceType, item.Urgency, item.Status})
					}
					printTable([]string{"ID", "NAME", "COMPANY", "SERVICE", "URGENCY", "STATUS"}, rows)
					return nil
				},
			},
			statusCommand("service-requests"),
			deleteCommand("service-requests"),
		},
	}
}

func blogsCommand() *cli.Command {
	return &cli.Command{
		Name:  "blogs",
		Usage: "Blog post commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List blog posts",
				Flags: listFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					_, data, err := loadDashboard(ctx)
					if err != nil {
						return err
					}
					filtered := dashboard.FilterBlogs(data.Blogs, c.String("q"), c.String("status"))
					if c.Bool("json") {
						return printJSON(filtered)
					}
					rows := make([][]string, 0, len(filtered))
					for _, item := range filtered {
						rows = append(rows, []string{item.ID, item.Title, item.Slug, item.Status, strconv.FormatInt(item.Views, 10)})
					}
					printTable([]string{"ID", "TITLE", "SLUG", "STATUS", "VIEWS"}, rows)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Create a blog post",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "content", Required: true},
					&cli.StringFlag{Name: "excerpt"},
					&cli.StringFlag{Name: "category"},
					&cli.StringFlag{Name: "tags", Usage: "comma-separated"},
					&cli.StringFlag{Name: "status", Value: "draft"},
					&cli.StringFlag{Name: "author"},
					&cli.StringFlag{Name: "slug"},
					&cli.BoolFlag{Name: "featured", Usage: "show the post on the featured feed"},
					&cli.StringFlag{Name: "image", Usage: "path to the featured image"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					fields := map[string]string{
						"title":    c.String("title"),
						"content":  c.String("content"),
						"excerpt":  c.String("excerpt"),
						"category": c.String("category"),
						"tags":     c.String("tags"),
						"status":   c.String("status"),
						"author":   c.String("author"),
						"slug":     c.String("slug"),
					}
					if c.IsSet("featured") {
						fields["featured"] = strconv.FormatBool(c.Bool("featured"))
					}
					body, contentType, err := multipartForm(fields,
						map[string]string{"featuredImage": c.String("image")})
					if err != nil {
						return err
					}
					client, _, err := newAPI()
					if err != nil {
						return err
					}
					var post models.BlogPost
					if err := client.PostMultipart(ctx, "/api/admin/blogs", body, contentType, &post); err != nil {
						return err
					}
					fmt.Printf("created blog post %s (%s)\n", post.ID, post.Slug)
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "Update a blog post",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "content"},
					&cli.StringFlag{Name: "excerpt"},
					&cli.StringFlag{Name: "category"},
					&cli.StringFlag{Name: "tags", Usage: "comma-separated"},
					&cli.StringFlag{Name: "status"},
					&cli.StringFlag{Name: "author"},
					&cli.StringFlag{Name: "slug"},
					&cli.BoolFlag{Name: "featured", Usage: "show the post on the featured feed"},
					&cli.StringFlag{Name: "image", Usage: "path to the featured image"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					fields := map[string]string{
						"title":    c.String("title"),
						"content":  c.String("content"),
						"excerpt":  c.String("excerpt"),
						"category": c.String("category"),
						"tags":     c.String("tags"),
						"status":   c.String("status"),
						"author":   c.String("author"),
						"slug":     c.String("slug"),
					}
					// Only an explicit flag should flip the stored value.
					if c.IsSet("featured") {
						fields["featured"] = strconv.FormatBool(c.Bool("featured"))
					}
					body, contentType, err := multipartForm(fields,
						map[string]string{"featuredImage": c.String("image")})
					if err != nil {
						return err
					}
					client, _, err := newAPI()
					if err != nil {
						return err
					}
					var post models.BlogPost
					if err := client.PutMultipart(ctx, "/api/admin/blogs/"+c.String("id"), body, contentType, &post); err != nil {
						return err
					}
					fmt.Printf("updated blog post %s\n", post.ID)
					return nil
				},
			},
			statusCommand("blogs"),
			deleteCommand("blogs"),
		},
	}
}

func teamCommand() *cli.Command {
	return &cli.Command{
		Name:  "team",
		Usage: "Team member commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List team members",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "q", Usage: "search term"},
					&cli.StringFlag{Name: "department", Value: "all", Usage: "exact department filter"},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					_, data, err := loadDashboard(ctx)
					if err != nil {
						return err
					}
					filtered := dashboard.FilterTeam(data.Team, c.String("q"), c.String("department"))
					if c.Bool("json") {
						return printJSON(filtered)
					}
					rows := make([][]string, 0, len(filtered))
					for _, item := range filtered {
						rows = append(rows, []string{item.ID, item.Name, item.Position, item.Department, strconv.FormatBool(item.IsActive)})
					}
					printTable([]string{"ID", "NAME", "POSITION", "DEPARTMENT", "ACTIVE"}, rows)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Create a team member",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "position"},
					&cli.StringFlag{Name: "department"},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "bio"},
					&cli.StringFlag{Name: "order", Usage: "display order"},
					&cli.StringFlag{Name: "photo", Usage: "path to the profile image"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					body, contentType, err := multipartForm(map[string]string{
						"name":         c.String("name"),
						"position":     c.String("position"),
						"department":   c.String("department"),
						"email":        c.String("email"),
						"bio":          c.String("bio"),
						"displayOrder": c.String("order"),
					}, map[string]string{"profileImage": c.String("photo")})
					if err != nil {
						return err
					}
					client, _, err := newAPI()
					if err != nil {
						return err
					}
					var member models.TeamMember
					if err := client.PostMultipart(ctx, "/api/admin/team", body, contentType, &member); err != nil {
						return err
					}
					fmt.Printf("created team member %s\n", member.ID)
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "Update a team member",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "position"},
					&cli.StringFlag{Name: "department"},
					&cli.StringFlag{Name: "email"},
					&cli.StringFlag{Name: "bio"},
					&cli.StringFlag{Name: "order", Usage: "display order"},
					&cli.StringFlag{Name: "photo", Usage: "path to the profile image"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					body, contentType, err := multipartForm(map[string]string{
						"name":         c.String("name"),
						"position":     c.String("position"),
						"department":   c.String("department"),
						"email":        c.String("email"),
						"bio":          c.String("bio"),
						"displayOrder": c.String("order"),
					}, map[string]string{"profileImage": c.String("photo")})
					if err != nil {
						return err
					}
					client, _, err := newAPI()
					if err != nil {
						return err
					}
					var member models.TeamMember
					if err := client.PutMultipart(ctx, "/api/admin/team/"+c.String("id"), body, contentType, &member); err != nil {
						return err
					}
					fmt.Printf("updated team member %s\n", member.ID)
					return nil
				},
			},
			statusCommand("team"),
			deleteCommand("team"),
		},
	}
}

func equipmentCommand() *cli.Command {
	return &cli.Command{
		Name:  "equipment",
		Usage: "Equipment commands",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List equipment",
				Flags: listFlags(),
				Action: func(ctx context.Context, c *cli.Command) error {
					_, data, err := loadDashboard(ctx)
					if err != nil {
						return err
					}
					filtered := dashboard.FilterEquipment(data.Equipment, c.String("q"), c.String("status"))
					if c.Bool("json") {
						return printJSON(filtered)
					}
					rows := make([][]string, 0, len(filtered))
					for _, item := range filtered {
						rows = append(rows, []string{item.ID, item.Name, item.Manufacturer, item.Category, item.OperatingStatus})
					}
					printTable([]string{"ID", "NAME", "MANUFACTURER", "CATEGORY", "STATUS"}, rows)
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Create an equipment record",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "model"},
					&cli.StringFlag{Name: "manufacturer"},
					&cli.StringFlag{Name: "category"},
					&cli.StringFlag{Name: "status", Value: "Operational"},
					&cli.StringFlag{Name: "image", Usage: "path to an equipment image"},
					&cli.StringFlag{Name: "manual", Usage: "path to a manual PDF"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					body, contentType, err := multipartForm(map[string]string{
						"name":            c.String("name"),
						"model":           c.String("model"),
						"manufacturer":    c.String("manufacturer"),
						"category":        c.String("category"),
						"operatingStatus": c.String("status"),
					}, map[string]string{
						"equipmentImages": c.String("image"),
						"manuals":         c.String("manual"),
					})
					if err != nil {
						return err
					}
					client, _, err := newAPI()
					if err != nil {
						return err
					}
					var item models.Equipment
					if err := client.PostMultipart(ctx, "/api/admin/equipment", body, contentType, &item); err != nil {
						return err
					}
					fmt.Printf("created equipment %s\n", item.ID)
					return nil
				},
			},
			{
				Name:  "update",
				Usage: "Update an equipment record",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "id", Required: true},
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "model"},
					&cli.StringFlag{Name: "manufacturer"},
					&cli.StringFlag{Name: "category"},
					&cli.StringFlag{Name: "status"},
					&cli.StringFlag{Name: "image", Usage: "path to an equipment image"},
					&cli.StringFlag{Name: "manual", Usage: "path to a manual PDF"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					body, contentType, err := multipartForm(map[string]string{
						"name":            c.String("name"),
						"model":           c.String("model"),
						"manufacturer":    c.String("manufacturer"),
						"category":        c.String("category"),
						"operatingStatus": c.String("status"),
					}, map[string]string{
						"equipmentImages": c.String("image"),
						"manuals":         c.String("manual"),
					})
					if err != nil {
						return err
					}
					client, _, err := newAPI()
					if err != nil {
						return err
					}
					var item models.Equipment
					if err := client.PutMultipart(ctx, "/api/admin/equipment/"+c.String("id"), body, contentType, &item); err != nil {
						return err
					}
					fmt.Printf("updated equipment %s\n", item.ID)
					return nil
				},
			},
			statusCommand("equipment"),
			deleteCommand("equipment"),
		},
	}
}

func pagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "pages",
		Usage: "Static page commands",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Show a page by slug",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "slug", Required: true},
					&cli.BoolFlag{Name: "json", Usage: "output raw JSON"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					client, _, err := newAPI()
					if err != nil {
						return err
					}
					var page models.Page
					if err := client.Get(ctx, "/api/pages/"+c.String("slug"), &page); err != nil {
						return err
					}
					if c.Bool("json") {
						return printJSON(page)
					}
					fmt.Printf("%s\n\n%s\n", page.Title, page.Content)
					return nil
				},
			},
			{
				Name:  "set",
				Usage: "Create or replace a page",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "slug", Required: true},
					&cli.StringFlag{Name: "title", Required: true},
					&cli.StringFlag{Name: "content"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					client, _, err := newAPI()
					if err != nil {
						return err
					}
					body := map[string]string{
						"title":   c.String("title"),
						"content": c.String("content"),
					}
					var page models.Page
					if err := client.Put(ctx, "/api/admin/pages/"+c.String("slug"), body, &page); err != nil {
						return err
					}
					fmt.Printf("saved page %s\n", page.Slug)
					return nil
				},
			},
		},
	}
}

func submitCommand() *cli.Command {
	return &cli.Command{
		Name:  "submit",
		Usage: "Public submission commands (no login required)",
		Commands: []*cli.Command{
			{
				Name:  "contact",
				Usage: "Send a contact message",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "subject"},
					&cli.StringFlag{Name: "message", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					client, _, err := newAPI()
					if err != nil {
						return err
					}
					body := map[string]string{
						"name":    c.String("name"),
						"email":   c.String("email"),
						"subject": c.String("subject"),
						"message": c.String("message"),
					}
					var contact models.Contact
					if err := client.Post(ctx, "/api/contact", body, &contact); err != nil {
						return err
					}
					fmt.Printf("message sent (%s)\n", contact.ID)
					return nil
				},
			},
			{
				Name:  "internship",
				Usage: "Apply for an internship",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "phone", Required: true},
					&cli.StringFlag{Name: "education"},
					&cli.StringFlag{Name: "field"},
					&cli.StringFlag{Name: "duration"},
					&cli.StringFlag{Name: "resume", Usage: "path to resume (pdf/doc/docx)"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					body, contentType, err := multipartForm(map[string]string{
						"fullName":  c.String("name"),
						"email":     c.String("email"),
						"phone":     c.String("phone"),
						"education": c.String("education"),
						"field":     c.String("field"),
						"duration":  c.String("duration"),
					}, map[string]string{"resume": c.String("resume")})
					if err != nil {
						return err
					}
					client, _, err := newAPI()
					if err != nil {
						return err
					}
					var app models.InternshipApplication
					if err := client.PostMultipart(ctx, "/api/internship", body, contentType, &app); err != nil {
						return err
					}
					fmt.Printf("application submitted (%s)\n", app.ID)
					return nil
				},
			},
			{
				Name:  "service-request",
				Usage: "Request a testing service",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.StringFlag{Name: "email", Required: true},
					&cli.StringFlag{Name: "phone"},
					&cli.StringFlag{Name: "company"},
					&cli.StringFlag{Name: "service", Required: true},
					&cli.StringFlag{Name: "urgency"},
					&cli.StringFlag{Name: "samples"},
					&cli.StringFlag{Name: "requirements"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					client, _, err := newAPI()
					if err != nil {
						return err
					}
					body := map[string]string{
						"name":          c.String("name"),
						"email":         c.String("email"),
						"phone":         c.String("phone"),
						"company":       c.String("company"),
						"serviceType":   c.String("service"),
						"urgency":       c.String("urgency"),
						"sampleDetails": c.String("samples"),
						"requirements":  c.String("requirements"),
					}
					var sr models.ServiceRequest
					if err := client.Post(ctx, "/api/service-request", body, &sr); err != nil {
						return err
					}
					fmt.Printf("request submitted (%s), urgency %s\n", sr.ID, sr.Urgency)
					return nil
				},
			},
		},
	}
}
