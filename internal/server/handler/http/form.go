package http

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"strings"
)

// formList reads a multipart form value that may be a JSON array or a
// comma-separated string. An absent value yields an empty slice.
func formList(r *http.Request, name string) []string {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return []string{}
	}
	if strings.HasPrefix(v, "[") {
		var items []string
		if err := json.Unmarshal([]byte(v), &items); err == nil {
			return items
		}
	}
	parts := strings.Split(v, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// formInt reads an integer form value, falling back to def when the
// value is absent or unparseable.
func formInt(r *http.Request, name string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(r.FormValue(name)))
	if err != nil {
		return def
	}
	return n
}

// formBool reads a boolean form value, falling back to def when the
// value is absent or unparseable.
func formBool(r *http.Request, name string, def bool) bool {
	v := strings.TrimSpace(r.FormValue(name))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a URL-safe slug: lowercase, hyphens for
// runs of non-alphanumeric characters, trimmed at the edges.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
