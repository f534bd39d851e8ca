package api

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/thesarvanews/news-frontend/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = []string{
	"home.html",
	"login.html",
	"register.html",
	"bookmarks.html",
	"profile.html",
	"contact.html",
	"services.html",
	"error.html",
}

// Renderer implements echo.Renderer over the embedded template set. Each
// page is parsed together with the shared layout so the header, navigation
// and error banner stay consistent everywhere.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"formatDate":  formatDate,
		"proxied":     proxiedImageURL,
		"articleJSON": articleJSON,
	}

	pages := make(map[string]*template.Template, len(pageTemplates))
	for _, name := range pageTemplates {
		pages[name] = template.Must(
			template.New("layout.html").
				Funcs(funcs).
				ParseFS(templateFS, "templates/layout.html", "templates/"+name),
		)
	}
	return &Renderer{pages: pages}
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}

// formatDate renders the backend's RFC3339 timestamps in a readable form,
// passing through anything it cannot parse.
func formatDate(value string) string {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return t.Format("Jan 2, 2006 15:04")
}

// proxiedImageURL routes a remote article image through the local proxy.
func proxiedImageURL(raw string) string {
	if raw == "" {
		return ""
	}
	return "/image?url=" + url.QueryEscape(raw)
}

// articleJSON serialises an article into the payload the bookmark toggle
// endpoint expects (source flattened to the publisher name).
func articleJSON(a domain.Article) (string, error) {
	payload := map[string]string{
		"title":       a.Title,
		"url":         a.URL,
		"description": a.Description,
		"image":       a.Image,
		"publishedAt": a.PublishedAt,
		"source":      a.Source.Name,
	}
	b, err := json.Marshal(payload)
	return string(b), err
}
