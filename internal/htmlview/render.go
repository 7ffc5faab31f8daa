// Package htmlview renders the dashboard state as an HTML fragment.
package htmlview

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/tOgg1/planproof/internal/dashboard"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer executes the dashboard templates. All free text coming from the
// planning service goes through html/template escaping.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	funcMap := template.FuncMap{
		"classes": classes,
		"minutes": minutes,
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the full dashboard fragment for ui.
func (r *Renderer) Render(w io.Writer, ui *dashboard.UI) error {
	if err := r.tmpl.ExecuteTemplate(w, "dashboard.html", ui); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}

// RenderString is Render into a string.
func (r *Renderer) RenderString(ui *dashboard.UI) (string, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, ui); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func classes(list []string) string {
	return strings.Join(list, " ")
}

func minutes(n int) string {
	return fmt.Sprintf("(%d min)", n)
}
