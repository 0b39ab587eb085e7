// Package view renders the application's HTML pages. Templates are
// embedded in the binary so the server and the tests need no working
// directory setup.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded templates. Pages
// are addressed by file name, e.g. "reserve.html".
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates and returns a Renderer.
func New() (*Renderer, error) {
	t, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: t}, nil
}

// Render writes the named template to w.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
