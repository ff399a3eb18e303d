package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed *.html
var archivos embed.FS

// Renderer plugs the embedded page templates into echo. Every page file
// shares the cabecera/pie partials defined in layout.html.
type Renderer struct {
	plantillas *template.Template
}

func New() (*Renderer, error) {
	plantillas, err := template.New("").Funcs(funciones).ParseFS(archivos, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{plantillas: plantillas}, nil
}

func (r *Renderer) Render(w io.Writer, nombre string, datos interface{}, c echo.Context) error {
	return r.plantillas.ExecuteTemplate(w, nombre, datos)
}

var funciones = template.FuncMap{
	// val renders an optional text field, blank when absent.
	"val": func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	},
	"valInt": func(p *int) string {
		if p == nil {
			return ""
		}
		return fmt.Sprintf("%d", *p)
	},
	// pct scales a count against the axis maximum for the trend bars.
	"pct": func(n, max int) int {
		if max <= 0 {
			return 0
		}
		return n * 100 / max
	},
}
