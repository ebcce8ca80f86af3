// Package templates renders the embedded HTML pages.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/barbershop-express/booking-web/internal/booking"
	"github.com/barbershop-express/booking-web/pkg/logging"
)

//go:embed *.html
var files embed.FS

// Renderer executes the embedded page templates with strict missing-key
// semantics.
type Renderer struct {
	t      *template.Template
	logger *logging.Logger
}

var funcMap = template.FuncMap{
	"brl": func(v float64) string {
		return fmt.Sprintf("R$ %.2f", v)
	},
	"dateBR": booking.FormatDateBR,
	"timeHM": func(v time.Time) string {
		return v.Format("15:04")
	},
	"dateTimeBR": func(v time.Time) string {
		return v.Format("02/01/2006 15:04")
	},
}

// New parses the embedded template set.
func New(logger *logging.Logger) (*Renderer, error) {
	if logger == nil {
		logger = logging.Default()
	}
	t, err := template.New("").Option("missingkey=error").Funcs(funcMap).ParseFS(files, "*.html")
	if err != nil {
		return nil, fmt.Errorf("templates: parse: %w", err)
	}
	return &Renderer{t: t, logger: logger}, nil
}

// Render writes the named page. A render failure after headers are sent can
// only be logged.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := r.t.ExecuteTemplate(w, name, data); err != nil {
		r.logger.Error("template render failed", "template", name, "error", err)
	}
}
