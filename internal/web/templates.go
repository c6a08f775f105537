package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/yeskala/dayplan/internal/logger"
)

//go:embed templates
var templateFS embed.FS

// pages maps a page name to its parsed template set (base layout + page).
var pages = map[string]*template.Template{}

func init() {
	for _, name := range []string{
		"planner.html",
		"reflection.html",
		"preferences.html",
		"tasks.html",
		"history.html",
	} {
		pages[name] = template.Must(template.New("base.html").ParseFS(
			templateFS,
			"templates/base.html",
			"templates/"+name,
		))
	}
}

// render executes the named page template. Template failures turn into a
// 500; the data has already been computed so there is nothing to recover.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages[name].ExecuteTemplate(w, "base.html", data); err != nil {
		logger.Error("template render failed", "page", name, "error", err)
		http.Error(w, "internal render error", http.StatusInternalServerError)
	}
}
