package browse

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"aupac-site/internal/domain/catalog"
	"aupac-site/internal/domain/news"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// HomeView alimenta la home: franja de noticias + links a los catálogos.
type HomeView struct {
	Noticias   []news.Item
	LoadFailed bool
}

// RegisterRoutes monta la home y una página renderizada por catálogo
// configurado (GET /aupac, GET /artesanato).
func RegisterRoutes(r chi.Router, svc *catalog.Service, feed *news.Service, configs ...Config) {
	r.Get("/", homeHandler(feed))
	for _, cfg := range configs {
		r.Get("/"+string(cfg.Kind), catalogPageHandler(svc, cfg))
	}
}

func homeHandler(feed *news.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := HomeView{}
		f, err := feed.Load()
		if err != nil {
			view.LoadFailed = true
		} else {
			view.Noticias = f.Noticias
		}
		renderTemplate(w, http.StatusOK, "home.tmpl", view)
	}
}

func catalogPageHandler(svc *catalog.Service, cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context(), cfg.Kind)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, catalog.ErrStorageUnavailable) {
				status = http.StatusServiceUnavailable
			}
			renderTemplate(w, status, "catalog.tmpl", ErrorView(cfg))
			return
		}

		st := NewState(items)
		q := r.URL.Query()
		for _, dim := range cfg.Dimensions {
			if v := q.Get(dim.Name); v != "" {
				st = st.WithFilter(dim.Name, v)
			}
		}
		if cfg.SpecialToggle && q.Get("especial") == "1" {
			st = st.WithSpecial(true)
		}
		// la página se aplica al final: cambiar un filtro resetea a 1
		if p, err := strconv.Atoi(q.Get("page")); err == nil {
			st = st.WithPage(p)
		}

		renderTemplate(w, http.StatusOK, "catalog.tmpl", Render(cfg, st))
	}
}

func renderTemplate(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = pages.ExecuteTemplate(w, name, data)
}
