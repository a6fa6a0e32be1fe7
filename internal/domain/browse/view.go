package browse

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"aupac-site/internal/domain/catalog"
)

// DefaultImage es el placeholder de las cards sin foto.
const DefaultImage = "/img/imagem_padrao.jpg"

type Badge struct {
	Label string
	Value string
}

// CardView es el view-model de una card, listo para el template.
type CardView struct {
	Title       string
	Image       string
	Badges      []Badge
	Description string
	PriceLabel  string
	ContactURL  string
}

type PageLink struct {
	Num    int
	URL    string
	Active bool
}

// PageView es el resultado puro del render: el handler solo lo vuelca al
// template.
type PageView struct {
	Title      string
	Path       string
	Cards      []CardView
	Current    int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevURL    string
	NextURL    string
	Pages      []PageLink
	// Empty y LoadFailed son estados distintos a propósito: catálogo
	// realmente vacío vs backend caído.
	Empty      bool
	LoadFailed bool

	Dimensions    []Dimension
	Filters       map[string]string
	Special       bool
	SpecialToggle bool
	ContactLabel  string
}

// Render filtra, pagina y arma el view-model. totalPages nunca baja de 1
// y la página actual queda clampeada en [1, totalPages].
func Render(cfg Config, st State) PageView {
	filtered := ApplyFilters(st.Records, st.Filters, st.Special)

	totalPages := (len(filtered) + cfg.PageSize - 1) / cfg.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := st.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * cfg.PageSize
	end := start + cfg.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	cards := make([]CardView, 0, end-start)
	for _, rec := range filtered[start:end] {
		cards = append(cards, buildCard(cfg, rec))
	}

	view := PageView{
		Title:         cfg.Title,
		Path:          "/" + string(cfg.Kind),
		Cards:         cards,
		Current:       page,
		TotalPages:    totalPages,
		HasPrev:       page > 1,
		HasNext:       page < totalPages,
		Empty:         len(filtered) == 0,
		Dimensions:    cfg.Dimensions,
		Filters:       st.Filters,
		Special:       st.Special,
		SpecialToggle: cfg.SpecialToggle,
		ContactLabel:  cfg.ContactLabel,
	}

	if view.HasPrev {
		view.PrevURL = pageURL(cfg, st, page-1)
	}
	if view.HasNext {
		view.NextURL = pageURL(cfg, st, page+1)
	}
	for i := 1; i <= totalPages; i++ {
		view.Pages = append(view.Pages, PageLink{
			Num:    i,
			URL:    pageURL(cfg, st, i),
			Active: i == page,
		})
	}

	return view
}

// ErrorView es la página de error explícita: antes un LIST caído dejaba
// el catálogo vacío en silencio.
func ErrorView(cfg Config) PageView {
	return PageView{
		Title:         cfg.Title,
		Path:          "/" + string(cfg.Kind),
		Current:       1,
		TotalPages:    1,
		LoadFailed:    true,
		Dimensions:    cfg.Dimensions,
		Filters:       map[string]string{},
		SpecialToggle: cfg.SpecialToggle,
		ContactLabel:  cfg.ContactLabel,
	}
}

func buildCard(cfg Config, rec catalog.Record) CardView {
	card := CardView{
		Title:       rec.Nome,
		Image:       DefaultImage,
		Description: rec.Descricao,
		ContactURL:  ContactURL(cfg, rec),
	}
	if card.Title == "" {
		card.Title = "Sem nome"
	}
	if rec.Imagem != nil && *rec.Imagem != "" {
		card.Image = *rec.Imagem
	}

	if cfg.Kind == catalog.KindAupac {
		card.Badges = []Badge{
			{Label: "Porte", Value: deref(rec.Porte)},
			{Label: "Idade", Value: deref(rec.Idade)},
			{Label: "Sexo", Value: deref(rec.Sexo)},
		}
	}

	if cfg.ShowPrice {
		card.PriceLabel = PriceLabel(rec.Preco)
	}

	return card
}

// PriceLabel formatea el precio con dos decimales y coma, estilo
// "R$ 12,50". Sin precio => etiqueta vacía (la card no muestra precio).
func PriceLabel(preco *float64) string {
	if preco == nil {
		return ""
	}
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", *preco), ".", ",", 1)
}

// ContactURL arma el deep link de WhatsApp con el mensaje templado y el
// contacto del registro (o el de la organización si no tiene).
func ContactURL(cfg Config, rec catalog.Record) string {
	handle := cfg.DefaultContact
	if rec.Whatsapp != nil && strings.TrimSpace(*rec.Whatsapp) != "" {
		handle = strings.TrimSpace(*rec.Whatsapp)
	}

	nome := rec.Nome
	if nome == "" {
		nome = "Sem nome"
	}
	msg := fmt.Sprintf(cfg.MessageTemplate, nome)

	return "https://wa.me/" + handle + "?text=" + url.QueryEscape(msg)
}

// pageURL arma el link de paginación conservando los filtros activos.
func pageURL(cfg Config, st State, page int) string {
	q := url.Values{}
	for dim, v := range st.Filters {
		if v != "" && v != FilterAll {
			q.Set(dim, v)
		}
	}
	if st.Special {
		q.Set("especial", "1")
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}

	path := "/" + string(cfg.Kind)
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
