// Package browse es el controlador unificado de páginas de catálogo:
// estado explícito + funciones puras de filtrado/paginación/render.
// Reemplaza los scripts por página del sitio original (que duplicaban la
// misma lógica con variables globales) por una sola implementación
// parametrizada por kind.
package browse

import "aupac-site/internal/domain/catalog"

// Dimension es un control de filtro por igualdad, con el sentinel "all"
// como "sin restricción".
type Dimension struct {
	Name    string // nombre del query param y del campo (idade, sexo, porte, categoria)
	Label   string
	Options []string
}

// Config describe un catálogo navegable. Las asimetrías entre catálogos
// (toggle de especiales solo en adopción, precio solo en artesanías) se
// quedan acá, como configuración por kind, a propósito.
type Config struct {
	Kind            catalog.Kind
	Title           string
	PageSize        int
	Dimensions      []Dimension
	SpecialToggle   bool
	ShowPrice       bool
	DefaultContact  string
	MessageTemplate string // %s = nome del registro
	ContactLabel    string
}

// AupacConfig: catálogo de adopción, 10 por página, filtros
// idade/sexo/porte + toggle de necesidades especiales.
func AupacConfig(defaultContact string) Config {
	return Config{
		Kind:     catalog.KindAupac,
		Title:    "Adote um amigo",
		PageSize: 10,
		Dimensions: []Dimension{
			{Name: "idade", Label: "Idade", Options: []string{"filhote", "adulto", "idoso"}},
			{Name: "sexo", Label: "Sexo", Options: []string{"macho", "femea"}},
			{Name: "porte", Label: "Porte", Options: []string{"pequeno", "medio", "grande"}},
		},
		SpecialToggle:   true,
		DefaultContact:  defaultContact,
		MessageTemplate: "Olá! Tenho interesse em adotar o(a) %s.",
		ContactLabel:    "Quero Adotar",
	}
}

// ArtesanatoConfig: catálogo de artesanías, 12 por página, un solo filtro
// de categoría, precio visible.
func ArtesanatoConfig(defaultContact string) Config {
	return Config{
		Kind:     catalog.KindArtesanato,
		Title:    "Artesanato",
		PageSize: 12,
		Dimensions: []Dimension{
			{Name: "categoria", Label: "Categoria"},
		},
		ShowPrice:       true,
		DefaultContact:  defaultContact,
		MessageTemplate: "Olá! Tenho interesse no produto: %s",
		ContactLabel:    "Fazer Pedido",
	}
}
