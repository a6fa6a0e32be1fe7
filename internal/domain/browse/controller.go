package browse

import (
	"strings"

	"aupac-site/internal/domain/catalog"
)

// FilterAll es el sentinel "sin restricción" de cualquier dimensión.
const FilterAll = "all"

// State es el estado completo de una página de catálogo. Es un value
// type: los With* devuelven copias, nada muta por debajo.
type State struct {
	Records []catalog.Record
	Filters map[string]string
	Special bool
	Page    int
}

func NewState(records []catalog.Record) State {
	return State{
		Records: records,
		Filters: map[string]string{},
		Page:    1,
	}
}

func (s State) cloneFilters() map[string]string {
	out := make(map[string]string, len(s.Filters))
	for k, v := range s.Filters {
		out[k] = v
	}
	return out
}

// WithFilter fija una dimensión y resetea a página 1, para no quedar
// parado en una página fuera de rango al achicar el resultado.
func (s State) WithFilter(dim, value string) State {
	f := s.cloneFilters()
	f[dim] = strings.ToLower(strings.TrimSpace(value))
	s.Filters = f
	s.Page = 1
	return s
}

// WithSpecial prende/apaga el toggle de especiales; también vuelve a
// página 1.
func (s State) WithSpecial(on bool) State {
	s.Special = on
	s.Page = 1
	return s
}

func (s State) WithPage(page int) State {
	if page < 1 {
		page = 1
	}
	s.Page = page
	return s
}

// dimensionValue saca del registro el valor de la dimensión, normalizado
// a minúsculas para la igualdad case-insensitive.
func dimensionValue(rec catalog.Record, dim string) string {
	var v *string
	switch dim {
	case "idade":
		v = rec.Idade
	case "sexo":
		v = rec.Sexo
	case "porte":
		v = rec.Porte
	case "categoria":
		v = rec.Categoria
	}
	if v == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*v))
}

// ApplyFilters devuelve el subconjunto que satisface TODOS los predicados
// activos (conjunción). "all" o vacío = dimensión sin restricción. El
// toggle de especiales es un predicado más, AND-eado.
func ApplyFilters(records []catalog.Record, filters map[string]string, special bool) []catalog.Record {
	out := make([]catalog.Record, 0, len(records))

	for _, rec := range records {
		keep := true
		for dim, want := range filters {
			want = strings.ToLower(strings.TrimSpace(want))
			if want == "" || want == FilterAll {
				continue
			}
			if dimensionValue(rec, dim) != want {
				keep = false
				break
			}
		}
		if keep && special {
			keep = rec.Especial != nil && *rec.Especial
		}
		if keep {
			out = append(out, rec)
		}
	}

	return out
}
