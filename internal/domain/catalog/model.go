package catalog

import "strings"

// Kind identifica los dos catálogos públicos del sitio.
// @Enum aupac, artesanato
type Kind string

const (
	// KindAupac es el catálogo de perros en adopción.
	KindAupac Kind = "aupac"
	// KindArtesanato es el catálogo de artesanías.
	KindArtesanato Kind = "artesanato"
)

// KindFromPath mapea el segmento {tipo} de la URL a un Kind.
// Cualquier valor distinto de "artesanato" cae en aupac (comportamiento
// histórico del sitio).
func KindFromPath(tipo string) Kind {
	if strings.TrimSpace(tipo) == string(KindArtesanato) {
		return KindArtesanato
	}
	return KindAupac
}

// Collection devuelve el nombre de la colección persistida para el kind.
func (k Kind) Collection() string {
	if k == KindArtesanato {
		return "produtos"
	}
	return "cachorros"
}

// Bucket devuelve el namespace de subida de imágenes para el kind.
func (k Kind) Bucket() string {
	if k == KindArtesanato {
		return "artesanatos"
	}
	return "aupac"
}

// Record es la entidad plana que comparten ambos catálogos. Los tags JSON
// son el contrato con el front histórico, por eso van en portugués.
// Los campos opcionales son punteros: nil serializa como null, igual que
// el backend original.
type Record struct {
	ID        int64    `json:"id"`
	Nome      string   `json:"nome"`
	Preco     *float64 `json:"preco"`
	Descricao string   `json:"descricao"`
	Categoria *string  `json:"categoria"`
	Porte     *string  `json:"porte"`
	Idade     *string  `json:"idade"`
	Sexo      *string  `json:"sexo"`
	Especial  *bool    `json:"especial"`
	Whatsapp  *string  `json:"whatsapp"`
	Obs       *string  `json:"obs"`
	Imagem    *string  `json:"imagem"`
}

// Fields es el carrier de escritura parcial: nil = campo ausente en el
// request, no tocar. Mismo patrón de punteros que un PATCH real.
type Fields struct {
	Nome      *string
	Preco     *float64
	Descricao *string
	Categoria *string
	Porte     *string
	Idade     *string
	Sexo      *string
	Especial  *bool
	Whatsapp  *string
	Obs       *string
}

// apply sobreescribe en rec solo los campos presentes.
// La categoría se normaliza a minúsculas para que el filtrado por
// igualdad del catálogo de artesanías sea case-insensitive.
func (f Fields) apply(rec *Record) {
	if f.Nome != nil {
		rec.Nome = *f.Nome
	}
	if f.Preco != nil {
		rec.Preco = f.Preco
	}
	if f.Descricao != nil {
		rec.Descricao = *f.Descricao
	}
	if f.Categoria != nil {
		cat := strings.ToLower(strings.TrimSpace(*f.Categoria))
		rec.Categoria = &cat
	}
	if f.Porte != nil {
		rec.Porte = f.Porte
	}
	if f.Idade != nil {
		rec.Idade = f.Idade
	}
	if f.Sexo != nil {
		rec.Sexo = f.Sexo
	}
	if f.Especial != nil {
		rec.Especial = f.Especial
	}
	if f.Whatsapp != nil {
		rec.Whatsapp = f.Whatsapp
	}
	if f.Obs != nil {
		rec.Obs = f.Obs
	}
}
