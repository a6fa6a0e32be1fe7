// Package news sirve el feed de noticias de la home. El feed vive en un
// archivo JSON editado a mano ({"noticias":[...]}); se relee en cada
// request para que un cambio en disco salga sin redeploy.
package news

import (
	"encoding/json"
	"fmt"
	"os"
)

type Item struct {
	Imagem    string `json:"imagem"`
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
}

type Feed struct {
	Noticias []Item `json:"noticias"`
}

type Service struct {
	path string
}

func NewService(path string) *Service {
	return &Service{path: path}
}

// Load lee el feed. Archivo ausente no es error: feed vacío.
func (s *Service) Load() (Feed, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Feed{Noticias: []Item{}}, nil
		}
		return Feed{}, fmt.Errorf("read news feed: %w", err)
	}

	var f Feed
	if err := json.Unmarshal(b, &f); err != nil {
		return Feed{}, fmt.Errorf("decode news feed: %w", err)
	}
	if f.Noticias == nil {
		f.Noticias = []Item{}
	}
	return f, nil
}
