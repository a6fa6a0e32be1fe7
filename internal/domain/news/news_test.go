package news_test

import (
	"os"
	"path/filepath"
	"testing"

	"aupac-site/internal/domain/news"
)

func TestLoad_MissingFileIsEmptyFeed(t *testing.T) {
	svc := news.NewService(filepath.Join(t.TempDir(), "news.json"))

	feed, err := svc.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if feed.Noticias == nil || len(feed.Noticias) != 0 {
		t.Fatalf("expected empty feed, got %+v", feed)
	}
}

func TestLoad_ParsesFeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.json")
	seed := `{"noticias":[{"imagem":"/img/a.jpg","titulo":"Mutirão","descricao":"Castração gratuita"}]}`
	if err := os.WriteFile(path, []byte(seed), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	feed, err := news.NewService(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(feed.Noticias) != 1 || feed.Noticias[0].Titulo != "Mutirão" {
		t.Fatalf("unexpected feed %+v", feed)
	}
}

func TestLoad_BadJSONIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "news.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := news.NewService(path).Load(); err == nil {
		t.Fatal("expected decode error")
	}
}
