package catalog_test

import (
	"strings"
	"testing"
	"time"

	"aupac-site/internal/domain/catalog"
)

func TestUploadKey_SanitizesWhitespace(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	key := catalog.UploadKey(now, "foto do  rex .jpg")
	if key != "1700000000000-foto_do_rex_.jpg" {
		t.Fatalf("unexpected key %q", key)
	}
}

func TestUploadKey_EmptyNameFallsBackToUUID(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	key := catalog.UploadKey(now, "   ")
	if !strings.HasPrefix(key, "1700000000000-") {
		t.Fatalf("expected timestamp prefix, got %q", key)
	}
	if strings.TrimPrefix(key, "1700000000000-") == "" {
		t.Fatalf("expected non-empty fallback name, got %q", key)
	}
}

func TestAllowedImage(t *testing.T) {
	for _, name := range []string{"a.jpg", "b.JPEG", "c.png", "d.webp"} {
		if !catalog.AllowedImage(name) {
			t.Fatalf("%s should be allowed", name)
		}
	}
	for _, name := range []string{"a.gif", "b.pdf", "noext", "a.jpg.exe"} {
		if catalog.AllowedImage(name) {
			t.Fatalf("%s should be rejected", name)
		}
	}
}

func TestKindFromPath(t *testing.T) {
	if catalog.KindFromPath("artesanato") != catalog.KindArtesanato {
		t.Fatal("artesanato should map to KindArtesanato")
	}
	// todo lo demás cae en aupac, incluido basura en la URL
	for _, tipo := range []string{"aupac", "", "cachorros", "x"} {
		if catalog.KindFromPath(tipo) != catalog.KindAupac {
			t.Fatalf("%q should map to KindAupac", tipo)
		}
	}
}

func TestKindNamespaces(t *testing.T) {
	if catalog.KindAupac.Collection() != "cachorros" || catalog.KindArtesanato.Collection() != "produtos" {
		t.Fatal("unexpected collection names")
	}
	if catalog.KindAupac.Bucket() != "aupac" || catalog.KindArtesanato.Bucket() != "artesanatos" {
		t.Fatal("unexpected bucket names")
	}
}
