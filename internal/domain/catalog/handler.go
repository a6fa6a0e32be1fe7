package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const maxUploadMemory = 32 << 20 // 32 MiB en memoria, el resto a disco temporal

// RegisterRoutes monta la superficie REST de ambos catálogos.
// {tipo} ∈ {aupac, artesanato}; cualquier otro valor cae en aupac.
func RegisterRoutes(r chi.Router, svc *Service, up Uploader) {
	r.Route("/api", func(ar chi.Router) {
		ar.Get("/{tipo}", listHandler(svc))
		ar.Post("/add/{tipo}", createHandler(svc, up))
		ar.Put("/edit/{tipo}/{id}", editHandler(svc, up))
		ar.Delete("/delete/{tipo}/{id}", deleteHandler(svc))
	})
}

func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := KindFromPath(chi.URLParam(r, "tipo"))

		items, err := svc.List(r.Context(), kind)
		if err != nil {
			writeError(w, err)
			return
		}
		if items == nil {
			items = make([]Record, 0)
		}

		writeJSON(w, http.StatusOK, items)
	}
}

func createHandler(svc *Service, up Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := KindFromPath(chi.URLParam(r, "tipo"))

		if err := parseForm(r); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		imageRef, err := storeUpload(r, kind, up)
		if err != nil {
			writeError(w, err)
			return
		}

		rec, err := svc.Create(r.Context(), kind, formFields(r.Form), imageRef)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, rec)
	}
}

func editHandler(svc *Service, up Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := KindFromPath(chi.URLParam(r, "tipo"))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Item não encontrado"})
			return
		}

		if err := parseForm(r); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		// Sin parte "imagem" en el request => conservar la imagen actual.
		imageRef, err := storeUpload(r, kind, up)
		if err != nil {
			writeError(w, err)
			return
		}

		rec, err := svc.Update(r.Context(), kind, id, formFields(r.Form), imageRef)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, rec)
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := KindFromPath(chi.URLParam(r, "tipo"))

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			// id ilegible: el delete sigue siendo un ack idempotente
			writeJSON(w, http.StatusOK, map[string]string{"msg": "Removido"})
			return
		}

		if err := svc.Delete(r.Context(), kind, id); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"msg": "Removido"})
	}
}

// parseForm acepta multipart (el front manda FormData) y urlencoded.
func parseForm(r *http.Request) error {
	err := r.ParseMultipartForm(maxUploadMemory)
	if err == nil {
		return nil
	}
	if errors.Is(err, http.ErrNotMultipart) {
		return r.ParseForm()
	}
	return err
}

// formFields arma el carrier parcial mirando presencia de cada campo en
// el form. Campo ausente => puntero nil => no tocar en el update.
func formFields(form url.Values) Fields {
	f := Fields{}

	if v, ok := formValue(form, "nome"); ok {
		f.Nome = &v
	}
	if v, ok := formValue(form, "preco"); ok {
		// el form manda texto; coma decimal también se acepta
		if p, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64); err == nil {
			f.Preco = &p
		}
	}
	if v, ok := formValue(form, "descricao"); ok {
		f.Descricao = &v
	}
	if v, ok := formValue(form, "categoria"); ok {
		f.Categoria = &v
	}
	if v, ok := formValue(form, "porte"); ok {
		f.Porte = &v
	}
	if v, ok := formValue(form, "idade"); ok {
		f.Idade = &v
	}
	if v, ok := formValue(form, "sexo"); ok {
		f.Sexo = &v
	}
	if v, ok := formValue(form, "especial"); ok {
		b := parseFlag(v)
		f.Especial = &b
	}
	if v, ok := formValue(form, "whatsapp"); ok {
		f.Whatsapp = &v
	}
	if v, ok := formValue(form, "obs"); ok {
		f.Obs = &v
	}

	return f
}

func formValue(form url.Values, key string) (string, bool) {
	vs, ok := form[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func parseFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "on", "sim":
		return true
	}
	return false
}

// storeUpload sube la imagen del request si vino una. Devuelve nil si el
// request no trae parte "imagem" (imagen opcional en create, "mantener"
// en edit).
func storeUpload(r *http.Request, kind Kind, up Uploader) (*string, error) {
	file, hdr, err := r.FormFile("imagem")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	if !AllowedImage(hdr.Filename) {
		return nil, ErrMalformedUpload
	}
	if up == nil {
		return nil, ErrStorageUnavailable
	}

	ref, err := up.Store(r.Context(), kind, file, hdr.Filename)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrStorageUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "armazenamento indisponível"})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Item não encontrado"})
	case errors.Is(err, ErrMalformedUpload):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "formato de imagem não suportado"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Erro interno"})
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (catalog/news) para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
