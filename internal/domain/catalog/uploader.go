package catalog

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrMalformedUpload indica un archivo con formato no aceptado.
var ErrMalformedUpload = errors.New("malformed upload")

// Uploader es el relay de imágenes. Devuelve la URL o path público del
// archivo guardado. Una subida por request como máximo; la subida y la
// escritura de metadata son dos pasos independientes sin atomicidad.
type Uploader interface {
	Store(ctx context.Context, kind Kind, r io.Reader, originalName string) (string, error)
}

// allowedImageExts replica los formatos que aceptaba Cloudinary.
var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// AllowedImage valida la extensión del nombre original.
func AllowedImage(name string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(name))]
}

// UploadKey deriva la clave de almacenamiento: timestamp en ms + nombre
// original con espacios reemplazados, para evitar colisiones entre
// subidas. Nombre vacío cae a un uuid.
func UploadKey(now time.Time, originalName string) string {
	name := strings.Join(strings.Fields(originalName), "_")
	if name == "" {
		name = uuid.NewString()
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + name
}
