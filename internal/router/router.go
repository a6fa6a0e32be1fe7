package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	filestore "aupac-site/internal/adapters/storage/file"
	fsstore "aupac-site/internal/adapters/storage/firestore"
	"aupac-site/internal/adapters/storage/memory"
	pg "aupac-site/internal/adapters/storage/postgres"
	cloudup "aupac-site/internal/adapters/upload/cloudinary"
	localup "aupac-site/internal/adapters/upload/local"
	"aupac-site/internal/config"
	"aupac-site/internal/domain/browse"
	"aupac-site/internal/domain/catalog"
	"aupac-site/internal/domain/news"
	"aupac-site/internal/middleware"
	"aupac-site/internal/platform/logger"
)

type Options struct {
	Config config.Config
	Log    *logger.Logger

	// Inyectables para tests; si vienen nil se construyen desde Config.
	Repo     catalog.Repository
	Uploader catalog.Uploader
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(opts.Log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	repo := opts.Repo
	if repo == nil {
		repo = buildRepository(opts)
	}

	up := opts.Uploader
	serveUploads := false
	if up == nil {
		up, serveUploads = buildUploader(opts)
	}

	svc := catalog.NewService(repo)
	catalog.RegisterRoutes(r, svc, up)

	feed := news.NewService(opts.Config.NewsFile)
	news.RegisterRoutes(r, feed)

	browse.RegisterRoutes(r, svc, feed,
		browse.AupacConfig(opts.Config.DefaultWhatsapp),
		browse.ArtesanatoConfig(opts.Config.DefaultWhatsapp),
	)

	if serveUploads {
		fs := http.StripPrefix(localup.PublicPrefix+"/", http.FileServer(http.Dir(opts.Config.UploadDir)))
		r.Get(localup.PublicPrefix+"/*", fs.ServeHTTP)
	}

	return r
}

// buildRepository elige el backend según STORAGE. Un backend elegido pero
// mal configurado queda cableado a UnavailableRepository: todas las
// operaciones responden "storage unavailable" en vez de degradar en
// silencio solo las lecturas.
func buildRepository(opts Options) catalog.Repository {
	cfg := opts.Config

	switch cfg.Storage {
	case "postgres":
		if cfg.DatabaseURI == "" {
			opts.Log.Warn("postgres selected but DATABASE_URI is empty")
			return catalog.UnavailableRepository{}
		}
		db, err := pg.Open(cfg.DatabaseURI)
		if err != nil {
			opts.Log.Warn("postgres unavailable", zap.Error(err))
			return catalog.UnavailableRepository{}
		}
		if err := pg.Migrate(db, cfg.MigrationsDir); err != nil {
			opts.Log.Warn("postgres migrations failed", zap.Error(err))
			return catalog.UnavailableRepository{}
		}
		return pg.NewCatalogRepo(db)

	case "firestore":
		if cfg.FirestoreProjectID == "" {
			opts.Log.Warn("firestore selected but FIRESTORE_PROJECT_ID is empty")
			return catalog.UnavailableRepository{}
		}
		store, err := fsstore.Open(context.Background(), cfg.FirestoreProjectID)
		if err != nil {
			opts.Log.Warn("firestore unavailable", zap.Error(err))
			return catalog.UnavailableRepository{}
		}
		return store

	case "memory":
		return memory.NewCatalogRepo()

	default:
		store, err := filestore.NewStore(cfg.DataDir)
		if err != nil {
			opts.Log.Warn("file storage unavailable", zap.Error(err))
			return catalog.UnavailableRepository{}
		}
		return store
	}
}

// buildUploader elige el relay de imágenes. El segundo retorno indica si
// hay que servir /uploads/ desde disco local.
func buildUploader(opts Options) (catalog.Uploader, bool) {
	cfg := opts.Config

	if cfg.Uploader == "cloudinary" {
		up, err := cloudup.NewUploader(cfg.CloudinaryURL)
		if err == nil {
			return up, false
		}
		opts.Log.Warn("cloudinary unavailable, falling back to local uploads", zap.Error(err))
	}

	up, err := localup.NewUploader(cfg.UploadDir)
	if err != nil {
		opts.Log.Warn("local uploads unavailable", zap.Error(err))
		return nil, false
	}
	return up, true
}
