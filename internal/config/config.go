package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config es toda la configuración del servicio, atada desde env.
// STORAGE elige el backend de persistencia y UPLOADER el destino de las
// imágenes; los dos arrancan en la variante local sin credenciales.
type Config struct {
	RunAddr  string `envconfig:"RUN_ADDRESS" default:":8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	Storage  string `envconfig:"STORAGE" default:"file"` // file | firestore | postgres | memory
	DataDir  string `envconfig:"DATA_DIR" default:"data"`
	NewsFile string `envconfig:"NEWS_FILE"` // default: DATA_DIR/news.json

	DatabaseURI        string `envconfig:"DATABASE_URI"`
	MigrationsDir      string `envconfig:"MIGRATIONS_DIR" default:"migrations"`
	FirestoreProjectID string `envconfig:"FIRESTORE_PROJECT_ID"`

	Uploader      string `envconfig:"UPLOADER" default:"local"` // local | cloudinary
	UploadDir     string `envconfig:"UPLOAD_DIR" default:"uploads"`
	CloudinaryURL string `envconfig:"CLOUDINARY_URL"`

	DefaultWhatsapp string `envconfig:"DEFAULT_WHATSAPP" default:"5531996005196"`
}

// Load carga .env si existe y procesa las variables de entorno.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}

	if cfg.NewsFile == "" {
		cfg.NewsFile = filepath.Join(cfg.DataDir, "news.json")
	}

	return cfg, nil
}
