package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type Config struct {
	Mode     Mode
	HTTPAddr string
	AppEnv   string
	LogLevel string

	BlobDriver   string // fs|sql
	BlobBasePath string // fs root holding questions/blockN.json

	DBDriver string // sqlite|postgres, used by the sql blob driver
	DBDSN    string

	EnableStatic  bool
	EnableMetrics bool

	CORSOriginsOnline  []string
	CORSOriginsOffline []string
}

// CORSOrigins returns the allowed origins for the active mode.
func (c Config) CORSOrigins() []string {
	if c.Mode == ModeOnline {
		return c.CORSOriginsOnline
	}
	return c.CORSOriginsOffline
}

// Load reads an optional .env file into the environment and then builds the
// config from it. Variables already set win over the file.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return FromEnv(), nil
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	return Config{
		Mode:               mode,
		HTTPAddr:           envOr("HTTP_ADDR", ":8000"),
		AppEnv:             envOr("APP_ENV", "local"),
		LogLevel:           envOr("LOG_LEVEL", "info"),
		BlobDriver:         envOr("BLOB_DRIVER", "fs"),
		BlobBasePath:       envOr("BLOB_BASE_PATH", "./db"),
		DBDriver:           envOr("DB_DRIVER", "sqlite"),
		DBDSN:              envOr("DB_DSN", ""),
		EnableStatic:       envBool("ENABLE_STATIC", true),
		EnableMetrics:      envBool("ENABLE_METRICS", true),
		CORSOriginsOnline:  csvOr("CORS_ORIGINS_ONLINE", "https://netdefense.mindengage.ai"),
		CORSOriginsOffline: csvOr("CORS_ORIGINS_OFFLINE", "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"),
	}
}
func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}
func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
