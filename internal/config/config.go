package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MenuSvcAddr             string
	SelectionSvcAddr        string
	MenuGRPCHealthAddr      string
	SelectionGRPCHealthAddr string
	GinMode                 string
	CurrencySymbol          string
	ReadHeaderTimeout       time.Duration
	ShutdownTimeout         time.Duration
	CORS                    CORSConfig
}

// CORSConfig is the cross-origin allow-list shared by both services.
type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	AllowCredentials bool
	MaxAge           time.Duration
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[config] invalid %s=%q, using %t", k, v, def)
		return def
	}
	return b
}

func getduration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Printf("[config] invalid %s=%q, using %s", k, v, def)
		return def
	}
	return d
}

// getlist splits a comma separated value, dropping blanks.
func getlist(k, def string) []string {
	var out []string
	for _, p := range strings.Split(getenv(k, def), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		MenuSvcAddr:             getenv("MENU_SERVICE_ADDR", ":8000"),
		SelectionSvcAddr:        getenv("SELECTION_SERVICE_ADDR", ":8001"),
		MenuGRPCHealthAddr:      os.Getenv("MENU_GRPC_HEALTH_ADDR"),
		SelectionGRPCHealthAddr: os.Getenv("SELECTION_GRPC_HEALTH_ADDR"),
		GinMode:                 getenv("GIN_MODE", "release"),
		CurrencySymbol:          getenv("CURRENCY_SYMBOL", "₹"),
		ReadHeaderTimeout:       getduration("READ_HEADER_TIMEOUT", 5*time.Second),
		ShutdownTimeout:         getduration("SHUTDOWN_TIMEOUT", 10*time.Second),
		CORS: CORSConfig{
			AllowOrigins:     getlist("CORS_ALLOW_ORIGINS", "*"),
			AllowMethods:     getlist("CORS_ALLOW_METHODS", "GET,POST,OPTIONS"),
			AllowHeaders:     getlist("CORS_ALLOW_HEADERS", "Origin,Content-Type,Accept,Authorization,X-Request-ID"),
			AllowCredentials: getbool("CORS_ALLOW_CREDENTIALS", true),
			MaxAge:           getduration("CORS_MAX_AGE", 12*time.Hour),
		},
	}
	log.Printf("[config] MENU_SERVICE_ADDR=%s", cfg.MenuSvcAddr)
	log.Printf("[config] SELECTION_SERVICE_ADDR=%s", cfg.SelectionSvcAddr)
	log.Printf("[config] CORS_ALLOW_ORIGINS=%s", strings.Join(cfg.CORS.AllowOrigins, ","))
	return cfg
}
