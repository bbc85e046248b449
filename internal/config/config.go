package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds every knob the application reads from the environment. It is
// loaded once in main and handed to the pieces that need it, so nothing else
// touches os.Getenv at request time.
type Config struct {
	Port          string `env:"PORT" env-default:"8080"`
	DatabaseURL   string `env:"DATABASE_URL"`
	SessionSecret string `env:"SESSION_SECRET" env-default:"secret_key_change_me"`
	DiscogsToken  string `env:"DISCOGS_USER_TOKEN"`
	SiteURL       string `env:"SITE_URL" env-default:"https://dorsetmusiccollection.ie"`
	SSLRedirect   bool   `env:"SSL_REDIRECT" env-default:"true"`
	TemplatesDir  string `env:"TEMPLATES_DIR" env-default:"./web/templates"`
}

func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
