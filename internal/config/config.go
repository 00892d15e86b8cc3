package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	SessionSecret       string
	DatabaseURL         string
	SQLitePath          string // fallback store when DATABASE_URL is not set
	RedisURL            string
	GoogleClientID      string // Google OAuth web client (social sign-in)
	GoogleClientSecret  string
	GoogleRedirectURL   string
	OAuthStateSecret    string // signs the redirect-flow state token
	FrontendURL         string // post-OAuth redirect target
	FrontendURLEndsWith string
	DevPassword         string
	AllowCrossSiteDev   bool
	HealthAdminKey      string
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	port := viper.GetString("PORT")
	if port == "" {
		port = "8080"
	}
	env := viper.GetString("APP_ENV")
	if env == "" {
		env = viper.GetString("NODE_ENV")
	}
	if env == "" {
		env = "development"
	}

	dbURL := viper.GetString("DATABASE_URL_DEV")
	if env == "production" {
		dbURL = viper.GetString("DATABASE_URL_PROD")
	} else if env == "test" {
		dbURL = viper.GetString("DATABASE_URL_TEST")
	}
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}

	sqlitePath := viper.GetString("SQLITE_PATH")
	if sqlitePath == "" {
		sqlitePath = "swapsociety.db"
	}

	return &Config{
		Env:                 env,
		Port:                port,
		SessionSecret:       viper.GetString("SESSION_SECRET"),
		DatabaseURL:         dbURL,
		SQLitePath:          sqlitePath,
		RedisURL:            viper.GetString("REDIS_URL"),
		GoogleClientID:      viper.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:  viper.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:   viper.GetString("GOOGLE_REDIRECT_URL"),
		OAuthStateSecret:    viper.GetString("OAUTH_STATE_SECRET"),
		FrontendURL:         frontendURL(viper.GetString("FRONTEND_URL")),
		FrontendURLEndsWith: viper.GetString("FRONTEND_URL_ENDS_WITH"),
		DevPassword:         viper.GetString("DEV_PASSWORD"),
		AllowCrossSiteDev:   strings.EqualFold(viper.GetString("ALLOW_CROSS_SITE_DEV"), "true"),
		HealthAdminKey:      viper.GetString("HEALTH_ADMIN_KEY"),
	}, nil
}

func frontendURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "http://localhost:3000"
	}
	return s
}
