package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Google   GoogleConfig
	Template TemplateConfig
	CORS     CORSConfig
	Log      LogConfig
	Metrics  MetricsConfig
	Roster   RosterConfig
}

// GoogleConfig carries the spreadsheet identifier and the OAuth client
// used to read it.
type GoogleConfig struct {
	SheetsID     string
	ReadRange    string
	ClientID     string
	ClientSecret string
	RedirectURI  string
	RefreshToken string
}

// TemplateConfig locates the enrollment form template asset.
type TemplateConfig struct {
	Path string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig gates the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool
}

// RosterConfig gates the tabular roster download endpoint.
type RosterConfig struct {
	ExportEnabled bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Google = GoogleConfig{
		SheetsID:     firstToken(v.GetString("GOOGLE_SHEETS_ID")),
		ReadRange:    v.GetString("GOOGLE_SHEETS_RANGE"),
		ClientID:     v.GetString("GOOGLE_OAUTH_CLIENT_ID"),
		ClientSecret: v.GetString("GOOGLE_OAUTH_CLIENT_SECRET"),
		RedirectURI:  v.GetString("GOOGLE_OAUTH_REDIRECT_URI"),
		RefreshToken: v.GetString("GOOGLE_OAUTH_REFRESH_TOKEN"),
	}

	cfg.Template = TemplateConfig{
		Path: v.GetString("TEMPLATE_PATH"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("ENABLE_METRICS"),
	}

	cfg.Roster = RosterConfig{
		ExportEnabled: v.GetBool("ENABLE_ROSTER_EXPORT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api")

	v.SetDefault("GOOGLE_SHEETS_ID", "")
	v.SetDefault("GOOGLE_SHEETS_RANGE", "A:AK")
	v.SetDefault("GOOGLE_OAUTH_CLIENT_ID", "")
	v.SetDefault("GOOGLE_OAUTH_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_OAUTH_REDIRECT_URI", "http://localhost:8080/api/auth/callback")
	v.SetDefault("GOOGLE_OAUTH_REFRESH_TOKEN", "")

	v.SetDefault("TEMPLATE_PATH", "./assets/TEMPLATE.pdf")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("ENABLE_METRICS", true)
	v.SetDefault("ENABLE_ROSTER_EXPORT", true)
}

// firstToken keeps only the first whitespace-separated token. Sheet IDs
// pasted from a browser occasionally carry trailing annotations.
func firstToken(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
