package utils

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Viewer   ViewerConfig
	CORS     CORSConfig
	AutoTag  AutoTagConfig
	Shutdown ShutdownConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

// ViewerConfig names the fixture user treated as the signed-in viewer.
type ViewerConfig struct {
	ID string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type AutoTagConfig struct {
	APIKey         string
	Model          string
	TimeoutSeconds int
	RatePerSecond  float64
	Burst          int
}

type ShutdownConfig struct {
	TimeoutSeconds int
}

// LoadConfig reads configuration from the given env file (".env" when empty)
// and the process environment. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	if path == "" {
		path = ".env"
	}
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "DootRec")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("VIEWER_ID", "user1")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("AUTOTAG_TIMEOUT_SECONDS", 30)
	v.SetDefault("AUTOTAG_RATE_PER_SECOND", 0.5)
	v.SetDefault("AUTOTAG_BURST", 3)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	apiKey := v.GetString("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = v.GetString("GOOGLE_API_KEY")
	}

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Viewer: ViewerConfig{
			ID: v.GetString("VIEWER_ID"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		AutoTag: AutoTagConfig{
			APIKey:         apiKey,
			Model:          v.GetString("GEMINI_MODEL"),
			TimeoutSeconds: v.GetInt("AUTOTAG_TIMEOUT_SECONDS"),
			RatePerSecond:  v.GetFloat64("AUTOTAG_RATE_PER_SECOND"),
			Burst:          v.GetInt("AUTOTAG_BURST"),
		},
		Shutdown: ShutdownConfig{
			TimeoutSeconds: v.GetInt("SHUTDOWN_TIMEOUT_SECONDS"),
		},
	}

	return config, nil
}

// splitList turns "a, b,,c" into [a b c].
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
