package config

import (
	"os"
)

type Config struct {
	ServerAddr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	// FrontendCallbackURL, when set, makes the OAuth callback answer with a
	// 302 to the frontend carrying the token pair as query parameters.
	FrontendCallbackURL string

	// AvatarStorage selects the storage backend: "local" or "s3".
	AvatarStorage string
	AvatarBaseDir string
	AvatarBucket  string

	SeedDB bool
}

func LoadConfig() *Config {
	return &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		GoogleClientID:      os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:  os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:   getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/auth/google/callback"),
		FrontendCallbackURL: os.Getenv("FRONTEND_CALLBACK_URL"),

		AvatarStorage: getEnv("AVATAR_STORAGE", "local"),
		AvatarBaseDir: getEnv("AVATAR_BASE_DIR", "./static"),
		AvatarBucket:  os.Getenv("AVATAR_BUCKET"),

		SeedDB: os.Getenv("SEED_DB") == "true",
	}
}

// getEnv retrieves an environment variable or returns a default value if not set.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
