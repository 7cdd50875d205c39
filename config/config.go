package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI      string
	MongoDB       string
	PublicAPIKey  string
	Port          string
	PublicBaseURL string
	CORSOrigins   string

	FeedBackend   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	GeocoderURL       string
	GeocoderUserAgent string
	GeocoderTimeout   time.Duration
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func LoadConfig() Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	port := getEnv("PORT", "8000")
	return Config{
		MongoURI:      strings.TrimSpace(os.Getenv("MONGO_URI")),
		MongoDB:       getEnv("MONGO_DB", "hualien_aid"),
		PublicAPIKey:  strings.TrimSpace(os.Getenv("PUBLIC_API_KEY")),
		Port:          port,
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:"+port),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),

		FeedBackend:   getEnv("FEED_BACKEND", "mongo"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		GeocoderURL:       getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		GeocoderUserAgent: getEnv("GEOCODER_USER_AGENT", "hualien-aid/1.0"),
		GeocoderTimeout:   getEnvDuration("GEOCODER_TIMEOUT", 10*time.Second),
	}
}

var ErrServiceKey = errors.New("PUBLIC_API_KEY carries the service_role; use the public key")

// Validate reports missing required settings. The caller treats any error
// as fatal.
func (c Config) Validate() error {
	var missing []string
	if c.MongoURI == "" {
		missing = append(missing, "MONGO_URI")
	}
	if c.PublicAPIKey == "" {
		missing = append(missing, "PUBLIC_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment: %s", strings.Join(missing, ", "))
	}
	return CheckPublicKey(c.PublicAPIKey)
}

type keyClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// CheckPublicKey rejects a key whose role claim grants full access. Keys that
// are not JWTs are accepted as opaque.
func CheckPublicKey(key string) error {
	var claims keyClaims
	if _, _, err := jwt.NewParser().ParseUnverified(key, &claims); err != nil {
		return nil
	}
	if claims.Role == "service_role" {
		return ErrServiceKey
	}
	return nil
}
