package config

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

const DEFAULT_DATA_DIR string = "./resources/data"
const DEFAULT_DASHBOARD_ADDR string = ":8080"
const DEFAULT_MONGO_DATABASE string = "booking-service"
const DEFAULT_ADMIN_LOGIN string = "admin"
const DEFAULT_ADMIN_PASSWORD string = "admin"

type Config struct {
	DataDir           string
	DashboardAddr     string
	SignKey           string
	AdminLogin        string
	AdminPasswordHash string
	MongoConnString   string
	MongoDatabase     string
}

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}

func getOrDefault(key, fallback string) string {
	if val, err := GetSecret(key); err == nil && val != "" {
		return val
	}
	return fallback
}

// Load reads the environment, after merging a .env file from the working
// directory when there is one.
func Load(logger *log.Logger) (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Printf("config: cannot read .env: %v", err)
	}

	cfg := Config{
		DataDir:         getOrDefault("DATA_DIR", DEFAULT_DATA_DIR),
		DashboardAddr:   getOrDefault("DASHBOARD_ADDR", DEFAULT_DASHBOARD_ADDR),
		SignKey:         getOrDefault("SIGN", ""),
		AdminLogin:      getOrDefault("ADMIN_LOGIN", DEFAULT_ADMIN_LOGIN),
		MongoConnString: getOrDefault("MONGODB_CONNSTRING", ""),
		MongoDatabase:   getOrDefault("MONGODB_DATABASE", DEFAULT_MONGO_DATABASE),
	}

	if cfg.SignKey == "" {
		logger.Print("config: SIGN is not set, dashboard tokens will not survive a restart")
		cfg.SignKey = uuid.NewString()
	}

	cfg.AdminPasswordHash = getOrDefault("ADMIN_PASSWORD_HASH", "")
	if cfg.AdminPasswordHash == "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(DEFAULT_ADMIN_PASSWORD), bcrypt.DefaultCost)
		if err != nil {
			return Config{}, fmt.Errorf("cannot hash default admin password: %v", err)
		}
		cfg.AdminPasswordHash = string(hash)
	}

	return cfg, nil
}
