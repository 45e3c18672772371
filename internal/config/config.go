package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	CORS     CORSConfig     `yaml:"cors"`
	Storage  StorageConfig  `yaml:"storage"`
	Upload   UploadConfig   `yaml:"upload"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	Env  string `yaml:"env"`
}

type DatabaseConfig struct {
	DSN      string `yaml:"url"`
	DemoSeed bool   `yaml:"demo_seed"` // заполнить демо-данными при старте
}

type CORSConfig struct {
	Origins []string `yaml:"origins"`
}

type StorageConfig struct {
	Type      string `yaml:"type"`       // local, cloudflare_r2
	BasePath  string `yaml:"base_path"`  // каталог для локального хранилища
	BaseURL   string `yaml:"base_url"`   // публичный префикс URL фотографий
	Bucket    string `yaml:"bucket"`     // для R2
	AccessKey string `yaml:"access_key"` // для R2
	SecretKey string `yaml:"secret_key"` // для R2
	Endpoint  string `yaml:"endpoint"`   // для R2
}

type UploadConfig struct {
	MaxSize      int64    `yaml:"max_size"`      // максимальный размер файла в байтах
	AllowedTypes []string `yaml:"allowed_types"` // разрешенные MIME-типы
}

var AppConfig *Config

// LoadConfig загружает конфигурацию.
// Если задан DATABASE_URL - берем все из переменных окружения (тесты, docker),
// иначе читаем config/config.yaml.
func LoadConfig() {
	// .env не обязателен, ошибки игнорируем
	_ = godotenv.Load()

	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Database.DemoSeed = os.Getenv("DEMO_SEED") == "true"
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))

	applyDefaults(&cfg)
	AppConfig = &cfg
}

// GetConfig возвращает текущую конфигурацию (LoadConfig должен быть вызван)
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if len(cfg.CORS.Origins) == 0 {
		cfg.CORS.Origins = []string{"*"}
	}
	if cfg.Storage.Type == "" {
		cfg.Storage.Type = "local"
	}
	if cfg.Storage.BasePath == "" {
		cfg.Storage.BasePath = "./uploaded_photos"
	}
	if cfg.Storage.BaseURL == "" {
		cfg.Storage.BaseURL = "/photos"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 10 * 1024 * 1024 // 10MB
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{
			"image/jpeg", "image/png", "image/gif", "image/webp",
		}
	}
}
