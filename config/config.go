package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/zogakzip-lab/backend/pkg/storage"
)

type Configs struct {
	Env      string
	LogLevel string

	Database  DatabaseConfigs
	ApiServer ServerConfigs
	Redis     RedisConfigs
	Storage   storage.S3Configs
	File      FileConfigs
}

type DatabaseConfigs struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string

	DefaultLimit int
	MaxLimit     int
}

func (s *ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type RedisConfigs struct {
	Addr string
}

type FileConfigs struct {
	// MaxSize is the maximum accepted size of an uploaded image in bytes.
	MaxSize int64
}

// Load reads all configurations from environment variables.
func Load() Configs {
	return Configs{
		Env:      getEnv("ENV", "local"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfigs{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			Database: getEnv("MYSQL_DATABASE", "zogakzip"),
			User:     getEnv("MYSQL_USER", "root"),
			Password: getEnv("MYSQL_PASSWORD", "root"),
		},
		ApiServer: ServerConfigs{
			Host:         getEnv("API_HOST", ""),
			Port:         getEnv("API_PORT", "8080"),
			DefaultLimit: getIntEnv("API_DEFAULT_LIMIT", 8),
			MaxLimit:     getIntEnv("API_MAX_LIMIT", 50),
		},
		Redis: RedisConfigs{
			Addr: getEnv("REDIS_ADDR", "localhost:6379"),
		},
		Storage: storage.S3Configs{
			Region:         getEnv("STORAGE_REGION", "auto"),
			Endpoint:       getEnv("STORAGE_ENDPOINT", ""),
			PublicEndpoint: getEnv("STORAGE_PUBLIC_ENDPOINT", ""),
			AccessKey:      getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey:      getEnv("STORAGE_SECRET_KEY", ""),
			Bucket:         getEnv("STORAGE_BUCKET", "zogakzip"),
			SSLDisabled:    getEnv("STORAGE_SSL_DISABLED", "false") == "true",
		},
		File: FileConfigs{
			MaxSize: int64(getIntEnv("FILE_MAX_SIZE", 10*1024*1024)),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return n
}
