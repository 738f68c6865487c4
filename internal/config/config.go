package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig `mapstructure:"catalog"`
	Database  DatabaseConfig
	Redis     RedisConfig
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	WarmCache bool `mapstructure:"-"` // 启动时预热目录缓存
}

type ServerConfig struct {
	Port string
	Mode string
}

// CatalogConfig 课程目录数据源配置。source 取值 http/local/minio/oss，
// 对应四种目录文件来源。
type CatalogConfig struct {
	Source          string `mapstructure:"source"`
	OriginURL       string `mapstructure:"origin_url"`
	LocalPath       string `mapstructure:"local_path"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	CacheTTLMinutes int    `mapstructure:"cache_ttl_minutes"`
	MinioEndpoint   string `mapstructure:"minio_endpoint"`
	MinioAccessID   string `mapstructure:"minio_access_key"`
	MinioSecret     string `mapstructure:"minio_secret_key"`
	MinioBucket     string `mapstructure:"minio_bucket"`
	OSSEndpoint     string `mapstructure:"oss_endpoint"`
	OSSAccessKey    string `mapstructure:"oss_access_key"`
	OSSSecretKey    string `mapstructure:"oss_secret_key"`
	OSSBucket       string `mapstructure:"oss_bucket"`
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("ROADMAP")
	viper.AutomaticEnv()

	// Catalog
	viper.BindEnv("catalog.source", "CATALOG_SOURCE")
	viper.BindEnv("catalog.origin_url", "CATALOG_ORIGIN_URL")
	viper.BindEnv("catalog.local_path", "CATALOG_LOCAL_PATH")
	viper.BindEnv("catalog.minio_endpoint", "MINIO_ENDPOINT")
	viper.BindEnv("catalog.minio_access_key", "MINIO_ACCESS_KEY")
	viper.BindEnv("catalog.minio_secret_key", "MINIO_SECRET_KEY")
	viper.BindEnv("catalog.minio_bucket", "MINIO_BUCKET")
	viper.BindEnv("catalog.oss_endpoint", "OSS_ENDPOINT")
	viper.BindEnv("catalog.oss_access_key", "OSS_ACCESS_KEY")
	viper.BindEnv("catalog.oss_secret_key", "OSS_SECRET_KEY")
	viper.BindEnv("catalog.oss_bucket", "OSS_BUCKET")

	// Database
	viper.BindEnv("database.host", "DATABASE_HOST")
	viper.BindEnv("database.port", "DATABASE_PORT")
	viper.BindEnv("database.user", "DATABASE_USER")
	viper.BindEnv("database.password", "DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "DATABASE_NAME")

	// Redis
	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")

	// Server
	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("server.mode", "SERVER_MODE")

	// Tracing
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("catalog.source", "http")
	viper.SetDefault("catalog.timeout_seconds", 10)
	viper.SetDefault("catalog.cache_ttl_minutes", 10)
	viper.SetDefault("rate_limit.max_requests", 600)
	viper.SetDefault("rate_limit.window_minutes", 1)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	switch cfg.Catalog.Source {
	case "http":
		if cfg.Catalog.OriginURL == "" {
			return nil, fmt.Errorf("catalog.origin_url is required when catalog.source is http")
		}
	case "local":
		if cfg.Catalog.LocalPath == "" {
			return nil, fmt.Errorf("catalog.local_path is required when catalog.source is local")
		}
	}

	return &cfg, nil
}
