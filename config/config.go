// api/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server     ServerConfiguration
	Database   DatabaseConfiguration
	Redis      RedisConfiguration
	Auth       AuthConfiguration
	RateLimit  RateLimitConfiguration
	Cache      CacheConfiguration
	Pagination PaginationConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// DatabaseConfiguration stores data for the MySQL connection
type DatabaseConfiguration struct {
	Host              string
	Port              string
	User              string
	Password          string
	Name              string
	MaxOpenConns      int
	MaxIdleConns      int
	ConnMaxLifetime   time.Duration
	ConnectionTimeout time.Duration
}

// RedisConfiguration stores data for the Redis connection
type RedisConfiguration struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
}

// AuthConfiguration stores the token signing settings
type AuthConfiguration struct {
	Secret   string
	TokenTTL time.Duration
}

// RateLimitConfiguration stores the fixed-window rate limit settings
type RateLimitConfiguration struct {
	Requests int
	Window   time.Duration
}

// CacheConfiguration stores the response-cache TTL and the per-route
// enable flags
type CacheConfiguration struct {
	TTL        time.Duration
	Characters EntityCacheFlags
	Equipment  EntityCacheFlags
	Factions   EntityCacheFlags
}

// EntityCacheFlags toggles caching for an entity's list and by-id reads
type EntityCacheFlags struct {
	List bool
	ByID bool
}

// PaginationConfiguration stores the default page size
type PaginationConfiguration struct {
	PerPage int
}

// InitConfig loads the configuration from config/config.yaml, environment
// variables and defaults, and unmarshals it into a Configuration struct.
func InitConfig() (*Configuration, error) {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "3306")
	viper.SetDefault("database.user", "root")
	viper.SetDefault("database.password", "root")
	viper.SetDefault("database.name", "lotr")
	viper.SetDefault("database.maxOpenConns", 25)
	viper.SetDefault("database.maxIdleConns", 5)
	viper.SetDefault("database.connMaxLifetime", "30m")
	viper.SetDefault("database.connectionTimeout", "5s")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.dialTimeout", "5s")
	viper.SetDefault("redis.readTimeout", "3s")
	viper.SetDefault("redis.writeTimeout", "3s")
	viper.SetDefault("redis.poolSize", 10)
	viper.SetDefault("auth.secret", "your-secret-key")
	viper.SetDefault("auth.tokenTTL", "1h")
	viper.SetDefault("rateLimit.requests", 60)
	viper.SetDefault("rateLimit.window", "60s")
	viper.SetDefault("cache.ttl", "1h")
	viper.SetDefault("cache.characters.list", false)
	viper.SetDefault("cache.characters.byID", false)
	viper.SetDefault("cache.equipment.list", true)
	viper.SetDefault("cache.equipment.byID", true)
	viper.SetDefault("cache.factions.list", false)
	viper.SetDefault("cache.factions.byID", false)
	viper.SetDefault("pagination.perPage", 10)
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("log.dir", "logging")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return nil, err
		}
	}

	var config Configuration
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}
