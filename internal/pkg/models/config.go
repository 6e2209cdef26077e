package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	APIKey   APIKeyConfig
	Storage  StorageConfig
	Tracking TrackingConfig
	Jobs     JobsConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// APIKeyConfig contains keys for service-to-service calls
type APIKeyConfig struct {
	JobsService     string
	TrackingService string
	AccountsService string
}

// StorageConfig contains object storage configuration for inspection photos
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string // base URL served to clients; endpoint is used when empty
}

// TrackingConfig contains drive tracking parameters
type TrackingConfig struct {
	JitterFloorM       float64 // position deltas below this many meters are discarded
	LocationTTLHours   int     // how long last-known positions are kept in Redis
	HistoryMaxPoints   int     // cap on per-drive history entries kept in Redis
	StalePositionGrace int     // seconds a fix may lag the previous one before being dropped
}

// JobsConfig contains job lifecycle parameters
type JobsConfig struct {
	MaxInspectionPhotos int
	MaxPhotoSizeMB      int64
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
