package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is read from an optional YAML file named by CONFIG_FILE, then from
// the environment (a .env file included). Environment values win.
type Config struct {
	HTTPPort string `yaml:"http_port"`

	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBSslMode  string `yaml:"db_sslmode"`

	KafkaHost              string `yaml:"kafka_host"`
	KafkaOrderChangedTopic string `yaml:"kafka_order_changed_topic"`

	RedisAddr      string        `yaml:"redis_addr"`
	RedisPassword  string        `yaml:"redis_password"`
	RedisDB        int           `yaml:"redis_db"`
	DeviceTokenTTL time.Duration `yaml:"device_token_ttl"`

	FirebaseProjectID       string `yaml:"firebase_project_id"`
	FirebaseCredentialsFile string `yaml:"firebase_credentials_file"`

	MapsAPIKey   string `yaml:"maps_api_key"`
	MapsRegion   string `yaml:"maps_region"`
	MapsLanguage string `yaml:"maps_language"`

	SweepSchedule       string        `yaml:"sweep_schedule"`
	SweepThreshold      time.Duration `yaml:"sweep_threshold"`
	SweepMaxAttempts    int           `yaml:"sweep_max_attempts"`
	SweepBatchSize      int           `yaml:"sweep_batch_size"`
	NotificationTimeout time.Duration `yaml:"notification_timeout"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// DefaultConfig holds the values used when neither the file nor the
// environment set a key.
func DefaultConfig() Config {
	return Config{
		HTTPPort:               "8080",
		DBPort:                 "5432",
		DBSslMode:              "disable",
		KafkaOrderChangedTopic: "order.status.changed",
		DeviceTokenTTL:         30 * 24 * time.Hour,
		MapsRegion:             "ve",
		MapsLanguage:           "es",
		SweepSchedule:          "*/30 * * * * *",
		SweepThreshold:         10 * time.Minute,
		SweepMaxAttempts:       3,
		SweepBatchSize:         100,
		NotificationTimeout:    10 * time.Second,
		LogLevel:               "info",
		LogFormat:              "text",
	}
}

// LoadConfig builds the configuration. A missing .env file is not an error.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := DefaultConfig()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.overrideWithEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) overrideWithEnv() error {
	envString("HTTP_PORT", &c.HTTPPort)
	envString("DB_HOST", &c.DBHost)
	envString("DB_PORT", &c.DBPort)
	envString("DB_USER", &c.DBUser)
	envString("DB_PASSWORD", &c.DBPassword)
	envString("DB_NAME", &c.DBName)
	envString("DB_SSLMODE", &c.DBSslMode)
	envString("KAFKA_HOST", &c.KafkaHost)
	envString("KAFKA_ORDER_CHANGED_TOPIC", &c.KafkaOrderChangedTopic)
	envString("REDIS_ADDR", &c.RedisAddr)
	envString("REDIS_PASSWORD", &c.RedisPassword)
	envString("FIREBASE_PROJECT_ID", &c.FirebaseProjectID)
	envString("FIREBASE_CREDENTIALS_FILE", &c.FirebaseCredentialsFile)
	envString("MAPS_API_KEY", &c.MapsAPIKey)
	envString("MAPS_REGION", &c.MapsRegion)
	envString("MAPS_LANGUAGE", &c.MapsLanguage)
	envString("SWEEP_SCHEDULE", &c.SweepSchedule)
	envString("LOG_LEVEL", &c.LogLevel)
	envString("LOG_FORMAT", &c.LogFormat)

	return errors.Join(
		envInt("REDIS_DB", &c.RedisDB),
		envDuration("DEVICE_TOKEN_TTL", &c.DeviceTokenTTL),
		envDuration("SWEEP_THRESHOLD", &c.SweepThreshold),
		envInt("SWEEP_MAX_ATTEMPTS", &c.SweepMaxAttempts),
		envInt("SWEEP_BATCH_SIZE", &c.SweepBatchSize),
		envDuration("NOTIFICATION_TIMEOUT", &c.NotificationTimeout),
	)
}

// Validate checks the settings the service cannot start without.
func (c Config) Validate() error {
	var errList []error
	if c.HTTPPort == "" {
		errList = append(errList, errors.New("http port is required"))
	}
	if c.DBHost == "" {
		errList = append(errList, errors.New("database host is required"))
	}
	if c.DBUser == "" {
		errList = append(errList, errors.New("database user is required"))
	}
	if c.DBName == "" {
		errList = append(errList, errors.New("database name is required"))
	}
	if len(c.KafkaBrokers()) == 0 {
		errList = append(errList, errors.New("kafka host is required"))
	}
	if c.RedisAddr == "" {
		errList = append(errList, errors.New("redis address is required"))
	}
	if c.SweepThreshold <= 0 {
		errList = append(errList, fmt.Errorf("sweep threshold must be positive, got %s", c.SweepThreshold))
	}
	if c.SweepMaxAttempts < 1 {
		errList = append(errList, fmt.Errorf("sweep max attempts must be at least 1, got %d", c.SweepMaxAttempts))
	}
	if c.SweepBatchSize < 1 {
		errList = append(errList, fmt.Errorf("sweep batch size must be at least 1, got %d", c.SweepBatchSize))
	}
	if c.FirebaseProjectID == "" {
		errList = append(errList, errors.New("firebase project id is required"))
	}
	return errors.Join(errList...)
}

// PostgresDSN is the key/value connection string used by GORM.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// PostgresURL is the URL form of the connection string used by migrations.
func (c Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// KafkaBrokers splits KafkaHost on commas.
func (c Config) KafkaBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaHost, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func envString(key string, dst *string) {
	if val := os.Getenv(key); val != "" {
		*dst = val
	}
}

func envInt(key string, dst *int) error {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func envDuration(key string, dst *time.Duration) error {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}
