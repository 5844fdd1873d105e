package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

type ShopAPI struct {
	BaseURL string        `yaml:"BASE_URL" env:"SHOP_API_URL" env-default:"http://localhost:8000"`
	Timeout time.Duration `yaml:"TIMEOUT" env:"SHOP_API_TIMEOUT" env-default:"10s"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

type Cart struct {
	// Backend selects where cart documents live: "redis" or "memory".
	Backend string        `yaml:"backend" env:"CART_BACKEND" env-default:"redis"`
	TTL     time.Duration `yaml:"ttl" env:"CART_TTL" env-default:"720h"`
}

type Pricing struct {
	StitchingSurchargePerSuit int64   `yaml:"stitching_surcharge_per_suit" env:"STITCHING_SURCHARGE_PER_SUIT" env-default:"3500"`
	FlatDeliveryCharge        int64   `yaml:"flat_delivery_charge" env:"FLAT_DELIVERY_CHARGE" env-default:"200"`
	FreeDeliveryThreshold     int64   `yaml:"free_delivery_threshold" env:"FREE_DELIVERY_THRESHOLD" env-default:"10000"`
	EnforceFreeDelivery       bool    `yaml:"enforce_free_delivery" env:"ENFORCE_FREE_DELIVERY" env-default:"false"`
	MeterStep                 float64 `yaml:"meter_step" env:"METER_STEP" env-default:"0.5"`
}

type Checkout struct {
	RedirectAfter time.Duration `yaml:"redirect_after" env:"CHECKOUT_REDIRECT_AFTER" env-default:"5s"`
	LockTTL       time.Duration `yaml:"lock_ttl" env:"CHECKOUT_LOCK_TTL" env-default:"30s"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
}

type Security struct {
	AdminJWTKey string `yaml:"ADMIN_JWT_KEY" env:"ADMIN_JWT_KEY" env-required:"true"`
	// InsecureCookies drops the Secure flag on session cookies for local plain-HTTP runs.
	InsecureCookies bool `yaml:"INSECURE_COOKIES" env:"INSECURE_COOKIES" env-default:"false"`
}

// RateConfig bounds admin login attempts per username within a sliding window.
type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"LOGIN_MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"LOGIN_WINDOW_SIZE" env-default:"15m"`
}

type SendGrid struct {
	APIKey    string `yaml:"API_KEY" env:"SENDGRID_API_KEY"`
	FromEmail string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL"`
	FromName  string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Darven"`
	ShopInbox string `yaml:"SHOP_INBOX" env:"SHOP_INBOX"`
}

type Otel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_ENDPOINT"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	ShopAPI      ShopAPI      `yaml:"shop_api"`
	Database     Database     `yaml:"database"`
	RedisConnect RedisConnect `yaml:"redis"`
	Cart         Cart         `yaml:"cart"`
	Pricing      Pricing      `yaml:"pricing"`
	Checkout     Checkout     `yaml:"checkout"`
	Cache        CacheConfig  `yaml:"cache"`
	Security     Security     `yaml:"security"`
	RateConfig   RateConfig   `yaml:"rate_limit"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Otel         Otel         `yaml:"otel"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	return cfg

}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	if cfg.Cart.Backend != "redis" && cfg.Cart.Backend != "memory" {
		return nil, fmt.Errorf("unsupported cart backend %q", cfg.Cart.Backend)
	}

	if cfg.Pricing.MeterStep <= 0 {
		return nil, fmt.Errorf("pricing.meter_step must be positive")
	}

	return &cfg, nil
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	if r.Username == "" && r.Password == "" {
		return fmt.Sprintf("redis://%s:%s/%d", r.Host, r.Port, r.DB)
	}

	return fmt.Sprintf("redis://%s:%s@%s:%s/%d", r.Username, r.Password, r.Host, r.Port, r.DB)
}
