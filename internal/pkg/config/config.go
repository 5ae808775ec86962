package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (ports, secrets, DB connection)
// - default: Values common across all environments (timeouts, addresses in dev)
// -----------------------------------------------------------------------------

type Config struct {
	HTTP HTTPConfig
	RPC  RPCConfig
	JWT  JWTConfig
	DB   DBConfig
	CORS CORSConfig
	Log  LogConfig
	Mail MailConfig
}

type HTTPConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

// RPCConfig carries both sides of the message transport: the address this
// process listens on and the addresses of the services it dials.
type RPCConfig struct {
	ListenAddr        string        `envconfig:"RPC_LISTEN_ADDR" default:":7100"`
	AuthAddr          string        `envconfig:"AUTH_RPC_ADDR" default:"localhost:7101"`
	PaymentsAddr      string        `envconfig:"PAYMENTS_RPC_ADDR" default:"localhost:7102"`
	NotificationsAddr string        `envconfig:"NOTIFICATIONS_RPC_ADDR" default:"localhost:7103"`
	CallTimeout       time.Duration `envconfig:"RPC_CALL_TIMEOUT" default:"10s"`
}

type JWTConfig struct {
	Secret string        `envconfig:"JWT_SECRET" required:"true"`
	TTL    time.Duration `envconfig:"JWT_TTL" default:"1h"`
}

type DBConfig struct {
	Enabled  bool   `envconfig:"DB_ENABLED" default:"false"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"stayhub"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"stayhub"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type MailConfig struct {
	From string `envconfig:"MAIL_FROM" default:"noreply@stayhub.local"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: "8889"},
		RPC: RPCConfig{
			ListenAddr:        "127.0.0.1:0",
			AuthAddr:          "127.0.0.1:17101",
			PaymentsAddr:      "127.0.0.1:17102",
			NotificationsAddr: "127.0.0.1:17103",
			CallTimeout:       2 * time.Second,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
			TTL:    time.Hour,
		},
		Log:  LogConfig{Level: "error"},
		Mail: MailConfig{From: "test@stayhub.local"},
	}
}
