package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	StoreDynamoDB = "dynamodb"
	StoreMongoDB  = "mongodb"
	StoreBadger   = "badger"
	StoreMemory   = "memory"
)

// Config is the service configuration, read from the environment.
type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	AppEnv   string `envconfig:"APP_ENV" default:"production"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	StoreDriver string `envconfig:"STORE_DRIVER" default:"dynamodb"`

	// DynamoDB; local DynamoDB ignores the credentials but the SDK requires them.
	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`
	DocumentsTable     string `envconfig:"DOCUMENTS_TABLE" default:"documents"`

	MongoURI      string `envconfig:"MONGODB_URI" default:"mongodb://localhost:27017"`
	MongoDB       string `envconfig:"MONGO_DB" default:"limpeza"`
	MongoUser     string `envconfig:"MONGO_USER"`
	MongoPassword string `envconfig:"MONGO_PASSWORD"`

	BadgerPath string `envconfig:"BADGER_PATH" default:"./data/badger"`

	OutboxPostgresDSN string `envconfig:"OUTBOX_POSTGRES_DSN"`

	RabbitURL      string `envconfig:"RABBIT_URL"`
	RabbitExchange string `envconfig:"RABBIT_EXCHANGE" default:"booking.exchange"`

	MercadoPagoAccessToken     string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	MercadoPagoTestPayerEmail  string `envconfig:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	MercadoPagoTestPayerUserID string `envconfig:"MERCADOPAGO_TEST_PAYER_USER_ID"`
	PaymentGatewayMock         bool   `envconfig:"PAYMENT_GATEWAY_MOCK" default:"false"`

	MetricsNamespace string `envconfig:"METRICS_NAMESPACE" default:"limpeza"`

	ReconcileInterval       time.Duration `envconfig:"RECONCILE_INTERVAL" default:"30s"`
	ReconcileMaxAttempts    int           `envconfig:"RECONCILE_MAX_ATTEMPTS" default:"8"`
	ReconcileInitialBackoff time.Duration `envconfig:"RECONCILE_INITIAL_BACKOFF" default:"1s"`
	ReconcileMaxBackoff     time.Duration `envconfig:"RECONCILE_MAX_BACKOFF" default:"5m"`
	ReconcileRatePerSecond  float64       `envconfig:"RECONCILE_RATE_PER_SECOND" default:"20"`

	NotifyTimeout time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"3s"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case StoreDynamoDB, StoreMongoDB, StoreBadger, StoreMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	if c.ReconcileMaxAttempts < 1 {
		return fmt.Errorf("RECONCILE_MAX_ATTEMPTS must be >= 1, got %d", c.ReconcileMaxAttempts)
	}
	if c.ReconcileInitialBackoff <= 0 || c.ReconcileMaxBackoff < c.ReconcileInitialBackoff {
		return fmt.Errorf("invalid reconcile backoff %s..%s", c.ReconcileInitialBackoff, c.ReconcileMaxBackoff)
	}
	if c.ReconcileRatePerSecond <= 0 {
		return fmt.Errorf("RECONCILE_RATE_PER_SECOND must be > 0")
	}
	return nil
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}
