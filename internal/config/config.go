// Package config loads the service configuration from environment variables.
package config

import (
	"crypto/ecdsa"
	"fmt"
	"strings"
	"time"

	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/fault"
	"github.com/jazzy1902/Monad-BlockHackers/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/kelseyhightower/envconfig"
)

// Storage drivers.
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Secret is a string that never prints its value.
type Secret string

func (Secret) String() string {
	return "[REDACTED]"
}

func (s Secret) GoString() string {
	return s.String()
}

// Config holds every setting of the service.
type Config struct {
	// Chain.
	NodeRPC         string        `envconfig:"MONAD_RPC" required:"true" validate:"required,url"`
	PrivateKey      Secret        `envconfig:"PRIVATE_KEY" required:"true" validate:"required"`
	ContractAddress string        `envconfig:"CONTRACT_ADDRESS" required:"true" validate:"required,eth_addr"`
	ChainID         uint64        `envconfig:"CHAIN_ID" default:"0"`
	ContractABIPath string        `envconfig:"CONTRACT_ABI_PATH"`
	RPCTimeout      time.Duration `envconfig:"RPC_TIMEOUT" default:"15s" validate:"gt=0"`
	RPCRetryMax     int           `envconfig:"RPC_RETRY_MAX" default:"0" validate:"gte=0"`

	// Token.
	MintPerUnit uint64 `envconfig:"MINT_PER_UNIT" default:"1"`
	TokenURI    string `envconfig:"TOKEN_URI" default:"ipfs://your-default-metadata-uri"`

	// Storage.
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"sqlite" validate:"oneof=sqlite postgres redis"`
	DatabaseDSN   string `envconfig:"DATABASE_DSN" default:"energy_logs.db"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword Secret `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"gte=0"`

	// HTTP.
	HTTPAddr               string   `envconfig:"HTTP_ADDR" default:":8000"`
	CORSOrigins            []string `envconfig:"CORS_ORIGINS"`
	LogEnergyRatePerMinute float64  `envconfig:"LOG_ENERGY_RATE_PER_MINUTE" default:"0" validate:"gte=0"`
	LogEnergyBurst         int      `envconfig:"LOG_ENERGY_BURST" default:"10" validate:"gte=1"`

	// Observability.
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"greenchain" validate:"required"`
}

// Load reads the configuration from the environment. Any missing or
// malformed value is reported as fault.ErrConfig.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fault.Wrap(fault.ErrConfig, err)
	}

	cfg.CORSOrigins = cleanList(cfg.CORSOrigins)

	if err := validator.Validate(cfg); err != nil {
		return Config{}, fault.Wrap(fault.ErrConfig, err)
	}

	if _, err := cfg.SigningKey(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// SigningKey parses PRIVATE_KEY. The 0x prefix is optional.
func (c Config) SigningKey() (*ecdsa.PrivateKey, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(string(c.PrivateKey)), "0x")

	key, err := crypto.HexToECDSA(raw)
	if err != nil {
		// The parser error may quote the input, so it is not propagated.
		return nil, fault.Wrap(fault.ErrConfig, fmt.Errorf("PRIVATE_KEY is not a valid secp256k1 key"))
	}

	return key, nil
}

// Contract returns the token contract address.
func (c Config) Contract() common.Address {
	return common.HexToAddress(c.ContractAddress)
}

// cleanList trims entries and drops empty ones.
func cleanList(values []string) []string {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			cleaned = append(cleaned, v)
		}
	}

	return cleaned
}
