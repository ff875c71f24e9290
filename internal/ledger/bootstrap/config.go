package bootstrap

import (
	"fmt"
	"time"

	"github.com/Lexv0lk/reward-ledger/internal/pkg/database"
	"github.com/ethereum/go-ethereum/common"
)

const (
	BackendEthereum = "ethereum"
	BackendMemory   = "memory"
)

type LedgerConfig struct {
	HttpPort      string `env:"HTTP_PORT" envDefault:":8080"`
	JwtSecret     string `env:"JWT_SECRET,required"`
	Administrator string `env:"LEDGER_ADMINISTRATOR,required"`

	DbSettings database.PostgresSettings
	Custodians CustodianConfig
	Events     EventsConfig
}

type CustodianConfig struct {
	Backend        string        `env:"CUSTODIAN_BACKEND" envDefault:"memory"`
	CustodyAddress string        `env:"CUSTODY_ADDRESS"`
	CustodyKeyHex  string        `env:"CUSTODY_PRIVATE_KEY"`
	RpcURL         string        `env:"ETH_RPC_URL"`
	ChainID        int64         `env:"ETH_CHAIN_ID" envDefault:"0"`
	CallTimeout    time.Duration `env:"CUSTODIAN_CALL_TIMEOUT" envDefault:"10s"`
	TreasurySupply uint64        `env:"SANDBOX_TREASURY_SUPPLY" envDefault:"1000000"`
}

type EventsConfig struct {
	RedisURL       string        `env:"REDIS_URL"`
	StreamName     string        `env:"EVENTS_STREAM" envDefault:"reward-events"`
	StreamMaxLen   int64         `env:"EVENTS_STREAM_MAX_LEN" envDefault:"100000"`
	RelayInterval  time.Duration `env:"RELAY_INTERVAL" envDefault:"1s"`
	RelayBatchSize int           `env:"RELAY_BATCH_SIZE" envDefault:"100"`
}

func (c LedgerConfig) Validate() error {
	if c.JwtSecret == "" {
		return fmt.Errorf("jwt secret must be set")
	}

	if !common.IsHexAddress(c.Administrator) {
		return fmt.Errorf("administrator %q is not a valid address", c.Administrator)
	}

	custodians := c.Custodians
	switch custodians.Backend {
	case BackendMemory:
		if !common.IsHexAddress(custodians.CustodyAddress) {
			return fmt.Errorf("custody address %q is not a valid address", custodians.CustodyAddress)
		}
	case BackendEthereum:
		if custodians.RpcURL == "" {
			return fmt.Errorf("ethereum rpc url must be set for the %s backend", BackendEthereum)
		}
		if custodians.CustodyKeyHex == "" {
			return fmt.Errorf("custody private key must be set for the %s backend", BackendEthereum)
		}
		if custodians.CustodyAddress != "" && !common.IsHexAddress(custodians.CustodyAddress) {
			return fmt.Errorf("custody address %q is not a valid address", custodians.CustodyAddress)
		}
	default:
		return fmt.Errorf("unknown custodian backend %q", custodians.Backend)
	}

	if custodians.CallTimeout <= 0 {
		return fmt.Errorf("custodian call timeout must be positive")
	}

	return nil
}
