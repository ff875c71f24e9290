package domain

import (
	"context"

	"github.com/Lexv0lk/reward-ledger/internal/pkg/database"
	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -source=configuration.go -destination=../../../gen/mocks/ledger/configuration.go -package=mocks

type Address = common.Address

// Configuration is always replaced as a whole; there are no partial updates.
type Configuration struct {
	UniqueItemCustodian *Address
	FungibleCustodian   *Address

	UniqueItemName   string
	UniqueItemSymbol string
	FungibleName     string
	FungibleSymbol   string

	RewardQuantity uint64
	Transferable   bool
}

// RewardSettings is the configuration store entity: the current configuration
// together with the administrator allowed to change it.
type RewardSettings struct {
	Administrator Address
	Configuration Configuration
}

type ConfigurationRepository interface {
	EnsureSettingsCreated(ctx context.Context, administrator Address) error
	FetchSettings(ctx context.Context) (RewardSettings, error)
	LockAndGetSettings(ctx context.Context, querier database.Querier) (RewardSettings, error)
	ReplaceConfiguration(ctx context.Context, executor database.Executor, cfg Configuration) error
	UpdateTransferable(ctx context.Context, executor database.Executor, transferable bool) error
}

type SettingsFetcher interface {
	FetchSettings(ctx context.Context) (RewardSettings, error)
}

// AuthorizeAdministrator guards every configuration write.
func AuthorizeAdministrator(settings RewardSettings, caller Address) error {
	if caller != settings.Administrator {
		return &UnauthorizedError{Msg: "caller is not the administrator"}
	}

	return nil
}

func (c Configuration) Validate() error {
	for _, kind := range AssetKinds {
		custodian := c.CustodianOf(kind)
		if custodian != nil && *custodian == (Address{}) {
			return &InvalidArgumentsError{Msg: string(kind) + " custodian must not be the zero address"}
		}
	}

	return nil
}

func (c Configuration) CustodianOf(kind AssetKind) *Address {
	switch kind {
	case UniqueItem:
		return c.UniqueItemCustodian
	case Fungible:
		return c.FungibleCustodian
	default:
		return nil
	}
}

func (c Configuration) IsActive(kind AssetKind) bool {
	return c.CustodianOf(kind) != nil
}

// ActiveKinds returns the kinds with a configured custodian in settlement order.
func (c Configuration) ActiveKinds() []AssetKind {
	kinds := make([]AssetKind, 0, len(AssetKinds))
	for _, kind := range AssetKinds {
		if c.IsActive(kind) {
			kinds = append(kinds, kind)
		}
	}

	return kinds
}

// Complete reports whether every kind has a custodian. Minting requires it.
func (c Configuration) Complete() bool {
	return len(c.ActiveKinds()) == len(AssetKinds)
}

// QuantityOf is the amount one mint or redeem moves for kind.
func (c Configuration) QuantityOf(kind AssetKind) uint64 {
	if kind == UniqueItem {
		return 1
	}

	return c.RewardQuantity
}
