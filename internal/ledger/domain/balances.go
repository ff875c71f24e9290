package domain

import (
	"context"

	"github.com/Lexv0lk/reward-ledger/internal/pkg/database"
)

//go:generate mockgen -source=balances.go -destination=../../../gen/mocks/ledger/balances.go -package=mocks

type AssetKind string

const (
	UniqueItem AssetKind = "unique_item"
	Fungible   AssetKind = "fungible"
)

// AssetKinds lists every kind in the order settlements are attempted.
var AssetKinds = []AssetKind{UniqueItem, Fungible}

type Balance struct {
	UniqueItemCount uint64
	FungibleUnits   uint64
}

func (b Balance) Of(kind AssetKind) uint64 {
	if kind == UniqueItem {
		return b.UniqueItemCount
	}

	return b.FungibleUnits
}

type BalanceLedger interface {
	EnsureBalanceCreated(ctx context.Context, executor database.Executor, participant Address) error
	LockAndGetBalance(ctx context.Context, querier database.Querier, participant Address) (Balance, error)
	Credit(ctx context.Context, executor database.Executor, participant Address, kind AssetKind, amount uint64) error
	Debit(ctx context.Context, executor database.Executor, participant Address, kind AssetKind, amount uint64) error
}

type BalanceFetcher interface {
	FetchBalance(ctx context.Context, participant Address) (Balance, error)
}

// OwnedItemsRegistry records which unique items the ledger credited to each
// participant, oldest first.
type OwnedItemsRegistry interface {
	AddOwnedItem(ctx context.Context, executor database.Executor, participant Address, itemID uint64) error
	FetchOldestOwnedItem(ctx context.Context, querier database.Querier, participant Address) (uint64, error)
	RemoveOwnedItem(ctx context.Context, executor database.Executor, participant Address, itemID uint64) error
}
