package domain

import (
	"context"
)

//go:generate mockgen -source=custodians.go -destination=../../../gen/mocks/ledger/custodians.go -package=mocks

// Custodian is an external service holding one kind of asset. For the unique
// item kind value is an item id, for the fungible kind it is a quantity.
type Custodian interface {
	Kind() AssetKind
	BalanceOf(ctx context.Context, owner Address) (uint64, error)
	Transfer(ctx context.Context, from, to Address, value uint64) error
}

type CustodianResolver interface {
	Resolve(kind AssetKind, address Address) (Custodian, error)
}

type CustodianGateway interface {
	OwnedCount(ctx context.Context, cfg Configuration, kind AssetKind, owner Address) (uint64, error)
	Settle(ctx context.Context, cfg Configuration, settlement Settlement) error
}

// Settlement is one custodian transfer backing a ledger mutation.
type Settlement struct {
	Kind  AssetKind
	From  Address
	To    Address
	Value uint64
}

// Reversed returns the transfer that undoes s.
func (s Settlement) Reversed() Settlement {
	return Settlement{
		Kind:  s.Kind,
		From:  s.To,
		To:    s.From,
		Value: s.Value,
	}
}

// ItemID is set only for the unique item kind.
func (s Settlement) ItemID() *uint64 {
	if s.Kind != UniqueItem {
		return nil
	}

	id := s.Value
	return &id
}

func (s Settlement) Quantity() uint64 {
	if s.Kind == UniqueItem {
		return 1
	}

	return s.Value
}
