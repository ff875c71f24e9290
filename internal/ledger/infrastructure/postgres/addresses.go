package postgres

import (
	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/ethereum/go-ethereum/common"
)

func optionalAddressParam(address *domain.Address) *string {
	if address == nil {
		return nil
	}

	hex := address.Hex()
	return &hex
}

func optionalAddressValue(value *string) *domain.Address {
	if value == nil {
		return nil
	}

	address := common.HexToAddress(*value)
	return &address
}

func optionalItemParam(itemID *uint64) *int64 {
	if itemID == nil {
		return nil
	}

	value := int64(*itemID)
	return &value
}

func optionalItemValue(value *int64) *uint64 {
	if value == nil {
		return nil
	}

	itemID := uint64(*value)
	return &itemID
}
