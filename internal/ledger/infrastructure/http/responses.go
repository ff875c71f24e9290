package http

import (
	"time"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/ethereum/go-ethereum/common"
)

type eventResponse struct {
	ID          string    `json:"id"`
	Sequence    int64     `json:"seq,omitempty"`
	Kind        string    `json:"kind"`
	AssetKind   string    `json:"assetKind"`
	Participant string    `json:"participant"`
	ItemID      *uint64   `json:"itemId,omitempty"`
	Quantity    uint64    `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
}

func toEventResponses(events []domain.RewardEvent) []eventResponse {
	responses := make([]eventResponse, 0, len(events))
	for _, event := range events {
		responses = append(responses, eventResponse{
			ID:          event.ID.String(),
			Sequence:    event.Sequence,
			Kind:        string(event.Kind),
			AssetKind:   string(event.AssetKind),
			Participant: event.Participant.Hex(),
			ItemID:      event.ItemID,
			Quantity:    event.Quantity,
			CreatedAt:   event.CreatedAt,
		})
	}

	return responses
}

type balanceResponse struct {
	Address       string `json:"address"`
	UniqueItems   uint64 `json:"uniqueItems"`
	FungibleUnits uint64 `json:"fungibleUnits"`
}

type configurationBody struct {
	UniqueItemCustodian *string `json:"uniqueItemCustodian"`
	FungibleCustodian   *string `json:"fungibleCustodian"`
	UniqueItemName      string  `json:"uniqueItemName"`
	UniqueItemSymbol    string  `json:"uniqueItemSymbol"`
	FungibleName        string  `json:"fungibleName"`
	FungibleSymbol      string  `json:"fungibleSymbol"`
	RewardQuantity      uint64  `json:"rewardQuantity"`
	Transferable        bool    `json:"transferable"`
}

func toConfigurationBody(cfg domain.Configuration) configurationBody {
	return configurationBody{
		UniqueItemCustodian: addressString(cfg.UniqueItemCustodian),
		FungibleCustodian:   addressString(cfg.FungibleCustodian),
		UniqueItemName:      cfg.UniqueItemName,
		UniqueItemSymbol:    cfg.UniqueItemSymbol,
		FungibleName:        cfg.FungibleName,
		FungibleSymbol:      cfg.FungibleSymbol,
		RewardQuantity:      cfg.RewardQuantity,
		Transferable:        cfg.Transferable,
	}
}

func (b configurationBody) toConfiguration() (domain.Configuration, bool) {
	uniqueItemCustodian, ok := parseOptionalAddress(b.UniqueItemCustodian)
	if !ok {
		return domain.Configuration{}, false
	}

	fungibleCustodian, ok := parseOptionalAddress(b.FungibleCustodian)
	if !ok {
		return domain.Configuration{}, false
	}

	return domain.Configuration{
		UniqueItemCustodian: uniqueItemCustodian,
		FungibleCustodian:   fungibleCustodian,
		UniqueItemName:      b.UniqueItemName,
		UniqueItemSymbol:    b.UniqueItemSymbol,
		FungibleName:        b.FungibleName,
		FungibleSymbol:      b.FungibleSymbol,
		RewardQuantity:      b.RewardQuantity,
		Transferable:        b.Transferable,
	}, true
}

func addressString(address *domain.Address) *string {
	if address == nil {
		return nil
	}

	hex := address.Hex()
	return &hex
}

// parseOptionalAddress treats a missing or empty value as unset.
func parseOptionalAddress(value *string) (*domain.Address, bool) {
	if value == nil || *value == "" {
		return nil, true
	}

	if !common.IsHexAddress(*value) {
		return nil, false
	}

	address := common.HexToAddress(*value)
	return &address, true
}
