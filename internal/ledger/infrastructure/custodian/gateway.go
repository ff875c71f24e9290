package custodian

import (
	"context"
	"fmt"
	"time"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
)

const DefaultCallTimeout = 10 * time.Second

// Gateway routes calls to the custodian configured for each asset kind. Every
// call is bounded by callTimeout and a call running past it counts as failed.
type Gateway struct {
	resolver    domain.CustodianResolver
	callTimeout time.Duration
}

func NewGateway(resolver domain.CustodianResolver, callTimeout time.Duration) *Gateway {
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}

	return &Gateway{
		resolver:    resolver,
		callTimeout: callTimeout,
	}
}

func (g *Gateway) IsActive(cfg domain.Configuration, kind domain.AssetKind) bool {
	return cfg.IsActive(kind)
}

func (g *Gateway) OwnedCount(ctx context.Context, cfg domain.Configuration, kind domain.AssetKind, owner domain.Address) (uint64, error) {
	custodian, err := g.custodianFor(cfg, kind)
	if err != nil {
		return 0, err
	}

	limitCtx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()

	count, err := custodian.BalanceOf(limitCtx, owner)
	if err != nil {
		return 0, &domain.CustodianCallFailedError{Kind: kind, Reason: err}
	}

	return count, nil
}

func (g *Gateway) Settle(ctx context.Context, cfg domain.Configuration, settlement domain.Settlement) error {
	custodian, err := g.custodianFor(cfg, settlement.Kind)
	if err != nil {
		return err
	}

	limitCtx, cancel := context.WithTimeout(ctx, g.callTimeout)
	defer cancel()

	err = custodian.Transfer(limitCtx, settlement.From, settlement.To, settlement.Value)
	if err != nil {
		return &domain.CustodianCallFailedError{Kind: settlement.Kind, Reason: err}
	}

	return nil
}

func (g *Gateway) MoveUniqueItem(ctx context.Context, cfg domain.Configuration, from, to domain.Address, itemID uint64) error {
	return g.Settle(ctx, cfg, domain.Settlement{Kind: domain.UniqueItem, From: from, To: to, Value: itemID})
}

func (g *Gateway) MoveFungible(ctx context.Context, cfg domain.Configuration, from, to domain.Address, quantity uint64) error {
	return g.Settle(ctx, cfg, domain.Settlement{Kind: domain.Fungible, From: from, To: to, Value: quantity})
}

func (g *Gateway) custodianFor(cfg domain.Configuration, kind domain.AssetKind) (domain.Custodian, error) {
	address := cfg.CustodianOf(kind)
	if address == nil {
		return nil, &domain.ConfigurationIncompleteError{Msg: fmt.Sprintf("%s custodian is not configured", kind)}
	}

	custodian, err := g.resolver.Resolve(kind, *address)
	if err != nil {
		return nil, &domain.CustodianCallFailedError{Kind: kind, Reason: err}
	}

	return custodian, nil
}
