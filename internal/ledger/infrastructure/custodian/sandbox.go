package custodian

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
)

var (
	ErrZeroAddress       = errors.New("custodian: zero address")
	ErrNotItemOwner      = errors.New("custodian: mover does not own the item")
	ErrInsufficientFunds = errors.New("custodian: insufficient balance")
)

// SandboxItems is an in-memory unique item custodian. Items never assigned
// belong to the treasury.
type SandboxItems struct {
	mu       sync.Mutex
	treasury domain.Address
	owners   map[uint64]domain.Address
}

func NewSandboxItems(treasury domain.Address) *SandboxItems {
	return &SandboxItems{
		treasury: treasury,
		owners:   make(map[uint64]domain.Address),
	}
}

func (s *SandboxItems) Kind() domain.AssetKind {
	return domain.UniqueItem
}

func (s *SandboxItems) BalanceOf(_ context.Context, owner domain.Address) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count uint64
	for _, itemOwner := range s.owners {
		if itemOwner == owner {
			count++
		}
	}

	return count, nil
}

func (s *SandboxItems) Transfer(ctx context.Context, from, to domain.Address, itemID uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if from == (domain.Address{}) || to == (domain.Address{}) {
		return ErrZeroAddress
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ownerOf(itemID) != from {
		return fmt.Errorf("%w: item %d", ErrNotItemOwner, itemID)
	}

	s.owners[itemID] = to
	return nil
}

func (s *SandboxItems) OwnerOf(itemID uint64) domain.Address {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ownerOf(itemID)
}

func (s *SandboxItems) ownerOf(itemID uint64) domain.Address {
	owner, ok := s.owners[itemID]
	if !ok {
		return s.treasury
	}

	return owner
}

// SandboxFunds is an in-memory fungible custodian.
type SandboxFunds struct {
	mu       sync.Mutex
	balances map[domain.Address]uint64
}

func NewSandboxFunds() *SandboxFunds {
	return &SandboxFunds{
		balances: make(map[domain.Address]uint64),
	}
}

func (s *SandboxFunds) Kind() domain.AssetKind {
	return domain.Fungible
}

func (s *SandboxFunds) Fund(owner domain.Address, amount uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.balances[owner] += amount
}

func (s *SandboxFunds) BalanceOf(_ context.Context, owner domain.Address) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.balances[owner], nil
}

func (s *SandboxFunds) Transfer(ctx context.Context, from, to domain.Address, quantity uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if from == (domain.Address{}) || to == (domain.Address{}) {
		return ErrZeroAddress
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.balances[from] < quantity {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientFunds, s.balances[from], quantity)
	}

	s.balances[from] -= quantity
	s.balances[to] += quantity
	return nil
}

// SandboxResolver lazily creates one sandbox custodian per address. New
// fungible custodians start with treasurySupply units held by the treasury.
type SandboxResolver struct {
	mu             sync.Mutex
	treasury       domain.Address
	treasurySupply uint64
	items          map[domain.Address]*SandboxItems
	funds          map[domain.Address]*SandboxFunds
}

func NewSandboxResolver(treasury domain.Address, treasurySupply uint64) *SandboxResolver {
	return &SandboxResolver{
		treasury:       treasury,
		treasurySupply: treasurySupply,
		items:          make(map[domain.Address]*SandboxItems),
		funds:          make(map[domain.Address]*SandboxFunds),
	}
}

func (r *SandboxResolver) Resolve(kind domain.AssetKind, address domain.Address) (domain.Custodian, error) {
	switch kind {
	case domain.UniqueItem:
		return r.Items(address), nil
	case domain.Fungible:
		return r.Funds(address), nil
	default:
		return nil, fmt.Errorf("unknown asset kind %q", kind)
	}
}

func (r *SandboxResolver) Items(address domain.Address) *SandboxItems {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.items[address]
	if !ok {
		items = NewSandboxItems(r.treasury)
		r.items[address] = items
	}

	return items
}

func (r *SandboxResolver) Funds(address domain.Address) *SandboxFunds {
	r.mu.Lock()
	defer r.mu.Unlock()

	funds, ok := r.funds[address]
	if !ok {
		funds = NewSandboxFunds()
		funds.Fund(r.treasury, r.treasurySupply)
		r.funds[address] = funds
	}

	return funds
}
