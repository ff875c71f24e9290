package custodian

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
)

const erc721ABI = `[
{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"transferFrom","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[]}
]`

const erc20ABI = `[
{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
{"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
{"type":"function","name":"transferFrom","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]}
]`

type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// EthereumCustodian drives an ERC-721 or ERC-20 contract. Transfers are signed
// by the custody key, so moving assets out of a participant's address needs a
// prior approval of the custody address on the contract.
type EthereumCustodian struct {
	kind     domain.AssetKind
	address  domain.Address
	contract *bind.BoundContract
	backend  Backend
	signer   *bind.TransactOpts
}

func NewEthereumCustodian(kind domain.AssetKind, address domain.Address, backend Backend, signer *bind.TransactOpts) (*EthereumCustodian, error) {
	definition := erc20ABI
	if kind == domain.UniqueItem {
		definition = erc721ABI
	}

	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s custodian abi: %w", kind, err)
	}

	return &EthereumCustodian{
		kind:     kind,
		address:  address,
		contract: bind.NewBoundContract(address, parsed, backend, backend, backend),
		backend:  backend,
		signer:   signer,
	}, nil
}

func (c *EthereumCustodian) Kind() domain.AssetKind {
	return c.kind
}

func (c *EthereumCustodian) BalanceOf(ctx context.Context, owner domain.Address) (uint64, error) {
	var out []any
	err := c.contract.Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", owner)
	if err != nil {
		return 0, fmt.Errorf("balanceOf call on %s failed: %w", c.address.Hex(), err)
	}
	if len(out) == 0 {
		return 0, fmt.Errorf("balanceOf call on %s returned no value", c.address.Hex())
	}

	balance := abi.ConvertType(out[0], new(big.Int)).(*big.Int)
	if !balance.IsUint64() {
		return 0, fmt.Errorf("balance %s of %s exceeds uint64", balance, owner.Hex())
	}

	return balance.Uint64(), nil
}

func (c *EthereumCustodian) Transfer(ctx context.Context, from, to domain.Address, value uint64) error {
	if from == (domain.Address{}) || to == (domain.Address{}) {
		return ErrZeroAddress
	}

	opts := *c.signer
	opts.Context = ctx

	amount := new(big.Int).SetUint64(value)

	var (
		tx  *types.Transaction
		err error
	)
	if c.kind == domain.Fungible && from == c.signer.From {
		tx, err = c.contract.Transact(&opts, "transfer", to, amount)
	} else {
		tx, err = c.contract.Transact(&opts, "transferFrom", from, to, amount)
	}
	if err != nil {
		return fmt.Errorf("failed to submit %s transfer: %w", c.kind, err)
	}

	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return fmt.Errorf("failed to wait for transaction %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("transaction %s reverted", tx.Hash().Hex())
	}

	return nil
}

// EthereumResolver binds one contract per configured custodian address and
// reuses it across calls.
type EthereumResolver struct {
	backend Backend
	signer  *bind.TransactOpts

	mu         sync.Mutex
	custodians map[resolverKey]*EthereumCustodian
}

type resolverKey struct {
	kind    domain.AssetKind
	address domain.Address
}

func NewEthereumResolver(backend Backend, custodyKey *ecdsa.PrivateKey, chainID *big.Int) (*EthereumResolver, error) {
	signer, err := bind.NewKeyedTransactorWithChainID(custodyKey, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create custody signer: %w", err)
	}

	return &EthereumResolver{
		backend:    backend,
		signer:     signer,
		custodians: make(map[resolverKey]*EthereumCustodian),
	}, nil
}

func (r *EthereumResolver) CustodyAddress() domain.Address {
	return r.signer.From
}

func (r *EthereumResolver) Resolve(kind domain.AssetKind, address domain.Address) (domain.Custodian, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := resolverKey{kind: kind, address: address}
	if custodian, ok := r.custodians[key]; ok {
		return custodian, nil
	}

	custodian, err := NewEthereumCustodian(kind, address, r.backend, r.signer)
	if err != nil {
		return nil, err
	}

	r.custodians[key] = custodian
	return custodian, nil
}
