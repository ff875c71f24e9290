package custodian

import (
	"math/big"
	"testing"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEthereumResolver(t *testing.T) {
	t.Parallel()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	resolver, err := NewEthereumResolver(nil, key, big.NewInt(1337))
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), resolver.CustodyAddress())

	items, err := resolver.Resolve(domain.UniqueItem, testItems)
	require.NoError(t, err)
	assert.Equal(t, domain.UniqueItem, items.Kind())

	again, err := resolver.Resolve(domain.UniqueItem, testItems)
	require.NoError(t, err)
	assert.Same(t, items, again)

	funds, err := resolver.Resolve(domain.Fungible, testFunds)
	require.NoError(t, err)
	assert.Equal(t, domain.Fungible, funds.Kind())
}

func TestEthereumCustodian_RejectsZeroAddress(t *testing.T) {
	t.Parallel()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	resolver, err := NewEthereumResolver(nil, key, big.NewInt(1337))
	require.NoError(t, err)

	funds, err := resolver.Resolve(domain.Fungible, testFunds)
	require.NoError(t, err)

	err = funds.Transfer(t.Context(), resolver.CustodyAddress(), domain.Address{}, 5)
	assert.ErrorIs(t, err, ErrZeroAddress)
}
