package domain

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

var (
	testAdministrator = common.HexToAddress("0x00000000000000000000000000000000000000ad")
	testItems         = common.HexToAddress("0x0000000000000000000000000000000000000721")
	testFunds         = common.HexToAddress("0x0000000000000000000000000000000000000020")
)

func TestAuthorizeAdministrator(t *testing.T) {
	t.Parallel()

	settings := RewardSettings{Administrator: testAdministrator}

	assert.NoError(t, AuthorizeAdministrator(settings, testAdministrator))
	assert.ErrorIs(t, AuthorizeAdministrator(settings, testItems), &UnauthorizedError{})
}

func TestConfiguration_Validate(t *testing.T) {
	t.Parallel()

	zero := Address{}

	type testCase struct {
		name        string
		cfg         Configuration
		expectedErr error
	}

	tests := []testCase{
		{
			name: "empty configuration",
			cfg:  Configuration{},
		},
		{
			name: "both custodians",
			cfg:  Configuration{UniqueItemCustodian: &testItems, FungibleCustodian: &testFunds, RewardQuantity: 5},
		},
		{
			name:        "zero unique item custodian",
			cfg:         Configuration{UniqueItemCustodian: &zero},
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name:        "zero fungible custodian",
			cfg:         Configuration{UniqueItemCustodian: &testItems, FungibleCustodian: &zero},
			expectedErr: &InvalidArgumentsError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfiguration_ActiveKinds(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		cfg      Configuration
		active   []AssetKind
		complete bool
	}

	tests := []testCase{
		{
			name:   "nothing configured",
			cfg:    Configuration{},
			active: []AssetKind{},
		},
		{
			name:   "fungible only",
			cfg:    Configuration{FungibleCustodian: &testFunds},
			active: []AssetKind{Fungible},
		},
		{
			name:     "both kinds in settlement order",
			cfg:      Configuration{FungibleCustodian: &testFunds, UniqueItemCustodian: &testItems},
			active:   []AssetKind{UniqueItem, Fungible},
			complete: true,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.active, tt.cfg.ActiveKinds())
			assert.Equal(t, tt.complete, tt.cfg.Complete())
		})
	}
}

func TestConfiguration_QuantityOf(t *testing.T) {
	t.Parallel()

	cfg := Configuration{RewardQuantity: 7}

	assert.Equal(t, uint64(1), cfg.QuantityOf(UniqueItem))
	assert.Equal(t, uint64(7), cfg.QuantityOf(Fungible))
	assert.Nil(t, cfg.CustodianOf(AssetKind("unknown")))
}
