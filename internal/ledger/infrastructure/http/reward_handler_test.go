package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	mocks "github.com/Lexv0lk/reward-ledger/gen/mocks/ledger"
	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/logging"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCaller = common.HexToAddress("0x00000000000000000000000000000000000000a1")

func TestRewardHandler_Mint(t *testing.T) {
	t.Parallel()

	itemID := uint64(3)
	minted := []domain.RewardEvent{
		{ID: uuid.New(), Kind: domain.Minted, AssetKind: domain.UniqueItem, Participant: testCaller, ItemID: &itemID, Quantity: 1},
		{ID: uuid.New(), Kind: domain.Minted, AssetKind: domain.Fungible, Participant: testCaller, Quantity: 5},
	}

	type testCase struct {
		name          string
		authenticated bool

		prepareFn       func(t *testing.T, service *mocks.MockRewardService)
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)

		expectedStatus int
	}

	tests := []testCase{
		{
			name:          "minted",
			authenticated: true,
			prepareFn: func(t *testing.T, service *mocks.MockRewardService) {
				service.EXPECT().Mint(gomock.Any(), testCaller).Return(minted, nil)
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				var body struct {
					Events []eventResponse `json:"events"`
				}
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
				require.Len(t, body.Events, 2)
				assert.Equal(t, "unique_item", body.Events[0].AssetKind)
				assert.Equal(t, &itemID, body.Events[0].ItemID)
				assert.Equal(t, uint64(5), body.Events[1].Quantity)
				assert.Nil(t, body.Events[1].ItemID)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no caller",
			authenticated:  false,
			prepareFn:      func(t *testing.T, service *mocks.MockRewardService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "configuration incomplete",
			authenticated: true,
			prepareFn: func(t *testing.T, service *mocks.MockRewardService) {
				service.EXPECT().Mint(gomock.Any(), testCaller).
					Return(nil, &domain.ConfigurationIncompleteError{Msg: "mint requires both custodians to be configured"})
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.Contains(t, recorder.Body.String(), "mint requires both custodians")
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:          "custodian failure",
			authenticated: true,
			prepareFn: func(t *testing.T, service *mocks.MockRewardService) {
				service.EXPECT().Mint(gomock.Any(), testCaller).
					Return(nil, fmt.Errorf("failed to execute logic within transaction: %w",
						&domain.CustodianCallFailedError{Kind: domain.Fungible, Reason: assert.AnError}))
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:          "internal error",
			authenticated: true,
			prepareFn: func(t *testing.T, service *mocks.MockRewardService) {
				service.EXPECT().Mint(gomock.Any(), testCaller).Return(nil, assert.AnError)
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.NotContains(t, recorder.Body.String(), assert.AnError.Error())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := mocks.NewMockRewardService(ctrl)
			tt.prepareFn(t, service)
			handler := NewRewardHandler(service, logging.DiscardLogger)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.authenticated {
				c.Set(participantContextKey, testCaller)
			}

			handler.Mint(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, writer)
			}
		})
	}
}

func TestRewardHandler_Redeem(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		returnedErr    error
		expectedStatus int
	}

	tests := []testCase{
		{name: "redeemed", returnedErr: nil, expectedStatus: http.StatusOK},
		{name: "insufficient balance", returnedErr: &domain.InsufficientBalanceError{Msg: "insufficient fungible balance"}, expectedStatus: http.StatusConflict},
		{name: "invalid caller", returnedErr: &domain.InvalidArgumentsError{Msg: "caller must not be the zero address"}, expectedStatus: http.StatusBadRequest},
		{name: "not authorized", returnedErr: &domain.UnauthorizedError{Msg: "caller is not the administrator"}, expectedStatus: http.StatusForbidden},
	}

	gin.SetMode(gin.TestMode)

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := mocks.NewMockRewardService(ctrl)
			service.EXPECT().Redeem(gomock.Any(), testCaller).Return([]domain.RewardEvent{}, tt.returnedErr)
			handler := NewRewardHandler(service, logging.DiscardLogger)

			writer := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(writer)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
			c.Set(participantContextKey, testCaller)

			handler.Redeem(c)

			assert.Equal(t, tt.expectedStatus, writer.Code)
		})
	}
}
