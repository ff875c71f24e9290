package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/bootstrap"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/database"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/jwt"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/logging"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

const (
	jwtSecret = "secret-key"
	dbName    = "reward_ledger_db"
	dbUser    = "admin"
	dbPass    = "password"
)

var (
	administrator = common.HexToAddress("0x00000000000000000000000000000000000000ad")
	custody       = common.HexToAddress("0x00000000000000000000000000000000000000c0")
	itemsContract = common.HexToAddress("0x0000000000000000000000000000000000000721")
	fundsContract = common.HexToAddress("0x0000000000000000000000000000000000000020")
)

type eventBody struct {
	Kind        string  `json:"kind"`
	AssetKind   string  `json:"assetKind"`
	Participant string  `json:"participant"`
	ItemID      *uint64 `json:"itemId"`
	Quantity    uint64  `json:"quantity"`
}

type eventsBody struct {
	Events []eventBody `json:"events"`
}

type balanceBody struct {
	Address       string `json:"address"`
	UniqueItems   uint64 `json:"uniqueItems"`
	FungibleUnits uint64 `json:"fungibleUnits"`
}

func startPostgres(t *testing.T) database.PostgresSettings {
	t.Helper()

	pg, err := postgres.Run(
		t.Context(),
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPass),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, pg)
	require.NoError(t, err)

	host, err := pg.Host(t.Context())
	require.NoError(t, err)
	port, err := pg.MappedPort(t.Context(), "5432/tcp")
	require.NoError(t, err)

	return database.PostgresSettings{
		User:     dbUser,
		Password: dbPass,
		Host:     host,
		Port:     port.Port(),
		DBName:   dbName,
	}
}

// startLedger runs a ledger with in-memory custodians and waits until it
// answers on port.
func startLedger(t *testing.T, dbSettings database.PostgresSettings, port int, treasurySupply uint64) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := bootstrap.LedgerConfig{
		HttpPort:      fmt.Sprintf(":%d", port),
		JwtSecret:     jwtSecret,
		Administrator: administrator.Hex(),
		DbSettings:    dbSettings,
		Custodians: bootstrap.CustodianConfig{
			Backend:        bootstrap.BackendMemory,
			CustodyAddress: custody.Hex(),
			CallTimeout:    5 * time.Second,
			TreasurySupply: treasurySupply,
		},
		Events: bootstrap.EventsConfig{
			RelayInterval:  100 * time.Millisecond,
			RelayBatchSize: 10,
		},
	}

	app := bootstrap.NewLedgerApp(cfg, logging.StdoutLogger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Run(context.Background())
	}()
	t.Cleanup(func() {
		app.Shutdown()
		require.NoError(t, <-errCh)
	})

	baseURL := fmt.Sprintf("http://localhost:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/api/transferable")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 30*time.Second, 200*time.Millisecond)

	return baseURL
}

func tokenFor(t *testing.T, participant common.Address) string {
	t.Helper()

	token, err := jwt.NewJWTTokenIssuer().IssueToken([]byte(jwtSecret), participant, time.Hour)
	require.NoError(t, err)

	return token
}

// call sends body as JSON and decodes the response into out when out is not nil.
func call(t *testing.T, method, url, token string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

func configureRewards(t *testing.T, baseURL string, rewardQuantity uint64) {
	t.Helper()

	items, funds := itemsContract.Hex(), fundsContract.Hex()
	body := map[string]any{
		"uniqueItemCustodian": items,
		"fungibleCustodian":   funds,
		"uniqueItemName":      "Reward Badge",
		"uniqueItemSymbol":    "BDG",
		"fungibleName":        "Reward Point",
		"fungibleSymbol":      "PNT",
		"rewardQuantity":      rewardQuantity,
		"transferable":        false,
	}

	status := call(t, http.MethodPut, baseURL+"/api/admin/config", tokenFor(t, administrator), body, nil)
	require.Equal(t, http.StatusOK, status)
}
