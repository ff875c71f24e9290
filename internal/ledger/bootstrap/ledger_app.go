package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/application"
	"github.com/Lexv0lk/reward-ledger/internal/ledger/domain"
	"github.com/Lexv0lk/reward-ledger/internal/ledger/infrastructure/custodian"
	httpwrap "github.com/Lexv0lk/reward-ledger/internal/ledger/infrastructure/http"
	"github.com/Lexv0lk/reward-ledger/internal/ledger/infrastructure/postgres"
	redisstream "github.com/Lexv0lk/reward-ledger/internal/ledger/infrastructure/redis"
	"github.com/Lexv0lk/reward-ledger/internal/ledger/metrics"
	"github.com/Lexv0lk/reward-ledger/internal/ledger/worker"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/database"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/jwt"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/logging"
	"github.com/Lexv0lk/reward-ledger/migrations"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 5 * time.Second
)

type LedgerApp struct {
	cfg    LedgerConfig
	logger logging.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewLedgerApp(cfg LedgerConfig, logger logging.Logger) *LedgerApp {
	return &LedgerApp{
		cfg:    cfg,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Run serves the HTTP API and relays events until ctx is done or Shutdown is
// called.
func (a *LedgerApp) Run(ctx context.Context) error {
	defer close(a.done)

	logger := a.logger
	cfg := a.cfg

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.mu.Lock()
	a.cancel = cancel
	a.mu.Unlock()

	dbURL := cfg.DbSettings.GetUrl()
	if err := database.MigrateDatabase(dbURL, migrations.FS, "."); err != nil {
		return err
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer dbpool.Close()

	configurationRepository := postgres.NewConfigurationRepository(dbpool)
	if err := a.ensureSettings(ctx, configurationRepository); err != nil {
		return err
	}

	resolver, custody, closeResolver, err := a.buildResolver(ctx)
	if err != nil {
		return err
	}
	defer closeResolver()

	publisher, closePublisher, err := a.buildPublisher(ctx)
	if err != nil {
		return err
	}
	defer closePublisher()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	ledgerMetrics := metrics.New(registry)

	txManager := database.NewDelegateTxManager(dbpool, logger)
	balancesRepository := postgres.NewBalancesRepository(dbpool)
	eventsRepository := postgres.NewEventsRepository(dbpool)
	gateway := custodian.NewGateway(resolver, cfg.Custodians.CallTimeout)

	rewardCase := application.NewRewardCase(
		custody,
		txManager,
		configurationRepository,
		balancesRepository,
		balancesRepository,
		eventsRepository,
		gateway,
		ledgerMetrics,
		logger,
	)
	configurationCase := application.NewConfigurationCase(txManager, configurationRepository)
	balanceCase := application.NewBalanceCase(balancesRepository, eventsRepository)

	relay := worker.NewRelay(
		txManager,
		eventsRepository,
		publisher,
		ledgerMetrics,
		logger,
		cfg.Events.RelayInterval,
		cfg.Events.RelayBatchSize,
	)

	router := httpwrap.NewRouter(httpwrap.Handlers{
		Config:  httpwrap.NewConfigHandler(configurationCase, logger),
		Reward:  httpwrap.NewRewardHandler(rewardCase, logger),
		Balance: httpwrap.NewBalanceHandler(balanceCase, logger),
		Metrics: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}, httpwrap.NewAuthMiddleware(cfg.JwtSecret, jwt.NewJWTTokenParser(), logger))

	server := &http.Server{
		Addr:              cfg.HttpPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("starting http server", "port", cfg.HttpPort, "custody", custody.Hex())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error while starting http server: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		return relay.Run(groupCtx)
	})

	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err.Error())
		}

		return nil
	})

	return group.Wait()
}

func (a *LedgerApp) Shutdown() {
	a.mu.Lock()
	cancel := a.cancel
	a.mu.Unlock()

	if cancel == nil {
		return
	}

	a.logger.Info("shutting down ledger")
	cancel()
	<-a.done
	a.logger.Info("ledger stopped")
}

// ensureSettings creates the settings row on first start. The administrator
// recorded then is kept for the lifetime of the deployment.
func (a *LedgerApp) ensureSettings(ctx context.Context, repository domain.ConfigurationRepository) error {
	administrator := common.HexToAddress(a.cfg.Administrator)

	if err := repository.EnsureSettingsCreated(ctx, administrator); err != nil {
		return err
	}

	settings, err := repository.FetchSettings(ctx)
	if err != nil {
		return err
	}

	if settings.Administrator != administrator {
		a.logger.Warn("configured administrator differs from the recorded one, keeping the recorded administrator",
			"configured", administrator.Hex(),
			"recorded", settings.Administrator.Hex(),
		)
	}

	return nil
}

func (a *LedgerApp) buildResolver(ctx context.Context) (domain.CustodianResolver, domain.Address, func(), error) {
	cfg := a.cfg.Custodians

	if cfg.Backend == BackendMemory {
		custody := common.HexToAddress(cfg.CustodyAddress)
		a.logger.Warn("using in-memory custodians, balances are lost on restart")
		return custodian.NewSandboxResolver(custody, cfg.TreasurySupply), custody, func() {}, nil
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.CustodyKeyHex, "0x"))
	if err != nil {
		return nil, domain.Address{}, nil, fmt.Errorf("failed to parse custody private key: %w", err)
	}

	client, err := ethclient.DialContext(ctx, cfg.RpcURL)
	if err != nil {
		return nil, domain.Address{}, nil, fmt.Errorf("failed to connect to ethereum node: %w", err)
	}

	chainID := big.NewInt(cfg.ChainID)
	if cfg.ChainID == 0 {
		chainID, err = client.ChainID(ctx)
		if err != nil {
			client.Close()
			return nil, domain.Address{}, nil, fmt.Errorf("failed to fetch chain id: %w", err)
		}
	}

	resolver, err := custodian.NewEthereumResolver(client, key, chainID)
	if err != nil {
		client.Close()
		return nil, domain.Address{}, nil, err
	}

	custody := resolver.CustodyAddress()
	if cfg.CustodyAddress != "" && common.HexToAddress(cfg.CustodyAddress) != custody {
		client.Close()
		return nil, domain.Address{}, nil, fmt.Errorf("custody address %s does not match the custody key", cfg.CustodyAddress)
	}

	return resolver, custody, client.Close, nil
}

func (a *LedgerApp) buildPublisher(ctx context.Context) (domain.EventPublisher, func(), error) {
	cfg := a.cfg.Events

	if cfg.RedisURL == "" {
		a.logger.Warn("redis url is not set, reward events are written to the log")
		return worker.NewLogPublisher(a.logger), func() {}, nil
	}

	client, err := redisstream.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			a.logger.Error("failed to close redis client", "error", err.Error())
		}
	}

	return redisstream.NewStreamPublisher(client, cfg.StreamName, cfg.StreamMaxLen), closeFn, nil
}
