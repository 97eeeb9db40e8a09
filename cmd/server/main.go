package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/sbilibin2017/adbperf/internal/configs"
	"github.com/sbilibin2017/adbperf/internal/configs/address"
	"github.com/sbilibin2017/adbperf/internal/configs/db"
	"github.com/sbilibin2017/adbperf/internal/configs/hasher"
	"github.com/sbilibin2017/adbperf/internal/repositories/file"
	"github.com/sbilibin2017/adbperf/internal/repositories/memory"
	"github.com/sbilibin2017/adbperf/internal/runner"
	"github.com/sbilibin2017/adbperf/internal/services"
	"github.com/sbilibin2017/adbperf/internal/worker"

	httpHandlers "github.com/sbilibin2017/adbperf/internal/handlers/http"
	httpMiddlewares "github.com/sbilibin2017/adbperf/internal/middlewares/http"
	dbRepo "github.com/sbilibin2017/adbperf/internal/repositories/db"
)

// Build information variables.
// These are set during build time via ldflags.
var (
	buildVersion string = "N/A"
	buildDate    string = "N/A"
	buildCommit  string = "N/A"
)

// printBuildInfo prints the build version, date, and commit hash to stdout.
func printBuildInfo() {
	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

var (
	addr            string
	storeInterval   string
	fileStoragePath string
	restore         string
	databaseDSN     string
	migrationsDir   string = "migrations"
	key             string
	keyHeader       string = "HashSHA256"
	configFilePath  string
	trustedSubnet   string
)

// init sets up command-line flags.
func init() {
	pflag.StringVarP(&addr, "address", "a", "", "server listen address")
	pflag.StringVarP(&storeInterval, "interval", "i", "", "interval in seconds to flush snapshots to file")
	pflag.StringVarP(&fileStoragePath, "file", "f", "", "file path to store snapshots")
	pflag.StringVarP(&restore, "restore", "r", "", "restore snapshots from file on startup")
	pflag.StringVarP(&databaseDSN, "database-dsn", "d", "", "database DSN, postgres by default or sqlite:<path>")
	pflag.StringVarP(&key, "key", "k", "", "key for SHA256 hashing")
	pflag.StringVarP(&configFilePath, "config", "c", "", "path to JSON config file")
	pflag.StringVarP(&trustedSubnet, "trusted-subnet", "t", "", "trusted subnet in CIDR notation")
}

func parseFlags() error {
	pflag.Parse()

	if len(pflag.Args()) > 0 {
		return errors.New("unknown flags or arguments are provided")
	}

	if env := os.Getenv("CONFIG"); env != "" && configFilePath == "" {
		configFilePath = env
	}

	if configFilePath != "" {
		cfgBytes, err := os.ReadFile(configFilePath)
		if err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}

		var cfg struct {
			Address       *string `json:"address,omitempty"`
			Restore       *string `json:"restore,omitempty"`
			StoreInterval *string `json:"store_interval,omitempty"`
			StoreFile     *string `json:"store_file,omitempty"`
			DatabaseDSN   *string `json:"database_dsn,omitempty"`
			TrustedSubnet *string `json:"trusted_subnet,omitempty"`
		}

		if err := json.Unmarshal(cfgBytes, &cfg); err != nil {
			return fmt.Errorf("error parsing config JSON: %w", err)
		}

		if addr == "" && cfg.Address != nil {
			addr = *cfg.Address
		}
		if restore == "" && cfg.Restore != nil {
			restore = *cfg.Restore
		}
		if storeInterval == "" && cfg.StoreInterval != nil {
			storeInterval = *cfg.StoreInterval
		}
		if fileStoragePath == "" && cfg.StoreFile != nil {
			fileStoragePath = *cfg.StoreFile
		}
		if databaseDSN == "" && cfg.DatabaseDSN != nil {
			databaseDSN = *cfg.DatabaseDSN
		}
		if trustedSubnet == "" && cfg.TrustedSubnet != nil {
			trustedSubnet = *cfg.TrustedSubnet
		}
	}

	// Environment variables override both flags and the config file.
	if env := os.Getenv("ADDRESS"); env != "" {
		addr = env
	}
	if env := os.Getenv("STORE_INTERVAL"); env != "" {
		storeInterval = env
	}
	if env := os.Getenv("FILE_STORAGE_PATH"); env != "" {
		fileStoragePath = env
	}
	if env := os.Getenv("RESTORE"); env != "" {
		restore = env
	}
	if env := os.Getenv("DATABASE_DSN"); env != "" {
		databaseDSN = env
	}
	if env := os.Getenv("KEY"); env != "" {
		key = env
	}
	if env := os.Getenv("TRUSTED_SUBNET"); env != "" {
		trustedSubnet = env
	}

	if restore != "" {
		switch strings.ToLower(restore) {
		case "true", "false":
		default:
			return errors.New("invalid restore value, must be 'true' or 'false'")
		}
	}

	if storeInterval != "" {
		if _, err := strconv.Atoi(storeInterval); err != nil {
			return errors.New("invalid store_interval value, must be integer seconds string")
		}
	}

	return nil
}

func main() {
	printBuildInfo()

	if err := parseFlags(); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

// run picks the storage backend from the configuration and starts the server.
func run(ctx context.Context) error {
	intervalSeconds, _ := strconv.Atoi(storeInterval)

	cfg := configs.NewServerConfig(
		configs.WithServerAddress(addr),
		configs.WithServerStoreInterval(intervalSeconds),
		configs.WithServerFileStoragePath(fileStoragePath),
		configs.WithServerRestore(strings.EqualFold(restore, "true")),
		configs.WithServerDatabaseDSN(databaseDSN),
		configs.WithServerKey(key),
		configs.WithServerTrustedSubnet(trustedSubnet),
	)

	parsedAddr := address.New(cfg.Address)
	if parsedAddr.Scheme != address.SchemeHTTP {
		return address.ErrUnsupportedScheme
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	switch {
	case cfg.DatabaseDSN != "":
		return runDB(ctx, cfg, parsedAddr.Address, logger)
	case cfg.FileStoragePath != "":
		return runFile(ctx, cfg, parsedAddr.Address, logger)
	default:
		return runMemory(ctx, cfg, parsedAddr.Address, logger)
	}
}

// runMemory serves snapshots from an in-memory store only.
func runMemory(ctx context.Context, cfg *configs.ServerConfig, listenAddr string, logger *zap.Logger) error {
	store := memory.NewSnapshotStore(nil)
	writer := memory.NewSnapshotWriteRepository(store)
	reader := memory.NewSnapshotReadRepository(store)
	svc := services.NewSnapshotService(writer, reader)

	server := &http.Server{Addr: listenAddr, Handler: newRouter(svc, nil, cfg, logger)}

	r := runner.NewRunner()
	r.AddHTTPServer(server)
	return r.Run(ctx)
}

// runFile serves snapshots from memory with periodic file persistence.
func runFile(ctx context.Context, cfg *configs.ServerConfig, listenAddr string, logger *zap.Logger) error {
	store := memory.NewSnapshotStore(nil)
	writer := memory.NewSnapshotWriteRepository(store)
	reader := memory.NewSnapshotReadRepository(store)
	svc := services.NewSnapshotService(writer, reader)

	fileWriter := file.NewSnapshotWriteRepository(cfg.FileStoragePath)
	fileReader := file.NewSnapshotReadRepository(cfg.FileStoragePath)

	var ticker *time.Ticker
	if cfg.StoreInterval > 0 {
		ticker = time.NewTicker(time.Duration(cfg.StoreInterval) * time.Second)
		defer ticker.Stop()
	}

	server := &http.Server{Addr: listenAddr, Handler: newRouter(svc, nil, cfg, logger)}

	r := runner.NewRunner()
	r.AddWorker(worker.NewSnapshotWorker(cfg.Restore, ticker, reader, writer, fileReader, fileWriter))
	r.AddHTTPServer(server)
	return r.Run(ctx)
}

// databaseDriver picks the sql driver from the DSN. A "sqlite:" prefix
// selects the embedded sqlite driver with the prefix stripped off, anything
// else is treated as a postgres DSN for pgx.
func databaseDriver(dsn string) (driver, cleanDSN string) {
	if rest, ok := strings.CutPrefix(dsn, "sqlite:"); ok {
		return "sqlite", rest
	}
	return "pgx", dsn
}

// runDB serves snapshots from a SQL database, optionally mirroring them to a
// file through the snapshot worker.
func runDB(ctx context.Context, cfg *configs.ServerConfig, listenAddr string, logger *zap.Logger) error {
	driver, dsn := databaseDriver(cfg.DatabaseDSN)

	dbConn, err := db.New(driver, dsn)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	dialect := "postgres"
	if driver == "sqlite" {
		dialect = "sqlite3"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	if err := goose.Up(dbConn.DB, migrationsDir); err != nil {
		return err
	}

	writer := dbRepo.NewSnapshotWriteRepository(dbConn)
	reader := dbRepo.NewSnapshotReadRepository(dbConn)
	svc := services.NewSnapshotService(writer, reader)

	server := &http.Server{Addr: listenAddr, Handler: newRouter(svc, dbConn, cfg, logger)}

	r := runner.NewRunner()
	if cfg.FileStoragePath != "" {
		fileWriter := file.NewSnapshotWriteRepository(cfg.FileStoragePath)
		fileReader := file.NewSnapshotReadRepository(cfg.FileStoragePath)

		var ticker *time.Ticker
		if cfg.StoreInterval > 0 {
			ticker = time.NewTicker(time.Duration(cfg.StoreInterval) * time.Second)
			defer ticker.Stop()
		}
		r.AddWorker(worker.NewSnapshotWorker(cfg.Restore, ticker, reader, writer, fileReader, fileWriter))
	}
	r.AddHTTPServer(server)
	return r.Run(ctx)
}

// newRouter assembles the middleware chain and snapshot routes. The ping
// route is registered only when a database connection exists.
func newRouter(svc *services.SnapshotService, dbConn *sqlx.DB, cfg *configs.ServerConfig, logger *zap.Logger) *chi.Mux {
	var h httpMiddlewares.Hasher
	if cfg.Key != "" {
		h = hasher.New(cfg.Key)
	}

	r := chi.NewRouter()
	r.Use(httpMiddlewares.LoggingMiddleware(logger))
	r.Use(httpMiddlewares.GzipMiddleware)
	r.Use(httpMiddlewares.HashMiddleware(h, keyHeader))
	r.Use(httpMiddlewares.TrustedSubnetMiddleware(cfg.TrustedSubnet))

	r.Post("/snapshots/", httpHandlers.NewSnapshotSaveBodyHandler(svc))
	r.Post("/snapshots/batch/", httpHandlers.NewSnapshotSaveBatchHandler(svc))
	r.Get("/snapshots/", httpHandlers.NewSnapshotListHandler(svc))
	r.Get("/snapshots/{device}/{package}", httpHandlers.NewSnapshotGetPathHandler(svc))

	if dbConn != nil {
		r.Get("/ping", httpHandlers.NewDBPingHandler(dbConn))
	}

	return r
}
