package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/sbilibin2017/adbperf/internal/adb"
	"github.com/sbilibin2017/adbperf/internal/agent"
	"github.com/sbilibin2017/adbperf/internal/configs"
	"github.com/sbilibin2017/adbperf/internal/configs/address"
	"github.com/sbilibin2017/adbperf/internal/configs/hasher"
	"github.com/sbilibin2017/adbperf/internal/history"
	"github.com/sbilibin2017/adbperf/internal/models"
	"github.com/sbilibin2017/adbperf/internal/services"

	httpClient "github.com/sbilibin2017/adbperf/internal/configs/transport/http"
	httpFacades "github.com/sbilibin2017/adbperf/internal/facades/http"
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
	addr           string
	deviceID       string
	packageName    string
	metricsList    string
	adbPath        string
	key            string
	keyHeader      string = "HashSHA256"
	pollInterval   int
	reportInterval int
)

// init sets up command-line flags.
func init() {
	pflag.StringVarP(&addr, "address", "a", configs.DefaultServerAddress, "snapshot server URL")
	pflag.StringVarP(&deviceID, "device", "d", "", "device serial, defaults to the first attached device")
	pflag.StringVarP(&packageName, "package", "n", "", "package name to measure")
	pflag.StringVarP(&metricsList, "metrics", "m", "", "comma-separated metric kinds to collect")
	pflag.StringVar(&adbPath, "adb-path", "", "path to the adb binary")
	pflag.StringVarP(&key, "key", "k", "", "key for SHA256 request signing")
	pflag.IntVarP(&pollInterval, "poll-interval", "p", configs.DefaultPollInterval, "poll interval in seconds")
	pflag.IntVarP(&reportInterval, "report-interval", "r", configs.DefaultReportInterval, "report interval in seconds")
}

func parseFlags() error {
	pflag.Parse()
	if len(pflag.Args()) > 0 {
		return errors.New("unknown flags or arguments are provided")
	}

	if env := os.Getenv("ADDRESS"); env != "" {
		addr = env
	}
	if env := os.Getenv("DEVICE_ID"); env != "" {
		deviceID = env
	}
	if env := os.Getenv("PACKAGE"); env != "" {
		packageName = env
	}
	if env := os.Getenv("METRICS"); env != "" {
		metricsList = env
	}
	if env := os.Getenv("ADB_PATH"); env != "" {
		adbPath = env
	}
	if env := os.Getenv("KEY"); env != "" {
		key = env
	}
	if env := os.Getenv("POLL_INTERVAL"); env != "" {
		val, err := strconv.Atoi(env)
		if err != nil {
			return errors.New("invalid POLL_INTERVAL: must be an integer")
		}
		pollInterval = val
	}
	if env := os.Getenv("REPORT_INTERVAL"); env != "" {
		val, err := strconv.Atoi(env)
		if err != nil {
			return errors.New("invalid REPORT_INTERVAL: must be an integer")
		}
		reportInterval = val
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

func run(ctx context.Context) error {
	var metrics []string
	if metricsList != "" {
		metrics = strings.Split(metricsList, ",")
	}

	cfg := configs.NewAgentConfig(
		configs.WithAgentServerAddress(addr),
		configs.WithAgentDeviceID(deviceID),
		configs.WithAgentPackage(packageName),
		configs.WithAgentMetrics(metrics),
		configs.WithAgentADBPath(adbPath),
		configs.WithAgentKey(key),
		configs.WithAgentPollInterval(pollInterval),
		configs.WithAgentReportInterval(reportInterval),
	)

	if cfg.Package == "" {
		return errors.New("package name is required, pass it with --package")
	}

	parsedAddr := address.New(cfg.Address)
	switch parsedAddr.Scheme {
	case address.SchemeHTTP, address.SchemeHTTPS:
	default:
		return address.ErrUnsupportedScheme
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	adbClient := adb.New(adb.WithPath(cfg.ADBPath))

	target := cfg.DeviceID
	if target == "" {
		target, err = firstAttachedDevice(ctx, adbClient)
		if err != nil {
			return err
		}
		logger.Info("using first attached device", zap.String("device", target))
	}

	kinds := make([]models.MetricKind, 0, len(cfg.Metrics))
	for _, m := range cfg.Metrics {
		kinds = append(kinds, models.MetricKind(strings.TrimSpace(m)))
	}

	historyStore := history.NewStore()
	collector := services.NewCollectorService(adbClient, historyStore, logger)

	client := httpClient.New(
		parsedAddr.String(),
		httpClient.WithRetryPolicy(
			httpClient.RetryPolicy{
				Count:   3,
				Wait:    500 * time.Millisecond,
				MaxWait: 5 * time.Second,
			},
		),
	)

	var facadeOpts []httpFacades.Opt
	if cfg.Key != "" {
		facadeOpts = append(facadeOpts, httpFacades.WithHasher(hasher.New(cfg.Key), keyHeader))
	}
	reporter := httpFacades.NewSnapshotHTTPFacade(client, facadeOpts...)

	pollTicker := time.NewTicker(time.Duration(cfg.PollInterval) * time.Second)
	defer pollTicker.Stop()

	reportTicker := time.NewTicker(time.Duration(cfg.ReportInterval) * time.Second)
	defer reportTicker.Stop()

	runAgent := agent.NewSnapshotAgent(
		collector,
		reporter,
		historyStore,
		target,
		cfg.Package,
		kinds,
		pollTicker,
		reportTicker,
		time.Duration(cfg.ReportInterval)*time.Second,
	)
	return runAgent(ctx)
}

// firstAttachedDevice picks the first device adb reports as ready.
func firstAttachedDevice(ctx context.Context, client *adb.Client) (string, error) {
	devices, err := client.ListDevices(ctx)
	if err != nil {
		return "", err
	}
	for _, d := range devices {
		if d.State == "device" {
			return d.Serial, nil
		}
	}
	return "", errors.New("no attached devices found")
}
